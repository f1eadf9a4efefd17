// Package modkit builds API modules from shared deps and options
package modkit

import (
	"pcaobdash/internal/core/inspection"
	"pcaobdash/internal/modkit/repokit"
	"pcaobdash/internal/platform/config"
	"pcaobdash/internal/platform/logger"
	"pcaobdash/internal/platform/metrics"
	"pcaobdash/internal/platform/store"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse

	// Dataset is the shared read-only snapshot every module filters
	Dataset *inspection.Dataset
	// Metrics may be nil, recording is then a no-op
	Metrics *metrics.Metrics
}
