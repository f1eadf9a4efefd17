// Package source picks the inspection dataset reader for a configured location
package source

import (
	"path/filepath"
	"strings"
	"time"

	"pcaobdash/internal/adapters/source/chtable"
	"pcaobdash/internal/adapters/source/csvfile"
	"pcaobdash/internal/adapters/source/parquetfile"
	"pcaobdash/internal/adapters/source/pgtable"
	"pcaobdash/internal/adapters/source/xlsxfile"
	"pcaobdash/internal/core/inspection"
	perr "pcaobdash/internal/platform/errors"
	"pcaobdash/internal/platform/store"
)

// Kind names a dataset reader
type Kind string

const (
	KindAuto       Kind = ""
	KindCSV        Kind = "csv"
	KindParquet    Kind = "parquet"
	KindXLSX       Kind = "xlsx"
	KindPostgres   Kind = "postgres"
	KindClickhouse Kind = "clickhouse"
)

// Kinds lists every accepted kind, used for config validation
func Kinds() []string {
	return []string{string(KindCSV), string(KindParquet), string(KindXLSX), string(KindPostgres), string(KindClickhouse)}
}

// Config locates the dataset
type Config struct {
	Kind    Kind
	Path    string        // file kinds
	Sheet   string        // xlsx only, first sheet when empty
	Table   string        // postgres and clickhouse
	Timeout time.Duration // postgres statement timeout
}

// DetectKind infers a file kind from the path extension
func DetectKind(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return KindCSV, nil
	case ".parquet", ".pq":
		return KindParquet, nil
	case ".xlsx", ".xlsm":
		return KindXLSX, nil
	}
	return KindAuto, perr.InvalidArgf("cannot infer dataset kind from %q", path)
}

// Open returns the reader cfg names
// st may be nil for file kinds
func Open(cfg Config, st *store.Store) (inspection.Source, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(string(cfg.Kind))))
	if kind == KindAuto {
		k, err := DetectKind(cfg.Path)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	switch kind {
	case KindCSV, KindParquet, KindXLSX:
		if strings.TrimSpace(cfg.Path) == "" {
			return nil, perr.InvalidArgf("dataset path is required for %s", kind)
		}
	}

	switch kind {
	case KindCSV:
		return csvfile.New(cfg.Path), nil
	case KindParquet:
		return parquetfile.New(cfg.Path), nil
	case KindXLSX:
		return xlsxfile.New(cfg.Path, cfg.Sheet), nil
	case KindPostgres:
		if st == nil || st.PG == nil {
			return nil, perr.Unavailablef("postgres dataset requested but postgres is disabled")
		}
		src, err := pgtable.New(st.PG, cfg.Table, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return src, nil
	case KindClickhouse:
		if st == nil || st.CH == nil {
			return nil, perr.Unavailablef("clickhouse dataset requested but clickhouse is disabled")
		}
		src, err := chtable.New(st.CH, cfg.Table)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	return nil, perr.InvalidArgf("unknown dataset kind %q", cfg.Kind)
}
