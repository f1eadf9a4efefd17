// Package service publishes a loaded dataset into a SQL store so the dashboard can read it back
package service

import (
	"context"

	"pcaobdash/internal/adapters/source/schema"
	"pcaobdash/internal/core/inspection"
	perr "pcaobdash/internal/platform/errors"
	"pcaobdash/internal/platform/logger"
	"pcaobdash/internal/services/seed/domain"
)

// Service writes datasets through a single Writer
type Service struct {
	W domain.Writer
}

// New wraps w
func New(w domain.Writer) *Service {
	if w == nil {
		panic("seed.service.New requires a non nil Writer")
	}
	return &Service{W: w}
}

// Publish prepares the table then appends every record in batches
func (s *Service) Publish(ctx context.Context, ds *inspection.Dataset, opt domain.Options) (domain.Result, error) {
	if ds == nil {
		return domain.Result{}, perr.InvalidArgf("seed: dataset is required")
	}
	table, err := schema.Table(opt.Table)
	if err != nil {
		return domain.Result{}, perr.WithField(err, "table")
	}
	size := opt.BatchSize
	if size <= 0 {
		size = domain.DefaultBatchSize
	}

	res := domain.Result{Target: s.W.Target(), Table: table, Source: ds.Source()}
	log := logger.C(ctx).With().Str("target", string(res.Target)).Str("table", table).Logger()

	if err := s.W.Prepare(ctx, table, opt.Truncate); err != nil {
		return res, err
	}

	recs := ds.Records()
	for start := 0; start < len(recs); start += size {
		if err := ctx.Err(); err != nil {
			return res, perr.Wrap(err, perr.ErrorCodeUnavailable, "seed: cancelled")
		}
		end := min(start+size, len(recs))
		if err := s.W.Write(ctx, table, recs[start:end]); err != nil {
			log.Error().Err(err).Int("offset", start).Msg("seed: batch failed")
			return res, err
		}
		res.Rows += end - start
		res.Batches++
		log.Debug().Int("rows", res.Rows).Int("batch", res.Batches).Msg("seed: batch written")
	}

	log.Info().Int("rows", res.Rows).Int("batches", res.Batches).Str("source", res.Source).Msg("seed: published")
	return res, nil
}
