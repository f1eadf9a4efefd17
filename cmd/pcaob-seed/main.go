package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"pcaobdash/internal/adapters/source"
	"pcaobdash/internal/core/inspection"
	"pcaobdash/internal/core/version"
	"pcaobdash/internal/modkit/repokit"
	"pcaobdash/internal/platform/config"
	"pcaobdash/internal/platform/logger"
	"pcaobdash/internal/platform/store"

	seeddom "pcaobdash/internal/services/seed/domain"
	seedrepo "pcaobdash/internal/services/seed/repo"
	seedsvc "pcaobdash/internal/services/seed/service"
)

func main() {
	var (
		fPath     = flag.String("path", "pcaob_data.csv", "dataset file to publish")
		fKind     = flag.String("kind", "", "file kind: csv | parquet | xlsx (default from extension)")
		fSheet    = flag.String("sheet", "", "xlsx sheet, first sheet when empty")
		fTo       = flag.String("to", "postgres", "target store: postgres | clickhouse")
		fTable    = flag.String("table", "pcaob_inspections", "target table, optionally schema qualified")
		fTruncate = flag.Bool("truncate", false, "empty the table before writing")
		fBatch    = flag.Int("batch", seeddom.DefaultBatchSize, "records per insert")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l := logger.Get()

	switch source.Kind(*fKind) {
	case source.KindPostgres, source.KindClickhouse:
		l.Panic().Str("kind", *fKind).Msg("-kind must be a file kind")
	}

	target := seeddom.Target(*fTo)
	st := openStore(ctx, target)
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	var w seeddom.Writer
	switch target {
	case seeddom.TargetPostgres:
		w = seedrepo.NewPG(st.PG)
	case seeddom.TargetClickhouse:
		w = seedrepo.NewCH(st.CH)
	}

	src, err := source.Open(source.Config{Kind: source.Kind(*fKind), Path: *fPath, Sheet: *fSheet}, nil)
	if err != nil {
		l.Panic().Err(err).Msg("dataset source")
	}
	ds, err := inspection.Load(ctx, src)
	if err != nil {
		l.Fatal().Err(err).Str("source", src.Name()).Msg("dataset load failed")
	}

	res, err := seedsvc.New(w).Publish(ctx, ds, seeddom.Options{
		Table:     *fTable,
		Truncate:  *fTruncate,
		BatchSize: *fBatch,
	})
	if err != nil {
		l.Fatal().Err(err).Int("rows", res.Rows).Msg("seed failed")
	}
	l.Info().
		Str("target", string(res.Target)).
		Str("table", res.Table).
		Int("rows", res.Rows).
		Int("batches", res.Batches).
		Str("version", version.String()).
		Msg("seed complete")
}

// openStore enables only the target backend
func openStore(ctx context.Context, target seeddom.Target) *store.Store {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	cfg := store.Config{AppName: "pcaob-seed"}
	switch target {
	case seeddom.TargetPostgres:
		cfg.PG = store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 2000),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		}
	case seeddom.TargetClickhouse:
		cfg.CH = store.CHConfig{
			Enabled:  true,
			URL:      chCfg.MustString("DBURL"),
			Role:     "seed",
			Tag:      version.String(),
			MaxConns: chCfg.MayInt("MAX_CONNS", 2),
		}
	default:
		logger.Get().Panic().Str("to", string(target)).Msg("-to must be postgres or clickhouse")
	}

	st, err := store.Open(ctx, cfg, store.WithLogger(*logger.Get()))
	if err != nil {
		logger.Get().Panic().Err(err).Msg("store.Open failed")
	}
	return st
}
