// @title         PCAOB Inspection Dashboard API
// @version       0.1.0
// @description   Filter, aggregate, chart and export PCAOB inspection report data

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"pcaobdash/internal/adapters/render"
	"pcaobdash/internal/adapters/source"
	"pcaobdash/internal/core/inspection"
	"pcaobdash/internal/core/version"
	"pcaobdash/internal/platform/config"
	"pcaobdash/internal/platform/logger"
	"pcaobdash/internal/platform/metrics"
	phttp "pcaobdash/internal/platform/net/http"
	"pcaobdash/internal/platform/store"

	"pcaobdash/internal/services/api"
	"pcaobdash/internal/services/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// service-scoped config (PCAOB_API_*, PCAOB_DATA_*, PCAOB_WEB_*)
	root := config.New()
	apiCfg := root.Prefix("PCAOB_")
	dataCfg := root.Prefix("PCAOB_DATA_")
	webCfg := root.Prefix("PCAOB_WEB_")

	l := logger.Get()

	kind := source.Kind(dataCfg.MayEnum("KIND", "", source.Kinds()...))
	st := openStore(ctx, root, kind)
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// load once, every session reads the same snapshot
	src, err := source.Open(source.Config{
		Kind:    kind,
		Path:    dataCfg.MayString("PATH", "pcaob_data.csv"),
		Sheet:   dataCfg.MayString("SHEET", ""),
		Table:   dataCfg.MayString("TABLE", "pcaob_inspections"),
		Timeout: dataCfg.MayDuration("TIMEOUT", 30*time.Second),
	}, st)
	if err != nil {
		l.Panic().Err(err).Msg("dataset source")
	}
	ds, err := inspection.Load(ctx, src)
	if err != nil {
		l.Panic().Err(err).Str("source", src.Name()).Msg("dataset load failed")
	}
	l.Info().Str("source", ds.Source()).Int("rows", ds.Len()).Str("version", version.String()).Msg("dataset loaded")

	m := metrics.New()
	m.SetDatasetRecords(ds.Len())

	// http server (reads PCAOB_API_PORT and PCAOB_API_SHUTDOWN_GRACE, PORT wins when set)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			Dataset:        ds,
			Metrics:        m,
			EnableSwagger:  apiCfg.MayBool("API_SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("API_PROFILER", false),
			CORSOrigins:    apiCfg.MayCSV("API_CORS_ORIGINS", nil),
			ChartWidth:     apiCfg.MayInt("API_CHART_WIDTH", 0),
			ChartHeight:    apiCfg.MayInt("API_CHART_HEIGHT", 0),
		},
	)

	sessions := web.NewSessions(webCfg.MayDuration("SESSION_TTL", web.DefaultSessionTTL))
	go sessions.Run(ctx, 0)
	web.Mount(srv.Router(), web.Options{
		Sessions:     sessions,
		Theme:        webCfg.MayEnum("DEFAULT_THEME", string(render.DefaultTheme), render.Themes()...),
		SecureCookie: webCfg.MayBool("SECURE_COOKIE", false),
	})

	// Run drains in-flight requests once a signal cancels ctx
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

// openStore brings up only the backend the dataset kind reads from
func openStore(ctx context.Context, root config.Conf, kind source.Kind) *store.Store {
	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*

	cfg := store.Config{AppName: "pcaob-dashboard"}
	switch kind {
	case source.KindPostgres:
		cfg.PG = store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		}
	case source.KindClickhouse:
		cfg.CH = store.CHConfig{
			Enabled:  true,
			URL:      chCfg.MustString("DBURL"),
			Role:     "dashboard",
			Tag:      version.String(),
			MaxConns: chCfg.MayInt("MAX_CONNS", 4),
		}
	}

	st, err := store.Open(ctx, cfg, store.WithLogger(*logger.Get()))
	if err != nil {
		logger.Get().Panic().Err(err).Msg("store.Open failed")
	}
	return st
}
