package store

import (
	"context"
	"fmt"
	"time"

	chx "pcaobdash/internal/platform/store/ch"
	"pcaobdash/internal/platform/store/pg"
)

const (
	pingBackoffStart = 150 * time.Millisecond
	pingBackoffMax   = 2 * time.Second
)

// openPG builds the pool and pings it with doubling backoff until it answers
// the adapter is only handed out once a ping succeeded
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}
	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = 6
	}
	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	backoff := pingBackoffStart
	for i := 1; ; i++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		err = p.Pool.Ping(pctx)
		cancel()
		if err == nil {
			return newPGAdapter(p), nil
		}
		if i == attempts {
			break
		}
		s.Log.Warn().Err(err).Int("attempt", i).Dur("retry_in", backoff).Msg("postgres not ready")
		select {
		case <-ctx.Done():
			p.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, pingBackoffMax)
	}
	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, err)
}

func openCH(ctx context.Context, cfg Config, _ *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:      cfg.CH.URL,
		Role:     cfg.CH.Role,
		Tag:      cfg.CH.Tag,
		MaxConns: cfg.CH.MaxConns,
	})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
