package repokit

import (
	"context"
	"time"

	"pcaobdash/internal/platform/store"
)

// BeginHook runs first thing in every transaction with the tx bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks returns a TxRunner whose transactions run hooks, in order, before fn
// statements outside a transaction go straight to inner
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	return hookedTx{TxRunner: inner, hooks: hooks}
}

type hookedTx struct {
	TxRunner
	hooks []BeginHook
}

func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// ReadOnlyHook marks the transaction read only, dashboard reads never write
func ReadOnlyHook() BeginHook {
	return func(ctx context.Context, q Queryer) error { return store.ReadOnly(ctx, q) }
}

// StatementTimeoutHook caps every statement in the transaction at d
func StatementTimeoutHook(d time.Duration) BeginHook {
	return func(ctx context.Context, q Queryer) error { return store.StatementTimeout(ctx, q, d) }
}
