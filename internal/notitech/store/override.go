package store

import "context"

// WithResetCodes returns a Store that serves reset codes from rc and
// everything else from base. Transactions opened on the result cover only
// base; writes to rc take effect immediately.
func WithResetCodes(base Store, rc ResetCodes) Store {
	return &resetCodesOverride{Store: base, rc: rc}
}

type resetCodesOverride struct {
	Store
	rc ResetCodes
}

func (o *resetCodesOverride) ResetCodes() ResetCodes { return o.rc }

func (o *resetCodesOverride) Tx(ctx context.Context) (Tx, error) {
	tx, err := o.Store.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return &resetCodesOverrideTx{inner: tx, rc: o.rc}, nil
}

func (o *resetCodesOverride) WithTx(ctx context.Context, fn func(tx Tx) error) error {
	return o.Store.WithTx(ctx, func(tx Tx) error {
		return fn(&resetCodesOverrideTx{inner: tx, rc: o.rc})
	})
}

// resetCodesOverrideTx forwards everything to the wrapped transaction
// except ResetCodes.
type resetCodesOverrideTx struct {
	inner Tx
	rc    ResetCodes
}

func (t *resetCodesOverrideTx) ResetCodes() ResetCodes { return t.rc }

func (t *resetCodesOverrideTx) Users() Users           { return t.inner.Users() }
func (t *resetCodesOverrideTx) Notes() Notes           { return t.inner.Notes() }
func (t *resetCodesOverrideTx) Reminders() Reminders   { return t.inner.Reminders() }
func (t *resetCodesOverrideTx) Statistics() Statistics { return t.inner.Statistics() }

func (t *resetCodesOverrideTx) ApplyMigrations() error         { return t.inner.ApplyMigrations() }
func (t *resetCodesOverrideTx) Close() error                   { return t.inner.Close() }
func (t *resetCodesOverrideTx) Ping(ctx context.Context) error { return t.inner.Ping(ctx) }
func (t *resetCodesOverrideTx) Commit() error                  { return t.inner.Commit() }
func (t *resetCodesOverrideTx) Rollback() error                { return t.inner.Rollback() }

func (t *resetCodesOverrideTx) Tx(ctx context.Context) (Tx, error) { return t.inner.Tx(ctx) }

func (t *resetCodesOverrideTx) WithTx(ctx context.Context, fn func(tx Tx) error) error {
	return t.inner.WithTx(ctx, func(tx Tx) error {
		return fn(&resetCodesOverrideTx{inner: tx, rc: t.rc})
	})
}
