package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/deliverhub/wallet-ledger/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// hookKey carries the commit hook list of the outermost transaction
type hookKey struct{}

// commitHooks collects callbacks to run once the outermost transaction
// commits. A rolled-back unit never runs its hooks.
type commitHooks struct {
	fns []func(ctx context.Context)
}

// TxRunner executes a function inside a single database transaction. The
// transaction is carried in the context so that every repository call made by
// the function lands on the same connection; this is what makes a wallet
// write plus a ledger append one atomic unit.
type TxRunner struct {
	db *sqlx.DB
}

func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Do runs fn within a transaction, committing on nil and rolling back on
// error or panic. If the context already carries a transaction, fn joins it
// and the outermost Do decides the outcome.
func (r *TxRunner) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	hooks := &commitHooks{}
	txCtx := context.WithValue(setTxToContext(ctx, tx), hookKey{}, hooks)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return err
	}

	// Hooks fire on the caller's context: the transaction is gone.
	for _, hook := range hooks.fns {
		hook(ctx)
	}
	return nil
}

// OnCommit defers fn until the outermost transaction in ctx commits, so
// side effects like audit emits never describe a unit that rolled back.
// Outside a transaction fn runs immediately.
func OnCommit(ctx context.Context, fn func(ctx context.Context)) {
	if hooks, ok := ctx.Value(hookKey{}).(*commitHooks); ok {
		hooks.fns = append(hooks.fns, fn)
		return
	}
	fn(ctx)
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from the context. Returns nil if not present.
func TxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// executor resolves the statement executor for the current context: the
// context's transaction when one is open, the bare pool otherwise.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
