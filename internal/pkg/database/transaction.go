package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type transactionContextKey struct{}

var txContextKey = transactionContextKey{}

// TxManager runs functions inside a database transaction. Repository calls
// made with the context passed to fn pick up the transaction through
// QuerierFromContext.
type TxManager struct {
	db *DB
}

func NewTxManager(db *DB) *TxManager {
	if db == nil {
		return nil
	}
	return &TxManager{db: db}
}

// WithinTransaction begins a transaction, runs fn with a transaction-carrying
// context and commits, rolling back when fn returns an error. A nil manager
// runs fn directly so service tests can run without a database. Nested calls
// reuse the outer transaction.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}

	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	txCtx := context.WithValue(ctx, txContextKey, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// QuerierFromContext returns the transaction stored in ctx, or fallback when
// the call is not transactional.
func QuerierFromContext(ctx context.Context, fallback Querier) Querier {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return fallback
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	if ctx == nil {
		return nil, false
	}
	tx, ok := ctx.Value(txContextKey).(pgx.Tx)
	return tx, ok
}
