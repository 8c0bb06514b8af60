package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
)

// Database is the query surface repositories work against. Both pgxpool.Pool
// wrappers and pgxmock satisfy it.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type TransactionalFn func(ctx context.Context) error

// TXManager runs a function inside a single database transaction. Queries made
// through the Database returned by New pick up the transaction from ctx.
type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type txKeyType struct{}

var txKey txKeyType

type DB struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *DB {
	return &DB{pool: pool}
}

func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx, ok := ctx.Value(txKey).(pgx.Tx); ok {
		return tx.Query(ctx, sql, args...)
	}
	return db.pool.Query(ctx, sql, args...)
}

func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx, ok := ctx.Value(txKey).(pgx.Tx); ok {
		return tx.QueryRow(ctx, sql, args...)
	}
	return db.pool.QueryRow(ctx, sql, args...)
}

func (db *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx, ok := ctx.Value(txKey).(pgx.Tx); ok {
		return tx.Exec(ctx, sql, args...)
	}
	return db.pool.Exec(ctx, sql, args...)
}

type Manager struct {
	pool *pgxpool.Pool
}

func NewTXManager(pool *pgxpool.Pool) *Manager {
	return &Manager{pool: pool}
}

// Begin executes fn inside a transaction. Serialization and deadlock failures
// are retried once; a second failure surfaces as domain.ErrUnavailable so
// callers see a clean rejection instead of a driver error.
func (m *Manager) Begin(ctx context.Context, fn TransactionalFn) error {
	err := m.run(ctx, fn)
	if err != nil && isRetryable(err) {
		zap.L().Warn("transaction failed with retryable error, retrying once", zap.Error(err))
		err = m.run(ctx, fn)
		if err != nil && isRetryable(err) {
			return domain.ErrUnavailable
		}
	}
	return err
}

func (m *Manager) run(ctx context.Context, fn TransactionalFn) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}
	txCtx := context.WithValue(ctx, txKey, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("rollback failed", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit(ctx)
}

const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == serializationFailure || pgErr.Code == deadlockDetected
	}
	return false
}

// IsUniqueViolation reports whether err is a unique-constraint violation,
// optionally for a specific constraint name.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
