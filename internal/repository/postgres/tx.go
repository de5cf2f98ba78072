package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/s21platform/livestream-service/internal/pkg/tx"
)

type queryEngine interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Chk returns the transaction bound to ctx when there is one, otherwise the
// shared connection pool.
func (r *Repository) Chk(ctx context.Context) queryEngine {
	if sqlTx, ok := tx.SQLTxFromContext(ctx); ok {
		return sqlTx
	}
	return r.connection
}

// WithTx runs cb inside one transaction; repository calls made with the ctx
// passed to cb go through it.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	sqlTx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(tx.ContextWithSQLTx(ctx, sqlTx)); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback transaction: %v (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}
