package tx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
)

type key string

const (
	KeyTx    = key("tx")
	keySQLTx = key("sql_tx")
)

// DBRepo is the transactional capability the middleware carries into the
// request context.
type DBRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DBRepo
}

// TxMiddlewareHTTP makes TxExecute available to every handler downstream.
func TxMiddlewareHTTP(repo DBRepo) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside a single database transaction. Nested repository
// calls made with the ctx passed to cb share that transaction.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("no transaction provider in context")
	}

	return t.DbRepo.WithTx(ctx, cb)
}

// ContextWithSQLTx attaches an open sqlx transaction for the repository's
// Chk to pick up.
func ContextWithSQLTx(ctx context.Context, sqlTx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, keySQLTx, sqlTx)
}

func SQLTxFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	sqlTx, ok := ctx.Value(keySQLTx).(*sqlx.Tx)
	return sqlTx, ok
}
