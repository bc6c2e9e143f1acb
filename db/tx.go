package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// TxBeginner is satisfied by *sql.DB and *sql.Conn.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// WithTx runs fn as one unit of work. The transaction is committed when fn
// returns nil and rolled back otherwise; a panic inside fn rolls back and
// re-panics. Rollback failures are logged and never replace the original error.
func WithTx(ctx context.Context, conn TxBeginner, fn func(tx *sql.Tx) error) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				slog.ErrorContext(ctx, "rollback failed",
					slog.Any("error", rbErr),
					slog.Any("cause", err),
				)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	return fn(tx)
}
