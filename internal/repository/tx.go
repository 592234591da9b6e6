package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type txKey struct{}

type lockedTx struct {
	tx           *sql.Tx
	experienceID string
}

func txFrom(ctx context.Context) *lockedTx {
	tx, _ := ctx.Value(txKey{}).(*lockedTx)
	return tx
}

// TxManager serializes work on one experience by holding its row lock for the
// lifetime of a transaction. Repositories called with the ctx handed to fn
// run inside that transaction.
type TxManager struct {
	db *dbpg.DB
}

func NewTxManager(db *dbpg.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) InExperience(ctx context.Context, experienceID string, fn func(ctx context.Context) error) error {
	if cur := txFrom(ctx); cur != nil {
		if cur.experienceID != experienceID {
			return fmt.Errorf("nested unit of work for experience %s inside %s", experienceID, cur.experienceID)
		}
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return deadline(ctx, fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback()

	var id string
	query := `SELECT id FROM experiences WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, query, experienceID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrExperienceNotFound
		}
		return deadline(ctx, fmt.Errorf("lock experience: %w", err))
	}

	if err = fn(context.WithValue(ctx, txKey{}, &lockedTx{tx: tx, experienceID: experienceID})); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return deadline(ctx, fmt.Errorf("commit: %w", err))
	}
	return nil
}

// deadline reports a cancelled statement as ErrTimeout when the caller's
// deadline is what cancelled it.
func deadline(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}
	return err
}

// base routes statements into the unit of work carried by ctx, or to the
// pool with retries when there is none.
type base struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func newBase(db *dbpg.DB) base {
	return base{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (b base) queryRow(ctx context.Context, query string, args ...interface{}) (*sql.Row, error) {
	if tx := txFrom(ctx); tx != nil {
		return tx.tx.QueryRowContext(ctx, query, args...), nil
	}
	return b.db.QueryRowWithRetry(ctx, b.strategy, query, args...)
}

func (b base) query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	if tx := txFrom(ctx); tx != nil {
		return tx.tx.QueryContext(ctx, query, args...)
	}
	return b.db.QueryWithRetry(ctx, b.strategy, query, args...)
}

func (b base) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if tx := txFrom(ctx); tx != nil {
		return tx.tx.ExecContext(ctx, query, args...)
	}
	return b.db.ExecWithRetry(ctx, b.strategy, query, args...)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func affected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
