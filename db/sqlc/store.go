package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Store provides all query functions plus the transactional boundary the
// transfer engine commits through. Implemented by SQLStore against Postgres
// and by stub stores in tests.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(q Querier) error) error
	ExecSerializableTx(ctx context.Context, fn func(q Querier) error) error
}

type SQLStore struct {
	*Queries
	DB *sql.DB
}

func NewStore(db *sql.DB) *SQLStore {
	return &SQLStore{
		DB:      db,
		Queries: New(db),
	}
}

func (s *SQLStore) ExecTx(ctx context.Context, fn func(q Querier) error) error {
	return s.execTx(ctx, nil, fn)
}

// ExecSerializableTx runs fn inside a serializable transaction. Balance
// mutations and their ledger rows go through here so that either every
// write commits or none do.
func (s *SQLStore) ExecSerializableTx(ctx context.Context, fn func(q Querier) error) error {
	return s.execTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (s *SQLStore) execTx(ctx context.Context, opts *sql.TxOptions, fn func(q Querier) error) error {
	tx, err := s.DB.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	q := New(tx)
	if err := fn(q); err != nil {
		if txErr := tx.Rollback(); txErr != nil && txErr != sql.ErrTxDone {
			return fmt.Errorf("encountered rollback error: %v (original: %w)", txErr, err)
		}
		return err
	}

	return tx.Commit()
}
