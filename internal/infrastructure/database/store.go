package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"retreat/internal/ports/output"
)

var _ output.Store = (*Store)(nil)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements output.Store on a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Repos() output.Repositories {
	return newRepositories(s.pool)
}

// WithinTx runs fn in a read-committed transaction. Rows read through the
// ForUpdate finders stay locked until commit or rollback, which serialises
// concurrent moves of the same participation or into the same room.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos output.Repositories) error) (err error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(ctx, newRepositories(tx)); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func newRepositories(q querier) output.Repositories {
	return output.Repositories{
		Events:         NewEventRepository(q),
		Rooms:          NewRoomRepository(q),
		Persons:        NewPersonRepository(q),
		Participations: NewParticipationRepository(q),
	}
}
