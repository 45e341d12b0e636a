package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"github.com/alesthetic/booking-api/internal/core/domain"
	"github.com/alesthetic/booking-api/internal/core/ports"
)

type stagedOp func(ctx context.Context, tx bun.Tx) error

// CrudRepository implements ports.Repository[T] on top of bun. The repository
// itself is stateless and shared; every caller gets its own unit of work from
// Begin, so staged writes stay scoped to the request that staged them.
type CrudRepository[T any] struct {
	db *bun.DB
}

func NewCrudRepository[T any](db *bun.DB) *CrudRepository[T] {
	return &CrudRepository[T]{db: db}
}

func (r *CrudRepository[T]) List(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	if err := r.db.NewSelect().Model(&rows).OrderExpr("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CrudRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return findOne[T](ctx, r.db, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}

func (r *CrudRepository[T]) Begin() ports.Unit[T] {
	return &unit[T]{db: r.db}
}

// unit collects one caller's staged writes. Save drains the stage and applies
// it in a single transaction; the unit holds no connection until then.
type unit[T any] struct {
	db     *bun.DB
	staged []stagedOp
}

func (u *unit[T]) Create(_ context.Context, entity *T) error {
	u.staged = append(u.staged, func(ctx context.Context, tx bun.Tx) error {
		// RETURNING fills the generated primary key back into the model.
		_, err := tx.NewInsert().Model(entity).Returning("id").Exec(ctx)
		return err
	})
	return nil
}

func (u *unit[T]) Update(_ context.Context, entity *T) error {
	u.staged = append(u.staged, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().Model(entity).WherePK().Exec(ctx)
		return err
	})
	return nil
}

func (u *unit[T]) Remove(_ context.Context, entity *T) error {
	u.staged = append(u.staged, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().Model(entity).WherePK().Exec(ctx)
		return err
	})
	return nil
}

func (u *unit[T]) Save(ctx context.Context) error {
	ops := u.staged
	u.staged = nil

	if len(ops) == 0 {
		return nil
	}

	err := u.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		for _, op := range ops {
			if err := op(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

// findOne runs a single-row select and maps sql.ErrNoRows to the store-level
// not-found sentinel.
func findOne[T any](ctx context.Context, db *bun.DB, apply func(*bun.SelectQuery) *bun.SelectQuery) (*T, error) {
	entity := new(T)
	if err := apply(db.NewSelect().Model(entity)).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return entity, nil
}

// isUniqueViolation reports whether err is a postgres unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
