package postgres

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/alesthetic/booking-api/internal/core/domain"
)

// AppointmentRepository adds the slot lookup and the relation-populating
// reads on top of the generic CRUD contract.
type AppointmentRepository struct {
	*CrudRepository[domain.Appointment]
	db *bun.DB
}

func NewAppointmentRepository(db *bun.DB) *AppointmentRepository {
	return &AppointmentRepository{
		CrudRepository: NewCrudRepository[domain.Appointment](db),
		db:             db,
	}
}

// FindByDateTime returns the appointment occupying the exact slot, or
// domain.ErrNotFound when the slot is free.
func (r *AppointmentRepository) FindByDateTime(ctx context.Context, at time.Time) (*domain.Appointment, error) {
	return findOne[domain.Appointment](ctx, r.db, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("scheduled_at = ?", at)
	})
}

func (r *AppointmentRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Appointment, error) {
	return findOne[domain.Appointment](ctx, r.db, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Relation("Customer").
			Relation("Employee").
			Relation("Service").
			Where("appointment.id = ?", id)
	})
}

func (r *AppointmentRepository) ListPage(ctx context.Context, offset, limit int) ([]domain.Appointment, error) {
	rows := make([]domain.Appointment, 0, limit)
	err := r.db.NewSelect().
		Model(&rows).
		Relation("Customer").
		Relation("Employee").
		Relation("Service").
		OrderExpr("appointment.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentRepository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*domain.Appointment)(nil)).Count(ctx)
}
