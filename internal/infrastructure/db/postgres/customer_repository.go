package postgres

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/alesthetic/booking-api/internal/core/domain"
)

type CustomerRepository struct {
	*CrudRepository[domain.Customer]
	db *bun.DB
}

func NewCustomerRepository(db *bun.DB) *CustomerRepository {
	return &CustomerRepository{
		CrudRepository: NewCrudRepository[domain.Customer](db),
		db:             db,
	}
}

// FindByEmail looks a customer up by their natural key.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return findOne[domain.Customer](ctx, r.db, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("email = ?", email)
	})
}
