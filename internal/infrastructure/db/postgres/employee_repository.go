package postgres

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/alesthetic/booking-api/internal/core/domain"
)

type EmployeeRepository struct {
	*CrudRepository[domain.Employee]
	db *bun.DB
}

func NewEmployeeRepository(db *bun.DB) *EmployeeRepository {
	return &EmployeeRepository{
		CrudRepository: NewCrudRepository[domain.Employee](db),
		db:             db,
	}
}

// FindByFirstName backs the duplicate-employee check, which keys on first
// name only.
func (r *EmployeeRepository) FindByFirstName(ctx context.Context, firstName string) (*domain.Employee, error) {
	return findOne[domain.Employee](ctx, r.db, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("first_name = ?", firstName)
	})
}
