package postgres

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/alesthetic/booking-api/internal/core/domain"
)

type ServiceRepository struct {
	*CrudRepository[domain.Service]
	db *bun.DB
}

func NewServiceRepository(db *bun.DB) *ServiceRepository {
	return &ServiceRepository{
		CrudRepository: NewCrudRepository[domain.Service](db),
		db:             db,
	}
}

// FindByName looks a catalog service up by its natural key.
func (r *ServiceRepository) FindByName(ctx context.Context, name string) (*domain.Service, error) {
	return findOne[domain.Service](ctx, r.db, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("name = ?", name)
	})
}
