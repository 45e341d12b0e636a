package ports

import (
	"context"
	"time"

	"github.com/alesthetic/booking-api/internal/core/domain"
)

// Repository is the uniform persistence contract shared by every entity kind.
// Reads run directly against the store. Writes go through a Unit obtained
// from Begin: each workflow call opens its own unit, so the write set of one
// request can never mix with another's.
type Repository[T any] interface {
	// List returns all records in storage order.
	List(ctx context.Context) ([]T, error)
	// GetByID returns domain.ErrNotFound when no record has the given id.
	GetByID(ctx context.Context, id int64) (*T, error)
	// Begin opens a fresh unit of work holding nothing.
	Begin() Unit[T]
}

// Unit is a single caller's unit of work. Create, Update, and Remove only
// stage writes; nothing is durable until Save, which commits everything
// staged on this unit as one store transaction. A unit is not safe for
// concurrent use and is discarded after Save.
type Unit[T any] interface {
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Remove(ctx context.Context, entity *T) error
	Save(ctx context.Context) error
}

// The typed finders below replace the old scan-all-and-match-a-field-by-name
// lookups: each entity exposes exactly the finders that make sense for it,
// backed by an indexed query.

type CustomerRepository interface {
	Repository[domain.Customer]
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
}

type EmployeeRepository interface {
	Repository[domain.Employee]
	FindByFirstName(ctx context.Context, firstName string) (*domain.Employee, error)
}

type ServiceRepository interface {
	Repository[domain.Service]
	FindByName(ctx context.Context, name string) (*domain.Service, error)
}

type AppointmentRepository interface {
	Repository[domain.Appointment]
	// FindByDateTime looks up the appointment occupying the exact slot, if any.
	FindByDateTime(ctx context.Context, at time.Time) (*domain.Appointment, error)
	// GetWithRelations loads an appointment with its customer, employee and
	// service populated.
	GetWithRelations(ctx context.Context, id int64) (*domain.Appointment, error)
	// ListPage returns a window of appointments in storage order with
	// relations populated.
	ListPage(ctx context.Context, offset, limit int) ([]domain.Appointment, error)
	Count(ctx context.Context) (int, error)
}

// UserRepository is deliberately narrower than Repository: accounts are
// created directly and only ever read back by username.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
