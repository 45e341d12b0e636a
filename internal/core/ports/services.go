package ports

import (
	"context"
	"time"

	"github.com/alesthetic/booking-api/internal/core/domain"
)

// AppointmentInput carries the appointment payload for create and update.
// Updates are full-record overwrites; there are no partial patch semantics.
type AppointmentInput struct {
	CustomerID  int64
	EmployeeID  int64
	ServiceID   int64
	ScheduledAt time.Time
	Status      string
	Notes       string
}

// AppointmentPage is one window of the appointment list plus paging totals.
type AppointmentPage struct {
	Items      []domain.Appointment
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// AppointmentService orchestrates the booking workflow.
type AppointmentService interface {
	Create(ctx context.Context, in AppointmentInput) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, page, pageSize int) (*AppointmentPage, error)
	Update(ctx context.Context, id int64, in AppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string
	DateOfBirth time.Time
}

type CustomerService interface {
	Create(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, in CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type EmployeeInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

type EmployeeService interface {
	Create(ctx context.Context, in EmployeeInput) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, id int64, in EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type ServiceInput struct {
	Name        string
	Description string
	Duration    int
	Price       float64
}

// CatalogService manages the clinic's bookable service catalog.
type CatalogService interface {
	Create(ctx context.Context, in ServiceInput) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
	Update(ctx context.Context, id int64, in ServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

// AuthService issues bearer tokens for stored accounts.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	// Refresh issues a fresh token for an already-authenticated user.
	Refresh(ctx context.Context, username string) (string, error)
	// EnsureAdmin creates the bootstrap account when it does not exist yet.
	EnsureAdmin(ctx context.Context, username, password string) error
}
