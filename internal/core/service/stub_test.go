package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/alesthetic/booking-api/internal/core/domain"
	"github.com/alesthetic/booking-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories honoring the Begin/Unit contract: writes stage
// on a per-caller unit and apply on that unit's Save only.
// ---------------------------------------------------------------------------

type stubRepo[T any] struct {
	items   map[int64]*T
	nextID  int64
	idOf    func(*T) int64
	setID   func(*T, int64)
	saveErr error // if set, Save fails and discards that unit's stage
	saves   int
}

func newStubRepo[T any](idOf func(*T) int64, setID func(*T, int64)) *stubRepo[T] {
	return &stubRepo[T]{items: make(map[int64]*T), idOf: idOf, setID: setID}
}

func (r *stubRepo[T]) sortedIDs() []int64 {
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *stubRepo[T]) List(context.Context) ([]T, error) {
	out := make([]T, 0, len(r.items))
	for _, id := range r.sortedIDs() {
		out = append(out, *r.items[id])
	}
	return out, nil
}

func (r *stubRepo[T]) GetByID(_ context.Context, id int64) (*T, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubRepo[T]) Begin() ports.Unit[T] {
	return &stubUnit[T]{repo: r}
}

// stubUnit mirrors the store's unit of work: staged ops are private to the
// unit and apply only when its own Save succeeds.
type stubUnit[T any] struct {
	repo   *stubRepo[T]
	staged []func()
}

func (u *stubUnit[T]) Create(_ context.Context, entity *T) error {
	u.staged = append(u.staged, func() {
		u.repo.nextID++
		u.repo.setID(entity, u.repo.nextID)
		clone := *entity
		u.repo.items[u.repo.idOf(entity)] = &clone
	})
	return nil
}

func (u *stubUnit[T]) Update(_ context.Context, entity *T) error {
	u.staged = append(u.staged, func() {
		clone := *entity
		u.repo.items[u.repo.idOf(entity)] = &clone
	})
	return nil
}

func (u *stubUnit[T]) Remove(_ context.Context, entity *T) error {
	u.staged = append(u.staged, func() {
		delete(u.repo.items, u.repo.idOf(entity))
	})
	return nil
}

func (u *stubUnit[T]) Save(context.Context) error {
	staged := u.staged
	u.staged = nil
	if u.repo.saveErr != nil {
		return u.repo.saveErr
	}
	for _, op := range staged {
		op()
	}
	u.repo.saves++
	return nil
}

// seed inserts an entity directly, bypassing the staging cycle.
func (r *stubRepo[T]) seed(entity *T) *T {
	if r.idOf(entity) == 0 {
		r.nextID++
		r.setID(entity, r.nextID)
	} else if r.idOf(entity) > r.nextID {
		r.nextID = r.idOf(entity)
	}
	clone := *entity
	r.items[r.idOf(entity)] = &clone
	return entity
}

type stubAppointmentRepo struct {
	*stubRepo[domain.Appointment]
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{newStubRepo[domain.Appointment](
		func(a *domain.Appointment) int64 { return a.ID },
		func(a *domain.Appointment, id int64) { a.ID = id },
	)}
}

func (r *stubAppointmentRepo) FindByDateTime(_ context.Context, at time.Time) (*domain.Appointment, error) {
	for _, a := range r.items {
		if a.ScheduledAt.Equal(at) {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubAppointmentRepo) GetWithRelations(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *a
	clone.Customer = &domain.Customer{ID: a.CustomerID}
	clone.Employee = &domain.Employee{ID: a.EmployeeID}
	clone.Service = &domain.Service{ID: a.ServiceID}
	return &clone, nil
}

func (r *stubAppointmentRepo) ListPage(_ context.Context, offset, limit int) ([]domain.Appointment, error) {
	ids := r.sortedIDs()
	if offset > len(ids) {
		return []domain.Appointment{}, nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	out := make([]domain.Appointment, 0, end-offset)
	for _, id := range ids[offset:end] {
		out = append(out, *r.items[id])
	}
	return out, nil
}

func (r *stubAppointmentRepo) Count(context.Context) (int, error) {
	return len(r.items), nil
}

type stubCustomerRepo struct {
	*stubRepo[domain.Customer]
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{newStubRepo[domain.Customer](
		func(c *domain.Customer) int64 { return c.ID },
		func(c *domain.Customer, id int64) { c.ID = id },
	)}
}

func (r *stubCustomerRepo) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, c := range r.items {
		if c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubEmployeeRepo struct {
	*stubRepo[domain.Employee]
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{newStubRepo[domain.Employee](
		func(e *domain.Employee) int64 { return e.ID },
		func(e *domain.Employee, id int64) { e.ID = id },
	)}
}

func (r *stubEmployeeRepo) FindByFirstName(_ context.Context, firstName string) (*domain.Employee, error) {
	for _, e := range r.items {
		if e.FirstName == firstName {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubServiceRepo struct {
	*stubRepo[domain.Service]
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{newStubRepo[domain.Service](
		func(s *domain.Service) int64 { return s.ID },
		func(s *domain.Service, id int64) { s.ID = id },
	)}
}

func (r *stubServiceRepo) FindByName(_ context.Context, name string) (*domain.Service, error) {
	for _, s := range r.items {
		if s.Name == name {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubUserRepo struct {
	byUsername map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byUsername: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := r.byUsername[user.Username]; ok {
		return domain.ErrUserExists
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	clone := *user
	r.byUsername[user.Username] = &clone
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}
