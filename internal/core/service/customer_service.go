package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/alesthetic/booking-api/internal/core/domain"
	"github.com/alesthetic/booking-api/internal/core/ports"
)

type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

// Create registers a customer. Email is the natural key; a customer with the
// same email already on file rejects the request.
func (s *CustomerService) Create(ctx context.Context, in ports.CustomerInput) (*domain.Customer, error) {
	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCustomerExists
	}

	customer := &domain.Customer{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		DateOfBirth: in.DateOfBirth,
	}

	unit := s.repo.Begin()
	if err := unit.Create(ctx, customer); err != nil {
		return nil, err
	}
	if err := unit.Save(ctx); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrCustomerExists
		}
		s.logger.Error().Err(err).Msg("failed to create customer")
		return nil, err
	}

	s.logger.Info().Int64("customer_id", customer.ID).Msg("customer created")
	return customer, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrCustomerNotFound)
	}
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

// Update overwrites every field from the payload. Email uniqueness is not
// re-checked here; the unique index rejects a collision on Save.
func (s *CustomerService) Update(ctx context.Context, id int64, in ports.CustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrCustomerNotFound)
	}

	customer.FirstName = in.FirstName
	customer.LastName = in.LastName
	customer.Email = in.Email
	customer.PhoneNumber = in.PhoneNumber
	customer.Address = in.Address
	customer.DateOfBirth = in.DateOfBirth

	unit := s.repo.Begin()
	if err := unit.Update(ctx, customer); err != nil {
		return nil, err
	}
	if err := unit.Save(ctx); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrCustomerExists
		}
		s.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to update customer")
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFoundAs(err, domain.ErrCustomerNotFound)
	}

	unit := s.repo.Begin()
	if err := unit.Remove(ctx, customer); err != nil {
		return err
	}
	if err := unit.Save(ctx); err != nil {
		s.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to delete customer")
		return err
	}
	return nil
}
