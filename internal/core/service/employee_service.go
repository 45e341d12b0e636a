package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/alesthetic/booking-api/internal/core/domain"
	"github.com/alesthetic/booking-api/internal/core/ports"
)

type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

// Create registers a practitioner. The duplicate check keys on first name.
func (s *EmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	existing, err := s.repo.FindByFirstName(ctx, in.FirstName)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmployeeExists
	}

	employee := &domain.Employee{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}

	unit := s.repo.Begin()
	if err := unit.Create(ctx, employee); err != nil {
		return nil, err
	}
	if err := unit.Save(ctx); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrEmployeeExists
		}
		s.logger.Error().Err(err).Msg("failed to create employee")
		return nil, err
	}

	s.logger.Info().Int64("employee_id", employee.ID).Msg("employee created")
	return employee, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrEmployeeNotFound)
	}
	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, id int64, in ports.EmployeeInput) (*domain.Employee, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrEmployeeNotFound)
	}

	employee.FirstName = in.FirstName
	employee.LastName = in.LastName
	employee.Email = in.Email
	employee.PhoneNumber = in.PhoneNumber

	unit := s.repo.Begin()
	if err := unit.Update(ctx, employee); err != nil {
		return nil, err
	}
	if err := unit.Save(ctx); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrEmployeeExists
		}
		s.logger.Error().Err(err).Int64("employee_id", id).Msg("failed to update employee")
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFoundAs(err, domain.ErrEmployeeNotFound)
	}

	unit := s.repo.Begin()
	if err := unit.Remove(ctx, employee); err != nil {
		return err
	}
	if err := unit.Save(ctx); err != nil {
		s.logger.Error().Err(err).Int64("employee_id", id).Msg("failed to delete employee")
		return err
	}
	return nil
}
