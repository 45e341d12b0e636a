package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/alesthetic/booking-api/internal/core/domain"
	"github.com/alesthetic/booking-api/internal/core/ports"
)

// AppointmentService orchestrates the booking workflow: slot-uniqueness
// check, reference resolution, and the staged create/update/delete cycle.
type AppointmentService struct {
	appointments ports.AppointmentRepository
	customers    ports.CustomerRepository
	employees    ports.EmployeeRepository
	services     ports.ServiceRepository
	logger       zerolog.Logger
}

func NewAppointmentService(
	appointments ports.AppointmentRepository,
	customers ports.CustomerRepository,
	employees ports.EmployeeRepository,
	services ports.ServiceRepository,
	logger zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		customers:    customers,
		employees:    employees,
		services:     services,
		logger:       logger,
	}
}

// Create books a new appointment. The requested slot must be free across the
// whole clinic and every referenced entity must exist; a missing reference
// rejects the request instead of leaving a dangling booking.
func (s *AppointmentService) Create(ctx context.Context, in ports.AppointmentInput) (*domain.Appointment, error) {
	existing, err := s.appointments.FindByDateTime(ctx, in.ScheduledAt)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSlotTaken
	}

	if _, err := s.customers.GetByID(ctx, in.CustomerID); err != nil {
		return nil, notFoundAs(err, domain.ErrCustomerNotFound)
	}
	if _, err := s.employees.GetByID(ctx, in.EmployeeID); err != nil {
		return nil, notFoundAs(err, domain.ErrEmployeeNotFound)
	}
	if _, err := s.services.GetByID(ctx, in.ServiceID); err != nil {
		return nil, notFoundAs(err, domain.ErrServiceNotFound)
	}

	appt := &domain.Appointment{
		CustomerID:  in.CustomerID,
		EmployeeID:  in.EmployeeID,
		ServiceID:   in.ServiceID,
		ScheduledAt: in.ScheduledAt,
		Status:      in.Status,
		Notes:       in.Notes,
	}

	unit := s.appointments.Begin()
	if err := unit.Create(ctx, appt); err != nil {
		return nil, err
	}
	if err := unit.Save(ctx); err != nil {
		// Two concurrent creates can both pass the slot check; the unique
		// index on scheduled_at decides the race.
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrSlotTaken
		}
		s.logger.Error().Err(err).Msg("failed to create appointment")
		return nil, err
	}

	s.logger.Info().
		Int64("appointment_id", appt.ID).
		Time("scheduled_at", appt.ScheduledAt).
		Msg("appointment created")

	return s.appointments.GetWithRelations(ctx, appt.ID)
}

func (s *AppointmentService) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.appointments.GetWithRelations(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrAppointmentNotFound)
	}
	return appt, nil
}

// List returns one page of appointments in storage order with relations
// populated. Pages are 1-based; a page outside [1, totalPages] is rejected.
func (s *AppointmentService) List(ctx context.Context, page, pageSize int) (*ports.AppointmentPage, error) {
	if pageSize <= 0 {
		return nil, domain.ErrInvalidPageSize
	}

	total, err := s.appointments.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := (total + pageSize - 1) / pageSize
	if page < 1 || page > totalPages {
		return nil, domain.ErrInvalidPage
	}

	items, err := s.appointments.ListPage(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	return &ports.AppointmentPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Update overwrites every mutable field from the payload. The slot check is
// not repeated here; the unique index still rejects a colliding date-time.
func (s *AppointmentService) Update(ctx context.Context, id int64, in ports.AppointmentInput) (*domain.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrAppointmentNotFound)
	}

	appt.CustomerID = in.CustomerID
	appt.EmployeeID = in.EmployeeID
	appt.ServiceID = in.ServiceID
	appt.ScheduledAt = in.ScheduledAt
	appt.Status = in.Status
	appt.Notes = in.Notes

	unit := s.appointments.Begin()
	if err := unit.Update(ctx, appt); err != nil {
		return nil, err
	}
	if err := unit.Save(ctx); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrSlotTaken
		}
		s.logger.Error().Err(err).Int64("appointment_id", id).Msg("failed to update appointment")
		return nil, err
	}

	return s.appointments.GetWithRelations(ctx, appt.ID)
}

func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return notFoundAs(err, domain.ErrAppointmentNotFound)
	}

	unit := s.appointments.Begin()
	if err := unit.Remove(ctx, appt); err != nil {
		return err
	}
	if err := unit.Save(ctx); err != nil {
		s.logger.Error().Err(err).Int64("appointment_id", id).Msg("failed to delete appointment")
		return err
	}

	s.logger.Info().Int64("appointment_id", id).Msg("appointment deleted")
	return nil
}

// notFoundAs substitutes the entity-specific sentinel for the store-level
// not-found error, passing every other error through unchanged.
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return sentinel
	}
	return err
}
