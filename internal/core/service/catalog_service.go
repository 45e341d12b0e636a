package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/alesthetic/booking-api/internal/core/domain"
	"github.com/alesthetic/booking-api/internal/core/ports"
)

// CatalogService manages the clinic's bookable service catalog.
type CatalogService struct {
	repo   ports.ServiceRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) Create(ctx context.Context, in ports.ServiceInput) (*domain.Service, error) {
	existing, err := s.repo.FindByName(ctx, in.Name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrServiceExists
	}

	svc := &domain.Service{
		Name:        in.Name,
		Description: in.Description,
		Duration:    in.Duration,
		Price:       in.Price,
	}

	unit := s.repo.Begin()
	if err := unit.Create(ctx, svc); err != nil {
		return nil, err
	}
	if err := unit.Save(ctx); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrServiceExists
		}
		s.logger.Error().Err(err).Msg("failed to create service")
		return nil, err
	}

	s.logger.Info().Int64("service_id", svc.ID).Str("name", svc.Name).Msg("service created")
	return svc, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrServiceNotFound)
	}
	return svc, nil
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Update(ctx context.Context, id int64, in ports.ServiceInput) (*domain.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrServiceNotFound)
	}

	svc.Name = in.Name
	svc.Description = in.Description
	svc.Duration = in.Duration
	svc.Price = in.Price

	unit := s.repo.Begin()
	if err := unit.Update(ctx, svc); err != nil {
		return nil, err
	}
	if err := unit.Save(ctx); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrServiceExists
		}
		s.logger.Error().Err(err).Int64("service_id", id).Msg("failed to update service")
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFoundAs(err, domain.ErrServiceNotFound)
	}

	unit := s.repo.Begin()
	if err := unit.Remove(ctx, svc); err != nil {
		return err
	}
	if err := unit.Save(ctx); err != nil {
		s.logger.Error().Err(err).Int64("service_id", id).Msg("failed to delete service")
		return err
	}
	return nil
}
