package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alesthetic/booking-api/internal/core/domain"
	"github.com/alesthetic/booking-api/internal/core/ports"
)

func TestCatalogService_Create_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := newStubServiceRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	created, err := svc.Create(ctx, ports.ServiceInput{Name: "Facial", Duration: 45, Price: 80})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	_, err = svc.Create(ctx, ports.ServiceInput{Name: "Facial", Duration: 60, Price: 120})
	if !errors.Is(err, domain.ErrServiceExists) {
		t.Fatalf("expected ErrServiceExists, got %v", err)
	}
	if len(repo.items) != 1 {
		t.Fatalf("rejected create must not persist, have %d services", len(repo.items))
	}
}

func TestCatalogService_GetUpdateDelete_Roundtrip(t *testing.T) {
	ctx := context.Background()
	repo := newStubServiceRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	seeded := repo.seed(&domain.Service{Name: "Facial", Description: "Deep cleanse", Duration: 45, Price: 80})

	got, err := svc.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Facial" {
		t.Fatalf("unexpected service: %+v", got)
	}

	updated, err := svc.Update(ctx, seeded.ID, ports.ServiceInput{Name: "Facial Plus", Duration: 60, Price: 120})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Facial Plus" || updated.Description != "" {
		t.Fatalf("update must overwrite every field: %+v", updated)
	}

	if err := svc.Delete(ctx, seeded.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, seeded.ID); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound after delete, got %v", err)
	}
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newStubServiceRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	_, err := svc.Update(ctx, 9, ports.ServiceInput{Name: "Peel", Duration: 30, Price: 50})
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}
