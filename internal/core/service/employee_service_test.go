package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alesthetic/booking-api/internal/core/domain"
	"github.com/alesthetic/booking-api/internal/core/ports"
)

func TestEmployeeService_Create_DuplicateFirstName(t *testing.T) {
	ctx := context.Background()
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	first, err := svc.Create(ctx, ports.EmployeeInput{FirstName: "Marta", LastName: "Reis"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	// The duplicate check keys on first name only; a different last name
	// still collides.
	_, err = svc.Create(ctx, ports.EmployeeInput{FirstName: "Marta", LastName: "Costa"})
	if !errors.Is(err, domain.ErrEmployeeExists) {
		t.Fatalf("expected ErrEmployeeExists, got %v", err)
	}
	if len(repo.items) != 1 {
		t.Fatalf("rejected create must not persist, have %d employees", len(repo.items))
	}
}

func TestEmployeeService_Create_IndexBackstop(t *testing.T) {
	ctx := context.Background()
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	repo.saveErr = domain.ErrConflict
	_, err := svc.Create(ctx, ports.EmployeeInput{FirstName: "Marta", LastName: "Reis"})
	if !errors.Is(err, domain.ErrEmployeeExists) {
		t.Fatalf("expected ErrEmployeeExists from unique index, got %v", err)
	}
}

func TestEmployeeService_Update_OverwritesAllFields(t *testing.T) {
	ctx := context.Background()
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	seeded := repo.seed(&domain.Employee{FirstName: "Marta", LastName: "Reis", Email: "marta@clinic.com", PhoneNumber: "111"})

	updated, err := svc.Update(ctx, seeded.ID, ports.EmployeeInput{FirstName: "Marta", LastName: "Costa"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.LastName != "Costa" || updated.Email != "" || updated.PhoneNumber != "" {
		t.Fatalf("update must overwrite every field: %+v", updated)
	}
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	if err := svc.Delete(ctx, 42); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
