package handler

import (
	"errors"
	"strings"
	"testing"
)

func TestValidator_CollectsAllFailures(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&serviceRequest{Duration: -5})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d: %v", len(ve.Messages), ve.Messages)
	}

	joined := ve.Error()
	for _, want := range []string{"servicename is required", "duration must be greater than 0", "price is required"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing message %q in %q", want, joined)
		}
	}
}

func TestValidator_EmailRule(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&customerRequest{FirstName: "Ana", LastName: "Lima", Email: "nope"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Messages) != 1 || !strings.Contains(ve.Messages[0], "must be a valid email") {
		t.Fatalf("unexpected messages: %v", ve.Messages)
	}
}

func TestValidator_ValidInput(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&serviceRequest{ServiceName: "Facial", Duration: 45, Price: 80})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
