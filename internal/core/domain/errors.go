package domain

import "errors"

// Store-level sentinels returned by the generic repository. The services
// translate them into the entity-specific errors below.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrUserNotFound        = errors.New("user not found")
)

var (
	ErrSlotTaken      = errors.New("an appointment already exists for that time and date")
	ErrCustomerExists = errors.New("customer already exists")
	ErrEmployeeExists = errors.New("employee already exists")
	ErrServiceExists  = errors.New("service already exists")
	ErrUserExists     = errors.New("user already exists")
)

var (
	ErrInvalidPage     = errors.New("invalid page number")
	ErrInvalidPageSize = errors.New("invalid page size")
)

var ErrInvalidCredentials = errors.New("invalid credentials")
