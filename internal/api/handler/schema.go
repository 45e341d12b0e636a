package handler

import "time"

// Request types. Responses reuse the domain entities, whose JSON tags define
// the wire contract.

type appointmentRequest struct {
	CustomerID          int64     `json:"customerId" validate:"required"`
	EmployeeID          int64     `json:"employeeId" validate:"required"`
	ServiceID           int64     `json:"serviceId" validate:"required"`
	AppointmentDateTime time.Time `json:"appointmentDateTime" validate:"required"`
	Status              string    `json:"status" validate:"required"`
	Notes               string    `json:"notes"`
}

type customerRequest struct {
	FirstName   string    `json:"firstName" validate:"required"`
	LastName    string    `json:"lastName" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

type employeeRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
}

type serviceRequest struct {
	ServiceName string  `json:"serviceName" validate:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

type tokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
