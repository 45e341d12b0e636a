package domain

import (
	"time"

	"github.com/uptrace/bun"
)

// Customer is a clinic client. Email is the natural lookup key and must be
// unique at creation time.
type Customer struct {
	bun.BaseModel `bun:"table:customers,alias:customer"`

	ID          int64     `bun:"id,pk,autoincrement" json:"customerId"`
	FirstName   string    `bun:"first_name,notnull" json:"firstName"`
	LastName    string    `bun:"last_name,notnull" json:"lastName"`
	Email       string    `bun:"email,notnull" json:"email"`
	PhoneNumber string    `bun:"phone_number" json:"phoneNumber"`
	Address     string    `bun:"address" json:"address"`
	DateOfBirth time.Time `bun:"date_of_birth" json:"dateOfBirth"`

	Appointments []*Appointment `bun:"rel:has-many,join:id=customer_id" json:"-"`
}
