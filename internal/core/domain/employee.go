package domain

import "github.com/uptrace/bun"

// Employee is a clinic practitioner who performs services.
type Employee struct {
	bun.BaseModel `bun:"table:employees,alias:employee"`

	ID          int64  `bun:"id,pk,autoincrement" json:"employeeId"`
	FirstName   string `bun:"first_name,notnull" json:"firstName"`
	LastName    string `bun:"last_name,notnull" json:"lastName"`
	Email       string `bun:"email" json:"email"`
	PhoneNumber string `bun:"phone_number" json:"phoneNumber"`

	Appointments []*Appointment `bun:"rel:has-many,join:id=employee_id" json:"-"`
}
