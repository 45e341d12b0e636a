package domain

import (
	"time"

	"github.com/uptrace/bun"
)

// Appointment books one customer with one employee for one service at a fixed
// time. At most one appointment may exist per exact scheduled time across the
// whole clinic; the unique index on scheduled_at is the final authority.
type Appointment struct {
	bun.BaseModel `bun:"table:appointments,alias:appointment"`

	ID          int64     `bun:"id,pk,autoincrement" json:"appointmentId"`
	CustomerID  int64     `bun:"customer_id,notnull" json:"customerId"`
	EmployeeID  int64     `bun:"employee_id,notnull" json:"employeeId"`
	ServiceID   int64     `bun:"service_id,notnull" json:"serviceId"`
	ScheduledAt time.Time `bun:"scheduled_at,notnull" json:"appointmentDateTime"`
	Status      string    `bun:"status,notnull" json:"status"`
	Notes       string    `bun:"notes" json:"notes"`

	Customer *Customer `bun:"rel:belongs-to,join:customer_id=id" json:"customer,omitempty"`
	Employee *Employee `bun:"rel:belongs-to,join:employee_id=id" json:"employee,omitempty"`
	Service  *Service  `bun:"rel:belongs-to,join:service_id=id" json:"service,omitempty"`
}
