package domain

import "github.com/uptrace/bun"

// Service is a bookable treatment from the clinic catalog. Name is the
// natural lookup key and must be unique at creation time. Duration is in
// minutes; Price maps to numeric(10,2) in the store.
type Service struct {
	bun.BaseModel `bun:"table:services,alias:service"`

	ID          int64   `bun:"id,pk,autoincrement" json:"serviceId"`
	Name        string  `bun:"name,notnull" json:"serviceName"`
	Description string  `bun:"description" json:"description"`
	Duration    int     `bun:"duration,notnull" json:"duration"`
	Price       float64 `bun:"price,notnull" json:"price"`

	Appointments []*Appointment `bun:"rel:has-many,join:id=service_id" json:"-"`
}
