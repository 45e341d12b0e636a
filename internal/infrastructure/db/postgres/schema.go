package postgres

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/alesthetic/booking-api/internal/core/domain"
)

// EnsureSchema creates the tables and the unique indexes backing the
// uniqueness rules. Application-level existence checks can race between
// concurrent requests; these indexes are the final authority.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*domain.Customer)(nil),
		(*domain.Employee)(nil),
		(*domain.Service)(nil),
		(*domain.Appointment)(nil),
		(*domain.User)(nil),
	}
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	indexes := []struct {
		name   string
		table  string
		column string
	}{
		{"customers_email_key", "customers", "email"},
		{"employees_first_name_key", "employees", "first_name"},
		{"services_name_key", "services", "name"},
		{"appointments_scheduled_at_key", "appointments", "scheduled_at"},
		{"users_username_key", "users", "username"},
	}
	for _, idx := range indexes {
		_, err := db.NewCreateIndex().
			Unique().
			IfNotExists().
			Index(idx.name).
			Table(idx.table).
			Column(idx.column).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("create index %s: %w", idx.name, err)
		}
	}
	return nil
}
