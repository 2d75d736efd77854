// Package pgtest starts a migrated throwaway PostgreSQL for integration
// tests and seeds the reference rows orders depend on.
package pgtest

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Seeded ids. Users 1..3 are a client, a vendor employee and an admin;
// user 4 is a second client.
const (
	ClientID      int64 = 1
	VendorUserID  int64 = 2
	AdminID       int64 = 3
	OtherClientID int64 = 4
	VendorID      int64 = 1
	ServiceID     int64 = 1
)

// Database is a running container with an open gorm pool.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine and applies every migration.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, dsn); err != nil {
		return nil, err
	}
	db, err := postgres.Open(dsn, slog.Default())
	if err != nil {
		return nil, err
	}
	return &Database{Container: container, DB: db, DSN: dsn}, nil
}

// Reset empties every table and inserts the seeded users, vendor and
// service.
func (d *Database) Reset() error {
	statements := []string{
		`TRUNCATE TABLE order_offers, order_files, order_comments, order_status_history,
			orders, services, users, vendors RESTART IDENTITY CASCADE`,
		`INSERT INTO vendors (name, legal_name, tax_id, contacts, is_active)
			VALUES ('Acme', 'Acme LLC', '123456789012', '{"phone":"+77000000000"}', TRUE)`,
		`INSERT INTO users (name, email, role, vendor_id) VALUES
			('Client', 'client@example.com', 'CLIENT', NULL),
			('Vendor', 'vendor@example.com', 'VENDOR', 1),
			('Admin', 'admin@example.com', 'ADMIN', NULL),
			('Other', 'other@example.com', 'CLIENT', NULL)`,
		`INSERT INTO services (category, name, description, is_active)
			VALUES ('cleaning', 'Deep clean', NULL, TRUE)`,
	}
	for _, s := range statements {
		if err := d.DB.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	return d.Container.Terminate(ctx)
}
