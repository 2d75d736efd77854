package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"

	"marketplace/internal/pkg/errs"

	_ "github.com/lib/pq" // registers the "postgres" driver for goose
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending schema migration. It opens its own
// connection so that it can run before the gorm pool is created.
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return errs.NewInfrastructureError("open migration connection", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errs.NewInfrastructureError("set migration dialect", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil && !errors.Is(err, goose.ErrNoNextVersion) {
		return errs.NewInfrastructureError("apply migrations", err)
	}
	return nil
}
