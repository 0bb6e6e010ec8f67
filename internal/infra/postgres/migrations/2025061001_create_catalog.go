package migrations

import (
	"context"
	_ "embed"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

//go:embed 0001_create_catalog.sql
var createCatalogSQL string

var Migrations = migrate.NewMigrations()

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(createCatalogSQL)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			if _, err := db.Exec(`DROP TABLE IF EXISTS questions`); err != nil {
				return err
			}
			_, err := db.Exec(`DROP TABLE IF EXISTS quizzes`)
			return err
		},
	)
}
