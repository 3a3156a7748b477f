package database

import (
	"context"
	"fmt"

	"github.com/azkaafiq/consultant-api/pkg/logger"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the subset of a pool the migrations need.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Migration is one idempotent schema step.
type Migration struct {
	Name string
	SQL  string
}

// Migrations lists the schema in apply order. Every statement must be safe to rerun.
var Migrations = []Migration{
	{
		Name: "create_cons_profile",
		SQL: `
			CREATE TABLE IF NOT EXISTS cons_profile (
				user_id             BIGSERIAL PRIMARY KEY,
				role_id             BIGINT,
				name                VARCHAR(255) NOT NULL DEFAULT '',
				email               VARCHAR(255) NOT NULL DEFAULT '',
				contact_no          VARCHAR(32),
				address             VARCHAR(500),
				city                VARCHAR(100),
				state               VARCHAR(100),
				country             VARCHAR(100),
				profile_description TEXT,
				portfolio           VARCHAR(500),
				website             VARCHAR(500),
				tagged_by_admin     BOOLEAN NOT NULL DEFAULT false,
				admin_id            BIGINT,
				insert_datetime     TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		Name: "create_cons_workexperience",
		SQL: `
			CREATE TABLE IF NOT EXISTS cons_workexperience (
				work_experience_id BIGSERIAL PRIMARY KEY,
				user_id            BIGINT NOT NULL REFERENCES cons_profile(user_id),
				position           VARCHAR(255),
				company            VARCHAR(255),
				current_employer   BOOLEAN NOT NULL DEFAULT false,
				description        TEXT,
				start_date         DATE,
				end_date           DATE,
				upload_date        TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		Name: "create_cons_education",
		SQL: `
			CREATE TABLE IF NOT EXISTS cons_education (
				education_id BIGSERIAL PRIMARY KEY,
				user_id      BIGINT NOT NULL REFERENCES cons_profile(user_id),
				university   VARCHAR(255),
				course       VARCHAR(255),
				domain       VARCHAR(255),
				start_date   DATE,
				end_date     DATE
			)`,
	},
	{
		Name: "create_cons_application",
		SQL: `
			CREATE TABLE IF NOT EXISTS cons_application (
				document_id   BIGSERIAL PRIMARY KEY,
				user_id       BIGINT NOT NULL REFERENCES cons_profile(user_id),
				document_type VARCHAR(100),
				file_name     VARCHAR(255),
				file_data     BYTEA,
				upload_date   TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		Name: "index_children_by_user",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_cons_workexperience_user ON cons_workexperience(user_id);
			CREATE INDEX IF NOT EXISTS idx_cons_education_user ON cons_education(user_id);
			CREATE INDEX IF NOT EXISTS idx_cons_application_user ON cons_application(user_id)`,
	},
}

// RunMigrations executes the schema migrations in order and stops at the first failure.
func RunMigrations(ctx context.Context, db Execer, migrations []Migration) error {
	logger.Log.Info("Starting database migrations", "count", len(migrations))

	for _, m := range migrations {
		if _, err := db.Exec(ctx, m.SQL); err != nil {
			logger.Log.Error("Migration failed", "name", m.Name, "error", err)
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		logger.Log.Info("Migration completed", "name", m.Name)
	}

	logger.Log.Info("All migrations completed successfully")
	return nil
}
