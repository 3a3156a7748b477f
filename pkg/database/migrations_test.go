package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	statements []string
	failOn     int
}

func (r *recordingExecer) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	r.statements = append(r.statements, sql)
	if r.failOn > 0 && len(r.statements) == r.failOn {
		return pgconn.CommandTag{}, errors.New("permission denied for schema public")
	}
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func TestRunMigrationsAppliesInOrder(t *testing.T) {
	db := &recordingExecer{}
	require.NoError(t, RunMigrations(context.Background(), db, Migrations))

	require.Len(t, db.statements, len(Migrations))
	assert.Contains(t, db.statements[0], "cons_profile")
	assert.Contains(t, db.statements[1], "REFERENCES cons_profile(user_id)")
}

func TestRunMigrationsStopsAtFailure(t *testing.T) {
	db := &recordingExecer{failOn: 2}
	err := RunMigrations(context.Background(), db, Migrations)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create_cons_workexperience")
	assert.Len(t, db.statements, 2)
}
