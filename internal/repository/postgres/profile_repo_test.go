package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/azkaafiq/consultant-api/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpdateRequest() *domain.UpdateProfileRequest {
	start := domain.NewDate(2024, time.April, 5)
	end := domain.NewDate(1999, time.December, 31)
	return &domain.UpdateProfileRequest{
		Name:  "Updated",
		Email: "updated@example.com",
		WorkExperience: &domain.WorkExperienceUpdate{
			ID: 10, Position: "Lead", Company: "Acme", StartDate: &start,
		},
		Education: domain.EducationUpdates{{
			ID: 5, University: "ITB", Course: "CS", StartDate: &end, EndDate: &start,
		}},
		Applications: &domain.ApplicationDocumentUpdate{
			ID: 3, DocumentType: "CV", FileName: "cv.pdf",
		},
	}
}

func newTxFixture() (*fakeDB, *fakeTx, *fakeStore) {
	store := &fakeStore{profileNames: map[int64]string{1: "Before Edit"}}
	tx := &fakeTx{store: store}
	return &fakeDB{tx: tx}, tx, store
}

func TestUpdateFullProfileCommitsAllFourInOrder(t *testing.T) {
	db, tx, store := newTxFixture()
	repo := NewProfileRepository(db, ReadSplit)

	err := repo.UpdateFullProfile(context.Background(), 1, newUpdateRequest())
	require.NoError(t, err)

	require.Len(t, tx.execs, 4)
	assert.Contains(t, tx.execs[0].query, "UPDATE cons_profile")
	assert.Contains(t, tx.execs[1].query, "UPDATE cons_workexperience")
	assert.Contains(t, tx.execs[2].query, "UPDATE cons_education")
	assert.Contains(t, tx.execs[3].query, "UPDATE cons_application")
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
	assert.Equal(t, "Updated", store.profileNames[1])
}

func TestUpdateFullProfileBindsUserAndChildKeys(t *testing.T) {
	db, tx, _ := newTxFixture()
	repo := NewProfileRepository(db, ReadSplit)

	require.NoError(t, repo.UpdateFullProfile(context.Background(), 1, newUpdateRequest()))

	work := tx.execs[1].args
	assert.Equal(t, int64(1), work[6], "user_id")
	assert.Equal(t, int64(10), work[7], "work_experience_id")
	assert.Equal(t, "2024-04-05", *work[4].(*string))
	assert.Nil(t, work[5].(*string))

	edu := tx.execs[2].args
	assert.Equal(t, int64(1), edu[5])
	assert.Equal(t, int64(5), edu[6])
	assert.Equal(t, "1999-12-31", *edu[3].(*string))
	assert.Equal(t, "2024-04-05", *edu[4].(*string))

	doc := tx.execs[3].args
	assert.Equal(t, int64(1), doc[4])
	assert.Equal(t, int64(3), doc[5])
}

func TestUpdateFullProfileRollsBackOnEachStep(t *testing.T) {
	steps := []struct {
		name      string
		failOn    string
		execCount int
	}{
		{"work experience", "UPDATE cons_workexperience", 2},
		{"education", "UPDATE cons_education", 3},
		{"application document", "UPDATE cons_application", 4},
	}

	for _, tc := range steps {
		t.Run(tc.name, func(t *testing.T) {
			db, tx, store := newTxFixture()
			tx.failOn = tc.failOn
			tx.failErr = errors.New("deadlock detected")
			repo := NewProfileRepository(db, ReadSplit)

			err := repo.UpdateFullProfile(context.Background(), 1, newUpdateRequest())

			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to update "+tc.name)
			assert.Contains(t, err.Error(), "deadlock detected")
			assert.Len(t, tx.execs, tc.execCount)
			assert.True(t, tx.rolledBack)
			assert.False(t, tx.committed)
			assert.Equal(t, "Before Edit", store.profileNames[1], "profile row must be unchanged")
		})
	}
}

func TestUpdateFullProfileZeroRowsIsNotFound(t *testing.T) {
	db, tx, store := newTxFixture()
	tx.zeroRowsOn = "UPDATE cons_education"
	repo := NewProfileRepository(db, ReadSplit)

	err := repo.UpdateFullProfile(context.Background(), 1, newUpdateRequest())

	assert.ErrorIs(t, err, domain.ErrEducationNotFound)
	assert.True(t, tx.rolledBack)
	assert.Equal(t, "Before Edit", store.profileNames[1])
}

func TestUpdateFullProfileForeignKeyViolation(t *testing.T) {
	db, tx, _ := newTxFixture()
	tx.failOn = "UPDATE cons_application"
	tx.failErr = &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	repo := NewProfileRepository(db, ReadSplit)

	err := repo.UpdateFullProfile(context.Background(), 1, newUpdateRequest())

	assert.ErrorIs(t, err, domain.ErrUnknownUser)
	assert.True(t, tx.rolledBack)
}

func TestUpdateFullProfileCommitFailure(t *testing.T) {
	db, tx, store := newTxFixture()
	tx.commitErr = errors.New("connection reset")
	repo := NewProfileRepository(db, ReadSplit)

	err := repo.UpdateFullProfile(context.Background(), 1, newUpdateRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit transaction")
	assert.True(t, tx.rolledBack)
	assert.Equal(t, "Before Edit", store.profileNames[1])
}

func TestUpdateFullProfileRollbackFailureSurfaces(t *testing.T) {
	db, tx, _ := newTxFixture()
	tx.failOn = "UPDATE cons_education"
	tx.failErr = errors.New("statement timeout")
	tx.rollbackErr = errors.New("conn closed")
	repo := NewProfileRepository(db, ReadSplit)

	err := repo.UpdateFullProfile(context.Background(), 1, newUpdateRequest())

	assert.ErrorIs(t, err, domain.ErrRollbackFailed)
	assert.Contains(t, err.Error(), "statement timeout")
	assert.Contains(t, err.Error(), "conn closed")
}

func TestUpdateFullProfileRollbackIgnoresCancelledContext(t *testing.T) {
	db, tx, _ := newTxFixture()
	tx.failOn = "UPDATE cons_profile"
	tx.failErr = context.Canceled
	repo := NewProfileRepository(db, ReadSplit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := repo.UpdateFullProfile(ctx, 1, newUpdateRequest())

	require.Error(t, err)
	require.NotNil(t, tx.rollbackCtx)
	assert.NoError(t, tx.rollbackCtx.Err())
}

func TestUpdateFullProfileBeginFailure(t *testing.T) {
	db, tx, _ := newTxFixture()
	db.beginErr = errors.New("too many connections")
	repo := NewProfileRepository(db, ReadSplit)

	err := repo.UpdateFullProfile(context.Background(), 1, newUpdateRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
	assert.Empty(t, tx.execs)
}

func TestUpdateFullProfileRejectsIncompletePayload(t *testing.T) {
	db, _, _ := newTxFixture()
	repo := NewProfileRepository(db, ReadSplit)

	req := newUpdateRequest()
	req.Applications = nil

	assert.Error(t, repo.UpdateFullProfile(context.Background(), 1, req))
	assert.Zero(t, db.begins)
}

// joinRow builds one LEFT JOIN row; nil ids produce NULL child columns.
func joinRow(workID, eduID, docID any, position, university string) []any {
	inserted := time.Date(2023, time.January, 2, 3, 4, 5, 0, time.UTC)
	profile := []any{
		int64(1), int64(2), "A", "a@example.com", "", "", "", "", "", "", "", "",
		false, nil, inserted,
	}
	work := []any{nil, "", "", false, "", nil, nil, nil}
	if workID != nil {
		work = []any{workID, position, "Acme", true, "", time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC), nil, inserted}
	}
	edu := []any{nil, "", "", "", nil, nil}
	if eduID != nil {
		edu = []any{eduID, university, "CS", "Engineering", time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC), nil}
	}
	doc := []any{nil, "", "", nil}
	if docID != nil {
		doc = []any{docID, "CV", "cv.pdf", inserted}
	}
	out := append(profile, work...)
	out = append(out, edu...)
	return append(out, doc...)
}

func TestGetProfileRowsJoinStrategy(t *testing.T) {
	rows := &fakeRows{data: [][]any{
		joinRow(int64(10), nil, nil, "Dev", ""),
		joinRow(int64(10), int64(5), int64(3), "Senior Dev", "ITB"),
	}}
	db := &fakeDB{queries: map[string]*fakeRows{"LEFT JOIN cons_application": rows}}
	repo := NewProfileRepository(db, ReadJoin)

	got, err := repo.GetProfileRows(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, []any{int64(1)}, db.lastArgs)
	assert.True(t, rows.closed)

	assert.Equal(t, int64(1), got[0].UserID)
	assert.Equal(t, int64(2), *got[0].RoleID)
	assert.Nil(t, got[0].AdminID)
	assert.Equal(t, int64(10), *got[0].WorkExperienceID)
	assert.Equal(t, "2024-04-05", got[0].WorkStartDate.String())
	assert.Nil(t, got[0].WorkEndDate)
	assert.Nil(t, got[0].EducationID)
	assert.Nil(t, got[0].DocumentID)

	assert.Equal(t, "Senior Dev", got[1].WorkPosition)
	assert.Equal(t, int64(5), *got[1].EducationID)
	assert.Equal(t, "1999-12-31", got[1].EducationStartDate.String())
	assert.Equal(t, int64(3), *got[1].DocumentID)
}

func TestGetProfileRowsJoinQueryError(t *testing.T) {
	db := &fakeDB{queryErr: errors.New("relation does not exist")}
	repo := NewProfileRepository(db, ReadJoin)

	_, err := repo.GetProfileRows(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query profile")
}

func TestGetProfileRowsSplitStrategy(t *testing.T) {
	profile := joinRow(nil, nil, nil, "", "")[:15]
	db := &fakeDB{
		queryRows: map[string]fakeRow{"FROM cons_profile p": {values: profile}},
		queries: map[string]*fakeRows{
			"FROM cons_workexperience": {data: [][]any{
				{int64(10), "Dev", "Acme", false, "", time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC), nil, nil},
				{int64(11), "Lead", "Acme", true, "", nil, nil, nil},
			}},
			"FROM cons_education":   {data: [][]any{{int64(5), "ITB", "CS", "", nil, nil}}},
			"FROM cons_application": {data: [][]any{{int64(3), "CV", "cv.pdf", nil}}},
		},
	}
	repo := NewProfileRepository(db, "")

	got, err := repo.GetProfileRows(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Nil(t, got[0].WorkExperienceID)
	assert.Nil(t, got[0].EducationID)
	assert.Nil(t, got[0].DocumentID)
	for _, row := range got {
		assert.Equal(t, "A", row.Name)
	}
	assert.Equal(t, int64(10), *got[1].WorkExperienceID)
	assert.Equal(t, "2024-04-05", got[1].WorkStartDate.String())
	assert.Equal(t, int64(11), *got[2].WorkExperienceID)
	assert.Nil(t, got[2].EducationID)
	assert.Equal(t, int64(5), *got[3].EducationID)
	assert.Equal(t, int64(3), *got[4].DocumentID)
}

func TestGetProfileRowsSplitNotFound(t *testing.T) {
	repo := NewProfileRepository(&fakeDB{}, ReadSplit)

	got, err := repo.GetProfileRows(context.Background(), 404)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInsertWorkExperience(t *testing.T) {
	start := domain.NewDate(2024, time.April, 5)
	in := &domain.WorkExperienceInput{Position: "Dev", Company: "Acme", StartDate: &start}

	t.Run("returns new id", func(t *testing.T) {
		db := &fakeDB{queryRows: map[string]fakeRow{"INSERT INTO cons_workexperience": {values: []any{int64(42)}}}}
		id, err := NewProfileRepository(db, ReadSplit).InsertWorkExperience(context.Background(), 1, in)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.Equal(t, int64(1), db.lastArgs[0])
		assert.Equal(t, "2024-04-05", *db.lastArgs[5].(*string))
	})

	t.Run("unknown user", func(t *testing.T) {
		fk := &pgconn.PgError{Code: "23503"}
		db := &fakeDB{queryRows: map[string]fakeRow{"INSERT INTO cons_workexperience": {err: fk}}}
		_, err := NewProfileRepository(db, ReadSplit).InsertWorkExperience(context.Background(), 99, in)

		assert.ErrorIs(t, err, domain.ErrUnknownUser)
		assert.True(t, strings.HasPrefix(err.Error(), "failed to insert work exp"))
	})
}

func TestInsertEducationUnknownUser(t *testing.T) {
	start := domain.NewDate(2020, time.September, 1)
	db := &fakeDB{queryRows: map[string]fakeRow{"INSERT INTO cons_education": {err: &pgconn.PgError{Code: "23503"}}}}

	_, err := NewProfileRepository(db, ReadSplit).InsertEducation(context.Background(), 99,
		&domain.EducationInput{University: "ITB", Course: "CS", StartDate: &start})

	assert.ErrorIs(t, err, domain.ErrUnknownUser)
}
