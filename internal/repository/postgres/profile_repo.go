package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/azkaafiq/consultant-api/internal/domain"

	"github.com/jackc/pgx/v5"
)

type ReadStrategy string

const (
	// ReadSplit issues one query per table and never fans out.
	ReadSplit ReadStrategy = "split"
	// ReadJoin issues a single four-way LEFT JOIN.
	ReadJoin ReadStrategy = "join"
)

type profileRepository struct {
	db       DB
	strategy ReadStrategy
}

func NewProfileRepository(db DB, strategy ReadStrategy) domain.ProfileRepository {
	if strategy != ReadJoin {
		strategy = ReadSplit
	}
	return &profileRepository{db: db, strategy: strategy}
}

const profileColumns = `
	p.user_id, p.role_id,
	COALESCE(p.name, ''), COALESCE(p.email, ''), COALESCE(p.contact_no, ''),
	COALESCE(p.address, ''), COALESCE(p.city, ''), COALESCE(p.state, ''), COALESCE(p.country, ''),
	COALESCE(p.profile_description, ''), COALESCE(p.portfolio, ''), COALESCE(p.website, ''),
	p.tagged_by_admin, p.admin_id, p.insert_datetime`

func profileDest(p *domain.Profile) []any {
	return []any{
		&p.UserID, &p.RoleID,
		&p.Name, &p.Email, &p.ContactNo,
		&p.Address, &p.City, &p.State, &p.Country,
		&p.ProfileDescription, &p.Portfolio, &p.Website,
		&p.TaggedByAdmin, &p.AdminID, &p.InsertDatetime,
	}
}

// =================================================================================================
// Reads
// =================================================================================================

func (r *profileRepository) GetProfileRows(ctx context.Context, userID int64) ([]domain.ProfileRow, error) {
	if r.strategy == ReadJoin {
		return r.getJoinedRows(ctx, userID)
	}
	return r.getSplitRows(ctx, userID)
}

const joinedProfileQuery = `
	SELECT ` + profileColumns + `,
		w.work_experience_id, COALESCE(w.position, ''), COALESCE(w.company, ''),
		COALESCE(w.current_employer, false), COALESCE(w.description, ''),
		w.start_date, w.end_date, w.upload_date,
		e.education_id, COALESCE(e.university, ''), COALESCE(e.course, ''), COALESCE(e.domain, ''),
		e.start_date, e.end_date,
		a.document_id, COALESCE(a.document_type, ''), COALESCE(a.file_name, ''), a.upload_date
	FROM cons_profile p
	LEFT JOIN cons_workexperience w ON p.user_id = w.user_id
	LEFT JOIN cons_education e ON p.user_id = e.user_id
	LEFT JOIN cons_application a ON p.user_id = a.user_id
	WHERE p.user_id = $1`

func (r *profileRepository) getJoinedRows(ctx context.Context, userID int64) ([]domain.ProfileRow, error) {
	rows, err := r.db.Query(ctx, joinedProfileQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}
	defer rows.Close()

	var result []domain.ProfileRow
	for rows.Next() {
		var row domain.ProfileRow
		var workStart, workEnd, eduStart, eduEnd *time.Time
		dest := append(profileDest(&row.Profile),
			&row.WorkExperienceID, &row.WorkPosition, &row.WorkCompany,
			&row.WorkCurrentEmployer, &row.WorkDescription,
			&workStart, &workEnd, &row.WorkUploadDate,
			&row.EducationID, &row.University, &row.Course, &row.Domain,
			&eduStart, &eduEnd,
			&row.DocumentID, &row.DocumentType, &row.FileName, &row.DocumentUploadDate,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		row.WorkStartDate = domain.DateFromTime(workStart)
		row.WorkEndDate = domain.DateFromTime(workEnd)
		row.EducationStartDate = domain.DateFromTime(eduStart)
		row.EducationEndDate = domain.DateFromTime(eduEnd)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile rows: %w", err)
	}
	return result, nil
}

// getSplitRows emits the profile row followed by one row per child record.
func (r *profileRepository) getSplitRows(ctx context.Context, userID int64) ([]domain.ProfileRow, error) {
	var profile domain.Profile
	err := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM cons_profile p WHERE p.user_id = $1`, userID).
		Scan(profileDest(&profile)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	works, err := r.ListWorkExperiences(ctx, userID)
	if err != nil {
		return nil, err
	}
	educations, err := r.ListEducation(ctx, userID)
	if err != nil {
		return nil, err
	}
	documents, err := r.listDocuments(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ProfileRow, 0, 1+len(works)+len(educations)+len(documents))
	rows = append(rows, domain.ProfileRow{Profile: profile})
	for _, w := range works {
		id := w.ID
		rows = append(rows, domain.ProfileRow{
			Profile:             profile,
			WorkExperienceID:    &id,
			WorkPosition:        w.Position,
			WorkCompany:         w.Company,
			WorkCurrentEmployer: w.CurrentEmployer,
			WorkDescription:     w.Description,
			WorkStartDate:       w.StartDate,
			WorkEndDate:         w.EndDate,
			WorkUploadDate:      w.UploadDate,
		})
	}
	for _, e := range educations {
		id := e.ID
		rows = append(rows, domain.ProfileRow{
			Profile:            profile,
			EducationID:        &id,
			University:         e.University,
			Course:             e.Course,
			Domain:             e.Domain,
			EducationStartDate: e.StartDate,
			EducationEndDate:   e.EndDate,
		})
	}
	for _, d := range documents {
		id := d.ID
		rows = append(rows, domain.ProfileRow{
			Profile:            profile,
			DocumentID:         &id,
			DocumentType:       d.DocumentType,
			FileName:           d.FileName,
			DocumentUploadDate: d.UploadDate,
		})
	}
	return rows, nil
}

func (r *profileRepository) ListWorkExperiences(ctx context.Context, userID int64) ([]domain.WorkExperience, error) {
	query := `SELECT work_experience_id, COALESCE(position, ''), COALESCE(company, ''),
	                 current_employer, COALESCE(description, ''), start_date, end_date, upload_date
	          FROM cons_workexperience WHERE user_id = $1 ORDER BY work_experience_id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work exp: %w", err)
	}
	defer rows.Close()

	result := []domain.WorkExperience{}
	for rows.Next() {
		var w domain.WorkExperience
		var startDate, endDate *time.Time
		err := rows.Scan(
			&w.ID, &w.Position, &w.Company,
			&w.CurrentEmployer, &w.Description, &startDate, &endDate, &w.UploadDate,
		)
		if err != nil {
			return nil, err
		}
		w.StartDate = domain.DateFromTime(startDate)
		w.EndDate = domain.DateFromTime(endDate)
		result = append(result, w)
	}
	return result, rows.Err()
}

func (r *profileRepository) ListEducation(ctx context.Context, userID int64) ([]domain.Education, error) {
	query := `SELECT education_id, COALESCE(university, ''), COALESCE(course, ''), COALESCE(domain, ''),
	                 start_date, end_date
	          FROM cons_education WHERE user_id = $1 ORDER BY education_id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch education: %w", err)
	}
	defer rows.Close()

	result := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		var startDate, endDate *time.Time
		if err := rows.Scan(&e.ID, &e.University, &e.Course, &e.Domain, &startDate, &endDate); err != nil {
			return nil, err
		}
		e.StartDate = domain.DateFromTime(startDate)
		e.EndDate = domain.DateFromTime(endDate)
		result = append(result, e)
	}
	return result, rows.Err()
}

func (r *profileRepository) listDocuments(ctx context.Context, userID int64) ([]domain.ApplicationDocument, error) {
	query := `SELECT document_id, COALESCE(document_type, ''), COALESCE(file_name, ''), upload_date
	          FROM cons_application WHERE user_id = $1 ORDER BY document_id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}
	defer rows.Close()

	var result []domain.ApplicationDocument
	for rows.Next() {
		var d domain.ApplicationDocument
		if err := rows.Scan(&d.ID, &d.DocumentType, &d.FileName, &d.UploadDate); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// =================================================================================================
// Inserts
// =================================================================================================

func (r *profileRepository) InsertWorkExperience(ctx context.Context, userID int64, in *domain.WorkExperienceInput) (int64, error) {
	query := `
		INSERT INTO cons_workexperience (user_id, position, company, current_employer, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7::date)
		RETURNING work_experience_id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		userID, in.Position, in.Company, in.CurrentEmployer, in.Description,
		domain.DateString(in.StartDate), domain.DateString(in.EndDate),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert work exp: %w", classifyWriteError(err))
	}
	return id, nil
}

func (r *profileRepository) InsertEducation(ctx context.Context, userID int64, in *domain.EducationInput) (int64, error) {
	query := `
		INSERT INTO cons_education (user_id, university, course, domain, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5::date, $6::date)
		RETURNING education_id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		userID, in.University, in.Course, in.Domain,
		domain.DateString(in.StartDate), domain.DateString(in.EndDate),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert education: %w", classifyWriteError(err))
	}
	return id, nil
}

// =================================================================================================
// Transactional Full Profile Update
// =================================================================================================

type updateStep struct {
	name     string
	query    string
	args     []any
	notFound error
}

func fullProfileSteps(userID int64, req *domain.UpdateProfileRequest) []updateStep {
	we := req.WorkExperience
	edu := req.EducationEntry()
	doc := req.Applications

	return []updateStep{
		{
			name: "profile",
			query: `
				UPDATE cons_profile SET
					name = $1, email = $2, contact_no = $3,
					address = $4, city = $5, state = $6, country = $7,
					profile_description = $8, portfolio = $9, website = $10
				WHERE user_id = $11`,
			args: []any{
				req.Name, req.Email, req.ContactNo,
				req.Address, req.City, req.State, req.Country,
				req.ProfileDescription, req.Portfolio, req.Website,
				userID,
			},
			notFound: domain.ErrProfileNotFound,
		},
		{
			name: "work experience",
			query: `
				UPDATE cons_workexperience SET
					position = $1, company = $2, current_employer = $3, description = $4,
					start_date = $5::date, end_date = $6::date
				WHERE user_id = $7 AND work_experience_id = $8`,
			args: []any{
				we.Position, we.Company, we.CurrentEmployer, we.Description,
				domain.DateString(we.StartDate), domain.DateString(we.EndDate),
				userID, we.ID,
			},
			notFound: domain.ErrWorkExperienceNotFound,
		},
		{
			name: "education",
			query: `
				UPDATE cons_education SET
					university = $1, course = $2, domain = $3,
					start_date = $4::date, end_date = $5::date
				WHERE user_id = $6 AND education_id = $7`,
			args: []any{
				edu.University, edu.Course, edu.Domain,
				domain.DateString(edu.StartDate), domain.DateString(edu.EndDate),
				userID, edu.ID,
			},
			notFound: domain.ErrEducationNotFound,
		},
		{
			name: "application document",
			query: `
				UPDATE cons_application SET
					document_type = $1, file_name = $2,
					file_data = COALESCE($3, file_data),
					upload_date = COALESCE($4, NOW())
				WHERE user_id = $5 AND document_id = $6`,
			args: []any{
				doc.DocumentType, doc.FileName, doc.FileData, doc.UploadDate,
				userID, doc.ID,
			},
			notFound: domain.ErrDocumentNotFound,
		},
	}
}

// UpdateFullProfile runs the profile, work experience, education and document
// updates in that order on one transaction. Any failure, including a statement
// matching no row, rolls the whole unit back.
func (r *profileRepository) UpdateFullProfile(ctx context.Context, userID int64, req *domain.UpdateProfileRequest) (err error) {
	if req == nil || req.WorkExperience == nil || req.EducationEntry() == nil || req.Applications == nil {
		return errors.New("incomplete profile update payload")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		// The request context may already be cancelled; the rollback must still go out.
		rbErr := tx.Rollback(context.WithoutCancel(ctx))
		if rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = errors.Join(err, fmt.Errorf("%w: %w", domain.ErrRollbackFailed, rbErr))
		}
	}()

	for _, step := range fullProfileSteps(userID, req) {
		tag, execErr := tx.Exec(ctx, step.query, step.args...)
		if execErr != nil {
			return fmt.Errorf("failed to update %s: %w", step.name, classifyWriteError(execErr))
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("failed to update %s: %w", step.name, step.notFound)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
