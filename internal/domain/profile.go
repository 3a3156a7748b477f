package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrProfileNotFound        = errors.New("profile not found")
	ErrWorkExperienceNotFound = errors.New("work experience not found")
	ErrEducationNotFound      = errors.New("education not found")
	ErrDocumentNotFound       = errors.New("application document not found")
	// ErrUnknownUser marks a foreign key violation against cons_profile.
	ErrUnknownUser = errors.New("referenced user does not exist")
	// ErrRollbackFailed is joined into the step error when the rollback could not be confirmed.
	ErrRollbackFailed = errors.New("transaction rollback failed")
)

// ============================================================================
// Read model
// ============================================================================

type Profile struct {
	UserID             int64      `json:"userId"`
	RoleID             *int64     `json:"roleId"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	ContactNo          string     `json:"contact_no"`
	Address            string     `json:"address"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	Country            string     `json:"country"`
	ProfileDescription string     `json:"profile_description"`
	Portfolio          string     `json:"portfolio"`
	Website            string     `json:"website"`
	TaggedByAdmin      bool       `json:"taggedByAdmin"`
	AdminID            *int64     `json:"adminId"`
	InsertDatetime     *time.Time `json:"insert_datetime"`
}

type WorkExperience struct {
	ID              int64      `json:"workExperienceId"`
	Position        string     `json:"position"`
	Company         string     `json:"company"`
	CurrentEmployer bool       `json:"currentEmployer"`
	Description     string     `json:"description"`
	StartDate       *Date      `json:"startDate"`
	EndDate         *Date      `json:"endDate"`
	UploadDate      *time.Time `json:"uploadDate"`
}

type Education struct {
	ID         int64  `json:"educationId"`
	University string `json:"university"`
	Course     string `json:"course"`
	Domain     string `json:"domain"`
	StartDate  *Date  `json:"startDate"`
	EndDate    *Date  `json:"endDate"`
}

// ApplicationDocument is the read shape; file contents are never returned.
type ApplicationDocument struct {
	ID           int64      `json:"documentId"`
	DocumentType string     `json:"documentType"`
	FileName     string     `json:"fileName"`
	UploadDate   *time.Time `json:"uploadDate"`
}

// ProfileDocument is one profile with its child collections folded in.
type ProfileDocument struct {
	Profile
	WorkExperience []WorkExperience      `json:"workExperience"`
	Education      []Education           `json:"education"`
	Applications   []ApplicationDocument `json:"applications"`
}

// ProfileRow is one flat row of a profile outer-joined with its children.
// A nil child ID means that child type is absent from the row.
type ProfileRow struct {
	Profile

	WorkExperienceID    *int64
	WorkPosition        string
	WorkCompany         string
	WorkCurrentEmployer bool
	WorkDescription     string
	WorkStartDate       *Date
	WorkEndDate         *Date
	WorkUploadDate      *time.Time

	EducationID        *int64
	University         string
	Course             string
	Domain             string
	EducationStartDate *Date
	EducationEndDate   *Date

	DocumentID         *int64
	DocumentType       string
	FileName           string
	DocumentUploadDate *time.Time
}

// ============================================================================
// Write model
// ============================================================================

type WorkExperienceUpdate struct {
	ID              int64  `json:"workExperienceId" validate:"required,gt=0"`
	Position        string `json:"position" validate:"required,max=255"`
	Company         string `json:"company" validate:"required,max=255"`
	CurrentEmployer bool   `json:"currentEmployer"`
	Description     string `json:"description" validate:"max=4000"`
	StartDate       *Date  `json:"startDate" validate:"required"`
	EndDate         *Date  `json:"endDate"`
}

type EducationUpdate struct {
	ID         int64  `json:"educationId" validate:"required,gt=0"`
	University string `json:"university" validate:"required,max=255"`
	Course     string `json:"course" validate:"required,max=255"`
	Domain     string `json:"domain" validate:"max=255"`
	StartDate  *Date  `json:"startDate" validate:"required"`
	EndDate    *Date  `json:"endDate"`
}

// EducationUpdates accepts either a single object or an array; the existing
// client sends the record wrapped in a one element array.
type EducationUpdates []EducationUpdate

func (e *EducationUpdates) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*e = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single EducationUpdate
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*e = EducationUpdates{single}
		return nil
	}
	var many []EducationUpdate
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return err
	}
	*e = many
	return nil
}

type ApplicationDocumentUpdate struct {
	ID           int64      `json:"documentId" validate:"required,gt=0"`
	DocumentType string     `json:"documentType" validate:"required,max=100"`
	FileName     string     `json:"fileName" validate:"required,max=255"`
	FileData     []byte     `json:"fileData"`
	UploadDate   *time.Time `json:"uploadDate"`
}

// UpdateProfileRequest is the full edit applied by one transactional update.
type UpdateProfileRequest struct {
	Name               string `json:"name" validate:"required,max=255"`
	Email              string `json:"email" validate:"required,email"`
	ContactNo          string `json:"contact_no" validate:"omitempty,valid_phone"`
	Address            string `json:"address" validate:"max=500"`
	City               string `json:"city" validate:"max=100"`
	State              string `json:"state" validate:"max=100"`
	Country            string `json:"country" validate:"max=100"`
	ProfileDescription string `json:"profile_description" validate:"max=4000"`
	Portfolio          string `json:"portfolio" validate:"omitempty,url"`
	Website            string `json:"website" validate:"omitempty,url"`

	WorkExperience *WorkExperienceUpdate      `json:"workExperience" validate:"required"`
	Education      EducationUpdates           `json:"education" validate:"required,len=1,dive"`
	Applications   *ApplicationDocumentUpdate `json:"applications" validate:"required"`
}

// EducationEntry returns the single education record of a validated request.
func (r *UpdateProfileRequest) EducationEntry() *EducationUpdate {
	if len(r.Education) == 0 {
		return nil
	}
	return &r.Education[0]
}

type WorkExperienceInput struct {
	Position        string `json:"position" validate:"required,max=255"`
	Company         string `json:"company" validate:"required,max=255"`
	CurrentEmployer bool   `json:"currentEmployer"`
	Description     string `json:"description" validate:"max=4000"`
	StartDate       *Date  `json:"startDate" validate:"required"`
	EndDate         *Date  `json:"endDate"`
}

type EducationInput struct {
	University string `json:"university" validate:"required,max=255"`
	Course     string `json:"course" validate:"required,max=255"`
	Domain     string `json:"domain" validate:"max=255"`
	StartDate  *Date  `json:"startDate" validate:"required"`
	EndDate    *Date  `json:"endDate"`
}

// ============================================================================
// Repository Interface
// ============================================================================

type ProfileRepository interface {
	// GetProfileRows returns the profile's flat rows; no rows means no such profile.
	GetProfileRows(ctx context.Context, userID int64) ([]ProfileRow, error)

	// UpdateFullProfile applies req to all four tables in one transaction.
	UpdateFullProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) error

	InsertWorkExperience(ctx context.Context, userID int64, in *WorkExperienceInput) (int64, error)
	ListWorkExperiences(ctx context.Context, userID int64) ([]WorkExperience, error)

	InsertEducation(ctx context.Context, userID int64, in *EducationInput) (int64, error)
	ListEducation(ctx context.Context, userID int64) ([]Education, error)
}

// ProfileLocker serializes profile updates per user.
type ProfileLocker interface {
	Lock(ctx context.Context, userID int64) (unlock func(), err error)
}

// ============================================================================
// Usecase Interface
// ============================================================================

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*ProfileDocument, error)
	UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) error

	AddWorkExperience(ctx context.Context, userID int64, in *WorkExperienceInput) (int64, error)
	ListWorkExperiences(ctx context.Context, userID int64) ([]WorkExperience, error)

	AddEducation(ctx context.Context, userID int64, in *EducationInput) (int64, error)
	ListEducation(ctx context.Context, userID int64) ([]Education, error)
}
