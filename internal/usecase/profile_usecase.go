package usecase

import (
	"context"
	"errors"

	"github.com/azkaafiq/consultant-api/internal/domain"
	"github.com/azkaafiq/consultant-api/pkg/apperror"
	"github.com/azkaafiq/consultant-api/pkg/logger"
	"github.com/azkaafiq/consultant-api/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	locker   domain.ProfileLocker
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, locker domain.ProfileLocker, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		locker:   locker,
		validate: validate,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID int64) (*domain.ProfileDocument, error) {
	rows, err := u.repo.GetProfileRows(ctx, userID)
	if err != nil {
		logger.Log.Error("Error executing profile query", "user_id", userID, "error", err)
		return nil, apperror.Internal(err)
	}
	if len(rows) == 0 {
		logger.Log.Warn("User profile not found", "user_id", userID)
	}
	return AggregateProfile(rows)
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, userID int64, req *domain.UpdateProfileRequest) error {
	if req == nil {
		return apperror.BadRequest("Request body is required")
	}
	if err := u.validate.Struct(req); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}

	unlock, err := u.locker.Lock(ctx, userID)
	if err != nil {
		logger.Log.Error("Error acquiring profile lock", "user_id", userID, "error", err)
		return apperror.Internal(err)
	}
	defer unlock()

	if err := u.repo.UpdateFullProfile(ctx, userID, req); err != nil {
		return translateUpdateError(userID, err)
	}

	logger.Log.Info("Profile updated successfully", "user_id", userID)
	return nil
}

// translateUpdateError logs the storage error and returns the caller-facing kind.
func translateUpdateError(userID int64, err error) error {
	if errors.Is(err, domain.ErrRollbackFailed) {
		logger.Log.Error("FATAL: profile transaction rollback could not be confirmed", "user_id", userID, "error", err)
		return apperror.Internal(err)
	}

	logger.Log.Error("Error updating profile, transaction rolled back", "user_id", userID, "error", err)

	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return apperror.NotFound("User not found")
	case errors.Is(err, domain.ErrWorkExperienceNotFound):
		return apperror.NotFound("Work experience not found")
	case errors.Is(err, domain.ErrEducationNotFound):
		return apperror.NotFound("Education not found")
	case errors.Is(err, domain.ErrDocumentNotFound):
		return apperror.NotFound("Application document not found")
	case errors.Is(err, domain.ErrUnknownUser):
		return apperror.Referential("User ID not found", err)
	default:
		return apperror.Internal(err)
	}
}

func (u *profileUsecase) AddWorkExperience(ctx context.Context, userID int64, in *domain.WorkExperienceInput) (int64, error) {
	if in == nil {
		return 0, apperror.BadRequest("Request body is required")
	}
	if err := u.validate.Struct(in); err != nil {
		return 0, apperror.Validation(validation.FormatValidationErrors(err))
	}

	id, err := u.repo.InsertWorkExperience(ctx, userID, in)
	if err != nil {
		return 0, translateInsertError(userID, "work experience", err)
	}
	return id, nil
}

func (u *profileUsecase) ListWorkExperiences(ctx context.Context, userID int64) ([]domain.WorkExperience, error) {
	works, err := u.repo.ListWorkExperiences(ctx, userID)
	if err != nil {
		logger.Log.Error("Error fetching work experience", "user_id", userID, "error", err)
		return nil, apperror.Internal(err)
	}
	return works, nil
}

func (u *profileUsecase) AddEducation(ctx context.Context, userID int64, in *domain.EducationInput) (int64, error) {
	if in == nil {
		return 0, apperror.BadRequest("Request body is required")
	}
	if err := u.validate.Struct(in); err != nil {
		return 0, apperror.Validation(validation.FormatValidationErrors(err))
	}

	id, err := u.repo.InsertEducation(ctx, userID, in)
	if err != nil {
		return 0, translateInsertError(userID, "education", err)
	}
	return id, nil
}

func (u *profileUsecase) ListEducation(ctx context.Context, userID int64) ([]domain.Education, error) {
	educations, err := u.repo.ListEducation(ctx, userID)
	if err != nil {
		logger.Log.Error("Error fetching education", "user_id", userID, "error", err)
		return nil, apperror.Internal(err)
	}
	return educations, nil
}

func translateInsertError(userID int64, entity string, err error) error {
	if errors.Is(err, domain.ErrUnknownUser) {
		logger.Log.Warn("Insert rejected, user does not exist", "user_id", userID, "entity", entity, "error", err)
		return apperror.Referential("User ID not found", err)
	}
	logger.Log.Error("Error inserting "+entity, "user_id", userID, "error", err)
	return apperror.Internal(err)
}
