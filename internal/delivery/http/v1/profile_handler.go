package v1

import (
	"net/http"
	"strconv"

	"github.com/azkaafiq/consultant-api/internal/delivery/http/response"
	"github.com/azkaafiq/consultant-api/internal/domain"
	"github.com/azkaafiq/consultant-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := r.Group("/profile/:userId")
	{
		profile.GET("", handler.GetProfile)
		profile.PUT("", handler.UpdateProfile)

		profile.GET("/work-experience", handler.ListWorkExperiences)
		profile.POST("/work-experience", handler.AddWorkExperience)

		profile.GET("/education", handler.ListEducation)
		profile.POST("/education", handler.AddEducation)
	}
}

// userIDParam reads the :userId path segment; it must be a positive integer.
func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid user ID"))
		return 0, false
	}
	return id, true
}

// GetProfile godoc
// @Summary      Get consultant profile
// @Description  Profile with work experience, education and application documents
// @Tags         profile
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Envelope{result=[]domain.ProfileDocument}
// @Failure      400     {object}  response.Envelope
// @Failure      404     {object}  response.Envelope
// @Failure      500     {object}  response.Envelope
// @Router       /profile/{userId} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	doc, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Read(c, http.StatusOK, doc)
}

// UpdateProfile godoc
// @Summary      Update consultant profile
// @Description  Updates the profile, one work experience, one education and one application document atomically
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        userId   path      int                          true  "User ID"
// @Param        request  body      domain.UpdateProfileRequest  true  "Full profile edit"
// @Success      200      {object}  response.Envelope{result=response.MessageResult}
// @Failure      400      {object}  response.Envelope
// @Failure      404      {object}  response.Envelope
// @Failure      422      {object}  response.Envelope
// @Failure      500      {object}  response.Envelope
// @Router       /profile/{userId} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.profileUC.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Write(c, http.StatusOK, "Profile updated successfully")
}

// ListWorkExperiences godoc
// @Summary      List work experience
// @Tags         profile
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Envelope{result=[]domain.WorkExperience}
// @Failure      500     {object}  response.Envelope
// @Router       /profile/{userId}/work-experience [get]
func (h *ProfileHandler) ListWorkExperiences(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	works, err := h.profileUC.ListWorkExperiences(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.List(c, http.StatusOK, works)
}

// AddWorkExperience godoc
// @Summary      Add work experience
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        userId   path      int                         true  "User ID"
// @Param        request  body      domain.WorkExperienceInput  true  "Work experience"
// @Success      201      {object}  response.Envelope{result=response.MessageResult}
// @Failure      400      {object}  response.Envelope
// @Failure      422      {object}  response.Envelope
// @Router       /profile/{userId}/work-experience [post]
func (h *ProfileHandler) AddWorkExperience(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var in domain.WorkExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if _, err := h.profileUC.AddWorkExperience(c.Request.Context(), userID, &in); err != nil {
		c.Error(err)
		return
	}

	response.Write(c, http.StatusCreated, "Work experience inserted successfully")
}

// ListEducation godoc
// @Summary      List education
// @Tags         profile
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Envelope{result=[]domain.Education}
// @Failure      500     {object}  response.Envelope
// @Router       /profile/{userId}/education [get]
func (h *ProfileHandler) ListEducation(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	educations, err := h.profileUC.ListEducation(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.List(c, http.StatusOK, educations)
}

// AddEducation godoc
// @Summary      Add education
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        userId   path      int                    true  "User ID"
// @Param        request  body      domain.EducationInput  true  "Education"
// @Success      201      {object}  response.Envelope{result=response.MessageResult}
// @Failure      400      {object}  response.Envelope
// @Failure      422      {object}  response.Envelope
// @Router       /profile/{userId}/education [post]
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var in domain.EducationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if _, err := h.profileUC.AddEducation(c.Request.Context(), userID, &in); err != nil {
		c.Error(err)
		return
	}

	response.Write(c, http.StatusCreated, "Education inserted successfully")
}
