package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/azkaafiq/consultant-api/internal/domain"
	"github.com/azkaafiq/consultant-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

// NewAdminHandler registers admin routes; exportMiddleware runs before the export only.
func NewAdminHandler(r *gin.RouterGroup, adminUC domain.AdminUsecase, exportMiddleware ...gin.HandlerFunc) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := r.Group("/admin")
	{
		admin.GET("/users", handler.ListUsers)
		admin.GET("/users/export", append(exportMiddleware, handler.ExportUsers)...)
	}
}

// parseUserFilter reads roleIds=1,2 adminId=3 taggedByAdmin=true
func parseUserFilter(c *gin.Context) (domain.AdminUserFilter, error) {
	var filter domain.AdminUserFilter

	if raw := c.Query("roleIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			v, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return filter, fmt.Errorf("invalid roleIds value %q", part)
			}
			filter.RoleIDs = append(filter.RoleIDs, v)
		}
	}
	if raw := c.Query("adminId"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid adminId value %q", raw)
		}
		filter.AdminID = &v
	}
	if raw := c.Query("taggedByAdmin"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid taggedByAdmin value %q", raw)
		}
		filter.TaggedByAdmin = &v
	}
	return filter, nil
}

// ListUsers godoc
// @Summary      List users
// @Description  Raw array of profile summaries, newest first
// @Tags         admin
// @Produce      json
// @Param        roleIds        query     string  false  "Comma separated role IDs"
// @Param        adminId        query     int     false  "Assigned admin ID"
// @Param        taggedByAdmin  query     bool    false  "Tagged by admin"
// @Success      200            {array}   domain.AdminUser
// @Failure      400            {object}  response.Envelope
// @Failure      500            {object}  response.Envelope
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	filter, err := parseUserFilter(c)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	users, err := h.adminUC.ListUsers(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	if users == nil {
		users = []domain.AdminUser{}
	}

	c.JSON(http.StatusOK, users)
}

// ExportUsers godoc
// @Summary      Export users
// @Description  Excel workbook of the user listing
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        roleIds        query     string  false  "Comma separated role IDs"
// @Param        adminId        query     int     false  "Assigned admin ID"
// @Param        taggedByAdmin  query     bool    false  "Tagged by admin"
// @Success      200            {file}    file
// @Failure      429            {object}  response.Envelope
// @Failure      500            {object}  response.Envelope
// @Router       /admin/users/export [get]
func (h *AdminHandler) ExportUsers(c *gin.Context) {
	filter, err := parseUserFilter(c)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	file, err := h.adminUC.ExportUsers(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
