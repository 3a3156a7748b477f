package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/azkaafiq/consultant-api/internal/domain"
	"github.com/azkaafiq/consultant-api/pkg/apperror"
	"github.com/azkaafiq/consultant-api/pkg/logger"

	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type adminUsecase struct {
	adminRepo domain.AdminRepository
	now       func() time.Time
}

func NewAdminUsecase(adminRepo domain.AdminRepository) domain.AdminUsecase {
	return &adminUsecase{adminRepo: adminRepo, now: time.Now}
}

// ListUsers returns the admin user listing
func (u *adminUsecase) ListUsers(ctx context.Context, filter domain.AdminUserFilter) ([]domain.AdminUser, error) {
	users, err := u.adminRepo.ListUsers(ctx, filter)
	if err != nil {
		logger.Log.Error("Error retrieving user list", "error", err)
		return nil, apperror.Internal(err)
	}
	return users, nil
}

// ExportUsers renders the listing as an Excel workbook
func (u *adminUsecase) ExportUsers(ctx context.Context, filter domain.AdminUserFilter) (*domain.ExportFile, error) {
	users, err := u.ListUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	data, err := buildUsersWorkbook(users)
	if err != nil {
		logger.Log.Error("Error building user export", "error", err)
		return nil, apperror.Internal(err)
	}

	return &domain.ExportFile{
		Filename:    fmt.Sprintf("consultant_users_%s.xlsx", u.now().Format("20060102_150405")),
		ContentType: xlsxContentType,
		Data:        data,
	}, nil
}

var userExportHeaders = []string{"USER ID", "ROLE ID", "NAME", "EMAIL", "TAGGED BY ADMIN", "ADMIN ID", "REGISTERED AT"}

func buildUsersWorkbook(users []domain.AdminUser) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Users"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, header := range userExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(userExportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, user := range users {
		values := []any{
			user.UserID,
			optionalInt(user.RoleID),
			user.Name,
			user.Email,
			yesNo(user.TaggedByAdmin),
			optionalInt(user.AdminID),
			optionalTime(user.InsertDatetime),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	for i := range userExportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func optionalInt(v *int64) any {
	if v == nil {
		return ""
	}
	return *v
}

func optionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
