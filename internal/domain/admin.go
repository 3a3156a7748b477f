package domain

import (
	"context"
	"time"
)

// AdminUser is one row of the admin user listing.
type AdminUser struct {
	UserID         int64      `json:"userId"`
	RoleID         *int64     `json:"roleId"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	TaggedByAdmin  bool       `json:"taggedByAdmin"`
	AdminID        *int64     `json:"adminId"`
	InsertDatetime *time.Time `json:"insert_datetime"`
}

// AdminUserFilter narrows the listing. Zero values disable a filter.
type AdminUserFilter struct {
	RoleIDs       []int64
	AdminID       *int64
	TaggedByAdmin *bool
}

// ExportFile is a generated download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type AdminRepository interface {
	ListUsers(ctx context.Context, filter AdminUserFilter) ([]AdminUser, error)
}

type AdminUsecase interface {
	ListUsers(ctx context.Context, filter AdminUserFilter) ([]AdminUser, error)
	ExportUsers(ctx context.Context, filter AdminUserFilter) (*ExportFile, error)
}
