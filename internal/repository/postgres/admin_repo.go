package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/azkaafiq/consultant-api/internal/domain"

	"github.com/lib/pq"
)

type adminRepo struct {
	db DB
}

func NewAdminRepository(db DB) domain.AdminRepository {
	return &adminRepo{db: db}
}

// buildUserListQuery renders the listing SQL and its positional args.
func buildUserListQuery(filter domain.AdminUserFilter) (string, []any) {
	query := `
		SELECT user_id, role_id, COALESCE(name, ''), COALESCE(email, ''),
		       tagged_by_admin, admin_id, insert_datetime
		FROM cons_profile`

	var conds []string
	var args []any

	if len(filter.RoleIDs) > 0 {
		args = append(args, pq.Array(filter.RoleIDs))
		conds = append(conds, fmt.Sprintf("role_id = ANY($%d::bigint[])", len(args)))
	}
	if filter.AdminID != nil {
		args = append(args, *filter.AdminID)
		conds = append(conds, fmt.Sprintf("admin_id = $%d", len(args)))
	}
	if filter.TaggedByAdmin != nil {
		args = append(args, *filter.TaggedByAdmin)
		conds = append(conds, fmt.Sprintf("tagged_by_admin = $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY insert_datetime DESC, user_id DESC"
	return query, args
}

// ListUsers returns profile summaries, newest first.
func (r *adminRepo) ListUsers(ctx context.Context, filter domain.AdminUserFilter) ([]domain.AdminUser, error) {
	query, args := buildUserListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []domain.AdminUser{}
	for rows.Next() {
		var u domain.AdminUser
		if err := rows.Scan(&u.UserID, &u.RoleID, &u.Name, &u.Email, &u.TaggedByAdmin, &u.AdminID, &u.InsertDatetime); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
