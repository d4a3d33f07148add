package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/models"
)

// CreateGroup inserts a new group
func (r *GroupRepo) CreateGroup(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO groups (id, name, description, created_at, updated_at)
		VALUES (:id, :name, :description, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, group); err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}
	return nil
}

// UpdateGroup updates the group name and description
func (r *GroupRepo) UpdateGroup(ctx context.Context, group *models.Group) error {
	query := `
		UPDATE groups SET name = :name, description = :description, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, group)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGroup removes the group, its memberships and every link from
// posts, events and albums in one transaction. The linked resources
// themselves survive; they just lose this group from their scope.
func (r *GroupRepo) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"user_groups", "post_groups", "event_groups", "album_groups"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE group_id = $1`, table), id); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetGroupByID retrieves a group with its member count
func (r *GroupRepo) GetGroupByID(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	query := `
		SELECT g.id, g.name, g.description, g.created_at, g.updated_at,
			(SELECT COUNT(*) FROM user_groups ug WHERE ug.group_id = g.id) AS member_count
		FROM groups g
		WHERE g.id = $1
	`

	var group models.Group
	if err := r.db.GetContext(ctx, &group, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return &group, nil
}

// ListGroups returns a page of groups with member counts, by name
func (r *GroupRepo) ListGroups(ctx context.Context, p models.Pagination) ([]models.Group, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM groups`); err != nil {
		return nil, 0, fmt.Errorf("failed to count groups: %w", err)
	}

	query := `
		SELECT g.id, g.name, g.description, g.created_at, g.updated_at,
			(SELECT COUNT(*) FROM user_groups ug WHERE ug.group_id = g.id) AS member_count
		FROM groups g
		ORDER BY g.name ASC
		LIMIT $1 OFFSET $2
	`

	groups := []models.Group{}
	if err := r.db.SelectContext(ctx, &groups, query, p.Limit, p.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, total, nil
}

// ListMembers returns the users belonging to a group
func (r *GroupRepo) ListMembers(ctx context.Context, groupID uuid.UUID) ([]models.User, error) {
	query := `
		SELECT u.id, u.msisdn, u.full_name, u.email, u.bio, u.avatar_url,
			u.graduation_year, u.role, u.status, u.is_active, u.created_at, u.updated_at
		FROM users u
		JOIN user_groups ug ON ug.user_id = u.id
		WHERE ug.group_id = $1
		ORDER BY u.full_name ASC
	`

	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query, groupID); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return users, nil
}

// IsMember reports whether the user belongs to the group
func (r *GroupRepo) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM user_groups WHERE group_id = $1 AND user_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, groupID, userID); err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return exists, nil
}

// AddMember inserts a membership; duplicates are silently ignored
func (r *GroupRepo) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	query := `
		INSERT INTO user_groups (user_id, group_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, group_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID, groupID); err != nil {
		return fmt.Errorf("failed to insert membership: %w", err)
	}
	return nil
}

// RemoveMember deletes a membership row
func (r *GroupRepo) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	query := `DELETE FROM user_groups WHERE group_id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, groupID, userID); err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}
	return nil
}

// ListUserGroups returns the groups a user belongs to
func (r *GroupRepo) ListUserGroups(ctx context.Context, userID uuid.UUID) ([]models.Group, error) {
	query := `
		SELECT g.id, g.name, g.description, g.created_at, g.updated_at
		FROM groups g
		JOIN user_groups ug ON ug.group_id = g.id
		WHERE ug.user_id = $1
		ORDER BY g.name ASC
	`

	groups := []models.Group{}
	if err := r.db.SelectContext(ctx, &groups, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list user groups: %w", err)
	}
	return groups, nil
}

// UserExists reports whether a user row exists
func (r *GroupRepo) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID); err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}
