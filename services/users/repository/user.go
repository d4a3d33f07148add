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

const userColumns = `
	id, msisdn, full_name, email, bio, avatar_url, graduation_year,
	role, status, is_active, created_at, updated_at
`

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdateProfile applies the editable profile columns. Identity and
// moderation columns (msisdn, role, status) are never touched here.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) error {
	query := `
		UPDATE users
		SET full_name = $2, email = $3, bio = $4, graduation_year = $5,
			updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, req.FullName, req.Email, req.Bio, req.GraduationYear)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetAvatarURL records the avatar object URL
func (r *UserRepo) SetAvatarURL(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE users SET avatar_url = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, url)
	if err != nil {
		return fmt.Errorf("failed to set avatar: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListByStatus returns a page of users in the given account status,
// newest first, with the unfiltered total for that status.
func (r *UserRepo) ListByStatus(ctx context.Context, status models.AccountStatus, p models.Pagination) ([]models.User, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM users WHERE status = $1`, status); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userColumns)

	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query, status, p.Limit, p.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

// ListAll returns a page of all users regardless of status
func (r *UserRepo) ListAll(ctx context.Context, p models.Pagination) ([]models.User, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, userColumns)

	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query, p.Limit, p.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

// UpdateStatus changes the account approval status
func (r *UserRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.AccountStatus) error {
	query := `UPDATE users SET status = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CollectStats gathers the dashboard counters in one round trip
func (r *UserRepo) CollectStats(ctx context.Context) (*models.AdminStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users)                            AS total_users,
			(SELECT COUNT(*) FROM users WHERE status = 'pending')   AS pending_users,
			(SELECT COUNT(*) FROM users WHERE status = 'rejected')  AS rejected_users,
			(SELECT COUNT(*) FROM posts)                            AS total_posts,
			(SELECT COUNT(*) FROM posts WHERE status = 'pending')   AS pending_posts,
			(SELECT COUNT(*) FROM events)                           AS total_events,
			(SELECT COUNT(*) FROM albums)                           AS total_albums,
			(SELECT COUNT(*) FROM groups)                           AS total_groups
	`

	var stats struct {
		TotalUsers    int64 `db:"total_users"`
		PendingUsers  int64 `db:"pending_users"`
		RejectedUsers int64 `db:"rejected_users"`
		TotalPosts    int64 `db:"total_posts"`
		PendingPosts  int64 `db:"pending_posts"`
		TotalEvents   int64 `db:"total_events"`
		TotalAlbums   int64 `db:"total_albums"`
		TotalGroups   int64 `db:"total_groups"`
	}
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to collect stats: %w", err)
	}

	return &models.AdminStats{
		TotalUsers:    stats.TotalUsers,
		PendingUsers:  stats.PendingUsers,
		RejectedUsers: stats.RejectedUsers,
		TotalPosts:    stats.TotalPosts,
		PendingPosts:  stats.PendingPosts,
		TotalEvents:   stats.TotalEvents,
		TotalAlbums:   stats.TotalAlbums,
		TotalGroups:   stats.TotalGroups,
	}, nil
}
