package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/models"
)

const userColumns = `
	id, msisdn, full_name, email, bio, avatar_url, graduation_year,
	role, status, is_active, created_at, updated_at
`

// GetUserByMSISDN retrieves a user by mobile number
func (r *AuthRepo) GetUserByMSISDN(ctx context.Context, msisdn string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE msisdn = $1`, userColumns)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, msisdn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by id
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
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

// CreateUser inserts a new user. The role column is part of the insert:
// every account gets its default role at creation time.
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, msisdn, full_name, email, bio, avatar_url,
			graduation_year, role, status, is_active, created_at, updated_at)
		VALUES (:id, :msisdn, :full_name, :email, :bio, :avatar_url,
			:graduation_year, :role, :status, :is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}
