package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/pkg/models"
)

// GetProfile returns a user profile. Unapproved profiles are visible
// only to admins and to the account owner; everyone else gets a 404,
// not a 403, so pending accounts stay unenumerable.
func (u *UserUC) GetProfile(ctx context.Context, viewerID uuid.UUID, viewerRole models.Role, targetID uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if user.Status != models.StatusApproved && !viewerRole.IsAdmin() && viewerID != targetID {
		return nil, apperrors.ErrNotFound
	}

	return user, nil
}

// UpdateProfile applies the profile fields and returns the updated user
func (u *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
	if _, err := u.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	if err := u.userRepo.UpdateProfile(ctx, userID, req); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return u.userRepo.GetUserByID(ctx, userID)
}

// UploadAvatar stores the avatar image and records its URL
func (u *UserUC) UploadAvatar(ctx context.Context, userID uuid.UUID, fileName string, file io.Reader, size int64) (*models.User, error) {
	if _, err := u.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	_, url, err := u.media.Upload(ctx, "avatars", fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := u.userRepo.SetAvatarURL(ctx, userID, url); err != nil {
		return nil, fmt.Errorf("failed to save avatar URL: %w", err)
	}

	return u.userRepo.GetUserByID(ctx, userID)
}

// ListUsers returns a page of users filtered by account status.
// Status "all" (or empty) lists everyone.
func (u *UserUC) ListUsers(ctx context.Context, status string, p models.Pagination) (*models.Page[models.User], error) {
	p.Normalize()

	var (
		items []models.User
		total int64
		err   error
	)

	switch models.AccountStatus(status) {
	case models.StatusPending, models.StatusApproved, models.StatusRejected:
		items, total, err = u.userRepo.ListByStatus(ctx, models.AccountStatus(status), p)
	case "", "all":
		items, total, err = u.userRepo.ListAll(ctx, p)
	default:
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &models.Page[models.User]{
		Items: items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// ApproveUser marks a pending or rejected account as approved and
// notifies the user. Approving an approved account is a no-op.
func (u *UserUC) ApproveUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.setStatus(ctx, id, models.StatusApproved)
}

// RejectUser marks an account as rejected
func (u *UserUC) RejectUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.setStatus(ctx, id, models.StatusRejected)
}

func (u *UserUC) setStatus(ctx context.Context, id uuid.UUID, status models.AccountStatus) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Status == status {
		return user, nil
	}

	if err := u.userRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update account status: %w", err)
	}
	user.Status = status

	if status == models.StatusApproved {
		if err := u.notifier.NotifyUser(models.NotifUserApproved, id, user); err != nil {
			logger.Warn("Failed to publish approval notification",
				logger.String("user_id", id.String()),
				logger.Err(err))
		}
	}

	logger.Info("Account status changed",
		logger.String("user_id", id.String()),
		logger.String("status", string(status)))

	return user, nil
}

// GetStats returns the admin dashboard counters
func (u *UserUC) GetStats(ctx context.Context) (*models.AdminStats, error) {
	stats, err := u.userRepo.CollectStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect stats: %w", err)
	}
	return stats, nil
}
