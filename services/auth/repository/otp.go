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

// ReplaceOTP deletes every existing OTP row for the number and inserts
// the fresh one in a single transaction. This keeps the invariant of at
// most one live row per MSISDN.
func (r *AuthRepo) ReplaceOTP(ctx context.Context, otp *models.OTP) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM otps WHERE msisdn = $1`, otp.MSISDN); err != nil {
		return fmt.Errorf("failed to delete prior OTPs: %w", err)
	}

	query := `
		INSERT INTO otps (id, msisdn, code_hash, attempts, expires_at, created_at)
		VALUES (:id, :msisdn, :code_hash, :attempts, :expires_at, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, otp); err != nil {
		return fmt.Errorf("failed to insert OTP: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetLatestOTP returns the newest non-expired OTP row for the number.
// Expired rows are filtered at lookup, so "expired" and "never
// requested" are indistinguishable to the caller.
func (r *AuthRepo) GetLatestOTP(ctx context.Context, msisdn string) (*models.OTP, error) {
	query := `
		SELECT id, msisdn, code_hash, attempts, expires_at, created_at
		FROM otps
		WHERE msisdn = $1 AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp models.OTP
	err := r.db.GetContext(ctx, &otp, query, msisdn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	return &otp, nil
}

// IncrementOTPAttempts bumps the attempt counter after a wrong code
func (r *AuthRepo) IncrementOTPAttempts(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE otps SET attempts = attempts + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to increment OTP attempts: %w", err)
	}
	return nil
}

// DeleteOTP removes an OTP row (consumed or exhausted)
func (r *AuthRepo) DeleteOTP(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM otps WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
