package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	jwtpkg "github.com/alumnet/backend/internal/pkg/jwt"
	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/utils"
)

// CheckStatus reports whether an account exists for the number and its
// approval state.
func (u *AuthUC) CheckStatus(ctx context.Context, mobileNumber string) (*models.CheckStatusResponse, error) {
	msisdn, err := utils.NormalizeMSISDN(mobileNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	user, err := u.authRepo.GetUserByMSISDN(ctx, msisdn)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &models.CheckStatusResponse{
			Exists:  false,
			Message: "No account found for this number; verifying an OTP will create one",
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	return &models.CheckStatusResponse{
		Exists:  true,
		Status:  user.Status,
		Message: statusMessage(user.Status),
	}, nil
}

func statusMessage(status models.AccountStatus) string {
	switch status {
	case models.StatusPending:
		return "Account is awaiting admin approval"
	case models.StatusRejected:
		return "Account has been rejected"
	}
	return "Account is active"
}

// RequestOTP issues a fresh one-time code for the number. Unapproved and
// rejected accounts are refused before any code is generated.
//
// A failed SMS dispatch does not fail the request: the stored code is
// already live and verifiable, and the gateway is a logging stub. The
// failure is logged for operators instead.
func (u *AuthUC) RequestOTP(ctx context.Context, mobileNumber string) (string, error) {
	msisdn, err := utils.NormalizeMSISDN(mobileNumber)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	// Only a confirmed missing account may proceed as a signup; a lookup
	// failure must not bypass the pending/rejected gate.
	user, err := u.authRepo.GetUserByMSISDN(ctx, msisdn)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("failed to look up account: %w", err)
	}
	if user != nil {
		if err := checkAccountStatus(user.Status); err != nil {
			return "", err
		}
	}

	code, err := utils.GenerateOTPCode(u.cfg.OTP.Length)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash OTP: %w", err)
	}

	now := time.Now()
	otp := &models.OTP{
		ID:        uuid.New(),
		MSISDN:    msisdn,
		CodeHash:  string(hash),
		Attempts:  0,
		ExpiresAt: now.Add(u.cfg.OTP.Expiry),
		CreatedAt: now,
	}

	// Replaces any prior code: only the newest one verifies.
	if err := u.authRepo.ReplaceOTP(ctx, otp); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := u.sms.SendOTP(ctx, msisdn, code); err != nil {
		logger.Warn("SMS dispatch failed",
			logger.String("msisdn", msisdn),
			logger.Err(err))
	}

	return code, nil
}

func checkAccountStatus(status models.AccountStatus) error {
	switch status {
	case models.StatusPending:
		return apperrors.ErrAccountPending
	case models.StatusRejected:
		return apperrors.ErrAccountRejected
	}
	return nil
}

// VerifyOTP validates the submitted code and issues a token pair.
func (u *AuthUC) VerifyOTP(ctx context.Context, mobileNumber, code string) (*models.AuthResponse, error) {
	msisdn, err := utils.NormalizeMSISDN(mobileNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	otp, err := u.authRepo.GetLatestOTP(ctx, msisdn)
	if err != nil {
		// Expired and never-requested are indistinguishable here.
		return nil, apperrors.ErrOTPNotFound
	}

	// Attempt exhaustion is checked before the code comparison; an
	// exhausted row is dead no matter what the caller submits.
	if otp.Attempts >= u.cfg.OTP.MaxAttempts {
		if err := u.authRepo.DeleteOTP(ctx, otp.ID); err != nil {
			logger.Error("Failed to delete exhausted OTP", logger.Err(err))
		}
		return nil, apperrors.ErrOTPTooManyAttempts
	}

	if err := bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(code)); err != nil {
		if err := u.authRepo.IncrementOTPAttempts(ctx, otp.ID); err != nil {
			logger.Error("Failed to increment OTP attempts", logger.Err(err))
		}
		return nil, apperrors.ErrOTPInvalid
	}

	// Single use: the row is gone once the code matches.
	if err := u.authRepo.DeleteOTP(ctx, otp.ID); err != nil {
		return nil, fmt.Errorf("failed to consume OTP: %w", err)
	}

	user, err := u.authRepo.GetUserByMSISDN(ctx, msisdn)
	if errors.Is(err, apperrors.ErrNotFound) {
		// First login: create the account with its default role.
		user = &models.User{
			ID:       uuid.New(),
			MSISDN:   msisdn,
			Role:     models.RoleUser,
			Status:   models.StatusApproved,
			IsActive: true,
		}
		if err := u.authRepo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	} else {
		// Status may have changed between issuance and verification;
		// the second check is deliberate.
		if err := checkAccountStatus(user.Status); err != nil {
			return nil, err
		}
	}

	pair, err := jwtpkg.GeneratePair(user, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	logger.Info("User authenticated",
		logger.String("user_id", user.ID.String()),
		logger.String("msisdn", msisdn))

	return &models.AuthResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// RefreshToken validates a refresh token and reissues both tokens.
// Rotation is advisory: nothing is invalidated server-side.
func (u *AuthUC) RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	claims, err := jwtpkg.ValidateToken(refreshToken, jwtpkg.TokenTypeRefresh, u.cfg.JWT)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Reload the user so a status or role change takes effect now.
	user, err := u.authRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if err := checkAccountStatus(user.Status); err != nil {
		return nil, err
	}

	pair, err := jwtpkg.GeneratePair(user, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &models.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
