package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/sms"
	"github.com/alumnet/backend/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:        "test-secret",
			Issuer:        "alumnet-test",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 168 * time.Hour,
		},
		OTP: models.OTPConfig{
			Expiry:      5 * time.Minute,
			MaxAttempts: 3,
			Length:      6,
		},
	}
}

func hashCode(t *testing.T, code string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func TestCheckStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	uc := NewAuthUC(mockRepo, sms.NewLogDispatcher(), testConfig())

	t.Run("unknown number", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByMSISDN(gomock.Any(), "628123456789").
			Return(nil, apperrors.ErrNotFound)

		resp, err := uc.CheckStatus(context.Background(), "+628123456789")

		assert.NoError(t, err)
		assert.False(t, resp.Exists)
	})

	t.Run("pending account", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByMSISDN(gomock.Any(), "628123456789").
			Return(&models.User{Status: models.StatusPending}, nil)

		resp, err := uc.CheckStatus(context.Background(), "628123456789")

		assert.NoError(t, err)
		assert.True(t, resp.Exists)
		assert.Equal(t, models.StatusPending, resp.Status)
	})

	t.Run("invalid number", func(t *testing.T) {
		_, err := uc.CheckStatus(context.Background(), "12ab")

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestRequestOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	uc := NewAuthUC(mockRepo, sms.NewLogDispatcher(), testConfig())

	t.Run("success for new number", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByMSISDN(gomock.Any(), "628123456789").
			Return(nil, apperrors.ErrNotFound)
		mockRepo.EXPECT().
			ReplaceOTP(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, otp *models.OTP) error {
				assert.Equal(t, "628123456789", otp.MSISDN)
				assert.Zero(t, otp.Attempts)
				assert.True(t, otp.ExpiresAt.After(time.Now()))
				// only the hash is stored
				assert.NotContains(t, otp.CodeHash, otp.MSISDN)
				return nil
			})

		code, err := uc.RequestOTP(context.Background(), "+62 812-3456-789")

		assert.NoError(t, err)
		assert.Len(t, code, 6)
	})

	t.Run("pending account is refused before issuance", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByMSISDN(gomock.Any(), "628123456789").
			Return(&models.User{Status: models.StatusPending}, nil)

		_, err := uc.RequestOTP(context.Background(), "628123456789")

		assert.ErrorIs(t, err, apperrors.ErrAccountPending)
	})

	t.Run("rejected account is refused", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByMSISDN(gomock.Any(), "628123456789").
			Return(&models.User{Status: models.StatusRejected}, nil)

		_, err := uc.RequestOTP(context.Background(), "628123456789")

		assert.ErrorIs(t, err, apperrors.ErrAccountRejected)
	})

	t.Run("lookup failure does not bypass the status gate", func(t *testing.T) {
		// No ReplaceOTP expectation: a transient lookup error must not
		// issue a code for an account whose status is unknown.
		mockRepo.EXPECT().
			GetUserByMSISDN(gomock.Any(), "628123456789").
			Return(nil, errors.New("connection refused"))

		_, err := uc.RequestOTP(context.Background(), "628123456789")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByMSISDN(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrNotFound)
		mockRepo.EXPECT().
			ReplaceOTP(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		_, err := uc.RequestOTP(context.Background(), "628123456789")

		assert.Error(t, err)
	})
}

func TestVerifyOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	uc := NewAuthUC(mockRepo, sms.NewLogDispatcher(), testConfig())

	msisdn := "628123456789"
	code := "482913"

	liveOTP := func() *models.OTP {
		return &models.OTP{
			ID:        uuid.New(),
			MSISDN:    msisdn,
			CodeHash:  hashCode(t, code),
			Attempts:  0,
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}
	}

	t.Run("correct code for existing user", func(t *testing.T) {
		otp := liveOTP()
		user := &models.User{
			ID:     uuid.New(),
			MSISDN: msisdn,
			Role:   models.RoleUser,
			Status: models.StatusApproved,
		}

		mockRepo.EXPECT().GetLatestOTP(gomock.Any(), msisdn).Return(otp, nil)
		mockRepo.EXPECT().DeleteOTP(gomock.Any(), otp.ID).Return(nil)
		mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(user, nil)

		resp, err := uc.VerifyOTP(context.Background(), msisdn, code)

		assert.NoError(t, err)
		assert.Equal(t, user.ID, resp.User.ID)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("first login creates user with default role", func(t *testing.T) {
		otp := liveOTP()

		mockRepo.EXPECT().GetLatestOTP(gomock.Any(), msisdn).Return(otp, nil)
		mockRepo.EXPECT().DeleteOTP(gomock.Any(), otp.ID).Return(nil)
		mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(nil, apperrors.ErrNotFound)
		mockRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) error {
				assert.Equal(t, msisdn, u.MSISDN)
				assert.Equal(t, models.RoleUser, u.Role)
				assert.Equal(t, models.StatusApproved, u.Status)
				return nil
			})

		resp, err := uc.VerifyOTP(context.Background(), msisdn, code)

		assert.NoError(t, err)
		assert.NotNil(t, resp.User)
		assert.Equal(t, models.RoleUser, resp.User.Role)
	})

	t.Run("lookup failure is not treated as first login", func(t *testing.T) {
		// No CreateUser expectation: only a confirmed missing account
		// takes the signup branch.
		otp := liveOTP()

		mockRepo.EXPECT().GetLatestOTP(gomock.Any(), msisdn).Return(otp, nil)
		mockRepo.EXPECT().DeleteOTP(gomock.Any(), otp.ID).Return(nil)
		mockRepo.EXPECT().
			GetUserByMSISDN(gomock.Any(), msisdn).
			Return(nil, errors.New("connection refused"))

		_, err := uc.VerifyOTP(context.Background(), msisdn, code)

		assert.Error(t, err)
	})

	t.Run("no live code", func(t *testing.T) {
		mockRepo.EXPECT().
			GetLatestOTP(gomock.Any(), msisdn).
			Return(nil, apperrors.ErrNotFound)

		_, err := uc.VerifyOTP(context.Background(), msisdn, code)

		assert.ErrorIs(t, err, apperrors.ErrOTPNotFound)
	})

	t.Run("wrong code increments attempts", func(t *testing.T) {
		otp := liveOTP()

		mockRepo.EXPECT().GetLatestOTP(gomock.Any(), msisdn).Return(otp, nil)
		mockRepo.EXPECT().IncrementOTPAttempts(gomock.Any(), otp.ID).Return(nil)

		_, err := uc.VerifyOTP(context.Background(), msisdn, "000000")

		assert.ErrorIs(t, err, apperrors.ErrOTPInvalid)
	})

	t.Run("exhausted attempts kill the code even when correct", func(t *testing.T) {
		otp := liveOTP()
		otp.Attempts = 3

		mockRepo.EXPECT().GetLatestOTP(gomock.Any(), msisdn).Return(otp, nil)
		mockRepo.EXPECT().DeleteOTP(gomock.Any(), otp.ID).Return(nil)

		_, err := uc.VerifyOTP(context.Background(), msisdn, code)

		assert.ErrorIs(t, err, apperrors.ErrOTPTooManyAttempts)
	})

	t.Run("account rejected after code was issued", func(t *testing.T) {
		otp := liveOTP()

		mockRepo.EXPECT().GetLatestOTP(gomock.Any(), msisdn).Return(otp, nil)
		mockRepo.EXPECT().DeleteOTP(gomock.Any(), otp.ID).Return(nil)
		mockRepo.EXPECT().
			GetUserByMSISDN(gomock.Any(), msisdn).
			Return(&models.User{ID: uuid.New(), MSISDN: msisdn, Status: models.StatusRejected}, nil)

		_, err := uc.VerifyOTP(context.Background(), msisdn, code)

		assert.ErrorIs(t, err, apperrors.ErrAccountRejected)
	})
}

func TestRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	cfg := testConfig()
	uc := NewAuthUC(mockRepo, sms.NewLogDispatcher(), cfg)

	user := &models.User{
		ID:     uuid.New(),
		MSISDN: "628123456789",
		Role:   models.RoleUser,
		Status: models.StatusApproved,
	}

	issuePair := func(t *testing.T, u *models.User) (string, string) {
		t.Helper()
		otp := &models.OTP{
			ID:        uuid.New(),
			MSISDN:    u.MSISDN,
			CodeHash:  hashCode(t, "111111"),
			ExpiresAt: time.Now().Add(time.Minute),
		}
		mockRepo.EXPECT().GetLatestOTP(gomock.Any(), u.MSISDN).Return(otp, nil)
		mockRepo.EXPECT().DeleteOTP(gomock.Any(), otp.ID).Return(nil)
		mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), u.MSISDN).Return(u, nil)

		resp, err := uc.VerifyOTP(context.Background(), u.MSISDN, "111111")
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		return resp.AccessToken, resp.RefreshToken
	}

	t.Run("valid refresh token", func(t *testing.T) {
		_, refresh := issuePair(t, user)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)

		resp, err := uc.RefreshToken(context.Background(), refresh)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("access token is not accepted as refresh", func(t *testing.T) {
		access, _ := issuePair(t, user)

		_, err := uc.RefreshToken(context.Background(), access)

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := uc.RefreshToken(context.Background(), "not-a-token")

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("user rejected since issuance", func(t *testing.T) {
		_, refresh := issuePair(t, user)

		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), user.ID).
			Return(&models.User{ID: user.ID, Status: models.StatusRejected}, nil)

		_, err := uc.RefreshToken(context.Background(), refresh)

		assert.ErrorIs(t, err, apperrors.ErrAccountRejected)
	})
}
