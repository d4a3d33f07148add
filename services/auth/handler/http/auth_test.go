package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/services/auth/mocks"
)

func newRequest(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCheckStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC, false)

	t.Run("existing account", func(t *testing.T) {
		mockUC.EXPECT().
			CheckStatus(gomock.Any(), "628123456789").
			Return(&models.CheckStatusResponse{
				Exists: true,
				Status: models.StatusApproved,
			}, nil)

		c, rec := newRequest(t, http.MethodPost, "/auth/check-status",
			`{"mobileNumber":"628123456789"}`)

		err := handler.CheckStatus(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"exists":true`)
	})

	t.Run("missing number", func(t *testing.T) {
		c, rec := newRequest(t, http.MethodPost, "/auth/check-status", `{}`)

		err := handler.CheckStatus(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRequestOTPHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)

	t.Run("success does not leak the code", func(t *testing.T) {
		handler := NewAuthHandler(mockUC, false)
		mockUC.EXPECT().
			RequestOTP(gomock.Any(), "628123456789").
			Return("482913", nil)

		c, rec := newRequest(t, http.MethodPost, "/auth/request-otp",
			`{"mobileNumber":"628123456789"}`)

		err := handler.RequestOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "482913")
	})

	t.Run("debug mode echoes the code", func(t *testing.T) {
		handler := NewAuthHandler(mockUC, true)
		mockUC.EXPECT().
			RequestOTP(gomock.Any(), "628123456789").
			Return("482913", nil)

		c, rec := newRequest(t, http.MethodPost, "/auth/request-otp",
			`{"mobileNumber":"628123456789"}`)

		err := handler.RequestOTP(c)

		assert.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "482913")
	})

	t.Run("pending account maps to 403", func(t *testing.T) {
		handler := NewAuthHandler(mockUC, false)
		mockUC.EXPECT().
			RequestOTP(gomock.Any(), "628123456789").
			Return("", apperrors.ErrAccountPending)

		c, rec := newRequest(t, http.MethodPost, "/auth/request-otp",
			`{"mobileNumber":"628123456789"}`)

		err := handler.RequestOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, apperrors.StatusCode(apperrors.ErrAccountPending), rec.Code)
	})

	t.Run("malformed payload", func(t *testing.T) {
		handler := NewAuthHandler(mockUC, false)
		c, rec := newRequest(t, http.MethodPost, "/auth/request-otp", `{not json`)

		err := handler.RequestOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVerifyOTPHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC, false)

	t.Run("success returns tokens", func(t *testing.T) {
		mockUC.EXPECT().
			VerifyOTP(gomock.Any(), "628123456789", "482913").
			Return(&models.AuthResponse{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				ExpiresIn:    900,
			}, nil)

		c, rec := newRequest(t, http.MethodPost, "/auth/verify-otp",
			`{"mobileNumber":"628123456789","otp":"482913"}`)

		err := handler.VerifyOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data models.AuthResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "access-token", body.Data.AccessToken)
		assert.Equal(t, "refresh-token", body.Data.RefreshToken)
	})

	t.Run("wrong code maps to 401", func(t *testing.T) {
		mockUC.EXPECT().
			VerifyOTP(gomock.Any(), "628123456789", "000000").
			Return(nil, apperrors.ErrOTPInvalid)

		c, rec := newRequest(t, http.MethodPost, "/auth/verify-otp",
			`{"mobileNumber":"628123456789","otp":"000000"}`)

		err := handler.VerifyOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, apperrors.StatusCode(apperrors.ErrOTPInvalid), rec.Code)
	})

	t.Run("expired or missing code maps to 401", func(t *testing.T) {
		mockUC.EXPECT().
			VerifyOTP(gomock.Any(), "628123456789", "482913").
			Return(nil, apperrors.ErrOTPNotFound)

		c, rec := newRequest(t, http.MethodPost, "/auth/verify-otp",
			`{"mobileNumber":"628123456789","otp":"482913"}`)

		err := handler.VerifyOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing otp", func(t *testing.T) {
		c, rec := newRequest(t, http.MethodPost, "/auth/verify-otp",
			`{"mobileNumber":"628123456789"}`)

		err := handler.VerifyOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRefreshTokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC, false)

	t.Run("valid token", func(t *testing.T) {
		mockUC.EXPECT().
			RefreshToken(gomock.Any(), "refresh-token").
			Return(&models.AuthResponse{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
			}, nil)

		c, rec := newRequest(t, http.MethodPost, "/auth/refresh",
			`{"refreshToken":"refresh-token"}`)

		err := handler.RefreshToken(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "new-access")
	})

	t.Run("invalid token maps to 401", func(t *testing.T) {
		mockUC.EXPECT().
			RefreshToken(gomock.Any(), "garbage").
			Return(nil, apperrors.ErrInvalidToken)

		c, rec := newRequest(t, http.MethodPost, "/auth/refresh",
			`{"refreshToken":"garbage"}`)

		err := handler.RefreshToken(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAuthHandler(mocks.NewMockAuthUC(ctrl), false)

	c, rec := newRequest(t, http.MethodPost, "/auth/logout", ``)

	err := handler.Logout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
