package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/validation"
	"github.com/alumnet/backend/internal/utils"
	"github.com/alumnet/backend/services/auth"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authUC auth.AuthUC
	debug  bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC, debug bool) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		debug:  debug,
	}
}

// CheckStatus handles account status probes
func (h *AuthHandler) CheckStatus(c echo.Context) error {
	var req models.CheckStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.MobileNumber == "" {
		return utils.BadRequestResponse(c, "mobileNumber is required")
	}

	resp, err := h.authUC.CheckStatus(c.Request().Context(), req.MobileNumber)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, resp.Message, resp)
}

// RequestOTP handles OTP issuance requests
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP request",
			logger.ErrorField(err),
			logger.String("endpoint", "RequestOTP"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.MobileNumber == "" {
		return utils.BadRequestResponse(c, "mobileNumber is required")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	code, err := h.authUC.RequestOTP(c.Request().Context(), req.MobileNumber)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	// Debug builds echo the code so local clients can log in without
	// a real SMS gateway.
	var data interface{}
	if h.debug {
		data = models.RequestOTPResponse{Code: code}
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "OTP sent successfully", data)
}

// VerifyOTP handles OTP verification and token issuance
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.MobileNumber == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "mobileNumber and otp are required")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.MobileNumber, req.OTP)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Login successful", resp)
}

// RefreshToken handles token refresh requests
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req models.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.RefreshToken == "" {
		return utils.BadRequestResponse(c, "refreshToken is required")
	}

	resp, err := h.authUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Token refreshed", resp)
}

// Logout acknowledges the request. Tokens are stateless, so logout is
// advisory only: clients drop their tokens, the server invalidates
// nothing.
func (h *AuthHandler) Logout(c echo.Context) error {
	return utils.SuccessResponse(c, nethttp.StatusOK, "Logged out", nil)
}
