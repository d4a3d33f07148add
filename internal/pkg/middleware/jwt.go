package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/alumnet/backend/internal/pkg/jwt"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/utils"
)

const (
	// ContextUserID is the echo context key holding the authenticated user id
	ContextUserID = "user_id"
	// ContextUserRole is the echo context key holding the authenticated role
	ContextUserRole = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication.
// A 401 from here means "refresh or re-login"; the middleware never
// distinguishes malformed, expired and badly signed tokens.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], jwtpkg.TokenTypeAccess, config)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserRole, claims.Role)

			return next(c)
		}
	}
}

// AdminOnly restricts a route group to admin roles. Must run after
// JWTAuthMiddleware.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextUserRole).(models.Role)
			if !ok || !role.IsAdmin() {
				return utils.ForbiddenResponse(c, "Admin access required")
			}
			return next(c)
		}
	}
}

// UserID extracts the authenticated user id from the context
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextUserID).(uuid.UUID)
	return id, ok
}

// UserRole extracts the authenticated role from the context
func UserRole(c echo.Context) models.Role {
	if role, ok := c.Get(ContextUserRole).(models.Role); ok {
		return role
	}
	return models.RoleUser
}
