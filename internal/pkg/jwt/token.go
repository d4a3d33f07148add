package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/models"
)

const (
	// TokenTypeAccess marks short-lived tokens that authorize API calls
	TokenTypeAccess = "access"
	// TokenTypeRefresh marks longer-lived tokens accepted only by the refresh endpoint
	TokenTypeRefresh = "refresh"
)

// Claims represents standard JWT claims plus custom fields
type Claims struct {
	UserID    uuid.UUID   `json:"user_id"`
	MSISDN    string      `json:"msisdn"`
	Role      models.Role `json:"role"`
	TokenType string      `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair holds a freshly issued access/refresh pair
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // access token lifetime in seconds
}

// GeneratePair issues an access/refresh token pair for the given user.
// Both tokens are stateless signed artifacts; nothing is persisted.
func GeneratePair(user *models.User, cfg models.JWTConfig) (*TokenPair, error) {
	access, err := generate(user, TokenTypeAccess, cfg.AccessExpiry, cfg)
	if err != nil {
		return nil, err
	}

	refresh, err := generate(user, TokenTypeRefresh, cfg.RefreshExpiry, cfg)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(cfg.AccessExpiry.Seconds()),
	}, nil
}

func generate(user *models.User, tokenType string, expiry time.Duration, cfg models.JWTConfig) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    user.ID,
		MSISDN:    user.MSISDN,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken validates a token of the expected type and returns its claims.
// Malformed, expired and badly signed tokens all surface as ErrInvalidToken;
// callers respond with a generic 401 and cannot distinguish the cases.
func ValidateToken(tokenString, expectedType string, cfg models.JWTConfig) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.TokenType != expectedType {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
