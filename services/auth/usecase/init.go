package usecase

import (
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/sms"
	"github.com/alumnet/backend/services/auth"
)

// AuthUC implements the authentication usecase
type AuthUC struct {
	authRepo auth.AuthRepo
	sms      sms.Dispatcher
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	dispatcher sms.Dispatcher,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		sms:      dispatcher,
		cfg:      cfg,
	}
}
