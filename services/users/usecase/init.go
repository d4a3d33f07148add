package usecase

import (
	"github.com/alumnet/backend/internal/pkg/notify"
	"github.com/alumnet/backend/internal/pkg/storage"
	"github.com/alumnet/backend/services/users"
)

// UserUC implements the user profile and administration usecase
type UserUC struct {
	userRepo users.UserRepo
	media    storage.MediaStore
	notifier notify.Publisher
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	media storage.MediaStore,
	notifier notify.Publisher,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		media:    media,
		notifier: notifier,
	}
}
