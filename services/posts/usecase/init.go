package usecase

import (
	"github.com/alumnet/backend/internal/pkg/notify"
	"github.com/alumnet/backend/internal/pkg/storage"
	"github.com/alumnet/backend/services/posts"
)

// PostUC implements the post usecase
type PostUC struct {
	postRepo posts.PostRepo
	media    storage.MediaStore
	notifier notify.Publisher
}

// NewPostUC creates a new post usecase instance
func NewPostUC(
	postRepo posts.PostRepo,
	media storage.MediaStore,
	notifier notify.Publisher,
) *PostUC {
	return &PostUC{
		postRepo: postRepo,
		media:    media,
		notifier: notifier,
	}
}
