package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/notify"
	"github.com/alumnet/backend/services/posts/mocks"
)

type fakeMediaStore struct {
	uploaded []string
	deleted  []string
	fail     bool
}

func (f *fakeMediaStore) Upload(_ context.Context, prefix, fileName string, _ io.Reader, _ int64) (string, string, error) {
	if f.fail {
		return "", "", errors.New("storage unavailable")
	}
	object := prefix + "/" + fileName
	f.uploaded = append(f.uploaded, object)
	return object, "http://media.local/" + object, nil
}

func (f *fakeMediaStore) Delete(_ context.Context, objectName string) error {
	f.deleted = append(f.deleted, objectName)
	return nil
}

func boolPtr(b bool) *bool { return &b }

func TestCreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPostRepo(ctrl)
	uc := NewPostUC(mockRepo, &fakeMediaStore{}, notify.NoopPublisher{})

	authorID := uuid.New()
	groupID := uuid.New()

	t.Run("ungrouped post defaults to public and pending", func(t *testing.T) {
		mockRepo.EXPECT().
			CreatePost(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Post) error {
				assert.True(t, p.IsPublic)
				assert.Equal(t, models.PostPending, p.Status)
				return nil
			})

		post, err := uc.CreatePost(context.Background(), authorID, models.RoleUser,
			&models.CreatePostRequest{Content: "hello"})

		assert.NoError(t, err)
		assert.True(t, post.IsPublic)
	})

	t.Run("grouped post defaults to non-public", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), authorID).
			Return([]uuid.UUID{groupID}, nil)
		mockRepo.EXPECT().
			CreatePost(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Post) error {
				assert.False(t, p.IsPublic)
				assert.Equal(t, []uuid.UUID{groupID}, p.GroupIDs)
				return nil
			})

		post, err := uc.CreatePost(context.Background(), authorID, models.RoleUser,
			&models.CreatePostRequest{Content: "hello", GroupIDs: []uuid.UUID{groupID}})

		assert.NoError(t, err)
		assert.False(t, post.IsPublic)
	})

	t.Run("explicit isPublic wins over the default", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), authorID).
			Return([]uuid.UUID{groupID}, nil)
		mockRepo.EXPECT().
			CreatePost(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Post) error {
				assert.True(t, p.IsPublic)
				return nil
			})

		_, err := uc.CreatePost(context.Background(), authorID, models.RoleUser,
			&models.CreatePostRequest{
				Content:  "hello",
				GroupIDs: []uuid.UUID{groupID},
				IsPublic: boolPtr(true),
			})

		assert.NoError(t, err)
	})

	t.Run("admin posts are auto-approved", func(t *testing.T) {
		mockRepo.EXPECT().
			CreatePost(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Post) error {
				assert.Equal(t, models.PostApproved, p.Status)
				return nil
			})

		post, err := uc.CreatePost(context.Background(), authorID, models.RoleAdmin,
			&models.CreatePostRequest{Content: "announcement"})

		assert.NoError(t, err)
		assert.Equal(t, models.PostApproved, post.Status)
	})

	t.Run("non-member cannot target a group", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), authorID).
			Return([]uuid.UUID{}, nil)

		_, err := uc.CreatePost(context.Background(), authorID, models.RoleUser,
			&models.CreatePostRequest{Content: "hello", GroupIDs: []uuid.UUID{groupID}})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestGetPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPostRepo(ctrl)
	uc := NewPostUC(mockRepo, &fakeMediaStore{}, notify.NoopPublisher{})

	viewerID := uuid.New()
	authorID := uuid.New()
	postID := uuid.New()
	groupID := uuid.New()

	t.Run("public approved post visible", func(t *testing.T) {
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), viewerID, postID).
			Return(&models.Post{ID: postID, AuthorID: authorID, IsPublic: true, Status: models.PostApproved}, nil)
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), viewerID).
			Return(nil, nil)

		post, err := uc.GetPost(context.Background(), viewerID, models.RoleUser, postID)

		assert.NoError(t, err)
		assert.Equal(t, postID, post.ID)
	})

	t.Run("group post hidden from non-members", func(t *testing.T) {
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), viewerID, postID).
			Return(&models.Post{
				ID: postID, AuthorID: authorID, Status: models.PostApproved,
				GroupIDs: []uuid.UUID{groupID},
			}, nil)
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), viewerID).
			Return([]uuid.UUID{uuid.New()}, nil)

		_, err := uc.GetPost(context.Background(), viewerID, models.RoleUser, postID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("author sees own pending post", func(t *testing.T) {
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), authorID, postID).
			Return(&models.Post{ID: postID, AuthorID: authorID, Status: models.PostPending}, nil)

		post, err := uc.GetPost(context.Background(), authorID, models.RoleUser, postID)

		assert.NoError(t, err)
		assert.Equal(t, models.PostPending, post.Status)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), viewerID, postID).
			Return(&models.Post{ID: postID, AuthorID: authorID, Status: models.PostRejected}, nil)

		post, err := uc.GetPost(context.Background(), viewerID, models.RoleAdmin, postID)

		assert.NoError(t, err)
		assert.NotNil(t, post)
	})
}

func TestDeletePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPostRepo(ctrl)
	store := &fakeMediaStore{}
	uc := NewPostUC(mockRepo, store, notify.NoopPublisher{})

	authorID := uuid.New()
	postID := uuid.New()

	t.Run("owner deletes with media cleanup", func(t *testing.T) {
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), authorID, postID).
			Return(&models.Post{ID: postID, AuthorID: authorID}, nil)
		mockRepo.EXPECT().
			DeletePost(gomock.Any(), postID).
			Return([]models.Media{{ObjectName: "posts/2026/08/a.jpg"}}, nil)

		err := uc.DeletePost(context.Background(), authorID, models.RoleUser, postID)

		assert.NoError(t, err)
		assert.Contains(t, store.deleted, "posts/2026/08/a.jpg")
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		stranger := uuid.New()
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), stranger, postID).
			Return(&models.Post{ID: postID, AuthorID: authorID}, nil)

		err := uc.DeletePost(context.Background(), stranger, models.RoleUser, postID)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestModeration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPostRepo(ctrl)
	uc := NewPostUC(mockRepo, &fakeMediaStore{}, notify.NoopPublisher{})

	postID := uuid.New()
	authorID := uuid.New()

	t.Run("approve pending post", func(t *testing.T) {
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), uuid.Nil, postID).
			Return(&models.Post{ID: postID, AuthorID: authorID, Status: models.PostPending}, nil)
		mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), postID, models.PostApproved).
			Return(nil)

		post, err := uc.ApprovePost(context.Background(), postID)

		assert.NoError(t, err)
		assert.Equal(t, models.PostApproved, post.Status)
	})

	t.Run("approving approved post skips the write", func(t *testing.T) {
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), uuid.Nil, postID).
			Return(&models.Post{ID: postID, AuthorID: authorID, Status: models.PostApproved}, nil)

		_, err := uc.ApprovePost(context.Background(), postID)

		assert.NoError(t, err)
	})

	t.Run("list with unknown status rejected", func(t *testing.T) {
		_, err := uc.ListByStatus(context.Background(), "archived", models.Pagination{})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPostRepo(ctrl)
	uc := NewPostUC(mockRepo, &fakeMediaStore{}, notify.NoopPublisher{})

	postAuthor := uuid.New()
	commenter := uuid.New()
	postID := uuid.New()
	commentID := uuid.New()

	visiblePost := &models.Post{
		ID: postID, AuthorID: postAuthor, IsPublic: true, Status: models.PostApproved,
	}

	t.Run("comment on visible post", func(t *testing.T) {
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), commenter, postID).
			Return(visiblePost, nil)
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), commenter).
			Return(nil, nil)
		mockRepo.EXPECT().
			CreateComment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *models.Comment) error {
				assert.Equal(t, postID, c.PostID)
				assert.Equal(t, commenter, c.AuthorID)
				return nil
			})

		comment, err := uc.AddComment(context.Background(), commenter, models.RoleUser, postID,
			&models.CreateCommentRequest{Content: "nice"})

		assert.NoError(t, err)
		assert.Equal(t, "nice", comment.Content)
	})

	t.Run("post author may delete another user's comment", func(t *testing.T) {
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), postAuthor, postID).
			Return(visiblePost, nil)
		mockRepo.EXPECT().
			GetComment(gomock.Any(), commentID).
			Return(&models.Comment{ID: commentID, PostID: postID, AuthorID: commenter}, nil)
		mockRepo.EXPECT().
			DeleteComment(gomock.Any(), commentID).
			Return(nil)

		err := uc.DeleteComment(context.Background(), postAuthor, models.RoleUser, postID, commentID)

		assert.NoError(t, err)
	})

	t.Run("stranger may not delete a comment", func(t *testing.T) {
		stranger := uuid.New()
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), stranger, postID).
			Return(visiblePost, nil)
		mockRepo.EXPECT().
			GetComment(gomock.Any(), commentID).
			Return(&models.Comment{ID: commentID, PostID: postID, AuthorID: commenter}, nil)

		err := uc.DeleteComment(context.Background(), stranger, models.RoleUser, postID, commentID)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("comment under a different post reads as not found", func(t *testing.T) {
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), postAuthor, postID).
			Return(visiblePost, nil)
		mockRepo.EXPECT().
			GetComment(gomock.Any(), commentID).
			Return(&models.Comment{ID: commentID, PostID: uuid.New(), AuthorID: commenter}, nil)

		err := uc.DeleteComment(context.Background(), postAuthor, models.RoleUser, postID, commentID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestUploadMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPostRepo(ctrl)
	store := &fakeMediaStore{}
	uc := NewPostUC(mockRepo, store, notify.NoopPublisher{})

	authorID := uuid.New()
	postID := uuid.New()

	t.Run("owner uploads", func(t *testing.T) {
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), authorID, postID).
			Return(&models.Post{ID: postID, AuthorID: authorID}, nil)
		mockRepo.EXPECT().
			AddMedia(gomock.Any(), postID, gomock.Any()).
			Return(nil)

		media, err := uc.UploadMedia(context.Background(), authorID, postID,
			"photo.jpg", strings.NewReader("jpeg"), 4)

		assert.NoError(t, err)
		assert.NotEmpty(t, media.URL)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		stranger := uuid.New()
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), stranger, postID).
			Return(&models.Post{ID: postID, AuthorID: authorID}, nil)

		_, err := uc.UploadMedia(context.Background(), stranger, postID,
			"photo.jpg", strings.NewReader("jpeg"), 4)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("failed insert reaps the object", func(t *testing.T) {
		mockRepo.EXPECT().
			GetPostByID(gomock.Any(), authorID, postID).
			Return(&models.Post{ID: postID, AuthorID: authorID}, nil)
		mockRepo.EXPECT().
			AddMedia(gomock.Any(), postID, gomock.Any()).
			Return(errors.New("constraint violation"))

		_, err := uc.UploadMedia(context.Background(), authorID, postID,
			"photo.jpg", strings.NewReader("jpeg"), 4)

		assert.Error(t, err)
		assert.Contains(t, store.deleted, "posts/photo.jpg")
	})
}
