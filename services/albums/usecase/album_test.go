package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/notify"
	"github.com/alumnet/backend/services/albums/mocks"
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

func TestCreateAlbum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlbumRepo(ctrl)
	uc := NewAlbumUC(mockRepo, &fakeMediaStore{}, notify.NoopPublisher{})

	adminID := uuid.New()
	groupID := uuid.New()
	eventID := uuid.New()

	t.Run("creates album with group links", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateAlbum(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *models.Album) error {
				assert.Equal(t, "Reunion 2026", a.Title)
				assert.Equal(t, []uuid.UUID{groupID}, a.GroupIDs)
				assert.Nil(t, a.EventID)
				return nil
			})

		album, err := uc.CreateAlbum(context.Background(), adminID, &models.CreateAlbumRequest{
			Title:    "Reunion 2026",
			GroupIDs: []uuid.UUID{groupID},
		})

		assert.NoError(t, err)
		assert.Equal(t, adminID, album.CreatedBy)
	})

	t.Run("validates the linked event", func(t *testing.T) {
		mockRepo.EXPECT().
			EventExists(gomock.Any(), eventID).
			Return(true, nil)
		mockRepo.EXPECT().
			CreateAlbum(gomock.Any(), gomock.Any()).
			Return(nil)

		album, err := uc.CreateAlbum(context.Background(), adminID, &models.CreateAlbumRequest{
			Title:   "Reunion 2026",
			EventID: &eventID,
		})

		assert.NoError(t, err)
		assert.Equal(t, eventID, *album.EventID)
	})

	t.Run("rejects an unknown event", func(t *testing.T) {
		mockRepo.EXPECT().
			EventExists(gomock.Any(), eventID).
			Return(false, nil)

		_, err := uc.CreateAlbum(context.Background(), adminID, &models.CreateAlbumRequest{
			Title:   "Reunion 2026",
			EventID: &eventID,
		})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestListAlbums(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlbumRepo(ctrl)
	uc := NewAlbumUC(mockRepo, &fakeMediaStore{}, notify.NoopPublisher{})

	userID := uuid.New()
	groupID := uuid.New()

	t.Run("admin sees every album", func(t *testing.T) {
		mockRepo.EXPECT().
			ListAll(gomock.Any(), gomock.Any()).
			Return([]models.Album{{ID: uuid.New()}, {ID: uuid.New()}}, int64(2), nil)

		page, err := uc.ListAlbums(context.Background(), userID, models.RoleAdmin, models.Pagination{})

		assert.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, int64(2), page.Total)
	})

	t.Run("member sees albums through memberships", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), userID).
			Return([]uuid.UUID{groupID}, nil)
		mockRepo.EXPECT().
			ListForGroups(gomock.Any(), []uuid.UUID{groupID}, gomock.Any()).
			Return([]models.Album{{ID: uuid.New()}}, int64(1), nil)

		page, err := uc.ListAlbums(context.Background(), userID, models.RoleUser, models.Pagination{})

		assert.NoError(t, err)
		assert.Len(t, page.Items, 1)
	})

	t.Run("no memberships yields an empty page", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), userID).
			Return([]uuid.UUID{}, nil)

		page, err := uc.ListAlbums(context.Background(), userID, models.RoleUser,
			models.Pagination{Page: 3, Limit: 10})

		assert.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(0), page.Total)
		assert.Equal(t, 3, page.Page)
	})
}

func TestGetAlbum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlbumRepo(ctrl)
	uc := NewAlbumUC(mockRepo, &fakeMediaStore{}, notify.NoopPublisher{})

	userID := uuid.New()
	groupID := uuid.New()
	albumID := uuid.New()
	album := &models.Album{ID: albumID, Title: "Reunion 2026", GroupIDs: []uuid.UUID{groupID}}

	t.Run("member sees the album", func(t *testing.T) {
		mockRepo.EXPECT().GetAlbumByID(gomock.Any(), albumID).Return(album, nil)
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), userID).
			Return([]uuid.UUID{groupID}, nil)

		got, err := uc.GetAlbum(context.Background(), userID, models.RoleUser, albumID)

		assert.NoError(t, err)
		assert.Equal(t, "Reunion 2026", got.Title)
	})

	t.Run("non-member reads not found", func(t *testing.T) {
		mockRepo.EXPECT().GetAlbumByID(gomock.Any(), albumID).Return(album, nil)
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), userID).
			Return([]uuid.UUID{uuid.New()}, nil)

		_, err := uc.GetAlbum(context.Background(), userID, models.RoleUser, albumID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("admin skips the membership lookup", func(t *testing.T) {
		mockRepo.EXPECT().GetAlbumByID(gomock.Any(), albumID).Return(album, nil)

		_, err := uc.GetAlbum(context.Background(), userID, models.RoleAdmin, albumID)

		assert.NoError(t, err)
	})
}

func TestDeleteAlbum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlbumRepo(ctrl)
	store := &fakeMediaStore{}
	uc := NewAlbumUC(mockRepo, store, notify.NoopPublisher{})

	albumID := uuid.New()

	t.Run("deletes the album and its objects", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAlbumByID(gomock.Any(), albumID).
			Return(&models.Album{ID: albumID}, nil)
		mockRepo.EXPECT().
			DeleteAlbum(gomock.Any(), albumID).
			Return([]models.Media{
				{ID: uuid.New(), ObjectName: "albums/a.jpg"},
				{ID: uuid.New(), ObjectName: "albums/b.jpg"},
			}, nil)

		err := uc.DeleteAlbum(context.Background(), albumID)

		assert.NoError(t, err)
		assert.Equal(t, []string{"albums/a.jpg", "albums/b.jpg"}, store.deleted)
	})

	t.Run("unknown album", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAlbumByID(gomock.Any(), albumID).
			Return(nil, apperrors.ErrNotFound)

		err := uc.DeleteAlbum(context.Background(), albumID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestAlbumMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	albumID := uuid.New()

	t.Run("uploads and records a photo", func(t *testing.T) {
		mockRepo := mocks.NewMockAlbumRepo(ctrl)
		store := &fakeMediaStore{}
		uc := NewAlbumUC(mockRepo, store, notify.NoopPublisher{})

		mockRepo.EXPECT().
			GetAlbumByID(gomock.Any(), albumID).
			Return(&models.Album{ID: albumID}, nil)
		mockRepo.EXPECT().
			AddMedia(gomock.Any(), albumID, gomock.Any()).
			Return(nil)

		media, err := uc.AddMedia(context.Background(), albumID, "photo.jpg",
			strings.NewReader("bytes"), 5)

		assert.NoError(t, err)
		assert.Equal(t, "albums/photo.jpg", media.ObjectName)
		assert.Equal(t, []string{"albums/photo.jpg"}, store.uploaded)
	})

	t.Run("failed insert reaps the uploaded object", func(t *testing.T) {
		mockRepo := mocks.NewMockAlbumRepo(ctrl)
		store := &fakeMediaStore{}
		uc := NewAlbumUC(mockRepo, store, notify.NoopPublisher{})

		mockRepo.EXPECT().
			GetAlbumByID(gomock.Any(), albumID).
			Return(&models.Album{ID: albumID}, nil)
		mockRepo.EXPECT().
			AddMedia(gomock.Any(), albumID, gomock.Any()).
			Return(errors.New("insert failed"))

		_, err := uc.AddMedia(context.Background(), albumID, "photo.jpg",
			strings.NewReader("bytes"), 5)

		assert.Error(t, err)
		assert.Equal(t, []string{"albums/photo.jpg"}, store.deleted)
	})

	t.Run("deletes a photo and its object", func(t *testing.T) {
		mockRepo := mocks.NewMockAlbumRepo(ctrl)
		store := &fakeMediaStore{}
		uc := NewAlbumUC(mockRepo, store, notify.NoopPublisher{})

		mediaID := uuid.New()
		mockRepo.EXPECT().
			GetMedia(gomock.Any(), albumID, mediaID).
			Return(&models.Media{ID: mediaID, ObjectName: "albums/old.jpg", CreatedAt: time.Now()}, nil)
		mockRepo.EXPECT().DeleteMedia(gomock.Any(), mediaID).Return(nil)

		err := uc.DeleteMedia(context.Background(), albumID, mediaID)

		assert.NoError(t, err)
		assert.Equal(t, []string{"albums/old.jpg"}, store.deleted)
	})

	t.Run("cross-album media reads not found", func(t *testing.T) {
		mockRepo := mocks.NewMockAlbumRepo(ctrl)
		uc := NewAlbumUC(mockRepo, &fakeMediaStore{}, notify.NoopPublisher{})

		mediaID := uuid.New()
		mockRepo.EXPECT().
			GetMedia(gomock.Any(), albumID, mediaID).
			Return(nil, apperrors.ErrNotFound)

		err := uc.DeleteMedia(context.Background(), albumID, mediaID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
