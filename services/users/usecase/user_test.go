package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/notify"
	"github.com/alumnet/backend/services/users/mocks"
)

func TestGetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, nil, notify.NoopPublisher{})

	viewerID := uuid.New()
	targetID := uuid.New()

	t.Run("approved profile visible to anyone", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), targetID).
			Return(&models.User{ID: targetID, Status: models.StatusApproved}, nil)

		user, err := uc.GetProfile(context.Background(), viewerID, models.RoleUser, targetID)

		assert.NoError(t, err)
		assert.Equal(t, targetID, user.ID)
	})

	t.Run("pending profile hidden from regular users", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), targetID).
			Return(&models.User{ID: targetID, Status: models.StatusPending}, nil)

		_, err := uc.GetProfile(context.Background(), viewerID, models.RoleUser, targetID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("pending profile visible to its owner", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), targetID).
			Return(&models.User{ID: targetID, Status: models.StatusPending}, nil)

		user, err := uc.GetProfile(context.Background(), targetID, models.RoleUser, targetID)

		assert.NoError(t, err)
		assert.Equal(t, models.StatusPending, user.Status)
	})

	t.Run("pending profile visible to admin", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), targetID).
			Return(&models.User{ID: targetID, Status: models.StatusPending}, nil)

		user, err := uc.GetProfile(context.Background(), viewerID, models.RoleAdmin, targetID)

		assert.NoError(t, err)
		assert.NotNil(t, user)
	})
}

func TestListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, nil, notify.NoopPublisher{})

	t.Run("filter by pending", func(t *testing.T) {
		mockRepo.EXPECT().
			ListByStatus(gomock.Any(), models.StatusPending, gomock.Any()).
			Return([]models.User{{Status: models.StatusPending}}, int64(1), nil)

		page, err := uc.ListUsers(context.Background(), "pending", models.Pagination{Page: 1, Limit: 20})

		assert.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("all lists everyone", func(t *testing.T) {
		mockRepo.EXPECT().
			ListAll(gomock.Any(), gomock.Any()).
			Return([]models.User{{}, {}}, int64(2), nil)

		page, err := uc.ListUsers(context.Background(), "all", models.Pagination{})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := uc.ListUsers(context.Background(), "frozen", models.Pagination{})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestApproveRejectUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, nil, notify.NoopPublisher{})

	id := uuid.New()

	t.Run("approve pending account", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), id).
			Return(&models.User{ID: id, Status: models.StatusPending}, nil)
		mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), id, models.StatusApproved).
			Return(nil)

		user, err := uc.ApproveUser(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, models.StatusApproved, user.Status)
	})

	t.Run("approving approved account is a no-op", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), id).
			Return(&models.User{ID: id, Status: models.StatusApproved}, nil)

		user, err := uc.ApproveUser(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, models.StatusApproved, user.Status)
	})

	t.Run("reject account", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), id).
			Return(&models.User{ID: id, Status: models.StatusApproved}, nil)
		mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), id, models.StatusRejected).
			Return(nil)

		user, err := uc.RejectUser(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, models.StatusRejected, user.Status)
	})

	t.Run("unknown account", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), id).
			Return(nil, apperrors.ErrNotFound)

		_, err := uc.ApproveUser(context.Background(), id)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, nil, notify.NoopPublisher{})

	mockRepo.EXPECT().
		CollectStats(gomock.Any()).
		Return(&models.AdminStats{TotalUsers: 42, PendingUsers: 3}, nil)

	stats, err := uc.GetStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.PendingUsers)
}
