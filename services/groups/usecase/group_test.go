package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/services/groups/mocks"
)

func TestGetGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockGroupRepo(ctrl)
	uc := NewGroupUC(mockRepo)

	groupID := uuid.New()
	viewerID := uuid.New()

	t.Run("member sees the member list", func(t *testing.T) {
		mockRepo.EXPECT().
			GetGroupByID(gomock.Any(), groupID).
			Return(&models.Group{ID: groupID, Name: "Class of 2010"}, nil)
		mockRepo.EXPECT().
			IsMember(gomock.Any(), groupID, viewerID).
			Return(true, nil)
		mockRepo.EXPECT().
			ListMembers(gomock.Any(), groupID).
			Return([]models.User{{ID: viewerID}}, nil)

		group, err := uc.GetGroup(context.Background(), viewerID, models.RoleUser, groupID)

		assert.NoError(t, err)
		assert.Len(t, group.Members, 1)
	})

	t.Run("non-member gets only the header", func(t *testing.T) {
		mockRepo.EXPECT().
			GetGroupByID(gomock.Any(), groupID).
			Return(&models.Group{ID: groupID, Name: "Class of 2010"}, nil)
		mockRepo.EXPECT().
			IsMember(gomock.Any(), groupID, viewerID).
			Return(false, nil)

		group, err := uc.GetGroup(context.Background(), viewerID, models.RoleUser, groupID)

		assert.NoError(t, err)
		assert.Empty(t, group.Members)
	})

	t.Run("admin sees members without a membership check", func(t *testing.T) {
		mockRepo.EXPECT().
			GetGroupByID(gomock.Any(), groupID).
			Return(&models.Group{ID: groupID}, nil)
		mockRepo.EXPECT().
			ListMembers(gomock.Any(), groupID).
			Return([]models.User{{}, {}}, nil)

		group, err := uc.GetGroup(context.Background(), viewerID, models.RoleAdmin, groupID)

		assert.NoError(t, err)
		assert.Len(t, group.Members, 2)
	})
}

func TestMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockGroupRepo(ctrl)
	uc := NewGroupUC(mockRepo)

	groupID := uuid.New()
	userID := uuid.New()

	t.Run("add member", func(t *testing.T) {
		mockRepo.EXPECT().
			GetGroupByID(gomock.Any(), groupID).
			Return(&models.Group{ID: groupID}, nil)
		mockRepo.EXPECT().
			UserExists(gomock.Any(), userID).
			Return(true, nil)
		mockRepo.EXPECT().
			AddMember(gomock.Any(), groupID, userID).
			Return(nil)

		err := uc.AddMember(context.Background(), groupID, userID)

		assert.NoError(t, err)
	})

	t.Run("add unknown user", func(t *testing.T) {
		mockRepo.EXPECT().
			GetGroupByID(gomock.Any(), groupID).
			Return(&models.Group{ID: groupID}, nil)
		mockRepo.EXPECT().
			UserExists(gomock.Any(), userID).
			Return(false, nil)

		err := uc.AddMember(context.Background(), groupID, userID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("add to unknown group", func(t *testing.T) {
		mockRepo.EXPECT().
			GetGroupByID(gomock.Any(), groupID).
			Return(nil, apperrors.ErrNotFound)

		err := uc.AddMember(context.Background(), groupID, userID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("remove member", func(t *testing.T) {
		mockRepo.EXPECT().
			GetGroupByID(gomock.Any(), groupID).
			Return(&models.Group{ID: groupID}, nil)
		mockRepo.EXPECT().
			RemoveMember(gomock.Any(), groupID, userID).
			Return(nil)

		err := uc.RemoveMember(context.Background(), groupID, userID)

		assert.NoError(t, err)
	})
}

func TestCreateUpdateGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockGroupRepo(ctrl)
	uc := NewGroupUC(mockRepo)

	t.Run("create", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateGroup(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *models.Group) error {
				assert.Equal(t, "Alumni Board", g.Name)
				assert.NotEqual(t, uuid.Nil, g.ID)
				return nil
			})

		group, err := uc.CreateGroup(context.Background(),
			&models.CreateGroupRequest{Name: "Alumni Board"})

		assert.NoError(t, err)
		assert.Equal(t, "Alumni Board", group.Name)
	})

	t.Run("update unknown group", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().
			GetGroupByID(gomock.Any(), id).
			Return(nil, apperrors.ErrNotFound)

		_, err := uc.UpdateGroup(context.Background(), id,
			&models.CreateGroupRequest{Name: "Renamed"})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
