package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/notify"
	"github.com/alumnet/backend/services/events/mocks"
)

func validEventRequest(groupIDs ...uuid.UUID) *models.CreateEventRequest {
	start := time.Now().Add(24 * time.Hour)
	return &models.CreateEventRequest{
		Title:    "Homecoming",
		Venue:    "Main Hall",
		StartsAt: start,
		EndsAt:   start.Add(3 * time.Hour),
		GroupIDs: groupIDs,
	}
}

func TestCreateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEventRepo(ctrl)
	uc := NewEventUC(mockRepo, notify.NoopPublisher{})

	creatorID := uuid.New()

	t.Run("success", func(t *testing.T) {
		groupID := uuid.New()
		mockRepo.EXPECT().
			CreateEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.Event) error {
				assert.Equal(t, "Homecoming", e.Title)
				assert.Equal(t, creatorID, e.CreatedBy)
				assert.Equal(t, []uuid.UUID{groupID}, e.GroupIDs)
				return nil
			})

		event, err := uc.CreateEvent(context.Background(), creatorID, validEventRequest(groupID))

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, event.ID)
	})

	t.Run("end before start", func(t *testing.T) {
		req := validEventRequest()
		req.EndsAt = req.StartsAt.Add(-time.Hour)

		_, err := uc.CreateEvent(context.Background(), creatorID, req)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestListEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEventRepo(ctrl)
	uc := NewEventUC(mockRepo, notify.NoopPublisher{})

	viewerID := uuid.New()

	t.Run("admin sees all", func(t *testing.T) {
		mockRepo.EXPECT().
			ListAll(gomock.Any(), gomock.Any()).
			Return([]models.Event{{}, {}}, int64(2), nil)

		page, err := uc.ListEvents(context.Background(), viewerID, models.RoleAdmin, models.Pagination{})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
	})

	t.Run("member sees group events", func(t *testing.T) {
		groupID := uuid.New()
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), viewerID).
			Return([]uuid.UUID{groupID}, nil)
		mockRepo.EXPECT().
			ListForGroups(gomock.Any(), []uuid.UUID{groupID}, gomock.Any()).
			Return([]models.Event{{}}, int64(1), nil)

		page, err := uc.ListEvents(context.Background(), viewerID, models.RoleUser, models.Pagination{})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("no memberships short-circuits to an empty page", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), viewerID).
			Return([]uuid.UUID{}, nil)

		page, err := uc.ListEvents(context.Background(), viewerID, models.RoleUser,
			models.Pagination{Page: 2, Limit: 10})

		assert.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Zero(t, page.Total)
		assert.Equal(t, 2, page.Page)
	})
}

func TestGetEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEventRepo(ctrl)
	uc := NewEventUC(mockRepo, notify.NoopPublisher{})

	viewerID := uuid.New()
	eventID := uuid.New()
	groupID := uuid.New()

	t.Run("member sees the event", func(t *testing.T) {
		mockRepo.EXPECT().
			GetEventByID(gomock.Any(), eventID).
			Return(&models.Event{ID: eventID, GroupIDs: []uuid.UUID{groupID}}, nil)
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), viewerID).
			Return([]uuid.UUID{groupID}, nil)

		event, err := uc.GetEvent(context.Background(), viewerID, models.RoleUser, eventID)

		assert.NoError(t, err)
		assert.Equal(t, eventID, event.ID)
	})

	t.Run("non-member gets not found", func(t *testing.T) {
		mockRepo.EXPECT().
			GetEventByID(gomock.Any(), eventID).
			Return(&models.Event{ID: eventID, GroupIDs: []uuid.UUID{groupID}}, nil)
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), viewerID).
			Return([]uuid.UUID{uuid.New()}, nil)

		_, err := uc.GetEvent(context.Background(), viewerID, models.RoleUser, eventID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("event without groups is invisible to non-admins", func(t *testing.T) {
		mockRepo.EXPECT().
			GetEventByID(gomock.Any(), eventID).
			Return(&models.Event{ID: eventID}, nil)
		mockRepo.EXPECT().
			GetUserGroupIDs(gomock.Any(), viewerID).
			Return([]uuid.UUID{groupID}, nil)

		_, err := uc.GetEvent(context.Background(), viewerID, models.RoleUser, eventID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		mockRepo.EXPECT().
			GetEventByID(gomock.Any(), eventID).
			Return(&models.Event{ID: eventID}, nil)

		event, err := uc.GetEvent(context.Background(), viewerID, models.RoleAdmin, eventID)

		assert.NoError(t, err)
		assert.NotNil(t, event)
	})
}

func TestAssignGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEventRepo(ctrl)
	uc := NewEventUC(mockRepo, notify.NoopPublisher{})

	eventID := uuid.New()
	newGroups := []uuid.UUID{uuid.New(), uuid.New()}

	mockRepo.EXPECT().
		GetEventByID(gomock.Any(), eventID).
		Return(&models.Event{ID: eventID, GroupIDs: []uuid.UUID{uuid.New()}}, nil)
	mockRepo.EXPECT().
		ReplaceGroups(gomock.Any(), eventID, newGroups).
		Return(nil)

	event, err := uc.AssignGroups(context.Background(), eventID, newGroups)

	assert.NoError(t, err)
	assert.Equal(t, newGroups, event.GroupIDs)
}
