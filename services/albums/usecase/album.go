package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/access"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/pkg/models"
)

// CreateAlbum creates an album, optionally linked to an event, with its
// initial group links. Assigned groups are notified.
func (u *AlbumUC) CreateAlbum(ctx context.Context, creatorID uuid.UUID, req *models.CreateAlbumRequest) (*models.Album, error) {
	if req.EventID != nil {
		exists, err := u.albumRepo.EventExists(ctx, *req.EventID)
		if err != nil {
			return nil, fmt.Errorf("failed to check event: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, *req.EventID)
		}
	}

	now := time.Now()
	album := &models.Album{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		EventID:     req.EventID,
		CreatedBy:   creatorID,
		GroupIDs:    req.GroupIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.albumRepo.CreateAlbum(ctx, album); err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}

	u.notifyGroups(album)
	return album, nil
}

// UpdateAlbum updates the album fields; group links are managed
// separately through AssignGroups.
func (u *AlbumUC) UpdateAlbum(ctx context.Context, id uuid.UUID, req *models.CreateAlbumRequest) (*models.Album, error) {
	album, err := u.albumRepo.GetAlbumByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EventID != nil {
		exists, err := u.albumRepo.EventExists(ctx, *req.EventID)
		if err != nil {
			return nil, fmt.Errorf("failed to check event: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, *req.EventID)
		}
	}

	album.Title = req.Title
	album.Description = req.Description
	album.EventID = req.EventID
	album.UpdatedAt = time.Now()

	if err := u.albumRepo.UpdateAlbum(ctx, album); err != nil {
		return nil, fmt.Errorf("failed to update album: %w", err)
	}
	return album, nil
}

// DeleteAlbum removes the album with all its media rows, then deletes
// the stored objects.
func (u *AlbumUC) DeleteAlbum(ctx context.Context, id uuid.UUID) error {
	if _, err := u.albumRepo.GetAlbumByID(ctx, id); err != nil {
		return err
	}

	media, err := u.albumRepo.DeleteAlbum(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}

	for _, m := range media {
		if err := u.media.Delete(ctx, m.ObjectName); err != nil {
			logger.Warn("Failed to delete media object",
				logger.String("object", m.ObjectName),
				logger.Err(err))
		}
	}

	logger.Info("Album deleted", logger.String("album_id", id.String()))
	return nil
}

// AssignGroups replaces the album's group links and notifies the new
// audience.
func (u *AlbumUC) AssignGroups(ctx context.Context, id uuid.UUID, groupIDs []uuid.UUID) (*models.Album, error) {
	album, err := u.albumRepo.GetAlbumByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.albumRepo.ReplaceGroups(ctx, id, groupIDs); err != nil {
		return nil, fmt.Errorf("failed to assign groups: %w", err)
	}
	album.GroupIDs = groupIDs

	u.notifyGroups(album)
	return album, nil
}

func (u *AlbumUC) notifyGroups(album *models.Album) {
	if err := u.notifier.NotifyGroups(models.NotifAlbumAssigned, album.GroupIDs, album); err != nil {
		logger.Warn("Failed to publish album notification",
			logger.String("album_id", album.ID.String()),
			logger.Err(err))
	}
}

// ListAlbums returns the albums visible to the viewer. Same gating as
// events: admins see all, others only through group membership, and no
// memberships means an empty page.
func (u *AlbumUC) ListAlbums(ctx context.Context, viewerID uuid.UUID, role models.Role, p models.Pagination) (*models.Page[models.Album], error) {
	p.Normalize()

	var (
		items []models.Album
		total int64
		err   error
	)

	if role.IsAdmin() {
		items, total, err = u.albumRepo.ListAll(ctx, p)
	} else {
		groupIDs, gerr := u.albumRepo.GetUserGroupIDs(ctx, viewerID)
		if gerr != nil {
			return nil, fmt.Errorf("failed to load memberships: %w", gerr)
		}
		if len(groupIDs) == 0 {
			return models.EmptyPage[models.Album](p), nil
		}
		items, total, err = u.albumRepo.ListForGroups(ctx, groupIDs, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}

	return &models.Page[models.Album]{
		Items: items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// GetAlbum returns a single album. Invisible albums read as not found.
func (u *AlbumUC) GetAlbum(ctx context.Context, viewerID uuid.UUID, role models.Role, id uuid.UUID) (*models.Album, error) {
	album, err := u.albumRepo.GetAlbumByID(ctx, id)
	if err != nil {
		return nil, err
	}

	viewer := access.Viewer{UserID: viewerID, Role: role}
	if !role.IsAdmin() {
		viewer.GroupIDs, err = u.albumRepo.GetUserGroupIDs(ctx, viewerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load memberships: %w", err)
		}
	}
	if !access.CanViewGrouped(viewer, album.GroupIDs) {
		return nil, apperrors.ErrNotFound
	}

	return album, nil
}

// AddMedia uploads a photo into the album
func (u *AlbumUC) AddMedia(ctx context.Context, albumID uuid.UUID, fileName string, file io.Reader, size int64) (*models.Media, error) {
	if _, err := u.albumRepo.GetAlbumByID(ctx, albumID); err != nil {
		return nil, err
	}

	objectName, url, err := u.media.Upload(ctx, "albums", fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	media := &models.Media{
		ID:         uuid.New(),
		ObjectName: objectName,
		URL:        url,
		CreatedAt:  time.Now(),
	}
	if err := u.albumRepo.AddMedia(ctx, albumID, media); err != nil {
		if derr := u.media.Delete(ctx, objectName); derr != nil {
			logger.Warn("Failed to delete orphaned media object",
				logger.String("object", objectName),
				logger.Err(derr))
		}
		return nil, fmt.Errorf("failed to record media: %w", err)
	}

	return media, nil
}

// DeleteMedia removes a single photo and its stored object
func (u *AlbumUC) DeleteMedia(ctx context.Context, albumID, mediaID uuid.UUID) error {
	media, err := u.albumRepo.GetMedia(ctx, albumID, mediaID)
	if err != nil {
		return err
	}

	if err := u.albumRepo.DeleteMedia(ctx, mediaID); err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}

	if err := u.media.Delete(ctx, media.ObjectName); err != nil {
		logger.Warn("Failed to delete media object",
			logger.String("object", media.ObjectName),
			logger.Err(err))
	}
	return nil
}
