package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/models"
)

const albumColumns = `
	id, title, description, event_id, created_by, created_at, updated_at
`

// CreateAlbum inserts the album row and its group links in one
// transaction
func (r *AlbumRepo) CreateAlbum(ctx context.Context, album *models.Album) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO albums (id, title, description, event_id, created_by, created_at, updated_at)
		VALUES (:id, :title, :description, :event_id, :created_by, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, album); err != nil {
		return fmt.Errorf("failed to insert album: %w", err)
	}

	for _, groupID := range album.GroupIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO album_groups (album_id, group_id) VALUES ($1, $2)`,
			album.ID, groupID); err != nil {
			return fmt.Errorf("failed to link album to group: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateAlbum updates the album columns; links are untouched
func (r *AlbumRepo) UpdateAlbum(ctx context.Context, album *models.Album) error {
	query := `
		UPDATE albums
		SET title = :title, description = :description, event_id = :event_id,
			updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, album)
	if err != nil {
		return fmt.Errorf("failed to update album: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAlbum removes the album with its links and media rows in one
// transaction, returning the media so the caller can delete the stored
// objects.
func (r *AlbumRepo) DeleteAlbum(ctx context.Context, id uuid.UUID) ([]models.Media, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	media := []models.Media{}
	if err := tx.SelectContext(ctx, &media,
		`SELECT id, object_name, url, created_at FROM album_media WHERE album_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to load album media: %w", err)
	}

	for _, table := range []string{"album_media", "album_groups"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE album_id = $1`, table), id); err != nil {
			return nil, fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete album: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, apperrors.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return media, nil
}

// GetAlbumByID retrieves an album with its group links and media
func (r *AlbumRepo) GetAlbumByID(ctx context.Context, id uuid.UUID) (*models.Album, error) {
	query := fmt.Sprintf(`SELECT %s FROM albums WHERE id = $1`, albumColumns)

	var album models.Album
	if err := r.db.GetContext(ctx, &album, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get album: %w", err)
	}

	albums := []models.Album{album}
	if err := r.hydrate(ctx, albums); err != nil {
		return nil, err
	}
	return &albums[0], nil
}

// ReplaceGroups swaps the album's group links atomically
func (r *AlbumRepo) ReplaceGroups(ctx context.Context, id uuid.UUID, groupIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM album_groups WHERE album_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear album links: %w", err)
	}
	for _, groupID := range groupIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO album_groups (album_id, group_id) VALUES ($1, $2)`,
			id, groupID); err != nil {
			return fmt.Errorf("failed to link album to group: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListAll returns a page of all albums, newest first (admin view)
func (r *AlbumRepo) ListAll(ctx context.Context, p models.Pagination) ([]models.Album, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM albums`); err != nil {
		return nil, 0, fmt.Errorf("failed to count albums: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM albums
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, albumColumns)

	albums := []models.Album{}
	if err := r.db.SelectContext(ctx, &albums, query, p.Limit, p.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list albums: %w", err)
	}

	if err := r.hydrate(ctx, albums); err != nil {
		return nil, 0, err
	}
	return albums, total, nil
}

// ListForGroups returns the page of albums linked to any of the groups
func (r *AlbumRepo) ListForGroups(ctx context.Context, groupIDs []uuid.UUID, p models.Pagination) ([]models.Album, int64, error) {
	countQuery, args, err := sqlx.In(`
		SELECT COUNT(DISTINCT a.id)
		FROM albums a
		JOIN album_groups ag ON ag.album_id = a.id
		WHERE ag.group_id IN (?)
	`, groupIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int64
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(countQuery), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count albums: %w", err)
	}

	query, args, err := sqlx.In(`
		SELECT DISTINCT a.id, a.title, a.description, a.event_id,
			a.created_by, a.created_at, a.updated_at
		FROM albums a
		JOIN album_groups ag ON ag.album_id = a.id
		WHERE ag.group_id IN (?)
		ORDER BY a.created_at DESC
		LIMIT ? OFFSET ?
	`, groupIDs, p.Limit, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	albums := []models.Album{}
	if err := r.db.SelectContext(ctx, &albums, r.db.Rebind(query), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list albums: %w", err)
	}

	if err := r.hydrate(ctx, albums); err != nil {
		return nil, 0, err
	}
	return albums, total, nil
}

// hydrate fills group links and media for a batch of albums
func (r *AlbumRepo) hydrate(ctx context.Context, albums []models.Album) error {
	if len(albums) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(albums))
	index := make(map[uuid.UUID]*models.Album, len(albums))
	for i := range albums {
		ids[i] = albums[i].ID
		index[albums[i].ID] = &albums[i]
	}

	query, args, err := sqlx.In(
		`SELECT album_id, group_id FROM album_groups WHERE album_id IN (?)`, ids)
	if err != nil {
		return fmt.Errorf("failed to build group query: %w", err)
	}
	var links []struct {
		AlbumID uuid.UUID `db:"album_id"`
		GroupID uuid.UUID `db:"group_id"`
	}
	if err := r.db.SelectContext(ctx, &links, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to load album groups: %w", err)
	}
	for _, l := range links {
		index[l.AlbumID].GroupIDs = append(index[l.AlbumID].GroupIDs, l.GroupID)
	}

	query, args, err = sqlx.In(`
		SELECT id, album_id, object_name, url, created_at
		FROM album_media WHERE album_id IN (?) ORDER BY created_at
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to build media query: %w", err)
	}
	var media []struct {
		models.Media
		AlbumID uuid.UUID `db:"album_id"`
	}
	if err := r.db.SelectContext(ctx, &media, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to load album media: %w", err)
	}
	for _, m := range media {
		index[m.AlbumID].Media = append(index[m.AlbumID].Media, m.Media)
	}

	return nil
}

// AddMedia records an uploaded media object against an album
func (r *AlbumRepo) AddMedia(ctx context.Context, albumID uuid.UUID, media *models.Media) error {
	query := `
		INSERT INTO album_media (id, album_id, object_name, url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query,
		media.ID, albumID, media.ObjectName, media.URL, media.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert media: %w", err)
	}
	return nil
}

// GetMedia retrieves a media row belonging to the given album
func (r *AlbumRepo) GetMedia(ctx context.Context, albumID, mediaID uuid.UUID) (*models.Media, error) {
	query := `
		SELECT id, object_name, url, created_at
		FROM album_media
		WHERE id = $1 AND album_id = $2
	`

	var media models.Media
	if err := r.db.GetContext(ctx, &media, query, mediaID, albumID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get media: %w", err)
	}
	return &media, nil
}

// DeleteMedia removes a media row
func (r *AlbumRepo) DeleteMedia(ctx context.Context, mediaID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM album_media WHERE id = $1`, mediaID)
	if err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// EventExists reports whether an event row exists
func (r *AlbumRepo) EventExists(ctx context.Context, eventID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, eventID); err != nil {
		return false, fmt.Errorf("failed to check event: %w", err)
	}
	return exists, nil
}

// GetUserGroupIDs returns the group ids the user belongs to
func (r *AlbumRepo) GetUserGroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := r.db.SelectContext(ctx, &ids,
		`SELECT group_id FROM user_groups WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	return ids, nil
}
