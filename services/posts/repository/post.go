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

const postColumns = `
	p.id, p.author_id, p.content, p.is_public, p.status,
	p.created_at, p.updated_at, u.full_name AS author_name
`

// visibleWhere mirrors the visibility predicate used in code: own posts
// always, otherwise approved AND (public OR shared group). Keeping the
// SQL and the predicate in lockstep is what makes feed totals honest.
const visibleWhere = `
	p.author_id = $1
	OR (p.status = 'approved'
		AND (p.is_public
			OR EXISTS (
				SELECT 1 FROM post_groups pg
				JOIN user_groups ug ON ug.group_id = pg.group_id
				WHERE pg.post_id = p.id AND ug.user_id = $1
			)))
`

// CreatePost inserts the post row and its group links in one transaction
func (r *PostRepo) CreatePost(ctx context.Context, post *models.Post) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts (id, author_id, content, is_public, status, created_at, updated_at)
		VALUES (:id, :author_id, :content, :is_public, :status, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, post); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	for _, groupID := range post.GroupIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO post_groups (post_id, group_id) VALUES ($1, $2)`,
			post.ID, groupID); err != nil {
			return fmt.Errorf("failed to link post to group: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetPostByID returns a post with groups, media and engagement counters
// attached. viewerID drives the liked_by_me flag only; visibility is
// decided by the caller.
func (r *PostRepo) GetPostByID(ctx context.Context, viewerID, id uuid.UUID) (*models.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, postColumns)

	var post models.Post
	if err := r.db.GetContext(ctx, &post, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	posts := []models.Post{post}
	if err := r.hydrate(ctx, viewerID, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// ListFeed returns a page of visible posts, newest first, with the
// total computed under the same predicate.
func (r *PostRepo) ListFeed(ctx context.Context, viewerID uuid.UUID, admin bool, p models.Pagination) ([]models.Post, int64, error) {
	where := visibleWhere
	args := []interface{}{viewerID}
	if admin {
		where = `TRUE`
		args = nil
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM posts p WHERE %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count feed: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT %d OFFSET %d
	`, postColumns, where, p.Limit, p.Offset())

	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list feed: %w", err)
	}

	if err := r.hydrate(ctx, viewerID, posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListByStatus returns a page of posts in a moderation state (admin view)
func (r *PostRepo) ListByStatus(ctx context.Context, status models.PostStatus, p models.Pagination) ([]models.Post, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM posts WHERE status = $1`, status); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.status = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`, postColumns)

	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, status, p.Limit, p.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	if err := r.hydrate(ctx, uuid.Nil, posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// hydrate fills group links, media, like/comment counts and the
// viewer's like flag for a batch of posts in four queries total.
func (r *PostRepo) hydrate(ctx context.Context, viewerID uuid.UUID, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(posts))
	index := make(map[uuid.UUID]*models.Post, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		index[posts[i].ID] = &posts[i]
	}

	query, args, err := sqlx.In(`SELECT post_id, group_id FROM post_groups WHERE post_id IN (?)`, ids)
	if err != nil {
		return fmt.Errorf("failed to build group query: %w", err)
	}
	var groups []struct {
		PostID  uuid.UUID `db:"post_id"`
		GroupID uuid.UUID `db:"group_id"`
	}
	if err := r.db.SelectContext(ctx, &groups, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to load post groups: %w", err)
	}
	for _, g := range groups {
		index[g.PostID].GroupIDs = append(index[g.PostID].GroupIDs, g.GroupID)
	}

	query, args, err = sqlx.In(`
		SELECT id, post_id, object_name, url, created_at
		FROM post_media WHERE post_id IN (?) ORDER BY created_at
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to build media query: %w", err)
	}
	var media []struct {
		models.Media
		PostID uuid.UUID `db:"post_id"`
	}
	if err := r.db.SelectContext(ctx, &media, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to load post media: %w", err)
	}
	for _, m := range media {
		index[m.PostID].Media = append(index[m.PostID].Media, m.Media)
	}

	query, args, err = sqlx.In(`
		SELECT post_id,
			COUNT(*) FILTER (WHERE kind = 'like')    AS likes,
			COUNT(*) FILTER (WHERE kind = 'comment') AS comments
		FROM (
			SELECT post_id, 'like' AS kind FROM post_likes WHERE post_id IN (?)
			UNION ALL
			SELECT post_id, 'comment' AS kind FROM post_comments WHERE post_id IN (?)
		) engagement
		GROUP BY post_id
	`, ids, ids)
	if err != nil {
		return fmt.Errorf("failed to build count query: %w", err)
	}
	var counts []struct {
		PostID   uuid.UUID `db:"post_id"`
		Likes    int       `db:"likes"`
		Comments int       `db:"comments"`
	}
	if err := r.db.SelectContext(ctx, &counts, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to load engagement counts: %w", err)
	}
	for _, c := range counts {
		index[c.PostID].LikeCount = c.Likes
		index[c.PostID].CommentCount = c.Comments
	}

	if viewerID == uuid.Nil {
		return nil
	}

	query, args, err = sqlx.In(
		`SELECT post_id FROM post_likes WHERE user_id = ? AND post_id IN (?)`,
		viewerID, ids)
	if err != nil {
		return fmt.Errorf("failed to build liked query: %w", err)
	}
	var liked []uuid.UUID
	if err := r.db.SelectContext(ctx, &liked, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to load viewer likes: %w", err)
	}
	for _, id := range liked {
		index[id].LikedByMe = true
	}

	return nil
}

// UpdateStatus changes the moderation status
func (r *PostRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.PostStatus) error {
	query := `UPDATE posts SET status = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update post status: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePost removes the post and all dependent rows in one
// transaction, returning the media rows so the caller can delete the
// stored objects.
func (r *PostRepo) DeletePost(ctx context.Context, id uuid.UUID) ([]models.Media, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	media := []models.Media{}
	if err := tx.SelectContext(ctx, &media,
		`SELECT id, object_name, url, created_at FROM post_media WHERE post_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to load post media: %w", err)
	}

	for _, table := range []string{"post_media", "post_likes", "post_comments", "post_groups"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE post_id = $1`, table), id); err != nil {
			return nil, fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, apperrors.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return media, nil
}

// AddMedia records an uploaded media object against a post
func (r *PostRepo) AddMedia(ctx context.Context, postID uuid.UUID, media *models.Media) error {
	query := `
		INSERT INTO post_media (id, post_id, object_name, url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query,
		media.ID, postID, media.ObjectName, media.URL, media.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert media: %w", err)
	}
	return nil
}

// Like inserts a like; duplicates are silently ignored
func (r *PostRepo) Like(ctx context.Context, postID, userID uuid.UUID) error {
	query := `
		INSERT INTO post_likes (post_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (post_id, user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, postID, userID); err != nil {
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

// Unlike removes a like; removing an absent like is not an error
func (r *PostRepo) Unlike(ctx context.Context, postID, userID uuid.UUID) error {
	query := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, postID, userID); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

// CreateComment inserts a comment
func (r *PostRepo) CreateComment(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO post_comments (id, post_id, author_id, content, created_at)
		VALUES (:id, :post_id, :author_id, :content, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, comment); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

// GetComment retrieves a comment by id
func (r *PostRepo) GetComment(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at,
			u.full_name AS author_name
		FROM post_comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`

	var comment models.Comment
	if err := r.db.GetContext(ctx, &comment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

// ListComments returns a page of a post's comments, oldest first
func (r *PostRepo) ListComments(ctx context.Context, postID uuid.UUID, p models.Pagination) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM post_comments WHERE post_id = $1`, postID); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := `
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at,
			u.full_name AS author_name
		FROM post_comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
		LIMIT $2 OFFSET $3
	`

	comments := []models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, postID, p.Limit, p.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, total, nil
}

// DeleteComment removes a comment by id
func (r *PostRepo) DeleteComment(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM post_comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetUserGroupIDs returns the group ids the user belongs to
func (r *PostRepo) GetUserGroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := r.db.SelectContext(ctx, &ids,
		`SELECT group_id FROM user_groups WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	return ids, nil
}
