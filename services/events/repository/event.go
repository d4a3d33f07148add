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

const eventColumns = `
	id, title, description, venue, starts_at, ends_at,
	created_by, created_at, updated_at
`

// CreateEvent inserts the event row and its group links in one
// transaction
func (r *EventRepo) CreateEvent(ctx context.Context, event *models.Event) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (id, title, description, venue, starts_at, ends_at,
			created_by, created_at, updated_at)
		VALUES (:id, :title, :description, :venue, :starts_at, :ends_at,
			:created_by, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	for _, groupID := range event.GroupIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO event_groups (event_id, group_id) VALUES ($1, $2)`,
			event.ID, groupID); err != nil {
			return fmt.Errorf("failed to link event to group: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateEvent updates the event columns; links are untouched
func (r *EventRepo) UpdateEvent(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET title = :title, description = :description, venue = :venue,
			starts_at = :starts_at, ends_at = :ends_at, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEvent removes the event and its group links; albums that
// pointed at it keep existing with the link cleared.
func (r *EventRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE albums SET event_id = NULL WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to unlink albums: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM event_groups WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event links: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetEventByID retrieves an event with its group links
func (r *EventRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)

	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	events := []models.Event{event}
	if err := r.attachGroups(ctx, events); err != nil {
		return nil, err
	}
	return &events[0], nil
}

// ReplaceGroups swaps the event's group links atomically
func (r *EventRepo) ReplaceGroups(ctx context.Context, id uuid.UUID, groupIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM event_groups WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear event links: %w", err)
	}
	for _, groupID := range groupIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO event_groups (event_id, group_id) VALUES ($1, $2)`,
			id, groupID); err != nil {
			return fmt.Errorf("failed to link event to group: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListAll returns a page of all events, soonest first (admin view)
func (r *EventRepo) ListAll(ctx context.Context, p models.Pagination) ([]models.Event, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM events`); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM events
		ORDER BY starts_at ASC
		LIMIT $1 OFFSET $2
	`, eventColumns)

	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, query, p.Limit, p.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}

	if err := r.attachGroups(ctx, events); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// ListForGroups returns the page of events linked to any of the groups
func (r *EventRepo) ListForGroups(ctx context.Context, groupIDs []uuid.UUID, p models.Pagination) ([]models.Event, int64, error) {
	countQuery, args, err := sqlx.In(`
		SELECT COUNT(DISTINCT e.id)
		FROM events e
		JOIN event_groups eg ON eg.event_id = e.id
		WHERE eg.group_id IN (?)
	`, groupIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int64
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(countQuery), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query, args, err := sqlx.In(`
		SELECT DISTINCT e.id, e.title, e.description, e.venue, e.starts_at,
			e.ends_at, e.created_by, e.created_at, e.updated_at
		FROM events e
		JOIN event_groups eg ON eg.event_id = e.id
		WHERE eg.group_id IN (?)
		ORDER BY e.starts_at ASC
		LIMIT ? OFFSET ?
	`, groupIDs, p.Limit, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, r.db.Rebind(query), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}

	if err := r.attachGroups(ctx, events); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// attachGroups fills GroupIDs for a batch of events in one query
func (r *EventRepo) attachGroups(ctx context.Context, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(events))
	index := make(map[uuid.UUID]*models.Event, len(events))
	for i := range events {
		ids[i] = events[i].ID
		index[events[i].ID] = &events[i]
	}

	query, args, err := sqlx.In(
		`SELECT event_id, group_id FROM event_groups WHERE event_id IN (?)`, ids)
	if err != nil {
		return fmt.Errorf("failed to build group query: %w", err)
	}

	var links []struct {
		EventID uuid.UUID `db:"event_id"`
		GroupID uuid.UUID `db:"group_id"`
	}
	if err := r.db.SelectContext(ctx, &links, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to load event groups: %w", err)
	}
	for _, l := range links {
		index[l.EventID].GroupIDs = append(index[l.EventID].GroupIDs, l.GroupID)
	}
	return nil
}

// GetUserGroupIDs returns the group ids the user belongs to
func (r *EventRepo) GetUserGroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := r.db.SelectContext(ctx, &ids,
		`SELECT group_id FROM user_groups WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	return ids, nil
}
