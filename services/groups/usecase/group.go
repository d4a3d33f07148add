package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/pkg/models"
)

// CreateGroup creates a new group
func (u *GroupUC) CreateGroup(ctx context.Context, req *models.CreateGroupRequest) (*models.Group, error) {
	now := time.Now()
	group := &models.Group{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.groupRepo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

// UpdateGroup renames or re-describes a group
func (u *GroupUC) UpdateGroup(ctx context.Context, id uuid.UUID, req *models.CreateGroupRequest) (*models.Group, error) {
	group, err := u.groupRepo.GetGroupByID(ctx, id)
	if err != nil {
		return nil, err
	}

	group.Name = req.Name
	group.Description = req.Description
	group.UpdatedAt = time.Now()

	if err := u.groupRepo.UpdateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}

// DeleteGroup removes a group, its memberships and its resource links
func (u *GroupUC) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	if _, err := u.groupRepo.GetGroupByID(ctx, id); err != nil {
		return err
	}

	if err := u.groupRepo.DeleteGroup(ctx, id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	logger.Info("Group deleted", logger.String("group_id", id.String()))
	return nil
}

// ListGroups returns a page of all groups with member counts
func (u *GroupUC) ListGroups(ctx context.Context, p models.Pagination) (*models.Page[models.Group], error) {
	p.Normalize()

	items, total, err := u.groupRepo.ListGroups(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	return &models.Page[models.Group]{
		Items: items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// GetGroup returns a group with its member list. The member list is
// visible to admins and to members of the group; other callers get
// only the group header.
func (u *GroupUC) GetGroup(ctx context.Context, viewerID uuid.UUID, role models.Role, id uuid.UUID) (*models.Group, error) {
	group, err := u.groupRepo.GetGroupByID(ctx, id)
	if err != nil {
		return nil, err
	}

	canSeeMembers := role.IsAdmin()
	if !canSeeMembers {
		canSeeMembers, err = u.groupRepo.IsMember(ctx, id, viewerID)
		if err != nil {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
	}

	if canSeeMembers {
		group.Members, err = u.groupRepo.ListMembers(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}
	}

	return group, nil
}

// AddMember adds a user to a group. Adding an existing member is a
// no-op.
func (u *GroupUC) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	if _, err := u.groupRepo.GetGroupByID(ctx, groupID); err != nil {
		return err
	}

	exists, err := u.groupRepo.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}

	if err := u.groupRepo.AddMember(ctx, groupID, userID); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// RemoveMember removes a user from a group
func (u *GroupUC) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	if _, err := u.groupRepo.GetGroupByID(ctx, groupID); err != nil {
		return err
	}

	if err := u.groupRepo.RemoveMember(ctx, groupID, userID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// MyGroups returns the groups the user belongs to
func (u *GroupUC) MyGroups(ctx context.Context, userID uuid.UUID) ([]models.Group, error) {
	groups, err := u.groupRepo.ListUserGroups(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return groups, nil
}
