package usecase

import (
	"github.com/alumnet/backend/services/groups"
)

// GroupUC implements the group usecase
type GroupUC struct {
	groupRepo groups.GroupRepo
}

// NewGroupUC creates a new group usecase instance
func NewGroupUC(groupRepo groups.GroupRepo) *GroupUC {
	return &GroupUC{groupRepo: groupRepo}
}
