package onboarding

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/natixar/onboard/internal/fusionauth"
	"github.com/natixar/onboard/internal/logging"
)

// GroupInput holds pre-supplied values for the group flow.
// Empty fields are prompted for.
type GroupInput struct {
	Name              string
	BlockchainAddress string
	Email             string

	// GroupID is optional. It is only prompted for when PromptGroupID is set.
	GroupID       string
	PromptGroupID bool

	// Roles are role ids or names. When empty the operator picks from a numbered list.
	Roles []string
}

// CreateGroup onboards an organisation as a FusionAuth group with the chosen roles.
func (f *Flow) CreateGroup(ctx context.Context, in GroupInput) (*fusionauth.Group, error) {
	name, err := f.require(in.Name, "Enter the group name", "group name")
	if err != nil {
		return nil, err
	}

	address, err := f.require(in.BlockchainAddress, "Enter the blockchain address", "blockchain address")
	if err != nil {
		return nil, err
	}

	email, err := f.require(in.Email, "Enter the email", "email")
	if err != nil {
		return nil, err
	}

	groupID := strings.TrimSpace(in.GroupID)
	if groupID == "" && in.PromptGroupID {
		groupID, err = f.Prompter.Ask("Enter the group ID (leave empty to auto-generate)")
		if err != nil {
			return nil, fmt.Errorf("failed to read group ID: %w", err)
		}
	}

	roles, err := f.API.FetchRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve roles: %w", err)
	}
	if len(roles) == 0 {
		return nil, ErrNoRoles
	}
	logging.LogStep("group", "roles_fetched", zap.Int("count", len(roles)))

	roleIDs, err := f.selectRoles(roles, in.Roles)
	if err != nil {
		return nil, err
	}

	req := fusionauth.NewGroupRequest(name, address, email, roleIDs)
	group, err := f.API.CreateGroup(ctx, req, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	logging.LogStep("group", "created", zap.String("group_id", group.ID), zap.Int("roles", len(roleIDs)))
	return group, nil
}

func (f *Flow) selectRoles(roles []fusionauth.Role, refs []string) ([]string, error) {
	if len(refs) > 0 {
		return ResolveRoles(roles, refs)
	}

	f.Prompter.ShowList("Please select the roles you want to assign to the group:", RoleLabels(roles))
	answer, err := f.Prompter.Ask("Enter the numbers corresponding to the roles (comma-separated)")
	if err != nil {
		return nil, fmt.Errorf("failed to read role selection: %w", err)
	}

	indices, err := ParseRoleSelection(answer, len(roles))
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(indices))
	for i, idx := range indices {
		ids[i] = roles[idx].ID
	}
	return ids, nil
}
