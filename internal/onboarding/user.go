package onboarding

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/natixar/onboard/internal/fusionauth"
	"github.com/natixar/onboard/internal/logging"
)

// UserInput holds pre-supplied values for the user flow.
// Empty fields are prompted for; an empty Group opens the group picker.
type UserInput struct {
	Email     string
	FirstName string
	LastName  string

	// Group is a group id or name
	Group string
}

// CreateUser creates a user registered to the configured application and
// makes it a member of the chosen group.
func (f *Flow) CreateUser(ctx context.Context, in UserInput) (*fusionauth.UserRegistrationResponse, error) {
	email, err := f.require(in.Email, "Enter the user's email", "email")
	if err != nil {
		return nil, err
	}

	firstName, err := f.require(in.FirstName, "Enter the user's first name", "first name")
	if err != nil {
		return nil, err
	}

	lastName, err := f.require(in.LastName, "Enter the user's last name", "last name")
	if err != nil {
		return nil, err
	}

	groups, err := f.API.FetchGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve groups: %w", err)
	}
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}
	logging.LogStep("user", "groups_fetched", zap.Int("count", len(groups)))

	groupID, err := f.chooseGroup(groups, in.Group)
	if err != nil {
		return nil, err
	}

	req := fusionauth.NewUserRegistrationRequest(
		f.Config.ApplicationID, groupID, email, firstName, lastName, f.Config.InitialPassword)

	resp, err := f.API.CreateUser(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logging.LogStep("user", "created", zap.String("user_id", resp.User.ID), zap.String("group_id", groupID))
	return resp, nil
}

func (f *Flow) chooseGroup(groups []fusionauth.Group, ref string) (string, error) {
	if ref = strings.TrimSpace(ref); ref != "" {
		return FindGroup(groups, ref)
	}

	id, ok, err := f.Picker.PickGroup(groups)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoSelection
	}
	return id, nil
}

// FindGroup returns the id of the group whose id or name (case-insensitive) matches ref.
func FindGroup(groups []fusionauth.Group, ref string) (string, error) {
	for _, g := range groups {
		if g.ID == ref {
			return g.ID, nil
		}
	}
	for _, g := range groups {
		if strings.EqualFold(g.Name, ref) {
			return g.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGroup, ref)
}
