package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/natixar/onboard/internal/config"
	"github.com/natixar/onboard/internal/fusionauth"
)

// Flow errors. Client failures are returned wrapped as *fusionauth.APIError.
var (
	ErrEmptyField           = errors.New("value cannot be empty")
	ErrNoRoles              = errors.New("no roles found for the application")
	ErrNoRolesSelected      = errors.New("no roles selected")
	ErrInvalidRoleSelection = errors.New("invalid role selection")
	ErrNoGroups             = errors.New("no groups available")
	ErrNoSelection          = errors.New("no group selected or operation cancelled")
	ErrUnknownGroup         = errors.New("group not found")
)

// API is the subset of the FusionAuth client used by the flows.
type API interface {
	FetchRoles(ctx context.Context) ([]fusionauth.Role, error)
	CreateGroup(ctx context.Context, req *fusionauth.GroupRequest, groupID string) (*fusionauth.Group, error)
	FetchGroups(ctx context.Context) ([]fusionauth.Group, error)
	CreateUser(ctx context.Context, req *fusionauth.UserRegistrationRequest) (*fusionauth.UserRegistrationResponse, error)
}

// Prompter reads operator answers.
type Prompter interface {
	Ask(label string) (string, error)
	ShowList(title string, items []string)
}

// GroupPicker lets the operator choose one group.
// ok is false when the operator cancelled.
type GroupPicker interface {
	PickGroup(groups []fusionauth.Group) (groupID string, ok bool, err error)
}

// Flow runs the onboarding flows against one FusionAuth deployment.
type Flow struct {
	API      API
	Prompter Prompter
	Picker   GroupPicker
	Config   *config.Config
}

// NewFlow creates a Flow
func NewFlow(cfg *config.Config, api API, prompter Prompter, picker GroupPicker) *Flow {
	return &Flow{
		API:      api,
		Prompter: prompter,
		Picker:   picker,
		Config:   cfg,
	}
}

// require returns value when it is set, otherwise prompts for it.
// An empty answer fails with ErrEmptyField.
func (f *Flow) require(value, label, field string) (string, error) {
	if v := strings.TrimSpace(value); v != "" {
		return v, nil
	}

	answer, err := f.Prompter.Ask(label)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", field, err)
	}
	if answer == "" {
		return "", fmt.Errorf("%s: %w", field, ErrEmptyField)
	}
	return answer, nil
}
