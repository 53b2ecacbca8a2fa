package onboarding

import (
	"io"

	"github.com/natixar/onboard/internal/fusionauth"
	"github.com/natixar/onboard/internal/selector"
)

// SelectorPicker picks a group with the full-screen filtered selector.
type SelectorPicker struct {
	Title  string
	Input  io.Reader
	Output io.Writer
}

// PickGroup implements GroupPicker
func (p *SelectorPicker) PickGroup(groups []fusionauth.Group) (string, bool, error) {
	result, err := selector.Run(GroupOptions(groups), &selector.RunOptions{
		Title:  p.Title,
		Input:  p.Input,
		Output: p.Output,
	})
	if err != nil {
		return "", false, err
	}
	return result.ID, result.Selected, nil
}

// GroupOptions converts groups to selector options labelled by group name
func GroupOptions(groups []fusionauth.Group) []selector.Option {
	opts := make([]selector.Option, len(groups))
	for i, g := range groups {
		opts[i] = selector.Option{Label: g.Name, ID: g.ID}
	}
	return opts
}
