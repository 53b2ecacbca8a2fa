package onboarding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/natixar/onboard/internal/fusionauth"
)

// ParseRoleSelection parses comma-separated 1-based role numbers into
// 0-based indices into a list of n roles. Duplicates are dropped.
func ParseRoleSelection(input string, n int) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrNoRolesSelected
	}

	seen := make(map[int]bool)
	var indices []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		num, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidRoleSelection, part)
		}
		if num < 1 || num > n {
			return nil, fmt.Errorf("%w: %d is out of range 1-%d", ErrInvalidRoleSelection, num, n)
		}
		if seen[num-1] {
			continue
		}
		seen[num-1] = true
		indices = append(indices, num-1)
	}

	return indices, nil
}

// ResolveRoles maps role ids or names (case-insensitive) to role ids.
func ResolveRoles(roles []fusionauth.Role, refs []string) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string

	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}

		role, ok := findRole(roles, ref)
		if !ok {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidRoleSelection, ref)
		}
		if !seen[role.ID] {
			seen[role.ID] = true
			ids = append(ids, role.ID)
		}
	}

	if len(ids) == 0 {
		return nil, ErrNoRolesSelected
	}
	return ids, nil
}

func findRole(roles []fusionauth.Role, ref string) (fusionauth.Role, bool) {
	for _, r := range roles {
		if r.ID == ref {
			return r, true
		}
	}
	for _, r := range roles {
		if strings.EqualFold(r.Name, ref) {
			return r, true
		}
	}
	return fusionauth.Role{}, false
}

// RoleLabels returns the display labels of roles, in order
func RoleLabels(roles []fusionauth.Role) []string {
	labels := make([]string, len(roles))
	for i, r := range roles {
		labels[i] = r.Name
		if r.Description != "" {
			labels[i] += " - " + r.Description
		}
	}
	return labels
}
