package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natixar/onboard/internal/fusionauth"
	"github.com/natixar/onboard/internal/selector"
)

func TestParseRoleSelection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		n       int
		want    []int
		wantErr error
	}{
		{"Single", "2", 3, []int{1}, nil},
		{"Multiple", "1,3", 3, []int{0, 2}, nil},
		{"Spaces", " 3 , 1 ", 3, []int{2, 0}, nil},
		{"Duplicates", "1,1,2", 3, []int{0, 1}, nil},
		{"Empty", "", 3, nil, ErrNoRolesSelected},
		{"Whitespace", "   ", 3, nil, ErrNoRolesSelected},
		{"Zero", "0", 3, nil, ErrInvalidRoleSelection},
		{"TooLarge", "4", 3, nil, ErrInvalidRoleSelection},
		{"Negative", "-1", 3, nil, ErrInvalidRoleSelection},
		{"NotNumber", "admin", 3, nil, ErrInvalidRoleSelection},
		{"EmptyPart", "1,", 3, nil, ErrInvalidRoleSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRoleSelection(tt.input, tt.n)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRoles(t *testing.T) {
	roles := testRoles()

	ids, err := ResolveRoles(roles, []string{"r-editor", "Admin"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r-editor", "r-admin"}, ids)

	_, err = ResolveRoles(roles, []string{"owner"})
	assert.ErrorIs(t, err, ErrInvalidRoleSelection)

	_, err = ResolveRoles(roles, []string{" ", ""})
	assert.ErrorIs(t, err, ErrNoRolesSelected)
}

func TestFindGroup(t *testing.T) {
	groups := []fusionauth.Group{{ID: "Alpha", Name: "Other"}, {ID: "2", Name: "Alpha"}}

	id, err := FindGroup(groups, "Alpha")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", id, "ids take precedence over names")

	id, err = FindGroup(groups, "other")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", id)

	_, err = FindGroup(groups, "missing")
	assert.ErrorIs(t, err, ErrUnknownGroup)
}

func TestGroupOptions(t *testing.T) {
	opts := GroupOptions(testGroups())
	assert.Equal(t, []selector.Option{
		{Label: "Team A", ID: "1"},
		{Label: "Team B", ID: "2"},
		{Label: "Alpha", ID: "3"},
	}, opts)

	// the selector filters group names the same way the picker shows them
	assert.Equal(t, opts[:2], selector.Filter(opts, "team"))
}
