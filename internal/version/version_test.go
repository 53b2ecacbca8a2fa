package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSettings(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2026-03-14T10:00:00Z"},
	}

	v, c := fromSettings("", "", settings)
	assert.Equal(t, "dev-20260314", v)
	assert.Equal(t, "0123456-dirty", c)

	v, c = fromSettings("v1.0.0", "abc", settings)
	assert.Equal(t, "v1.0.0", v)
	assert.Equal(t, "abc", c)

	v, c = fromSettings("", "", nil)
	assert.Empty(t, v)
	assert.Empty(t, c)
}

func TestString(t *testing.T) {
	assert.Contains(t, String("onboard"), "onboard ")
	assert.Contains(t, String("onboard"), "(commit: ")
}
