package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config location and working directory at
// temporary directories and clears FusionAuth variables.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	for _, k := range []string{EnvAPIKey, EnvBaseURL, EnvTenantID, EnvApplicationID} {
		t.Setenv(k, "")
	}
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestGetConfigPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout is linux-only")
	}
	dir := isolate(t)

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "xdg", "onboard", "config.yaml"), path)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTenantID, cfg.TenantID)
	assert.Equal(t, DefaultApplicationID, cfg.ApplicationID)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.InitialPassword)
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Empty(t, cfg.Path)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_YAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "onboard.yml")
	writeFile(t, path, `
base_url: https://auth.example.com
application_id: 11111111-2222-3333-4444-555555555555
timeout_seconds: 5
initial_password: changeme
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://auth.example.com", cfg.BaseURL)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", cfg.ApplicationID)
	assert.Equal(t, DefaultTenantID, cfg.TenantID, "unset keys keep defaults")
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, "changeme", cfg.InitialPassword)
	assert.Equal(t, path, cfg.Path)
}

func TestLoad_TOML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "onboard.toml")
	writeFile(t, path, `
base_url = "https://toml.example.com"
tenant_id = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
timeout_seconds = 12
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://toml.example.com", cfg.BaseURL)
	assert.Equal(t, "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", cfg.TenantID)
	assert.Equal(t, 12, cfg.TimeoutSeconds)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "onboard.json")
	writeFile(t, path, `{}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file extension")
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "base_url: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "base_url: https://file.example.com\ntenant_id: 00000000-0000-0000-0000-000000000001\n")
	writeFile(t, filepath.Join(dir, DotEnvFile), strings.Join([]string{
		EnvAPIKey + "=dotenv-key",
		EnvBaseURL + "=https://dotenv.example.com",
		EnvTenantID + "=00000000-0000-0000-0000-000000000002",
	}, "\n"))
	t.Setenv(EnvBaseURL, "https://env.example.com")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dotenv-key", cfg.APIKey, ".env supplies missing variables")
	assert.Equal(t, "https://env.example.com", cfg.BaseURL, "real environment wins over .env")
	assert.Equal(t, "00000000-0000-0000-0000-000000000002", cfg.TenantID, ".env wins over the file")

	cfg.Apply(Overrides{BaseURL: "https://flag.example.com"})
	assert.Equal(t, "https://flag.example.com", cfg.BaseURL, "flags win over everything")
	assert.Equal(t, "00000000-0000-0000-0000-000000000002", cfg.TenantID)

	assert.Empty(t, os.Getenv(EnvAPIKey), ".env must not modify the process environment")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.APIKey = "key"
		return cfg
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("EmptyTenantAllowed", func(t *testing.T) {
		cfg := valid()
		cfg.TenantID = ""
		assert.NoError(t, cfg.Validate())
	})

	t.Run("MissingAPIKey", func(t *testing.T) {
		cfg := valid()
		cfg.APIKey = ""
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrMissingAPIKey)
		assert.Equal(t, "API key not found. Please set the FUSIONAUTH_API_KEY environment variable.", err.Error())
	})

	t.Run("BadValues", func(t *testing.T) {
		cfg := valid()
		cfg.BaseURL = "not a url"
		cfg.ApplicationID = "app"
		cfg.TimeoutSeconds = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base_url must be a valid URL")
		assert.Contains(t, err.Error(), "application_id must be a UUID")
		assert.Contains(t, err.Error(), "timeout_seconds must be greater than 0")
	})
}

func TestSave_RoundTripNeverWritesAPIKey(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "nested", name)

			cfg := Default()
			cfg.APIKey = "super-secret-key"
			cfg.InitialPassword = "pw"
			require.NoError(t, cfg.Save(path))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.NotContains(t, string(data), "super-secret-key")
			assert.True(t, strings.HasPrefix(string(data), "# onboard configuration file"))

			info, err := os.Stat(path)
			require.NoError(t, err)
			if runtime.GOOS != "windows" {
				assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
			}
			_, err = os.Stat(path + ".tmp")
			assert.True(t, os.IsNotExist(err))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg.BaseURL, loaded.BaseURL)
			assert.Equal(t, "pw", loaded.InitialPassword)
			assert.Empty(t, loaded.APIKey)
		})
	}
}

func TestWriteDefault(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")

	written, err := WriteDefault(path, false)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	_, err = WriteDefault(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = WriteDefault(path, true)
	assert.NoError(t, err)
}

func TestWriteDefault_DefaultLocation(t *testing.T) {
	isolate(t)

	written, err := WriteDefault("", false)
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, written, cfg.Path)
}

func TestMaskedAPIKey(t *testing.T) {
	cfg := &Config{APIKey: "abcd1234efgh5678"}
	assert.Equal(t, "abcd********5678", cfg.MaskedAPIKey())
	assert.Empty(t, (&Config{}).MaskedAPIKey())
}
