package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

func TestLoadSettingsWritesDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "partsdesk")

	s, err := loadSettings(dir, "")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	assert.Equal(t, defaultConfigYAML, string(data))

	assert.Equal(t, types.Config{Backend: types.BackendMemory, Seed: true}, s.Store)
	assert.Equal(t, types.DefaultCatalog().Departments, s.Catalog.Departments)
	assert.Equal(t, types.DefaultCatalog().ItemCodes, s.Catalog.ItemCodes)
	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, "console", s.Log.Format)
}

func TestLoadSettingsKeepsExistingConfig(t *testing.T) {
	dir := t.TempDir()
	content := "backend: sqlite\nseed: false\nlog_level: debug\ncatalog:\n  departments: [Lab]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))

	s, err := loadSettings(dir, "")
	require.NoError(t, err)

	assert.Equal(t, types.Config{Backend: types.BackendSQLite, Seed: false}, s.Store)
	assert.Equal(t, []string{"Lab"}, s.Catalog.Departments)
	assert.Equal(t, types.DefaultCatalog().ItemCodes, s.Catalog.ItemCodes)
	assert.Equal(t, "debug", s.Log.Level)

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	t.Setenv("PARTSDESK_BACKEND", "sqlite")
	t.Setenv("PARTSDESK_LOG_FORMAT", "json")

	s, err := loadSettings(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, types.BackendSQLite, s.Store.Backend)
	assert.Equal(t, "json", s.Log.Format)
}

func TestLoadSettingsDotEnv(t *testing.T) {
	// Registered so the variable godotenv exports is removed after the test.
	t.Setenv("PARTSDESK_SEED", "")
	require.NoError(t, os.Unsetenv("PARTSDESK_SEED"))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PARTSDESK_SEED=false\n"), 0o644))

	s, err := loadSettings(t.TempDir(), envFile)
	require.NoError(t, err)
	assert.False(t, s.Store.Seed)
}

func TestLoadSettingsMissingDotEnv(t *testing.T) {
	_, err := loadSettings(t.TempDir(), filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoadSettingsUnknownBackend(t *testing.T) {
	t.Setenv("PARTSDESK_BACKEND", "postgres")

	_, err := loadSettings(t.TempDir(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestLoadSettingsBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("backend: [unclosed\n"), 0o644))

	_, err := loadSettings(dir, "")
	assert.Error(t, err)
}

func TestLoadSettingsCatalogFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "entries with spaces", value: "Cashier,IT Support", want: []string{"Cashier", "IT Support"}},
		{name: "padding trimmed", value: " Lab , Front Desk ,", want: []string{"Lab", "Front Desk"}},
		{name: "single entry", value: "Management", want: []string{"Management"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PARTSDESK_CATALOG_DEPARTMENTS", tt.value)
			t.Setenv("PARTSDESK_CATALOG_ITEM_CODES", "NewYorkH, Boston K")

			s, err := loadSettings(t.TempDir(), "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Catalog.Departments)
			assert.Equal(t, []string{"NewYorkH", "Boston K"}, s.Catalog.ItemCodes)
			assert.Equal(t, types.DefaultCatalog().Categories, s.Catalog.Categories)
		})
	}
}
