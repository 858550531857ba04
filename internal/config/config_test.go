package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every test sets CONFIG_PATH so MustLoad never reaches the --config flag
// branch: registering the flag twice in one test binary would panic.

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestMustLoadFromFile(t *testing.T) {
	path := writeConfig(t, "env: prod\nstorage:\n  backend: sqlite\n  path: students.db\n")
	t.Setenv("CONFIG_PATH", path)

	cfg := MustLoad()
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "students.db", cfg.Storage.Path)
}

func TestMustLoadAppliesDefaults(t *testing.T) {
	// A file that only sets env: the storage section falls back to the
	// JSON backend and the conventional data file name.
	path := writeConfig(t, "env: dev\n")
	t.Setenv("CONFIG_PATH", path)

	cfg := MustLoad()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "json", cfg.Storage.Backend)
	assert.Equal(t, "data.json", cfg.Storage.Path)
}

func TestMustLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "env: dev\nstorage:\n  path: data.json\n")
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("STORAGE_PATH", "elsewhere.json")

	cfg := MustLoad()
	assert.Equal(t, "elsewhere.json", cfg.Storage.Path)
}
