package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(dir), cfg)
	assert.Equal(t, filepath.Join(dir, "frete.log"), cfg.Logging.Path)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  source: sqlite
  dsn: /tmp/frete.db
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Data.Source)
	assert.Equal(t, "/tmp/frete.db", cfg.Data.DSN)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Enabled, "unset keys keep defaults")
	assert.Equal(t, ".", cfg.Export.Dir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  source: sqlite\n"), 0o644))

	t.Setenv("FRETE_DATA_SOURCE", "memory")
	t.Setenv("FRETE_LOG_LEVEL", "WARN")
	t.Setenv("FRETE_EXPORT_DIR", "/exports")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Data.Source)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/exports", cfg.Export.Dir)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("data:\n  source: oracle\n"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid data source")

	require.NoError(t, os.WriteFile(path, []byte("data: [unterminated\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSaveThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig(dir)
	cfg.Data.Fixtures = "/data/shipments.yaml"
	cfg.Data.LatencyMS = 250
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(`
# comment
FRETE_TEST_A="quoted"
export FRETE_TEST_B=plain
FRETE_TEST_C=from-file
not a pair
`), 0o644))

	t.Setenv("FRETE_TEST_A", "")
	t.Setenv("FRETE_TEST_B", "")
	t.Setenv("FRETE_TEST_C", "from-env")

	LoadDotEnv(path)
	assert.Equal(t, "quoted", os.Getenv("FRETE_TEST_A"))
	assert.Equal(t, "plain", os.Getenv("FRETE_TEST_B"))
	assert.Equal(t, "from-env", os.Getenv("FRETE_TEST_C"))
}
