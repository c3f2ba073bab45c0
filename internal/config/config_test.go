package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "datasets", cfg.InputDir)
	assert.Equal(t, "outputs", cfg.OutputDir)
	assert.Equal(t, "recursive", cfg.Algorithm)
	assert.Equal(t, "none", cfg.Store.Backend)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvInputDir, "")
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvStoreBackend, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv(EnvInputDir, "")
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvStoreBackend, "")

	path := filepath.Join(t.TempDir(), "conf", "intsort.yaml")
	cfg := DefaultConfig()
	cfg.Algorithm = "iterative"
	cfg.Store.Backend = "bbolt"
	cfg.Store.Path = "runs.db"
	cfg.Bench.Sizes = []int{5}

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvInputDir, "")
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvStoreBackend, "")

	path := filepath.Join(t.TempDir(), "intsort.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: sorted\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sorted", cfg.OutputDir)
	assert.Equal(t, "datasets", cfg.InputDir)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvInputDir, "/data/in")
	t.Setenv(EnvOutputDir, "/data/out")
	t.Setenv(EnvStoreBackend, "pebble")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/data/in", cfg.InputDir)
	assert.Equal(t, "/data/out", cfg.OutputDir)
	assert.Equal(t, "pebble", cfg.Store.Backend)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty input dir", func(c *Config) { c.InputDir = "" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"bad algorithm", func(c *Config) { c.Algorithm = "random-pivot" }},
		{"bad backend", func(c *Config) { c.Store.Backend = "redis" }},
		{"no store path", func(c *Config) { c.Store.Backend = "bbolt"; c.Store.Path = "" }},
		{"zero runs", func(c *Config) { c.Bench.Runs = 0 }},
		{"negative size", func(c *Config) { c.Bench.Sizes = []int{-1} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: [\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
