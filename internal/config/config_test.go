package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_key": "test-key",
		"data_dir": "/tmp/records",
		"port": 9090
	}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "/tmp/records", cfg.DataDir)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("Empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("RESUME_DATA_DIR", "/data/resumes")
	t.Setenv("PORT", "8081")

	cfg := FromEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "/data/resumes", cfg.DataDir)
	assert.Equal(t, 8081, cfg.Port)
}

func TestFromEnvIgnoresBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	assert.Equal(t, 0, FromEnv().Port)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit"}
	merged := cfg.MergeWithDefaults(Config{APIKey: "default", DataDir: "/default/dir", Port: 8080})

	assert.Equal(t, "explicit", merged.APIKey, "explicit values win")
	assert.Equal(t, "/default/dir", merged.DataDir)
	assert.Equal(t, 8080, merged.Port)
}

func TestMergeWithDefaultsCarriesVerbose(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{Verbose: true})
	assert.True(t, merged.Verbose, "verbose from a config file survives the merge")

	merged = (&Config{Verbose: true}).MergeWithDefaults(Config{})
	assert.True(t, merged.Verbose)

	merged = (&Config{}).MergeWithDefaults(Config{})
	assert.False(t, merged.Verbose)
}

func TestMergeWithDefaultsFallsBackToDataDirDefault(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultDataDir, merged.DataDir)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.NoError(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
}
