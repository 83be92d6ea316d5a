package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadConfigTOML(t *testing.T) {
	p := writeConfig(t, "run.toml", "chunk_threshold_mb = 10\nchunk_rows = 5000\nsheet = 2\n")
	cfg, err := loadConfig(p)
	require.NoError(t, err)
	assert.EqualValues(t, 10, cfg.ChunkThresholdMB)
	assert.Equal(t, 5000, cfg.ChunkRows)
	assert.Equal(t, 2, cfg.Sheet)
}

func TestLoadConfigYAML(t *testing.T) {
	p := writeConfig(t, "run.yaml", "chunk_rows: 1234\nno_header: true\n")
	cfg, err := loadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.ChunkRows)
	assert.True(t, cfg.NoHeader)
	// untouched keys keep their defaults
	assert.EqualValues(t, 50, cfg.ChunkThresholdMB)
}

func TestLoadConfigJSON(t *testing.T) {
	p := writeConfig(t, "run.json", `{"chunk_threshold_mb": 1, "sheet": 1}`)
	cfg, err := loadConfig(p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cfg.ChunkThresholdMB)
	assert.Equal(t, 1, cfg.Sheet)
}

func TestLoadConfigUnknownFormat(t *testing.T) {
	p := writeConfig(t, "run.ini", "chunk_rows=1\n")
	_, err := loadConfig(p)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
