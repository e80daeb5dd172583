package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
}

func TestLoader_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.SortByCreatedAt, cfg.SortBy)
	assert.Equal(t, domain.Ascending, cfg.Direction)
	assert.Equal(t, domain.GroupByDueDate, cfg.GroupBy)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.ShowCompleted)
}

func TestLoader_LocalOverridesGlobal(t *testing.T) {
	dataDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, globalDir, "sort_by = \"title\"\nlog_level = \"debug\"\n")
	writeConfig(t, dataDir, "sort_by = \"priority\"\n")

	loader := NewLoaderWithGlobalDir(dataDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.SortByPriority, cfg.SortBy, "local value wins")
	assert.Equal(t, "debug", cfg.LogLevel, "global value survives where local is silent")
}

func TestLoader_InvalidEnumFallsBackWithWarning(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, "group_by = \"status\"\n")

	loader := NewLoaderWithGlobalDir(dataDir, t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.GroupByDueDate, cfg.GroupBy)
	assert.Len(t, cfg.Warnings, 1)
}

func TestLoader_MalformedTOML(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, "sort_by = [broken\n")

	loader := NewLoaderWithGlobalDir(dataDir, t.TempDir())
	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoader_WriteDefault(t *testing.T) {
	dataDir := t.TempDir()
	loader := NewLoaderWithGlobalDir(dataDir, t.TempDir())

	path, err := loader.WriteDefault()
	require.NoError(t, err)
	assert.FileExists(t, path)

	// Second write must refuse to clobber
	_, err = loader.WriteDefault()
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	// Round-trip through Load
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
}
