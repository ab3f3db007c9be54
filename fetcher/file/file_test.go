package file

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte(`{"name": "test-app", "version": "1.0"}`)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	err := os.WriteFile(configPath, content, 0o600)
	require.NoError(t, err)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, configPath, fetcher.Path())
}

func TestFetcher_Fetch_ReturnsCopy(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(configPath, []byte("a = 1"), 0o600))

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	first, err := fetcher.Fetch()
	require.NoError(t, err)

	first[0] = 'X'

	second, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, []byte("a = 1"), second)
}

func TestFetcher_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/path/config.yaml")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestFetcher_EmptyFile(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte{}, 0o600))

	data, err := Read(configPath)

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFetcher_DirectoryPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	fetcher, err := NewFetcher(tmpDir)()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestRead_CleansPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "app.json"), []byte("{}"), 0o600))

	data, err := Read(tmpDir + "/./sub/../app.json")

	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), data)
}
