package installer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInstall(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "completions")

	path, err := Install(zap.NewNop(), dir, "app", "script body")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "_app.ps1"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "script body", string(content))
}

func TestInstallOverwrites(t *testing.T) {
	dir := t.TempDir()

	_, err := Install(nil, dir, "app", "old")
	require.NoError(t, err)
	path, err := Install(nil, dir, "app", "new")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestInstallErrors(t *testing.T) {
	_, err := Install(nil, "", "app", "x")
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	_, err = Install(nil, filepath.Join(file, "sub"), "app", "x")
	assert.Error(t, err)
}
