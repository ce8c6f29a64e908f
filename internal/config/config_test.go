package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesImportPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tinylang.yaml")
	require.NoError(t, os.WriteFile(path, []byte("import_paths:\n  - ./lib\n  - ../shared\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"./lib", "../shared"}, cfg.ImportPaths)
}

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.ImportPaths)
}
