package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSplicesSingleImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lib.tl", `int shared = 1;`)
	main := writeFile(t, dir, "main.tl", "import \"lib.tl\";\nprint(shared);\n")

	got, err := New(nil).Load(main)
	require.NoError(t, err)
	assert.Contains(t, got, "int shared = 1;")
	assert.Contains(t, got, "print(shared);")
}

func TestLoadDedupsRepeatedImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lib.tl", `int shared = 1;`)
	writeFile(t, dir, "a.tl", "import \"lib.tl\";\n")
	main := writeFile(t, dir, "main.tl", "import \"lib.tl\";\nimport \"a.tl\";\nprint(shared);\n")

	got, err := New(nil).Load(main)
	require.NoError(t, err)
	assert.Equal(t, 1, countOccurrences(got, "int shared = 1;"))
}

func TestLoadUsesSearchDirsWhenRelativeMissing(t *testing.T) {
	mainDir := t.TempDir()
	libDir := t.TempDir()
	writeFile(t, libDir, "lib.tl", `int x = 9;`)
	main := writeFile(t, mainDir, "main.tl", "import \"lib.tl\";\nprint(x);\n")

	got, err := New([]string{libDir}).Load(main)
	require.NoError(t, err)
	assert.Contains(t, got, "int x = 9;")
}

func TestLoadMissingImportIsError(t *testing.T) {
	dir := t.TempDir()
	main := writeFile(t, dir, "main.tl", "import \"missing.tl\";\n")

	_, err := New(nil).Load(main)
	require.Error(t, err)
}

func countOccurrences(haystack, needle string) int {
	count := 0
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			count++
			i += len(needle) - 1
		}
	}
	return count
}
