package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLexFilePrintsTokenStream(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tl")
	if err := os.WriteFile(path, []byte("int x = 5;\n"), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	out := captureStdout(t, func() {
		if err := lexFile(lexCmd, []string{path}); err != nil {
			t.Fatalf("lexFile: %v", err)
		}
	})

	for _, want := range []string{"INT", "IDENT", "x", "5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected token dump to contain %q, got:\n%s", want, out)
		}
	}
}

func TestLexFileMissingFileIsError(t *testing.T) {
	if err := lexFile(lexCmd, []string{"/no/such/file.tl"}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
