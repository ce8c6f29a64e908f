package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFilePrintsStatementDump(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tl")
	if err := os.WriteFile(path, []byte("int x = 5;\nprint(x);\n"), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	out := captureStdout(t, func() {
		if err := parseFile(parseCmd, []string{path}); err != nil {
			t.Fatalf("parseFile: %v", err)
		}
	})

	for _, want := range []string{"Assign", "IntLit 5", "Print"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected dump to contain %q, got:\n%s", want, out)
		}
	}
}

func TestParseFileReportsSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.tl")
	if err := os.WriteFile(path, []byte("int x = ;\n"), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := parseFile(parseCmd, []string{path}); err == nil {
		t.Fatal("expected a parse error")
	}
}
