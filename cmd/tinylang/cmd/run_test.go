package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout mirrors go-dws's run_unit_test.go pipe-capture style: the
// CLI commands write to os.Stdout directly, so tests redirect the real fd
// rather than threading a writer through cobra's RunE signature.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestRunFileExecutesSourceProgram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tl")
	src := "int x = 2;\nint y = 3;\nprint(x + y);\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	out := captureStdout(t, func() {
		if err := runFile(runCmd, []string{path}); err != nil {
			t.Fatalf("runFile: %v", err)
		}
	})

	if strings.TrimSpace(out) != "5" {
		t.Fatalf("expected output %q, got %q", "5", out)
	}
}

func TestRunFileSplicesImports(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "lib.tl")
	if err := os.WriteFile(libPath, []byte("int shared = 41;\n"), 0644); err != nil {
		t.Fatalf("write lib: %v", err)
	}

	mainPath := filepath.Join(dir, "main.tl")
	mainSrc := "import \"lib.tl\";\nprint(shared + 1);\n"
	if err := os.WriteFile(mainPath, []byte(mainSrc), 0644); err != nil {
		t.Fatalf("write main: %v", err)
	}

	out := captureStdout(t, func() {
		if err := runFile(runCmd, []string{mainPath}); err != nil {
			t.Fatalf("runFile: %v", err)
		}
	})

	if strings.TrimSpace(out) != "42" {
		t.Fatalf("expected output %q, got %q", "42", out)
	}
}

func TestRunFileReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.tl")
	if err := os.WriteFile(path, []byte("int x = ;\n"), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	err := runFile(runCmd, []string{path})
	if err == nil {
		t.Fatal("expected a parse error, got nil")
	}
}

func TestImportSearchDirsReadsProjectConfig(t *testing.T) {
	dir := t.TempDir()
	libDir := filepath.Join(dir, "lib")
	if err := os.Mkdir(libDir, 0755); err != nil {
		t.Fatalf("mkdir lib: %v", err)
	}

	cfgPath := filepath.Join(dir, "tinylang.yaml")
	if err := os.WriteFile(cfgPath, []byte("import_paths:\n  - ./lib\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(oldWd)

	dirs, err := importSearchDirs()
	if err != nil {
		t.Fatalf("importSearchDirs: %v", err)
	}
	if len(dirs) != 1 || dirs[0] != libDir {
		t.Fatalf("expected [%s], got %v", libDir, dirs)
	}
}

func TestImportSearchDirsNoConfigIsEmpty(t *testing.T) {
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(oldWd)

	dirs, err := importSearchDirs()
	if err != nil {
		t.Fatalf("importSearchDirs: %v", err)
	}
	if len(dirs) != 0 {
		t.Fatalf("expected no search dirs, got %v", dirs)
	}
}
