// Package source implements TinyLang's import preprocessor (spec.md §6):
// before a file reaches the lexer, leading `import "relpath";` statements
// are detected and recursively spliced in, de-duplicated by canonical
// absolute path, so the parser always sees one merged statement list.
//
// Grounded on go-mix's main.go file-loading flow (os.ReadFile then hand the
// whole source to the parser in one shot) — TinyLang inserts a splicing
// pass in front of that same flow rather than teaching the parser its own
// import statement.
package source

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var importLine = regexp.MustCompile(`^\s*import\s+"([^"]+)"\s*;\s*$`)

// Preprocessor splices imports across one Load call, tracking every file it
// has already spliced in so a file imported from two places contributes its
// statements only once.
type Preprocessor struct {
	searchDirs []string
	seen       map[string]bool
}

// New creates a Preprocessor. searchDirs are consulted, in order, after the
// importing file's own directory, when an import path cannot be found
// relative to it — populated from an optional tinylang.yaml (internal/config).
func New(searchDirs []string) *Preprocessor {
	return &Preprocessor{searchDirs: searchDirs, seen: map[string]bool{}}
}

// Load reads path and returns its fully-spliced source text.
func (p *Preprocessor) Load(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return p.load(abs)
}

func (p *Preprocessor) load(abs string) (string, error) {
	if p.seen[abs] {
		return "", nil
	}
	p.seen[abs] = true

	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("import %q: %w", abs, err)
	}
	dir := filepath.Dir(abs)

	var out strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	inPreamble := true

	for scanner.Scan() {
		line := scanner.Text()
		if inPreamble {
			if m := importLine.FindStringSubmatch(line); m != nil {
				resolved, err := p.resolve(m[1], dir)
				if err != nil {
					return "", err
				}
				spliced, err := p.load(resolved)
				if err != nil {
					return "", err
				}
				out.WriteString(spliced)
				continue
			}
			if strings.TrimSpace(line) == "" {
				out.WriteString(line)
				out.WriteString("\n")
				continue
			}
			inPreamble = false
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return out.String(), nil
}

func (p *Preprocessor) resolve(relpath, dir string) (string, error) {
	candidate := filepath.Join(dir, relpath)
	if _, err := os.Stat(candidate); err == nil {
		return filepath.Abs(candidate)
	}
	for _, d := range p.searchDirs {
		candidate = filepath.Join(d, relpath)
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Abs(candidate)
		}
	}
	return "", fmt.Errorf("import %q: not found relative to %q or any configured import path", relpath, dir)
}
