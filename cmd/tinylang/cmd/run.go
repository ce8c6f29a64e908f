package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/ast"
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/config"
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/interp"
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/parser"
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/source"
)

// defaultSourceFile is the driver-level fallback when no path is given
// (spec.md §9: "a driver policy, not a core requirement").
const defaultSourceFile = "sample.tl"

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a TinyLang source file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
	// A bare `tinylang [file]` behaves like `tinylang run [file]`.
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = runFile
}

func runFile(_ *cobra.Command, args []string) error {
	path := defaultSourceFile
	if len(args) == 1 {
		path = args[0]
	}

	searchDirs, err := importSearchDirs()
	if err != nil {
		return reportError(err)
	}

	src, err := source.New(searchDirs).Load(path)
	if err != nil {
		return reportError(err)
	}

	stmts, err := parser.Parse(src)
	if err != nil {
		return reportError(err)
	}

	if err := executeWithRecovery(stmts); err != nil {
		return reportError(err)
	}
	return nil
}

// executeWithRecovery runs a parsed program, converting any panic into an
// error instead of crashing the process — go-mix's executeFileWithRecovery
// does the same around its own evaluator, as a last-resort defense beyond
// the evaluator's own typed *langerr.Error returns.
func executeWithRecovery(stmts []ast.Stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("runtime error: %v", r)
		}
	}()
	it := interp.New(os.Stdout, os.Stdin, nil)
	return it.Run(stmts)
}

// importSearchDirs loads the optional project tinylang.yaml from the
// current working directory and resolves its import_paths relative to it.
func importSearchDirs() ([]string, error) {
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		return nil, err
	}
	if len(cfg.ImportPaths) == 0 {
		return nil, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	dirs := make([]string, len(cfg.ImportPaths))
	for i, p := range cfg.ImportPaths {
		if filepath.IsAbs(p) {
			dirs[i] = p
		} else {
			dirs[i] = filepath.Join(cwd, p)
		}
	}
	return dirs, nil
}
