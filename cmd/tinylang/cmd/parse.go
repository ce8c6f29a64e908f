package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/ast"
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a TinyLang file and print its statement tree",
	Args:  cobra.ExactArgs(1),
	RunE:  parseFile,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseFile(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return reportError(err)
	}

	stmts, err := parser.Parse(string(content))
	if err != nil {
		return reportError(err)
	}

	fmt.Print(ast.Dump(stmts))
	return nil
}
