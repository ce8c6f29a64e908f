package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a TinyLang file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func lexFile(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return reportError(err)
	}

	toks, err := lexer.Tokenize(string(content))
	if err != nil {
		return reportError(err)
	}

	for _, tok := range toks {
		fmt.Printf("%-12s %-12q @%d:%d\n", tok.Kind, tok.Literal, tok.Line, tok.Column)
	}
	return nil
}
