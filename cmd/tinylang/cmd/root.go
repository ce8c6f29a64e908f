// Package cmd implements the tinylang CLI, a cobra-based multi-subcommand
// driver around the internal/lexer, internal/parser, and internal/interp
// pipeline. Grounded on go-dws's cmd/dwscript/cmd package layout
// (root.go + one file per subcommand, a shared persistent --no-color flag)
// and on go-mix's color.New palette: red for errors, cyan for info.
package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var noColor bool

var (
	errColor  = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:           "tinylang",
	Short:         "TinyLang interpreter",
	Long:          `tinylang runs, tokenizes, and parses programs written in TinyLang, a small C-style scripting language with classes and first-class ComeAndDo functions.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
	})
}

func reportError(err error) error {
	if err == nil {
		return nil
	}
	errColor.Fprintf(rootCmd.ErrOrStderr(), "tinylang: %v\n", err)
	return err
}
