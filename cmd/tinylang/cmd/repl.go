package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/interp"
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/parser"
)

const replPrompt = "tinylang >>> "

var (
	replBlue  = color.New(color.FgBlue)
	replGreen = color.New(color.FgGreen)
	replCyan  = color.New(color.FgCyan)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive TinyLang session",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runRepl(os.Stdin, os.Stdout, replPrompt)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runRepl is grounded on go-mix's repl.Repl.Start: a readline-backed loop
// sharing one long-lived interpreter across lines, writing to a caller-
// supplied writer rather than readline's own streams, with panic recovery
// around each evaluated line so a single bad statement does not end the
// session.
func runRepl(reader io.Reader, writer io.Writer, prompt string) error {
	replBlue.Fprintln(writer, "----------------------------------------------------------------")
	replGreen.Fprintln(writer, "TinyLang interactive session")
	replBlue.Fprintln(writer, "----------------------------------------------------------------")
	replCyan.Fprintln(writer, "Type a statement and press enter. Type .exit to quit.")
	replBlue.Fprintln(writer, "----------------------------------------------------------------")

	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	it := interp.New(writer, reader, nil)

	for {
		line, err := rl.Readline()
		if err != nil {
			replCyan.Fprintln(writer, "Goodbye!")
			return nil
		}
		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			replCyan.Fprintln(writer, "Goodbye!")
			return nil
		}
		rl.SaveHistory(line)
		evalLineWithRecovery(it, writer, line)
	}
}

// evalLineWithRecovery mirrors go-mix's executeWithRecovery: the REPL must
// survive a panicking statement and keep taking input.
func evalLineWithRecovery(it *interp.Interp, out io.Writer, line string) {
	defer func() {
		if r := recover(); r != nil {
			errColor.Fprintf(out, "[runtime error] %v\n", r)
		}
	}()

	stmts, err := parser.Parse(line)
	if err != nil {
		errColor.Fprintf(out, "%v\n", err)
		return
	}
	if err := it.Run(stmts); err != nil {
		errColor.Fprintf(out, "%v\n", err)
	}
}
