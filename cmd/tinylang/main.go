// Command tinylang is the driver binary for the TinyLang interpreter.
package main

import (
	"os"

	"github.com/ShubhamPipaliya2007/tinylang-compiler/cmd/tinylang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
