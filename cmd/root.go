// Package cmd wires the cobra command tree: a root command plus run and
// repl subcommands, following the layout of the teacher repository's own
// cmd package.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "liblisp-go",
	Short: "An embeddable Lisp interpreter",
	Long:  `liblisp-go reads, evaluates, and prints a small Lisp dialect, either from files, from -e expressions, or interactively.`,
}

// Execute runs the command tree, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
