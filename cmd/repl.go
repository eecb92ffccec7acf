package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	liblisp "github.com/howerj/liblisp-go"
	"github.com/howerj/liblisp-go/internal/replline"
)

var replPrompt string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Run: func(cmd *cobra.Command, args []string) {
		interp, err := liblisp.Init()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer interp.End()

		if err := replline.Run(interp, replPrompt); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&replPrompt, "prompt", "> ", "REPL prompt string")
}
