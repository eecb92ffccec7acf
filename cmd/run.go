package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	liblisp "github.com/howerj/liblisp-go"
	"github.com/howerj/liblisp-go/reader"
	"github.com/howerj/liblisp-go/stream"
)

var (
	runExpression bool
	runPrint      bool
)

var runCmd = &cobra.Command{
	Use:   "run [file...]",
	Short: "Run Lisp code",
	Long:  `Run Lisp code supplied as files, or as literal expressions with -e.`,
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		interp, err := liblisp.Init()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		for _, src := range sources {
			if err := runSource(interp, src); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		interp.End()
	},
}

// runSource reads and evaluates every top-level expression in src in order.
func runSource(interp *liblisp.Interpreter, src []byte) error {
	in := stream.NewStringIn(src)
	for {
		x, err := interp.Read(in)
		if err == reader.ErrEOF {
			return nil
		}
		if err != nil {
			return err
		}
		result := interp.Eval(x)
		if runPrint {
			interp.Print(result)
			interp.Output.Puts([]byte("\n"))
		}
		interp.Clean()
	}
}

func runReadSources(args []string) ([][]byte, error) {
	sources := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			sources[i] = []byte(args[i])
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = b
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as Lisp expressions rather than file paths")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print the value of every top-level expression")
}
