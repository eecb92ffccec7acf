// Package replline drives an interactive read-eval-print loop over
// github.com/chzyer/readline, generalizing the line-accumulation strategy
// of the teacher repository's repl package to the new Stream/reader API:
// a partial expression (an open list or string) reprompts for a
// continuation line instead of failing.
package replline

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"

	liblisp "github.com/howerj/liblisp-go"
	"github.com/howerj/liblisp-go/reader"
	"github.com/howerj/liblisp-go/stream"
)

// Run drives interp interactively: the first complete top-level expression
// in the accumulated input is evaluated and printed, and anything after it
// on the same line is discarded; a line that leaves an open list or string
// reprompts with contPrompt instead of diagnosing.
func Run(interp *liblisp.Interpreter, prompt string) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	contPrompt := strings.Repeat(" ", len(prompt))
	var pending []byte

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			pending = nil
			rl.SetPrompt(prompt)
			continue
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}

		if len(pending) != 0 {
			pending = append(pending, '\n')
		}
		pending = append(pending, line...)

		// The reader diagnoses an unterminated list or string before it
		// returns ErrIncomplete; hold its output back so that a line
		// awaiting continuation logs nothing.
		logging := interp.Logging
		held := stream.NewStringOut(4096)
		interp.SetLogging(held)
		x, rerr := interp.Read(stream.NewStringIn(pending))
		interp.SetLogging(logging)
		if !errors.Is(rerr, reader.ErrIncomplete) {
			logging.Puts(held.Bytes())
		}
		switch {
		case rerr == nil:
			pending = nil
			rl.SetPrompt(prompt)
			result := interp.Eval(x)
			interp.Print(result)
			interp.Output.Puts([]byte("\n"))
			interp.Output.Flush()
			interp.Clean()
		case errors.Is(rerr, reader.ErrIncomplete):
			rl.SetPrompt(contPrompt)
		case errors.Is(rerr, reader.ErrEOF):
			// A blank or whitespace-only line; nothing to evaluate.
			pending = nil
			rl.SetPrompt(prompt)
		default:
			// Read already diagnosed the malformed expression to interp's
			// logging stream; drop it and start fresh.
			pending = nil
			rl.SetPrompt(prompt)
		}
	}
}
