package lisp

import (
	"fmt"
	"os"
	"runtime"
)

// diagnostic writes one "(error \"<message>\" \"<file>\" <line>)" line to
// the interpreter's logging stream, naming the call site of its caller's
// caller (skip=2 from here), per the recoverable-error wire format.
func (i *Interpreter) diagnostic(skip int, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "unknown", 0
	}
	if i.Logging != nil {
		i.Logging.Puts([]byte(fmt.Sprintf("(error %q %q %d)\n", msg, file, line)))
	}
}

// diagf reports a recoverable error: one diagnostic line, and the caller is
// expected to return the nil cell. Evaluation continues.
func (i *Interpreter) diagf(format string, v ...interface{}) *Cell {
	i.diagnostic(2, format, v...)
	return i.NilVal
}

// abortf reports a fatal-to-expression error: an internal invariant was
// violated. There is no promise of continuing after this; the process
// exits with a non-zero status, mirroring a HALT diagnostic.
func (i *Interpreter) abortf(format string, v ...interface{}) *Cell {
	i.diagnostic(2, "fatal: "+format, v...)
	os.Exit(1)
	return nil // unreachable
}

// oom reports a fatal-to-process allocation failure. The allocator is the
// only component permitted to call this.
func (i *Interpreter) oom(format string, v ...interface{}) {
	i.diagnostic(2, "out of memory: "+format, v...)
	os.Exit(2)
}

// Diagnosef reports a recoverable error on behalf of a caller outside this
// package (the reader, the printer, or a host primitive registered with
// RegisterFunction), using the same wire format as every diagnostic the
// core itself emits. It returns the nil cell for the caller to propagate.
func (i *Interpreter) Diagnosef(format string, v ...interface{}) *Cell {
	i.diagnostic(2, format, v...)
	return i.NilVal
}
