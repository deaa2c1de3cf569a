package argumentum

import (
	"io"
	"os"
)

// ExitFunc performs process termination for the ExitTerminate mode.
type ExitFunc func(code int)

var osExit ExitFunc = os.Exit
var stdoutWriter io.Writer = os.Stdout
var stderrWriter io.Writer = os.Stderr

// SetExitFunc overrides the exit function, typically for testing.
func SetExitFunc(fn ExitFunc) {
	osExit = fn
}

// SetStdoutWriter overrides the default destination for generated help.
func SetStdoutWriter(w io.Writer) {
	stdoutWriter = w
}

// SetStderrWriter overrides the destination for rendered error output.
func SetStderrWriter(w io.Writer) {
	stderrWriter = w
}
