package argumentum

import "io"

// ExitMode selects how a terminating condition such as a help request is
// surfaced by ParseArgs.
type ExitMode int

const (
	// ExitTerminate ends the process through the exit hook. The default.
	ExitTerminate ExitMode = iota
	// ExitThrow makes ParseArgs return a *TerminationError.
	ExitThrow
	// ExitReturn makes ParseArgs return a ParseResult carrying the
	// terminating condition as its only error.
	ExitReturn
)

// ParserConfig holds presentation and termination settings for a Parser.
// Obtain it with Parser.Config and configure it fluently.
type ParserConfig struct {
	program     string
	usage       string
	description string
	epilog      string
	output      io.Writer
	exitMode    ExitMode
}

func (c *ParserConfig) Program(program string) *ParserConfig {
	c.program = program
	return c
}

// Usage overrides the generated synopsis line.
func (c *ParserConfig) Usage(usage string) *ParserConfig {
	c.usage = usage
	return c
}

func (c *ParserConfig) Description(description string) *ParserConfig {
	c.description = description
	return c
}

func (c *ParserConfig) Epilog(epilog string) *ParserConfig {
	c.epilog = epilog
	return c
}

// Output sets the writer that receives generated help. When unset, help
// goes to the package stdout writer.
func (c *ParserConfig) Output(w io.Writer) *ParserConfig {
	c.output = w
	return c
}

func (c *ParserConfig) OnExitTerminate() *ParserConfig {
	c.exitMode = ExitTerminate
	return c
}

func (c *ParserConfig) OnExitThrow() *ParserConfig {
	c.exitMode = ExitThrow
	return c
}

func (c *ParserConfig) OnExitReturn() *ParserConfig {
	c.exitMode = ExitReturn
	return c
}
