package argumentum

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of a parse-time error.
type ErrorCode int

const (
	// UnknownOption means the option is not known by the parser.
	UnknownOption ErrorCode = iota
	// ExclusiveOption means multiple options from an exclusive group are present.
	ExclusiveOption
	// MissingOption means a required option is missing.
	MissingOption
	// MissingOptionGroup means no option from a required group is present.
	MissingOptionGroup
	// MissingArgument means an option or positional received fewer arguments
	// than its minimum arity.
	MissingArgument
	// ConversionError means an input argument could not be converted.
	ConversionError
	// InvalidChoice means the argument value is not in the set of valid values.
	InvalidChoice
	// FlagParameter means a flag was given a parameter with --flag=value.
	FlagParameter
	// HelpRequested signals that help was requested when OnExitReturn is set.
	HelpRequested
)

func (c ErrorCode) String() string {
	switch c {
	case UnknownOption:
		return "unknown option"
	case ExclusiveOption:
		return "exclusive option"
	case MissingOption:
		return "missing option"
	case MissingOptionGroup:
		return "missing option group"
	case MissingArgument:
		return "missing argument"
	case ConversionError:
		return "conversion error"
	case InvalidChoice:
		return "invalid choice"
	case FlagParameter:
		return "flag parameter"
	case HelpRequested:
		return "help requested"
	}
	return fmt.Sprintf("error code %d", int(c))
}

// ParseError records one parse-time failure keyed by the canonical name of
// the option, positional or group it concerns.
type ParseError struct {
	Option string
	Code   ErrorCode
}

// ParseResult is the outcome of a single ParseArgs call. IgnoredArguments
// holds free tokens that matched no positional slot, in encounter order.
type ParseResult struct {
	IgnoredArguments []string
	Errors           []ParseError
}

// Ok reports whether parsing finished without errors.
func (r *ParseResult) Ok() bool {
	return len(r.Errors) == 0
}

// TerminationError is returned by ParseArgs when the exit mode is
// OnExitThrow and a terminating condition such as a help request occurs.
// It carries the token that triggered the termination.
type TerminationError struct {
	Arg  string
	Code ErrorCode
}

func (e *TerminationError) Error() string {
	return fmt.Sprintf("parsing terminated at %q: %s", e.Arg, e.Code)
}

// ProgrammingError wraps errors caused by incorrect parser setup. These are
// bugs in the code declaring the arguments, not user input errors, so the
// registration methods panic with them instead of deferring to ParseResult.
type ProgrammingError struct {
	msg string
}

func (e *ProgrammingError) Error() string {
	return e.msg
}

// NewProgrammingError creates a new programming error.
func NewProgrammingError(msg string) *ProgrammingError {
	return &ProgrammingError{msg: msg}
}

// errInvalidChoice marks a value rejected by a choices constraint so the
// parser can distinguish it from a converter failure.
var errInvalidChoice = errors.New("value not among the valid choices")
