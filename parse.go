package argumentum

import (
	"errors"
	"strings"
)

// parserState runs the token scan for one ParseArgs call. Tokens are
// consumed left to right; the active option, if any, has first refusal of
// free tokens, and positional slots advance only past saturated slots.
type parserState struct {
	parser        *Parser
	ignoreOptions bool
	position      int
	activeOption  *option
	result        ParseResult
}

func (s *parserState) parse(args []string) (*ParseResult, error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" && !s.ignoreOptions {
			s.ignoreOptions = true
			continue
		}

		if s.ignoreOptions {
			s.addFreeArgument(arg)
			continue
		}

		switch {
		case strings.HasPrefix(arg, "--"):
			s.startOption(arg)
		case strings.HasPrefix(arg, "-"):
			if len(arg) == 2 {
				s.startOption(arg)
			} else {
				// Bundled short options: -abc starts -a, -b and -c in
				// turn, each start closing the previous active option.
				for _, ch := range arg[1:] {
					s.startOption("-" + string(ch))
				}
			}
		default:
			if s.activeOption != nil && s.activeOption.willAcceptArgument() {
				s.setValue(s.activeOption, arg)
				if !s.activeOption.willAcceptArgument() {
					s.closeOption()
				}
				continue
			}
			s.closeOption()

			if cmd, ok := s.parser.commands[arg]; ok {
				if err := s.dispatchCommand(cmd, args[i+1:]); err != nil {
					return nil, err
				}
				return &s.result, nil
			}
			s.addFreeArgument(arg)
		}
	}

	s.closeOption()
	return &s.result, nil
}

// startOption resolves a dashed token, optionally split on the first "=",
// and either activates the option or writes its flag value immediately.
func (s *parserState) startOption(token string) {
	if s.activeOption != nil {
		s.closeOption()
	}

	name := token
	var inline string
	if idx := strings.Index(name, "="); idx != -1 {
		inline = name[idx+1:]
		name = name[:idx]
	}

	opt := s.parser.findOption(name)
	if opt == nil {
		s.addError(stripDashes(name), UnknownOption)
		return
	}

	opt.slot.onOptionStarted()
	if opt.willAcceptArgument() {
		s.activeOption = opt
	} else {
		s.setValue(opt, opt.flagValue)
	}

	if inline != "" {
		if opt.willAcceptArgument() {
			s.setValue(opt, inline)
			if !opt.willAcceptArgument() {
				s.closeOption()
			}
		} else {
			s.addError(stripDashes(name), FlagParameter)
		}
	}
}

// closeOption finishes the active option's activation: below minimum arity
// it records MissingArgument; an argument-accepting option that received
// nothing through this activation gets its flag value.
func (s *parserState) closeOption() {
	if opt := s.activeOption; opt != nil {
		if opt.needsMoreArguments() {
			s.addError(opt.name(), MissingArgument)
		} else if opt.willAcceptArgument() && !opt.wasAssignedThroughThisOption() {
			s.setValue(opt, opt.flagValue)
		}
	}
	s.activeOption = nil
}

// addFreeArgument routes a token to the current positional slot, advancing
// past saturated slots. Tokens no slot accepts are recorded as ignored.
func (s *parserState) addFreeArgument(arg string) {
	for s.position < len(s.parser.positionals) {
		opt := s.parser.positionals[s.position]
		if opt.willAcceptArgument() {
			s.setValue(opt, arg)
			return
		}
		s.position++
	}
	s.result.IgnoredArguments = append(s.result.IgnoredArguments, arg)
}

// setValue writes one value, translating conversion and choice failures
// into parse errors so the token scan never aborts.
func (s *parserState) setValue(opt *option, value string) {
	if err := opt.setValue(value); err != nil {
		if errors.Is(err, errInvalidChoice) {
			s.addError(opt.name(), InvalidChoice)
		} else {
			s.addError(opt.name(), ConversionError)
		}
	}
}

func (s *parserState) addError(optionName string, code ErrorCode) {
	s.result.Errors = append(s.result.Errors, ParseError{Option: optionName, Code: code})
}

// dispatchCommand hands the remaining tokens to a freshly built nested
// parser. Tokens after the command name never fall back to the outer
// registry; the nested result is merged into the outer one.
func (s *parserState) dispatchCommand(cmd *Command, rest []string) error {
	nested := NewParser()
	nested.config = s.parser.config
	cmd.factory(nested)

	result, err := nested.ParseArgs(rest)
	if err != nil {
		return err
	}

	s.parser.activeCommand = cmd.name
	s.result.IgnoredArguments = append(s.result.IgnoredArguments, result.IgnoredArguments...)
	s.result.Errors = append(s.result.Errors, result.Errors...)
	return nil
}
