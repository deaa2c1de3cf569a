package argumentum

import (
	"fmt"
	"sort"
	"strings"
)

// Parser is the registry of options, positionals, groups and commands, and
// the entry point for parsing. Build it once, then call ParseArgs; repeated
// sequential ParseArgs calls reset all slots first. A Parser is not safe
// for concurrent use.
type Parser struct {
	config        ParserConfig
	options       []*option
	positionals   []*option
	helpNames     []string
	groups        map[string]*optionGroup
	commands      map[string]*Command
	commandOrder  []string
	activeGroup   *optionGroup
	activeCommand string
}

func NewParser() *Parser {
	return &Parser{
		groups:   make(map[string]*optionGroup),
		commands: make(map[string]*Command),
	}
}

// Config returns the parser configuration for fluent modification.
func (p *Parser) Config() *ParserConfig {
	return &p.config
}

// AddArgument registers one option or positional writing into dest and
// returns a handle for further configuration. dest is a pointer to a
// supported scalar or slice type, or a custom ValueSetter. Names starting
// with "-" make an option, names without make a positional; mixing the two
// kinds, empty names, names containing whitespace and multi-character short
// names panic with a *ProgrammingError.
func (p *Parser) AddArgument(dest any, names ...string) *OptionConfig {
	slot, isSlice := newSlot(dest)
	if slot == nil {
		panic(NewProgrammingError(fmt.Sprintf("unsupported destination type %T", dest)))
	}

	var cleaned []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if hasWhitespace(name) {
			panic(NewProgrammingError("argument names must not contain spaces"))
		}
		cleaned = append(cleaned, name)
	}
	if len(cleaned) == 0 {
		panic(NewProgrammingError("an argument must have a name"))
	}

	dashed := 0
	for _, name := range cleaned {
		if strings.HasPrefix(name, "-") {
			dashed++
		}
	}

	opt := &option{slot: slot, flagValue: "1", isSlice: isSlice}

	switch {
	case dashed == 0:
		opt.longName = cleaned[0]
		if isSlice {
			opt.setMinArgs(0)
		} else {
			opt.setNArgs(1)
		}
		// Positionals are mandatory by position, so an active exclusive
		// group cannot apply to them and is ignored.
		if p.activeGroup != nil && !p.activeGroup.exclusive {
			opt.group = p.activeGroup
		}
		p.positionals = append(p.positionals, opt)
	case dashed == len(cleaned):
		p.setOptionNames(opt, cleaned)
		if p.activeGroup != nil {
			opt.group = p.activeGroup
		}
		p.options = append(p.options, opt)
	default:
		panic(NewProgrammingError("the argument must be either positional or an option"))
	}

	return &OptionConfig{opt: opt}
}

func (p *Parser) setOptionNames(opt *option, names []string) {
	for _, name := range names {
		if name == "-" || name == "--" {
			continue
		}
		if strings.HasPrefix(name, "--") {
			opt.longName = name
		} else {
			if len(name) > 2 {
				panic(NewProgrammingError("short option name has too many characters"))
			}
			opt.shortName = name
		}
	}
	if opt.name() == "" {
		panic(NewProgrammingError("an option must have a name"))
	}
}

// AddHelpOption registers a reserved option whose presence anywhere in the
// token list short-circuits parsing. Without names it registers --help and
// -h; if it is never called, the default help option is registered
// implicitly before the first parse.
func (p *Parser) AddHelpOption(names ...string) *OptionConfig {
	if len(names) == 0 {
		names = []string{"--help", "-h"}
	}
	for _, name := range names {
		if name != "" && !strings.HasPrefix(name, "-") {
			panic(NewProgrammingError("a help argument must be an option"))
		}
	}
	cfg := p.AddArgument(voidValue{}, names...).SetHelp("Print this help message and exit.")
	for _, name := range names {
		if name != "" {
			p.helpNames = append(p.helpNames, name)
		}
	}
	return cfg
}

// AddGroup finds or creates a non-exclusive group and makes it active:
// options registered until EndGroup join it.
func (p *Parser) AddGroup(name string) *GroupConfig {
	return p.addGroup(name, false)
}

// AddExclusiveGroup is AddGroup for groups of which at most one member may
// be assigned.
func (p *Parser) AddExclusiveGroup(name string) *GroupConfig {
	return p.addGroup(name, true)
}

func (p *Parser) addGroup(name string, exclusive bool) *GroupConfig {
	key := strings.ToLower(name)
	if group, ok := p.groups[key]; ok {
		if group.exclusive != exclusive {
			panic(NewProgrammingError(fmt.Sprintf("mixing group types in group %q", name)))
		}
		p.activeGroup = group
		return &GroupConfig{group: group}
	}
	group := &optionGroup{name: key, exclusive: exclusive}
	p.groups[key] = group
	p.activeGroup = group
	return &GroupConfig{group: group}
}

func (p *Parser) EndGroup() {
	p.activeGroup = nil
}

// ParseArgs consumes an already-tokenized argument sequence and returns the
// bound values' parse report. The error result is non-nil only in the
// OnExitThrow mode, when a terminating condition such as a help request
// occurred.
func (p *Parser) ParseArgs(args []string) (*ParseResult, error) {
	p.activeGroup = nil
	if len(p.helpNames) == 0 {
		p.AddHelpOption()
	}

	p.verifyDefinedOptions()
	p.resetValues()
	p.activeCommand = ""

	for _, arg := range args {
		if contains(p.helpNames, arg) {
			p.generateHelp()
			return p.exitParser(arg, HelpRequested)
		}
	}

	state := &parserState{parser: p}
	result, err := state.parse(args)
	if err != nil {
		return nil, err
	}

	p.reportMissingOptions(result)
	p.reportExclusiveViolations(result)
	p.reportMissingGroups(result)
	return result, nil
}

// A required option inside an exclusive group can never be satisfied, so it
// is rejected before any token is scanned.
func (p *Parser) verifyDefinedOptions() {
	for _, opt := range p.options {
		if opt.required && opt.group != nil && opt.group.exclusive {
			panic(NewProgrammingError(fmt.Sprintf(
				"option %q is required in exclusive group %q", opt.name(), opt.group.name)))
		}
	}
}

func (p *Parser) resetValues() {
	for _, opt := range p.options {
		opt.slot.reset()
	}
	for _, opt := range p.positionals {
		opt.slot.reset()
	}
}

func (p *Parser) findOption(name string) *option {
	for _, opt := range p.options {
		if opt.hasName(name) {
			return opt
		}
	}
	return nil
}

func (p *Parser) reportMissingOptions(result *ParseResult) {
	for _, opt := range p.options {
		if opt.required && !opt.wasAssigned() {
			result.Errors = append(result.Errors, ParseError{opt.name(), MissingOption})
		}
	}
	for _, opt := range p.positionals {
		if opt.needsMoreArguments() {
			result.Errors = append(result.Errors, ParseError{opt.name(), MissingArgument})
		}
	}
}

func (p *Parser) reportExclusiveViolations(result *ParseResult) {
	assigned := make(map[string][]string)
	for _, opt := range p.options {
		if opt.group != nil && opt.group.exclusive && opt.wasAssigned() {
			assigned[opt.group.name] = append(assigned[opt.group.name], opt.name())
		}
	}

	for _, name := range sortedKeys(assigned) {
		if members := assigned[name]; len(members) > 1 {
			// Keyed by the first assigned member in registration order.
			result.Errors = append(result.Errors, ParseError{members[0], ExclusiveOption})
		}
	}
}

func (p *Parser) reportMissingGroups(result *ParseResult) {
	counts := make(map[string]int)
	for _, opt := range p.options {
		if opt.group != nil && opt.group.required {
			if _, ok := counts[opt.group.name]; !ok {
				counts[opt.group.name] = 0
			}
			if opt.wasAssigned() {
				counts[opt.group.name]++
			}
		}
	}

	for _, name := range sortedKeys(counts) {
		if counts[name] < 1 {
			result.Errors = append(result.Errors, ParseError{name, MissingOptionGroup})
		}
	}
}

func (p *Parser) generateHelp() {
	out := p.config.output
	if out == nil {
		out = stdoutWriter
	}
	fmt.Fprint(out, p.GenerateUsage())
}

func (p *Parser) exitParser(arg string, code ErrorCode) (*ParseResult, error) {
	switch p.config.exitMode {
	case ExitThrow:
		return nil, &TerminationError{Arg: arg, Code: code}
	case ExitReturn:
		return &ParseResult{Errors: []ParseError{{Option: arg, Code: code}}}, nil
	default:
		osExit(0)
		// Reached only when the exit hook was overridden.
		return &ParseResult{Errors: []ParseError{{Option: arg, Code: code}}}, nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
