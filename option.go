package argumentum

import "strings"

// AssignAction runs before a value is written to its slot. It returns the
// value to write, or ok=false to suppress the write entirely.
type AssignAction func(value string) (newValue string, ok bool)

type option struct {
	slot      *valueSlot
	action    AssignAction
	shortName string // with leading "-", e.g. "-v"
	longName  string // with leading "--", e.g. "--verbose"
	metavar   string
	help      string
	flagValue string
	choices   []string
	group     *optionGroup
	minArgs   int
	maxArgs   int // -1 means unbounded
	required  bool
	isSlice   bool
}

// name returns the canonical name without dash prefixes, preferring the
// long name. Parse errors are keyed by it.
func (o *option) name() string {
	if o.longName != "" {
		return strings.TrimLeft(o.longName, "-")
	}
	return strings.TrimLeft(o.shortName, "-")
}

func (o *option) hasName(name string) bool {
	return name != "" && (name == o.shortName || name == o.longName)
}

func (o *option) setNArgs(count int) {
	o.minArgs = max(0, count)
	o.maxArgs = o.minArgs
}

func (o *option) setMinArgs(count int) {
	o.minArgs = max(0, count)
	o.maxArgs = -1
}

func (o *option) setMaxArgs(count int) {
	o.minArgs = 0
	o.maxArgs = max(0, count)
}

// acceptsArguments reports whether the option takes explicit arguments at
// all; maxArgs == 0 makes it a pure flag.
func (o *option) acceptsArguments() bool {
	return o.minArgs > 0 || o.maxArgs != 0
}

func (o *option) willAcceptArgument() bool {
	return o.maxArgs < 0 || o.slot.optionAssigns < o.maxArgs
}

func (o *option) needsMoreArguments() bool {
	return o.slot.optionAssigns < o.minArgs
}

// wasAssigned reports whether the value was assigned through any activation
// of this option, under any of its names.
func (o *option) wasAssigned() bool {
	return o.slot.assigns > 0
}

func (o *option) wasAssignedThroughThisOption() bool {
	return o.slot.optionAssigns > 0
}

func (o *option) getMetavar() string {
	if o.metavar != "" {
		return o.metavar
	}
	return strings.ToUpper(o.name())
}

func (o *option) setValue(value string) error {
	if len(o.choices) > 0 && !contains(o.choices, value) {
		o.slot.markBadArgument()
		return errInvalidChoice
	}
	if o.action != nil {
		newValue, ok := o.action(value)
		if !ok {
			return nil
		}
		value = newValue
	}
	return o.slot.setValue(value)
}

// OptionConfig configures an option after it was created with AddArgument.
// At most one of SetNArgs, SetMinArgs and SetMaxArgs may be called.
type OptionConfig struct {
	opt      *option
	countSet bool
}

func (c *OptionConfig) SetNArgs(count int) *OptionConfig {
	c.ensureCountNotSet()
	c.opt.setNArgs(count)
	c.countSet = true
	return c
}

func (c *OptionConfig) SetMinArgs(count int) *OptionConfig {
	c.ensureCountNotSet()
	c.opt.setMinArgs(count)
	c.countSet = true
	return c
}

func (c *OptionConfig) SetMaxArgs(count int) *OptionConfig {
	c.ensureCountNotSet()
	c.opt.setMaxArgs(count)
	c.countSet = true
	return c
}

func (c *OptionConfig) SetRequired(required bool) *OptionConfig {
	c.opt.required = required
	return c
}

// SetFlagValue sets the string substituted when the option is present
// without an explicit argument. The default is "1".
func (c *OptionConfig) SetFlagValue(value string) *OptionConfig {
	c.opt.flagValue = value
	return c
}

func (c *OptionConfig) SetChoices(choices ...string) *OptionConfig {
	c.opt.choices = choices
	return c
}

func (c *OptionConfig) SetHelp(help string) *OptionConfig {
	c.opt.help = help
	return c
}

func (c *OptionConfig) SetMetavar(varname string) *OptionConfig {
	c.opt.metavar = varname
	return c
}

func (c *OptionConfig) SetAction(action AssignAction) *OptionConfig {
	c.opt.action = action
	return c
}

func (c *OptionConfig) ensureCountNotSet() {
	if c.countSet {
		panic(NewProgrammingError("only one of SetNArgs, SetMinArgs and SetMaxArgs can be used"))
	}
}
