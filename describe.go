package argumentum

import (
	"fmt"
	"strings"
)

// GroupDescription is the read-only view of an option's group membership.
type GroupDescription struct {
	Name      string
	Exclusive bool
	Required  bool
}

// ArgumentDescription is the read-only view of one registered argument,
// consumed by help formatting. Arguments holds the synopsis of the accepted
// argument counts, e.g. "N [N ...]".
type ArgumentDescription struct {
	ShortName string
	LongName  string
	Help      string
	Required  bool
	Arguments string
	Group     GroupDescription
}

// DescribeArgument describes the option or positional known under name.
// Dashed names are resolved against options, bare names against
// positionals.
func (p *Parser) DescribeArgument(name string) (ArgumentDescription, error) {
	args := p.positionals
	if strings.HasPrefix(name, "-") {
		args = p.options
	}
	for _, opt := range args {
		if opt.hasName(name) {
			return describeOption(opt), nil
		}
	}
	return ArgumentDescription{}, fmt.Errorf("unknown option %q", name)
}

// DescribeArguments describes every registered option and positional,
// options first, in registration order.
func (p *Parser) DescribeArguments() []ArgumentDescription {
	descriptions := make([]ArgumentDescription, 0, len(p.options)+len(p.positionals))
	for _, opt := range p.options {
		descriptions = append(descriptions, describeOption(opt))
	}
	for _, opt := range p.positionals {
		descriptions = append(descriptions, describeOption(opt))
	}
	return descriptions
}

func describeOption(opt *option) ArgumentDescription {
	desc := ArgumentDescription{
		ShortName: opt.shortName,
		LongName:  opt.longName,
		Help:      opt.help,
		Required:  opt.required,
	}

	if opt.acceptsArguments() {
		desc.Arguments = argumentsSynopsis(opt)
	}

	if opt.group != nil {
		desc.Group = GroupDescription{
			Name:      opt.group.name,
			Exclusive: opt.group.exclusive,
			Required:  opt.group.required,
		}
	}

	return desc
}

func argumentsSynopsis(opt *option) string {
	metavar := opt.getMetavar()
	var sb strings.Builder

	for i := 0; i < opt.minArgs; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(metavar)
	}

	switch {
	case opt.maxArgs < opt.minArgs: // unbounded
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("[" + metavar + " ...]")
	case opt.maxArgs-opt.minArgs == 1:
		sb.WriteString("[" + metavar + "]")
	case opt.maxArgs > opt.minArgs:
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("[%s {0..%d}]", metavar, opt.maxArgs-opt.minArgs))
	}

	return sb.String()
}
