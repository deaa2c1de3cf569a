package argumentum

import (
	"fmt"
	"os"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/amterp/color"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	cyan       = color.New(color.FgCyan)
	bold       = color.New(color.Bold)
	greenBoldS = greenBold.SprintfFunc()
	cyanS      = cyan.SprintfFunc()
	boldS      = bold.SprintfFunc()
)

func initializeColorFromEnv() {
	colorValue := strings.ToLower(strings.TrimSpace(os.Getenv("ARGUMENTUM_COLOR")))
	switch colorValue {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	default:
		// auto: let the color package decide based on tty
	}
}

func usageWidth() uint {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 20 {
			return uint(width)
		}
	}
	return 80
}

// GenerateUsage renders the full help text from the registered argument
// descriptions: synopsis, description, positionals, options with group
// annotations, commands and epilog.
func (p *Parser) GenerateUsage() string {
	initializeColorFromEnv()
	width := usageWidth()

	var sb strings.Builder

	sb.WriteString(greenBoldS("Usage:") + " " + p.generateSynopsis() + "\n")

	if p.config.description != "" {
		sb.WriteString("\n" + wordwrap.WrapString(p.config.description, width) + "\n")
	}

	if len(p.positionals) > 0 {
		sb.WriteString("\n" + greenBoldS("Arguments:") + "\n")
		for _, opt := range p.positionals {
			sb.WriteString(formatArgumentLine(describeOption(opt)))
		}
	}

	if len(p.options) > 0 {
		sb.WriteString("\n" + greenBoldS("Options:") + "\n")
		for _, opt := range p.options {
			sb.WriteString(formatArgumentLine(describeOption(opt)))
		}
	}

	if len(p.commandOrder) > 0 {
		sb.WriteString("\n" + greenBoldS("Commands:") + "\n")
		for _, name := range p.commandOrder {
			cmd := p.commands[name]
			if cmd.help != "" {
				sb.WriteString(fmt.Sprintf("  %-30s%s\n", boldS(name), cmd.help))
			} else {
				sb.WriteString(fmt.Sprintf("  %s\n", boldS(name)))
			}
		}
	}

	if p.config.epilog != "" {
		sb.WriteString("\n" + wordwrap.WrapString(p.config.epilog, width) + "\n")
	}

	return sb.String()
}

func (p *Parser) generateSynopsis() string {
	if p.config.usage != "" {
		return p.config.usage
	}

	program := p.config.program
	if program == "" {
		program = os.Args[0]
	}

	parts := []string{boldS(program)}
	if len(p.options) > 0 {
		parts = append(parts, "[OPTIONS]")
	}
	if len(p.commandOrder) > 0 {
		parts = append(parts, "[COMMAND]")
	}
	for _, opt := range p.positionals {
		synopsis := argumentsSynopsis(opt)
		if synopsis == "" {
			synopsis = opt.getMetavar()
		}
		parts = append(parts, synopsis)
	}
	return strings.Join(parts, " ")
}

func formatArgumentLine(desc ArgumentDescription) string {
	names := desc.LongName
	if desc.ShortName != "" {
		if names == "" {
			names = desc.ShortName
		} else {
			names = desc.ShortName + ", " + names
		}
	}
	if desc.Arguments != "" {
		names += " " + desc.Arguments
	}

	help := desc.Help
	if desc.Required {
		help = strings.TrimSpace(help + " (required)")
	}
	if desc.Group.Name != "" {
		annotation := "group: " + desc.Group.Name
		if desc.Group.Exclusive {
			annotation += ", exclusive"
		}
		if desc.Group.Required {
			annotation += ", required"
		}
		help = strings.TrimSpace(help + " [" + annotation + "]")
	}

	if help == "" {
		return fmt.Sprintf("  %s\n", cyanS(names))
	}
	// The color codes are invisible but count toward Sprintf padding, so
	// pad the plain text first.
	padded := fmt.Sprintf("%-30s", names)
	return fmt.Sprintf("  %s%s\n", strings.Replace(padded, names, cyanS(names), 1), help)
}

// FormatErrors renders a parse result's errors as human-readable lines.
// Unknown options get a "did you mean" suggestion when a registered name is
// close enough.
func (p *Parser) FormatErrors(result *ParseResult) string {
	initializeColorFromEnv()

	var sb strings.Builder
	for _, parseErr := range result.Errors {
		switch parseErr.Code {
		case UnknownOption:
			sb.WriteString(fmt.Sprintf("unknown option: %s", boldS(parseErr.Option)))
			if suggestion := p.suggestOption(parseErr.Option); suggestion != "" {
				sb.WriteString(fmt.Sprintf(" (did you mean %s?)", boldS(suggestion)))
			}
		case ExclusiveOption:
			sb.WriteString(fmt.Sprintf("option %s excludes other options from its group", boldS(parseErr.Option)))
		case MissingOption:
			sb.WriteString(fmt.Sprintf("missing required option: %s", boldS(parseErr.Option)))
		case MissingOptionGroup:
			sb.WriteString(fmt.Sprintf("at least one option from group %s is required", boldS(parseErr.Option)))
		case MissingArgument:
			sb.WriteString(fmt.Sprintf("missing argument for %s", boldS(parseErr.Option)))
		case ConversionError:
			sb.WriteString(fmt.Sprintf("invalid value for %s", boldS(parseErr.Option)))
		case InvalidChoice:
			sb.WriteString(fmt.Sprintf("value for %s is not a valid choice", boldS(parseErr.Option)))
		case FlagParameter:
			sb.WriteString(fmt.Sprintf("flag %s does not accept a parameter", boldS(parseErr.Option)))
		case HelpRequested:
			sb.WriteString("help requested")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// maxSuggestDistance bounds how far a registered name may be from the
// unknown one before suggesting it.
const maxSuggestDistance = 2

func (p *Parser) suggestOption(name string) string {
	name = stripDashes(name)
	best := ""
	bestDistance := maxSuggestDistance + 1

	for _, opt := range p.options {
		for _, candidate := range []string{opt.longName, opt.shortName} {
			if candidate == "" {
				continue
			}
			distance := levenshtein.Distance(name, stripDashes(candidate), nil)
			if distance < bestDistance {
				bestDistance = distance
				best = candidate
			}
		}
	}
	return best
}
