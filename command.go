package argumentum

import (
	"fmt"
	"strings"
)

// Command is a named token that selects a nested parser. When the token is
// encountered as a free argument, the factory populates a freshly built
// Parser which consumes every remaining token. Only one command can be
// dispatched per parse.
type Command struct {
	name    string
	help    string
	factory func(*Parser)
}

// CommandConfig configures a command after AddCommand.
type CommandConfig struct {
	cmd *Command
}

func (c *CommandConfig) SetHelp(help string) *CommandConfig {
	c.cmd.help = help
	return c
}

// AddCommand registers a sub-command. The factory is called once per parse
// that dispatches to the command, so registrations inside it start from a
// clean registry every time.
func (p *Parser) AddCommand(name string, factory func(*Parser)) *CommandConfig {
	if name == "" || strings.HasPrefix(name, "-") {
		panic(NewProgrammingError(fmt.Sprintf("invalid command name %q", name)))
	}
	if factory == nil {
		panic(NewProgrammingError(fmt.Sprintf("command %q has no factory", name)))
	}
	if _, exists := p.commands[name]; exists {
		panic(NewProgrammingError(fmt.Sprintf("command %q already defined", name)))
	}

	cmd := &Command{name: name, factory: factory}
	p.commands[name] = cmd
	p.commandOrder = append(p.commandOrder, name)
	return &CommandConfig{cmd: cmd}
}

// ActiveCommand returns the name of the command dispatched by the last
// ParseArgs call, or an empty string.
func (p *Parser) ActiveCommand() string {
	return p.activeCommand
}
