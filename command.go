package clix

import (
	"errors"
	"os"
)

// Command is an immutable CLI definition: argument groups and option
// groups assembled once at startup. Parse never mutates the definition, so
// one Command is safe for any number of concurrent Parse calls.
type Command struct {
	Name        string
	Version     string
	Description string

	argGroups []*ArgumentGroup
	optGroups []*OptionGroup
}

// NewCommand creates a command definition.
func NewCommand(name, version string) *Command {
	if name == "" {
		definitionPanic("command requires a name")
	}

	return &Command{Name: name, Version: version}
}

// AddArgumentGroup creates, attaches, and returns a titled argument group
// for chained Add calls.
func (c *Command) AddArgumentGroup(title string) *ArgumentGroup {
	g := NewArgumentGroup(title)
	c.argGroups = append(c.argGroups, g)

	return g
}

// AddOptionGroup creates, attaches, and returns a titled option group with
// the given cardinality constraint.
func (c *Command) AddOptionGroup(title string, typ GroupType) *OptionGroup {
	g := NewOptionGroup(title, typ)
	c.optGroups = append(c.optGroups, g)

	return g
}

// AttachArgumentGroup attaches a prebuilt argument group. Chainable.
func (c *Command) AttachArgumentGroup(g *ArgumentGroup) *Command {
	if g == nil {
		definitionPanic("command %s: nil argument group", c.Name)
	}

	c.argGroups = append(c.argGroups, g)

	return c
}

// AttachOptionGroup attaches a prebuilt option group. Chainable.
func (c *Command) AttachOptionGroup(g *OptionGroup) *Command {
	if g == nil {
		definitionPanic("command %s: nil option group", c.Name)
	}

	c.optGroups = append(c.optGroups, g)

	return c
}

// ArgumentGroups returns the attached argument groups in declaration
// order.
func (c *Command) ArgumentGroups() []*ArgumentGroup { return c.argGroups }

// OptionGroups returns the attached option groups in declaration order.
func (c *Command) OptionGroups() []*OptionGroup { return c.optGroups }

// Parse matches argv (the process arguments without the program name)
// against the definition. It returns a Result on success or signal, or
// exactly one diagnostic from the taxonomy. The core never prints and
// never terminates the process.
func (c *Command) Parse(argv []string) (*Result, error) {
	s := newSession(c.argGroups, c.optGroups, argv)

	if err := s.run(); err != nil {
		return nil, err
	}

	return s.res, nil
}

// Run is the main() convenience: it parses argv, renders diagnostics and
// signals through the default printer, and exits with the taxonomy's exit
// code for anything but plain success.
func (c *Command) Run(argv []string) *Result {
	printer := NewPrinter()

	res, err := c.Parse(argv)
	if err != nil {
		printer.PrintError(os.Stderr, c, err)
		osExit(exitCodeOf(err))

		return nil
	}

	switch res.Signal {
	case SignalHelp:
		printer.PrintHelp(os.Stdout, c)
		osExit(0)
	case SignalVersion:
		printer.PrintVersion(os.Stdout, c)
		osExit(0)
	case SignalNone:
	}

	return res
}

// osExit is swapped out in tests.
var osExit = os.Exit

func exitCodeOf(err error) int {
	var diag Diagnostic
	if errors.As(err, &diag) {
		return diag.ExitCode()
	}

	return 1
}

// SuperCommand is a CLI definition with subcommands: it owns option groups
// of its own plus a registry of named subcommands. Parsing scans the super
// command's options until the first positional token, which selects the
// subcommand; the rest of argv is parsed by that subcommand. The selected
// name is recorded in the result under CommandNameDest.
//
// A SuperCommand only selects; running the chosen command's business logic
// is the caller's job.
type SuperCommand struct {
	Name        string
	Version     string
	Description string

	optGroups []*OptionGroup
	names     []string
	commands  map[string]*Command
}

// NewSuperCommand creates a super command definition.
func NewSuperCommand(name, version string) *SuperCommand {
	if name == "" {
		definitionPanic("command requires a name")
	}

	return &SuperCommand{
		Name:     name,
		Version:  version,
		commands: make(map[string]*Command),
	}
}

// AddOptionGroup creates, attaches, and returns a titled option group for
// the super command's own options.
func (sc *SuperCommand) AddOptionGroup(title string, typ GroupType) *OptionGroup {
	g := NewOptionGroup(title, typ)
	sc.optGroups = append(sc.optGroups, g)

	return g
}

// AddCommand registers a subcommand under its name.
func (sc *SuperCommand) AddCommand(cmd *Command) *SuperCommand {
	if cmd == nil {
		definitionPanic("command %s: nil subcommand", sc.Name)
	}

	if _, exists := sc.commands[cmd.Name]; exists {
		definitionPanic("command %s: subcommand %q conflicts", sc.Name, cmd.Name)
	}

	sc.names = append(sc.names, cmd.Name)
	sc.commands[cmd.Name] = cmd

	return sc
}

// Commands returns the registered subcommands in registration order.
func (sc *SuperCommand) Commands() []*Command {
	out := make([]*Command, len(sc.names))
	for i, name := range sc.names {
		out[i] = sc.commands[name]
	}

	return out
}

// OptionGroups returns the super command's own option groups.
func (sc *SuperCommand) OptionGroups() []*OptionGroup { return sc.optGroups }

// Parse scans the super command's own options, selects the subcommand
// named by the first positional token, and delegates the remaining argv to
// it. The merged result holds the subcommand's bindings, the super
// command's own bindings, and the selected name.
func (sc *SuperCommand) Parse(argv []string) (*Result, error) {
	s := newSession(nil, sc.optGroups, argv)
	s.stopAtPositional = true

	if err := s.run(); err != nil {
		return nil, err
	}

	if s.res.Signal != SignalNone {
		return s.res, nil
	}

	if s.command == "" {
		return nil, &TooFewArgumentsError{Argument: "command"}
	}

	sub, ok := sc.commands[s.command]
	if !ok {
		return nil, &UnknownCommandError{Command: s.command}
	}

	res, err := sub.Parse(s.rest)
	if err != nil {
		return nil, err
	}

	for dest, value := range s.res.values {
		if _, exists := res.values[dest]; !exists {
			res.values[dest] = value
		}
	}

	res.values[CommandNameDest] = s.command

	return res, nil
}

// Run is the main() convenience for a super command, mirroring
// Command.Run. Help raised by a subcommand renders that subcommand's help.
func (sc *SuperCommand) Run(argv []string) *Result {
	printer := NewPrinter()

	res, err := sc.Parse(argv)
	if err != nil {
		printer.PrintSuperError(os.Stderr, sc, err)
		osExit(exitCodeOf(err))

		return nil
	}

	switch res.Signal {
	case SignalHelp:
		if sub, ok := sc.commands[res.CommandName()]; ok {
			printer.PrintHelp(os.Stdout, sub)
		} else {
			printer.PrintSuperHelp(os.Stdout, sc)
		}

		osExit(0)
	case SignalVersion:
		printer.PrintSuperVersion(os.Stdout, sc)
		osExit(0)
	case SignalNone:
	}

	return res
}
