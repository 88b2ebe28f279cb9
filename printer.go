package clix

import (
	"io"
	"strings"

	"github.com/clix-go/clix/internal/help"
)

// Printer renders a command definition and a raised diagnostic or signal.
// The parsing core never prints; a Printer is the external collaborator
// that does.
type Printer interface {
	PrintError(w io.Writer, cmd *Command, err error)
	PrintHelp(w io.Writer, cmd *Command)
	PrintVersion(w io.Writer, cmd *Command)
}

// SuperPrinter renders for a SuperCommand.
type SuperPrinter interface {
	PrintSuperError(w io.Writer, cmd *SuperCommand, err error)
	PrintSuperHelp(w io.Writer, cmd *SuperCommand)
	PrintSuperVersion(w io.Writer, cmd *SuperCommand)
}

// StylePrinter is the default Printer and SuperPrinter, rendering styled
// terminal output.
type StylePrinter struct {
	styles help.Styles
}

// NewPrinter returns a StylePrinter with the default styles.
func NewPrinter() *StylePrinter {
	return &StylePrinter{styles: help.DefaultStyles()}
}

// PrintHelp implements Printer.
func (p *StylePrinter) PrintHelp(w io.Writer, cmd *Command) {
	help.RenderHelp(w, p.styles, commandPage(cmd))
}

// PrintVersion implements Printer.
func (p *StylePrinter) PrintVersion(w io.Writer, cmd *Command) {
	help.RenderVersion(w, p.styles, cmd.Name, cmd.Version)
}

// PrintError implements Printer.
func (p *StylePrinter) PrintError(w io.Writer, cmd *Command, err error) {
	help.RenderError(w, p.styles, usageLine(cmd), helpHint(cmd.OptionGroups()), err.Error())
}

// PrintSuperHelp implements SuperPrinter.
func (p *StylePrinter) PrintSuperHelp(w io.Writer, cmd *SuperCommand) {
	help.RenderHelp(w, p.styles, superPage(cmd))
}

// PrintSuperVersion implements SuperPrinter.
func (p *StylePrinter) PrintSuperVersion(w io.Writer, cmd *SuperCommand) {
	help.RenderVersion(w, p.styles, cmd.Name, cmd.Version)
}

// PrintSuperError implements SuperPrinter.
func (p *StylePrinter) PrintSuperError(w io.Writer, cmd *SuperCommand, err error) {
	help.RenderError(w, p.styles, superUsageLine(cmd), helpHint(cmd.OptionGroups()), err.Error())
}

func commandPage(cmd *Command) help.Page {
	page := help.Page{
		Usage:       usageLine(cmd),
		Description: cmd.Description,
	}

	for _, g := range cmd.ArgumentGroups() {
		section := help.Section{Title: g.Title}

		for _, a := range g.Arguments {
			if a.Hidden {
				continue
			}

			section.Rows = append(section.Rows, help.Row{
				Term: argumentUsage(a),
				Desc: a.Help,
			})
		}

		page.Sections = append(page.Sections, section)
	}

	page.Sections = append(page.Sections, optionSections(cmd.OptionGroups())...)

	return page
}

func superPage(cmd *SuperCommand) help.Page {
	page := help.Page{
		Usage:       superUsageLine(cmd),
		Description: cmd.Description,
	}

	commands := help.Section{Title: "Commands"}
	for _, sub := range cmd.Commands() {
		commands.Rows = append(commands.Rows, help.Row{Term: sub.Name, Desc: sub.Description})
	}

	page.Sections = append(page.Sections, commands)
	page.Sections = append(page.Sections, optionSections(cmd.OptionGroups())...)

	return page
}

func optionSections(groups []*OptionGroup) []help.Section {
	sections := make([]help.Section, 0, len(groups))

	for _, g := range groups {
		section := help.Section{Title: g.Title}

		for _, o := range g.Options {
			m := o.meta()
			if m.hidden {
				continue
			}

			section.Rows = append(section.Rows, help.Row{
				Term:        strings.Join(m.decls, ", "),
				Placeholder: optionPlaceholder(m),
				Desc:        m.help,
			})
		}

		sections = append(sections, section)
	}

	return sections
}

func optionPlaceholder(m *optionMeta) string {
	if m.nargs == 0 {
		return ""
	}

	placeholder := m.metavar
	if placeholder == "" {
		placeholder = strings.ToUpper(m.dest)
	}

	if m.nargs > 1 {
		placeholder += "..."
	}

	return placeholder
}

func argumentUsage(a *Argument) string {
	usage := "<" + a.metavar() + ">"
	if a.variadic() {
		usage += "..."
	}

	if !a.Required {
		usage = "[" + usage + "]"
	}

	return usage
}

func usageLine(cmd *Command) string {
	parts := []string{cmd.Name}

	if len(cmd.OptionGroups()) > 0 {
		parts = append(parts, "[OPTIONS]")
	}

	for _, g := range cmd.ArgumentGroups() {
		for _, a := range g.Arguments {
			if !a.Hidden {
				parts = append(parts, argumentUsage(a))
			}
		}
	}

	return strings.Join(parts, " ")
}

func superUsageLine(cmd *SuperCommand) string {
	parts := []string{cmd.Name}

	if len(cmd.OptionGroups()) > 0 {
		parts = append(parts, "[OPTIONS]")
	}

	parts = append(parts, "COMMAND", "[ARGS]...")

	return strings.Join(parts, " ")
}

// helpHint names the first visible help option, e.g. "Try '--help' for
// more information.".
func helpHint(groups []*OptionGroup) string {
	for _, g := range groups {
		for _, o := range g.Options {
			m := o.meta()
			if m.sig != SignalHelp || m.hidden {
				continue
			}

			spelling := m.decls[0]
			if len(m.long) > 0 {
				spelling = m.long[0]
			}

			return "Try '" + spelling + "' for more information."
		}
	}

	return ""
}
