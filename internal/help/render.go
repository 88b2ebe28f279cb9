package help

import (
	"fmt"
	"io"
	"strings"
)

// Row is one two-column entry: a term (argument name or option spellings),
// an optional value placeholder, and a description.
type Row struct {
	Term        string
	Placeholder string
	Desc        string
}

// Section is a titled block of rows, one per declaration group.
type Section struct {
	Title string
	Rows  []Row
}

// Page is the flattened view of a command that help output is rendered
// from.
type Page struct {
	Usage       string
	Description string
	Sections    []Section
}

const gutter = 2

// RenderHelp writes full help output: usage, description, then each
// section as an aligned two-column table.
func RenderHelp(w io.Writer, st Styles, p Page) {
	fmt.Fprintf(w, "%s %s\n", st.Header.Render("Usage:"), p.Usage)

	if p.Description != "" {
		fmt.Fprintf(w, "\n%s\n", p.Description)
	}

	for _, section := range p.Sections {
		if len(section.Rows) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s\n", st.Header.Render(section.Title+":"))
		renderRows(w, st, section.Rows)
	}
}

// RenderError writes the one-line usage error: usage, a help hint, then
// the error itself.
func RenderError(w io.Writer, st Styles, usage, hint, msg string) {
	fmt.Fprintf(w, "%s %s\n", st.Header.Render("Usage:"), usage)

	if hint != "" {
		fmt.Fprintln(w, hint)
	}

	fmt.Fprintf(w, "\n%s %s\n", st.Error.Render("Error:"), msg)
}

// RenderVersion writes the "name version" line.
func RenderVersion(w io.Writer, st Styles, name, version string) {
	if version == "" {
		fmt.Fprintln(w, name)

		return
	}

	fmt.Fprintf(w, "%s %s\n", name, version)
}

func renderRows(w io.Writer, st Styles, rows []Row) {
	// Column width is computed on plain text; styling is applied after.
	width := 0

	for _, row := range rows {
		if n := len(plainTerm(row)); n > width {
			width = n
		}
	}

	for _, row := range rows {
		term := st.Term.Render(row.Term)
		if row.Placeholder != "" {
			term += " " + st.Placeholder.Render(row.Placeholder)
		}

		pad := strings.Repeat(" ", width-len(plainTerm(row))+gutter)

		if row.Desc == "" {
			fmt.Fprintf(w, "  %s\n", term)
		} else {
			fmt.Fprintf(w, "  %s%s%s\n", term, pad, row.Desc)
		}
	}
}

func plainTerm(row Row) string {
	if row.Placeholder == "" {
		return row.Term
	}

	return row.Term + " " + row.Placeholder
}
