package clix_test

import (
	"strings"
	"testing"

	"github.com/clix-go/clix"
	"github.com/clix-go/clix/internal/help"
)

func TestPrintHelp(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("copy", "1.0.0")
	cmd.Description = "Copy files."
	cmd.AddArgumentGroup("Arguments").
		Add(&clix.Argument{Name: "source", Required: true, Help: "File to copy."}).
		Add(&clix.Argument{Name: "dest", Help: "Where it goes."}).
		Add(&clix.Argument{Name: "internal", Hidden: true})
	cmd.AddOptionGroup("Options", clix.GroupAny).
		Add(&clix.FlagOption{Decls: []string{"--force", "-f"}, Help: "Overwrite."}).
		Add(&clix.Option{Decls: []string{"--mode"}, Metavar: "MODE"}).
		Add(clix.HelpOption())

	var buf strings.Builder

	clix.NewPrinter().PrintHelp(&buf, cmd)

	out := help.StripANSI(buf.String())

	for _, want := range []string{
		"Usage: copy [OPTIONS] <source> [<dest>]",
		"Copy files.",
		"Arguments:",
		"<source>",
		"File to copy.",
		"Options:",
		"--force, -f",
		"--mode MODE",
		"--help, -h",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "internal") {
		t.Errorf("hidden argument rendered:\n%s", out)
	}
}

func TestPrintError(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("copy", "1.0.0")
	cmd.AddOptionGroup("Options", clix.GroupAny).Add(clix.HelpOption())

	_, err := cmd.Parse([]string{"--bogus"})
	if err == nil {
		t.Fatal("expected a diagnostic")
	}

	var buf strings.Builder

	clix.NewPrinter().PrintError(&buf, cmd, err)

	out := help.StripANSI(buf.String())

	for _, want := range []string{
		"Usage: copy [OPTIONS]",
		"Try '--help' for more information.",
		`Error: unknown option "--bogus"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("error output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()

	var buf strings.Builder

	clix.NewPrinter().PrintVersion(&buf, clix.NewCommand("copy", "1.0.0"))

	if got := buf.String(); got != "copy 1.0.0\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestPrintSuperHelp(t *testing.T) {
	t.Parallel()

	sc := newTestSuperCommand()

	var buf strings.Builder

	clix.NewPrinter().PrintSuperHelp(&buf, sc)

	out := help.StripANSI(buf.String())

	for _, want := range []string{
		"Usage: ctl [OPTIONS] COMMAND [ARGS]...",
		"Commands:",
		"start",
		"Start a service.",
		"stop",
		"Global Options:",
		"--debug",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("super help missing %q:\n%s", want, out)
		}
	}
}
