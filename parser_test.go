package clix_test

import (
	"errors"
	"testing"

	"github.com/clix-go/clix"
)

// newTestCommand builds the canonical fixture: a flag, an integer option,
// and signal options.
func newTestCommand() *clix.Command {
	cmd := clix.NewCommand("tool", "1.2.3")

	cmd.AddOptionGroup("Options", clix.GroupAny).
		Add(clix.NewFlag("--verbose", "-v")).
		Add(&clix.Option{Decls: []string{"--count", "-c"}, Type: clix.Int{}}).
		Add(clix.HelpOption()).
		Add(clix.VersionOption())

	return cmd
}

func TestParseFlagAndIntOption(t *testing.T) {
	t.Parallel()

	res, err := newTestCommand().Parse([]string{"-v", "-c", "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Bool("verbose") {
		t.Error("verbose should be present")
	}

	if res.Int("count") != 3 {
		t.Errorf("count = %d, want 3", res.Int("count"))
	}
}

func TestParseMissingRequiredArgument(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddArgumentGroup("Arguments").
		Add(&clix.Argument{Name: "name", Required: true})

	_, err := cmd.Parse([]string{})

	var diag *clix.TooFewArgumentsError
	if !errors.As(err, &diag) {
		t.Fatalf("got %v, want *TooFewArgumentsError", err)
	}

	if diag.Argument != "name" {
		t.Errorf("diagnostic names %q, want name", diag.Argument)
	}
}

func TestParseSignalAbortsBeforeLaterTokens(t *testing.T) {
	t.Parallel()

	// The malformed --count value after -h is never evaluated.
	res, err := newTestCommand().Parse([]string{"-h", "--count", "bad"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Signal != clix.SignalHelp {
		t.Errorf("signal = %v, want help", res.Signal)
	}
}

func TestParseVersionSignal(t *testing.T) {
	t.Parallel()

	res, err := newTestCommand().Parse([]string{"--version"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Signal != clix.SignalVersion {
		t.Errorf("signal = %v, want version", res.Signal)
	}
}

func TestParseInvalidChoiceValue(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddOptionGroup("Options", clix.GroupAny).
		Add(&clix.Option{Decls: []string{"--mode"}, Type: clix.NewChoice("fast", "slow")})

	_, err := cmd.Parse([]string{"--mode", "turbo"})

	var diag *clix.InvalidOptionValueError
	if !errors.As(err, &diag) {
		t.Fatalf("got %v, want *InvalidOptionValueError", err)
	}

	if diag.Option != "--mode" {
		t.Errorf("diagnostic names %q, want --mode", diag.Option)
	}

	if diag.Cause.Raw != "turbo" {
		t.Errorf("diagnostic carries raw %q, want turbo", diag.Cause.Raw)
	}
}

func TestParseExactlyOneGroup(t *testing.T) {
	t.Parallel()

	newCmd := func() *clix.Command {
		cmd := clix.NewCommand("tool", "")
		cmd.AddOptionGroup("exclusive", clix.GroupExactlyOne).
			Add(clix.NewFlag("--json")).
			Add(clix.NewFlag("--yaml"))

		return cmd
	}

	t.Run("both members fails", func(t *testing.T) {
		t.Parallel()

		_, err := newCmd().Parse([]string{"--json", "--yaml"})

		var diag *clix.GroupError
		if !errors.As(err, &diag) {
			t.Fatalf("got %v, want *GroupError", err)
		}

		if diag.Group != "exclusive" || diag.Count != 2 {
			t.Errorf("diagnostic = %+v, want exclusive with count 2", diag)
		}

		if got := diag.Error(); got != `group "exclusive": at most one member expected, got 2` {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("zero members fails", func(t *testing.T) {
		t.Parallel()

		_, err := newCmd().Parse([]string{})

		var diag *clix.GroupError
		if !errors.As(err, &diag) {
			t.Fatalf("got %v, want *GroupError", err)
		}

		if got := diag.Error(); got != `group "exclusive": at least one member expected, got 0` {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("one member succeeds", func(t *testing.T) {
		t.Parallel()

		res, err := newCmd().Parse([]string{"--json"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !res.Bool("json") || res.Bool("yaml") {
			t.Error("json should be set, yaml not")
		}
	})
}

func TestParseGroupConstraints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  clix.GroupType
		argv []string
		ok   bool
	}{
		{"any with none", clix.GroupAny, nil, true},
		{"any with both", clix.GroupAny, []string{"-a", "-b"}, true},
		{"all with both", clix.GroupAll, []string{"-a", "-b"}, true},
		{"all with one", clix.GroupAll, []string{"-a"}, false},
		{"none with none", clix.GroupNone, nil, true},
		{"none with one", clix.GroupNone, []string{"-a"}, false},
		{"at least one with one", clix.GroupAtLeastOne, []string{"-b"}, true},
		{"at least one with none", clix.GroupAtLeastOne, nil, false},
		{"at most one with none", clix.GroupAtMostOne, nil, true},
		{"at most one with one", clix.GroupAtMostOne, []string{"-a"}, true},
		{"at most one with both", clix.GroupAtMostOne, []string{"-a", "-b"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := clix.NewCommand("tool", "")
			cmd.AddOptionGroup("pair", tt.typ).
				Add(clix.NewFlag("-a")).
				Add(clix.NewFlag("-b"))

			_, err := cmd.Parse(tt.argv)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !tt.ok {
				var diag *clix.GroupError
				if !errors.As(err, &diag) {
					t.Fatalf("got %v, want *GroupError", err)
				}
			}
		})
	}
}

func TestParseRepeatedOptionCountsOnceForGroups(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddOptionGroup("solo", clix.GroupAtMostOne).
		Add(&clix.CountOption{Decls: []string{"-v"}}).
		Add(clix.NewFlag("-q"))

	// Presence is per declaration, not per occurrence.
	res, err := cmd.Parse([]string{"-v", "-v", "-v"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Count("v") != 3 {
		t.Errorf("count = %d, want 3", res.Count("v"))
	}
}

func TestParseUnknownOption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want string
	}{
		{"unknown long", []string{"--nope"}, "--nope"},
		{"unknown long with value", []string{"--nope=1"}, "--nope"},
		{"unknown short", []string{"-x"}, "-x"},
		{"unknown short in cluster", []string{"-vx"}, "-x"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newTestCommand().Parse(tt.argv)

			var diag *clix.UnknownOptionError
			if !errors.As(err, &diag) {
				t.Fatalf("got %v, want *UnknownOptionError", err)
			}

			if diag.Option != tt.want {
				t.Errorf("diagnostic names %q, want %q", diag.Option, tt.want)
			}
		})
	}
}

func TestParseAttachedValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
	}{
		{"long equals", []string{"--count=3"}},
		{"long separate", []string{"--count", "3"}},
		{"short attached", []string{"-c3"}},
		{"short separate", []string{"-c", "3"}},
		{"cluster flag then attached value", []string{"-vc3"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := newTestCommand().Parse(tt.argv)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if res.Int("count") != 3 {
				t.Errorf("count = %d, want 3", res.Int("count"))
			}
		})
	}
}

func TestParseFlagRejectsAttachedValue(t *testing.T) {
	t.Parallel()

	_, err := newTestCommand().Parse([]string{"--verbose=yes"})

	var diag *clix.TooManyOptionValuesError
	if !errors.As(err, &diag) {
		t.Fatalf("got %v, want *TooManyOptionValuesError", err)
	}

	if diag.Option != "--verbose" {
		t.Errorf("diagnostic names %q, want --verbose", diag.Option)
	}
}

func TestParseMissingOptionValue(t *testing.T) {
	t.Parallel()

	_, err := newTestCommand().Parse([]string{"--count"})

	var diag *clix.TooFewOptionValuesError
	if !errors.As(err, &diag) {
		t.Fatalf("got %v, want *TooFewOptionValuesError", err)
	}
}

func TestParseMultiValueOption(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddOptionGroup("Options", clix.GroupAny).
		Add(&clix.Option{Decls: []string{"--pair"}, NArgs: 2, Type: clix.Int{}})

	res, err := cmd.Parse([]string{"--pair", "1", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pair := res.Slice("pair")
	if len(pair) != 2 || pair[0] != int64(1) || pair[1] != int64(2) {
		t.Errorf("pair = %v, want [1 2]", pair)
	}

	// The attached value counts as the first of the two.
	res, err = cmd.Parse([]string{"--pair=1", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := res.Slice("pair"); len(got) != 2 || got[1] != int64(2) {
		t.Errorf("pair = %v, want [1 2]", got)
	}

	_, err = cmd.Parse([]string{"--pair", "1"})

	var diag *clix.TooFewOptionValuesError
	if !errors.As(err, &diag) {
		t.Fatalf("got %v, want *TooFewOptionValuesError", err)
	}

	if diag.Want != 2 || diag.Got != 1 {
		t.Errorf("diagnostic = %+v, want want=2 got=1", diag)
	}
}

func TestParseAppendOption(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddOptionGroup("Options", clix.GroupAny).
		Add(&clix.AppendOption{Decls: []string{"--tag", "-t"}})

	res, err := cmd.Parse([]string{"--tag", "a", "-t", "b", "--tag=c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := res.Strings("tag")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("tags = %v, want [a b c]", got)
	}
}

func TestParseAppendOptionDefaultsToEmpty(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddOptionGroup("Options", clix.GroupAny).
		Add(&clix.AppendOption{Decls: []string{"--tag"}})

	res, err := cmd.Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := res.Slice("tag"); got == nil || len(got) != 0 {
		t.Errorf("tags = %v, want empty slice", got)
	}
}

func TestParseCountOption(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddOptionGroup("Options", clix.GroupAny).
		Add(&clix.CountOption{Decls: []string{"--verbose", "-v"}})

	res, err := cmd.Parse([]string{"-vv", "--verbose"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Count("verbose") != 3 {
		t.Errorf("count = %d, want 3", res.Count("verbose"))
	}
}

func TestParseSeparator(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddArgumentGroup("Arguments").
		Add(&clix.Argument{Name: "items", NArgs: clix.NArgsVariadic})
	cmd.AddOptionGroup("Options", clix.GroupAny).
		Add(clix.NewFlag("--verbose", "-v"))

	res, err := cmd.Parse([]string{"-v", "--", "-v", "--verbose", "--"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Bool("verbose") {
		t.Error("verbose before separator should bind")
	}

	got := res.Strings("items")
	if len(got) != 3 || got[0] != "-v" || got[1] != "--verbose" || got[2] != "--" {
		t.Errorf("items = %v, want [-v --verbose --]", got)
	}
}

func TestParseTooManyArguments(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddArgumentGroup("Arguments").
		Add(&clix.Argument{Name: "one"})

	_, err := cmd.Parse([]string{"a", "b"})

	var diag *clix.TooManyArgumentsError
	if !errors.As(err, &diag) {
		t.Fatalf("got %v, want *TooManyArgumentsError", err)
	}

	if diag.Value != "b" {
		t.Errorf("diagnostic carries %q, want b", diag.Value)
	}
}

func TestParsePositionalOrder(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddArgumentGroup("Arguments").
		Add(&clix.Argument{Name: "first"}).
		Add(&clix.Argument{Name: "second"}).
		Add(&clix.Argument{Name: "rest", NArgs: clix.NArgsVariadic})

	res, err := cmd.Parse([]string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.String("first") != "a" || res.String("second") != "b" {
		t.Errorf("first/second = %q/%q", res.String("first"), res.String("second"))
	}

	if got := res.Strings("rest"); len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Errorf("rest = %v, want [c d]", got)
	}
}

func TestParseMissingRequiredOption(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddOptionGroup("Options", clix.GroupAny).
		Add(&clix.Option{Decls: []string{"--out", "-o"}, Required: true})

	_, err := cmd.Parse(nil)

	var diag *clix.MissingOptionError
	if !errors.As(err, &diag) {
		t.Fatalf("got %v, want *MissingOptionError", err)
	}

	if diag.Option != "--out/-o" {
		t.Errorf("diagnostic names %q, want --out/-o", diag.Option)
	}
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddArgumentGroup("Arguments").
		Add(&clix.Argument{Name: "name", Default: "anon"})
	cmd.AddOptionGroup("Options", clix.GroupAny).
		Add(&clix.Option{Decls: []string{"--count"}, Type: clix.Int{}, Default: int64(1)}).
		Add(clix.NewFlag("--force"))

	res, err := cmd.Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.String("name") != "anon" {
		t.Errorf("name = %q, want anon", res.String("name"))
	}

	if res.Int("count") != 1 {
		t.Errorf("count = %d, want 1", res.Int("count"))
	}

	if res.Bool("force") {
		t.Error("force should default to false")
	}
}

func TestParseLastOccurrenceWins(t *testing.T) {
	t.Parallel()

	res, err := newTestCommand().Parse([]string{"-c", "1", "-c", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Int("count") != 2 {
		t.Errorf("count = %d, want 2", res.Int("count"))
	}
}

func TestParseInvalidArgumentValue(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddArgumentGroup("Arguments").
		Add(&clix.Argument{Name: "port", Type: clix.Int{}})

	_, err := cmd.Parse([]string{"not-a-port"})

	var diag *clix.InvalidArgumentValueError
	if !errors.As(err, &diag) {
		t.Fatalf("got %v, want *InvalidArgumentValueError", err)
	}

	if diag.Argument != "port" || diag.Cause.Raw != "not-a-port" {
		t.Errorf("diagnostic = %+v", diag)
	}
}

func TestParseShortClusterFlagsThenValue(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddOptionGroup("Options", clix.GroupAny).
		Add(clix.NewFlag("-a")).
		Add(clix.NewFlag("-b")).
		Add(&clix.Option{Decls: []string{"-c"}})

	// -abc is flag -a, flag -b, then -c taking the next token.
	res, err := cmd.Parse([]string{"-abc", "value"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Bool("a") || !res.Bool("b") {
		t.Error("flags a and b should both bind")
	}

	if res.String("c") != "value" {
		t.Errorf("c = %q, want value", res.String("c"))
	}
}

func TestParseShortClusterValueEatsRemainder(t *testing.T) {
	t.Parallel()

	cmd := clix.NewCommand("tool", "")
	cmd.AddOptionGroup("Options", clix.GroupAny).
		Add(&clix.Option{Decls: []string{"-a"}}).
		Add(clix.NewFlag("-b")).
		Add(clix.NewFlag("-c"))

	// Value-taking -a consumes "bc"; -b and -c never bind.
	res, err := cmd.Parse([]string{"-abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.String("a") != "bc" {
		t.Errorf("a = %q, want bc", res.String("a"))
	}

	if res.Bool("b") || res.Bool("c") {
		t.Error("b and c should not bind")
	}
}

func TestParseNoPartialBindingOnFailure(t *testing.T) {
	t.Parallel()

	res, err := newTestCommand().Parse([]string{"-v", "--nope"})
	if err == nil {
		t.Fatal("expected an error")
	}

	if res != nil {
		t.Error("failed parse must not expose a result")
	}
}

func TestParseConcurrentSharedDefinition(t *testing.T) {
	t.Parallel()

	cmd := newTestCommand()

	for i := 0; i < 8; i++ {
		t.Run("worker", func(t *testing.T) {
			t.Parallel()

			for j := 0; j < 100; j++ {
				res, err := cmd.Parse([]string{"-v", "-c", "3"})
				if err != nil || res.Int("count") != 3 {
					t.Fatalf("parse failed: %v", err)
				}
			}
		})
	}
}
