package clix

import "strings"

// Signal is a distinguished non-error early-exit outcome. Signals abort
// the parse without being user input errors; the caller recognizes them on
// the Result and handles them distinctly from failures.
type Signal int

// The signal outcomes.
const (
	SignalNone Signal = iota
	SignalHelp
	SignalVersion
)

func (s Signal) String() string {
	switch s {
	case SignalHelp:
		return "help"
	case SignalVersion:
		return "version"
	case SignalNone:
		return "none"
	}

	return "unknown"
}

// OptionDecl is the sealed interface implemented by every option variant:
// *Option, *FlagOption, *CountOption, *AppendOption, and *SignalOption.
// The closed set lets the matcher dispatch exhaustively on binding
// behavior instead of inspecting types at runtime.
type OptionDecl interface {
	meta() *optionMeta

	// storeValues binds the raw values of one occurrence (arity >= 1).
	storeValues(res *Result, key string, raw []string) error

	// storeOccurrence records one zero-arity occurrence.
	storeOccurrence(res *Result) error

	// storeDefault binds the declared default when the option never
	// occurred.
	storeDefault(res *Result) error
}

// optionMeta is the normalized, immutable metadata shared by every option
// variant.
type optionMeta struct {
	decls    []string
	long     []string
	short    []string
	dest     string
	nargs    int
	required bool
	sig      Signal
	metavar  string
	help     string
	hidden   bool
}

// label formats the spellings for diagnostics, e.g. "--count/-c".
func (m *optionMeta) label() string { return formatDecls(m.decls) }

// parseDecls splits option spellings into long and short groups, applying
// the definition rules: a long spelling is "--" plus at least two runes, a
// short spelling is "-" plus exactly one rune.
func parseDecls(decls []string) (long, short []string) {
	if len(decls) == 0 {
		definitionPanic("option declared with no spellings")
	}

	for _, decl := range decls {
		switch {
		case strings.HasPrefix(decl, longPrefix):
			if len(decl) == len(longPrefix) {
				definitionPanic("%q is not a valid long option", decl)
			}

			if len(decl) <= len(longPrefix)+1 {
				definitionPanic("long option %q is too short", decl)
			}

			long = append(long, decl)
		case strings.HasPrefix(decl, shortPrefix):
			if len(decl) == len(shortPrefix) {
				definitionPanic("%q is not a valid short option", decl)
			}

			if len([]rune(decl)) > len(shortPrefix)+1 {
				definitionPanic("short option %q is too long", decl)
			}

			short = append(short, decl)
		default:
			definitionPanic("option must start with %q or %q, got %q", longPrefix, shortPrefix, decl)
		}
	}

	return long, short
}

// inferDest derives the destination key from the first long spelling, or
// the first short spelling when no long one exists.
func inferDest(long, short []string) string {
	if len(long) > 0 {
		return checkDest(long[0][len(longPrefix):])
	}

	return checkDest(short[0][len(shortPrefix):])
}

func newOptionMeta(decls []string, dest string, nargs int) *optionMeta {
	long, short := parseDecls(decls)

	if dest == "" {
		dest = inferDest(long, short)
	} else {
		dest = checkDest(dest)
	}

	return &optionMeta{
		decls: decls,
		long:  long,
		short: short,
		dest:  dest,
		nargs: nargs,
	}
}

// Option declares a value-taking option. Each occurrence consumes NArgs
// raw values (default 1); the last occurrence wins.
type Option struct {
	// Decls are the spellings, e.g. "--count", "-c". At least one is
	// required.
	Decls []string

	// Dest is the result key. Defaults to the first long spelling (else
	// the first short one) with dashes mapped to underscores.
	Dest string

	// NArgs is the exact number of raw values per occurrence, >= 1.
	NArgs int

	// Required options must occur at least once.
	Required bool

	// Type converts each raw value; defaults to Str.
	Type Type

	// Default is stored when the option never occurs. Must satisfy
	// Type.Check.
	Default any

	// Metavar overrides the value name shown in usage.
	Metavar string

	// Help is the one-line description.
	Help string

	// Hidden options are parsed but excluded from help output.
	Hidden bool

	m *optionMeta
}

// NewOption declares a value-taking option with the given spellings.
func NewOption(decls ...string) *Option {
	return &Option{Decls: decls}
}

func (o *Option) meta() *optionMeta {
	if o.m == nil {
		if o.NArgs == 0 {
			o.NArgs = 1
		}

		if o.NArgs < 1 {
			definitionPanic("option %s: nargs must be >= 1, got %d", formatDecls(o.Decls), o.NArgs)
		}

		if o.Type == nil {
			o.Type = Str{}
		}

		if o.Default != nil && !o.Type.Check(o.Default) {
			definitionPanic("option %s: invalid default value %v", formatDecls(o.Decls), o.Default)
		}

		o.m = newOptionMeta(o.Decls, o.Dest, o.NArgs)
		o.m.required = o.Required
		o.m.metavar = o.Metavar
		o.m.help = o.Help
		o.m.hidden = o.Hidden
	}

	return o.m
}

func (o *Option) storeValues(res *Result, key string, raw []string) error {
	values, err := convertAll(o.Type, key, raw)
	if err != nil {
		return err
	}

	if o.NArgs == 1 {
		res.values[o.m.dest] = values[0]
	} else {
		res.values[o.m.dest] = values
	}

	return nil
}

func (o *Option) storeOccurrence(*Result) error { return nil } // arity >= 1, never called

func (o *Option) storeDefault(res *Result) error {
	res.values[o.m.dest] = o.Default

	return nil
}

// FlagOption declares a zero-arity boolean-presence option: Const
// (default true) is stored on occurrence, Default (default false)
// otherwise.
type FlagOption struct {
	Decls   []string
	Dest    string
	Const   any
	Default any
	Help    string
	Hidden  bool

	m *optionMeta
}

// NewFlag declares a flag option with the given spellings.
func NewFlag(decls ...string) *FlagOption {
	return &FlagOption{Decls: decls}
}

func (o *FlagOption) meta() *optionMeta {
	if o.m == nil {
		if o.Const == nil {
			o.Const = true
		}

		if o.Default == nil {
			o.Default = false
		}

		o.m = newOptionMeta(o.Decls, o.Dest, 0)
		o.m.help = o.Help
		o.m.hidden = o.Hidden
	}

	return o.m
}

func (o *FlagOption) storeValues(*Result, string, []string) error { return nil } // arity 0, never called

func (o *FlagOption) storeOccurrence(res *Result) error {
	res.values[o.m.dest] = o.Const

	return nil
}

func (o *FlagOption) storeDefault(res *Result) error {
	res.values[o.m.dest] = o.Default

	return nil
}

// CountOption declares a zero-arity option whose occurrences are counted,
// e.g. -vvv.
type CountOption struct {
	Decls   []string
	Dest    string
	Default int
	Help    string
	Hidden  bool

	m *optionMeta
}

// NewCount declares a counting option with the given spellings.
func NewCount(decls ...string) *CountOption {
	return &CountOption{Decls: decls}
}

func (o *CountOption) meta() *optionMeta {
	if o.m == nil {
		o.m = newOptionMeta(o.Decls, o.Dest, 0)
		o.m.help = o.Help
		o.m.hidden = o.Hidden
	}

	return o.m
}

func (o *CountOption) storeValues(*Result, string, []string) error { return nil } // arity 0, never called

func (o *CountOption) storeOccurrence(res *Result) error {
	prev, _ := res.values[o.m.dest].(int)
	res.values[o.m.dest] = prev + 1

	return nil
}

func (o *CountOption) storeDefault(res *Result) error {
	res.values[o.m.dest] = o.Default

	return nil
}

// AppendOption declares a value-taking option whose occurrences accumulate
// into an ordered sequence instead of overwriting each other. Each
// occurrence still consumes exactly NArgs raw values.
type AppendOption struct {
	Decls   []string
	Dest    string
	NArgs   int
	Type    Type
	Metavar string
	Help    string
	Hidden  bool

	m *optionMeta
}

// NewAppend declares an appending option with the given spellings.
func NewAppend(decls ...string) *AppendOption {
	return &AppendOption{Decls: decls}
}

func (o *AppendOption) meta() *optionMeta {
	if o.m == nil {
		if o.NArgs == 0 {
			o.NArgs = 1
		}

		if o.NArgs < 1 {
			definitionPanic("option %s: nargs must be >= 1, got %d", formatDecls(o.Decls), o.NArgs)
		}

		if o.Type == nil {
			o.Type = Str{}
		}

		o.m = newOptionMeta(o.Decls, o.Dest, o.NArgs)
		o.m.metavar = o.Metavar
		o.m.help = o.Help
		o.m.hidden = o.Hidden
	}

	return o.m
}

func (o *AppendOption) storeValues(res *Result, key string, raw []string) error {
	values, err := convertAll(o.Type, key, raw)
	if err != nil {
		return err
	}

	prev, _ := res.values[o.m.dest].([]any)

	if o.NArgs == 1 {
		res.values[o.m.dest] = append(prev, values[0])
	} else {
		res.values[o.m.dest] = append(prev, any(values))
	}

	return nil
}

func (o *AppendOption) storeOccurrence(*Result) error { return nil } // arity >= 1, never called

func (o *AppendOption) storeDefault(res *Result) error {
	if _, ok := res.values[o.m.dest]; !ok {
		res.values[o.m.dest] = []any{}
	}

	return nil
}

// SignalOption declares a zero-arity option whose occurrence aborts the
// parse with a signal instead of binding a value. Later tokens are never
// evaluated.
type SignalOption struct {
	Decls  []string
	Signal Signal
	Help   string
	Hidden bool

	m *optionMeta
}

// HelpOption declares a help signal option. With no spellings it defaults
// to --help/-h.
func HelpOption(decls ...string) *SignalOption {
	if len(decls) == 0 {
		decls = []string{"--help", "-h"}
	}

	return &SignalOption{Decls: decls, Signal: SignalHelp, Help: "Show help information and exit."}
}

// VersionOption declares a version signal option. With no spellings it
// defaults to --version/-V.
func VersionOption(decls ...string) *SignalOption {
	if len(decls) == 0 {
		decls = []string{"--version", "-V"}
	}

	return &SignalOption{Decls: decls, Signal: SignalVersion, Help: "Show version information and exit."}
}

func (o *SignalOption) meta() *optionMeta {
	if o.m == nil {
		if o.Signal == SignalNone {
			definitionPanic("signal option %s declared without a signal", formatDecls(o.Decls))
		}

		long, short := parseDecls(o.Decls)

		// Signal options have no destination.
		o.m = &optionMeta{
			decls:  o.Decls,
			long:   long,
			short:  short,
			nargs:  0,
			sig:    o.Signal,
			help:   o.Help,
			hidden: o.Hidden,
		}
	}

	return o.m
}

func (o *SignalOption) storeValues(*Result, string, []string) error { return nil } // aborts before binding

func (o *SignalOption) storeOccurrence(*Result) error { return nil } // aborts before binding

func (o *SignalOption) storeDefault(*Result) error { return nil }

// convertAll converts one occurrence's raw values, wrapping the first
// failure with the offending spelling.
func convertAll(typ Type, key string, raw []string) ([]any, error) {
	values := make([]any, len(raw))

	for i, r := range raw {
		value, err := typ.Convert(r)
		if err != nil {
			return nil, wrapOptionValue(key, err)
		}

		values[i] = value
	}

	return values, nil
}

func wrapOptionValue(key string, err error) error {
	conv, ok := err.(*ConversionError)
	if !ok {
		return err
	}

	return &InvalidOptionValueError{Option: key, Cause: conv}
}
