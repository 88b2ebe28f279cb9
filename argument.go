package clix

import "regexp"

// NArgsVariadic marks a declaration that accepts one or more values,
// accumulated in order across the rest of the positional stream.
const NArgsVariadic = -1

var validDest = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// checkDest normalizes a destination key, panicking with a
// *DefinitionError when it is not a valid identifier.
func checkDest(dest string) string {
	dest = kebabToSnake(dest)
	if !validDest.MatchString(dest) {
		definitionPanic("%q is not a valid destination identifier", dest)
	}

	return dest
}

func kebabToSnake(s string) string {
	out := []byte(s)
	for i := range out {
		if out[i] == '-' {
			out[i] = '_'
		}
	}

	return string(out)
}

// Argument declares one positional argument.
//
// Construct with a literal and fill the exported fields; validation and
// defaulting happen when the argument is added to a group. Arguments are
// immutable after that and shared read-only across parses.
type Argument struct {
	// Name is the declaration spelling shown in usage, e.g. "file".
	Name string

	// Dest is the result key. Defaults to Name with dashes mapped to
	// underscores.
	Dest string

	// NArgs is 1 (the default) or NArgsVariadic for a one-or-more tail.
	NArgs int

	// Required arguments must receive at least one value.
	Required bool

	// Type converts raw text; defaults to Str.
	Type Type

	// Default is stored when the argument never occurs. Must satisfy
	// Type.Check. For variadic arguments the default is the empty slice
	// unless set.
	Default any

	// Metavar overrides the value name shown in usage.
	Metavar string

	// Help is the one-line description.
	Help string

	// Hidden arguments are parsed but excluded from help output.
	Hidden bool

	normalized bool
}

// NewArgument declares a positional argument with the given name.
func NewArgument(name string) *Argument {
	return &Argument{Name: name}
}

// normalize validates the declaration and fills derived fields. Panics
// with a *DefinitionError on a malformed declaration.
func (a *Argument) normalize() {
	if a.normalized {
		return
	}

	if a.Name == "" {
		definitionPanic("argument declared with no name")
	}

	if a.Dest == "" {
		a.Dest = a.Name
	}

	a.Dest = checkDest(a.Dest)

	if a.NArgs == 0 {
		a.NArgs = 1
	}

	if a.NArgs != 1 && a.NArgs != NArgsVariadic {
		definitionPanic("argument %s: nargs must be 1 or variadic, got %d", a.Name, a.NArgs)
	}

	if a.Type == nil {
		a.Type = Str{}
	}

	if a.Default != nil && !a.Type.Check(a.Default) {
		definitionPanic("argument %s: invalid default value %v", a.Name, a.Default)
	}

	a.normalized = true
}

func (a *Argument) variadic() bool { return a.NArgs == NArgsVariadic }

// metavar returns the value name used in usage and diagnostics.
func (a *Argument) metavar() string {
	if a.Metavar != "" {
		return a.Metavar
	}

	return a.Name
}

// storeValue converts and binds one raw positional value.
func (a *Argument) storeValue(res *Result, raw string) error {
	value, err := a.Type.Convert(raw)
	if err != nil {
		return wrapArgumentValue(a.Name, err)
	}

	if a.variadic() {
		prev, _ := res.values[a.Dest].([]any)
		res.values[a.Dest] = append(prev, value)

		return nil
	}

	res.values[a.Dest] = value

	return nil
}

// storeDefault binds the declared default for an argument that never
// occurred.
func (a *Argument) storeDefault(res *Result) {
	if a.variadic() {
		if a.Default == nil {
			res.values[a.Dest] = []any{}
		} else {
			res.values[a.Dest] = []any{a.Default}
		}

		return
	}

	res.values[a.Dest] = a.Default
}

func wrapArgumentValue(name string, err error) error {
	conv, ok := err.(*ConversionError)
	if !ok {
		return err
	}

	return &InvalidArgumentValueError{Argument: name, Cause: conv}
}
