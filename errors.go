package clix

import (
	"fmt"
	"strings"
)

// Exit codes reported by the diagnostic taxonomy. The parsing core never
// exits; Run applies these when wiring a command into main.
const (
	ExitCodeConversion = 128
	ExitCodeDefinition = 129
	ExitCodeUsage      = 137
	ExitCodeGroupUsage = 138
)

// Diagnostic is implemented by every error raised by the toolkit. Callers
// can match concrete kinds with errors.As, or treat any diagnostic
// uniformly through this interface.
type Diagnostic interface {
	error
	ExitCode() int
}

// DefinitionError reports a malformed declaration or group. Definition
// errors are programmer errors: constructors panic with one rather than
// returning it, so a bad CLI definition fails at startup, before any
// argv is parsed.
type DefinitionError struct {
	Detail string
}

func (e *DefinitionError) Error() string { return e.Detail }

// ExitCode implements Diagnostic.
func (e *DefinitionError) ExitCode() int { return ExitCodeDefinition }

func definitionPanic(format string, args ...any) {
	panic(&DefinitionError{Detail: fmt.Sprintf(format, args...)})
}

// ConversionError reports raw text that does not satisfy a Type's domain.
// Domain is the strategy's own description of its legal inputs; for closed
// sets it enumerates the members.
type ConversionError struct {
	Raw    string
	Domain string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%q is not %s", e.Raw, e.Domain)
}

// ExitCode implements Diagnostic.
func (e *ConversionError) ExitCode() int { return ExitCodeConversion }

func conversionErr(raw, domain string) error {
	return &ConversionError{Raw: raw, Domain: domain}
}

// UnknownOptionError reports an option spelling that matches no declaration.
type UnknownOptionError struct {
	Option string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Option)
}

// ExitCode implements Diagnostic.
func (e *UnknownOptionError) ExitCode() int { return ExitCodeUsage }

// UnknownCommandError reports a subcommand name that matches no registered
// command of a SuperCommand.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Command)
}

// ExitCode implements Diagnostic.
func (e *UnknownCommandError) ExitCode() int { return ExitCodeUsage }

// TooFewArgumentsError reports a required positional argument that received
// no value. Argument names the unsatisfied declaration when known.
type TooFewArgumentsError struct {
	Argument string
}

func (e *TooFewArgumentsError) Error() string {
	if e.Argument == "" {
		return "got too few arguments"
	}

	return fmt.Sprintf("got too few arguments, missing %s", e.Argument)
}

// ExitCode implements Diagnostic.
func (e *TooFewArgumentsError) ExitCode() int { return ExitCodeUsage }

// TooManyArgumentsError reports a positional token with no declaration left
// to bind it to.
type TooManyArgumentsError struct {
	Value string
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("got too many arguments, unexpected %q", e.Value)
}

// ExitCode implements Diagnostic.
func (e *TooManyArgumentsError) ExitCode() int { return ExitCodeUsage }

// MissingOptionError reports a required option that never occurred.
type MissingOptionError struct {
	Option string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("missing required option %s", e.Option)
}

// ExitCode implements Diagnostic.
func (e *MissingOptionError) ExitCode() int { return ExitCodeUsage }

// TooFewOptionValuesError reports a value-taking option with fewer trailing
// values than its arity requires.
type TooFewOptionValuesError struct {
	Option string
	Want   int
	Got    int
}

func (e *TooFewOptionValuesError) Error() string {
	if e.Want <= 1 {
		return fmt.Sprintf("option %s requires a value", e.Option)
	}

	return fmt.Sprintf("option %s requires %d values, got %d", e.Option, e.Want, e.Got)
}

// ExitCode implements Diagnostic.
func (e *TooFewOptionValuesError) ExitCode() int { return ExitCodeUsage }

// TooManyOptionValuesError reports a value attached to an option that takes
// none, e.g. `--verbose=yes` on a flag.
type TooManyOptionValuesError struct {
	Option string
}

func (e *TooManyOptionValuesError) Error() string {
	return fmt.Sprintf("option %s does not take a value", e.Option)
}

// ExitCode implements Diagnostic.
func (e *TooManyOptionValuesError) ExitCode() int { return ExitCodeUsage }

// InvalidOptionValueError reports a raw option value rejected by the
// option's type strategy.
type InvalidOptionValueError struct {
	Option string
	Cause  *ConversionError
}

func (e *InvalidOptionValueError) Error() string {
	return fmt.Sprintf("invalid value for option %s: %s", e.Option, e.Cause)
}

func (e *InvalidOptionValueError) Unwrap() error { return e.Cause }

// ExitCode implements Diagnostic.
func (e *InvalidOptionValueError) ExitCode() int { return ExitCodeUsage }

// InvalidArgumentValueError reports a raw positional value rejected by the
// argument's type strategy.
type InvalidArgumentValueError struct {
	Argument string
	Cause    *ConversionError
}

func (e *InvalidArgumentValueError) Error() string {
	return fmt.Sprintf("invalid value for argument %s: %s", e.Argument, e.Cause)
}

func (e *InvalidArgumentValueError) Unwrap() error { return e.Cause }

// ExitCode implements Diagnostic.
func (e *InvalidArgumentValueError) ExitCode() int { return ExitCodeUsage }

// GroupError reports a group whose cardinality constraint does not hold
// over the members bound during the parse. Count is the number of members
// that were bound; Size is the group's member count.
type GroupError struct {
	Group string
	Type  GroupType
	Count int
	Size  int
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("group %q: %s, got %d", e.Group, e.expectation(), e.Count)
}

func (e *GroupError) expectation() string {
	switch e.Type {
	case GroupAll:
		return fmt.Sprintf("all %d members expected", e.Size)
	case GroupNone:
		return "no members expected"
	case GroupAtLeastOne:
		return "at least one member expected"
	case GroupAtMostOne:
		return "at most one member expected"
	case GroupExactlyOne:
		// Name the half of the constraint that failed.
		if e.Count == 0 {
			return "at least one member expected"
		}

		return "at most one member expected"
	case GroupAny:
		return "any number of members expected"
	}

	return "constraint violated"
}

// ExitCode implements Diagnostic.
func (e *GroupError) ExitCode() int { return ExitCodeGroupUsage }

func formatDecls(decls []string) string {
	return strings.Join(decls, "/")
}
