package clix

import (
	"os"
	"time"
)

// CommandNameDest is the reserved result key under which a SuperCommand
// records the selected subcommand's name.
const CommandNameDest = "<command_name>"

// Result is the outcome of a successful or signal-aborted parse: a mapping
// from each declaration's destination to its bound, typed value (or
// default), plus the Signal arm.
//
// A Result is never returned alongside a diagnostic; a failed parse
// exposes no partial binding.
type Result struct {
	// Signal is SignalNone on ordinary success. When a signal option
	// occurred, it is SignalHelp or SignalVersion and no further tokens
	// were evaluated; values bound before the signal are retained.
	Signal Signal

	values map[string]any
}

func newResult() *Result {
	return &Result{values: make(map[string]any)}
}

// Get returns the raw bound value for dest and whether it is present.
func (r *Result) Get(dest string) (any, bool) {
	v, ok := r.values[dest]

	return v, ok
}

// Has reports whether dest has a bound value (including a default).
func (r *Result) Has(dest string) bool {
	_, ok := r.values[dest]

	return ok
}

// String returns the string bound at dest, or "" when absent or not a
// string.
func (r *Result) String(dest string) string {
	v, _ := r.values[dest].(string)

	return v
}

// Bool returns the bool bound at dest, or false.
func (r *Result) Bool(dest string) bool {
	v, _ := r.values[dest].(bool)

	return v
}

// Int returns the integer bound at dest, or 0.
func (r *Result) Int(dest string) int64 {
	v, _ := r.values[dest].(int64)

	return v
}

// Float returns the float bound at dest, or 0.
func (r *Result) Float(dest string) float64 {
	v, _ := r.values[dest].(float64)

	return v
}

// Count returns the occurrence count bound at dest by a counting option,
// or 0.
func (r *Result) Count(dest string) int {
	v, _ := r.values[dest].(int)

	return v
}

// Slice returns the ordered sequence accumulated at dest by an appending
// option or variadic argument, or nil.
func (r *Result) Slice(dest string) []any {
	v, _ := r.values[dest].([]any)

	return v
}

// Strings returns Slice(dest) narrowed to strings; non-string members are
// skipped.
func (r *Result) Strings(dest string) []string {
	slice, ok := r.values[dest].([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(slice))

	for _, v := range slice {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

// Time returns the timestamp bound at dest, or the zero time.
func (r *Result) Time(dest string) time.Time {
	v, _ := r.values[dest].(time.Time)

	return v
}

// File returns the open file bound at dest by a File type, or nil.
func (r *Result) File(dest string) *os.File {
	v, _ := r.values[dest].(*os.File)

	return v
}

// CommandName returns the subcommand selected by a SuperCommand parse, or
// "".
func (r *Result) CommandName() string {
	return r.String(CommandNameDest)
}
