// Package clix is a command-line interface definition and parsing toolkit.
//
// Callers declare positional arguments, options, and grouping constraints;
// clix tokenizes raw process arguments, matches them against the
// declarations, converts raw text to typed values, enforces group
// presence and exclusivity rules, and reports typed diagnostics on
// malformed input.
//
// A definition is assembled once and is immutable afterwards:
//
//	cmd := clix.NewCommand("greet", "1.0.0")
//	cmd.AddArgumentGroup("Arguments").
//		Add(&clix.Argument{Name: "name", Required: true, Help: "Who to greet"})
//	cmd.AddOptionGroup("Options", clix.GroupAny).
//		Add(&clix.Option{Decls: []string{"--count", "-c"}, Type: clix.Int{}, Default: int64(1)}).
//		Add(clix.HelpOption()).
//		Add(clix.VersionOption())
//
// Parsing has three outcomes: a Result with bound values, a Result
// carrying a Signal (help or version was requested; not an error), or
// exactly one diagnostic from the error taxonomy:
//
//	res, err := cmd.Parse(os.Args[1:])
//
// The parsing core never prints and never exits. Command.Run wires Parse
// to the default Printer and os.Exit for use in main.
//
// Definitions are safe for concurrent Parse calls: all per-invocation
// state lives in a session owned by the call.
package clix
