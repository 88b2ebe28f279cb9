package clix

import "strings"

// parseState is the matcher's state. One session moves Scanning →
// PositionalOnly (on the separator) → Done, or to Aborted when a signal
// option occurs.
type parseState int

const (
	stateScanning parseState = iota
	statePositionalOnly
	stateDone
	stateAborted
)

// argumentNode tracks one positional declaration's presence within a
// single parse. Declarations themselves stay immutable and shared; all
// per-parse state lives on the node.
type argumentNode struct {
	arg      *Argument
	occurred bool
}

type argumentGroupNode struct {
	group    *ArgumentGroup
	children []*argumentNode
}

// optionNode tracks one option declaration's presence within a single
// parse. A repeated option occurs once for presence purposes.
type optionNode struct {
	opt      OptionDecl
	occurred bool
}

type optionGroupNode struct {
	group    *OptionGroup
	children []*optionNode
}

// session is the per-invocation mutable parse context: the token cursor,
// the presence nodes, and the result under construction. It is created by
// Parse, owned by one call stack, and discarded at return; nothing in it
// is shared across invocations.
type session struct {
	argv  []string
	index int
	state parseState

	argGroups []*argumentGroupNode
	argSeq    []*argumentNode
	pos       int

	optGroups []*optionGroupNode
	lookup    map[string]*optionNode

	res *Result

	// Supercommand mode: stop at the first positional token, which
	// selects the subcommand; the rest of argv belongs to it.
	stopAtPositional bool
	command          string
	rest             []string
}

func newSession(argGroups []*ArgumentGroup, optGroups []*OptionGroup, argv []string) *session {
	s := &session{
		argv:   argv,
		lookup: make(map[string]*optionNode),
		res:    newResult(),
	}

	for _, g := range argGroups {
		gn := &argumentGroupNode{group: g}

		for _, a := range g.Arguments {
			a.normalize()
			node := &argumentNode{arg: a}
			gn.children = append(gn.children, node)
			s.argSeq = append(s.argSeq, node)
		}

		s.argGroups = append(s.argGroups, gn)
	}

	for _, g := range optGroups {
		gn := &optionGroupNode{group: g}

		for _, o := range g.Options {
			m := o.meta()
			node := &optionNode{opt: o}
			gn.children = append(gn.children, node)

			for _, key := range m.long {
				s.register(key, node)
			}

			for _, key := range m.short {
				s.register(key, node)
			}
		}

		s.optGroups = append(s.optGroups, gn)
	}

	return s
}

func (s *session) register(key string, node *optionNode) {
	if _, exists := s.lookup[key]; exists {
		definitionPanic("option %q conflicts", key)
	}

	s.lookup[key] = node
}

// next advances the token cursor.
func (s *session) next() (string, bool) {
	if s.index >= len(s.argv) {
		return "", false
	}

	arg := s.argv[s.index]
	s.index++

	return arg, true
}

// run drives the state machine over argv and finalizes the result.
func (s *session) run() error {
	for s.state == stateScanning {
		arg, ok := s.next()
		if !ok {
			s.state = stateDone

			break
		}

		var err error

		switch ClassifyToken(arg, false) {
		case TokenSeparator:
			s.state = statePositionalOnly
		case TokenLong:
			err = s.parseLong(arg)
		case TokenShort:
			err = s.parseShort(arg)
		case TokenPositional:
			err = s.parseArgument(arg)
		}

		if err != nil {
			return err
		}
	}

	for s.state == statePositionalOnly {
		arg, ok := s.next()
		if !ok {
			s.state = stateDone

			break
		}

		if err := s.parseArgument(arg); err != nil {
			return err
		}
	}

	if s.state == stateAborted {
		// A signal ended the session; no required/default/group pass.
		return nil
	}

	return s.finalize()
}

// parseLong handles "--name" and "--name=value". An attached value counts
// as the first consumed value for multi-value options, and is rejected
// outright for zero-arity ones.
func (s *session) parseLong(arg string) error {
	key, attached, hasAttached := strings.Cut(arg, "=")

	node, ok := s.lookup[key]
	if !ok {
		return &UnknownOptionError{Option: key}
	}

	m := node.opt.meta()

	if hasAttached {
		if m.nargs == 0 {
			return &TooManyOptionValuesError{Option: key}
		}

		return s.consumeValues(node, key, []string{attached})
	}

	if m.nargs == 0 {
		return s.recordOccurrence(node)
	}

	return s.consumeValues(node, key, nil)
}

// parseShort handles a short option or cluster. Expansion is resolved
// against declaration arity, left to right: zero-arity members record and
// scanning continues; the first value-taking member consumes the remainder
// of the cluster as its attached value (or the next token) and ends the
// cluster.
func (s *session) parseShort(arg string) error {
	runes := []rune(arg)

	for i := 1; i < len(runes); i++ {
		key := shortPrefix + string(runes[i])

		node, ok := s.lookup[key]
		if !ok {
			return &UnknownOptionError{Option: key}
		}

		m := node.opt.meta()

		if m.nargs == 0 {
			if err := s.recordOccurrence(node); err != nil {
				return err
			}

			if s.state == stateAborted {
				return nil
			}

			continue
		}

		var first []string
		if i+1 < len(runes) {
			first = []string{string(runes[i+1:])}
		}

		return s.consumeValues(node, key, first)
	}

	return nil
}

// recordOccurrence stores one zero-arity occurrence, or aborts with the
// option's signal.
func (s *session) recordOccurrence(node *optionNode) error {
	m := node.opt.meta()

	if m.sig != SignalNone {
		s.res.Signal = m.sig
		s.state = stateAborted

		return nil
	}

	if err := node.opt.storeOccurrence(s.res); err != nil {
		return err
	}

	node.occurred = true

	return nil
}

// consumeValues gathers the option's per-occurrence arity worth of raw
// values (starting with any attached value) and binds them.
func (s *session) consumeValues(node *optionNode, key string, values []string) error {
	want := node.opt.meta().nargs

	for len(values) < want {
		v, ok := s.next()
		if !ok {
			return &TooFewOptionValuesError{Option: key, Want: want, Got: len(values)}
		}

		values = append(values, v)
	}

	if err := node.opt.storeValues(s.res, key, values); err != nil {
		return err
	}

	node.occurred = true

	return nil
}

// parseArgument binds one positional token to the next unsatisfied
// positional declaration. A variadic declaration keeps accepting values.
func (s *session) parseArgument(arg string) error {
	if s.stopAtPositional {
		s.command = arg
		s.rest = s.argv[s.index:]
		s.state = stateDone

		return nil
	}

	if s.pos >= len(s.argSeq) {
		return &TooManyArgumentsError{Value: arg}
	}

	node := s.argSeq[s.pos]
	if !node.arg.variadic() {
		s.pos++
	}

	if err := node.arg.storeValue(s.res, arg); err != nil {
		return err
	}

	node.occurred = true

	return nil
}

// finalize runs the once-after-scan pass: required checks, defaults, then
// group validation in declaration order. Group constraints never
// short-circuit token consumption.
func (s *session) finalize() error {
	for _, node := range s.argSeq {
		if node.occurred {
			continue
		}

		if node.arg.Required {
			return &TooFewArgumentsError{Argument: node.arg.Name}
		}

		node.arg.storeDefault(s.res)
	}

	for _, gn := range s.optGroups {
		for _, node := range gn.children {
			if node.occurred {
				continue
			}

			m := node.opt.meta()
			if m.required {
				return &MissingOptionError{Option: m.label()}
			}

			if err := node.opt.storeDefault(s.res); err != nil {
				return err
			}
		}
	}

	for _, gn := range s.argGroups {
		if err := gn.group.Type.check(gn.group.Title, countOccurredArgs(gn.children), len(gn.children)); err != nil {
			return err
		}
	}

	for _, gn := range s.optGroups {
		if err := gn.group.Type.check(gn.group.Title, countOccurredOpts(gn.children), len(gn.children)); err != nil {
			return err
		}
	}

	return nil
}

func countOccurredArgs(nodes []*argumentNode) int {
	count := 0

	for _, n := range nodes {
		if n.occurred {
			count++
		}
	}

	return count
}

func countOccurredOpts(nodes []*optionNode) int {
	count := 0

	for _, n := range nodes {
		if n.occurred {
			count++
		}
	}

	return count
}
