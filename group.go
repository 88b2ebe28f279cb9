package clix

// GroupType is a group's cardinality constraint, evaluated over presence:
// how many member declarations received at least one bound value during
// the parse. Value equality never matters.
type GroupType int

// The cardinality constraints.
const (
	// GroupAny places no constraint on the group.
	GroupAny GroupType = iota

	// GroupAll requires every member to be bound.
	GroupAll

	// GroupNone forbids binding any member.
	GroupNone

	// GroupAtLeastOne requires at least one bound member.
	GroupAtLeastOne

	// GroupAtMostOne allows at most one bound member.
	GroupAtMostOne

	// GroupExactlyOne requires exactly one bound member.
	GroupExactlyOne
)

func (t GroupType) String() string {
	switch t {
	case GroupAny:
		return "any"
	case GroupAll:
		return "all"
	case GroupNone:
		return "none"
	case GroupAtLeastOne:
		return "at least one"
	case GroupAtMostOne:
		return "at most one"
	case GroupExactlyOne:
		return "exactly one"
	}

	return "unknown"
}

// check evaluates the constraint against the number of bound members.
func (t GroupType) check(title string, count, size int) error {
	ok := true

	switch t {
	case GroupAny:
	case GroupAll:
		ok = count == size
	case GroupNone:
		ok = count == 0
	case GroupAtLeastOne:
		ok = count >= 1
	case GroupAtMostOne:
		ok = count <= 1
	case GroupExactlyOne:
		ok = count == 1
	}

	if !ok {
		return &GroupError{Group: title, Type: t, Count: count, Size: size}
	}

	return nil
}

// ArgumentGroup is a titled, ordered collection of positional arguments.
// Positional order across a command follows group declaration order, then
// member order within each group.
type ArgumentGroup struct {
	Title     string
	Type      GroupType
	Arguments []*Argument
}

// NewArgumentGroup creates a named argument group containing the given
// members. Panics with a *DefinitionError on a malformed definition.
func NewArgumentGroup(title string, members ...*Argument) *ArgumentGroup {
	if title == "" {
		definitionPanic("argument group requires a title")
	}

	g := &ArgumentGroup{Title: title}
	for _, m := range members {
		g.Add(m)
	}

	return g
}

// Add appends a member, validating its declaration. Chainable.
func (g *ArgumentGroup) Add(a *Argument) *ArgumentGroup {
	if a == nil {
		definitionPanic("argument group %q: nil member", g.Title)
	}

	a.normalize()
	g.Arguments = append(g.Arguments, a)

	return g
}

// OptionGroup is a titled collection of options under a joint cardinality
// constraint.
type OptionGroup struct {
	Title   string
	Type    GroupType
	Options []OptionDecl
}

// NewOptionGroup creates a named option group with the given constraint
// and members. Panics with a *DefinitionError on a malformed definition.
func NewOptionGroup(title string, typ GroupType, members ...OptionDecl) *OptionGroup {
	if title == "" {
		definitionPanic("option group requires a title")
	}

	g := &OptionGroup{Title: title, Type: typ}
	for _, m := range members {
		g.Add(m)
	}

	return g
}

// Add appends a member, validating its declaration. Chainable.
func (g *OptionGroup) Add(o OptionDecl) *OptionGroup {
	if o == nil {
		definitionPanic("option group %q: nil member", g.Title)
	}

	o.meta() // normalizes and validates
	g.Options = append(g.Options, o)

	return g
}
