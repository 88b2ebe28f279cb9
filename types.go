package clix

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Type converts raw command-line text into a typed value. A strategy is
// total over its domain: every legal raw form maps to exactly one value,
// and every illegal form yields a *ConversionError, never a panic.
//
// Conversion is side-effect-free, except that the path and file strategies
// are documented to perform read-only filesystem existence checks. No
// strategy ever mutates the filesystem.
type Type interface {
	// Convert maps raw text to a typed value or a *ConversionError.
	Convert(raw string) (any, error)

	// Check reports whether a Go value (typically a declared default)
	// already inhabits the strategy's value domain.
	Check(value any) bool

	// Describe names the legal domain for diagnostics and help output.
	// Closed-set strategies enumerate their members here.
	Describe() string
}

// Shape identifies one member of the closed set of supported conversions.
type Shape int

// The supported conversion shapes.
const (
	ShapeString Shape = iota
	ShapeBool
	ShapeInt
	ShapeFloat
	ShapeChoice
	ShapeIntChoice
	ShapeEnum
	ShapeDateTime
	ShapePath
	ShapeDirPath
	ShapeFilePath
	ShapeFile
	ShapeGlob
)

// ResolveType maps a shape to a fresh strategy with default settings.
// Parameterized shapes (choice, integer choice, enum) have no sensible
// default member set and must be constructed directly; resolving one
// panics with a *DefinitionError.
func ResolveType(shape Shape) Type {
	switch shape {
	case ShapeString:
		return Str{}
	case ShapeBool:
		return Bool{}
	case ShapeInt:
		return Int{}
	case ShapeFloat:
		return Float{}
	case ShapeDateTime:
		return DateTime{}
	case ShapePath:
		return Path{}
	case ShapeDirPath:
		return DirPath{}
	case ShapeFilePath:
		return FilePath{}
	case ShapeFile:
		return File{}
	case ShapeGlob:
		return Glob{}
	case ShapeChoice, ShapeIntChoice, ShapeEnum:
		definitionPanic("shape %d requires an explicit member set; construct the strategy directly", shape)
	default:
		definitionPanic("unknown type shape %d", shape)
	}

	return nil // unreachable
}

// Str is the identity strategy for string values.
type Str struct{}

// Convert implements Type.
func (Str) Convert(raw string) (any, error) { return raw, nil }

// Check implements Type.
func (Str) Check(value any) bool {
	_, ok := value.(string)

	return ok
}

// Describe implements Type.
func (Str) Describe() string { return "a string" }

// Bool recognizes a fixed case-insensitive vocabulary for true and false.
type Bool struct{}

// Convert implements Type.
func (b Bool) Convert(raw string) (any, error) {
	switch strings.ToLower(raw) {
	case "t", "true", "y", "yes", "on", "1":
		return true, nil
	case "f", "false", "n", "no", "off", "0":
		return false, nil
	}

	return nil, conversionErr(raw, b.Describe())
}

// Check implements Type.
func (Bool) Check(value any) bool {
	_, ok := value.(bool)

	return ok
}

// Describe implements Type.
func (Bool) Describe() string {
	return "one of true/false, yes/no, on/off, 1/0"
}

// Int converts integer text. The zero value parses base-10; any Base in
// [2,36] parses that base, and AutoBase detects the base from a 0x/0o/0b
// prefix. Min and Max, when set, bound the accepted range.
type Int struct {
	Base     int
	AutoBase bool

	Min *int64
	Max *int64
}

// IntRange returns an Int accepting only values in [min, max].
func IntRange(min, max int64) Int {
	if min > max {
		definitionPanic("int range [%d, %d] is empty", min, max)
	}

	return Int{Min: &min, Max: &max}
}

func (t Int) base() int {
	if t.AutoBase {
		return 0
	}

	if t.Base == 0 {
		return 10
	}

	if t.Base < 2 || t.Base > 36 {
		definitionPanic("invalid int base %d", t.Base)
	}

	return t.Base
}

// Convert implements Type.
func (t Int) Convert(raw string) (any, error) {
	parsed, err := strconv.ParseInt(raw, t.base(), 64)
	if err != nil {
		return nil, conversionErr(raw, t.Describe())
	}

	if (t.Min != nil && parsed < *t.Min) || (t.Max != nil && parsed > *t.Max) {
		return nil, conversionErr(raw, t.Describe())
	}

	return parsed, nil
}

// Check implements Type.
func (t Int) Check(value any) bool {
	v, ok := value.(int64)
	if !ok {
		return false
	}

	if (t.Min != nil && v < *t.Min) || (t.Max != nil && v > *t.Max) {
		return false
	}

	return true
}

// Describe implements Type.
func (t Int) Describe() string {
	desc := "an integer"
	if t.AutoBase {
		desc = "an integer (prefix selects base)"
	} else if t.Base != 0 && t.Base != 10 {
		desc = fmt.Sprintf("a base-%d integer", t.Base)
	}

	if t.Min != nil && t.Max != nil {
		desc += fmt.Sprintf(" in [%d, %d]", *t.Min, *t.Max)
	} else if t.Min != nil {
		desc += fmt.Sprintf(" >= %d", *t.Min)
	} else if t.Max != nil {
		desc += fmt.Sprintf(" <= %d", *t.Max)
	}

	return desc
}

// Float converts floating-point text. Min and Max, when set, bound the
// accepted range.
type Float struct {
	Min *float64
	Max *float64
}

// FloatRange returns a Float accepting only values in [min, max].
func FloatRange(min, max float64) Float {
	if min > max {
		definitionPanic("float range [%g, %g] is empty", min, max)
	}

	return Float{Min: &min, Max: &max}
}

// Convert implements Type.
func (t Float) Convert(raw string) (any, error) {
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, conversionErr(raw, t.Describe())
	}

	if (t.Min != nil && parsed < *t.Min) || (t.Max != nil && parsed > *t.Max) {
		return nil, conversionErr(raw, t.Describe())
	}

	return parsed, nil
}

// Check implements Type.
func (t Float) Check(value any) bool {
	v, ok := value.(float64)
	if !ok {
		return false
	}

	if (t.Min != nil && v < *t.Min) || (t.Max != nil && v > *t.Max) {
		return false
	}

	return true
}

// Describe implements Type.
func (t Float) Describe() string {
	desc := "a number"

	if t.Min != nil && t.Max != nil {
		desc += fmt.Sprintf(" in [%g, %g]", *t.Min, *t.Max)
	} else if t.Min != nil {
		desc += fmt.Sprintf(" >= %g", *t.Min)
	} else if t.Max != nil {
		desc += fmt.Sprintf(" <= %g", *t.Max)
	}

	return desc
}

// Choice accepts one member of a closed string set.
type Choice struct {
	Choices         []string
	CaseInsensitive bool
}

// NewChoice returns a Choice over the given members.
func NewChoice(choices ...string) Choice {
	if len(choices) == 0 {
		definitionPanic("choice requires at least one member")
	}

	return Choice{Choices: choices}
}

// Convert implements Type. The stored value is the declared member, so a
// case-insensitive match still yields the canonical spelling.
func (t Choice) Convert(raw string) (any, error) {
	for _, c := range t.Choices {
		if c == raw || (t.CaseInsensitive && strings.EqualFold(c, raw)) {
			return c, nil
		}
	}

	return nil, conversionErr(raw, t.Describe())
}

// Check implements Type.
func (t Choice) Check(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}

	for _, c := range t.Choices {
		if c == s {
			return true
		}
	}

	return false
}

// Describe implements Type.
func (t Choice) Describe() string {
	return "one of " + strings.Join(t.Choices, ", ")
}

// IntChoice accepts one member of a closed integer set.
type IntChoice struct {
	Choices []int64
}

// NewIntChoice returns an IntChoice over the given members.
func NewIntChoice(choices ...int64) IntChoice {
	if len(choices) == 0 {
		definitionPanic("int choice requires at least one member")
	}

	return IntChoice{Choices: choices}
}

// Convert implements Type.
func (t IntChoice) Convert(raw string) (any, error) {
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, conversionErr(raw, t.Describe())
	}

	for _, c := range t.Choices {
		if c == parsed {
			return parsed, nil
		}
	}

	return nil, conversionErr(raw, t.Describe())
}

// Check implements Type.
func (t IntChoice) Check(value any) bool {
	v, ok := value.(int64)
	if !ok {
		return false
	}

	for _, c := range t.Choices {
		if c == v {
			return true
		}
	}

	return false
}

// Describe implements Type.
func (t IntChoice) Describe() string {
	members := make([]string, len(t.Choices))
	for i, c := range t.Choices {
		members[i] = strconv.FormatInt(c, 10)
	}

	return "one of " + strings.Join(members, ", ")
}

// Enum maps a closed set of symbolic names to values. The converted value
// is the member mapped to by the matched name.
type Enum struct {
	Members         map[string]any
	CaseInsensitive bool
}

// NewEnum returns an Enum over the given name-to-value mapping.
func NewEnum(members map[string]any) Enum {
	if len(members) == 0 {
		definitionPanic("enum requires at least one member")
	}

	return Enum{Members: members}
}

// Convert implements Type.
func (t Enum) Convert(raw string) (any, error) {
	if v, ok := t.Members[raw]; ok {
		return v, nil
	}

	if t.CaseInsensitive {
		for name, v := range t.Members {
			if strings.EqualFold(name, raw) {
				return v, nil
			}
		}
	}

	return nil, conversionErr(raw, t.Describe())
}

// Check implements Type.
func (t Enum) Check(value any) bool {
	for _, v := range t.Members {
		if v == value {
			return true
		}
	}

	return false
}

// Describe implements Type.
func (t Enum) Describe() string {
	names := make([]string, 0, len(t.Members))
	for name := range t.Members {
		names = append(names, name)
	}

	sort.Strings(names)

	return "one of " + strings.Join(names, ", ")
}

// defaultDateTimeLayouts are tried in order when no layouts are declared.
var defaultDateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateTime parses timestamps against a declared layout list; the first
// matching layout wins.
type DateTime struct {
	Layouts []string
}

func (t DateTime) layouts() []string {
	if len(t.Layouts) == 0 {
		return defaultDateTimeLayouts
	}

	return t.Layouts
}

// Convert implements Type.
func (t DateTime) Convert(raw string) (any, error) {
	for _, layout := range t.layouts() {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}

	return nil, conversionErr(raw, t.Describe())
}

// Check implements Type.
func (DateTime) Check(value any) bool {
	_, ok := value.(time.Time)

	return ok
}

// Describe implements Type.
func (t DateTime) Describe() string {
	return "a timestamp matching " + strings.Join(t.layouts(), " or ")
}

// Path accepts any syntactically plausible filesystem path. No existence
// check is performed; the converted value is the cleaned path.
type Path struct{}

// Convert implements Type.
func (t Path) Convert(raw string) (any, error) {
	if raw == "" || strings.ContainsRune(raw, 0) {
		return nil, conversionErr(raw, t.Describe())
	}

	return filepath.Clean(raw), nil
}

// Check implements Type.
func (Path) Check(value any) bool {
	s, ok := value.(string)

	return ok && s != ""
}

// Describe implements Type.
func (Path) Describe() string { return "a path" }

// DirPath accepts the path of an existing directory.
type DirPath struct{}

// Convert implements Type.
func (t DirPath) Convert(raw string) (any, error) {
	info, err := os.Stat(raw)
	if err != nil || !info.IsDir() {
		return nil, conversionErr(raw, t.Describe())
	}

	return filepath.Clean(raw), nil
}

// Check implements Type.
func (DirPath) Check(value any) bool {
	s, ok := value.(string)

	return ok && s != ""
}

// Describe implements Type.
func (DirPath) Describe() string { return "an existing directory" }

// FilePath accepts the path of an existing regular file.
type FilePath struct{}

// Convert implements Type.
func (t FilePath) Convert(raw string) (any, error) {
	info, err := os.Stat(raw)
	if err != nil || !info.Mode().IsRegular() {
		return nil, conversionErr(raw, t.Describe())
	}

	return filepath.Clean(raw), nil
}

// Check implements Type.
func (FilePath) Check(value any) bool {
	s, ok := value.(string)

	return ok && s != ""
}

// Describe implements Type.
func (FilePath) Describe() string { return "an existing file" }

// File accepts the path of an existing regular file and opens it read-only.
// The caller owns the returned *os.File and is responsible for closing it.
type File struct{}

// Convert implements Type.
func (t File) Convert(raw string) (any, error) {
	info, err := os.Stat(raw)
	if err != nil || !info.Mode().IsRegular() {
		return nil, conversionErr(raw, "an existing file")
	}

	f, err := os.Open(raw)
	if err != nil {
		return nil, conversionErr(raw, "a readable file")
	}

	return f, nil
}

// Check implements Type.
func (File) Check(value any) bool {
	_, ok := value.(*os.File)

	return ok
}

// Describe implements Type.
func (File) Describe() string { return "a readable file" }

// Glob accepts a doublestar glob pattern. Only the pattern syntax is
// validated; no matching against the filesystem happens at parse time.
type Glob struct{}

// Convert implements Type.
func (t Glob) Convert(raw string) (any, error) {
	if raw == "" || !doublestar.ValidatePattern(raw) {
		return nil, conversionErr(raw, t.Describe())
	}

	return raw, nil
}

// Check implements Type.
func (Glob) Check(value any) bool {
	s, ok := value.(string)

	return ok && s != "" && doublestar.ValidatePattern(s)
}

// Describe implements Type.
func (Glob) Describe() string { return "a glob pattern" }
