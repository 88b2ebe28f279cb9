package clix

import "strings"

// Prefixes and separator recognized by the tokenizer.
const (
	longPrefix  = "--"
	shortPrefix = "-"
	separator   = "--"
)

// TokenKind classifies one raw argv word.
type TokenKind int

// The token kinds.
const (
	// TokenPositional is any word bound to a positional declaration.
	TokenPositional TokenKind = iota

	// TokenSeparator is the bare "--" word; everything after it is
	// positional.
	TokenSeparator

	// TokenLong is a "--name" or "--name=value" word.
	TokenLong

	// TokenShort is a "-x" word, provisionally a cluster: whether "-abc"
	// is three flags or one option with attached value "bc" is resolved
	// by the matcher against declaration arity, not here.
	TokenShort
)

// ClassifyToken classifies one raw word. It is pure: the only inputs are
// the word itself and whether a separator has already been consumed, after
// which every word is positional regardless of leading dashes.
func ClassifyToken(word string, separatorSeen bool) TokenKind {
	if separatorSeen {
		return TokenPositional
	}

	switch {
	case word == separator:
		return TokenSeparator
	case strings.HasPrefix(word, longPrefix) && len(word) > len(longPrefix):
		return TokenLong
	case strings.HasPrefix(word, shortPrefix) && len(word) > len(shortPrefix):
		return TokenShort
	default:
		return TokenPositional
	}
}

// IsSeparator reports whether word is the "--" separator.
func IsSeparator(word string) bool { return word == separator }

// IsLongOption reports whether word spells a long option.
func IsLongOption(word string) bool {
	return ClassifyToken(word, false) == TokenLong
}

// IsShortOption reports whether word spells a short option or cluster.
func IsShortOption(word string) bool {
	return ClassifyToken(word, false) == TokenShort
}
