package clix_test

import (
	"testing"

	"github.com/clix-go/clix"
)

func TestClassifyToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		word    string
		sepSeen bool
		want    clix.TokenKind
	}{
		{"separator", "--", false, clix.TokenSeparator},
		{"long option", "--verbose", false, clix.TokenLong},
		{"long option with value", "--count=3", false, clix.TokenLong},
		{"short option", "-v", false, clix.TokenShort},
		{"short cluster", "-abc", false, clix.TokenShort},
		{"positional", "file.txt", false, clix.TokenPositional},
		{"bare dash is positional", "-", false, clix.TokenPositional},
		{"empty word is positional", "", false, clix.TokenPositional},
		{"negative-looking value", "-1", false, clix.TokenShort},
		{"long after separator", "--verbose", true, clix.TokenPositional},
		{"short after separator", "-v", true, clix.TokenPositional},
		{"second separator is positional", "--", true, clix.TokenPositional},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := clix.ClassifyToken(tt.word, tt.sepSeen); got != tt.want {
				t.Errorf("ClassifyToken(%q, %v) = %v, want %v", tt.word, tt.sepSeen, got, tt.want)
			}
		})
	}
}

func TestTokenPredicates(t *testing.T) {
	t.Parallel()

	if !clix.IsSeparator("--") {
		t.Error("expected -- to be the separator")
	}

	if clix.IsSeparator("---") {
		t.Error("did not expect --- to be the separator")
	}

	if !clix.IsLongOption("--help") {
		t.Error("expected --help to be a long option")
	}

	if clix.IsLongOption("--") {
		t.Error("did not expect -- to be a long option")
	}

	if !clix.IsShortOption("-h") {
		t.Error("expected -h to be a short option")
	}

	if clix.IsShortOption("-") {
		t.Error("did not expect bare dash to be a short option")
	}
}
