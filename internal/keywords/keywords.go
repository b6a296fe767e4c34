// Package keywords owns the canonical keyword table of the language.
// The table is compiled in; its sorted order is the single source of
// truth for keyword ranks, which the generated Rust table, the interner
// seed and the editor tooling all share.
package keywords

import (
	"fmt"
	"slices"

	"github.com/ax77/rcc/internal/report"
)

// all is the compiled-in keyword list. Normalize owns the ordering, so
// the grouping here is for reading only and never carries meaning.
var all = []string{
	// declarations
	"fn", "let", "const", "static", "struct", "enum", "trait", "impl",
	"type", "mod", "use", "extern", "crate", "pub",

	// control flow
	"if", "else", "match", "loop", "while", "for", "in", "break",
	"continue", "return",

	// bindings and qualifiers
	"true", "false", "self", "super", "mut", "ref", "move", "as",
	"where", "unsafe",
}

var ranked = func() []string {
	words, err := Normalize(all)
	if err != nil {
		panic(fmt.Sprintf("keywords: compiled-in table is invalid: %v", err))
	}
	return words
}()

var rankOf = func() map[string]int {
	m := make(map[string]int, len(ranked))
	for i, w := range ranked {
		m[w] = i
	}
	return m
}()

// Normalize returns a copy of words sorted ascending by byte value, the
// order every rank derives from. Empty entries, entries that would not
// lex as identifiers, and duplicates are rejected.
func Normalize(words []string) ([]string, error) {
	out := slices.Clone(words)
	slices.Sort(out)
	for i, w := range out {
		switch {
		case w == "":
			return nil, fmt.Errorf("%s: empty keyword entry", report.CodeEmptyKeyword)
		case !isIdent(w):
			return nil, fmt.Errorf("%s: keyword %q is not a valid identifier", report.CodeInvalidKeyword, w)
		case i > 0 && out[i-1] == w:
			return nil, fmt.Errorf("%s: duplicate keyword entry %q", report.CodeDuplicateKeyword, w)
		}
	}
	return out, nil
}

// All returns the keyword table in rank order.
func All() []string {
	return slices.Clone(ranked)
}

// Rank returns the zero-based position of word in the sorted table.
// Ranks renumber whenever the table changes, so they must never be
// persisted across regenerations.
func Rank(word string) (int, bool) {
	r, ok := rankOf[word]
	return r, ok
}

// Count returns the number of keywords. It is also the first UID handed
// out to user-defined identifiers by a keyword-seeded interner.
func Count() int {
	return len(ranked)
}

// IsKeyword reports whether word is in the table.
func IsKeyword(word string) bool {
	_, ok := rankOf[word]
	return ok
}

func isIdent(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
