package lexer

import (
	"github.com/ax77/rcc/internal/ident"
	"github.com/ax77/rcc/internal/keywords"
	"github.com/ax77/rcc/internal/token"
)

// LexSource tokenizes source against a fresh keyword-seeded interner and
// returns the cooked stream plus any scan errors.
func LexSource(source string) ([]token.Token, []ScanError) {
	return LexSourceWith(source, ident.NewInterner(keywords.All()))
}

// LexSourceWith tokenizes source against a caller-owned interner, so
// identifier records persist across inputs; the REPL leans on this.
func LexSourceWith(source string, interner *ident.Interner) ([]token.Token, []ScanError) {
	scanner := NewScanner(source, interner)
	tokens := scanner.Tokenize()

	return tokens, scanner.errors
}
