package lsp

import (
	"strings"

	"github.com/ax77/rcc/internal/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies a cooked token stream for the editor.
// Keywords split off from plain identifiers through their interned
// records; ERROR tokens carry no class because the diagnostics path
// already covers them.
func collectSemanticTokens(stream []token.Token) []SemanticToken {
	var tokens []SemanticToken

	for _, t := range stream {
		class := classify(t)
		if class == "" {
			continue
		}

		length := len(t.Lexeme)
		// Multi-line lexemes get clamped to their first line; the LSP
		// encoding has no way to spill a token across lines.
		if i := strings.IndexByte(t.Lexeme, '\n'); i >= 0 {
			length = i
		}

		tokens = append(tokens, SemanticToken{
			Line:      uint32(t.Position.Line - 1),   // LSP uses 0-based line numbers
			StartChar: uint32(t.Position.Column - 1), // LSP uses 0-based column numbers
			Length:    uint32(length),
			TokenType: indexOf(class, SemanticTokenTypes),
		})
	}

	return tokens
}

func classify(t token.Token) string {
	switch t.Type {
	case token.IDENT:
		if t.IsKeyword() {
			return "keyword"
		}
		return "variable"
	case token.NUMBER:
		return "number"
	case token.STRING, token.CHAR:
		return "string"
	case token.COMMENT:
		return "comment"
	case token.ERROR, token.EOF, token.WS, token.LF:
		return ""
	default:
		return "operator"
	}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
