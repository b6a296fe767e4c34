package token

import "github.com/ax77/rcc/internal/ident"

// Type identifies the lexical class of a token. Every punctuator
// spelling gets its own constant so consumers can switch on tokens
// directly instead of re-inspecting lexemes.
type Type int

const (
	// Special tokens
	ERROR Type = iota
	EOF
	WS
	LF
	COMMENT

	// Identifiers + literals
	IDENT
	NUMBER
	STRING
	CHAR

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	CARET
	AMPERSAND
	PIPE
	BANG
	LESS
	GREATER
	EQUAL

	// Compound operators
	DOUBLE_COLON
	ARROW
	FAT_ARROW
	EQUAL_EQUAL
	BANG_EQUAL
	LESS_EQUAL
	GREATER_EQUAL
	AND
	OR
	PLUS_EQUAL
	MINUS_EQUAL
	STAR_EQUAL
	SLASH_EQUAL
	PERCENT_EQUAL
	CARET_EQUAL
	AMPERSAND_EQUAL
	PIPE_EQUAL
	SHIFT_LEFT
	SHIFT_RIGHT
	SHIFT_LEFT_EQUAL
	SHIFT_RIGHT_EQUAL
	DOT_DOT
	DOT_DOT_EQUAL
	ELLIPSIS

	// Separators
	DOT
	COMMA
	SEMICOLON
	COLON
	POUND
	QUESTION
	AT
	DOLLAR

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE
)

// Position is a location in source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

// Flags records how a token sat relative to whitespace and line breaks.
// The raw scan never sets them; line grouping folds the WS and LF tokens
// it removes into the flags of the tokens that remain.
type Flags uint8

const (
	IsAtBOL  Flags = 1 << iota // first token on its source line
	WSBefore                   // whitespace ran immediately before the token
	LFAfter                    // last token on its source line
)

// Has reports whether every bit of flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Token is one lexed token. IDENT tokens additionally carry the interned
// identifier record they resolved to.
type Token struct {
	Type     Type
	Lexeme   string
	Position Position
	Flags    Flags
	Ident    *ident.Ident
}

// Is reports whether the token has the given type.
func (t Token) Is(tp Type) bool {
	return t.Type == tp
}

// IsKeyword reports whether the token is an identifier bound to a
// keyword record.
func (t Token) IsKeyword() bool {
	return t.Type == IDENT && t.Ident != nil && t.Ident.Keyword
}
