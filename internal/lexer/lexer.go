// Package lexer turns source text into a token stream. The raw scan
// keeps whitespace, newlines and comments as tokens of their own; line
// grouping then folds WS and LF into flags on the tokens that remain.
// Identifiers come back bound to interned records, so keywords and
// repeated names resolve to shared identities instead of strings.
package lexer

import (
	"fmt"

	"github.com/ax77/rcc/internal/ident"
	"github.com/ax77/rcc/internal/keywords"
	"github.com/ax77/rcc/internal/report"
	"github.com/ax77/rcc/internal/token"
)

type Scanner struct {
	source   string
	interner *ident.Interner
	tokens   []token.Token
	start    int
	current  int
	line     int
	column   int

	startLine   int
	startColumn int

	errors []ScanError
}

type ScanError struct {
	Code     string
	Message  string
	Position token.Position // line, column, offset
	Length   int            // how many characters it covers
}

// NewScanner creates a scanner over source. A nil interner gets replaced
// with a fresh one seeded from the keyword table, so keyword identifiers
// always resolve to records whose UID equals their rank.
func NewScanner(source string, interner *ident.Interner) *Scanner {
	if interner == nil {
		interner = ident.NewInterner(keywords.All())
	}
	return &Scanner{
		source:   source,
		interner: interner,
		line:     1,
		column:   1,
	}
}

// ScanTokens scans the whole input and returns the raw token stream,
// including WS, LF and COMMENT tokens, closed by a single EOF token.
func (s *Scanner) ScanTokens() []token.Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.start = s.current
	s.startLine = s.line
	s.startColumn = s.column
	s.tokens = append(s.tokens, s.makeToken(token.EOF))
	return s.tokens
}

// Tokenize scans the whole input and returns the cooked stream: WS and
// LF folded into token flags, comments kept in place, EOF last. Scan
// errors accumulate; see Errors.
func (s *Scanner) Tokenize() []token.Token {
	return Group(s.ScanTokens())
}

// Errors returns the scan errors collected so far.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch {
	case c == ' ' || c == '\t' || c == '\r':
		s.addToken(token.WS)
	case c == '\n':
		s.addToken(token.LF)
	case c == '/' && s.matchNext('/'):
		s.scanLineComment()
	case c == '/' && s.matchNext('*'):
		s.scanBlockComment()
	case isAlpha(c):
		s.scanIdentifier()
	case isDigit(c):
		s.scanNumber()
	case c == '"' || c == '\'':
		s.scanQuoted(c)
	case isOpStart(c):
		s.scanOperator()
	case c < 0x80:
		s.reportError(report.CodeUnknownOperator, fmt.Sprintf("Unknown operator: %q", c))
		s.addToken(token.ERROR)
	default:
		s.reportError(report.CodeUnexpectedChar, fmt.Sprintf("Unexpected character: %q", c))
		s.addToken(token.ERROR)
	}
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	tok := s.makeToken(token.IDENT)
	tok.Ident = s.interner.Intern(tok.Lexeme)
	s.tokens = append(s.tokens, tok)
}

// scanNumber accepts the whole preprocessing-number shape in one token:
// digits, letters and dots glue on freely, and an exponent letter may
// pull in a sign. "0xFF", "1.5e-3" and "0..10" all come back as one
// NUMBER; splitting such lexemes apart is the parser's business.
func (s *Scanner) scanNumber() {
	for !s.isAtEnd() {
		c := s.peek()
		if c == 'e' || c == 'E' || c == 'p' || c == 'P' {
			s.advance()
			if s.peek() == '+' || s.peek() == '-' {
				s.advance()
			}
			continue
		}
		if isDigit(c) || isAlpha(c) || c == '.' {
			s.advance()
			continue
		}
		break
	}
	s.addToken(token.NUMBER)
}

// scanQuoted scans a string or char literal. The lexeme keeps its quotes
// and its escape sequences verbatim; nothing is decoded here. Literals
// may span lines.
//
// TODO: lifetime markers ('a, 'static) still lex as char literals.
func (s *Scanner) scanQuoted(quote byte) {
	for !s.isAtEnd() {
		c := s.advance()
		if c == quote {
			if quote == '"' {
				s.addToken(token.STRING)
			} else {
				s.addToken(token.CHAR)
			}
			return
		}
		if c == '\\' && !s.isAtEnd() {
			s.advance() // escaped character, kept as written
		}
	}

	what := "string"
	if quote == '\'' {
		what = "char literal"
	}
	s.reportError(report.CodeUnterminatedLiteral, fmt.Sprintf("Unterminated %s.", what))
}

func (s *Scanner) scanLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError(report.CodeMissingFinalNewline, "No newline at end of file.")
	}
	s.addToken(token.COMMENT)
}

// scanBlockComment consumes a block comment and leaves a WS token in its
// place, so grouping treats it like any other gap between tokens.
func (s *Scanner) scanBlockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance() // *
			s.advance() // /
			s.addToken(token.WS)
			return
		}
		s.advance()
	}
	s.reportError(report.CodeUnterminatedComment, "Unterminated block comment.")
}

// scanOperator munches the longest punctuator starting at the character
// just consumed, trying the longest table entry first.
func (s *Scanner) scanOperator() {
	limit := len(s.source) - s.start
	if limit > longestPunct {
		limit = longestPunct
	}
	for n := limit; n >= 1; n-- {
		op := s.source[s.start : s.start+n]
		tp, ok := puncts[op]
		if !ok {
			continue
		}
		for s.current < s.start+n {
			s.advance()
		}
		s.addToken(tp)
		return
	}

	// isOpStart admitted the first byte, so some single-byte entry
	// matched above; this is unreachable while the tables agree.
	s.reportError(report.CodeUnknownOperator, fmt.Sprintf("Unknown operator: %q", s.source[s.start:s.current]))
	s.addToken(token.ERROR)
}

func (s *Scanner) makeToken(tp token.Type) token.Token {
	return token.Token{
		Type:   tp,
		Lexeme: s.source[s.start:s.current],
		Position: token.Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	}
}

func (s *Scanner) addToken(tp token.Type) {
	s.tokens = append(s.tokens, s.makeToken(tp))
}

func (s *Scanner) reportError(code, message string) {
	s.errors = append(s.errors, ScanError{
		Code:     code,
		Message:  message,
		Position: token.Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
