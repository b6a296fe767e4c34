package lexer

import "github.com/ax77/rcc/internal/token"

// puncts maps every punctuator spelling to its token type. scanOperator
// tries the longest spelling first, so entries never shadow each other.
var puncts = map[string]token.Type{
	// three bytes
	"<<=": token.SHIFT_LEFT_EQUAL,
	">>=": token.SHIFT_RIGHT_EQUAL,
	"..=": token.DOT_DOT_EQUAL,
	"...": token.ELLIPSIS,

	// two bytes
	"::": token.DOUBLE_COLON,
	"->": token.ARROW,
	"=>": token.FAT_ARROW,
	"==": token.EQUAL_EQUAL,
	"!=": token.BANG_EQUAL,
	"<=": token.LESS_EQUAL,
	">=": token.GREATER_EQUAL,
	"&&": token.AND,
	"||": token.OR,
	"+=": token.PLUS_EQUAL,
	"-=": token.MINUS_EQUAL,
	"*=": token.STAR_EQUAL,
	"/=": token.SLASH_EQUAL,
	"%=": token.PERCENT_EQUAL,
	"^=": token.CARET_EQUAL,
	"&=": token.AMPERSAND_EQUAL,
	"|=": token.PIPE_EQUAL,
	"<<": token.SHIFT_LEFT,
	">>": token.SHIFT_RIGHT,
	"..": token.DOT_DOT,

	// one byte
	"+": token.PLUS,
	"-": token.MINUS,
	"*": token.STAR,
	"/": token.SLASH,
	"%": token.PERCENT,
	"^": token.CARET,
	"&": token.AMPERSAND,
	"|": token.PIPE,
	"!": token.BANG,
	"<": token.LESS,
	">": token.GREATER,
	"=": token.EQUAL,
	".": token.DOT,
	",": token.COMMA,
	";": token.SEMICOLON,
	":": token.COLON,
	"#": token.POUND,
	"?": token.QUESTION,
	"@": token.AT,
	"$": token.DOLLAR,
	"(": token.LEFT_PAREN,
	")": token.RIGHT_PAREN,
	"[": token.LEFT_BRACKET,
	"]": token.RIGHT_BRACKET,
	"{": token.LEFT_BRACE,
	"}": token.RIGHT_BRACE,
}

var longestPunct = func() int {
	longest := 0
	for op := range puncts {
		if len(op) > longest {
			longest = len(op)
		}
	}
	return longest
}()

var opStarts = func() [256]bool {
	var set [256]bool
	for op := range puncts {
		set[op[0]] = true
	}
	return set
}()

// isOpStart reports whether c can begin a punctuator.
func isOpStart(c byte) bool {
	return opStarts[c]
}
