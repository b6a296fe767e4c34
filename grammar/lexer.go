package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// RccLexer mirrors the hand-written scanner's token classes as
// declarative rules, for tooling that only needs classification and
// never identity. Keywords stay inside Ident here; callers that care
// consult the keyword table.
var RccLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*`, nil},
		{"BlockComment", `/\*[\s\S]*?\*/`, nil},

		// String and char literals, escapes kept verbatim
		{"String", `"(\\.|[^"\\])*"`, nil},
		{"Char", `'(\\.|[^'\\])*'`, nil},

		// Preprocessing numbers: digits, letters and dots glue on
		// freely, and an exponent letter may pull in a sign
		{"Number", `[0-9](?:[eEpP][+-]|[0-9a-zA-Z_.])*`, nil},

		// Identifiers, keywords included
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Operators, longest spelling first
		{"Operator", `<<=|>>=|\.\.=|\.\.\.|::|->|=>|==|!=|<=|>=|&&|\|\||\+=|-=|\*=|/=|%=|\^=|&=|\|=|<<|>>|\.\.|[-+*/%^&|!<>=.,;:#?@$]`, nil},

		// Brackets (must come after operators)
		{"Bracket", `[(){}[\]]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
