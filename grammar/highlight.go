package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/fatih/color"

	"github.com/ax77/rcc/internal/keywords"
)

var (
	keywordColor = color.New(color.FgMagenta, color.Bold)
	stringColor  = color.New(color.FgGreen)
	numberColor  = color.New(color.FgCyan)
	commentColor = color.New(color.Faint)
)

// symbolNames inverts the lexer's symbol table once, for classification.
var symbolNames = func() map[lexer.TokenType]string {
	symbols := RccLexer.Symbols()
	names := make(map[lexer.TokenType]string, len(symbols))
	for name, t := range symbols {
		names[t] = name
	}
	return names
}()

// Highlight re-emits source with ANSI colors per token class: keywords,
// literals and comments get colors, everything else passes through. The
// rules cover every byte between tokens' classes, so with colors
// disabled the output equals the input.
func Highlight(source string) (string, error) {
	tokens, err := RccLexer.LexString("", source)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for {
		t, err := tokens.Next()
		if err != nil {
			return "", err
		}
		if t.EOF() {
			return out.String(), nil
		}
		out.WriteString(colorize(t))
	}
}

func colorize(t lexer.Token) string {
	switch symbolNames[t.Type] {
	case "Ident":
		if keywords.IsKeyword(t.Value) {
			return keywordColor.Sprint(t.Value)
		}
		return t.Value
	case "String", "Char":
		return stringColor.Sprint(t.Value)
	case "Number":
		return numberColor.Sprint(t.Value)
	case "Comment", "BlockComment":
		return commentColor.Sprint(t.Value)
	default:
		return t.Value
	}
}
