package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ax77/rcc/internal/keywords"
)

// Source is a parsed token document: the flat sequence of lexical
// elements in one input, whitespace elided.
type Source struct {
	Elements []*Element `@@*`
}

// Element is one lexical element. Exactly one branch is set.
type Element struct {
	Pos lexer.Position

	Comment      *string `  @Comment`
	BlockComment *string `| @BlockComment`
	StringLit    *string `| @String`
	CharLit      *string `| @Char`
	Number       *string `| @Number`
	Ident        *string `| @Ident`
	Operator     *string `| @Operator`
	Bracket      *string `| @Bracket`
}

// IsKeyword reports whether the element is an identifier listed in the
// keyword table.
func (e *Element) IsKeyword() bool {
	return e.Ident != nil && keywords.IsKeyword(*e.Ident)
}

// IsComment reports whether the element is a line or block comment.
func (e *Element) IsComment() bool {
	return e.Comment != nil || e.BlockComment != nil
}
