package grammar

import "strings"

// Text returns the element's lexeme.
func (e *Element) Text() string {
	for _, s := range []*string{
		e.Comment, e.BlockComment, e.StringLit, e.CharLit,
		e.Number, e.Ident, e.Operator, e.Bracket,
	} {
		if s != nil {
			return *s
		}
	}
	return ""
}

// String renders the document with canonical spacing: one space between
// elements, a line break after every line comment. The result re-lexes
// to the same element sequence, not to the original layout.
func (s *Source) String() string {
	var b strings.Builder
	atLineStart := true
	for _, e := range s.Elements {
		if !atLineStart {
			b.WriteString(" ")
		}
		b.WriteString(e.Text())
		atLineStart = false
		if e.Comment != nil {
			b.WriteString("\n")
			atLineStart = true
		}
	}
	return b.String()
}
