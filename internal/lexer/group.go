package lexer

import "github.com/ax77/rcc/internal/token"

// Group folds the WS and LF tokens of a raw stream into flags on the
// tokens that remain. The first token of each line gets IsAtBOL and
// WSBefore, the last gets LFAfter, and any token preceded by whitespace
// gets WSBefore. COMMENT tokens close their line the way LF does but
// stay in the stream. A final line with no newline passes through
// unflagged, and EOF is never flagged at all.
func Group(raw []token.Token) []token.Token {
	cooked := make([]token.Token, 0, len(raw))
	var line []token.Token
	pendingWS := false

	flush := func() {
		if len(line) == 0 {
			return
		}
		line[0].Flags |= token.IsAtBOL | token.WSBefore
		line[len(line)-1].Flags |= token.LFAfter
		cooked = append(cooked, line...)
		line = nil
	}

	for _, t := range raw {
		if t.Is(token.EOF) {
			cooked = append(cooked, line...)
			line = nil
			cooked = append(cooked, t)
			break
		}

		if pendingWS {
			t.Flags |= token.WSBefore
			pendingWS = false
		}

		switch {
		case t.Is(token.WS):
			pendingWS = true
		case t.Is(token.LF):
			flush()
		case t.Is(token.COMMENT):
			line = append(line, t)
			flush()
		default:
			line = append(line, t)
		}
	}
	return cooked
}
