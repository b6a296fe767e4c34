package token

import "strings"

var typeString = map[Type]string{
	// special tokens
	ERROR:   "ERROR",
	EOF:     "EOF",
	WS:      "WS",
	LF:      "LF",
	COMMENT: "COMMENT",

	// identifiers and literals
	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",
	CHAR:   "CHAR",

	// operators
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	STAR:      "STAR",
	SLASH:     "SLASH",
	PERCENT:   "PERCENT",
	CARET:     "CARET",
	AMPERSAND: "AMPERSAND",
	PIPE:      "PIPE",
	BANG:      "BANG",
	LESS:      "LESS",
	GREATER:   "GREATER",
	EQUAL:     "EQUAL",

	// compound operators
	DOUBLE_COLON:      "DOUBLE_COLON",
	ARROW:             "ARROW",
	FAT_ARROW:         "FAT_ARROW",
	EQUAL_EQUAL:       "EQUAL_EQUAL",
	BANG_EQUAL:        "BANG_EQUAL",
	LESS_EQUAL:        "LESS_EQUAL",
	GREATER_EQUAL:     "GREATER_EQUAL",
	AND:               "AND",
	OR:                "OR",
	PLUS_EQUAL:        "PLUS_EQUAL",
	MINUS_EQUAL:       "MINUS_EQUAL",
	STAR_EQUAL:        "STAR_EQUAL",
	SLASH_EQUAL:       "SLASH_EQUAL",
	PERCENT_EQUAL:     "PERCENT_EQUAL",
	CARET_EQUAL:       "CARET_EQUAL",
	AMPERSAND_EQUAL:   "AMPERSAND_EQUAL",
	PIPE_EQUAL:        "PIPE_EQUAL",
	SHIFT_LEFT:        "SHIFT_LEFT",
	SHIFT_RIGHT:       "SHIFT_RIGHT",
	SHIFT_LEFT_EQUAL:  "SHIFT_LEFT_EQUAL",
	SHIFT_RIGHT_EQUAL: "SHIFT_RIGHT_EQUAL",
	DOT_DOT:           "DOT_DOT",
	DOT_DOT_EQUAL:     "DOT_DOT_EQUAL",
	ELLIPSIS:          "ELLIPSIS",

	// separators
	DOT:       "DOT",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	COLON:     "COLON",
	POUND:     "POUND",
	QUESTION:  "QUESTION",
	AT:        "AT",
	DOLLAR:    "DOLLAR",

	// brackets
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACKET:  "LEFT_BRACKET",
	RIGHT_BRACKET: "RIGHT_BRACKET",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
}

func (t Type) String() string {
	return typeString[t]
}

var flagString = []struct {
	flag Flags
	name string
}{
	{IsAtBOL, "BOL"},
	{WSBefore, "WS"},
	{LFAfter, "LF"},
}

// String renders the set flags compactly, e.g. "BOL|WS".
func (f Flags) String() string {
	if f == 0 {
		return ""
	}
	var parts []string
	for _, fs := range flagString {
		if f.Has(fs.flag) {
			parts = append(parts, fs.name)
		}
	}
	return strings.Join(parts, "|")
}
