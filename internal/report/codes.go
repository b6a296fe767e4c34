package report

// Diagnostic codes for the rcc lexical toolchain.
// They appear in error headers and in editor diagnostics so a problem
// keeps the same identity everywhere it is surfaced.
//
// Code ranges:
// L0001-L0099: lexer errors
// K0001-K0099: keyword table errors

const (
	// L0001: a byte that starts no token
	CodeUnexpectedChar = "L0001"

	// L0002: a string or char literal hits end of input before its closing quote
	CodeUnterminatedLiteral = "L0002"

	// L0003: a block comment hits end of input before */
	CodeUnterminatedComment = "L0003"

	// L0004: an operator run that matches no punctuator
	CodeUnknownOperator = "L0004"

	// L0005: a line comment hits end of input before a newline
	CodeMissingFinalNewline = "L0005"

	// K0001: an empty entry in the keyword list
	CodeEmptyKeyword = "K0001"

	// K0002: a keyword listed more than once
	CodeDuplicateKeyword = "K0002"

	// K0003: a keyword that is not a valid identifier
	CodeInvalidKeyword = "K0003"
)

// Describe returns a human-readable description of a diagnostic code.
func Describe(code string) string {
	switch code {
	case CodeUnexpectedChar:
		return "Character cannot start any token"
	case CodeUnterminatedLiteral:
		return "String or character literal is missing its closing quote"
	case CodeUnterminatedComment:
		return "Block comment is missing its closing */"
	case CodeUnknownOperator:
		return "Character sequence does not spell a known operator"
	case CodeMissingFinalNewline:
		return "File ends inside a line comment without a final newline"
	case CodeEmptyKeyword:
		return "Keyword table contains an empty entry"
	case CodeDuplicateKeyword:
		return "Keyword table lists the same word twice"
	case CodeInvalidKeyword:
		return "Keyword table entry is not a valid identifier"
	default:
		return "Unknown diagnostic code"
	}
}

// Category returns the range a diagnostic code belongs to.
func Category(code string) string {
	switch {
	case code >= "L0001" && code < "L0100":
		return "Lexer"
	case code >= "K0001" && code < "K0100":
		return "Keyword Table"
	default:
		return "Unknown"
	}
}
