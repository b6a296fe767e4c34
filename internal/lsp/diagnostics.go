package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/ax77/rcc/internal/lexer"
)

// ConvertScanErrors transforms scan errors into LSP diagnostics for IDE
// display: unexpected characters, unterminated literals and comments,
// unknown operators. The diagnostic code carries the stable L-code so a
// problem keeps the same identity in the editor and on the command line.
func ConvertScanErrors(scanErrors []lexer.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		// Use the Length field if available, otherwise default span
		endChar := uint32(scanErr.Position.Column - 1 + scanErr.Length)
		if scanErr.Length == 0 {
			endChar = uint32(scanErr.Position.Column + 3) // Default small span
		}

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),   // Convert to 0-based indexing
					Character: uint32(scanErr.Position.Column - 1), // Convert to 0-based indexing
				},
				End: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: endChar,
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &protocol.IntegerOrString{Value: scanErr.Code},
			Source:   ptrString("rcc-lexer"),
			Message:  scanErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}
