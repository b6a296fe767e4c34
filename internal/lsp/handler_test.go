package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/ax77/rcc/internal/keywords"
	"github.com/ax77/rcc/internal/lexer"
	"github.com/ax77/rcc/internal/lsp"
	"github.com/ax77/rcc/internal/token"
)

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewRccHandler()

	absPath, err := filepath.Abs(filepath.Join("../../examples", "demo.rs"))
	require.NoError(t, err, "Failed to get absolute path")

	uri := "file://" + filepath.ToSlash(absPath)

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: uri,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 59, "demo.rs should produce one entry per visible token")

	assertToken(t, &decoded[0], 1, 1, 13, "comment")
	assertToken(t, &decoded[1], 2, 1, 2, "keyword")
	assertToken(t, &decoded[2], 2, 4, 3, "variable")
	assertToken(t, &decoded[3], 2, 7, 1, "operator")
	assertToken(t, &decoded[4], 2, 8, 1, "variable")
	assertToken(t, &decoded[5], 2, 9, 1, "operator")
	assertToken(t, &decoded[6], 2, 11, 3, "variable")
	assertToken(t, &decoded[7], 2, 14, 1, "operator")
	assertToken(t, &decoded[8], 2, 16, 1, "variable")
	assertToken(t, &decoded[9], 2, 17, 1, "operator")
	assertToken(t, &decoded[10], 2, 19, 3, "variable")
	assertToken(t, &decoded[11], 2, 22, 1, "operator")
	assertToken(t, &decoded[12], 2, 24, 2, "operator")
	assertToken(t, &decoded[13], 2, 27, 3, "variable")
	assertToken(t, &decoded[14], 2, 31, 1, "operator")
	assertToken(t, &decoded[15], 3, 5, 6, "keyword")
	assertToken(t, &decoded[16], 3, 12, 1, "variable")
	assertToken(t, &decoded[17], 3, 14, 1, "operator")
	assertToken(t, &decoded[18], 3, 16, 1, "variable")
	assertToken(t, &decoded[19], 3, 17, 1, "operator")
	assertToken(t, &decoded[20], 4, 1, 1, "operator")
	assertToken(t, &decoded[21], 6, 1, 2, "keyword")
	assertToken(t, &decoded[22], 6, 4, 4, "variable")
	assertToken(t, &decoded[23], 6, 8, 1, "operator")
	assertToken(t, &decoded[24], 6, 9, 1, "operator")
	assertToken(t, &decoded[25], 6, 11, 1, "operator")
	assertToken(t, &decoded[26], 7, 5, 3, "keyword")
	assertToken(t, &decoded[27], 7, 9, 1, "variable")
	assertToken(t, &decoded[28], 7, 11, 1, "operator")
	assertToken(t, &decoded[29], 7, 13, 3, "variable")
	assertToken(t, &decoded[30], 7, 16, 1, "operator")
	assertToken(t, &decoded[31], 7, 17, 1, "number")
	assertToken(t, &decoded[32], 7, 18, 1, "operator")
	assertToken(t, &decoded[33], 7, 20, 1, "number")
	assertToken(t, &decoded[34], 7, 21, 1, "operator")
	assertToken(t, &decoded[35], 7, 22, 1, "operator")
	assertToken(t, &decoded[36], 8, 5, 3, "keyword")
	assertToken(t, &decoded[37], 8, 9, 1, "variable")
	assertToken(t, &decoded[38], 8, 11, 1, "operator")
	assertToken(t, &decoded[39], 8, 13, 4, "string")
	assertToken(t, &decoded[40], 8, 17, 1, "operator")
	assertToken(t, &decoded[41], 9, 5, 2, "keyword")
	assertToken(t, &decoded[42], 9, 8, 1, "variable")
	assertToken(t, &decoded[43], 9, 10, 2, "operator")
	assertToken(t, &decoded[44], 9, 13, 1, "number")
	assertToken(t, &decoded[45], 9, 15, 1, "operator")
	assertToken(t, &decoded[46], 10, 9, 1, "variable")
	assertToken(t, &decoded[47], 10, 11, 2, "operator")
	assertToken(t, &decoded[48], 10, 14, 1, "number")
	assertToken(t, &decoded[49], 10, 15, 1, "operator")
	assertToken(t, &decoded[50], 11, 5, 1, "operator")
	assertToken(t, &decoded[51], 11, 7, 4, "keyword")
	assertToken(t, &decoded[52], 11, 12, 1, "operator")
	assertToken(t, &decoded[53], 12, 9, 1, "variable")
	assertToken(t, &decoded[54], 12, 11, 2, "operator")
	assertToken(t, &decoded[55], 12, 14, 1, "number")
	assertToken(t, &decoded[56], 12, 15, 1, "operator")
	assertToken(t, &decoded[57], 13, 5, 1, "operator")
	assertToken(t, &decoded[58], 14, 1, 1, "operator")
}

func TestKeywordTokensMatchTable(t *testing.T) {
	handler := lsp.NewRccHandler()

	uri := "file:///virtual/keywords.rs"
	ctx := &glsp.Context{}

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  uri,
			Text: "fn main() { let x = 1; if x >= 2 { x } else { x } }",
		},
	})
	require.NoError(t, err)

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)

	var kw int
	for _, d := range decoded {
		if d.Type == "keyword" {
			kw++
		}
	}
	assert.Equal(t, 4, kw, "fn, let, if and else should classify as keywords")
}

func TestDidChangeReplacesContent(t *testing.T) {
	handler := lsp.NewRccHandler()

	uri := "file:///virtual/buffer.rs"
	ctx := &glsp.Context{}

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "fn"},
	})
	require.NoError(t, err)

	change := &protocol.DidChangeTextDocumentParams{
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "let y"},
		},
	}
	change.TextDocument.URI = uri
	require.NoError(t, handler.TextDocumentDidChange(ctx, change))

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)

	assertToken(t, &decoded[0], 1, 1, 3, "keyword")
	assertToken(t, &decoded[1], 1, 5, 1, "variable")
}

func TestDidChangeWithoutContent(t *testing.T) {
	handler := lsp.NewRccHandler()

	change := &protocol.DidChangeTextDocumentParams{}
	change.TextDocument.URI = "file:///virtual/never-opened.rs"

	err := handler.TextDocumentDidChange(&glsp.Context{}, change)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestCompletionOffersKeywordTable(t *testing.T) {
	handler := lsp.NewRccHandler()

	result, err := handler.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok, "completion should return a CompletionList")
	require.Len(t, list.Items, keywords.Count())

	assert.Equal(t, "as", list.Items[0].Label, "items follow rank order")
	assert.Equal(t, "while", list.Items[len(list.Items)-1].Label)

	for _, item := range list.Items {
		require.NotNil(t, item.Kind)
		assert.Equal(t, protocol.CompletionItemKindKeyword, *item.Kind)
	}
}

func TestConvertScanErrors(t *testing.T) {
	scanErrors := []lexer.ScanError{
		{
			Code:     "L0002",
			Message:  "Unterminated string.",
			Position: token.Position{Line: 2, Column: 5, Offset: 10},
			Length:   4,
		},
		{
			Code:     "L0001",
			Message:  "Unexpected character.",
			Position: token.Position{Line: 1, Column: 3, Offset: 2},
		},
	}

	diagnostics := lsp.ConvertScanErrors(scanErrors)
	require.Len(t, diagnostics, 2)

	first := diagnostics[0]
	assert.Equal(t, uint32(1), first.Range.Start.Line)
	assert.Equal(t, uint32(4), first.Range.Start.Character)
	assert.Equal(t, uint32(8), first.Range.End.Character, "end should reach past the literal")
	require.NotNil(t, first.Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *first.Severity)
	require.NotNil(t, first.Code)
	assert.Equal(t, "L0002", first.Code.Value)
	require.NotNil(t, first.Source)
	assert.Equal(t, "rcc-lexer", *first.Source)
	assert.Equal(t, "Unterminated string.", first.Message)

	second := diagnostics[1]
	assert.Equal(t, uint32(0), second.Range.Start.Line)
	assert.Equal(t, uint32(2), second.Range.Start.Character)
	assert.Equal(t, uint32(6), second.Range.End.Character, "zero-length errors get a default span")
}

func TestConvertScanErrorsEmpty(t *testing.T) {
	assert.Empty(t, lsp.ConvertScanErrors(nil))
}

type decodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]decodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []decodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, decodedToken{
			Index:     i / 5,
			Line:      line + 1, // wire positions are 0-based
			Char:      char + 1,
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, tok *decodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string) {
	t.Helper()
	require.Equal(t, expectedLine, tok.Line, "token %d: line mismatch", tok.Index)
	require.Equal(t, expectedChar, tok.Char, "token %d: char mismatch", tok.Index)
	require.Equal(t, expectedLength, tok.Length, "token %d: length mismatch", tok.Index)
	require.Equal(t, expectedType, tok.Type, "token %d: type mismatch", tok.Index)
	require.Empty(t, tok.Modifiers, "token %d: no modifiers expected", tok.Index)
}
