package lsp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/ax77/rcc/internal/keywords"
	"github.com/ax77/rcc/internal/lexer"
	"github.com/ax77/rcc/internal/token"
)

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"string",
	"operator",
	"comment",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
	"deprecated",
	"abstract",
}

// RccHandler implements the LSP server handlers for rcc source files.
// The server is token-driven: every request works off the lexed stream,
// never an AST.
type RccHandler struct {
	mu      sync.RWMutex
	content map[string]string
	tokens  map[string][]token.Token
}

// NewRccHandler creates and returns a new RccHandler instance
func NewRccHandler() *RccHandler {
	return &RccHandler{
		content: make(map[string]string),
		tokens:  make(map[string][]token.Token),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *RccHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false), // no additional detail resolution yet
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *RccHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("rcc LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *RccHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("rcc LSP Shutdown")
	return nil
}

// SetTrace updates the trace level requested by the client
func (h *RccHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *RccHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	diagnostics := h.updateTokens(path, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// The server advertises full sync, so the last content change always
// carries the whole document.
func (h *RccHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	content, ok := h.lookupContent(path)
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			content, ok = c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			content, ok = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			content, ok = c.Text, true
		case *protocol.TextDocumentContentChangeEvent:
			content, ok = c.Text, true
		}
	}
	if !ok {
		return fmt.Errorf("no content for %s", path)
	}

	diagnostics := h.updateTokens(path, content)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *RccHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.tokens, path)

	return nil
}

// TextDocumentCompletion offers the keyword table as completion items.
func (h *RccHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	kind := protocol.CompletionItemKindKeyword
	items := make([]protocol.CompletionItem, 0, keywords.Count())
	for _, word := range keywords.All() {
		items = append(items, protocol.CompletionItem{
			Label:  word,
			Kind:   &kind,
			Detail: ptrString("keyword"),
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *RccHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	rawURI := params.TextDocument.URI

	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	stream, err := h.getOrUpdateTokens(ctx, path, rawURI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(stream)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		} else {
			deltaStart = tok.StartChar
		}

		// Append the encoded semantic token entry
		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

func (h *RccHandler) lookupContent(path string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	content, ok := h.content[path]
	return content, ok
}

// getOrUpdateTokens returns the cached token stream for path, lexing the
// file from disk when the editor has not sent its content yet.
func (h *RccHandler) getOrUpdateTokens(ctx *glsp.Context, path string, rawURI protocol.DocumentUri) ([]token.Token, error) {
	h.mu.RLock()
	stream, ok := h.tokens[path]
	h.mu.RUnlock()

	if !ok {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}

		diagnostics := h.updateTokens(path, string(content))
		sendDiagnosticNotification(ctx, rawURI, diagnostics)

		h.mu.RLock()
		stream = h.tokens[path]
		h.mu.RUnlock()
	}

	return stream, nil
}

// updateTokens lexes content, refreshes the caches for path and returns
// the scan errors as diagnostics. The result is never nil, so publishing
// it clears stale diagnostics once a file lexes cleanly again.
func (h *RccHandler) updateTokens(path, content string) []protocol.Diagnostic {
	stream, scanErrors := lexer.LexSource(content)

	h.mu.Lock()
	h.content[path] = content
	h.tokens[path] = stream
	h.mu.Unlock()

	diagnostics := ConvertScanErrors(scanErrors)
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	return diagnostics
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return // not connected to a client
	}

	diagnosticsJSON, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		fmt.Println("Failed to marshal diagnostics:", err)
		return
	}

	log.Println("Sending diagnostics:", string(diagnosticsJSON))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrString(s string) *string {
	return &s
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}
