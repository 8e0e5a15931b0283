package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"scilla"
)

// Define the set of supported semantic token types (advertised in the semantic tokens legend)
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"typeParameter",
	"function",
	"variable",
	"parameter",
	"property",
	"enumMember",
	"keyword",
	"number",
	"string",
	"operator",
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

// document is the last known state of an open file. analysis is nil while
// the content does not lower.
type document struct {
	content  string
	analysis *scilla.Analysis
	err      error
}

// ScillaHandler implements the LSP server handlers for Scilla
type ScillaHandler struct {
	mu        sync.RWMutex
	documents map[string]*document
	log       commonlog.Logger
}

// NewScillaHandler creates and returns a new ScillaHandler instance
func NewScillaHandler() *ScillaHandler {
	return &ScillaHandler{
		documents: make(map[string]*document),
		log:       commonlog.GetLogger("scilla.lsp"),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *ScillaHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			DocumentSymbolProvider: ptrBool(true),
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name: "scilla",
		},
	}, nil
}

func (h *ScillaHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("initialized")
	return nil
}

func (h *ScillaHandler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *ScillaHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened text and publishes its diagnostics
func (h *ScillaHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.log.Infof("opened %s", params.TextDocument.URI)

	doc, err := h.update(params.TextDocument.URI, params.TextDocument.Text)
	if err != nil {
		return err
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, ConvertError(doc.err))
	return nil
}

// TextDocumentDidChange reparses the document from its new full text
func (h *ScillaHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.log.Debugf("changed %s", params.TextDocument.URI)

	text, ok := latestText(params.ContentChanges)
	if !ok {
		return nil
	}
	doc, err := h.update(params.TextDocument.URI, text)
	if err != nil {
		return err
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, ConvertError(doc.err))
	return nil
}

// latestText returns the last whole-document change. Incremental changes
// are not advertised and are ignored.
func latestText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch c := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			return c.Text, true
		}
	}
	return "", false
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *ScillaHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.log.Infof("closed %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	delete(h.documents, path)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentDocumentSymbol returns the contract outline
func (h *ScillaHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, err := h.getOrUpdate(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if doc.analysis == nil {
		return []protocol.DocumentSymbol{}, nil
	}
	return collectDocumentSymbols(doc.analysis), nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *ScillaHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	h.log.Debugf("semantic tokens for %s", params.TextDocument.URI)

	doc, err := h.getOrUpdate(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if doc.analysis == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}

	tokens, err := collectSemanticTokens(doc.analysis.Program)
	if err != nil {
		return nil, err
	}
	return &protocol.SemanticTokens{Data: encodeSemanticTokens(tokens)}, nil
}

// encodeSemanticTokens writes tokens in LSP wire format (delta-line, delta-start compression)
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}
	return data
}

// getOrUpdate returns the open document, reading it from disk when the
// client never opened it.
func (h *ScillaHandler) getOrUpdate(ctx *glsp.Context, rawURI protocol.DocumentUri) (*document, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.RLock()
	doc, ok := h.documents[path]
	h.mu.RUnlock()
	if ok {
		return doc, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	doc, err = h.update(rawURI, string(content))
	if err != nil {
		return nil, err
	}
	sendDiagnosticNotification(ctx, rawURI, ConvertError(doc.err))
	return doc, nil
}

// update lowers content on a fresh engine and stores the result.
func (h *ScillaHandler) update(rawURI protocol.DocumentUri, content string) (*document, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	doc := &document{content: content}
	doc.analysis, doc.err = scilla.Analyze(path, content)
	if doc.err != nil {
		h.log.Debugf("%s: %s", path, doc.err)
	}

	h.mu.Lock()
	h.documents[path] = doc
	h.mu.Unlock()

	return doc, nil
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

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
