package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"scilla/internal/lsp"
)

func exampleURI(t *testing.T, name string) string {
	absPath, err := filepath.Abs(filepath.Join("../../examples", name))
	require.NoError(t, err, "Failed to get absolute path")
	return "file://" + filepath.ToSlash(absPath)
}

// recordingContext captures published diagnostics.
func recordingContext(published *[]*protocol.PublishDiagnosticsParams) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				*published = append(*published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewScillaHandler()

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: exampleURI(t, "HelloWorld.scilla"),
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.GreaterOrEqual(t, len(decoded), 4, "too few semantic tokens decoded")

	assertToken(t, &decoded[0], 5, 8, 9, "namespace", []string{"declaration"})
	assertToken(t, &decoded[1], 10, 9, 10, "namespace", []string{"declaration"})
	assertToken(t, &decoded[2], 12, 5, 14, "variable", []string{"declaration"})
	assertToken(t, &decoded[3], 12, 22, 5, "type", nil)

	assertHasToken(t, decoded, 12, 28, 1, "number", nil)
	assertHasToken(t, decoded, 19, 10, 10, "type", []string{"declaration"})
	assertHasToken(t, decoded, 20, 2, 5, "parameter", []string{"declaration"})
	assertHasToken(t, decoded, 20, 10, 7, "type", nil)
	assertHasToken(t, decoded, 22, 7, 11, "property", []string{"declaration"})
	assertHasToken(t, decoded, 22, 30, 2, "string", nil)
	assertHasToken(t, decoded, 24, 12, 8, "function", []string{"declaration"})
	assertHasToken(t, decoded, 24, 22, 3, "parameter", []string{"declaration"})
	assertHasToken(t, decoded, 25, 3, 8, "variable", []string{"declaration"})
	assertHasToken(t, decoded, 25, 22, 2, "function", nil)
	assertHasToken(t, decoded, 31, 5, 11, "property", nil)
	assertHasToken(t, decoded, 38, 3, 1, "variable", []string{"declaration"})

	for i := 1; i < len(decoded); i++ {
		prev, cur := decoded[i-1], decoded[i]
		require.True(t, prev.Line < cur.Line || (prev.Line == cur.Line && prev.Char < cur.Char),
			"tokens %d and %d out of order", i-1, i)
	}
}

func TestSemanticTokensForBrokenFile(t *testing.T) {
	handler := lsp.NewScillaHandler()

	tokens, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: exampleURI(t, "Broken.scilla")},
	})
	require.NoError(t, err)
	assert.Empty(t, tokens.Data)
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	var published []*protocol.PublishDiagnosticsParams
	ctx := recordingContext(&published)
	handler := lsp.NewScillaHandler()
	uri := exampleURI(t, "Broken.scilla")

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "scilla",
			Version:    1,
			Text:       "scilla_version 0\n\ncontract Broken\n(owner : ByStr20)\n\ntransition setHello (msg : String)\n  accept\n",
		},
	})
	require.NoError(t, err)
	require.Len(t, published, 1)
	require.Equal(t, uri, published[0].URI)
	require.Len(t, published[0].Diagnostics, 1)

	diag := published[0].Diagnostics[0]
	assert.Equal(t, "scilla-parser", *diag.Source)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)
	assert.Contains(t, diag.Message, "expected 'end' after transition body")
	assert.GreaterOrEqual(t, diag.Range.Start.Line, uint32(6))

	// Fixing the file clears the diagnostic.
	err = handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{
				Text: "scilla_version 0\n\ncontract Broken\n(owner : ByStr20)\n\ntransition setHello (msg : String)\n  accept\nend\n",
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Empty(t, published[1].Diagnostics)
}

func TestDidOpenUnsupportedType(t *testing.T) {
	var published []*protocol.PublishDiagnosticsParams
	handler := lsp.NewScillaHandler()

	err := handler.TextDocumentDidOpen(recordingContext(&published), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  "file:///tmp/Poly.scilla",
			Text: "scilla_version 0\ncontract Poly (f : Uint32 -> Bool)\n",
		},
	})
	require.NoError(t, err)
	require.Len(t, published, 1)
	require.Len(t, published[0].Diagnostics, 1)

	diag := published[0].Diagnostics[0]
	assert.Equal(t, "scilla-lowering", *diag.Source)
	assert.Equal(t, uint32(1), diag.Range.Start.Line)
}

func TestDidClose(t *testing.T) {
	var published []*protocol.PublishDiagnosticsParams
	ctx := recordingContext(&published)
	handler := lsp.NewScillaHandler()
	uri := "file:///tmp/Closed.scilla"

	require.NoError(t, handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "scilla_version 0\ncontract Closed ()\n"},
	}))
	require.NoError(t, handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))

	require.Len(t, published, 2)
	assert.Empty(t, published[1].Diagnostics)
}

func TestTextDocumentDocumentSymbol(t *testing.T) {
	handler := lsp.NewScillaHandler()

	result, err := handler.TextDocumentDocumentSymbol(&glsp.Context{}, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: exampleURI(t, "HelloWorld.scilla")},
	})
	require.NoError(t, err)

	symbols, ok := result.([]protocol.DocumentSymbol)
	require.True(t, ok, "unexpected result type %T", result)
	require.Len(t, symbols, 3)

	assert.Equal(t, "ListUtils", symbols[0].Name)
	assert.Equal(t, protocol.SymbolKindModule, symbols[0].Kind)

	assert.Equal(t, "HelloWorld", symbols[1].Name)
	assert.Equal(t, protocol.SymbolKindNamespace, symbols[1].Kind)
	assert.Empty(t, symbols[1].Children)

	contract := symbols[2]
	assert.Equal(t, "HelloWorld", contract.Name)
	assert.Equal(t, protocol.SymbolKindClass, contract.Kind)
	assert.Equal(t, uint32(18), contract.SelectionRange.Start.Line)

	var names []string
	var kinds []protocol.SymbolKind
	for _, child := range contract.Children {
		names = append(names, child.Name)
		kinds = append(kinds, child.Kind)
	}
	assert.Equal(t, []string{"owner", "welcome_msg", "setHello", "getHello"}, names)
	assert.Equal(t, []protocol.SymbolKind{
		protocol.SymbolKindVariable,
		protocol.SymbolKindField,
		protocol.SymbolKindMethod,
		protocol.SymbolKindMethod,
	}, kinds)
	assert.Equal(t, "String", *contract.Children[1].Detail)
}

func TestDocumentSymbolNestsConstructors(t *testing.T) {
	handler := lsp.NewScillaHandler()

	result, err := handler.TextDocumentDocumentSymbol(&glsp.Context{}, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: exampleURI(t, "Staking.scilla")},
	})
	require.NoError(t, err)

	symbols := result.([]protocol.DocumentSymbol)
	var library *protocol.DocumentSymbol
	for i := range symbols {
		if symbols[i].Kind == protocol.SymbolKindNamespace {
			library = &symbols[i]
		}
	}
	require.NotNil(t, library, "library symbol missing")
	require.NotEmpty(t, library.Children)

	for _, typ := range library.Children {
		assert.Equal(t, protocol.SymbolKindEnum, typ.Kind)
		require.NotEmpty(t, typ.Children, "type %s has no constructors", typ.Name)
		for _, ctor := range typ.Children {
			assert.Equal(t, protocol.SymbolKindEnumMember, ctor.Kind)
		}
	}
}

func TestConvertError(t *testing.T) {
	assert.Empty(t, lsp.ConvertError(nil))

	diags := lsp.ConvertError(fmt.Errorf("boom"))
	require.Len(t, diags, 1)
	assert.Equal(t, "boom", diags[0].Message)
	assert.Equal(t, "scilla", *diags[0].Source)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
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

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}

func assertHasToken(t *testing.T, tokens []DecodedToken, line, char, length uint32, tokenType string, modifiers []string) {
	for i := range tokens {
		if tokens[i].Line == line && tokens[i].Char == char {
			assertToken(t, &tokens[i], line, char, length, tokenType, modifiers)
			return
		}
	}
	t.Fatalf("no token at %d:%d", line, char)
}
