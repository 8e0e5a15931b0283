package lsp

import (
	"slices"

	"scilla/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

// tokenCollector gathers tokens while walking a program. The first token
// emitted at an offset wins, so a parent can classify a name before the
// generic identifier hook sees it.
type tokenCollector struct {
	tokens    []SemanticToken
	seen      map[int]bool
	positions []ast.SourceRange
}

// collectSemanticTokens walks the whole program, bodies included, and
// returns its tokens in document order.
func collectSemanticTokens(program *ast.Program) ([]SemanticToken, error) {
	if program == nil {
		return nil, nil
	}

	tc := &tokenCollector{seen: make(map[int]bool)}
	converter := &ast.FuncConverter{
		Emit: tc.emit,
		Push: func(start, end ast.Position) {
			tc.positions = append(tc.positions, ast.SourceRange{Start: start, End: end})
		},
		Pop: func() {
			tc.positions = tc.positions[:len(tc.positions)-1]
		},
	}
	if _, err := program.Visit(converter); err != nil {
		return nil, err
	}

	slices.SortStableFunc(tc.tokens, func(a, b SemanticToken) int {
		if a.Line != b.Line {
			return int(a.Line) - int(b.Line)
		}
		return int(a.StartChar) - int(b.StartChar)
	})
	return tc.tokens, nil
}

func (tc *tokenCollector) emit(mode ast.TraversalMode, node ast.Node) (ast.TraversalResult, error) {
	if mode != ast.Enter {
		return ast.Continue, nil
	}

	switch n := node.(type) {
	case *ast.ImportedName:
		tc.addRange(n.Name.Start, n.Name.End, "namespace", 1)
		if n.Alias != nil {
			tc.addRange(n.Alias.Start, n.Alias.End, "namespace", 1)
		}
	case *ast.LibraryDefinition:
		tc.addRange(n.Name.Start, n.Name.End, "namespace", 1)
	case *ast.LetDefinition:
		tc.addIdent(n.Name, "variable", 1)
	case *ast.TypeDefinition:
		tc.addRange(n.Name.Start, n.Name.End, "type", 1)
	case *ast.TypeAlternativeClause:
		tc.addRange(n.Name.Start, n.Name.End, "enumMember", 1)
	case *ast.ContractDefinition:
		tc.addRange(n.Name.Start, n.Name.End, "type", 1)
	case *ast.ContractField:
		tc.addIdent(n.TypedIdentifier.Node.Name, "property", 1)
	case *ast.ComponentDefinition:
		tc.addIdent(n.Name.Node.Name, "function", 1)
	case *ast.ComponentID:
		tc.addIdent(n.Name, "function", 0)
	case *ast.ParameterPair:
		tc.addIdent(n.Identifier.Node.Name, "parameter", 1)
	case *ast.AddressTypeField:
		tc.addIdent(n.Identifier.Node.Name, "property", 1)

	case *ast.PolyFunctionType:
		tc.addIdent(n.TypeVar, "typeParameter", 1)
	case *ast.TypeVarType:
		tc.addIdent(n.Name, "typeParameter", 0)
	case *ast.TemplateTypeArgument:
		tc.addIdent(n.Name, "typeParameter", 0)

	case *ast.MetaIdentifier:
		if n.Namespace != nil {
			tc.addRange(n.Namespace.Start, n.Namespace.End, "namespace", 0)
		}
		if n.Kind == ast.MetaByteString {
			tc.addCurrent("type")
		}
	case *ast.TypeNameIdentifier:
		tc.addCurrent("type")
		return ast.SkipChildren, nil
	case *ast.VariableIdentifier:
		if n.Namespace != nil {
			tc.addRange(n.Namespace.Start, n.Namespace.End, "namespace", 0)
		}
		tc.addIdent(n.Name, "variable", 0)
		return ast.SkipChildren, nil

	case *ast.LoadStmt:
		tc.addIdent(n.Left, "variable", 1)
	case *ast.StoreStmt:
		tc.addIdent(n.Left, "property", 0)
	case *ast.BindStmt:
		tc.addIdent(n.Left, "variable", 1)
	case *ast.MapUpdateStmt:
		tc.addIdent(n.Map, "property", 0)
	case *ast.MapGetStmt:
		tc.addIdent(n.Left, "variable", 1)
		tc.addIdent(n.Map, "property", 0)
	case *ast.MapDeleteStmt:
		tc.addIdent(n.Map, "property", 0)
	case *ast.RemoteFetchStmt:
		tc.addIdent(n.Left, "variable", 1)
		tc.addIdent(n.Address, "variable", 0)
		tc.addIdent(n.Field, "property", 0)
	case *ast.ReadFromBCStmt:
		tc.addIdent(n.Left, "variable", 1)

	case *ast.LocalBindingExpr:
		tc.addIdent(n.Name, "variable", 1)
	case *ast.FunctionExpr:
		tc.addIdent(n.Parameter, "parameter", 1)
	case *ast.TFunExpr:
		tc.addIdent(n.TypeVar, "typeParameter", 1)
	case *ast.BuiltinExpr:
		tc.addIdent(n.Name, "function", 0)
	case *ast.MessageEntry:
		tc.addIdent(n.Name, "property", 0)
	case *ast.Pattern:
		if n.Kind == ast.BinderPattern {
			tc.addIdent(n.Binder, "variable", 1)
		}
	case *ast.ArgumentPattern:
		if n.Kind == ast.BinderArgument {
			tc.addIdent(n.Binder, "variable", 1)
		}

	case *ast.ValueLiteral:
		tc.addLiteral(n)
	}
	return ast.Continue, nil
}

func (tc *tokenCollector) addLiteral(n *ast.ValueLiteral) {
	r, ok := tc.current()
	if !ok {
		return
	}
	switch n.Kind {
	case ast.StringLiteral:
		tc.addRange(r.Start, r.End, "string", 0)
	case ast.HexLiteral:
		tc.addRange(r.Start, r.End, "number", 0)
	case ast.NumericLiteral:
		// The range spans the type name too; the value ends the literal.
		start := r.End
		start.Column -= len(n.Value)
		start.Offset -= len(n.Value)
		tc.add(makeToken(start, r.End, n.Value, "number", 0))
	}
}

func (tc *tokenCollector) current() (ast.SourceRange, bool) {
	if len(tc.positions) == 0 {
		return ast.SourceRange{}, false
	}
	return tc.positions[len(tc.positions)-1], true
}

func (tc *tokenCollector) addCurrent(tokenType string) {
	if r, ok := tc.current(); ok {
		tc.addRange(r.Start, r.End, tokenType, 0)
	}
}

func (tc *tokenCollector) addIdent(id ast.Ident, tokenType string, declModifier int) {
	tc.add(makeToken(id.Pos, id.EndPos, id.Value, tokenType, declModifier))
}

// addRange emits a token for a single-line range.
func (tc *tokenCollector) addRange(start, end ast.Position, tokenType string, declModifier int) {
	if start.Line != end.Line {
		return
	}
	tc.add(makeToken(start, end, "_", tokenType, declModifier))
}

func (tc *tokenCollector) add(tokens []SemanticToken) {
	for _, token := range tokens {
		key := int(token.Line)<<20 | int(token.StartChar)
		if tc.seen[key] {
			continue
		}
		tc.seen[key] = true
		tc.tokens = append(tc.tokens, token)
	}
}

func makeToken(pos, endPos ast.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" || !pos.IsValid() {
		return nil
	}

	length := endPos.Column - pos.Column
	if length <= 0 {
		length = len(value)
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
