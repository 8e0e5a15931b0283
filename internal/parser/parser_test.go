package parser

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scilla/internal/ast"
)

func parseOK(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, parseErrors, scanErrors := ParseSource("test.scilla", source)
	require.Empty(t, scanErrors, "Should have no scan errors")
	require.Empty(t, parseErrors, "Should have no parse errors")
	require.NotNil(t, program, "Program should be parsed")
	return program
}

func contractSource(body string) string {
	return "scilla_version 0\ncontract Test ()\n" + body
}

func fieldType(t *testing.T, source string) ast.ScillaType {
	t.Helper()
	program := parseOK(t, contractSource(source))
	require.Len(t, program.Contract.Node.Fields, 1)
	return program.Contract.Node.Fields[0].Node.TypedIdentifier.Node.Annotation.Node.Type.Node
}

func firstStatement(t *testing.T, body string) ast.Statement {
	t.Helper()
	program := parseOK(t, contractSource("transition t ()\n"+body+"\nend"))
	stmts := program.Contract.Node.Components[0].Node.Body.Node.Statements.Node.Statements
	require.NotEmpty(t, stmts)
	return stmts[0].Node
}

func TestParseMinimalContract(t *testing.T) {
	program := parseOK(t, "scilla_version 0\ncontract Empty ()")

	assert.Equal(t, 0, program.Version)
	assert.Nil(t, program.Imports)
	assert.Nil(t, program.Library)
	assert.Equal(t, "Empty", program.Contract.Node.Name.Node.Value())
	assert.Empty(t, program.Contract.Node.Parameters.Node.Parameters)
	assert.Empty(t, program.Contract.Node.Components)
}

func TestParseHelloWorldFile(t *testing.T) {
	source, err := os.ReadFile("../../examples/HelloWorld.scilla")
	require.NoError(t, err)

	program := parseOK(t, string(source))

	require.NotNil(t, program.Imports)
	require.Len(t, program.Imports.Node.Imports, 1)
	assert.Equal(t, "ListUtils", program.Imports.Node.Imports[0].Node.Name.Node.Value())

	require.NotNil(t, program.Library)
	assert.Equal(t, "HelloWorld", program.Library.Node.Name.Node.Value())
	assert.Len(t, program.Library.Node.Definitions, 2)

	contract := program.Contract.Node
	assert.Equal(t, "HelloWorld", contract.Name.Node.Value())
	require.Len(t, contract.Parameters.Node.Parameters, 1)
	assert.Equal(t, "owner", contract.Parameters.Node.Parameters[0].Node.Identifier.Node.Name.Value)
	require.Len(t, contract.Fields, 1)
	require.Len(t, contract.Components, 2)

	setHello := contract.Components[0].Node
	assert.Equal(t, ast.Transition, setHello.Kind)
	assert.Equal(t, "setHello", setHello.Name.Node.Name.Value)
	assert.Len(t, setHello.Body.Node.Statements.Node.Statements, 2)

	match, ok := setHello.Body.Node.Statements.Node.Statements[1].Node.(*ast.MatchStmt)
	require.True(t, ok, "Second statement should be a match")
	assert.Len(t, match.Clauses, 2)
	assert.Len(t, match.Clauses[1].Node.Body.Node.Statements, 3)
}

func TestParseStakingFile(t *testing.T) {
	source, err := os.ReadFile("../../examples/Staking.scilla")
	require.NoError(t, err)

	program := parseOK(t, string(source))

	imports := program.Imports.Node.Imports
	require.Len(t, imports, 2)
	assert.Nil(t, imports[0].Node.Alias)
	require.NotNil(t, imports[1].Node.Alias)
	assert.Equal(t, "LU", imports[1].Node.Alias.Node.Value())

	defs := program.Library.Node.Definitions
	require.Len(t, defs, 6)
	stake, ok := defs[0].Node.(*ast.TypeDefinition)
	require.True(t, ok)
	require.Len(t, stake.Clauses, 2)
	assert.Len(t, stake.Clauses[0].Node.Arguments, 2)
	assert.Empty(t, stake.Clauses[1].Node.Arguments)

	contract := program.Contract.Node
	assert.NotNil(t, contract.Constraint)
	assert.Len(t, contract.Fields, 5)
	require.Len(t, contract.Components, 5)
	assert.Equal(t, ast.Procedure, contract.Components[0].Node.Kind)
	assert.Equal(t, "ThrowError", contract.Components[0].Node.Name.Node.Name.Value)
	assert.Equal(t, ast.Transition, contract.Components[2].Node.Kind)
}

func TestParseMapWithEnclosedValue(t *testing.T) {
	typ := fieldType(t, "field m : Map String (Pair ByStr20 BNum) = Emp String (Pair ByStr20 BNum)")

	m, ok := typ.(*ast.MapType)
	require.True(t, ok, "Expected a map type, got %T", typ)
	assert.Equal(t, "String", m.Key.Node.Identifier.Node.Name.Node.Value())
	require.NotNil(t, m.Value.Node.Type)

	enclosed, ok := m.Value.Node.Type.Node.(*ast.EnclosedType)
	require.True(t, ok)
	pair, ok := enclosed.Inner.Node.(*ast.GenericType)
	require.True(t, ok)
	assert.Equal(t, "Pair", pair.Head.Node.Name.Node.Value())
	assert.Len(t, pair.Arguments, 2)
}

func TestParseNestedMap(t *testing.T) {
	typ := fieldType(t, "field m : Map ByStr20 Map ByStr20 Uint128 = Emp ByStr20 (Map ByStr20 Uint128)")

	m := typ.(*ast.MapType)
	require.NotNil(t, m.Value.Node.Entry)
	assert.Equal(t, "Uint128", m.Value.Node.Entry.Node.Value.Node.Identifier.Node.Name.Node.Value())
}

func TestParseAddressType(t *testing.T) {
	program := parseOK(t, "scilla_version 0\ncontract C (t : ByStr20 with contract field balances : Map ByStr20 Uint128, field paused : Bool end)")

	param := program.Contract.Node.Parameters.Node.Parameters[0].Node.Identifier.Node
	addr, ok := param.Annotation.Node.Type.Node.(*ast.AddressScillaType)
	require.True(t, ok)
	assert.Equal(t, "contract", addr.Address.Node.TypeName)
	assert.Equal(t, ast.ByteStringType, addr.Address.Node.Identifier.Node.Kind)
	require.Len(t, addr.Address.Node.Fields, 2)
	assert.Equal(t, "paused", addr.Address.Node.Fields[1].Node.Identifier.Node.Name.Value)
}

func TestParseBareAddressType(t *testing.T) {
	typ := fieldType(t, "field a : ByStr20 with end = zero")

	addr, ok := typ.(*ast.AddressScillaType)
	require.True(t, ok)
	assert.Empty(t, addr.Address.Node.TypeName)
	assert.Empty(t, addr.Address.Node.Fields)
}

func TestParseQualifiedTypeNames(t *testing.T) {
	typ := fieldType(t, "field s : Option Lib.Status = None {Lib.Status}")

	g := typ.(*ast.GenericType)
	require.Len(t, g.Arguments, 1)
	arg := g.Arguments[0].Node.(*ast.GenericTypeArgument)
	assert.Equal(t, ast.MetaNameInNamespace, arg.Identifier.Node.Kind)
	assert.Equal(t, "Lib", arg.Identifier.Node.Namespace.Node.Value())
	assert.Equal(t, "Status", arg.Identifier.Node.Name.Node.Value())

	typ = fieldType(t, "field s : 0x1234.Status = x")
	g = typ.(*ast.GenericType)
	assert.Equal(t, ast.MetaNameInHexspace, g.Head.Node.Kind)
	assert.Equal(t, "0x1234", g.Head.Node.Hexspace)

	typ = fieldType(t, "field b : ByStr = x")
	assert.Equal(t, ast.MetaByteString, typ.(*ast.GenericType).Head.Node.Kind)
}

func TestParseFunctionAndPolyTypes(t *testing.T) {
	typ := fieldType(t, "field f : Uint128 -> Uint128 -> Bool = g")
	fn, ok := typ.(*ast.FunctionType)
	require.True(t, ok)
	_, ok = fn.To.Node.(*ast.FunctionType)
	assert.True(t, ok, "Arrows should associate to the right")

	typ = fieldType(t, "field f : forall 'A. List 'A -> Uint32 = g")
	poly, ok := typ.(*ast.PolyFunctionType)
	require.True(t, ok)
	assert.Equal(t, "'A", poly.TypeVar.Value)
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name string
		body string
		want any
	}{
		{"load", "x <- f", &ast.LoadStmt{}},
		{"store", "f := x", &ast.StoreStmt{}},
		{"bind", "x = builtin add a b", &ast.BindStmt{}},
		{"map update", "m[a][b] := v", &ast.MapUpdateStmt{}},
		{"map get", "v <- m[a]", &ast.MapGetStmt{}},
		{"map exists", "v <- exists m[a]", &ast.MapGetStmt{}},
		{"map delete", "delete m[a]", &ast.MapDeleteStmt{}},
		{"blockchain read", "b <- & BLOCKNUMBER", &ast.ReadFromBCStmt{}},
		{"blockchain query", "b <- & TIMESTAMP(bnum)", &ast.ReadFromBCStmt{}},
		{"remote read", "b <- & token.balances[owner]", &ast.RemoteFetchStmt{}},
		{"remote exists", "b <- & exists token.balances[owner]", &ast.RemoteFetchStmt{}},
		{"address cast", "c <- & addr as ByStr20 with contract field paused : Bool end", &ast.RemoteFetchStmt{}},
		{"accept", "accept", &ast.AcceptStmt{}},
		{"send", "send msgs", &ast.SendStmt{}},
		{"event", "event e", &ast.EventStmt{}},
		{"bare throw", "throw", &ast.ThrowStmt{}},
		{"throw", "throw err", &ast.ThrowStmt{}},
		{"procedure call", "ThrowError code", &ast.CallProcStmt{}},
		{"lowercase procedure call", "do_transfer from to amount", &ast.CallProcStmt{}},
		{"forall", "forall items handle", &ast.IterateStmt{}},
		{"match", "match x with | Some v => y := v | None => end", &ast.MatchStmt{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, firstStatement(t, tt.body))
		})
	}
}

func TestParseRemoteFetchShape(t *testing.T) {
	stmt := firstStatement(t, "b <- & exists token.balances[owner][spender]").(*ast.RemoteFetchStmt)

	assert.True(t, stmt.Exists)
	assert.Equal(t, "token", stmt.Address.Value)
	assert.Equal(t, "balances", stmt.Field.Value)
	assert.Len(t, stmt.Keys, 2)
	assert.Nil(t, stmt.Cast)
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want any
	}{
		{"let in", "let a = Uint32 1 in a", &ast.LocalBindingExpr{}},
		{"fun", "fun (a : Uint32) => a", &ast.FunctionExpr{}},
		{"tfun", "tfun 'A => fun (l : List 'A) => l", &ast.TFunExpr{}},
		{"type application", "@list_length Message", &ast.TAppExpr{}},
		{"builtin", "builtin add a b", &ast.BuiltinExpr{}},
		{"builtin unit", "builtin to_string ()", &ast.BuiltinExpr{}},
		{"message", `{_tag : "Transfer"; _amount : Uint128 0; to : to}`, &ast.MessageExpr{}},
		{"match", "match o with | Some v => v | None => zero end", &ast.MatchExpr{}},
		{"string", `"hello"`, &ast.AtomicExpr{}},
		{"negative number", "Int32 -1", &ast.AtomicExpr{}},
		{"empty map", "Emp ByStr20 Uint128", &ast.AtomicExpr{}},
		{"constructor", "Cons {Message} msg nil", &ast.ConstructorCallExpr{}},
		{"nullary constructor", "True", &ast.ConstructorCallExpr{}},
		{"application", "one_msg msg", &ast.FunctionCallExpr{}},
		{"namespaced variable", "Lib.zero", &ast.AtomicExpr{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := firstStatement(t, "x = "+tt.expr).(*ast.BindStmt)
			assert.IsType(t, tt.want, stmt.Right.Node)
		})
	}
}

func TestParseLiteralValues(t *testing.T) {
	stmt := firstStatement(t, "x = Int32 -42").(*ast.BindStmt)
	lit := stmt.Right.Node.(*ast.AtomicExpr).Atom.Node.Literal.Node
	assert.Equal(t, ast.NumericLiteral, lit.Kind)
	assert.Equal(t, "-42", lit.Value)
	assert.Equal(t, "Int32", lit.Type.Node.Value())

	stmt = firstStatement(t, `x = "hi there"`).(*ast.BindStmt)
	lit = stmt.Right.Node.(*ast.AtomicExpr).Atom.Node.Literal.Node
	assert.Equal(t, ast.StringLiteral, lit.Kind)
	assert.Equal(t, "hi there", lit.Value)
}

func TestParsePatterns(t *testing.T) {
	stmt := firstStatement(t, "match p with | Pair (Some a) _ => accept | Cons h t => accept | x => accept | _ => accept end").(*ast.MatchStmt)
	require.Len(t, stmt.Clauses, 4)

	pair := stmt.Clauses[0].Node.Pattern.Node
	assert.Equal(t, ast.ConstructorPattern, pair.Kind)
	require.Len(t, pair.Arguments, 2)
	assert.Equal(t, ast.PatternArgument, pair.Arguments[0].Node.Kind)
	assert.Equal(t, ast.WildcardArgument, pair.Arguments[1].Node.Kind)

	assert.Equal(t, ast.BinderPattern, stmt.Clauses[2].Node.Pattern.Node.Kind)
	assert.Equal(t, ast.WildcardPattern, stmt.Clauses[3].Node.Pattern.Node.Kind)
}

func TestNodeRanges(t *testing.T) {
	program := parseOK(t, "scilla_version 0\ncontract C ()\nfield x : Uint32 = Uint32 0")

	field := program.Contract.Node.Fields[0]
	assert.Equal(t, ast.Position{Filename: "test.scilla", Line: 3, Column: 1, Offset: 31}, field.Start)
	assert.Equal(t, 3, field.End.Line)
	assert.Equal(t, 28, field.End.Column)

	assert.Equal(t, 2, program.Contract.Start.Line)
	assert.Equal(t, field.End, program.Contract.End)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		message string
		line    int
	}{
		{"missing version", "contract C ()", "expected 'scilla_version' at start of file, found 'contract'", 1},
		{"unterminated transition", "scilla_version 0\ncontract C ()\ntransition t ()\n  accept", "expected 'end' after transition body, found end of file", 4},
		{"missing field type", "scilla_version 0\ncontract C ()\nfield x = Uint32 0", "expected ':' before type, found '='", 3},
		{"stray token", "scilla_version 0\ncontract C ()\n]", "expected end of file after contract, found ']'", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, parseErrors, scanErrors := ParseSource("test.scilla", tt.source)
			assert.Nil(t, program)
			assert.Empty(t, scanErrors)
			require.Len(t, parseErrors, 1, "The parser stops at the first error")
			assert.Equal(t, tt.message, parseErrors[0].Message)
			assert.Equal(t, tt.line, parseErrors[0].Position.Line)
		})
	}
}

func TestParseSourceSkipsParserOnScanError(t *testing.T) {
	program, parseErrors, scanErrors := ParseSource("test.scilla", "scilla_version 0\ncontract C () #")

	assert.Nil(t, program)
	assert.Empty(t, parseErrors)
	assert.Len(t, scanErrors, 1)
}
