package ast_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scilla/internal/ast"
)

func pos(col int) ast.Position {
	return ast.Position{Filename: "test.scilla", Line: 1, Column: col, Offset: col - 1}
}

func typeName(v string) *ast.WithMetadata[*ast.TypeNameIdentifier] {
	return ast.Wrap(&ast.TypeNameIdentifier{Name: ast.Ident{Value: v}}, pos(1), pos(len(v)+1))
}

func metaName(v string) *ast.WithMetadata[*ast.MetaIdentifier] {
	return ast.Wrap(&ast.MetaIdentifier{Kind: ast.MetaName, Name: typeName(v)}, pos(1), pos(len(v)+1))
}

func mapType(key, value string) *ast.WithMetadata[ast.ScillaType] {
	return ast.Wrap[ast.ScillaType](&ast.MapType{
		Key:   ast.Wrap(&ast.TypeMapKey{Identifier: metaName(key)}, pos(5), pos(10)),
		Value: ast.Wrap(&ast.TypeMapValue{Identifier: metaName(value)}, pos(11), pos(18)),
	}, pos(1), pos(18))
}

func label(node ast.Node) string {
	if n, ok := node.(*ast.TypeNameIdentifier); ok {
		return fmt.Sprintf("%s(%s)", n.NodeType(), n.Value())
	}
	return node.NodeType().String()
}

// recorder logs every hook call and tracks the position stack depth.
type recorder struct {
	events   []string
	depth    int
	maxDepth int
	pushes   int
	pops     int
	hook     func(mode ast.TraversalMode, node ast.Node) (ast.TraversalResult, error)
}

func (r *recorder) converter() *ast.FuncConverter {
	return &ast.FuncConverter{
		Emit: func(mode ast.TraversalMode, node ast.Node) (ast.TraversalResult, error) {
			r.events = append(r.events, mode.String()+" "+label(node))
			if r.hook != nil {
				return r.hook(mode, node)
			}
			return ast.Continue, nil
		},
		Push: func(start, end ast.Position) {
			r.pushes++
			r.depth++
			r.maxDepth = max(r.maxDepth, r.depth)
		},
		Pop: func() {
			r.pops++
			r.depth--
		},
	}
}

func TestVisitOrder(t *testing.T) {
	r := &recorder{}

	ret, err := mapType("String", "Uint128").Visit(r.converter())
	require.NoError(t, err)
	assert.Equal(t, ast.Continue, ret)

	assert.Equal(t, []string{
		"enter SCILLA_TYPE",
		"enter TYPE_MAP_KEY",
		"enter META_IDENTIFIER",
		"enter TYPE_NAME_IDENTIFIER(String)",
		"exit TYPE_NAME_IDENTIFIER(String)",
		"exit META_IDENTIFIER",
		"exit TYPE_MAP_KEY",
		"enter TYPE_MAP_VALUE",
		"enter META_IDENTIFIER",
		"enter TYPE_NAME_IDENTIFIER(Uint128)",
		"exit TYPE_NAME_IDENTIFIER(Uint128)",
		"exit META_IDENTIFIER",
		"exit TYPE_MAP_VALUE",
		"exit SCILLA_TYPE",
	}, r.events)

	assert.Equal(t, 0, r.depth, "Position stack should be balanced")
	assert.Equal(t, 4, r.maxDepth)
	assert.Equal(t, r.pushes, r.pops)
}

func TestSkipChildren(t *testing.T) {
	r := &recorder{}
	r.hook = func(mode ast.TraversalMode, node ast.Node) (ast.TraversalResult, error) {
		if mode == ast.Enter && node.NodeType() == ast.TYPE_MAP_KEY {
			return ast.SkipChildren, nil
		}
		return ast.Continue, nil
	}

	ret, err := mapType("String", "Uint128").Visit(r.converter())
	require.NoError(t, err)
	assert.Equal(t, ast.Continue, ret, "A skipped child lets its siblings run")

	assert.Equal(t, []string{
		"enter SCILLA_TYPE",
		"enter TYPE_MAP_KEY",
		"enter TYPE_MAP_VALUE",
		"enter META_IDENTIFIER",
		"enter TYPE_NAME_IDENTIFIER(Uint128)",
		"exit TYPE_NAME_IDENTIFIER(Uint128)",
		"exit META_IDENTIFIER",
		"exit TYPE_MAP_VALUE",
		"exit SCILLA_TYPE",
	}, r.events)
	assert.NotContains(t, r.events, "exit TYPE_MAP_KEY")
	assert.Equal(t, 0, r.depth)
}

func TestFailFast(t *testing.T) {
	boom := errors.New("boom")

	r := &recorder{}
	r.hook = func(mode ast.TraversalMode, node ast.Node) (ast.TraversalResult, error) {
		if n, ok := node.(*ast.TypeNameIdentifier); ok && n.Value() == "String" {
			return ast.Continue, boom
		}
		return ast.Continue, nil
	}

	_, err := mapType("String", "Uint128").Visit(r.converter())
	require.ErrorIs(t, err, boom)

	assert.Equal(t, []string{
		"enter SCILLA_TYPE",
		"enter TYPE_MAP_KEY",
		"enter META_IDENTIFIER",
		"enter TYPE_NAME_IDENTIFIER(String)",
	}, r.events, "No hook may run after the failing one")
	assert.Equal(t, 0, r.depth, "Positions are popped on the error path")
	assert.Equal(t, r.pushes, r.pops)
}

func TestExitSkipChildrenPropagates(t *testing.T) {
	r := &recorder{}
	r.hook = func(mode ast.TraversalMode, node ast.Node) (ast.TraversalResult, error) {
		if mode == ast.Exit && node.NodeType() == ast.TYPE_MAP_KEY {
			return ast.SkipChildren, nil
		}
		return ast.Continue, nil
	}

	ret, err := mapType("String", "Uint128").Visit(r.converter())
	require.NoError(t, err)
	assert.Equal(t, ast.SkipChildren, ret)

	assert.Equal(t, "exit TYPE_MAP_KEY", r.events[len(r.events)-1])
	assert.NotContains(t, r.events, "enter TYPE_MAP_VALUE")
	assert.NotContains(t, r.events, "exit SCILLA_TYPE")
	assert.Equal(t, 0, r.depth)
}

func TestComponentChildOrder(t *testing.T) {
	component := &ast.ComponentDefinition{
		Kind: ast.Transition,
		Name: ast.Wrap(&ast.ComponentID{Name: ast.Ident{Value: "getHello"}}, pos(12), pos(20)),
		Parameters: ast.Wrap(&ast.ComponentParameters{
			Parameters: []*ast.WithMetadata[*ast.ParameterPair]{
				ast.Wrap(&ast.ParameterPair{
					Identifier: ast.Wrap(&ast.TypedIdentifier{
						Name: ast.Ident{Value: "msg"},
						Annotation: ast.Wrap(&ast.TypeAnnotation{
							Type: ast.Wrap[ast.ScillaType](&ast.GenericType{Head: metaName("String")}, pos(27), pos(33)),
						}, pos(25), pos(33)),
					}, pos(21), pos(33)),
				}, pos(21), pos(33)),
			},
		}, pos(20), pos(34)),
		Body: ast.Wrap(&ast.ComponentBody{
			Statements: ast.Wrap(&ast.StatementBlock{
				Statements: []*ast.WithMetadata[ast.Statement]{
					ast.Wrap[ast.Statement](&ast.AcceptStmt{}, pos(35), pos(41)),
				},
			}, pos(35), pos(41)),
		}, pos(35), pos(41)),
	}

	r := &recorder{}
	r.hook = func(mode ast.TraversalMode, node ast.Node) (ast.TraversalResult, error) {
		if mode == ast.Enter && node.NodeType() == ast.TYPED_IDENTIFIER {
			return ast.SkipChildren, nil
		}
		return ast.Continue, nil
	}

	_, err := component.Visit(r.converter())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"enter COMPONENT_DEFINITION",
		"enter COMPONENT_ID",
		"exit COMPONENT_ID",
		"enter COMPONENT_PARAMETERS",
		"enter PARAMETER_PAIR",
		"enter TYPED_IDENTIFIER",
		"exit PARAMETER_PAIR",
		"exit COMPONENT_PARAMETERS",
		"enter COMPONENT_BODY",
		"enter STATEMENT_BLOCK",
		"enter STATEMENT",
		"exit STATEMENT",
		"exit STATEMENT_BLOCK",
		"exit COMPONENT_BODY",
		"exit COMPONENT_DEFINITION",
	}, r.events)
	assert.Equal(t, 0, r.depth)
}

func TestZeroFuncConverterContinues(t *testing.T) {
	ret, err := mapType("ByStr20", "Bool").Visit(&ast.FuncConverter{})
	require.NoError(t, err)
	assert.Equal(t, ast.Continue, ret)
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "CONTRACT_DEFINITION", ast.CONTRACT_DEFINITION.String())
	assert.Equal(t, "BYTE_STR", ast.BYTE_STR.String())
	assert.Equal(t, "NodeType(?)", ast.NodeType(-1).String())
}
