package errors

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scilla/internal/ast"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	source := `scilla_version 0
contract Test ()
transtion t ()
end`

	reporter := NewErrorReporter("test.scilla", source)

	err := Syntax(ast.Position{Line: 3, Column: 1}, "expected end of file after contract, found 'transtion'", "transtion", []string{"transition", "procedure"})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorSyntax+"]")
	assert.Contains(t, formatted, "found 'transtion'")
	assert.Contains(t, formatted, "test.scilla:3:1")
	assert.Contains(t, formatted, "contract Test ()")
	assert.Contains(t, formatted, "did you mean 'transition'?")
	assert.NotContains(t, formatted, "procedure'?")
}

func TestErrorMarkerCreation(t *testing.T) {
	reporter := NewErrorReporter("test.scilla", `field variable : Uint32 = zero`)

	marker := reporter.createMarker(7, 8, KindParse)

	assert.Equal(t, 6, strings.Count(marker, " "))
	assert.Equal(t, 8, strings.Count(marker, "^"))
}

func TestReporterWithoutPosition(t *testing.T) {
	reporter := NewErrorReporter("test.scilla", "")

	formatted := reporter.FormatError(Internal("expected identifier found type descriptor"))

	assert.Contains(t, formatted, "error["+ErrorStackMismatch+"]: expected identifier found type descriptor")
	assert.NotContains(t, formatted, "-->")
	assert.Contains(t, formatted, "help:")
}

func TestKindsAndCodes(t *testing.T) {
	pos := ast.Position{Filename: "a.scilla", Line: 2, Column: 4}

	parse := Parse(pos, "bad token")
	assert.Equal(t, KindParse, parse.Kind)
	assert.Equal(t, ErrorSyntax, parse.Code)
	assert.Equal(t, "a.scilla:2:4: parse error: bad token", parse.Error())

	visit := UnsupportedType(pos, "function")
	assert.Equal(t, KindVisit, visit.Kind)
	assert.Equal(t, ErrorUnsupportedType, visit.Code)
	assert.Equal(t, "function types are not supported", visit.Text())

	arity := TypeArity(pos, "Map", 2, 1)
	assert.Equal(t, "type 'Map' expects 2 argument(s), got 1", arity.Message)

	internal := Internal("expected %s found %s", "identifier", "variable declaration")
	assert.Equal(t, "internal error: expected identifier found variable declaration", internal.Error())

	assert.Equal(t, "Parser", GetErrorCategory(parse.Code))
	assert.Equal(t, "Lowering", GetErrorCategory(arity.Code))
	assert.Equal(t, "Internal", GetErrorCategory(internal.Code))
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
}

func TestIsMatchesKindAndCode(t *testing.T) {
	var err error = fmt.Errorf("lowering: %w", UnsupportedType(ast.Position{}, "polymorphic"))

	assert.ErrorIs(t, err, ErrVisit)
	assert.NotErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, &Error{Kind: KindVisit, Code: ErrorUnsupportedType})
	assert.NotErrorIs(t, err, &Error{Kind: KindVisit, Code: ErrorTypeArity})

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindVisit, kind)

	_, ok = KindOf(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestIOWrapsCause(t *testing.T) {
	_, cause := os.ReadFile("does-not-exist.scilla")
	require.Error(t, cause)

	err := IO("does-not-exist.scilla", cause)

	assert.Equal(t, KindIO, err.Kind)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "read does-not-exist.scilla")
	assert.Equal(t, cause, pkgerrors.Cause(err.Err))
}

func TestFormatPrintsStack(t *testing.T) {
	err := Internal("unbalanced stack")

	assert.Equal(t, "internal error: unbalanced stack", fmt.Sprintf("%v", err))
	verbose := fmt.Sprintf("%+v", err)
	assert.Contains(t, verbose, "unbalanced stack")
	assert.Contains(t, verbose, "errors_test.go", "The wrapped cause should carry the caller's stack")
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("field", "field"))
	assert.Equal(t, 2, levenshteinDistance("feild", "field"))
	assert.Equal(t, 1, levenshteinDistance("transtion", "transition"))
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarNameFinding(t *testing.T) {
	keywords := []string{"transition", "procedure", "field", "contract"}

	assert.Equal(t, []string{"transition"}, findSimilarNames("transtion", keywords))
	assert.Equal(t, []string{"field"}, findSimilarNames("feld", keywords))
	assert.Empty(t, findSimilarNames("field", keywords), "Exact matches are not suggestions")
	assert.Empty(t, findSimilarNames("verydifferent", keywords))
}
