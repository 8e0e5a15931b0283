package scilla

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scilla/contract"
	"scilla/internal/errors"
	"scilla/internal/lowering"
)

func TestParseContractFileHelloWorld(t *testing.T) {
	c, err := ParseContractFile(filepath.Join("examples", "HelloWorld.scilla"))
	require.NoError(t, err)

	want := contract.Contract{
		Name:       "HelloWorld",
		InitParams: contract.FieldList{contract.NewField("owner", contract.ByStr20)},
		Fields:     contract.FieldList{contract.NewField("welcome_msg", contract.String)},
		Transitions: contract.TransitionList{
			contract.NewTransition("setHello", contract.NewField("msg", contract.String)),
			contract.NewTransition("getHello"),
		},
		Library: "HelloWorld",
		Imports: []contract.Import{{Name: "ListUtils"}},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("contract mismatch (-want +got):\n%s", diff)
	}
}

func TestParseContractBroken(t *testing.T) {
	c, err := ParseContractFile(filepath.Join("examples", "Broken.scilla"))
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.False(t, IsVisitError(err))
	assert.Empty(t, c.Name)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "expected 'end' after transition body, found end of file", perr.Message)
	assert.Equal(t, filepath.Join("examples", "Broken.scilla"), perr.Position.Filename)
}

func TestParseContractFileMissing(t *testing.T) {
	_, err := ParseContractFile(filepath.Join("examples", "Missing.scilla"))
	require.Error(t, err)
	assert.True(t, IsIOError(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "Missing.scilla")
}

func TestParseContractSuggestsKeyword(t *testing.T) {
	_, err := ParseContract("scilla_version 0\ncontract C ()\nfeild x : Uint32 = Uint32 0\n")
	require.Error(t, err)
	assert.True(t, IsParseError(err))

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Position.Line)
	assert.Equal(t, 5, perr.Length)
	assert.Contains(t, perr.Suggestions, "did you mean 'field'?")
}

func TestParseContractInvalidCharacter(t *testing.T) {
	_, err := ParseContract("scilla_version 0\ncontract C () $\n")
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.ErrorIs(t, err, &errors.Error{Kind: errors.KindParse, Code: errors.ErrorInvalidCharacter})
}

func TestParseContractUnsupportedType(t *testing.T) {
	_, err := ParseContract("scilla_version 0\ncontract C (f : Uint32 -> Bool)\n")
	require.Error(t, err)
	assert.True(t, IsVisitError(err))
	assert.False(t, IsInternalError(err))
}

func TestParseContractZeroParameterTransition(t *testing.T) {
	c, err := ParseContract("scilla_version 0\ncontract C ()\ntransition ping ()\n  accept\nend\n")
	require.NoError(t, err)
	require.Len(t, c.Transitions, 1)
	assert.Equal(t, "ping", c.Transitions[0].Name)
	assert.Empty(t, c.Transitions[0].Params)
	assert.Empty(t, c.InitParams)
}

func TestAnalyze(t *testing.T) {
	a, err := Analyze("Staking.scilla", `scilla_version 0
library Staking
type Status = | Active | Paused
contract Staking (owner : ByStr20)
field status : Status = Active
`)
	require.NoError(t, err)
	require.NotNil(t, a.Program)
	assert.Equal(t, "Staking", a.Contract.Library)

	var kinds []lowering.SymbolKind
	for _, sym := range a.Symbols {
		kinds = append(kinds, sym.Kind)
	}
	assert.Equal(t, []lowering.SymbolKind{
		lowering.ConstructorSymbol,
		lowering.ConstructorSymbol,
		lowering.TypeSymbol,
		lowering.InitParamSymbol,
		lowering.FieldSymbol,
	}, kinds)
	assert.Equal(t, "Staking.scilla", a.Symbols[0].Start.Filename)
}

func TestIsErrorHelpers(t *testing.T) {
	assert.False(t, IsParseError(nil))
	assert.True(t, IsInternalError(errors.Internal("boom")))
	assert.False(t, IsIOError(errors.Internal("boom")))
}
