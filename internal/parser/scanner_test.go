package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "scilla_version import as library let in fun tfun builtin match with end type of contract field transition procedure accept send event throw delete exists forall balances _sender Uint128 'A Map Emp"
	expected := []TokenType{
		SCILLA_VERSION, IMPORT, AS, LIBRARY, LET, IN, FUN, TFUN, BUILTIN, MATCH, WITH, END,
		TYPE, OF, CONTRACT, FIELD, TRANSITION, PROCEDURE, ACCEPT, SEND, EVENT, THROW, DELETE,
		EXISTS, FORALL, IDENTIFIER, SPECIAL_ID, CID, TYPE_VARIABLE, MAP, EMP, EOF,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	assert.Empty(t, scanner.Errors())
	assert.Equal(t, expected, tokenTypes(tokens))
}

func TestNumbersAndStrings(t *testing.T) {
	scanner := NewScanner(`42 0 0x0 0x1F2e "hello" "say \"hi\""`)
	tokens := scanner.ScanTokens()

	require.Empty(t, scanner.Errors())
	assert.Equal(t, []TokenType{NUMBER, NUMBER, HEX_NUMBER, HEX_NUMBER, STRING, STRING, EOF}, tokenTypes(tokens))
	assert.Equal(t, "0x1F2e", tokens[3].Lexeme)
	assert.Equal(t, `"say \"hi\""`, tokens[5].Lexeme)
}

func TestOperatorsAndBrackets(t *testing.T) {
	scanner := NewScanner(`<- := => -> & : ; , . | [ ] ( ) { } = @ - _`)
	tokens := scanner.ScanTokens()

	require.Empty(t, scanner.Errors())
	assert.Equal(t, []TokenType{
		LEFT_ARROW, ASSIGN, FAT_ARROW, ARROW, AMPERSAND, COLON, SEMICOLON, COMMA, DOT, PIPE,
		LEFT_BRACKET, RIGHT_BRACKET, LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		EQUAL, AT, MINUS, UNDERSCORE, EOF,
	}, tokenTypes(tokens))
}

func TestCommentsAreSkipped(t *testing.T) {
	input := `(* leading *)
field (* inline *) x
(***********)
(* spans
   lines *) end`

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	require.Empty(t, scanner.Errors())
	assert.Equal(t, []TokenType{FIELD, IDENTIFIER, END, EOF}, tokenTypes(tokens))
	assert.Equal(t, Position{Line: 2, Column: 1, Offset: 14}, tokens[0].Position)
	assert.Equal(t, 5, tokens[2].Position.Line)
}

func TestTokenPositions(t *testing.T) {
	tokens := NewScanner("x <- y;\n  accept").ScanTokens()

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Position)
	assert.Equal(t, Position{Line: 1, Column: 3, Offset: 2}, tokens[1].Position)
	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 10}, tokens[4].Position)
}

func TestScanErrorStopsLexing(t *testing.T) {
	scanner := NewScanner("accept\n  # send")
	tokens := scanner.ScanTokens()

	errs := scanner.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Position.Line)
	assert.Equal(t, 3, errs[0].Position.Column)

	assert.Equal(t, []TokenType{ACCEPT, EOF}, tokenTypes(tokens))
}
