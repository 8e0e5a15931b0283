package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER    // balances, msg
	CID           // Uint128, HelloWorld
	SPECIAL_ID    // _sender, _tag
	TYPE_VARIABLE // 'A
	NUMBER
	HEX_NUMBER
	STRING

	// Keywords
	SCILLA_VERSION
	IMPORT
	AS
	LIBRARY
	LET
	IN
	FUN
	TFUN
	BUILTIN
	MATCH
	WITH
	END
	TYPE
	OF
	CONTRACT
	FIELD
	TRANSITION
	PROCEDURE
	ACCEPT
	SEND
	EVENT
	THROW
	DELETE
	EXISTS
	FORALL
	MAP
	EMP

	// Operators
	LEFT_ARROW // <-
	ASSIGN     // :=
	FAT_ARROW  // =>
	ARROW      // ->
	AMPERSAND  // &
	EQUAL      // =
	AT         // @
	MINUS      // -
	PIPE       // |
	UNDERSCORE // _

	// Separators
	COLON
	SEMICOLON
	COMMA
	DOT

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
)

var tokenTypeNames = map[TokenType]string{
	ILLEGAL:        "ILLEGAL",
	EOF:            "EOF",
	IDENTIFIER:     "IDENTIFIER",
	CID:            "CID",
	SPECIAL_ID:     "SPECIAL_ID",
	TYPE_VARIABLE:  "TYPE_VARIABLE",
	NUMBER:         "NUMBER",
	HEX_NUMBER:     "HEX_NUMBER",
	STRING:         "STRING",
	SCILLA_VERSION: "SCILLA_VERSION",
	IMPORT:         "IMPORT",
	AS:             "AS",
	LIBRARY:        "LIBRARY",
	LET:            "LET",
	IN:             "IN",
	FUN:            "FUN",
	TFUN:           "TFUN",
	BUILTIN:        "BUILTIN",
	MATCH:          "MATCH",
	WITH:           "WITH",
	END:            "END",
	TYPE:           "TYPE",
	OF:             "OF",
	CONTRACT:       "CONTRACT",
	FIELD:          "FIELD",
	TRANSITION:     "TRANSITION",
	PROCEDURE:      "PROCEDURE",
	ACCEPT:         "ACCEPT",
	SEND:           "SEND",
	EVENT:          "EVENT",
	THROW:          "THROW",
	DELETE:         "DELETE",
	EXISTS:         "EXISTS",
	FORALL:         "FORALL",
	MAP:            "MAP",
	EMP:            "EMP",
	LEFT_ARROW:     "LEFT_ARROW",
	ASSIGN:         "ASSIGN",
	FAT_ARROW:      "FAT_ARROW",
	ARROW:          "ARROW",
	AMPERSAND:      "AMPERSAND",
	EQUAL:          "EQUAL",
	AT:             "AT",
	MINUS:          "MINUS",
	PIPE:           "PIPE",
	UNDERSCORE:     "UNDERSCORE",
	COLON:          "COLON",
	SEMICOLON:      "SEMICOLON",
	COMMA:          "COMMA",
	DOT:            "DOT",
	LEFT_PAREN:     "LEFT_PAREN",
	RIGHT_PAREN:    "RIGHT_PAREN",
	LEFT_BRACE:     "LEFT_BRACE",
	RIGHT_BRACE:    "RIGHT_BRACE",
	LEFT_BRACKET:   "LEFT_BRACKET",
	RIGHT_BRACKET:  "RIGHT_BRACKET",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "TokenType(?)"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

type ParseError struct {
	Message  string
	Position Position
	Found    string // offending lexeme, empty at end of file
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // optional: how many characters it covers
}
