package parser

var KEYWORDS = map[string]TokenType{
	"scilla_version": SCILLA_VERSION,
	"import":         IMPORT,
	"as":             AS,
	"library":        LIBRARY,
	"let":            LET,
	"in":             IN,
	"fun":            FUN,
	"tfun":           TFUN,
	"builtin":        BUILTIN,
	"match":          MATCH,
	"with":           WITH,
	"end":            END,
	"type":           TYPE,
	"of":             OF,
	"contract":       CONTRACT,
	"field":          FIELD,
	"transition":     TRANSITION,
	"procedure":      PROCEDURE,
	"accept":         ACCEPT,
	"send":           SEND,
	"event":          EVENT,
	"throw":          THROW,
	"delete":         DELETE,
	"exists":         EXISTS,
	"forall":         FORALL,
}

// Capitalised names with a fixed syntactic role.
var TYPE_KEYWORDS = map[string]TokenType{
	"Map": MAP,
	"Emp": EMP,
}

var PUNCTUATION = map[string]TokenType{
	"<-": LEFT_ARROW,
	":=": ASSIGN,
	"=>": FAT_ARROW,
	"->": ARROW,
	"&":  AMPERSAND,
	"=":  EQUAL,
	"@":  AT,
	"-":  MINUS,
	"|":  PIPE,
	"_":  UNDERSCORE,
	":":  COLON,
	";":  SEMICOLON,
	",":  COMMA,
	".":  DOT,
	"(":  LEFT_PAREN,
	")":  RIGHT_PAREN,
	"{":  LEFT_BRACE,
	"}":  RIGHT_BRACE,
	"[":  LEFT_BRACKET,
	"]":  RIGHT_BRACKET,
}

// Integer and block number types, which prefix numeric literals.
var NUMERIC_TYPES = map[string]bool{
	"Int32":   true,
	"Int64":   true,
	"Int128":  true,
	"Int256":  true,
	"Uint32":  true,
	"Uint64":  true,
	"Uint128": true,
	"Uint256": true,
	"BNum":    true,
}
