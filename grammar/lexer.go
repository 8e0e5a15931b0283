// Package grammar holds the lexical grammar of Scilla.
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScillaLexer splits Scilla source into tokens. Keywords are lexed as CID or
// ID and classified by the parser's scanner.
var ScillaLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments, (* ... *), not nested
		{Name: "Comment", Pattern: `\(\*(?s:.*?)\*\)`},

		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},

		// Literals
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Hex", Pattern: `0x[0-9a-fA-F]*`},
		{Name: "Number", Pattern: `[0-9]+`},

		// Identifiers (order matters)
		{Name: "TID", Pattern: `'[A-Z][a-zA-Z0-9_]*`},
		{Name: "CID", Pattern: `[A-Z][a-zA-Z0-9_]*`},
		{Name: "SpecialID", Pattern: `_[a-zA-Z0-9_]+`},
		{Name: "ID", Pattern: `[a-z][a-zA-Z0-9_]*`},

		// Punctuation, multi-character operators first
		{Name: "Punct", Pattern: `<-|:=|=>|->|[&:;,.|\[\](){}=@_-]`},
	},
})

// Elided lists the token kinds that carry no syntax.
var Elided = []string{"Comment", "Whitespace"}
