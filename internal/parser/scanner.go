package parser

import (
	"github.com/alecthomas/participle/v2/lexer"

	"scilla/grammar"
)

// Scanner turns Scilla source into parser tokens. Lexing itself is done by
// the participle lexer in the grammar package; the scanner classifies its
// output and drops comments and whitespace.
type Scanner struct {
	filename string
	source   string
	tokens   []Token
	errors   []ScanError
	names    map[lexer.TokenType]string
	elided   map[string]bool
}

func NewScanner(source string) *Scanner {
	return NewFileScanner("", source)
}

func NewFileScanner(filename, source string) *Scanner {
	names := make(map[lexer.TokenType]string)
	for name, tt := range grammar.ScillaLexer.Symbols() {
		names[tt] = name
	}
	elided := make(map[string]bool, len(grammar.Elided))
	for _, name := range grammar.Elided {
		elided[name] = true
	}
	return &Scanner{filename: filename, source: source, names: names, elided: elided}
}

// ScanTokens lexes the whole source. The returned slice always ends with an
// EOF token. Lexing stops at the first invalid character.
func (s *Scanner) ScanTokens() []Token {
	lex, err := grammar.ScillaLexer.LexString(s.filename, s.source)
	if err != nil {
		s.reportError(err)
		return s.finish(s.errors[len(s.errors)-1].Position)
	}

	for {
		tok, err := lex.Next()
		if err != nil {
			s.reportError(err)
			return s.finish(s.errors[len(s.errors)-1].Position)
		}
		if tok.EOF() {
			return s.finish(toPosition(tok.Pos))
		}

		name := s.names[tok.Type]
		if s.elided[name] {
			continue
		}
		s.tokens = append(s.tokens, Token{
			Type:     classify(name, tok.Value),
			Lexeme:   tok.Value,
			Position: toPosition(tok.Pos),
		})
	}
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) finish(pos Position) []Token {
	if pos.Line == 0 {
		pos.Line, pos.Column = 1, 1
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: pos})
	return s.tokens
}

func (s *Scanner) reportError(err error) {
	scanErr := ScanError{Message: err.Error(), Length: 1}
	if lexErr, ok := err.(interface {
		Position() lexer.Position
		Message() string
	}); ok {
		scanErr.Message = lexErr.Message()
		scanErr.Position = toPosition(lexErr.Position())
	}
	if scanErr.Position.Line == 0 {
		scanErr.Position = Position{Line: 1, Column: 1}
	}
	s.errors = append(s.errors, scanErr)
}

func classify(symbol, lexeme string) TokenType {
	switch symbol {
	case "String":
		return STRING
	case "Hex":
		return HEX_NUMBER
	case "Number":
		return NUMBER
	case "TID":
		return TYPE_VARIABLE
	case "SpecialID":
		return SPECIAL_ID
	case "CID":
		if tt, ok := TYPE_KEYWORDS[lexeme]; ok {
			return tt
		}
		return CID
	case "ID":
		if tt, ok := KEYWORDS[lexeme]; ok {
			return tt
		}
		return IDENTIFIER
	case "Punct":
		if tt, ok := PUNCTUATION[lexeme]; ok {
			return tt
		}
	}
	return ILLEGAL
}

func toPosition(pos lexer.Position) Position {
	return Position{Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}
