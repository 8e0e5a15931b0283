package parser

import (
	"fmt"
	"regexp"

	"scilla/internal/ast"
)

// bailout unwinds the parser after the first syntax error.
type bailout struct{}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return tt == EOF
	}
	return p.peek().Type == tt
}

// checkAt reports whether the token offset positions ahead has type tt.
func (p *Parser) checkAt(offset int, tt TokenType) bool {
	i := p.current + offset
	if i >= len(p.tokens) {
		return false
	}
	return p.tokens[i].Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	return Token{}
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// errorAtCurrent records a syntax error at the current token and abandons
// the parse.
func (p *Parser) errorAtCurrent(message string) {
	tok := p.peek()
	p.errors = append(p.errors, ParseError{
		Message:  fmt.Sprintf("%s, found %s", message, describe(tok)),
		Position: tok.Position,
		Found:    tok.Lexeme,
	})
	panic(bailout{})
}

func describe(tok Token) string {
	if tok.Type == EOF {
		return "end of file"
	}
	return fmt.Sprintf("'%s'", tok.Lexeme)
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// wrapFrom wraps node with the range from the token at mark up to the last
// consumed token.
func wrapFrom[T ast.Node](p *Parser, mark int, node T) *ast.WithMetadata[T] {
	start := p.makePos(p.tokens[mark])
	end := start
	if p.current > mark {
		end = p.makeEndPos(p.previous())
	}
	return ast.Wrap(node, start, end)
}

var byteStringName = regexp.MustCompile(`^ByStr[0-9]+$`)

// typeName builds a type name identifier from a CID token.
func (p *Parser) typeName(tok Token) *ast.WithMetadata[*ast.TypeNameIdentifier] {
	id := p.makeIdent(tok)
	node := &ast.TypeNameIdentifier{Kind: ast.TypeOrEnumLike, Name: id}
	switch {
	case byteStringName.MatchString(tok.Lexeme):
		node.Kind = ast.ByteStringType
		node.ByteStr = ast.Wrap(&ast.ByteStr{Value: id}, id.Pos, id.EndPos)
	case tok.Lexeme == "Event":
		node.Kind = ast.EventType
	}
	return ast.Wrap(node, id.Pos, id.EndPos)
}

func (p *Parser) consumeTypeName(message string) *ast.WithMetadata[*ast.TypeNameIdentifier] {
	return p.typeName(p.consume(CID, message))
}

func (p *Parser) consumeIdent(message string) ast.Ident {
	return p.makeIdent(p.consume(IDENTIFIER, message))
}

// consumeName accepts a regular or a special identifier.
func (p *Parser) consumeName(message string) ast.Ident {
	if p.match(IDENTIFIER, SPECIAL_ID) {
		return p.makeIdent(p.previous())
	}
	p.errorAtCurrent(message)
	return ast.Ident{}
}

// startsVariable reports whether a variable identifier begins at the
// current token.
func (p *Parser) startsVariable() bool {
	switch p.peek().Type {
	case IDENTIFIER, SPECIAL_ID:
		return true
	case CID:
		return p.checkAt(1, DOT) && p.checkAt(2, IDENTIFIER)
	}
	return false
}

// startsAddressType reports whether the current CID opens an address type,
// as in "ByStr20 with ... end".
func (p *Parser) startsAddressType() bool {
	return p.check(CID) && p.checkAt(1, WITH)
}
