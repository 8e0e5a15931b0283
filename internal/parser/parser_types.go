package parser

import "scilla/internal/ast"

// parseType parses a full type expression. Function arrows are right
// associative.
func (p *Parser) parseType() *ast.WithMetadata[ast.ScillaType] {
	mark := p.current
	from := p.parseNonArrowType()
	if !p.match(ARROW) {
		return from
	}
	to := p.parseType()
	return wrapFrom[ast.ScillaType](p, mark, &ast.FunctionType{From: from, To: to})
}

func (p *Parser) parseNonArrowType() *ast.WithMetadata[ast.ScillaType] {
	mark := p.current

	switch p.peek().Type {
	case MAP:
		p.advance()
		key := p.parseMapKey()
		value := p.parseMapValue()
		return wrapFrom[ast.ScillaType](p, mark, &ast.MapType{Key: key, Value: value})

	case FORALL:
		p.advance()
		tv := p.makeIdent(p.consume(TYPE_VARIABLE, "expected type variable after 'forall'"))
		p.consume(DOT, "expected '.' after type variable")
		body := p.parseType()
		return wrapFrom[ast.ScillaType](p, mark, &ast.PolyFunctionType{TypeVar: tv, Body: body})

	case LEFT_PAREN:
		p.advance()
		inner := p.parseType()
		p.consume(RIGHT_PAREN, "expected ')' after type")
		return wrapFrom[ast.ScillaType](p, mark, &ast.EnclosedType{Inner: inner})

	case TYPE_VARIABLE:
		tv := p.makeIdent(p.advance())
		return wrapFrom[ast.ScillaType](p, mark, &ast.TypeVarType{Name: tv})

	case CID, HEX_NUMBER:
		if p.startsAddressType() {
			return wrapFrom[ast.ScillaType](p, mark, &ast.AddressScillaType{Address: p.parseAddressType()})
		}
		head := p.parseMetaIdentifier()
		args := p.parseTypeArguments()
		return wrapFrom[ast.ScillaType](p, mark, &ast.GenericType{Head: head, Arguments: args})
	}

	p.errorAtCurrent("expected type")
	return nil
}

// parseMetaIdentifier parses a possibly qualified type or constructor name:
// "Uint128", "ByStr", "Lib.Status", "0x1234.Status".
func (p *Parser) parseMetaIdentifier() *ast.WithMetadata[*ast.MetaIdentifier] {
	mark := p.current

	if p.match(HEX_NUMBER) {
		hex := p.previous().Lexeme
		p.consume(DOT, "expected '.' after address")
		name := p.consumeTypeName("expected type name after address")
		return wrapFrom(p, mark, &ast.MetaIdentifier{Kind: ast.MetaNameInHexspace, Name: name, Hexspace: hex})
	}

	first := p.consume(CID, "expected type or constructor name")
	if first.Lexeme == "ByStr" {
		return wrapFrom(p, mark, &ast.MetaIdentifier{Kind: ast.MetaByteString})
	}
	if p.check(DOT) && p.checkAt(1, CID) {
		p.advance()
		ns := p.typeName(first)
		name := p.typeName(p.advance())
		return wrapFrom(p, mark, &ast.MetaIdentifier{Kind: ast.MetaNameInNamespace, Name: name, Namespace: ns})
	}
	return wrapFrom(p, mark, &ast.MetaIdentifier{Kind: ast.MetaName, Name: p.typeName(first)})
}

// startsTypeArgument reports whether a type argument begins at the current
// token.
func (p *Parser) startsTypeArgument() bool {
	switch p.peek().Type {
	case CID, HEX_NUMBER, LEFT_PAREN, TYPE_VARIABLE, MAP:
		return true
	}
	return false
}

func (p *Parser) parseTypeArguments() []*ast.WithMetadata[ast.TypeArgument] {
	var args []*ast.WithMetadata[ast.TypeArgument]
	for p.startsTypeArgument() {
		args = append(args, p.parseTypeArgument())
	}
	return args
}

func (p *Parser) parseTypeArgument() *ast.WithMetadata[ast.TypeArgument] {
	mark := p.current

	switch p.peek().Type {
	case LEFT_PAREN:
		p.advance()
		inner := p.parseType()
		p.consume(RIGHT_PAREN, "expected ')' after type argument")
		return wrapFrom[ast.TypeArgument](p, mark, &ast.EnclosedTypeArgument{Type: inner})

	case TYPE_VARIABLE:
		tv := p.makeIdent(p.advance())
		return wrapFrom[ast.TypeArgument](p, mark, &ast.TemplateTypeArgument{Name: tv})

	case MAP:
		p.advance()
		key := p.parseMapKey()
		value := p.parseMapValue()
		return wrapFrom[ast.TypeArgument](p, mark, &ast.MapTypeArgument{Key: key, Value: value})
	}

	if p.startsAddressType() {
		return wrapFrom[ast.TypeArgument](p, mark, &ast.AddressTypeArgument{Address: p.parseAddressType()})
	}
	return wrapFrom[ast.TypeArgument](p, mark, &ast.GenericTypeArgument{Identifier: p.parseMetaIdentifier()})
}

func (p *Parser) parseMapKey() *ast.WithMetadata[*ast.TypeMapKey] {
	mark := p.current
	key := &ast.TypeMapKey{}

	if p.match(LEFT_PAREN) {
		key.Enclosed = true
	}
	if p.startsAddressType() {
		key.Address = p.parseAddressType()
	} else {
		key.Identifier = p.parseMetaIdentifier()
	}
	if key.Enclosed {
		p.consume(RIGHT_PAREN, "expected ')' after map key type")
	}

	return wrapFrom(p, mark, key)
}

func (p *Parser) parseMapValue() *ast.WithMetadata[*ast.TypeMapValue] {
	mark := p.current
	value := &ast.TypeMapValue{}

	switch {
	case p.check(MAP):
		entryMark := p.current
		p.advance()
		entry := &ast.TypeMapEntry{Key: p.parseMapKey(), Value: p.parseMapValue()}
		value.Entry = wrapFrom(p, entryMark, entry)
	case p.check(LEFT_PAREN):
		value.Type = p.parseType()
	case p.startsAddressType():
		value.Address = p.parseAddressType()
	default:
		value.Identifier = p.parseMetaIdentifier()
	}

	return wrapFrom(p, mark, value)
}

// ByStr20 with contract field owner : ByStr20, field paused : Bool end
func (p *Parser) parseAddressType() *ast.WithMetadata[*ast.AddressType] {
	mark := p.current
	addr := &ast.AddressType{Identifier: p.consumeTypeName("expected address type")}
	p.consume(WITH, "expected 'with' after address type")

	switch {
	case p.match(CONTRACT):
		addr.TypeName = "contract"
	case p.match(LIBRARY):
		addr.TypeName = "library"
	}

	if p.check(FIELD) {
		for {
			addr.Fields = append(addr.Fields, p.parseAddressTypeField())
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.consume(END, "expected 'end' after address type")

	return wrapFrom(p, mark, addr)
}

func (p *Parser) parseAddressTypeField() *ast.WithMetadata[*ast.AddressTypeField] {
	mark := p.current
	p.consume(FIELD, "expected 'field' in address type")

	name := p.consumeName("expected field name")
	ident := ast.Wrap(&ast.VariableIdentifier{Kind: variableKind(name.Value), Name: name}, name.Pos, name.EndPos)
	p.consume(COLON, "expected ':' after field name")

	return wrapFrom(p, mark, &ast.AddressTypeField{Identifier: ident, Type: p.parseType()})
}

func variableKind(name string) ast.VariableKind {
	if len(name) > 0 && name[0] == '_' {
		return ast.SpecialIdentifier
	}
	return ast.VariableName
}
