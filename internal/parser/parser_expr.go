package parser

import "scilla/internal/ast"

func (p *Parser) parseExpression() *ast.WithMetadata[ast.FullExpression] {
	mark := p.current

	switch p.peek().Type {
	case LET:
		p.advance()
		expr := &ast.LocalBindingExpr{Name: p.consumeIdent("expected name after 'let'")}
		if p.check(COLON) {
			expr.Annotation = p.parseTypeAnnotation()
		}
		p.consume(EQUAL, "expected '=' in let binding")
		expr.Expression = p.parseExpression()
		p.consume(IN, "expected 'in' after let binding")
		expr.Body = p.parseExpression()
		return wrapFrom[ast.FullExpression](p, mark, expr)

	case FUN:
		p.advance()
		p.consume(LEFT_PAREN, "expected '(' after 'fun'")
		expr := &ast.FunctionExpr{Parameter: p.consumeIdent("expected parameter name")}
		expr.Annotation = p.parseTypeAnnotation()
		p.consume(RIGHT_PAREN, "expected ')' after parameter")
		p.consume(FAT_ARROW, "expected '=>' after parameter")
		expr.Body = p.parseExpression()
		return wrapFrom[ast.FullExpression](p, mark, expr)

	case TFUN:
		p.advance()
		expr := &ast.TFunExpr{TypeVar: p.makeIdent(p.consume(TYPE_VARIABLE, "expected type variable after 'tfun'"))}
		p.consume(FAT_ARROW, "expected '=>' after type variable")
		expr.Body = p.parseExpression()
		return wrapFrom[ast.FullExpression](p, mark, expr)

	case AT:
		p.advance()
		expr := &ast.TAppExpr{Identifier: p.parseVariable()}
		expr.TypeArguments = p.parseTypeArguments()
		if len(expr.TypeArguments) == 0 {
			p.errorAtCurrent("expected type argument")
		}
		return wrapFrom[ast.FullExpression](p, mark, expr)

	case BUILTIN:
		p.advance()
		expr := &ast.BuiltinExpr{Name: p.consumeIdent("expected builtin name")}
		expr.Arguments = p.parseBuiltinArguments()
		return wrapFrom[ast.FullExpression](p, mark, expr)

	case LEFT_BRACE:
		return wrapFrom[ast.FullExpression](p, mark, p.parseMessage())

	case MATCH:
		return wrapFrom[ast.FullExpression](p, mark, p.parseMatchExpression())

	case STRING, HEX_NUMBER, EMP:
		return wrapFrom[ast.FullExpression](p, mark, p.parseAtomicLiteral())

	case CID:
		if p.startsNumericLiteral() {
			return wrapFrom[ast.FullExpression](p, mark, p.parseAtomicLiteral())
		}
		if !p.startsVariable() {
			return wrapFrom[ast.FullExpression](p, mark, p.parseConstructorCall())
		}
	}

	if !p.startsVariable() {
		p.errorAtCurrent("expected expression")
	}
	return wrapFrom[ast.FullExpression](p, mark, p.parseApplication())
}

// parseApplication parses a variable, applied to arguments if any follow.
func (p *Parser) parseApplication() ast.FullExpression {
	mark := p.current
	fn := p.parseVariable()
	if !p.startsVariable() {
		atom := wrapFrom(p, mark, &ast.AtomicExpression{Identifier: fn})
		return &ast.AtomicExpr{Atom: atom}
	}

	call := &ast.FunctionCallExpr{Function: fn}
	for p.startsVariable() {
		call.Arguments = append(call.Arguments, p.parseVariable())
	}
	return call
}

// Cons {Message} msg nil
func (p *Parser) parseConstructorCall() ast.FullExpression {
	call := &ast.ConstructorCallExpr{Constructor: p.parseMetaIdentifier()}
	if p.match(LEFT_BRACE) {
		call.TypeArguments = p.parseTypeArguments()
		if len(call.TypeArguments) == 0 {
			p.errorAtCurrent("expected type argument")
		}
		p.consume(RIGHT_BRACE, "expected '}' after type arguments")
	}
	for p.startsVariable() {
		call.Arguments = append(call.Arguments, p.parseVariable())
	}
	return call
}

func (p *Parser) parseAtomicLiteral() ast.FullExpression {
	mark := p.current
	lit := p.parseLiteral()
	return &ast.AtomicExpr{Atom: wrapFrom(p, mark, &ast.AtomicExpression{Literal: lit})}
}

// builtin add a b, builtin to_string ()
func (p *Parser) parseBuiltinArguments() *ast.WithMetadata[*ast.BuiltinArguments] {
	mark := p.current
	args := &ast.BuiltinArguments{}

	if p.match(LEFT_PAREN) {
		p.consume(RIGHT_PAREN, "expected ')' for empty builtin arguments")
		return wrapFrom(p, mark, args)
	}
	for p.startsVariable() {
		args.Arguments = append(args.Arguments, p.parseVariable())
	}
	if len(args.Arguments) == 0 {
		p.errorAtCurrent("expected builtin arguments")
	}
	return wrapFrom(p, mark, args)
}

// {_tag : "Transfer"; _recipient : to; _amount : zero}
func (p *Parser) parseMessage() ast.FullExpression {
	p.consume(LEFT_BRACE, "expected '{'")

	msg := &ast.MessageExpr{}
	if !p.check(RIGHT_BRACE) {
		for {
			msg.Entries = append(msg.Entries, p.parseMessageEntry())
			if !p.match(SEMICOLON) {
				break
			}
		}
	}
	p.consume(RIGHT_BRACE, "expected '}' after message entries")
	return msg
}

func (p *Parser) parseMessageEntry() *ast.WithMetadata[*ast.MessageEntry] {
	mark := p.current
	entry := &ast.MessageEntry{Name: p.consumeName("expected message entry name")}
	p.consume(COLON, "expected ':' after message entry name")

	if p.startsLiteral() {
		entry.Literal = p.parseLiteral()
	} else if p.startsVariable() {
		entry.Variable = p.parseVariable()
	} else {
		p.errorAtCurrent("expected literal or variable in message entry")
	}
	return wrapFrom(p, mark, entry)
}

func (p *Parser) parseMatchExpression() ast.FullExpression {
	p.consume(MATCH, "expected 'match'")
	expr := &ast.MatchExpr{Variable: p.parseVariable()}
	p.consume(WITH, "expected 'with' after match variable")

	for p.check(PIPE) {
		mark := p.current
		p.advance()
		clause := &ast.PatternMatchExpressionClause{Pattern: p.parsePattern()}
		p.consume(FAT_ARROW, "expected '=>' after pattern")
		clause.Expression = p.parseExpression()
		expr.Clauses = append(expr.Clauses, wrapFrom(p, mark, clause))
	}
	p.consume(END, "expected 'end' after match clauses")
	return expr
}

func (p *Parser) startsNumericLiteral() bool {
	return p.check(CID) && NUMERIC_TYPES[p.peek().Lexeme] &&
		(p.checkAt(1, NUMBER) || (p.checkAt(1, MINUS) && p.checkAt(2, NUMBER)))
}

func (p *Parser) startsLiteral() bool {
	switch p.peek().Type {
	case STRING, HEX_NUMBER, EMP:
		return true
	}
	return p.startsNumericLiteral()
}

// parseLiteral parses "Uint128 42", "Int32 -1", "0x12ab", "\"hi\"" or
// "Emp ByStr20 Uint128".
func (p *Parser) parseLiteral() *ast.WithMetadata[*ast.ValueLiteral] {
	mark := p.current

	switch p.peek().Type {
	case STRING:
		raw := p.advance().Lexeme
		return wrapFrom(p, mark, &ast.ValueLiteral{Kind: ast.StringLiteral, Value: raw[1 : len(raw)-1]})
	case HEX_NUMBER:
		return wrapFrom(p, mark, &ast.ValueLiteral{Kind: ast.HexLiteral, Value: p.advance().Lexeme})
	case EMP:
		p.advance()
		lit := &ast.ValueLiteral{Kind: ast.EmptyMapLiteral}
		lit.Key = p.parseMapKey()
		lit.MapValue = p.parseMapValue()
		return wrapFrom(p, mark, lit)
	}

	if !p.startsNumericLiteral() {
		p.errorAtCurrent("expected literal")
	}
	lit := &ast.ValueLiteral{Kind: ast.NumericLiteral, Type: p.typeName(p.advance())}
	if p.match(MINUS) {
		lit.Value = "-"
	}
	lit.Value += p.consume(NUMBER, "expected number").Lexeme
	return wrapFrom(p, mark, lit)
}

// parseVariable parses "x", "_sender" or "Lib.x".
func (p *Parser) parseVariable() *ast.WithMetadata[*ast.VariableIdentifier] {
	mark := p.current

	switch p.peek().Type {
	case IDENTIFIER:
		return wrapFrom(p, mark, &ast.VariableIdentifier{Kind: ast.VariableName, Name: p.makeIdent(p.advance())})
	case SPECIAL_ID:
		return wrapFrom(p, mark, &ast.VariableIdentifier{Kind: ast.SpecialIdentifier, Name: p.makeIdent(p.advance())})
	case CID:
		if p.startsVariable() {
			ns := p.typeName(p.advance())
			p.advance()
			name := p.makeIdent(p.advance())
			return wrapFrom(p, mark, &ast.VariableIdentifier{Kind: ast.VariableInNamespace, Name: name, Namespace: ns})
		}
	}

	p.errorAtCurrent("expected variable")
	return nil
}

// parsePattern parses "_", "x", "Cons h t" or "Pair (Some a) _".
func (p *Parser) parsePattern() *ast.WithMetadata[*ast.Pattern] {
	mark := p.current

	switch p.peek().Type {
	case UNDERSCORE:
		p.advance()
		return wrapFrom(p, mark, &ast.Pattern{Kind: ast.WildcardPattern})
	case IDENTIFIER:
		return wrapFrom(p, mark, &ast.Pattern{Kind: ast.BinderPattern, Binder: p.makeIdent(p.advance())})
	case CID, HEX_NUMBER:
		pat := &ast.Pattern{Kind: ast.ConstructorPattern, Constructor: p.parseMetaIdentifier()}
		for p.startsArgumentPattern() {
			pat.Arguments = append(pat.Arguments, p.parseArgumentPattern())
		}
		return wrapFrom(p, mark, pat)
	}

	p.errorAtCurrent("expected pattern")
	return nil
}

func (p *Parser) startsArgumentPattern() bool {
	switch p.peek().Type {
	case UNDERSCORE, IDENTIFIER, CID, HEX_NUMBER, LEFT_PAREN:
		return true
	}
	return false
}

func (p *Parser) parseArgumentPattern() *ast.WithMetadata[*ast.ArgumentPattern] {
	mark := p.current

	switch p.peek().Type {
	case UNDERSCORE:
		p.advance()
		return wrapFrom(p, mark, &ast.ArgumentPattern{Kind: ast.WildcardArgument})
	case IDENTIFIER:
		return wrapFrom(p, mark, &ast.ArgumentPattern{Kind: ast.BinderArgument, Binder: p.makeIdent(p.advance())})
	case LEFT_PAREN:
		p.advance()
		inner := p.parsePattern()
		p.consume(RIGHT_PAREN, "expected ')' after pattern")
		return wrapFrom(p, mark, &ast.ArgumentPattern{Kind: ast.PatternArgument, Pattern: inner})
	}

	return wrapFrom(p, mark, &ast.ArgumentPattern{Kind: ast.ConstructorArgument, Constructor: p.parseMetaIdentifier()})
}
