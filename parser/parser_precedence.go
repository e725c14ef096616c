/*
File    : gomixlite/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/token"
)

// expression := 'VAR' IDENT '=' expression | comparison (('AND'|'OR') comparison)*
func (p *Parser) expression() (ast.Node, *errs.Error) {
	if p.current().Matches(token.KEYWORD, "VAR") {
		p.advance()
		nameTok, err := p.expectType(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		if err := expectOp(p, token.EQ); err != nil {
			return nil, err
		}
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.VarAssignNode{NameTok: nameTok, Value: value}, nil
	}

	return p.binOpKeyword(p.comparison, []string{"AND", "OR"})
}

// comparison := 'NOT' comparison | arithmetic ((EE|NE|LT|GT|LTE|GTE) arithmetic)*
func (p *Parser) comparison() (ast.Node, *errs.Error) {
	if p.current().Matches(token.KEYWORD, "NOT") {
		opTok := p.current()
		p.advance()
		operand, err := p.comparison()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOpNode{OpTok: opTok, Operand: operand}, nil
	}

	return p.binOpType(p.arithmetic, token.EE, token.NE, token.LT, token.GT, token.LTE, token.GTE)
}

// arithmetic := term ((PLUS|MINUS) term)*
func (p *Parser) arithmetic() (ast.Node, *errs.Error) {
	return p.binOpType(p.term, token.PLUS, token.MINUS)
}

// term := factor ((MUL|DIV) factor)*
func (p *Parser) term() (ast.Node, *errs.Error) {
	return p.binOpType(p.factor, token.MUL, token.DIV)
}

// factor := power
func (p *Parser) factor() (ast.Node, *errs.Error) {
	return p.power()
}

// power := (PLUS|MINUS)* call (POW factor)*. A leading sign binds to the
// call it precedes, tighter than ^, so -2 ^ 2 parses as (-2) ^ 2. ^ is
// right-associative since the right operand production is factor (which
// itself may recurse through power again) — the same "different right
// production" trick the grammar uses to make ^ right-associative while
// every other binary level stays left-associative.
func (p *Parser) power() (ast.Node, *errs.Error) {
	var signs []token.Token
	for tok := p.current(); tok.Type == token.PLUS || tok.Type == token.MINUS; tok = p.advance() {
		signs = append(signs, tok)
	}
	left, err := p.call()
	if err != nil {
		return nil, err
	}
	for i := len(signs) - 1; i >= 0; i-- {
		left = &ast.UnaryOpNode{OpTok: signs[i], Operand: left}
	}
	for p.current().Type == token.POW {
		opTok := p.current()
		p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpNode{Left: left, OpTok: opTok, Right: right}
	}
	return left, nil
}

// call := atom ('(' arglist? ')')?
func (p *Parser) call() (ast.Node, *errs.Error) {
	callee, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.current().Type != token.LPAREN {
		return callee, nil
	}
	p.advance()

	var args []ast.Node
	if p.current().Type != token.RPAREN {
		arg, err := p.expression()
		if err != nil {
			return nil, p.invalidSyntax("expected ')', 'VAR', NOT, an identifier, keyword, number, string, '[' or '('")
		}
		args = append(args, arg)
		for p.current().Type == token.COMMA {
			p.advance()
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}

	if p.current().Type != token.RPAREN {
		return nil, p.invalidSyntax("expected ',' or ')'")
	}
	end := p.current().PosEnd
	p.advance()
	return &ast.CallNode{Callee: callee, Args: args, End: end}, nil
}

// binOpType builds a left-associative chain over func at positions where
// the current token's Type is one of ops.
func (p *Parser) binOpType(operand func() (ast.Node, *errs.Error), ops ...token.Type) (ast.Node, *errs.Error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for containsType(ops, p.current().Type) {
		opTok := p.current()
		p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpNode{Left: left, OpTok: opTok, Right: right}
	}
	return left, nil
}

// binOpKeyword is binOpType's counterpart for keyword operators (AND/OR),
// matched by (KEYWORD, value) rather than by Type alone.
func (p *Parser) binOpKeyword(operand func() (ast.Node, *errs.Error), keywords []string) (ast.Node, *errs.Error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for containsKeyword(keywords, p.current()) {
		opTok := p.current()
		p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpNode{Left: left, OpTok: opTok, Right: right}
	}
	return left, nil
}

func containsType(ops []token.Type, typ token.Type) bool {
	for _, o := range ops {
		if o == typ {
			return true
		}
	}
	return false
}

func containsKeyword(keywords []string, tok token.Token) bool {
	if tok.Type != token.KEYWORD {
		return false
	}
	for _, kw := range keywords {
		if tok.Value == kw {
			return true
		}
	}
	return false
}

// expectOp requires the current token to have type typ with no literal
// value check, advancing past it — used for punctuation like '='.
func expectOp(p *Parser, typ token.Type) *errs.Error {
	if p.current().Type != typ {
		return p.invalidSyntax("expected %s", typ)
	}
	p.advance()
	return nil
}
