/*
File    : gomixlite/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/token"
)

// funcDef parses `FUN IDENT? '(' arglist? ')' ('->' expr | NEWLINE
// statements END)`. A present IDENT makes the definition self-binding
// (usable recursively); omitting it yields a function expression.
func (p *Parser) funcDef() (ast.Node, *errs.Error) {
	start := p.current().PosStart
	if err := p.expectKeyword("FUN"); err != nil {
		return nil, err
	}

	var nameTok *token.Token
	if p.current().Type == token.IDENTIFIER {
		tok := p.current()
		nameTok = &tok
		p.advance()
	}

	if err := expectOp(p, token.LPAREN); err != nil {
		return nil, err
	}

	var argTokens []token.Token
	if p.current().Type == token.IDENTIFIER {
		argTokens = append(argTokens, p.current())
		p.advance()
		for p.current().Type == token.COMMA {
			p.advance()
			arg, err := p.expectType(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			argTokens = append(argTokens, arg)
		}
	}

	if p.current().Type != token.RPAREN {
		return nil, p.invalidSyntax("expected ',' or ')'")
	}
	p.advance()

	if p.current().Type == token.ARROW {
		p.advance()
		body, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionDefNode{
			NameTok: nameTok, ArgTokens: argTokens, Body: body,
			AutoReturn: true, Start: start, End: body.PosEnd(),
		}, nil
	}

	if p.current().Type != token.NEWLINE {
		return nil, p.invalidSyntax("expected '->' or NEWLINE")
	}
	p.advance()
	p.skipNewlines()
	body, err := p.statements()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("END"); err != nil {
		return nil, err
	}
	return &ast.FunctionDefNode{
		NameTok: nameTok, ArgTokens: argTokens, Body: body,
		AutoReturn: false, Start: start, End: p.tokens[p.index-1].PosEnd,
	}, nil
}
