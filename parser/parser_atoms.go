/*
File    : gomixlite/parser/parser_atoms.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/token"
)

// atom := INT | FLOAT | STRING | IDENT
//       | '(' expression ')'
//       | list_expr
//       | if_expr | for_expr | while_expr | func_def
func (p *Parser) atom() (ast.Node, *errs.Error) {
	tok := p.current()

	switch tok.Type {
	case token.INT, token.FLOAT:
		p.advance()
		return &ast.NumberNode{Tok: tok}, nil
	case token.STRING:
		p.advance()
		return &ast.StringNode{Tok: tok}, nil
	case token.IDENTIFIER:
		p.advance()
		return &ast.VarAccessNode{NameTok: tok}, nil
	case token.LPAREN:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.current().Type != token.RPAREN {
			return nil, p.invalidSyntax("expected ')'")
		}
		p.advance()
		return expr, nil
	case token.LSQUARE:
		return p.listExpr()
	}

	if tok.Matches(token.KEYWORD, "IF") {
		return p.ifExpr()
	}
	if tok.Matches(token.KEYWORD, "FOR") {
		return p.forExpr()
	}
	if tok.Matches(token.KEYWORD, "WHILE") {
		return p.whileExpr()
	}
	if tok.Matches(token.KEYWORD, "FUN") {
		return p.funcDef()
	}

	return nil, p.invalidSyntax("expected int, float, identifier, '+', '-', '(', '[', 'IF', 'FOR', 'WHILE', 'FUN'")
}
