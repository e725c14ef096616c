/*
File    : gomixlite/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/token"
)

// statements parses NEWLINE* statement (NEWLINE+ statement)*, stopping
// (without error) the moment another statement can't be speculatively
// parsed — which is how a nested block knows to stop right before its
// closing END/ELIF/ELSE rather than needing to recognize those keywords
// itself.
func (p *Parser) statements() (ast.Node, *errs.Error) {
	start := p.current().PosStart
	p.skipNewlines()

	var stmts []ast.Node
	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, stmt)

	for {
		newlineCount := 0
		for p.current().Type == token.NEWLINE {
			p.advance()
			newlineCount++
		}
		if newlineCount == 0 {
			break
		}

		mark := p.mark()
		stmt, err := p.statement()
		if err != nil {
			p.reset(mark)
			break
		}
		stmts = append(stmts, stmt)
	}

	return &ast.StatementsNode{Statements: stmts, Start: start, End: p.current().PosEnd}, nil
}

// statement parses RETURN/CONTINUE/BREAK or falls through to an
// expression.
func (p *Parser) statement() (ast.Node, *errs.Error) {
	start := p.current().PosStart

	if p.current().Matches(token.KEYWORD, "RETURN") {
		p.advance()
		mark := p.mark()
		value, err := p.expression()
		if err != nil {
			p.reset(mark)
			value = nil
		}
		return &ast.ReturnNode{Value: value, Start: start, End: p.current().PosStart}, nil
	}

	if p.current().Matches(token.KEYWORD, "CONTINUE") {
		p.advance()
		return &ast.ContinueNode{Start: start, End: p.current().PosStart}, nil
	}

	if p.current().Matches(token.KEYWORD, "BREAK") {
		p.advance()
		return &ast.BreakNode{Start: start, End: p.current().PosStart}, nil
	}

	return p.expression()
}
