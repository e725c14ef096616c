/*
File    : gomixlite/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/token"
)

// ifExpr parses the full IF/ELIF*/ELSE? chain. The one-line vs block
// decision is made independently for the IF arm (and, recursively, for each
// ELIF/ELSE arm): a NEWLINE right after THEN/ELSE means "read a nested
// statements block up to END", anything else means "read a single
// expression". Per spec.md §4.2, only the outermost IF's closing END
// terminates a chain that went block-form anywhere along the way.
func (p *Parser) ifExpr() (ast.Node, *errs.Error) {
	cases, elseCase, err := p.ifExprCases("IF")
	if err != nil {
		return nil, err
	}
	return &ast.IfNode{Cases: cases, Else: elseCase}, nil
}

// ifExprCases parses `caseKeyword cond THEN body`, then delegates to
// ifExprBOrC for whatever ELIF/ELSE tail follows.
func (p *Parser) ifExprCases(caseKeyword string) ([]ast.IfCase, *ast.ElseCase, *errs.Error) {
	if err := p.expectKeyword(caseKeyword); err != nil {
		return nil, nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, nil, err
	}
	if err := p.expectKeyword("THEN"); err != nil {
		return nil, nil, err
	}

	if p.current().Type == token.NEWLINE {
		p.advance()
		p.skipNewlines()
		body, err := p.statements()
		if err != nil {
			return nil, nil, err
		}
		cases := []ast.IfCase{{Condition: condition, Body: body, ReturnsUnit: true}}

		if p.current().Matches(token.KEYWORD, "END") {
			p.advance()
			return cases, nil, nil
		}
		moreCases, elseCase, err := p.ifExprBOrC()
		if err != nil {
			return nil, nil, err
		}
		return append(cases, moreCases...), elseCase, nil
	}

	body, err := p.statement()
	if err != nil {
		return nil, nil, err
	}
	cases := []ast.IfCase{{Condition: condition, Body: body, ReturnsUnit: false}}
	moreCases, elseCase, err := p.ifExprBOrC()
	if err != nil {
		return nil, nil, err
	}
	return append(cases, moreCases...), elseCase, nil
}

// ifExprBOrC dispatches to ELIF (recursing into ifExprCases) or ELSE
// (ifExprC), returning empty/nil when neither follows.
func (p *Parser) ifExprBOrC() ([]ast.IfCase, *ast.ElseCase, *errs.Error) {
	if p.current().Matches(token.KEYWORD, "ELIF") {
		return p.ifExprCases("ELIF")
	}
	elseCase, err := p.ifExprC()
	if err != nil {
		return nil, nil, err
	}
	return nil, elseCase, nil
}

// ifExprC parses the trailing optional ELSE arm.
func (p *Parser) ifExprC() (*ast.ElseCase, *errs.Error) {
	if !p.current().Matches(token.KEYWORD, "ELSE") {
		return nil, nil
	}
	p.advance()

	if p.current().Type == token.NEWLINE {
		p.advance()
		p.skipNewlines()
		body, err := p.statements()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("END"); err != nil {
			return nil, err
		}
		return &ast.ElseCase{Body: body, ReturnsUnit: true}, nil
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.ElseCase{Body: body, ReturnsUnit: false}, nil
}
