/*
File    : gomixlite/parser/parser_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/token"
)

// forExpr parses `FOR IDENT '=' start TO end ('STEP' step)? THEN body`,
// where body is either a single expression (one-line form) or a NEWLINE
// followed by a nested statements block terminated by END (block form).
func (p *Parser) forExpr() (ast.Node, *errs.Error) {
	if err := p.expectKeyword("FOR"); err != nil {
		return nil, err
	}
	nameTok, err := p.expectType(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if err := expectOp(p, token.EQ); err != nil {
		return nil, err
	}
	start, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("TO"); err != nil {
		return nil, err
	}
	end, err := p.expression()
	if err != nil {
		return nil, err
	}

	var step ast.Node
	if p.current().Matches(token.KEYWORD, "STEP") {
		p.advance()
		step, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expectKeyword("THEN"); err != nil {
		return nil, err
	}

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
		return &ast.ForNode{VarNameTok: nameTok, StartValue: start, EndValue: end, StepValue: step, Body: body, ReturnsUnit: true}, nil
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.ForNode{VarNameTok: nameTok, StartValue: start, EndValue: end, StepValue: step, Body: body, ReturnsUnit: false}, nil
}

// whileExpr parses `WHILE cond THEN body`, one-line or block form exactly
// like forExpr.
func (p *Parser) whileExpr() (ast.Node, *errs.Error) {
	if err := p.expectKeyword("WHILE"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("THEN"); err != nil {
		return nil, err
	}

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
		return &ast.WhileNode{Condition: condition, Body: body, ReturnsUnit: true}, nil
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileNode{Condition: condition, Body: body, ReturnsUnit: false}, nil
}
