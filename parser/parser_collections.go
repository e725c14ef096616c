/*
File    : gomixlite/parser/parser_collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/token"
)

// listExpr parses `[ expr (',' expr)* ]`, also accepting the empty `[]`.
func (p *Parser) listExpr() (ast.Node, *errs.Error) {
	start := p.current().PosStart
	p.advance() // consume '['

	var elements []ast.Node
	if p.current().Type != token.RSQUARE {
		el, err := p.expression()
		if err != nil {
			return nil, p.invalidSyntax("expected ']', 'VAR', NOT, an identifier, keyword, number, string, '[' or '('")
		}
		elements = append(elements, el)
		for p.current().Type == token.COMMA {
			p.advance()
			el, err := p.expression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
		}
	}

	if p.current().Type != token.RSQUARE {
		return nil, p.invalidSyntax("expected ',' or ']'")
	}
	end := p.current().PosEnd
	p.advance()
	return &ast.ListNode{Elements: elements, Start: start, End: end}, nil
}
