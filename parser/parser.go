/*
File    : gomixlite/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser with precedence
// climbing over the Language's token stream, producing an ast.Node tree.
// It is grounded on original_source/basic.py's Parser: a flat index cursor
// over the full token slice (rather than the teacher's streaming
// two-token lookahead), with mark/reset so a caller can rewind whatever a
// failed speculative sub-parse consumed — this is what
// lets `statements` stop cleanly before a block-closing END/ELIF/ELSE
// without the grammar needing a lookahead table for every keyword.
package parser

import (
	"fmt"

	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/token"
)

// Parser walks tokens with a single index cursor.
type Parser struct {
	tokens []token.Token
	index  int
}

// New creates a Parser positioned at the first token.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, index: 0}
}

func (p *Parser) current() token.Token { return p.tokens[p.index] }

func (p *Parser) advance() token.Token {
	if p.index < len(p.tokens)-1 {
		p.index++
	}
	return p.current()
}

// mark/reset implement the backtracking speculative parses need (trying a
// statement production, rewinding if it turns out to be the block
// terminator instead).
func (p *Parser) mark() int         { return p.index }
func (p *Parser) reset(mark int)    { p.index = mark }

// skipNewlines consumes zero or more NEWLINE tokens, used between
// statements and around block delimiters.
func (p *Parser) skipNewlines() {
	for p.current().Type == token.NEWLINE {
		p.advance()
	}
}

func (p *Parser) invalidSyntax(format string, a ...interface{}) *errs.Error {
	tok := p.current()
	return errs.New(errs.InvalidSyntax, tok.PosStart, tok.PosEnd, fmt.Sprintf(format, a...))
}

// expectKeyword requires the current token to be the named keyword,
// advancing past it on success.
func (p *Parser) expectKeyword(name string) *errs.Error {
	if !p.current().Matches(token.KEYWORD, name) {
		return p.invalidSyntax("expected '%s'", name)
	}
	p.advance()
	return nil
}

// expectType requires the current token to have typ, advancing past it on
// success.
func (p *Parser) expectType(typ token.Type) (token.Token, *errs.Error) {
	if p.current().Type != typ {
		return token.Token{}, p.invalidSyntax("expected %s", typ)
	}
	tok := p.current()
	p.advance()
	return tok, nil
}

// Parse parses the full token stream as a top-level statements block and
// requires it to consume every token up to EOF.
func (p *Parser) Parse() (ast.Node, *errs.Error) {
	tree, err := p.statements()
	if err != nil {
		return nil, err
	}
	if p.current().Type != token.EOF {
		return nil, p.invalidSyntax("unexpected token %s", p.current().Type)
	}
	return tree, nil
}
