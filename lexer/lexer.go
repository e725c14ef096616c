/*
File    : gomixlite/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns Language source text into a stream of tokens. It
// mirrors the teacher's single-cursor scanning style (Advance/Peek over a
// byte slice) adapted to the token.Position bookkeeping spec.md requires.
package lexer

import (
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/token"
)

// Lexer scans a source file one byte at a time, producing tokens on
// demand. It holds exactly one mutable cursor; every token copies that
// cursor's position at its own boundaries so tokens remain valid once the
// lexer has moved on.
type Lexer struct {
	fileName string
	text     string
	pos      token.Position
	current  byte // 0 at end of input
}

// New creates a Lexer positioned just before the first character of text.
func New(fileName, text string) *Lexer {
	lex := &Lexer{fileName: fileName, text: text, pos: token.NewPosition(fileName, text)}
	lex.advance()
	return lex
}

// advance consumes the current character and loads the next one.
func (l *Lexer) advance() {
	l.pos.Advance(l.current)
	if l.pos.Index < len(l.text) {
		l.current = l.text[l.pos.Index]
	} else {
		l.current = 0
	}
}

// Tokenize scans the entire source and returns its token stream, including
// a trailing EOF token. It returns the first IllegalCharacter error
// encountered, with no partial token stream (per spec.md §4.1 Failure).
func (l *Lexer) Tokenize() ([]token.Token, *errs.Error) {
	var tokens []token.Token
	for l.current != 0 {
		switch {
		case l.current == ' ' || l.current == '\t':
			l.advance()
		case l.current == ';' || l.current == '\n':
			tokens = append(tokens, token.New(token.NEWLINE, nil, l.pos))
			l.advance()
		case l.current == '#':
			l.skipComment()
		case isDigit(l.current):
			tokens = append(tokens, l.makeNumber())
		case isLetter(l.current):
			tokens = append(tokens, l.makeIdentifier())
		case l.current == '"':
			tokens = append(tokens, l.makeString())
		case l.current == '+':
			tokens = append(tokens, token.New(token.PLUS, nil, l.pos))
			l.advance()
		case l.current == '-':
			tokens = append(tokens, l.makeMinusOrArrow())
		case l.current == '*':
			tokens = append(tokens, token.New(token.MUL, nil, l.pos))
			l.advance()
		case l.current == '/':
			tokens = append(tokens, token.New(token.DIV, nil, l.pos))
			l.advance()
		case l.current == '^':
			tokens = append(tokens, token.New(token.POW, nil, l.pos))
			l.advance()
		case l.current == '(':
			tokens = append(tokens, token.New(token.LPAREN, nil, l.pos))
			l.advance()
		case l.current == ')':
			tokens = append(tokens, token.New(token.RPAREN, nil, l.pos))
			l.advance()
		case l.current == '[':
			tokens = append(tokens, token.New(token.LSQUARE, nil, l.pos))
			l.advance()
		case l.current == ']':
			tokens = append(tokens, token.New(token.RSQUARE, nil, l.pos))
			l.advance()
		case l.current == ',':
			tokens = append(tokens, token.New(token.COMMA, nil, l.pos))
			l.advance()
		case l.current == '=':
			tokens = append(tokens, l.makeEquals())
		case l.current == '<':
			tokens = append(tokens, l.makeLessThan())
		case l.current == '>':
			tokens = append(tokens, l.makeGreaterThan())
		case l.current == '!':
			tok, err := l.makeNotEquals()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			posStart := l.pos.Copy()
			char := l.current
			l.advance()
			return nil, errs.New(errs.IllegalCharacter, posStart, l.pos, "'"+string(char)+"'")
		}
	}

	tokens = append(tokens, token.New(token.EOF, nil, l.pos))
	return tokens, nil
}

// skipComment discards everything from '#' up to (but not including) the
// next newline or end of input.
func (l *Lexer) skipComment() {
	for l.current != '\n' && l.current != 0 {
		l.advance()
	}
}

// makeMinusOrArrow disambiguates '-' from the '->' function-body arrow.
func (l *Lexer) makeMinusOrArrow() token.Token {
	posStart := l.pos.Copy()
	typ := token.MINUS
	l.advance()
	if l.current == '>' {
		typ = token.ARROW
		l.advance()
	}
	return token.NewSpan(typ, nil, posStart, l.pos)
}

// makeNotEquals requires '!' to be followed by '=', emitting NE. A bare
// '!' is a lex error — the corrected behavior from spec.md §9 (the
// original source's inline '!' => TT_EQ bug and its unreachable
// make_not_equals routine are not replicated).
func (l *Lexer) makeNotEquals() (token.Token, *errs.Error) {
	posStart := l.pos.Copy()
	l.advance()
	if l.current == '=' {
		l.advance()
		return token.NewSpan(token.NE, nil, posStart, l.pos), nil
	}
	return token.Token{}, errs.New(errs.IllegalCharacter, posStart, l.pos, "'=' expected after '!'")
}

// makeEquals disambiguates '=' from '=='.
func (l *Lexer) makeEquals() token.Token {
	posStart := l.pos.Copy()
	typ := token.EQ
	l.advance()
	if l.current == '=' {
		typ = token.EE
		l.advance()
	}
	return token.NewSpan(typ, nil, posStart, l.pos)
}

// makeLessThan disambiguates '<' from '<='.
func (l *Lexer) makeLessThan() token.Token {
	posStart := l.pos.Copy()
	typ := token.LT
	l.advance()
	if l.current == '=' {
		typ = token.LTE
		l.advance()
	}
	return token.NewSpan(typ, nil, posStart, l.pos)
}

// makeGreaterThan disambiguates '>' from '>='.
func (l *Lexer) makeGreaterThan() token.Token {
	posStart := l.pos.Copy()
	typ := token.GT
	l.advance()
	if l.current == '=' {
		typ = token.GTE
		l.advance()
	}
	return token.NewSpan(typ, nil, posStart, l.pos)
}

// makeIdentifier scans [A-Za-z0-9_]* and classifies it as KEYWORD or
// IDENTIFIER against token.Keywords.
func (l *Lexer) makeIdentifier() token.Token {
	posStart := l.pos.Copy()
	start := l.pos.Index
	for l.current != 0 && (isLetter(l.current) || isDigit(l.current) || l.current == '_') {
		l.advance()
	}
	text := l.text[start:l.pos.Index]
	typ := token.IDENTIFIER
	if token.Keywords[text] {
		typ = token.KEYWORD
	}
	return token.NewSpan(typ, text, posStart, l.pos)
}

// makeNumber scans digits with at most one '.'; a second '.' terminates
// the number (so "1.5.2" yields FLOAT(1.5) and leaves the cursor on the
// second '.', which Tokenize then rejects as an illegal character).
func (l *Lexer) makeNumber() token.Token {
	posStart := l.pos.Copy()
	start := l.pos.Index
	dotCount := 0
	for l.current != 0 && (isDigit(l.current) || l.current == '.') {
		if l.current == '.' {
			if dotCount == 1 {
				break
			}
			dotCount++
		}
		l.advance()
	}
	text := l.text[start:l.pos.Index]
	if dotCount == 0 {
		return token.NewSpan(token.INT, parseInt(text), posStart, l.pos)
	}
	return token.NewSpan(token.FLOAT, parseFloat(text), posStart, l.pos)
}

// makeString scans a double-quoted literal, honoring a single
// backslash-escape per character. '\n' maps to a line feed; every other
// escaped character (including 't') is preserved literally, matching
// original_source/lexing/lexer.py's escape_characters table — spec.md §9
// flags this as a likely-unintended 't' mapping, kept here for parity
// rather than "fixed" into a tab.
func (l *Lexer) makeString() token.Token {
	posStart := l.pos.Copy()
	var sb []byte
	escaped := false
	l.advance() // consume opening quote

	for l.current != 0 && (l.current != '"' || escaped) {
		if escaped {
			sb = append(sb, escapeChar(l.current))
			escaped = false
		} else if l.current == '\\' {
			escaped = true
		} else {
			sb = append(sb, l.current)
		}
		l.advance()
	}
	l.advance() // consume closing quote (or run off the end, per spec.md)

	return token.NewSpan(token.STRING, string(sb), posStart, l.pos)
}

// escapeChar maps an escaped character to its literal value.
func escapeChar(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	default:
		return c
	}
}
