/*
File    : gomixlite/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/gomixlite/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenTypes is a helper projecting a token stream to just its types, since
// most of these cases only care about the shape of the stream.
func tokenTypes(tokens []token.Token) []token.Type {
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestLexer_Tokenize_Arithmetic(t *testing.T) {
	tokens, err := New("<test>", "1 + 2 * 31 - 12").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, []token.Type{
		token.INT, token.PLUS, token.INT, token.MUL, token.INT,
		token.MINUS, token.INT, token.EOF,
	}, tokenTypes(tokens))
}

func TestLexer_Tokenize_KeywordsAndIdentifiers(t *testing.T) {
	tokens, err := New("<test>", "VAR x = 1").Tokenize()
	require.Nil(t, err)
	require.Len(t, tokens, 5)
	assert.Equal(t, token.KEYWORD, tokens[0].Type)
	assert.Equal(t, "VAR", tokens[0].Value)
	assert.Equal(t, token.IDENTIFIER, tokens[1].Type)
	assert.Equal(t, "x", tokens[1].Value)
	assert.Equal(t, token.EQ, tokens[2].Type)
	assert.Equal(t, token.INT, tokens[3].Type)
	assert.Equal(t, int64(1), tokens[3].Value)
}

func TestLexer_Tokenize_Float(t *testing.T) {
	tokens, err := New("<test>", "1.5").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, token.FLOAT, tokens[0].Type)
	assert.Equal(t, 1.5, tokens[0].Value)
}

func TestLexer_Tokenize_StringEscapes(t *testing.T) {
	tokens, err := New("<test>", `"a\nb"`).Tokenize()
	require.Nil(t, err)
	assert.Equal(t, "a\nb", tokens[0].Value)
}

func TestLexer_Tokenize_CommentProducesNoTokens(t *testing.T) {
	tokens, err := New("<test>", "1 # this is a comment\n2").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, []token.Type{token.INT, token.NEWLINE, token.INT, token.EOF}, tokenTypes(tokens))
}

func TestLexer_Tokenize_SemicolonIsNewline(t *testing.T) {
	tokens, err := New("<test>", "1;2").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, []token.Type{token.INT, token.NEWLINE, token.INT, token.EOF}, tokenTypes(tokens))
}

func TestLexer_Tokenize_TwoCharacterOperators(t *testing.T) {
	tokens, err := New("<test>", "== != <= >= -> =").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, []token.Type{
		token.EE, token.NE, token.LTE, token.GTE, token.ARROW, token.EQ, token.EOF,
	}, tokenTypes(tokens))
}

func TestLexer_Tokenize_BareBangIsIllegal(t *testing.T) {
	tokens, err := New("<test>", "!1").Tokenize()
	require.Nil(t, tokens)
	require.NotNil(t, err)
	assert.Equal(t, "'=' expected after '!'", err.Details)
}

func TestLexer_Tokenize_IllegalCharacter(t *testing.T) {
	tokens, err := New("<test>", "@").Tokenize()
	require.Nil(t, tokens)
	require.NotNil(t, err)
	assert.Equal(t, "'@'", err.Details)
}

func TestLexer_Tokenize_PositionsAreMonotonic(t *testing.T) {
	tokens, err := New("<test>", "11 + 22").Tokenize()
	require.Nil(t, err)
	for _, tok := range tokens {
		if tok.Type == token.EOF {
			continue
		}
		assert.Greater(t, tok.PosEnd.Index, tok.PosStart.Index)
	}
}
