/*
File    : gomixlite/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseSource runs the full lex+parse pipeline and fails the test on any
// error, returning the single top-level statement of src (most cases here
// are one-statement programs).
func parseSource(t *testing.T, src string) ast.Node {
	t.Helper()
	tokens, lexErr := lexer.New("<test>", src).Tokenize()
	require.Nil(t, lexErr)
	tree, parseErr := New(tokens).Parse()
	require.Nil(t, parseErr)
	stmts, ok := tree.(*ast.StatementsNode)
	require.True(t, ok)
	require.Len(t, stmts.Statements, 1)
	return stmts.Statements[0]
}

func TestParser_PowerIsRightAssociative(t *testing.T) {
	node := parseSource(t, "x ^ y ^ z")
	top, ok := node.(*ast.BinaryOpNode)
	require.True(t, ok)
	assert.Equal(t, "POW", string(top.OpTok.Type))

	right, ok := top.Right.(*ast.BinaryOpNode)
	require.True(t, ok)
	assert.Equal(t, "POW", string(right.OpTok.Type))
}

func TestParser_MulBindsTighterThanAdd(t *testing.T) {
	node := parseSource(t, "a + b * c")
	top, ok := node.(*ast.BinaryOpNode)
	require.True(t, ok)
	assert.Equal(t, "PLUS", string(top.OpTok.Type))
	_, ok = top.Right.(*ast.BinaryOpNode)
	require.True(t, ok)
}

func TestParser_UnaryMinusBindsTighterThanPowerOnTheLeft(t *testing.T) {
	// -2 ^ 2 parses as (-2) ^ 2, matching original_source's precedence (§8).
	node := parseSource(t, "-2 ^ 2")
	top, ok := node.(*ast.BinaryOpNode)
	require.True(t, ok)
	assert.Equal(t, "POW", string(top.OpTok.Type))
	_, ok = top.Left.(*ast.UnaryOpNode)
	require.True(t, ok)
}

func TestParser_ListLiteral(t *testing.T) {
	node := parseSource(t, "[1, 2, 3]")
	list, ok := node.(*ast.ListNode)
	require.True(t, ok)
	assert.Equal(t, 3, len(list.Elements))
}

func TestParser_EmptyListLiteral(t *testing.T) {
	node := parseSource(t, "[]")
	list, ok := node.(*ast.ListNode)
	require.True(t, ok)
	assert.Equal(t, 0, len(list.Elements))
}

func TestParser_OneLineIfElif(t *testing.T) {
	node := parseSource(t, "IF a THEN 1 ELIF b THEN 2 ELSE 3")
	ifNode, ok := node.(*ast.IfNode)
	require.True(t, ok)
	require.Len(t, ifNode.Cases, 2)
	require.NotNil(t, ifNode.Else)
	assert.Equal(t, false, ifNode.Cases[0].ReturnsUnit)
}

func TestParser_BlockIfRequiresEnd(t *testing.T) {
	node := parseSource(t, "IF a THEN\nVAR x = 1\nEND")
	ifNode, ok := node.(*ast.IfNode)
	require.True(t, ok)
	require.Len(t, ifNode.Cases, 1)
	assert.Equal(t, true, ifNode.Cases[0].ReturnsUnit)
}

func TestParser_OneLineFor(t *testing.T) {
	node := parseSource(t, "FOR i = 0 TO 3 THEN i")
	forNode, ok := node.(*ast.ForNode)
	require.True(t, ok)
	assert.Equal(t, false, forNode.ReturnsUnit)
	require.Nil(t, forNode.StepValue)
}

func TestParser_ForWithStep(t *testing.T) {
	node := parseSource(t, "FOR i = 10 TO 0 STEP -1 THEN i")
	forNode, ok := node.(*ast.ForNode)
	require.True(t, ok)
	require.NotNil(t, forNode.StepValue)
}

func TestParser_BlockWhile(t *testing.T) {
	node := parseSource(t, "WHILE a THEN\nBREAK\nEND")
	whileNode, ok := node.(*ast.WhileNode)
	require.True(t, ok)
	assert.Equal(t, true, whileNode.ReturnsUnit)
}

func TestParser_OneLineFunctionDef(t *testing.T) {
	node := parseSource(t, "FUN add(a, b) -> a + b")
	fn, ok := node.(*ast.FunctionDefNode)
	require.True(t, ok)
	assert.Equal(t, true, fn.AutoReturn)
	require.NotNil(t, fn.NameTok)
	assert.Equal(t, "add", fn.NameTok.Value)
	assert.Equal(t, 2, len(fn.ArgTokens))
}

func TestParser_BlockFunctionDefWithReturn(t *testing.T) {
	node := parseSource(t, "FUN f()\nRETURN 1\nEND")
	fn, ok := node.(*ast.FunctionDefNode)
	require.True(t, ok)
	assert.Equal(t, false, fn.AutoReturn)
}

func TestParser_AnonymousFunctionExpression(t *testing.T) {
	node := parseSource(t, "FUN(x) -> x")
	fn, ok := node.(*ast.FunctionDefNode)
	require.True(t, ok)
	require.Nil(t, fn.NameTok)
}

func TestParser_Call(t *testing.T) {
	node := parseSource(t, "f(1, 2)")
	call, ok := node.(*ast.CallNode)
	require.True(t, ok)
	assert.Equal(t, 2, len(call.Args))
}

func TestParser_NodeSpanCoversSource(t *testing.T) {
	node := parseSource(t, "1 + 2")
	assert.Equal(t, 0, node.PosStart().Index)
}
