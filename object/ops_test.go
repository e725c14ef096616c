/*
File    : gomixlite/object/ops_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/akashmaji946/gomixlite/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var zeroPos token.Position

func TestBinaryOp_IntAddStaysInt(t *testing.T) {
	v, err := BinaryOp(OpAdd, NewInt(2), NewInt(3), zeroPos, zeroPos)
	require.Nil(t, err)
	n := v.(*Number)
	assert.True(t, n.IsInt)
	assert.Equal(t, int64(5), n.Int())
}

func TestBinaryOp_MixedAddBecomesFloat(t *testing.T) {
	v, err := BinaryOp(OpAdd, NewInt(2), NewFloat(0.5), zeroPos, zeroPos)
	require.Nil(t, err)
	n := v.(*Number)
	assert.False(t, n.IsInt)
	assert.Equal(t, 2.5, n.Value)
}

func TestBinaryOp_StringConcat(t *testing.T) {
	v, err := BinaryOp(OpAdd, &String{Value: "foo"}, &String{Value: "bar"}, zeroPos, zeroPos)
	require.Nil(t, err)
	assert.Equal(t, "foobar", v.ToString())
}

func TestBinaryOp_ListConcat(t *testing.T) {
	a := &List{Elements: []Object{NewInt(1)}}
	b := &List{Elements: []Object{NewInt(2)}}
	v, err := BinaryOp(OpAdd, a, b, zeroPos, zeroPos)
	require.Nil(t, err)
	assert.Equal(t, "[1, 2]", v.ToString())
}

func TestBinaryOp_ListPlusScalarAppends(t *testing.T) {
	a := &List{Elements: []Object{NewInt(1)}}
	v, err := BinaryOp(OpAdd, a, NewInt(9), zeroPos, zeroPos)
	require.Nil(t, err)
	assert.Equal(t, "[1, 9]", v.ToString())
	// the original list is untouched; BinaryOp returns a new list
	assert.Equal(t, "[1]", a.ToString())
}

func TestBinaryOp_DivisionByZero(t *testing.T) {
	_, err := BinaryOp(OpDiv, NewInt(1), NewInt(0), zeroPos, zeroPos)
	require.NotNil(t, err)
	assert.Equal(t, "Division by 0", err.Details)
}

func TestBinaryOp_IntDivisionStaysIntWhenExact(t *testing.T) {
	v, err := BinaryOp(OpDiv, NewInt(6), NewInt(3), zeroPos, zeroPos)
	require.Nil(t, err)
	n := v.(*Number)
	assert.True(t, n.IsInt)
	assert.Equal(t, int64(2), n.Int())
}

func TestBinaryOp_IntDivisionBecomesFloatWhenInexact(t *testing.T) {
	v, err := BinaryOp(OpDiv, NewInt(7), NewInt(2), zeroPos, zeroPos)
	require.Nil(t, err)
	n := v.(*Number)
	assert.False(t, n.IsInt)
	assert.Equal(t, 3.5, n.Value)
}

func TestBinaryOp_ListDivIndexesElement(t *testing.T) {
	list := &List{Elements: []Object{NewInt(10), NewInt(20), NewInt(30)}}
	v, err := BinaryOp(OpDiv, list, NewInt(1), zeroPos, zeroPos)
	require.Nil(t, err)
	assert.Equal(t, "20", v.ToString())
}

func TestBinaryOp_ListDivOutOfBounds(t *testing.T) {
	list := &List{Elements: []Object{NewInt(10)}}
	_, err := BinaryOp(OpDiv, list, NewInt(5), zeroPos, zeroPos)
	require.NotNil(t, err)
	assert.Equal(t, "index out of bounds", err.Details)
}

func TestBinaryOp_StringRepeatByInt(t *testing.T) {
	v, err := BinaryOp(OpMul, &String{Value: "ab"}, NewInt(3), zeroPos, zeroPos)
	require.Nil(t, err)
	assert.Equal(t, "ababab", v.ToString())
}

func TestBinaryOp_IntPower(t *testing.T) {
	v, err := BinaryOp(OpPow, NewInt(2), NewInt(10), zeroPos, zeroPos)
	require.Nil(t, err)
	assert.Equal(t, "1024", v.ToString())
}

func TestBinaryOp_NegativeIntPowerBecomesFloat(t *testing.T) {
	v, err := BinaryOp(OpPow, NewInt(2), NewInt(-1), zeroPos, zeroPos)
	require.Nil(t, err)
	n := v.(*Number)
	assert.False(t, n.IsInt)
	assert.Equal(t, 0.5, n.Value)
}

func TestBinaryOp_IllegalOperationAcrossKinds(t *testing.T) {
	_, err := BinaryOp(OpAdd, NewInt(1), &List{}, zeroPos, zeroPos)
	require.NotNil(t, err)
	assert.Equal(t, "Illegal operation", err.Details)
}

func TestBinaryOp_LogicalOperatorsDoNotShortCircuitBySignature(t *testing.T) {
	v, err := BinaryOp(OpAnd, NewInt(1), NewInt(0), zeroPos, zeroPos)
	require.Nil(t, err)
	assert.Equal(t, "0", v.ToString())

	v, err = BinaryOp(OpOr, NewInt(0), NewInt(1), zeroPos, zeroPos)
	require.Nil(t, err)
	assert.Equal(t, "1", v.ToString())
}

func TestUnaryOp_NegatesIntPreservingKind(t *testing.T) {
	v, err := UnaryOp(OpSub, NewInt(5), zeroPos, zeroPos)
	require.Nil(t, err)
	n := v.(*Number)
	assert.True(t, n.IsInt)
	assert.Equal(t, int64(-5), n.Int())
}

func TestUnaryOp_NotInvertsTruthiness(t *testing.T) {
	v, err := UnaryOp(OpNot, NewInt(0), zeroPos, zeroPos)
	require.Nil(t, err)
	assert.Equal(t, "1", v.ToString())
}

func TestIsTrue_RedesignedForListsAndFunctions(t *testing.T) {
	assert.False(t, IsTrue(&List{}))
	assert.True(t, IsTrue(&List{Elements: []Object{NewInt(0)}}))
	assert.True(t, IsTrue(&Builtin{Name: "X"}))
}
