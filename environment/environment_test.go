/*
File    : gomixlite/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/akashmaji946/gomixlite/object"
	"github.com/akashmaji946/gomixlite/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolTable_GetWalksParentChain(t *testing.T) {
	parent := NewSymbolTable(nil)
	parent.Set("x", object.NewInt(1))
	child := NewSymbolTable(parent)

	value, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, "1", value.ToString())
}

func TestSymbolTable_SetNeverWritesThroughToParent(t *testing.T) {
	parent := NewSymbolTable(nil)
	parent.Set("x", object.NewInt(1))
	child := NewSymbolTable(parent)

	child.Set("x", object.NewInt(99))

	childValue, _ := child.Get("x")
	parentValue, _ := parent.Get("x")
	assert.Equal(t, "99", childValue.ToString())
	assert.Equal(t, "1", parentValue.ToString())
}

func TestSymbolTable_GetMissingNameReportsFalse(t *testing.T) {
	table := NewSymbolTable(nil)
	_, ok := table.Get("nope")
	assert.False(t, ok)
}

func TestSymbolTable_RemoveOnlyAffectsOwnFrame(t *testing.T) {
	parent := NewSymbolTable(nil)
	parent.Set("x", object.NewInt(1))
	child := NewSymbolTable(parent)
	child.Set("x", object.NewInt(2))

	child.Remove("x")

	_, ok := child.Get("x") // falls through to parent now
	require.True(t, ok)
	value, _ := child.Get("x")
	assert.Equal(t, "1", value.ToString())
}

func TestContext_ChainsToParentWithEntryPosition(t *testing.T) {
	global := NewContext("<program>", nil, nil)
	assert.Nil(t, global.ParentEntryPos)
	assert.Nil(t, global.Parent)

	callPos := token.Position{FileName: "<test>", Line: 3}
	call := NewContext("f", global, &callPos)
	require.NotNil(t, call.ParentEntryPos)
	assert.Equal(t, 3, call.ParentEntryPos.Line)
	assert.Same(t, global, call.Parent)
}
