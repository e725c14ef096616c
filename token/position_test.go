/*
File    : gomixlite/token/position_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_AdvanceTracksLineAndColumn(t *testing.T) {
	pos := NewPosition("<test>", "ab\ncd")
	assert.Equal(t, -1, pos.Index)
	assert.Equal(t, 0, pos.Line)
	assert.Equal(t, -1, pos.Column)

	pos.Advance(0) // 'a'
	assert.Equal(t, 0, pos.Index)
	assert.Equal(t, 0, pos.Column)

	pos.Advance('a') // 'b'
	assert.Equal(t, 1, pos.Index)
	assert.Equal(t, 1, pos.Column)

	pos.Advance('b') // '\n'
	assert.Equal(t, 2, pos.Index)

	pos.Advance('\n') // 'c'
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 0, pos.Column)
}

func TestPosition_CopyIsIndependent(t *testing.T) {
	pos := NewPosition("<test>", "xyz")
	pos.Advance(0)
	snapshot := pos.Copy()
	pos.Advance('x')
	assert.NotEqual(t, pos.Index, snapshot.Index)
}
