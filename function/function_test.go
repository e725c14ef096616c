/*
File    : gomixlite/function/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"testing"

	"github.com/akashmaji946/gomixlite/environment"
	"github.com/akashmaji946/gomixlite/object"
	"github.com/stretchr/testify/assert"
)

func TestUserFunction_GetTypeIsFunction(t *testing.T) {
	fn := &UserFunction{Name: "add", ArgNames: []string{"a", "b"}}
	assert.Equal(t, object.FunctionType, fn.GetType())
}

func TestUserFunction_ToStringNamesTheFunction(t *testing.T) {
	fn := &UserFunction{Name: "add"}
	assert.Equal(t, "<function add>", fn.ToString())
}

func TestUserFunction_ToObjectListsArgNames(t *testing.T) {
	fn := &UserFunction{Name: "add", ArgNames: []string{"a", "b"}}
	assert.Equal(t, "<Function[add(a, b)]>", fn.ToObject())
}

func TestUserFunction_CapturesDefiningContext(t *testing.T) {
	ctx := environment.NewContext("<program>", nil, nil)
	fn := &UserFunction{Name: "f", ParentContext: ctx}
	assert.Same(t, ctx, fn.ParentContext)
}
