/*
File    : gomixlite/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function defines UserFunction, the object.Object representing a
// function value created by a FUN expression. It is kept out of package
// object to avoid an object<->environment import cycle (object.Runtime
// already lets built-ins invoke any callable without either package
// knowing about the other) — see DESIGN.md.
//
// UserFunction only carries data; the call mechanics (binding arguments
// into a new environment.Context, running the body, unwrapping a RETURN
// signal) live in package eval, the one package allowed to import both
// this package and environment.
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/environment"
	"github.com/akashmaji946/gomixlite/object"
)

// UserFunction is a closure: its Body is evaluated against a fresh frame
// chained off ParentContext, the Context captured when the FUN expression
// itself was evaluated.
type UserFunction struct {
	Name          string // "<anonymous>" for a function expression with no name
	ArgNames      []string
	Body          ast.Node
	AutoReturn    bool // true for `FUN name(args) -> expr`
	ParentContext *environment.Context
}

func (f *UserFunction) GetType() object.Type { return object.FunctionType }

func (f *UserFunction) ToString() string {
	return fmt.Sprintf("<function %s>", f.Name)
}

func (f *UserFunction) ToObject() string {
	return fmt.Sprintf("<Function[%s(%s)]>", f.Name, strings.Join(f.ArgNames, ", "))
}
