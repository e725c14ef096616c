/*
File    : gomixlite/eval/eval_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/environment"
)

// visitReturn evaluates a RETURN's optional expression (nil for a bare
// RETURN, meaning "return null" once unwrapped by the call site) and wraps
// it as a RETURN signal for the enclosing function call to catch.
func (e *Evaluator) visitReturn(n *ast.ReturnNode, ctx *environment.Context) *RuntimeResult {
	if n.Value == nil {
		return SuccessReturn(nil)
	}
	r := &RuntimeResult{}
	value := r.Register(e.Eval(n.Value, ctx))
	if r.ShouldPropagate() {
		return r
	}
	return SuccessReturn(value)
}
