/*
File    : gomixlite/eval/eval_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/environment"
	"github.com/akashmaji946/gomixlite/object"
)

// visitIf evaluates each (condition, body) case in order, running the
// first whose condition is truthy; falls through to the ELSE body (if
// present) or null. Per spec.md §4.2, a block-form arm's value is always
// discarded (ReturnsUnit), a one-line THEN-expr arm's value is the node's
// result.
func (e *Evaluator) visitIf(n *ast.IfNode, ctx *environment.Context) *RuntimeResult {
	r := &RuntimeResult{}
	for _, c := range n.Cases {
		condValue := r.Register(e.Eval(c.Condition, ctx))
		if r.ShouldPropagate() {
			return r
		}
		if !object.IsTrue(condValue) {
			continue
		}
		bodyValue := r.Register(e.Eval(c.Body, ctx))
		if r.ShouldPropagate() {
			return r
		}
		if c.ReturnsUnit {
			return Success(object.Null())
		}
		return Success(bodyValue)
	}

	if n.Else != nil {
		elseValue := r.Register(e.Eval(n.Else.Body, ctx))
		if r.ShouldPropagate() {
			return r
		}
		if n.Else.ReturnsUnit {
			return Success(object.Null())
		}
		return Success(elseValue)
	}

	return Success(object.Null())
}
