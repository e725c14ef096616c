/*
File    : gomixlite/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/environment"
	"github.com/akashmaji946/gomixlite/object"
)

// visitStatements evaluates each statement in sequence, propagating the
// first error or non-local signal (RETURN/BREAK/CONTINUE) immediately.
// Its value is the last statement's value (null for an empty block).
func (e *Evaluator) visitStatements(n *ast.StatementsNode, ctx *environment.Context) *RuntimeResult {
	r := &RuntimeResult{}
	var last object.Object = object.Null()
	for _, stmt := range n.Statements {
		last = r.Register(e.Eval(stmt, ctx))
		if r.ShouldPropagate() {
			return r
		}
	}
	return Success(last)
}
