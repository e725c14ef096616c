/*
File    : gomixlite/eval/eval_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/environment"
	"github.com/akashmaji946/gomixlite/function"
	"github.com/akashmaji946/gomixlite/object"
)

// visitFunctionDef builds a closure capturing ctx. A named definition
// (`FUN name(...) ...`) also binds itself into ctx under that name so it
// can recurse; an anonymous one (`FUN(...) -> expr`) just yields the value.
func (e *Evaluator) visitFunctionDef(n *ast.FunctionDefNode, ctx *environment.Context) *RuntimeResult {
	name := "<anonymous>"
	if n.NameTok != nil {
		name = n.NameTok.Value.(string)
	}

	argNames := make([]string, len(n.ArgTokens))
	for i, tok := range n.ArgTokens {
		argNames[i] = tok.Value.(string)
	}

	fn := &function.UserFunction{
		Name:          name,
		ArgNames:      argNames,
		Body:          n.Body,
		AutoReturn:    n.AutoReturn,
		ParentContext: ctx,
	}

	if n.NameTok != nil {
		ctx.Table.Set(name, fn)
	}

	return Success(fn)
}

// visitCall evaluates the callee and each argument left to right, then
// invokes it through the shared CallFunction path (the same one
// object.Runtime exposes to built-ins), so a script calling another
// script's function behaves identically whether the call originates from
// user code or from a built-in like nothing in this Language actually
// does — there is exactly one call path.
func (e *Evaluator) visitCall(n *ast.CallNode, ctx *environment.Context) *RuntimeResult {
	r := &RuntimeResult{}
	callee := r.Register(e.Eval(n.Callee, ctx))
	if r.ShouldPropagate() {
		return r
	}

	args := make([]object.Object, 0, len(n.Args))
	for _, argNode := range n.Args {
		value := r.Register(e.Eval(argNode, ctx))
		if r.ShouldPropagate() {
			return r
		}
		args = append(args, value)
	}

	// An error raised inside a user function's body already carries a
	// traceback through the callee's own lexical context chain (its
	// ParentContext), entered at this call site's position — see
	// callUserFunction. Errors that come back without one (arity, a
	// non-callable value, a built-in's own failure) get this caller's chain.
	result := e.callFunction(callee, args, n.PosStart())
	if result.Err != nil && len(result.Err.Frames) == 0 {
		result.Err.Frames = buildFrames(ctx, n.PosStart())
	}
	return result
}
