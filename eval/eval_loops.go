/*
File    : gomixlite/eval/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/environment"
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/object"
)

// visitFor runs the loop variable from StartValue to EndValue (exclusive),
// stepping by StepValue (default 1, direction-aware: counts down if the
// step is negative). A block-form body (ReturnsUnit) discards the
// collected values and yields null; a one-line THEN-expr body collects
// each iteration's value into a List, mirroring original_source's
// interpreter.visit_ForNode.
func (e *Evaluator) visitFor(n *ast.ForNode, ctx *environment.Context) *RuntimeResult {
	r := &RuntimeResult{}

	startObj := r.Register(e.Eval(n.StartValue, ctx))
	if r.ShouldPropagate() {
		return r
	}
	start, err := asNumber(ctx, n.StartValue, startObj)
	if err != nil {
		return Failure(err)
	}

	endObj := r.Register(e.Eval(n.EndValue, ctx))
	if r.ShouldPropagate() {
		return r
	}
	end, err := asNumber(ctx, n.EndValue, endObj)
	if err != nil {
		return Failure(err)
	}

	step := 1.0
	stepIsInt := true
	if n.StepValue != nil {
		stepObj := r.Register(e.Eval(n.StepValue, ctx))
		if r.ShouldPropagate() {
			return r
		}
		stepNum, err := asNumber(ctx, n.StepValue, stepObj)
		if err != nil {
			return Failure(err)
		}
		step = stepNum.Value
		stepIsInt = stepNum.IsInt
	}

	name := n.VarNameTok.Value.(string)
	allInt := start.IsInt && end.IsInt && stepIsInt
	i := start.Value
	condition := func() bool { return i < end.Value }
	if step < 0 {
		condition = func() bool { return i > end.Value }
	}

	var elements []object.Object
	for condition() {
		if allInt {
			ctx.Table.Set(name, object.NewInt(int64(i)))
		} else {
			ctx.Table.Set(name, object.NewFloat(i))
		}
		i += step

		value := r.Register(e.Eval(n.Body, ctx))
		if r.Err != nil {
			return r
		}
		if r.HasReturn {
			return r
		}
		if r.HasContinue {
			r.HasContinue = false
			continue
		}
		if r.HasBreak {
			r.HasBreak = false
			break
		}
		elements = append(elements, value)
	}

	if n.ReturnsUnit {
		return Success(object.Null())
	}
	return Success(&object.List{Elements: elements})
}

// visitWhile evaluates Condition before each iteration, running Body while
// it is truthy, with the same return/break/continue handling as visitFor.
func (e *Evaluator) visitWhile(n *ast.WhileNode, ctx *environment.Context) *RuntimeResult {
	r := &RuntimeResult{}
	var elements []object.Object

	for {
		condValue := r.Register(e.Eval(n.Condition, ctx))
		if r.ShouldPropagate() {
			return r
		}
		if !object.IsTrue(condValue) {
			break
		}

		value := r.Register(e.Eval(n.Body, ctx))
		if r.Err != nil {
			return r
		}
		if r.HasReturn {
			return r
		}
		if r.HasContinue {
			r.HasContinue = false
			continue
		}
		if r.HasBreak {
			r.HasBreak = false
			break
		}
		elements = append(elements, value)
	}

	if n.ReturnsUnit {
		return Success(object.Null())
	}
	return Success(&object.List{Elements: elements})
}

// asNumber requires a FOR bound to be a Number, raising a Runtime error at
// node's span otherwise.
func asNumber(ctx *environment.Context, node ast.Node, value object.Object) (*object.Number, *errs.Error) {
	n, ok := value.(*object.Number)
	if !ok {
		return nil, raise(ctx, node.PosStart(), node.PosEnd(), "expected a Number")
	}
	return n, nil
}
