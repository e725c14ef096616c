/*
File    : gomixlite/eval/result.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/object"
)

// RuntimeResult wraps the outcome of evaluating one AST node: either a
// value, a Runtime error, or one of the three non-local control signals
// (RETURN, BREAK, CONTINUE). Grounded on original_source's
// runtime.RuntimeResult — modeling these as explicit return values rather
// than Go panics/exceptions keeps control flow visible at every call site.
type RuntimeResult struct {
	Value    object.Object
	Err      *errs.Error
	ReturnValue object.Object
	HasReturn   bool
	HasBreak    bool
	HasContinue bool
}

// Success wraps an ordinary value with no pending signal.
func Success(value object.Object) *RuntimeResult {
	return &RuntimeResult{Value: value}
}

// Failure wraps a Runtime (or lex/parse) error.
func Failure(err *errs.Error) *RuntimeResult {
	return &RuntimeResult{Err: err}
}

// SuccessReturn wraps a RETURN signal carrying value (nil for bare RETURN,
// meaning "return null").
func SuccessReturn(value object.Object) *RuntimeResult {
	return &RuntimeResult{ReturnValue: value, HasReturn: true}
}

// SuccessBreak wraps a BREAK signal.
func SuccessBreak() *RuntimeResult {
	return &RuntimeResult{HasBreak: true}
}

// SuccessContinue wraps a CONTINUE signal.
func SuccessContinue() *RuntimeResult {
	return &RuntimeResult{HasContinue: true}
}

// ShouldPropagate reports whether r carries an error or a non-local signal
// that the caller must forward rather than consume — i.e. everything
// except a plain value.
func (r *RuntimeResult) ShouldPropagate() bool {
	return r.Err != nil || r.HasReturn || r.HasBreak || r.HasContinue
}

// Register unwraps other into its value, propagating its own signal state
// (error/return/break/continue) into r. Call sites use it as:
//
//	value := r.Register(eval(node, ctx))
//	if r.ShouldPropagate() { return r }
//
// mirroring original_source's res.register(self.visit(node, context)).
func (r *RuntimeResult) Register(other *RuntimeResult) object.Object {
	r.Err = other.Err
	r.ReturnValue = other.ReturnValue
	r.HasReturn = other.HasReturn
	r.HasBreak = other.HasBreak
	r.HasContinue = other.HasContinue
	return other.Value
}
