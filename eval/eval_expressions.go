/*
File    : gomixlite/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/environment"
	"github.com/akashmaji946/gomixlite/object"
	"github.com/akashmaji946/gomixlite/token"
)

func (e *Evaluator) visitNumber(n *ast.NumberNode, _ *environment.Context) *RuntimeResult {
	switch v := n.Tok.Value.(type) {
	case int64:
		return Success(object.NewInt(v))
	case float64:
		return Success(object.NewFloat(v))
	default:
		return Success(object.NewInt(0))
	}
}

func (e *Evaluator) visitString(n *ast.StringNode, _ *environment.Context) *RuntimeResult {
	return Success(&object.String{Value: n.Tok.Value.(string)})
}

func (e *Evaluator) visitList(n *ast.ListNode, ctx *environment.Context) *RuntimeResult {
	r := &RuntimeResult{}
	elements := make([]object.Object, 0, len(n.Elements))
	for _, elNode := range n.Elements {
		value := r.Register(e.Eval(elNode, ctx))
		if r.ShouldPropagate() {
			return r
		}
		elements = append(elements, value)
	}
	return Success(&object.List{Elements: elements})
}

func (e *Evaluator) visitVarAccess(n *ast.VarAccessNode, ctx *environment.Context) *RuntimeResult {
	name := n.NameTok.Value.(string)
	value, ok := ctx.Table.Get(name)
	if !ok {
		return Failure(raise(ctx, n.PosStart(), n.PosEnd(), "'"+name+"' is not defined"))
	}
	return Success(value)
}

func (e *Evaluator) visitVarAssign(n *ast.VarAssignNode, ctx *environment.Context) *RuntimeResult {
	r := &RuntimeResult{}
	value := r.Register(e.Eval(n.Value, ctx))
	if r.ShouldPropagate() {
		return r
	}
	ctx.Table.Set(n.NameTok.Value.(string), value)
	return Success(value)
}

func (e *Evaluator) visitBinaryOp(n *ast.BinaryOpNode, ctx *environment.Context) *RuntimeResult {
	r := &RuntimeResult{}
	left := r.Register(e.Eval(n.Left, ctx))
	if r.ShouldPropagate() {
		return r
	}
	// AND/OR/comparisons evaluate both operands unconditionally, preserving
	// the non-short-circuiting behavior original_source's interpreter has.
	right := r.Register(e.Eval(n.Right, ctx))
	if r.ShouldPropagate() {
		return r
	}

	op, ok := binaryOpFor(n.OpTok)
	if !ok {
		return Failure(raise(ctx, n.PosStart(), n.PosEnd(), "Illegal operation"))
	}
	value, err := object.BinaryOp(op, left, right, n.PosStart(), n.PosEnd())
	if err != nil {
		err.Frames = buildFrames(ctx, n.PosStart())
		return Failure(err)
	}
	return Success(value)
}

func (e *Evaluator) visitUnaryOp(n *ast.UnaryOpNode, ctx *environment.Context) *RuntimeResult {
	r := &RuntimeResult{}
	operand := r.Register(e.Eval(n.Operand, ctx))
	if r.ShouldPropagate() {
		return r
	}
	op, ok := unaryOpFor(n.OpTok)
	if !ok {
		return Failure(raise(ctx, n.PosStart(), n.PosEnd(), "Illegal operation"))
	}
	value, err := object.UnaryOp(op, operand, n.PosStart(), n.PosEnd())
	if err != nil {
		err.Frames = buildFrames(ctx, n.PosStart())
		return Failure(err)
	}
	return Success(value)
}

// binaryOpFor maps a binary operator token to its object.Op, per spec.md
// §4.2's operator tokens (keyword AND/OR included alongside the symbolic
// operators).
func binaryOpFor(tok token.Token) (object.Op, bool) {
	switch tok.Type {
	case token.PLUS:
		return object.OpAdd, true
	case token.MINUS:
		return object.OpSub, true
	case token.MUL:
		return object.OpMul, true
	case token.DIV:
		return object.OpDiv, true
	case token.POW:
		return object.OpPow, true
	case token.EE:
		return object.OpEq, true
	case token.NE:
		return object.OpNe, true
	case token.LT:
		return object.OpLt, true
	case token.GT:
		return object.OpGt, true
	case token.LTE:
		return object.OpLte, true
	case token.GTE:
		return object.OpGte, true
	case token.KEYWORD:
		switch tok.Value.(string) {
		case "AND":
			return object.OpAnd, true
		case "OR":
			return object.OpOr, true
		}
	}
	return "", false
}

func unaryOpFor(tok token.Token) (object.Op, bool) {
	switch tok.Type {
	case token.PLUS:
		return object.OpAdd, true
	case token.MINUS:
		return object.OpSub, true
	case token.KEYWORD:
		if tok.Value.(string) == "NOT" {
			return object.OpNot, true
		}
	}
	return "", false
}
