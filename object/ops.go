/*
File    : gomixlite/object/ops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"math"

	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/token"
)

func powFloat(base, exp float64) float64 { return math.Pow(base, exp) }

// Op identifies a binary or unary operator, independent of the token kind
// that produced it, so the dispatch tables below read as plain data.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpPow Op = "^"

	OpEq  Op = "=="
	OpNe  Op = "!="
	OpLt  Op = "<"
	OpGt  Op = ">"
	OpLte Op = "<="
	OpGte Op = ">="

	OpAnd Op = "AND"
	OpOr  Op = "OR"
	OpNot Op = "NOT"
)

// illegalOperation builds the uniform Runtime error for any (kind, kind,
// op) combination the table below doesn't define — the single "illegal
// operation" fallthrough path spec.md §9 calls for, replacing the
// original's per-value virtual-method dispatch with one two-level match
// on (kind(lhs), kind(rhs), op).
func illegalOperation(posStart, posEnd token.Position) *errs.Error {
	return errs.New(errs.Runtime, posStart, posEnd, "Illegal operation")
}

// BinaryOp evaluates `left op right`, dispatching on the runtime kinds of
// both operands per spec.md §4.3's table. posStart/posEnd bound the whole
// binary expression, used for any Illegal operation / Division by 0 /
// index-out-of-bounds error it raises.
func BinaryOp(op Op, left, right Object, posStart, posEnd token.Position) (Object, *errs.Error) {
	switch op {
	case OpAdd:
		return binaryAdd(left, right, posStart, posEnd)
	case OpSub:
		return binarySub(left, right, posStart, posEnd)
	case OpMul:
		return binaryMul(left, right, posStart, posEnd)
	case OpDiv:
		return binaryDiv(left, right, posStart, posEnd)
	case OpPow:
		return binaryPow(left, right, posStart, posEnd)
	case OpEq, OpNe, OpLt, OpGt, OpLte, OpGte:
		return binaryCompare(op, left, right, posStart, posEnd)
	case OpAnd, OpOr:
		return binaryLogical(op, left, right, posStart, posEnd)
	default:
		return nil, illegalOperation(posStart, posEnd)
	}
}

func binaryAdd(left, right Object, posStart, posEnd token.Position) (Object, *errs.Error) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return addNumbers(l, r), nil
		}
	case *String:
		if r, ok := right.(*String); ok {
			return &String{Value: l.Value + r.Value}, nil
		}
	case *List:
		if r, ok := right.(*List); ok {
			combined := make([]Object, 0, len(l.Elements)+len(r.Elements))
			combined = append(combined, l.Elements...)
			combined = append(combined, r.Elements...)
			return &List{Elements: combined}, nil
		}
		// L + any non-list value appends that value, producing a new list.
		appended := make([]Object, 0, len(l.Elements)+1)
		appended = append(appended, l.Elements...)
		appended = append(appended, right)
		return &List{Elements: appended}, nil
	}
	return nil, illegalOperation(posStart, posEnd)
}

func addNumbers(l, r *Number) *Number {
	if l.IsInt && r.IsInt {
		return NewInt(int64(l.Value) + int64(r.Value))
	}
	return NewFloat(l.Value + r.Value)
}

func binarySub(left, right Object, posStart, posEnd token.Position) (Object, *errs.Error) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			if l.IsInt && r.IsInt {
				return NewInt(int64(l.Value) - int64(r.Value)), nil
			}
			return NewFloat(l.Value - r.Value), nil
		}
	case *List:
		if r, ok := right.(*Number); ok {
			idx := r.Int()
			if idx < 0 || idx >= int64(len(l.Elements)) {
				return nil, errs.New(errs.Runtime, posStart, posEnd, "index out of bounds")
			}
			remaining := make([]Object, 0, len(l.Elements)-1)
			remaining = append(remaining, l.Elements[:idx]...)
			remaining = append(remaining, l.Elements[idx+1:]...)
			return &List{Elements: remaining}, nil
		}
	}
	return nil, illegalOperation(posStart, posEnd)
}

func binaryMul(left, right Object, posStart, posEnd token.Position) (Object, *errs.Error) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			if l.IsInt && r.IsInt {
				return NewInt(int64(l.Value) * int64(r.Value)), nil
			}
			return NewFloat(l.Value * r.Value), nil
		}
		if r, ok := right.(*String); ok {
			return repeatString(r.Value, l.Int()), nil
		}
	case *String:
		if r, ok := right.(*Number); ok {
			return repeatString(l.Value, r.Int()), nil
		}
	}
	return nil, illegalOperation(posStart, posEnd)
}

func repeatString(s string, n int64) *String {
	if n <= 0 {
		return &String{Value: ""}
	}
	out := make([]byte, 0, int64(len(s))*n)
	for i := int64(0); i < n; i++ {
		out = append(out, s...)
	}
	return &String{Value: string(out)}
}

func binaryDiv(left, right Object, posStart, posEnd token.Position) (Object, *errs.Error) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			if r.Value == 0 {
				return nil, errs.New(errs.Runtime, posStart, posEnd, "Division by 0")
			}
			if l.IsInt && r.IsInt && int64(l.Value)%int64(r.Value) == 0 {
				return NewInt(int64(l.Value) / int64(r.Value)), nil
			}
			return NewFloat(l.Value / r.Value), nil
		}
	case *List:
		if r, ok := right.(*Number); ok {
			idx := r.Int()
			if idx < 0 || idx >= int64(len(l.Elements)) {
				return nil, errs.New(errs.Runtime, posStart, posEnd, "index out of bounds")
			}
			return l.Elements[idx], nil
		}
	}
	return nil, illegalOperation(posStart, posEnd)
}

func binaryPow(left, right Object, posStart, posEnd token.Position) (Object, *errs.Error) {
	l, ok := left.(*Number)
	if !ok {
		return nil, illegalOperation(posStart, posEnd)
	}
	r, ok := right.(*Number)
	if !ok {
		return nil, illegalOperation(posStart, posEnd)
	}
	result := powFloat(l.Value, r.Value)
	if l.IsInt && r.IsInt && r.Value >= 0 {
		return NewInt(int64(result)), nil
	}
	return NewFloat(result), nil
}

func binaryCompare(op Op, left, right Object, posStart, posEnd token.Position) (Object, *errs.Error) {
	l, ok := left.(*Number)
	if !ok {
		return nil, illegalOperation(posStart, posEnd)
	}
	r, ok := right.(*Number)
	if !ok {
		return nil, illegalOperation(posStart, posEnd)
	}
	var result bool
	switch op {
	case OpEq:
		result = l.Value == r.Value
	case OpNe:
		result = l.Value != r.Value
	case OpLt:
		result = l.Value < r.Value
	case OpGt:
		result = l.Value > r.Value
	case OpLte:
		result = l.Value <= r.Value
	case OpGte:
		result = l.Value >= r.Value
	}
	return boolNumber(result), nil
}

// binaryLogical evaluates AND/OR on Numbers. Both operands are already
// evaluated by the time this runs — the evaluator does not short-circuit,
// preserving spec.md §4.4/§9's explicit callout that the original
// implementation (and this one) evaluates both sides unconditionally.
func binaryLogical(op Op, left, right Object, posStart, posEnd token.Position) (Object, *errs.Error) {
	l, ok := left.(*Number)
	if !ok {
		return nil, illegalOperation(posStart, posEnd)
	}
	r, ok := right.(*Number)
	if !ok {
		return nil, illegalOperation(posStart, posEnd)
	}
	var result bool
	if op == OpAnd {
		result = l.Value != 0 && r.Value != 0
	} else {
		result = l.Value != 0 || r.Value != 0
	}
	return boolNumber(result), nil
}

func boolNumber(b bool) *Number {
	if b {
		return NewInt(1)
	}
	return NewInt(0)
}

// UnaryOp evaluates `op operand` for unary minus/plus and NOT.
func UnaryOp(op Op, operand Object, posStart, posEnd token.Position) (Object, *errs.Error) {
	n, ok := operand.(*Number)
	if !ok {
		return nil, illegalOperation(posStart, posEnd)
	}
	switch op {
	case OpSub:
		if n.IsInt {
			return NewInt(-int64(n.Value)), nil
		}
		return NewFloat(-n.Value), nil
	case OpAdd:
		return n, nil
	case OpNot:
		if n.Value == 0 {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	default:
		return nil, illegalOperation(posStart, posEnd)
	}
}
