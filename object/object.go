/*
File    : gomixlite/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines the Language's runtime value model: Number,
// String, List, and Builtin (the fifth variant, UserFunction, lives in the
// sibling function package to avoid object<->environment import cycle —
// see DESIGN.md). It also defines the Runtime hook interface that lets
// built-ins call back into the evaluator without object importing eval.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/token"
)

// Type identifies the runtime kind of an Object.
type Type string

const (
	NumberType  Type = "Number"
	StringType  Type = "String"
	ListType    Type = "List"
	FunctionType Type = "Function"
	BuiltinType Type = "BuiltinFunction"
)

// Object is implemented by every runtime value.
type Object interface {
	GetType() Type
	ToString() string
	ToObject() string
}

// Runtime is the capability an evaluator exposes to built-in functions:
// invoking values as functions, and the I/O/RUN hooks spec.md requires to
// be injected rather than hard-wired into the core (§1, §4.5, §6).
type Runtime interface {
	// CallFunction invokes fn (a *function.UserFunction or *Builtin) with
	// args, at the call site callPos, returning its result or a Runtime
	// error.
	CallFunction(fn Object, args []Object, callPos token.Position) (Object, *errs.Error)
	// Write sends text to the host's configured output (PRINT).
	Write(s string)
	// ReadLine reads one line from the host's configured input (INPUT).
	ReadLine() (string, error)
	// RunFile re-enters the lex/parse/eval pipeline on the named file's
	// contents (RUN). File reading itself is the host's responsibility,
	// per spec.md's "external collaborators" boundary.
	RunFile(path string, callPos token.Position) (Object, *errs.Error)
	// ClearScreen clears the host terminal (CLEAR/CLS).
	ClearScreen()
}

// Number wraps either an integer or a floating-point value, matching
// original_source's untyped Python Number and spec.md's "Number(f64-or-i64)".
type Number struct {
	Value float64
	IsInt bool
}

// NewInt creates an integer-valued Number.
func NewInt(v int64) *Number { return &Number{Value: float64(v), IsInt: true} }

// NewFloat creates a float-valued Number.
func NewFloat(v float64) *Number { return &Number{Value: v, IsInt: false} }

// Int returns the Number's value truncated to int64, used for list indices
// and string repeat counts.
func (n *Number) Int() int64 { return int64(n.Value) }

func (n *Number) GetType() Type { return NumberType }

func (n *Number) ToString() string {
	if n.IsInt {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Number) ToObject() string { return fmt.Sprintf("<Number(%s)>", n.ToString()) }

// Well-known constants per spec.md §3: null = 0, true = 1, false = 0.
// Each builtin call returns its own instance to avoid accidental aliasing
// across mutation-unsafe call sites (Numbers are otherwise immutable).
func Null() *Number  { return NewInt(0) }
func True() *Number  { return NewInt(1) }
func False() *Number { return NewInt(0) }

// String wraps a text value.
type String struct {
	Value string
}

func (s *String) GetType() Type     { return StringType }
func (s *String) ToString() string  { return s.Value }
func (s *String) ToObject() string  { return fmt.Sprintf("<String(%s)>", s.Value) }

// List is a mutable, ordered sequence of values.
type List struct {
	Elements []Object
}

func (l *List) GetType() Type { return ListType }

func (l *List) ToString() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.ToString()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) ToObject() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.ToObject()
	}
	return "<List([" + strings.Join(parts, ", ") + "])>"
}

// BuiltinFunc is the signature every built-in implements. It receives the
// Runtime hook, its already arity-checked arguments, and the call-site
// position to use in any error it raises.
type BuiltinFunc func(rt Runtime, args []Object, callPos token.Position) (Object, *errs.Error)

// Builtin is a named, fixed-arity built-in function (PRINT, LEN, ...).
type Builtin struct {
	Name string
	Args []string
	Fn   BuiltinFunc
}

func (b *Builtin) GetType() Type    { return BuiltinType }
func (b *Builtin) ToString() string { return fmt.Sprintf("<built-in function %s>", b.Name) }
func (b *Builtin) ToObject() string { return b.ToString() }

// IsTrue reports whether a value is "truthy" per spec.md §9's resolution
// of the original's truthiness Open Question: Numbers are true when
// non-zero, Strings when non-empty, Lists when non-empty (not always
// false, the behavior original_source inherits unintentionally from its
// base Value class), and functions (UserFunction/Builtin) are always
// true — the alternative ("always false") would make `IF someFunc THEN
// ...` permanently dead code.
func IsTrue(o Object) bool {
	switch v := o.(type) {
	case *Number:
		return v.Value != 0
	case *String:
		return v.Value != ""
	case *List:
		return len(v.Elements) > 0
	default:
		return true
	}
}
