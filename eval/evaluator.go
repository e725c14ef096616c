/*
File    : gomixlite/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval tree-walks an ast.Node against an environment.Context,
// producing a RuntimeResult. It is the one package allowed to import both
// object and function and environment, since object.Runtime is what lets
// it wire itself in as the host's callback surface without either of those
// packages depending back on it.
package eval

import (
	"fmt"

	"github.com/akashmaji946/gomixlite/ast"
	"github.com/akashmaji946/gomixlite/environment"
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/function"
	"github.com/akashmaji946/gomixlite/lexer"
	"github.com/akashmaji946/gomixlite/object"
	"github.com/akashmaji946/gomixlite/parser"
	"github.com/akashmaji946/gomixlite/stdlib"
	"github.com/akashmaji946/gomixlite/token"
)

// IOHost is the set of operating-system-touching capabilities the
// evaluator needs but must never reach for directly: terminal/file I/O for
// PRINT, INPUT, CLEAR, and RUN. cmd/gomixlite supplies the concrete
// implementation; the core packages only ever see the object.Runtime
// interface this Evaluator implements on IOHost's behalf.
type IOHost interface {
	Write(s string)
	ReadLine() (string, error)
	ClearScreen()
	ReadFile(path string) (string, error)
}

// Evaluator is the tree-walking engine. It holds no AST/environment state
// of its own — every call takes its Context explicitly — only the IOHost
// capability injection plus the running program's global context, needed
// so RUN-included scripts share the top-level symbol table the way
// original_source's single global SymbolTable does.
type Evaluator struct {
	io     IOHost
	Global *environment.Context
}

// New creates an Evaluator backed by io, with a fresh global context named
// "<program>".
func New(io IOHost) *Evaluator {
	ev := &Evaluator{io: io}
	ev.Global = environment.NewContext("<program>", nil, nil)
	ev.Global.Table = environment.NewSymbolTable(nil)
	stdlib.Register(ev.Global.Table)
	return ev
}

// Write implements object.Runtime.
func (e *Evaluator) Write(s string) { e.io.Write(s) }

// ReadLine implements object.Runtime.
func (e *Evaluator) ReadLine() (string, error) { return e.io.ReadLine() }

// ClearScreen implements object.Runtime.
func (e *Evaluator) ClearScreen() { e.io.ClearScreen() }

// Run lexes, parses, and evaluates source (named fileName for error
// messages) against ctx, returning the value of its last statement.
func (e *Evaluator) Run(fileName, source string, ctx *environment.Context) (object.Object, *errs.Error) {
	tokens, lexErr := lexer.New(fileName, source).Tokenize()
	if lexErr != nil {
		return nil, lexErr
	}
	tree, parseErr := parser.New(tokens).Parse()
	if parseErr != nil {
		return nil, parseErr
	}
	result := e.Eval(tree, ctx)
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Value, nil
}

// RunFile implements object.Runtime: it reads path via the IOHost, then
// re-enters the pipeline in a "<module path>" Context whose symbol table is
// the global table itself (not a child table), so a RUN'd script's
// top-level VARs persist into the caller's global scope, matching
// original_source's runner.run() reassigning
// context.symbol_table = global_symbol_table.
func (e *Evaluator) RunFile(path string, callPos token.Position) (object.Object, *errs.Error) {
	source, err := e.io.ReadFile(path)
	if err != nil {
		return nil, errs.New(errs.Runtime, callPos, callPos, fmt.Sprintf("Failed to load script %q: %s", path, err))
	}
	ctx := environment.NewContext(fmt.Sprintf("<module %s>", path), e.Global, &callPos)
	ctx.Table = e.Global.Table
	value, runErr := e.Run(path, source, ctx)
	if runErr != nil {
		return nil, runErr
	}
	return value, nil
}

// CallFunction implements object.Runtime, invoking either a
// *function.UserFunction or an *object.Builtin.
func (e *Evaluator) CallFunction(fn object.Object, args []object.Object, callPos token.Position) (object.Object, *errs.Error) {
	r := e.callFunction(fn, args, callPos)
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Value, nil
}

func (e *Evaluator) callFunction(fn object.Object, args []object.Object, callPos token.Position) *RuntimeResult {
	switch f := fn.(type) {
	case *object.Builtin:
		return e.callBuiltin(f, args, callPos)
	case *function.UserFunction:
		return e.callUserFunction(f, args, callPos)
	default:
		return Failure(errs.New(errs.Runtime, callPos, callPos, "value is not callable"))
	}
}

func (e *Evaluator) callBuiltin(b *object.Builtin, args []object.Object, callPos token.Position) *RuntimeResult {
	if err := checkArity(b.Name, b.Args, args, callPos); err != nil {
		return Failure(err)
	}
	value, err := b.Fn(e, args, callPos)
	if err != nil {
		return Failure(err)
	}
	return Success(value)
}

func (e *Evaluator) callUserFunction(f *function.UserFunction, args []object.Object, callPos token.Position) *RuntimeResult {
	if err := checkArity(f.Name, f.ArgNames, args, callPos); err != nil {
		return Failure(err)
	}

	ctx := environment.NewContext(f.Name, f.ParentContext, &callPos)
	ctx.Table = environment.NewSymbolTable(f.ParentContext.Table)
	for i, name := range f.ArgNames {
		ctx.Table.Set(name, args[i])
	}

	result := e.Eval(f.Body, ctx)
	if result.Err != nil {
		return result
	}

	if f.AutoReturn {
		return Success(result.Value)
	}
	if result.HasReturn {
		value := result.ReturnValue
		if value == nil {
			value = object.Null()
		}
		return Success(value)
	}
	return Success(object.Null())
}

// checkArity enforces exact arity, raising "too many args passed into
// <name>" / "too few args passed into <name>" per original_source's
// BaseFunction.check_args, attributed to the call site.
func checkArity(name string, argNames []string, args []object.Object, callPos token.Position) *errs.Error {
	if len(args) > len(argNames) {
		return errs.New(errs.Runtime, callPos, callPos, fmt.Sprintf("too many args passed into %q", name))
	}
	if len(args) < len(argNames) {
		return errs.New(errs.Runtime, callPos, callPos, fmt.Sprintf("too few args passed into %q", name))
	}
	return nil
}

// Eval dispatches node to its visit function. Unknown node types are a bug
// in the parser, not a runtime condition a script can trigger, so they
// panic rather than return a RuntimeResult error.
func (e *Evaluator) Eval(node ast.Node, ctx *environment.Context) *RuntimeResult {
	switch n := node.(type) {
	case *ast.NumberNode:
		return e.visitNumber(n, ctx)
	case *ast.StringNode:
		return e.visitString(n, ctx)
	case *ast.ListNode:
		return e.visitList(n, ctx)
	case *ast.VarAccessNode:
		return e.visitVarAccess(n, ctx)
	case *ast.VarAssignNode:
		return e.visitVarAssign(n, ctx)
	case *ast.BinaryOpNode:
		return e.visitBinaryOp(n, ctx)
	case *ast.UnaryOpNode:
		return e.visitUnaryOp(n, ctx)
	case *ast.IfNode:
		return e.visitIf(n, ctx)
	case *ast.ForNode:
		return e.visitFor(n, ctx)
	case *ast.WhileNode:
		return e.visitWhile(n, ctx)
	case *ast.FunctionDefNode:
		return e.visitFunctionDef(n, ctx)
	case *ast.CallNode:
		return e.visitCall(n, ctx)
	case *ast.ReturnNode:
		return e.visitReturn(n, ctx)
	case *ast.ContinueNode:
		return SuccessContinue()
	case *ast.BreakNode:
		return SuccessBreak()
	case *ast.StatementsNode:
		return e.visitStatements(n, ctx)
	default:
		panic(fmt.Sprintf("eval: no visit method for %T", node))
	}
}
