/*
File    : gomixlite/stdlib/stdlib.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package stdlib implements the Language's built-in function library
// (spec.md §7's table): PRINT, INPUT, CLEAR, the IS_* predicates, the list
// mutators APPEND/POP/EXTEND, LEN, and RUN. Every built-in is grounded on
// original_source/basic.py's BuiltInFunction.execute_* methods, ported to
// the object.Runtime capability-injection hook instead of calling print()/
// input()/os.system() directly — the host (cmd/gomixlite) decides what
// those actually do.
package stdlib

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/gomixlite/environment"
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/object"
	"github.com/akashmaji946/gomixlite/token"
)

// All is the complete built-in table, in the order spec.md §7 lists them.
var All = []*object.Builtin{
	{Name: "PRINT", Args: []string{"value"}, Fn: builtinPrint},
	{Name: "PRINT_RET", Args: []string{"value"}, Fn: builtinPrintRet},
	{Name: "INPUT", Args: nil, Fn: builtinInput},
	{Name: "INPUT_INT", Args: nil, Fn: builtinInputInt},
	{Name: "CLEAR", Args: nil, Fn: builtinClear},
	{Name: "CLS", Args: nil, Fn: builtinClear},
	{Name: "IS_NUM", Args: []string{"value"}, Fn: builtinIsNum},
	{Name: "IS_STR", Args: []string{"value"}, Fn: builtinIsStr},
	{Name: "IS_LIST", Args: []string{"value"}, Fn: builtinIsList},
	{Name: "IS_FUN", Args: []string{"value"}, Fn: builtinIsFun},
	{Name: "APPEND", Args: []string{"list", "value"}, Fn: builtinAppend},
	{Name: "POP", Args: []string{"list", "index"}, Fn: builtinPop},
	{Name: "EXTEND", Args: []string{"listA", "listB"}, Fn: builtinExtend},
	{Name: "LEN", Args: []string{"list"}, Fn: builtinLen},
	{Name: "RUN", Args: []string{"path"}, Fn: builtinRun},
}

// Register binds every built-in, plus the NULL/TRUE/FALSE constants, into
// table — the job original_source's basic.py does once at startup against
// its module-level global_symbol_table.
func Register(table *environment.SymbolTable) {
	table.Set("NULL", object.Null())
	table.Set("TRUE", object.True())
	table.Set("FALSE", object.False())
	for _, b := range All {
		table.Set(b.Name, b)
	}
}

func builtinPrint(rt object.Runtime, args []object.Object, _ token.Position) (object.Object, *errs.Error) {
	rt.Write(args[0].ToString())
	return object.Null(), nil
}

func builtinPrintRet(_ object.Runtime, args []object.Object, _ token.Position) (object.Object, *errs.Error) {
	return &object.String{Value: args[0].ToString()}, nil
}

func builtinInput(rt object.Runtime, _ []object.Object, _ token.Position) (object.Object, *errs.Error) {
	line, err := rt.ReadLine()
	if err != nil {
		return &object.String{Value: ""}, nil
	}
	return &object.String{Value: line}, nil
}

// builtinInputInt loops, re-prompting via PRINT-less output, until a line
// parses as an integer — matching original_source's execute_input_int.
func builtinInputInt(rt object.Runtime, _ []object.Object, _ token.Position) (object.Object, *errs.Error) {
	for {
		line, err := rt.ReadLine()
		if err != nil {
			return object.NewInt(0), nil
		}
		n, parseErr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if parseErr == nil {
			return object.NewInt(n), nil
		}
		rt.Write("Must input an integer")
	}
}

func builtinClear(rt object.Runtime, _ []object.Object, _ token.Position) (object.Object, *errs.Error) {
	rt.ClearScreen()
	return object.Null(), nil
}

func builtinIsNum(_ object.Runtime, args []object.Object, _ token.Position) (object.Object, *errs.Error) {
	return boolResult(args[0].GetType() == object.NumberType), nil
}

func builtinIsStr(_ object.Runtime, args []object.Object, _ token.Position) (object.Object, *errs.Error) {
	return boolResult(args[0].GetType() == object.StringType), nil
}

func builtinIsList(_ object.Runtime, args []object.Object, _ token.Position) (object.Object, *errs.Error) {
	return boolResult(args[0].GetType() == object.ListType), nil
}

func builtinIsFun(_ object.Runtime, args []object.Object, _ token.Position) (object.Object, *errs.Error) {
	typ := args[0].GetType()
	return boolResult(typ == object.FunctionType || typ == object.BuiltinType), nil
}

func boolResult(b bool) *object.Number {
	if b {
		return object.True()
	}
	return object.False()
}

func builtinAppend(_ object.Runtime, args []object.Object, callPos token.Position) (object.Object, *errs.Error) {
	list, ok := args[0].(*object.List)
	if !ok {
		return nil, errs.New(errs.Runtime, callPos, callPos, "First argument must be a list")
	}
	list.Elements = append(list.Elements, args[1])
	return object.Null(), nil
}

func builtinPop(_ object.Runtime, args []object.Object, callPos token.Position) (object.Object, *errs.Error) {
	list, ok := args[0].(*object.List)
	if !ok {
		return nil, errs.New(errs.Runtime, callPos, callPos, "First argument must be a list")
	}
	idxObj, ok := args[1].(*object.Number)
	if !ok {
		return nil, errs.New(errs.Runtime, callPos, callPos, "Second argument must be a number")
	}
	idx := idxObj.Int()
	if idx < 0 || idx >= int64(len(list.Elements)) {
		return nil, errs.New(errs.Runtime, callPos, callPos, "index out of bounds")
	}
	elem := list.Elements[idx]
	list.Elements = append(list.Elements[:idx], list.Elements[idx+1:]...)
	return elem, nil
}

func builtinExtend(_ object.Runtime, args []object.Object, callPos token.Position) (object.Object, *errs.Error) {
	listA, ok := args[0].(*object.List)
	if !ok {
		return nil, errs.New(errs.Runtime, callPos, callPos, "First argument must be a list")
	}
	listB, ok := args[1].(*object.List)
	if !ok {
		return nil, errs.New(errs.Runtime, callPos, callPos, "Second argument must be a list")
	}
	listA.Elements = append(listA.Elements, listB.Elements...)
	return object.Null(), nil
}

// builtinLen returns the element count of a list. original_source's
// execute_len checks isinstance(list_, list) against the wrapper List
// object rather than its .elements field, so it always fails with
// "Argument must be a list" even for a genuine List — spec.md §9 calls
// this out as a source bug; this implementation checks the wrapper type
// itself so LEN actually works.
func builtinLen(_ object.Runtime, args []object.Object, callPos token.Position) (object.Object, *errs.Error) {
	list, ok := args[0].(*object.List)
	if !ok {
		return nil, errs.New(errs.Runtime, callPos, callPos, "Argument must be a list")
	}
	return object.NewInt(int64(len(list.Elements))), nil
}

func builtinRun(rt object.Runtime, args []object.Object, callPos token.Position) (object.Object, *errs.Error) {
	pathObj, ok := args[0].(*object.String)
	if !ok {
		return nil, errs.New(errs.Runtime, callPos, callPos, "Argument must be a string")
	}
	if _, err := rt.RunFile(pathObj.Value, callPos); err != nil {
		return nil, errs.NewRuntime(callPos, callPos, "Failed to finish executing script \""+pathObj.Value+"\"\n"+err.AsString(), nil)
	}
	return object.Null(), nil
}
