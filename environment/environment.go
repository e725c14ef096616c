/*
File    : gomixlite/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment holds the Language's variable bindings and call-stack
// bookkeeping. SymbolTable is grounded on the teacher's scope.Scope — same
// parent-chain shape — but exposes Get/Set instead of LookUp/Assign: per
// spec.md §3/§5, an assignment always writes the current frame (shadowing),
// it never walks up to mutate an enclosing frame the way the teacher's
// Assign does. Context is grounded on original_source's interpreter
// Context class and carries the call-stack frame used to render tracebacks.
package environment

import (
	"github.com/akashmaji946/gomixlite/object"
	"github.com/akashmaji946/gomixlite/token"
)

// SymbolTable maps names to values within one lexical frame.
type SymbolTable struct {
	vars   map[string]object.Object
	Parent *SymbolTable
}

// NewSymbolTable creates a frame nested under parent (nil for the global
// frame).
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{vars: make(map[string]object.Object), Parent: parent}
}

// Get resolves name by walking this frame and then its ancestors, returning
// ok=false if no frame in the chain binds it.
func (t *SymbolTable) Get(name string) (object.Object, bool) {
	if v, ok := t.vars[name]; ok {
		return v, true
	}
	if t.Parent != nil {
		return t.Parent.Get(name)
	}
	return nil, false
}

// Set binds name to value in this frame only. It never walks to a parent
// frame — assigning inside a function or loop body always shadows rather
// than mutating an enclosing scope's binding.
func (t *SymbolTable) Set(name string, value object.Object) {
	t.vars[name] = value
}

// Remove deletes name from this frame only. eval never calls it: a FOR
// loop's variable stays bound after the loop, as in original_source.
func (t *SymbolTable) Remove(name string) {
	delete(t.vars, name)
}

// Context is one call-stack frame: the global program, or one user function
// invocation. Chaining Context.Parent/ParentEntryPos is what lets errs.Error
// tracebacks render "File X, line Y, in <name>" for every enclosing call.
type Context struct {
	DisplayName    string
	Parent         *Context
	ParentEntryPos *token.Position // nil for the outermost (global) context
	Table          *SymbolTable
}

// NewContext creates a Context named displayName, nested under parent at
// the call-site entryPos (nil for the global context).
func NewContext(displayName string, parent *Context, entryPos *token.Position) *Context {
	return &Context{DisplayName: displayName, Parent: parent, ParentEntryPos: entryPos}
}
