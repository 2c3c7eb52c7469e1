/*
File    : gomix-lite/scopearena/arena.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scopearena implements variable and function scoping as an
// append-only arena of integer-indexed scopes, rather than the more usual
// pointer-chained parent links. Scopes are never freed individually; the
// whole arena is dropped with the evaluator that owns it.
package scopearena

import (
	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/value"
)

// ID identifies a scope within an Arena. The root scope is always ID 0. A
// child scope's ID is always greater than its parent's, since scopes are
// only ever appended.
type ID int

// NoParent marks the root scope, which has no enclosing scope.
const NoParent ID = -1

type scope struct {
	parent    ID
	variables map[string]value.Value
	functions map[string]*ast.FunctionDeclaration
}

// Arena owns every scope created during a program's evaluation. New
// returns a freshly allocated scope; the Define methods bind in exactly
// the scope given, and the Lookup methods walk the parent chain by index
// rather than by pointer.
type Arena struct {
	scopes []scope
}

// NewArena builds an Arena containing just the root scope (ID 0, no
// parent) and returns it along with the root's ID.
func NewArena() (*Arena, ID) {
	a := &Arena{}
	root := a.New(NoParent)
	return a, root
}

// New allocates a fresh scope with the given parent and returns its ID.
// Passing NoParent creates another root-like scope with no enclosing
// scope to fall back to.
func (a *Arena) New(parent ID) ID {
	a.scopes = append(a.scopes, scope{parent: parent})
	return ID(len(a.scopes) - 1)
}

func (a *Arena) at(id ID) *scope {
	return &a.scopes[id]
}

// DefineVariable binds name to v in the scope id, shadowing any binding
// of the same name in an enclosing scope. Redeclaring name within the
// same scope silently overwrites the previous binding (Open Question #1).
func (a *Arena) DefineVariable(id ID, name string, v value.Value) {
	s := a.at(id)
	if s.variables == nil {
		s.variables = make(map[string]value.Value)
	}
	s.variables[name] = v
}

// LookupVariable searches id and its ancestors for name, returning the
// nearest binding. ok is false if no scope in the chain binds name.
func (a *Arena) LookupVariable(id ID, name string) (value.Value, bool) {
	for cur := id; cur != NoParent; cur = a.at(cur).parent {
		if v, ok := a.at(cur).variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// DefineFunction binds a function declaration by name in scope id.
func (a *Arena) DefineFunction(id ID, decl *ast.FunctionDeclaration) {
	s := a.at(id)
	if s.functions == nil {
		s.functions = make(map[string]*ast.FunctionDeclaration)
	}
	s.functions[decl.Name] = decl
}

// LookupFunction searches id and its ancestors for a function named name.
func (a *Arena) LookupFunction(id ID, name string) (*ast.FunctionDeclaration, bool) {
	for cur := id; cur != NoParent; cur = a.at(cur).parent {
		if fn, ok := a.at(cur).functions[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// Parent returns id's enclosing scope, or NoParent if id is a root scope.
func (a *Arena) Parent(id ID) ID {
	return a.at(id).parent
}
