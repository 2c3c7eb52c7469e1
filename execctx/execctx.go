/*
File    : gomix-lite/execctx/execctx.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package execctx tracks the evaluator's mutable state across a single
// program run: the scope arena and current scope, the call stack used
// for error reporting, and the function-call activation bookkeeping that
// makes `return` well defined.
//
// Go's evaluator is a single *eval.Evaluator walking nested calls by
// recursing within one call to Eval, not by spinning up a fresh
// interpreter per call. To make a stray `return` at top level detectable
// and to give every nested call its own return slot, Context keeps an
// explicit stack of return-value slots rather than one shared flag: the
// invariant function depth == len(returnSlots) always holds.
package execctx

import (
	"github.com/akashmaji946/gomix-lite/langerr"
	"github.com/akashmaji946/gomix-lite/scopearena"
	"github.com/akashmaji946/gomix-lite/value"
)

// Context is the evaluator's mutable run state.
type Context struct {
	arena        *scopearena.Arena
	currentScope scopearena.ID

	callStack []langerr.Frame

	// returnSlots holds one entry per function activation currently on
	// the Go call stack. len(returnSlots) is the function depth.
	returnSlots []*returnSlot
}

type returnSlot struct {
	set   bool
	value value.Value
}

// New builds a Context with a fresh arena and its root scope current.
func New() *Context {
	arena, root := scopearena.NewArena()
	return &Context{arena: arena, currentScope: root}
}

// Arena exposes the underlying scope arena, for direct variable/function
// lookups and definitions in the current scope.
func (c *Context) Arena() *scopearena.Arena {
	return c.arena
}

// CurrentScope returns the scope new bindings and lookups resolve
// against.
func (c *Context) CurrentScope() scopearena.ID {
	return c.currentScope
}

// EnterNewScope allocates a fresh child of the current scope and makes it
// current, returning the previous scope so the caller can restore it with
// RestoreScope.
func (c *Context) EnterNewScope() scopearena.ID {
	previous := c.currentScope
	c.currentScope = c.arena.New(c.currentScope)
	return previous
}

// RestoreScope makes previous the current scope again, undoing a prior
// EnterNewScope.
func (c *Context) RestoreScope(previous scopearena.ID) {
	c.currentScope = previous
}

// EnterFunction pushes a fresh, unset return slot, marking the start of a
// function-call activation. Pair with ExitFunction.
func (c *Context) EnterFunction() {
	c.returnSlots = append(c.returnSlots, &returnSlot{})
}

// ExitFunction pops the current function's return slot and reports the
// value set by a `return` inside it, if any. ok is false if the function
// body ran to completion without executing a `return`.
func (c *Context) ExitFunction() (value.Value, bool) {
	n := len(c.returnSlots)
	slot := c.returnSlots[n-1]
	c.returnSlots = c.returnSlots[:n-1]
	return slot.value, slot.set
}

// PeekReturnValue reports the innermost function's return value without
// popping its activation, letting a caller check whether a nested block
// has already executed a `return` and should stop evaluating further
// statements.
func (c *Context) PeekReturnValue() (value.Value, bool) {
	slot := c.returnSlots[len(c.returnSlots)-1]
	return slot.value, slot.set
}

// IsInFunction reports whether evaluation is currently inside at least
// one function-call activation, i.e. whether `return` is legal here.
func (c *Context) IsInFunction() bool {
	return len(c.returnSlots) > 0
}

// FunctionDepth returns the number of function-call activations currently
// open. It always equals len(returnSlots) by construction.
func (c *Context) FunctionDepth() int {
	return len(c.returnSlots)
}

// SetReturnValue records v as the innermost function's return value. The
// caller must have already checked IsInFunction.
func (c *Context) SetReturnValue(v value.Value) {
	slot := c.returnSlots[len(c.returnSlots)-1]
	slot.set = true
	slot.value = v
}

// PushFrame records a new call-stack entry, innermost last.
func (c *Context) PushFrame(frame langerr.Frame) {
	c.callStack = append(c.callStack, frame)
}

// PopFrame removes the innermost call-stack entry.
func (c *Context) PopFrame() {
	c.callStack = c.callStack[:len(c.callStack)-1]
}

// Stack returns a snapshot of the current call stack, innermost frame
// first, for attaching to a freshly raised RuntimeError.
func (c *Context) Stack() []langerr.Frame {
	stack := make([]langerr.Frame, len(c.callStack))
	for i, frame := range c.callStack {
		stack[len(c.callStack)-1-i] = frame
	}
	return stack
}
