/*
File    : gomix-lite/execctx/execctx_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package execctx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/gomix-lite/langerr"
	"github.com/akashmaji946/gomix-lite/value"
)

func TestIsInFunction_FalseOutsideAnyCall(t *testing.T) {
	ctx := New()
	assert.False(t, ctx.IsInFunction())
}

func TestEnterExitFunction_TracksDepthInvariant(t *testing.T) {
	ctx := New()
	ctx.EnterFunction()
	assert.Equal(t, 1, ctx.FunctionDepth())
	ctx.EnterFunction()
	assert.Equal(t, 2, ctx.FunctionDepth())

	_, ok := ctx.ExitFunction()
	assert.False(t, ok)
	assert.Equal(t, 1, ctx.FunctionDepth())

	_, ok = ctx.ExitFunction()
	assert.False(t, ok)
	assert.Equal(t, 0, ctx.FunctionDepth())
}

func TestSetReturnValue_ScopedToInnermostActivation(t *testing.T) {
	ctx := New()
	ctx.EnterFunction()
	ctx.EnterFunction()
	ctx.SetReturnValue(value.Integer{Value: 7})

	inner, ok := ctx.ExitFunction()
	assert.True(t, ok)
	assert.Equal(t, value.Integer{Value: 7}, inner)

	outer, ok := ctx.ExitFunction()
	assert.False(t, ok)
	assert.Equal(t, nil, outer)
}

func TestEnterNewScope_RestoresPreviousScope(t *testing.T) {
	ctx := New()
	root := ctx.CurrentScope()
	previous := ctx.EnterNewScope()
	assert.Equal(t, root, previous)
	assert.NotEqual(t, root, ctx.CurrentScope())

	ctx.RestoreScope(previous)
	assert.Equal(t, root, ctx.CurrentScope())
}

func TestStack_InnermostFrameFirst(t *testing.T) {
	ctx := New()
	ctx.PushFrame(langerr.Frame{Function: "outer", Line: 1})
	ctx.PushFrame(langerr.Frame{Function: "inner", Line: 2})

	stack := ctx.Stack()
	assert.Equal(t, "inner", stack[0].Function)
	assert.Equal(t, "outer", stack[1].Function)
}
