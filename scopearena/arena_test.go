/*
File    : gomix-lite/scopearena/arena_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scopearena

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/gomix-lite/value"
)

func TestNewArena_RootHasNoParent(t *testing.T) {
	arena, root := NewArena()
	assert.Equal(t, NoParent, arena.Parent(root))
}

func TestDefineAndLookupVariable_SameScope(t *testing.T) {
	arena, root := NewArena()
	arena.DefineVariable(root, "x", value.Integer{Value: 42})

	v, ok := arena.LookupVariable(root, "x")
	assert.True(t, ok)
	assert.Equal(t, value.Integer{Value: 42}, v)
}

func TestLookupVariable_WalksParentChain(t *testing.T) {
	arena, root := NewArena()
	arena.DefineVariable(root, "x", value.Integer{Value: 1})
	child := arena.New(root)

	v, ok := arena.LookupVariable(child, "x")
	assert.True(t, ok)
	assert.Equal(t, value.Integer{Value: 1}, v)
}

func TestLookupVariable_ChildShadowsParentWithoutMutatingIt(t *testing.T) {
	arena, root := NewArena()
	arena.DefineVariable(root, "x", value.Integer{Value: 1})
	child := arena.New(root)
	arena.DefineVariable(child, "x", value.Integer{Value: 2})

	childVal, _ := arena.LookupVariable(child, "x")
	rootVal, _ := arena.LookupVariable(root, "x")
	assert.Equal(t, value.Integer{Value: 2}, childVal)
	assert.Equal(t, value.Integer{Value: 1}, rootVal)
}

func TestLookupVariable_UndefinedIsNotOK(t *testing.T) {
	arena, root := NewArena()
	_, ok := arena.LookupVariable(root, "missing")
	assert.False(t, ok)
}

func TestDefineVariable_RedeclarationOverwrites(t *testing.T) {
	arena, root := NewArena()
	arena.DefineVariable(root, "x", value.Integer{Value: 1})
	arena.DefineVariable(root, "x", value.Integer{Value: 2})

	v, ok := arena.LookupVariable(root, "x")
	assert.True(t, ok)
	assert.Equal(t, value.Integer{Value: 2}, v)
}

func TestNew_ChildIDGreaterThanParent(t *testing.T) {
	arena, root := NewArena()
	child := arena.New(root)
	assert.Greater(t, int(child), int(root))
}
