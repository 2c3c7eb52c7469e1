/*
File    : gomix-lite/builtins/registry_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/gomix-lite/value"
)

func TestPrintln_WritesArgumentsConcatenatedWithNewline(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(&buf, bufio.NewReader(strings.NewReader("")))

	fn, ok := r.Lookup("println")
	require.True(t, ok)
	_, err := fn([]value.Value{value.String{Value: "a"}, value.Integer{Value: 1}})
	require.NoError(t, err)
	assert.Equal(t, "a1\n", buf.String())
}

func TestReadln_ReturnsLineWithoutNewline(t *testing.T) {
	r := NewRegistry(&bytes.Buffer{}, bufio.NewReader(strings.NewReader("hello\n")))
	fn, _ := r.Lookup("readln")

	result, err := fn(nil)
	require.NoError(t, err)
	assert.Equal(t, value.String{Value: "hello"}, result)
}

func TestReadln_EOFReturnsEmptyString(t *testing.T) {
	r := NewRegistry(&bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	fn, _ := r.Lookup("readln")

	result, err := fn(nil)
	require.NoError(t, err)
	assert.Equal(t, value.String{Value: ""}, result)
}

func TestReadln_WritesPromptArgumentsBeforeReading(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(&buf, bufio.NewReader(strings.NewReader("42\n")))
	fn, _ := r.Lookup("readln")

	result, err := fn([]value.Value{value.String{Value: "age? "}})
	require.NoError(t, err)
	assert.Equal(t, "age? ", buf.String())
	assert.Equal(t, value.String{Value: "42"}, result)
}

func TestStrConcat_JoinsDisplayForms(t *testing.T) {
	r := NewRegistry(&bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	fn, _ := r.Lookup("str_concat")

	result, err := fn([]value.Value{value.String{Value: "n="}, value.Integer{Value: 5}})
	require.NoError(t, err)
	assert.Equal(t, value.String{Value: "n=5"}, result)
}

func TestToNumber_DelegatesToValuePackage(t *testing.T) {
	r := NewRegistry(&bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	fn, _ := r.Lookup("to_number")

	result, err := fn([]value.Value{value.String{Value: "42"}})
	require.NoError(t, err)
	assert.Equal(t, value.Integer{Value: 42}, result)
}

func TestSinCos_AcceptNumericArgument(t *testing.T) {
	r := NewRegistry(&bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	sin, _ := r.Lookup("sin")

	result, err := sin([]value.Value{value.Integer{Value: 0}})
	require.NoError(t, err)
	assert.Equal(t, value.Float{Value: 0}, result)
}

func TestRegister_InstallsTestOnlyHook(t *testing.T) {
	r := NewRegistry(&bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	called := false
	r.Register("assert", func(args []value.Value) (value.Value, error) {
		called = true
		return value.Empty{}, nil
	})

	fn, ok := r.Lookup("assert")
	require.True(t, ok)
	_, err := fn(nil)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestLookup_UnknownNameNotOK(t *testing.T) {
	r := NewRegistry(&bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	_, ok := r.Lookup("nonexistent")
	assert.False(t, ok)
}
