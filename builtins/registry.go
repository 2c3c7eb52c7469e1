/*
File    : gomix-lite/builtins/registry.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtins implements the native function registry: the set of
// functions available to GoMix-Lite programs that are not written in
// GoMix-Lite itself. Unlike the teacher's package-level Builtins slice
// populated by init(), a Registry is built explicitly by NewRegistry and
// changes afterwards only through Register, so the evaluator can hold one
// instance of its own rather than reach for a mutable global.
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/akashmaji946/gomix-lite/value"
)

// CallbackFunc is the function signature every native function
// implements: it receives its already-evaluated arguments and returns a
// result or an error. Unlike the teacher's CallbackFunc, it carries no
// io.Writer; output builtins hold their writer via closure instead, so
// the registry can be built once per Context with whatever streams the
// host (CLI or REPL) provides.
type CallbackFunc func(args []value.Value) (value.Value, error)

// Builtin pairs a callable name with its implementation, mirroring the
// teacher's Builtin{Name, Callback} shape.
type Builtin struct {
	Name     string
	Callback CallbackFunc
}

// Registry is the table of native functions the evaluator consults when
// a call does not resolve to a user-defined function. The evaluator only
// reads it; Register is the one way to add or replace an entry.
type Registry struct {
	byName map[string]CallbackFunc
}

// NewRegistry builds a Registry wired to out for print/println output and
// in for readln input. Both are used as given: a nil stream is not
// replaced by a default, so the caller supplies os.Stdout / os.Stdin
// itself (as eval.NewEvaluator does).
func NewRegistry(out io.Writer, in *bufio.Reader) *Registry {
	r := &Registry{byName: make(map[string]CallbackFunc)}
	for _, b := range standardBuiltins(out, in) {
		r.byName[b.Name] = b.Callback
	}
	return r
}

// Register adds or replaces a single native function, used by tests to
// install hooks like `assert` without widening the standard set.
func (r *Registry) Register(name string, fn CallbackFunc) {
	r.byName[name] = fn
}

// Lookup returns the native function bound to name, if any.
func (r *Registry) Lookup(name string) (CallbackFunc, bool) {
	fn, ok := r.byName[name]
	return fn, ok
}

// standardBuiltins is the fixed set of native functions every Registry
// starts with.
func standardBuiltins(out io.Writer, in *bufio.Reader) []Builtin {
	return []Builtin{
		{Name: "print", Callback: printBuiltin(out)},
		{Name: "println", Callback: printlnBuiltin(out)},
		{Name: "readln", Callback: readlnBuiltin(out, in)},
		{Name: "str_concat", Callback: strConcat},
		{Name: "to_number", Callback: toNumber},
		{Name: "sin", Callback: unaryMath(math.Sin)},
		{Name: "cos", Callback: unaryMath(math.Cos)},
	}
}

// printBuiltin writes the concatenation of its arguments' Display forms,
// with no separator and no trailing newline, and returns Empty.
func printBuiltin(out io.Writer) CallbackFunc {
	return func(args []value.Value) (value.Value, error) {
		fmt.Fprint(out, joinDisplay(args))
		return value.Empty{}, nil
	}
}

// printlnBuiltin is printBuiltin followed by a newline.
func printlnBuiltin(out io.Writer) CallbackFunc {
	return func(args []value.Value) (value.Value, error) {
		fmt.Fprintln(out, joinDisplay(args))
		return value.Empty{}, nil
	}
}

// joinDisplay concatenates the Display form of every argument with no
// separator, matching str_concat's own (separator-less) concatenation.
func joinDisplay(args []value.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Display()
	}
	return strings.Join(parts, "")
}

// readlnBuiltin writes its (optional) prompt arguments to out, flushes
// out if it supports flushing, then reads a single line from in,
// dropping the trailing newline. Reaching EOF without reading anything
// returns an empty string rather than an error (Open Question #4).
func readlnBuiltin(out io.Writer, in *bufio.Reader) CallbackFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) > 0 {
			fmt.Fprint(out, joinDisplay(args))
		}
		if f, ok := out.(flusher); ok {
			f.Flush()
		}
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return value.String{Value: ""}, nil
		}
		return value.String{Value: strings.TrimRight(line, "\r\n")}, nil
	}
}

// flusher is satisfied by *bufio.Writer and similar buffered writers;
// readlnBuiltin flushes out before blocking on input so a prompt is
// visible before the read.
type flusher interface {
	Flush() error
}

// strConcat concatenates the Display form of every argument, regardless
// of its runtime type, unlike `+` which only concatenates two Strings.
func strConcat(args []value.Value) (value.Value, error) {
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(a.Display())
	}
	return value.String{Value: sb.String()}, nil
}

// expectArity returns an error unless args has exactly n elements, in the
// exact wording spec.md §4.6 pins for a builtin's arity mismatch.
func expectArity(n int, args []value.Value) error {
	if len(args) != n {
		return fmt.Errorf("Expected %d parameter(s), found %d", n, len(args))
	}
	return nil
}

// toNumber exposes value.ToNumber as a callable native function.
func toNumber(args []value.Value) (value.Value, error) {
	if err := expectArity(1, args); err != nil {
		return nil, err
	}
	return value.ToNumber(args[0])
}

// unaryMath adapts a float64-to-float64 math function into a native
// function taking and returning GoMix-Lite Values.
func unaryMath(fn func(float64) float64) CallbackFunc {
	return func(args []value.Value) (value.Value, error) {
		if err := expectArity(1, args); err != nil {
			return nil, err
		}
		n, err := value.ToNumber(args[0])
		if err != nil {
			return nil, err
		}
		switch t := n.(type) {
		case value.Integer:
			return value.Float{Value: fn(float64(t.Value))}, nil
		case value.Float:
			return value.Float{Value: fn(t.Value)}, nil
		default:
			return nil, fmt.Errorf("expected a numeric argument")
		}
	}
}
