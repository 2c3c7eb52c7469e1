/*
File    : gomix-lite/eval/e2e_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/gomix-lite/value"
)

func TestEndToEnd_RecursiveFactorial(t *testing.T) {
	result, _ := run(t, `
		func factorial(n) {
			if (n < 2) {
				return 1;
			}
			return n * factorial(n - 1);
		}
		factorial(6);
	`)
	assert.Equal(t, value.Integer{Value: 720}, result)
}

func TestEndToEnd_ParameterScopeDoesNotLeakToCaller(t *testing.T) {
	result, _ := run(t, `
		let n = 10;
		func double(n) {
			let n = n * 2;
			return n;
		}
		double(3);
		n;
	`)
	assert.Equal(t, value.Integer{Value: 10}, result)
}

func TestEndToEnd_SingleStatementIfElseBranches(t *testing.T) {
	result, _ := run(t, `
		func classify(n)
		{
			if (n < 0) return -1; else if (n == 0) return 0; else return 1;
		}
		classify(-7);
	`)
	// Unary minus always widens through a Float(-1.0) multiply (spec.md
	// §4.5), so both classify's argument and its -1 literal come back as
	// Float, not Integer.
	assert.Equal(t, value.Float{Value: -1}, result)
}
