/*
File    : mixvm/vm/vm_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package vm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/mixvm/compiler"
	"github.com/akashmaji946/mixvm/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSource(t *testing.T, src string) (string, error) {
	t.Helper()
	par := parser.NewParser(src)
	program, err := par.Parse()
	require.NoError(t, err)

	ch, err := compiler.Compile(program)
	require.NoError(t, err)

	var out bytes.Buffer
	m := New(&out, 0)
	_, err = m.Run(ch)
	return out.String(), err
}

func TestVM_ArithmeticPrecedence(t *testing.T) {
	out, err := runSource(t, "print 1 + 2 * 3;")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestVM_ArrayLoopSum(t *testing.T) {
	out, err := runSource(t, `
		let a = [0; 3]; a[0] = 1; a[1] = 2; a[2] = 3;
		let i = 0; let s = 0;
		while (i < 3) { s = s + a[i]; i = i + 1; }
		print s;
	`)
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestVM_RecursiveFactorial(t *testing.T) {
	out, err := runSource(t, `
		fun fact(n) { if (n <= 1) { return 1; } return n * fact(n - 1); }
		print fact(6);
	`)
	require.NoError(t, err)
	assert.Equal(t, "720\n", out)
}

func TestVM_BlockScopeShadowing(t *testing.T) {
	out, err := runSource(t, `{ let x = 1; { let x = 2; print x; } print x; }`)
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestVM_StringConcatenation(t *testing.T) {
	out, err := runSource(t, `print "ab" + "cd";`)
	require.NoError(t, err)
	assert.Equal(t, "abcd\n", out)
}

func TestVM_ArrayIndexOutOfBoundsIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `let a = [0; 2]; print a[5];`)
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "out of bounds")
}

func TestVM_ZeroLengthArrayAnyIndexFails(t *testing.T) {
	_, err := runSource(t, `let a = [0; 0]; print a[0];`)
	require.Error(t, err)
}

func TestVM_LastIndexOfNonEmptyArraySucceeds(t *testing.T) {
	out, err := runSource(t, `let a = [0; 3]; a[2] = 9; print a[2];`)
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

func TestVM_StringIndexAssignmentIsTypeError(t *testing.T) {
	_, err := runSource(t, `let s = "abc"; s[0] = "z";`)
	require.Error(t, err)
}

func TestVM_DeepRecursionSucceedsTo256(t *testing.T) {
	out, err := runSource(t, `
		fun count(n) { if (n <= 0) { return 0; } return 1 + count(n - 1); }
		print count(255);
	`)
	require.NoError(t, err)
	assert.Equal(t, "255\n", out)
}

func TestVM_RecursionBeyondMaxDepthOverflows(t *testing.T) {
	par := parser.NewParser(`
		fun count(n) { if (n <= 0) { return 0; } return 1 + count(n - 1); }
		print count(300);
	`)
	program, err := par.Parse()
	require.NoError(t, err)
	ch, err := compiler.Compile(program)
	require.NoError(t, err)

	var out bytes.Buffer
	m := New(&out, 64)
	_, err = m.Run(ch)
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "depth")
}

func TestVM_DivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `print 1 / 0;`)
	require.Error(t, err)
}

func TestVM_UndefinedGlobalIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `print undefined_name;`)
	require.Error(t, err)
}

func TestVM_GlobalsPersistAcrossRuns(t *testing.T) {
	par := parser.NewParser(`let counter = 1;`)
	program, err := par.Parse()
	require.NoError(t, err)
	ch, err := compiler.Compile(program)
	require.NoError(t, err)

	var out bytes.Buffer
	m := New(&out, 0)
	_, err = m.Run(ch)
	require.NoError(t, err)

	par2 := parser.NewParser(`print counter;`)
	program2, err := par2.Parse()
	require.NoError(t, err)
	ch2, err := compiler.Compile(program2)
	require.NoError(t, err)

	_, err = m.Run(ch2)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out.String())
}
