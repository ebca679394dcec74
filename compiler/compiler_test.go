/*
File    : mixvm/compiler/compiler_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"testing"

	"github.com/akashmaji946/mixvm/chunk"
	"github.com/akashmaji946/mixvm/parser"
	"github.com/akashmaji946/mixvm/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileSource(t *testing.T, src string) *chunk.Chunk {
	t.Helper()
	par := parser.NewParser(src)
	program, err := par.Parse()
	require.NoError(t, err)
	ch, err := Compile(program)
	require.NoError(t, err)
	return ch
}

func TestCompile_ArithmeticEmitsTypedOpcodes(t *testing.T) {
	ch := compileSource(t, "print 1 + 2 * 3;")
	found := map[chunk.OpCode]bool{}
	for _, b := range ch.Code {
		found[chunk.OpCode(b)] = true
	}
	assert.True(t, found[chunk.OpAdd])
	assert.True(t, found[chunk.OpMul])
	assert.True(t, found[chunk.OpPrint])
}

func TestCompile_IfElseJumpsAreWellFormed(t *testing.T) {
	ch := compileSource(t, `
		let a = 1;
		if (a) { print 1; } else { print 2; }
	`)
	require.NotEmpty(t, ch.Code)

	hasJumpIfZero, hasJump := false, false
	for _, b := range ch.Code {
		switch chunk.OpCode(b) {
		case chunk.OpJumpIfZero:
			hasJumpIfZero = true
		case chunk.OpJump:
			hasJump = true
		}
	}
	assert.True(t, hasJumpIfZero)
	assert.True(t, hasJump)
}

func TestCompile_WhileLoopBackpatchesToConditionStart(t *testing.T) {
	ch := compileSource(t, `
		let i = 0;
		while (i) { i = 0; }
	`)
	require.NotEmpty(t, ch.Code)

	// Locate the unconditional jump written by emitLoopBack; its target,
	// once resolved relative to the byte after the operand, must point at
	// or before its own position (a backward jump).
	for i := 0; i < len(ch.Code); i++ {
		if chunk.OpCode(ch.Code[i]) == chunk.OpJump {
			offset := int16(ch.ReadUint16(i + 1))
			target := i + 3 + int(offset)
			assert.LessOrEqual(t, target, i)
		}
	}
}

func TestCompile_BlockScopeEmitsPopsOnExit(t *testing.T) {
	ch := compileSource(t, `
		let a = 1;
		{
			let b = 2;
			print b;
		}
		print a;
	`)
	popCount := 0
	for _, b := range ch.Code {
		if chunk.OpCode(b) == chunk.OpPop {
			popCount++
		}
	}
	// The global `let a` emits one Pop after its StoreGlobal, and closing
	// the inner block emits one Pop for its local `b`. Print consumes its
	// operand itself, so the print statements add no Pop instructions.
	assert.Equal(t, 2, popCount)
}

func TestCompile_FunctionDeclarationEmbedsConstant(t *testing.T) {
	ch := compileSource(t, `fun add(a, b) { return a + b; }`)
	foundFn := false
	for _, c := range ch.Constants {
		if c.Kind == value.KindFunction {
			foundFn = true
			assert.Equal(t, "add", c.Fn.Name)
			assert.Equal(t, 2, c.Fn.Arity)
		}
	}
	assert.True(t, foundFn)
}

func TestCompile_ReturnOutsideFunctionIsError(t *testing.T) {
	par := parser.NewParser("return 1;")
	program, err := par.Parse()
	require.NoError(t, err)
	_, err = Compile(program)
	assert.Error(t, err)
}

func TestCompile_ArrayLiteralAndIndexAssign(t *testing.T) {
	ch := compileSource(t, `
		let a = [0; 3];
		a[0] = 9;
	`)
	hasArray, hasStoreIndex := false, false
	for _, b := range ch.Code {
		switch chunk.OpCode(b) {
		case chunk.OpArray:
			hasArray = true
		case chunk.OpStoreIndex:
			hasStoreIndex = true
		}
	}
	assert.True(t, hasArray)
	assert.True(t, hasStoreIndex)
}
