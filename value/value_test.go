/*
File    : mixvm/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, Nil.IsTruthy())
	assert.False(t, Bool(false).IsTruthy())
	assert.True(t, Bool(true).IsTruthy())
	assert.False(t, Number(0).IsTruthy())
	assert.True(t, Number(0.0001).IsTruthy())
	assert.True(t, String("").IsTruthy())
	assert.True(t, ArrayValue(NewArray(0, Nil)).IsTruthy())
}

func TestEqual_RequiresSameKind(t *testing.T) {
	assert.False(t, Equal(Number(1), String("1")))
	assert.True(t, Equal(Number(1), Number(1)))
	assert.True(t, Equal(String("ab"), String("ab")))
	assert.True(t, Equal(Nil, Nil))
	assert.False(t, Equal(Bool(true), Bool(false)))
}

func TestEqual_ReferenceIdentityForArrays(t *testing.T) {
	a := NewArray(2, Number(0))
	b := NewArray(2, Number(0))
	assert.False(t, Equal(ArrayValue(a), ArrayValue(b)))
	assert.True(t, Equal(ArrayValue(a), ArrayValue(a)))
}

func TestFormatNumber_IntegerVsFractional(t *testing.T) {
	assert.Equal(t, "3", FormatNumber(3))
	assert.Equal(t, "3", FormatNumber(3.0))
	assert.Equal(t, "3.5", FormatNumber(3.5))
}

func TestPrint_RendersEachKind(t *testing.T) {
	assert.Equal(t, "nil", Print(Nil))
	assert.Equal(t, "true", Print(Bool(true)))
	assert.Equal(t, "7", Print(Number(7)))
	assert.Equal(t, "hi", Print(String("hi")))
	assert.Equal(t, "[1, 2]", Print(ArrayValue(&Array{Elems: []Value{Number(1), Number(2)}})))
	assert.Equal(t, "<fn add>", Print(FunctionValue(&Function{Name: "add"})))
}

func TestStr_RunesIndexesByCodepoint(t *testing.T) {
	s := NewStr("héllo")
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 'é', s.Runes()[1])
}

func TestNewArray_FillsEverySlotWithInit(t *testing.T) {
	a := NewArray(3, Number(9))
	for _, e := range a.Elems {
		assert.Equal(t, float64(9), e.Number)
	}
}
