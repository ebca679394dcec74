/*
File    : mixvm/chunk/chunk_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package chunk

import (
	"testing"

	"github.com/akashmaji946/mixvm/langerr"
	"github.com/akashmaji946/mixvm/value"
	"github.com/stretchr/testify/assert"
)

func TestChunk_WriteAndReadUint16RoundTrip(t *testing.T) {
	c := New()
	pos := langerr.Position{Line: 1, Column: 1}
	at := c.WriteUint16(0x1234, pos)
	assert.Equal(t, uint16(0x1234), c.ReadUint16(at))
}

func TestChunk_PatchJumpOverwritesPlaceholder(t *testing.T) {
	c := New()
	pos := langerr.Position{Line: 1, Column: 1}
	c.Write(OpJump, pos)
	at := c.WriteUint16(0, pos)
	c.PatchUint16(at, 0xBEEF)
	assert.Equal(t, uint16(0xBEEF), c.ReadUint16(at))
}

func TestChunk_AddConstantReturnsStableIndex(t *testing.T) {
	c := New()
	i0 := c.AddConstant(value.Number(1))
	i1 := c.AddConstant(value.String("hi"))
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, float64(1), c.Constants[i0].Number)
	assert.Equal(t, "hi", c.Constants[i1].Str.Text)
}

func TestChunk_PosAtTracksEachByte(t *testing.T) {
	c := New()
	p1 := langerr.Position{Line: 1, Column: 1}
	p2 := langerr.Position{Line: 2, Column: 5}
	c.Write(OpPop, p1)
	idx := c.Write(OpPrint, p2)
	assert.Equal(t, p2, c.PosAt(idx))
	assert.Equal(t, langerr.Position{}, c.PosAt(9999))
}

func TestOpCode_StringRendersMnemonic(t *testing.T) {
	assert.Equal(t, "Add", OpAdd.String())
	assert.Equal(t, "UNKNOWN", OpCode(255).String())
}
