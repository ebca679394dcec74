/*
File    : mixvm/vm/frame.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package vm

import "github.com/akashmaji946/mixvm/chunk"

// frame is one activation record on the VM's call stack: the chunk being
// executed, the instruction pointer within it, and the stack base slot 0
// of the frame refers to (slot 0 itself holds the callee value).
type frame struct {
	chunk *chunk.Chunk
	ip    int
	base  int
}
