/*
File    : mixvm/compiler/compiler.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package compiler lowers an ast.Program into bytecode chunk.Chunk values: one
chunk for the top-level script plus one chunk per function declaration. It
is a single pass over the AST: lexical scopes are resolved to stack slots
as they are opened and closed, and forward jumps are emitted as
placeholders and back-patched once their target is known.
*/
package compiler

import (
	"github.com/akashmaji946/mixvm/ast"
	"github.com/akashmaji946/mixvm/chunk"
	"github.com/akashmaji946/mixvm/langerr"
	"github.com/akashmaji946/mixvm/value"
)

// local tracks one compile-time local variable: the stack slot it has been
// assigned and the lexical scope depth it was declared in.
type local struct {
	name  string
	depth int
	slot  int
}

// Compiler holds the state for compiling one chunk (the top-level script,
// or a single function body). Compiling a nested fun declaration spawns a
// fresh Compiler for that function's own chunk; functions do not close
// over the enclosing compiler's locals, so there is no parent link.
type Compiler struct {
	chunk      *chunk.Chunk
	locals     []local
	scopeDepth int
	inFunction bool
	err        *langerr.Error
}

// New returns a Compiler ready to compile a top-level script.
func New() *Compiler {
	return &Compiler{chunk: chunk.New()}
}

// Compile lowers an entire program into its top-level chunk. The VM treats
// the top level as an ordinary function call (see vm.VM.Run), so the
// generated chunk ends with an implicit `return nil` just like a user
// function whose body falls off the end - unless the program's last
// statement is a bare expression statement, in which case its value is
// returned instead of being popped and discarded, the way the teacher's
// REPL prints the result of a trailing expression.
func Compile(program *ast.Program) (*chunk.Chunk, error) {
	c := New()
	last := len(program.Stmts) - 1
	for i, stmt := range program.Stmts {
		if i == last {
			if exprStmt, ok := stmt.(*ast.ExprStmt); ok {
				c.compileExpr(exprStmt.Expr)
				if c.err != nil {
					return nil, c.err
				}
				c.chunk.Write(chunk.OpReturn, posOf(exprStmt.Expr))
				return c.chunk, nil
			}
		}
		c.compileStmt(stmt)
		if c.err != nil {
			return nil, c.err
		}
	}
	c.chunk.Write(chunk.OpConstNil, langerr.Position{})
	c.chunk.Write(chunk.OpReturn, langerr.Position{})
	return c.chunk, nil
}

// fail records the first compile error encountered at the given node's
// position.
func (c *Compiler) fail(pos langerr.Position, format string, args ...interface{}) {
	if c.err == nil {
		c.err = langerr.New(langerr.Compile, pos, format, args...)
	}
}

// beginScope opens a new lexical scope; locals declared before the
// matching endScope are only visible within it.
func (c *Compiler) beginScope() {
	c.scopeDepth++
}

// endScope closes the innermost lexical scope, emitting one OpPop per
// local declared in it so the invariant "stack height above base matches
// live locals" holds after the block exits.
func (c *Compiler) endScope(pos langerr.Position) {
	c.scopeDepth--
	for len(c.locals) > 0 && c.locals[len(c.locals)-1].depth > c.scopeDepth {
		c.chunk.Write(chunk.OpPop, pos)
		c.locals = c.locals[:len(c.locals)-1]
	}
}

// declareLocal registers name as a new local in the current scope and
// returns the stack slot assigned to it. Slot 0 is reserved for the
// callee itself (see vm.execCall on the Call protocol), so the
// first real local occupies slot 1.
func (c *Compiler) declareLocal(name string) int {
	slot := len(c.locals) + 1
	c.locals = append(c.locals, local{name: name, depth: c.scopeDepth, slot: slot})
	return slot
}

// resolveLocal searches the active locals innermost-scope-first for name,
// returning its slot and true if found.
func (c *Compiler) resolveLocal(name string) (int, bool) {
	for i := len(c.locals) - 1; i >= 0; i-- {
		if c.locals[i].name == name {
			return c.locals[i].slot, true
		}
	}
	return 0, false
}

// nameConstant appends name as a new string constant and returns its pool
// index, used as the operand of LoadGlobal/StoreGlobal instructions.
// Repeated names are not deduplicated.
func (c *Compiler) nameConstant(name string) int {
	return c.chunk.AddConstant(value.String(name))
}

// emitJump writes a jump opcode with a placeholder 16-bit offset and
// returns the byte offset of that placeholder, to be patched later by
// patchJump.
func (c *Compiler) emitJump(op chunk.OpCode, pos langerr.Position) int {
	c.chunk.Write(op, pos)
	return c.chunk.WriteUint16(0, pos)
}

// patchJump back-patches the placeholder at offset so that the jump lands
// on the instruction immediately following it, i.e. the offset is
// relative to the first byte after the 2-byte operand.
func (c *Compiler) patchJump(offset int) {
	target := len(c.chunk.Code) - (offset + 2)
	c.chunk.PatchUint16(offset, uint16(int16(target)))
}

// emitLoopBack emits an unconditional Jump back to loopStart, used to
// close the body of a while loop.
func (c *Compiler) emitLoopBack(loopStart int, pos langerr.Position) {
	c.chunk.Write(chunk.OpJump, pos)
	offset := len(c.chunk.Code) + 2
	target := loopStart - offset
	c.chunk.WriteUint16(uint16(int16(target)), pos)
}
