/*
File    : mixvm/compiler/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"github.com/akashmaji946/mixvm/ast"
	"github.com/akashmaji946/mixvm/chunk"
	"github.com/akashmaji946/mixvm/lexer"
	"github.com/akashmaji946/mixvm/value"
)

// compileExpr dispatches on the concrete expression type and leaves
// exactly one value on the stack when it returns without error.
func (c *Compiler) compileExpr(expr ast.Expr) {
	if c.err != nil || expr == nil {
		return
	}
	switch n := expr.(type) {
	case *ast.NumberLit:
		c.compileNumberLit(n)
	case *ast.StringLit:
		c.compileStringLit(n)
	case *ast.BoolLit:
		c.compileBoolLit(n)
	case *ast.NilLit:
		c.chunk.Write(chunk.OpConstNil, tokPos(n.Token))
	case *ast.Identifier:
		c.compileIdentifier(n)
	case *ast.Unary:
		c.compileUnary(n)
	case *ast.Binary:
		c.compileBinary(n)
	case *ast.Call:
		c.compileCall(n)
	case *ast.Index:
		c.compileIndex(n)
	case *ast.ArrayLit:
		c.compileArrayLit(n)
	case *ast.Assign:
		c.compileAssign(n)
	default:
		c.fail(posOf(expr), "compiler: unhandled expression type %T", expr)
	}
}

func (c *Compiler) compileNumberLit(n *ast.NumberLit) {
	idx := c.chunk.AddConstant(value.Number(n.Value))
	c.chunk.Write(chunk.OpConstNum, tokPos(n.Token))
	c.chunk.WriteUint16(uint16(idx), tokPos(n.Token))
}

func (c *Compiler) compileStringLit(n *ast.StringLit) {
	idx := c.chunk.AddConstant(value.String(n.Value))
	c.chunk.Write(chunk.OpConst, tokPos(n.Token))
	c.chunk.WriteUint16(uint16(idx), tokPos(n.Token))
}

func (c *Compiler) compileBoolLit(n *ast.BoolLit) {
	pos := tokPos(n.Token)
	c.chunk.Write(chunk.OpConstBool, pos)
	b := byte(0)
	if n.Value {
		b = 1
	}
	c.chunk.WriteByte(b, pos)
}

// compileIdentifier resolves name against the active locals first, falling
// back to a global lookup when no local binding shadows it.
func (c *Compiler) compileIdentifier(n *ast.Identifier) {
	pos := tokPos(n.Token)
	if slot, ok := c.resolveLocal(n.Name); ok {
		c.chunk.Write(chunk.OpLoadLocal, pos)
		c.chunk.WriteUint16(uint16(slot), pos)
		return
	}
	idx := c.nameConstant(n.Name)
	c.chunk.Write(chunk.OpLoadGlobal, pos)
	c.chunk.WriteUint16(uint16(idx), pos)
}

func (c *Compiler) compileUnary(n *ast.Unary) {
	c.compileExpr(n.Right)
	if c.err != nil {
		return
	}
	pos := tokPos(n.Token)
	switch n.Op {
	case lexer.MINUS_OP:
		c.chunk.Write(chunk.OpNeg, pos)
	case lexer.NOT_OP:
		c.chunk.Write(chunk.OpNot, pos)
	default:
		c.fail(pos, "unsupported unary operator %q", n.Op)
	}
}

func (c *Compiler) compileBinary(n *ast.Binary) {
	c.compileExpr(n.Left)
	if c.err != nil {
		return
	}
	c.compileExpr(n.Right)
	if c.err != nil {
		return
	}
	pos := tokPos(n.Token)
	switch n.Op {
	case lexer.PLUS_OP:
		c.chunk.Write(chunk.OpAdd, pos)
	case lexer.MINUS_OP:
		c.chunk.Write(chunk.OpSub, pos)
	case lexer.MUL_OP:
		c.chunk.Write(chunk.OpMul, pos)
	case lexer.DIV_OP:
		c.chunk.Write(chunk.OpDiv, pos)
	case lexer.EQ_OP:
		c.chunk.Write(chunk.OpEq, pos)
	case lexer.NE_OP:
		c.chunk.Write(chunk.OpEq, pos)
		c.chunk.Write(chunk.OpNot, pos)
	case lexer.LT_OP:
		c.chunk.Write(chunk.OpLt, pos)
	case lexer.LE_OP:
		c.chunk.Write(chunk.OpLe, pos)
	case lexer.GT_OP:
		c.chunk.Write(chunk.OpGt, pos)
	case lexer.GE_OP:
		c.chunk.Write(chunk.OpGe, pos)
	default:
		c.fail(pos, "unsupported binary operator %q", n.Op)
	}
}

// compileCall compiles the callee followed by its arguments in order, so
// the VM's Call handler finds the callee beneath its argument values on
// the stack.
func (c *Compiler) compileCall(n *ast.Call) {
	pos := tokPos(n.Token)
	if len(n.Args) > 255 {
		c.fail(pos, "call has too many arguments (max 255)")
		return
	}
	c.compileExpr(n.Callee)
	if c.err != nil {
		return
	}
	for _, arg := range n.Args {
		c.compileExpr(arg)
		if c.err != nil {
			return
		}
	}
	c.chunk.Write(chunk.OpCall, pos)
	c.chunk.WriteByte(byte(len(n.Args)), pos)
}

// compileIndex compiles `target[idx]` as a read: idx then target then
// LoadIndex, so idx's side effects run before target's.
func (c *Compiler) compileIndex(n *ast.Index) {
	c.compileExpr(n.Idx)
	if c.err != nil {
		return
	}
	c.compileExpr(n.Target)
	if c.err != nil {
		return
	}
	c.chunk.Write(chunk.OpLoadIndex, tokPos(n.Token))
}

// compileArrayLit compiles `[init; size]` by pushing size then init, so
// size's side effects run before init's, leaving init on top of the stack
// and size beneath it for OpArray to pop.
func (c *Compiler) compileArrayLit(n *ast.ArrayLit) {
	c.compileExpr(n.Size)
	if c.err != nil {
		return
	}
	c.compileExpr(n.Init)
	if c.err != nil {
		return
	}
	c.chunk.Write(chunk.OpArray, tokPos(n.Token))
}

// compileAssign compiles `target = value`, leaving the assigned value on
// the stack so assignment can itself be used as an expression (e.g. in
// `a = b = 5;`).
func (c *Compiler) compileAssign(n *ast.Assign) {
	pos := tokPos(n.Token)
	switch target := n.Target.(type) {
	case *ast.Identifier:
		c.compileExpr(n.Value)
		if c.err != nil {
			return
		}
		if slot, ok := c.resolveLocal(target.Name); ok {
			c.chunk.Write(chunk.OpStoreLocal, pos)
			c.chunk.WriteUint16(uint16(slot), pos)
			return
		}
		idx := c.nameConstant(target.Name)
		c.chunk.Write(chunk.OpStoreGlobal, pos)
		c.chunk.WriteUint16(uint16(idx), pos)

	case *ast.Index:
		c.compileExpr(target.Idx)
		if c.err != nil {
			return
		}
		c.compileExpr(target.Target)
		if c.err != nil {
			return
		}
		c.compileExpr(n.Value)
		if c.err != nil {
			return
		}
		c.chunk.Write(chunk.OpStoreIndex, pos)

	default:
		c.fail(pos, "invalid assignment target")
	}
}
