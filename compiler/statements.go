/*
File    : mixvm/compiler/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"github.com/akashmaji946/mixvm/ast"
	"github.com/akashmaji946/mixvm/chunk"
	"github.com/akashmaji946/mixvm/langerr"
	"github.com/akashmaji946/mixvm/value"
)

// compileStmt dispatches on the concrete statement type, mirroring the
// type-switch dispatch the teacher's evaluator uses for its own AST walk.
func (c *Compiler) compileStmt(stmt ast.Stmt) {
	if c.err != nil || stmt == nil {
		return
	}
	switch n := stmt.(type) {
	case *ast.ExprStmt:
		c.compileExprStmt(n)
	case *ast.Print:
		c.compilePrint(n)
	case *ast.VarDecl:
		c.compileVarDecl(n)
	case *ast.Block:
		c.compileBlockStmt(n)
	case *ast.If:
		c.compileIf(n)
	case *ast.While:
		c.compileWhile(n)
	case *ast.FunDecl:
		c.compileFunDecl(n)
	case *ast.Return:
		c.compileReturn(n)
	default:
		c.fail(langerr.Position{}, "compiler: unhandled statement type %T", stmt)
	}
}

func (c *Compiler) compileExprStmt(n *ast.ExprStmt) {
	c.compileExpr(n.Expr)
	if c.err != nil {
		return
	}
	c.chunk.Write(chunk.OpPop, posOf(n.Expr))
}

func (c *Compiler) compilePrint(n *ast.Print) {
	c.compileExpr(n.Expr)
	if c.err != nil {
		return
	}
	c.chunk.Write(chunk.OpPrint, tokPos(n.Token))
}

// compileVarDecl compiles `let name (= expr)? ;`. At scope depth 0 this
// declares a global; inside any block it declares a local occupying the
// next stack slot.
func (c *Compiler) compileVarDecl(n *ast.VarDecl) {
	pos := tokPos(n.Token)
	if n.Init != nil {
		c.compileExpr(n.Init)
	} else {
		c.chunk.Write(chunk.OpConstNil, pos)
	}
	if c.err != nil {
		return
	}

	if c.scopeDepth == 0 {
		idx := c.nameConstant(n.Name)
		c.chunk.Write(chunk.OpStoreGlobal, pos)
		c.chunk.WriteUint16(uint16(idx), pos)
		c.chunk.Write(chunk.OpPop, pos)
		return
	}

	// A local's declaring initializer is already sitting on the stack in
	// the slot it will occupy; declareLocal just makes that binding known
	// to subsequent lookups. No StoreLocal/Pop pair is needed here.
	c.declareLocal(n.Name)
}

// compileBlockStmt compiles `{ stmt... }` as a new lexical scope.
func (c *Compiler) compileBlockStmt(n *ast.Block) {
	c.beginScope()
	for _, s := range n.Stmts {
		c.compileStmt(s)
		if c.err != nil {
			return
		}
	}
	c.endScope(langerr.Position{})
}

// compileIf lowers `if (cond) then (else branch)?` using a JumpIfZero
// over the then-branch and, when an else branch is present, an
// unconditional Jump at the end of the then-branch over it.
func (c *Compiler) compileIf(n *ast.If) {
	pos := tokPos(n.Token)
	c.compileExpr(n.Cond)
	if c.err != nil {
		return
	}
	thenJump := c.emitJump(chunk.OpJumpIfZero, pos)
	c.compileBlockStmt(n.Then)
	if c.err != nil {
		return
	}

	if n.Else == nil {
		c.patchJump(thenJump)
		return
	}

	elseJump := c.emitJump(chunk.OpJump, pos)
	c.patchJump(thenJump)
	c.compileStmt(n.Else)
	if c.err != nil {
		return
	}
	c.patchJump(elseJump)
}

// compileWhile lowers `while (cond) body` as a condition check before each
// iteration and an unconditional jump back to that check at the end of
// the body.
func (c *Compiler) compileWhile(n *ast.While) {
	pos := tokPos(n.Token)
	loopStart := len(c.chunk.Code)
	c.compileExpr(n.Cond)
	if c.err != nil {
		return
	}
	exitJump := c.emitJump(chunk.OpJumpIfZero, pos)
	c.compileBlockStmt(n.Body)
	if c.err != nil {
		return
	}
	c.emitLoopBack(loopStart, pos)
	c.patchJump(exitJump)
}

// compileFunDecl compiles the function body into its own chunk and
// registers the resulting function value as a compile-time constant,
// storing it into a global or local binding exactly like any other
// `let`-bound value.
func (c *Compiler) compileFunDecl(n *ast.FunDecl) {
	pos := tokPos(n.Token)

	fc := &Compiler{chunk: chunk.New(), inFunction: true}
	fc.beginScope()
	for _, p := range n.Params {
		fc.declareLocal(p)
	}
	for _, s := range n.Body.Stmts {
		fc.compileStmt(s)
		if fc.err != nil {
			c.err = fc.err
			return
		}
	}
	// Implicit `return nil;` if the body does not end in an explicit return.
	fc.chunk.Write(chunk.OpConstNil, pos)
	fc.chunk.Write(chunk.OpReturn, pos)

	fn := &value.Function{Name: n.Name, Arity: len(n.Params), Chunk: fc.chunk}
	idx := c.chunk.AddConstant(value.FunctionValue(fn))
	c.chunk.Write(chunk.OpConst, pos)
	c.chunk.WriteUint16(uint16(idx), pos)

	if c.scopeDepth == 0 {
		nameIdx := c.nameConstant(n.Name)
		c.chunk.Write(chunk.OpStoreGlobal, pos)
		c.chunk.WriteUint16(uint16(nameIdx), pos)
		c.chunk.Write(chunk.OpPop, pos)
	} else {
		c.declareLocal(n.Name)
	}
}

// compileReturn compiles `return expr?;`. A bare `return;` returns nil.
func (c *Compiler) compileReturn(n *ast.Return) {
	pos := tokPos(n.Token)
	if !c.inFunction {
		c.fail(pos, "return outside function")
		return
	}
	if n.Value != nil {
		c.compileExpr(n.Value)
	} else {
		c.chunk.Write(chunk.OpConstNil, pos)
	}
	if c.err != nil {
		return
	}
	c.chunk.Write(chunk.OpReturn, pos)
}
