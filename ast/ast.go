/*
File    : mixvm/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package ast defines the Abstract Syntax Tree produced by the parser and
consumed by the compiler. Every node type supports the Visitor design
pattern: a single Visitor interface with one Visit method per concrete
node, and an Accept method on every node that dispatches to it. The
compiler itself walks the tree with type switches rather than a Visitor.
*/
package ast

import "github.com/akashmaji946/mixvm/lexer"

// Node is the base interface implemented by every AST node.
type Node interface {
	Accept(visitor Visitor)
}

// Expr is the base interface for expression nodes: nodes that produce a
// value when compiled.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the base interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Visitor implements the Visitor design pattern for traversing the AST.
// Each Visit method processes a specific node type, enabling operations
// like compilation or printing without modifying the node types themselves.
type Visitor interface {
	VisitNumberLit(node *NumberLit)
	VisitStringLit(node *StringLit)
	VisitBoolLit(node *BoolLit)
	VisitNilLit(node *NilLit)
	VisitIdentifier(node *Identifier)
	VisitUnary(node *Unary)
	VisitBinary(node *Binary)
	VisitCall(node *Call)
	VisitIndex(node *Index)
	VisitArrayLit(node *ArrayLit)
	VisitAssign(node *Assign)

	VisitExprStmt(node *ExprStmt)
	VisitPrint(node *Print)
	VisitVarDecl(node *VarDecl)
	VisitBlock(node *Block)
	VisitIf(node *If)
	VisitWhile(node *While)
	VisitFunDecl(node *FunDecl)
	VisitReturn(node *Return)
}

// ---- Expression nodes ----

// NumberLit is a numeric literal, e.g. 42 or 3.14.
type NumberLit struct {
	Token lexer.Token
	Value float64
}

func (n *NumberLit) exprNode()            {}
func (n *NumberLit) Accept(v Visitor)     { v.VisitNumberLit(n) }

// StringLit is a string literal, e.g. "hello".
type StringLit struct {
	Token lexer.Token
	Value string
}

func (n *StringLit) exprNode()        {}
func (n *StringLit) Accept(v Visitor) { v.VisitStringLit(n) }

// BoolLit is a boolean literal: true or false.
type BoolLit struct {
	Token lexer.Token
	Value bool
}

func (n *BoolLit) exprNode()        {}
func (n *BoolLit) Accept(v Visitor) { v.VisitBoolLit(n) }

// NilLit is the nil literal.
type NilLit struct {
	Token lexer.Token
}

func (n *NilLit) exprNode()        {}
func (n *NilLit) Accept(v Visitor) { v.VisitNilLit(n) }

// Identifier refers to a variable or function by name.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (n *Identifier) exprNode()        {}
func (n *Identifier) Accept(v Visitor) { v.VisitIdentifier(n) }

// Unary is a prefix operator expression: -expr or !expr.
type Unary struct {
	Token lexer.Token // the operator token
	Op    lexer.TokenType
	Right Expr
}

func (n *Unary) exprNode()        {}
func (n *Unary) Accept(v Visitor) { v.VisitUnary(n) }

// Binary is an infix operator expression: left op right.
type Binary struct {
	Token lexer.Token // the operator token
	Op    lexer.TokenType
	Left  Expr
	Right Expr
}

func (n *Binary) exprNode()        {}
func (n *Binary) Accept(v Visitor) { v.VisitBinary(n) }

// Call is a function call expression: callee(args...).
type Call struct {
	Token  lexer.Token // the '(' token
	Callee Expr
	Args   []Expr
}

func (n *Call) exprNode()        {}
func (n *Call) Accept(v Visitor) { v.VisitCall(n) }

// Index is an array/string index expression: target[index].
type Index struct {
	Token  lexer.Token // the '[' token
	Target Expr
	Idx    Expr
}

func (n *Index) exprNode()        {}
func (n *Index) Accept(v Visitor) { v.VisitIndex(n) }

// ArrayLit is a fixed-size array literal: [init; size].
type ArrayLit struct {
	Token lexer.Token // the '[' token
	Init  Expr
	Size  Expr
}

func (n *ArrayLit) exprNode()        {}
func (n *ArrayLit) Accept(v Visitor) { v.VisitArrayLit(n) }

// Assign is an assignment expression: target = value.
// Target must resolve to an *Identifier or an *Index.
type Assign struct {
	Token  lexer.Token // the '=' token
	Target Expr
	Value  Expr
}

func (n *Assign) exprNode()        {}
func (n *Assign) Accept(v Visitor) { v.VisitAssign(n) }

// ---- Statement nodes ----

// ExprStmt is an expression evaluated for its side effects, whose value is
// discarded.
type ExprStmt struct {
	Expr Expr
}

func (n *ExprStmt) stmtNode()        {}
func (n *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(n) }

// Print is a `print expr;` statement.
type Print struct {
	Token lexer.Token
	Expr  Expr
}

func (n *Print) stmtNode()        {}
func (n *Print) Accept(v Visitor) { v.VisitPrint(n) }

// VarDecl is a `let name = expr;` (or `let name;`) declaration.
type VarDecl struct {
	Token lexer.Token
	Name  string
	Init  Expr // nil if no initializer; the variable is then nil
}

func (n *VarDecl) stmtNode()        {}
func (n *VarDecl) Accept(v Visitor) { v.VisitVarDecl(n) }

// Block is a `{ stmt... }` sequence that opens a new lexical scope.
type Block struct {
	Stmts []Stmt
}

func (n *Block) stmtNode()        {}
func (n *Block) Accept(v Visitor) { v.VisitBlock(n) }

// If is an `if (cond) then (else else)?` statement. Else may itself be an
// *If to model `else if` chains, or nil.
type If struct {
	Token lexer.Token
	Cond  Expr
	Then  *Block
	Else  Stmt
}

func (n *If) stmtNode()        {}
func (n *If) Accept(v Visitor) { v.VisitIf(n) }

// While is a `while (cond) body` loop.
type While struct {
	Token lexer.Token
	Cond  Expr
	Body  *Block
}

func (n *While) stmtNode()        {}
func (n *While) Accept(v Visitor) { v.VisitWhile(n) }

// FunDecl is a `fun name(params...) { body }` function declaration.
type FunDecl struct {
	Token  lexer.Token
	Name   string
	Params []string
	Body   *Block
}

func (n *FunDecl) stmtNode()        {}
func (n *FunDecl) Accept(v Visitor) { v.VisitFunDecl(n) }

// Return is a `return expr?;` statement.
type Return struct {
	Token lexer.Token
	Value Expr // nil for a bare `return;`
}

func (n *Return) stmtNode()        {}
func (n *Return) Accept(v Visitor) { v.VisitReturn(n) }

// Program is the root of a parsed source file: an ordered list of top-level
// statements.
type Program struct {
	Stmts []Stmt
}
