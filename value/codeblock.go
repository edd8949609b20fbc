package value

import "stekk/ast"

// CodeBlock is a first-class value wrapping a sequence of AST
// statements plus an optional help string. Like List it is shared by
// reference: `set_help` mutates the same underlying block every holder
// sees (spec §3.3's sharing rule).
//
// Equality is by identity (the same *CodeBlock pointer), not by
// statement-list content: the original Python CodeBlock class never
// overrides __eq__, so two separately-built blocks with identical
// statements compare unequal, matching default object identity. This
// mirrors the reference semantics the sharing rule already implies.
type CodeBlock struct {
	Stmts []ast.Stmt
	Help  string
}

// NewCodeBlock constructs a CodeBlock wrapping stmts directly (no copy).
func NewCodeBlock(stmts []ast.Stmt) *CodeBlock {
	if stmts == nil {
		stmts = []ast.Stmt{}
	}
	return &CodeBlock{Stmts: stmts}
}

func (c *CodeBlock) Kind() Kind     { return KindCodeBlock }
func (c *CodeBlock) Truthy() bool   { return len(c.Stmts) > 0 }
func (c *CodeBlock) String() string { return ast.Print(&ast.BlockExpr{Stmts: c.Stmts}) }

func (c *CodeBlock) Equal(other Value) bool {
	o, ok := other.(*CodeBlock)
	return ok && c == o
}
