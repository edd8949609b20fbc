package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a node back to stekk surface syntax. It backs the
// `as_src` built-in word and the parser round-trip test property in
// spec §8 ("parse(as_src(parse(src))) is semantically equivalent").
func Print(n Node) string {
	var b strings.Builder
	print1(&b, n, 0)
	return b.String()
}

// PrintStmts renders a statement list as a code-block body, one
// statement per line, indented one level.
func PrintStmts(stmts []Stmt, indent int) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(strings.Repeat("    ", indent))
		print1(&b, s, indent)
		b.WriteString(";\n")
	}
	return b.String()
}

func print1(b *strings.Builder, n Node, depth int) {
	switch e := n.(type) {
	case *IntegerLit:
		b.WriteString(strconv.FormatInt(e.Val, 10))
	case *FloatLit:
		s := strconv.FormatFloat(e.Val, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		b.WriteString(s)
	case *StringLit:
		b.WriteString(strconv.Quote(e.Val))
	case *NameExpr:
		b.WriteString(e.Name)
	case *ConstExpr:
		b.WriteString("$" + e.Name)
	case *ListExpr:
		b.WriteString("[")
		writeExprList(b, e.Items, depth)
		b.WriteString("]")
	case *TupleExpr:
		b.WriteString("(")
		writeExprList(b, e.Items, depth)
		b.WriteString(")")
	case *RangeExpr:
		print1(b, e.Left, depth)
		b.WriteString("..")
		print1(b, e.Right, depth)
	case *IndexExpr:
		print1(b, e.Target, depth)
		b.WriteString("<")
		print1(b, e.Index, depth)
		b.WriteString(">")
	case *AtExpr:
		b.WriteString("@")
		print1(b, e.Region, depth)
	case *IfElseExpr:
		print1(b, e.Cond, depth)
		b.WriteString(" => ")
		print1(b, e.Then, depth)
		b.WriteString(" else ")
		print1(b, e.Else, depth)
	case *WhileExpr:
		b.WriteString("while ")
		print1(b, e.Cond, depth)
		b.WriteString(" => ")
		print1(b, e.Body, depth)
	case *StackExpr:
		b.WriteString("(")
		for i, item := range e.Items {
			if i > 0 {
				b.WriteString(" ")
			}
			print1(b, item, depth)
		}
		b.WriteString(")")
	case *FcallExpr:
		b.WriteString(".")
		print1(b, e.Target, depth)
	case *BlockExpr:
		b.WriteString("{\n")
		b.WriteString(PrintStmts(e.Stmts, depth+1))
		b.WriteString(strings.Repeat("    ", depth))
		b.WriteString("}")
	case *AssignStmt:
		print1(b, e.Lvalue, depth)
		b.WriteString(" = ")
		print1(b, e.Expr, depth)
	case *LvalueName:
		b.WriteString(e.Name)
	case *LvalueIndex:
		print1(b, e.Target, depth)
		b.WriteString("#")
		print1(b, e.Index, depth)
	default:
		fmt.Fprintf(b, "<?%T>", n)
	}
}

func writeExprList(b *strings.Builder, items []Expr, depth int) {
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		print1(b, item, depth)
	}
}
