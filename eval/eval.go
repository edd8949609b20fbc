package eval

import (
	"stekk/ast"
	"stekk/trace"
	"stekk/value"
)

// Execute runs a statement list against e, registering one operation
// per statement and recording the last statement's produced value as
// e.LastResult (spec §4.1's execution protocol). It recovers a fatal
// signal raised anywhere below and returns it as a Go error; on success
// it returns nil.
func (e *Environment) Execute(stmts []ast.Stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(fatalSignal)
			if !ok {
				panic(r)
			}
			err = sig.err
		}
	}()
	for _, stmt := range stmts {
		e.RegisterOp()
		e.LastResult = e.runStmt(stmt)
	}
	return nil
}

// runStmt evaluates one top-level or block statement, yielding its
// Expression value or $N for non-Expression statements.
func (e *Environment) runStmt(stmt ast.Stmt) value.Value {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		e.execAssign(s)
		return value.N
	case ast.Expr:
		return e.Eval(s)
	default:
		return value.N
	}
}

// Eval evaluates an expression to a Value. Built-in word invocations
// that push their own results directly onto the stack (the common
// case) are represented here by returning $N — which the Stack form
// and Assign treat identically to "no value" per spec §9.
func (e *Environment) Eval(expr ast.Expr) value.Value {
	switch n := expr.(type) {
	case *ast.IntegerLit:
		return value.NewInt(n.Val)
	case *ast.FloatLit:
		return value.NewFloat(n.Val)
	case *ast.StringLit:
		return value.NewStr(n.Val)
	case *ast.ConstExpr:
		return value.GetConst(n.Name)
	case *ast.NameExpr:
		v, ok := e.GetName(n.Name)
		if !ok {
			panic(fatalSignal{Fatal(UnboundName, n.Name)})
		}
		return v
	case *ast.ListExpr:
		items := make([]value.Value, len(n.Items))
		for i, it := range n.Items {
			items[i] = e.Eval(it)
		}
		return value.NewList(items)
	case *ast.TupleExpr:
		items := make([]value.Value, len(n.Items))
		for i, it := range n.Items {
			items[i] = e.Eval(it)
		}
		return value.NewTuple(items)
	case *ast.RangeExpr:
		left := e.Eval(n.Left)
		right := e.Eval(n.Right)
		l, lok := asInt(left)
		r, rok := asInt(right)
		if !lok || !rok {
			return value.T
		}
		return value.NewRange(l, r)
	case *ast.IndexExpr:
		target := e.Eval(n.Target)
		index := e.Eval(n.Index)
		return e.index(target, index)
	case *ast.AtExpr:
		region := e.Eval(n.Region)
		return e.expandRegion(region)
	case *ast.IfElseExpr:
		cond := e.Eval(n.Cond)
		if cond.Truthy() {
			return e.evalBranch(n.Then)
		}
		return e.evalBranch(n.Else)
	case *ast.WhileExpr:
		last := value.N
		for {
			cond := e.Eval(n.Cond)
			ci, ok := asInt(cond)
			if !ok || ci != 1 {
				break
			}
			last = e.evalBranch(n.Body)
		}
		return last
	case *ast.StackExpr:
		return e.evalStack(n.Items)
	case *ast.FcallExpr:
		target := e.Eval(n.Target)
		return e.Invoke(target)
	case *ast.BlockExpr:
		return value.NewCodeBlock(n.Stmts)
	default:
		return value.N
	}
}

// evalBranch evaluates the Then/Else of an IfElse or the Body of a
// While. A literal block `{ ... }` in this position runs its
// statements sequentially rather than yielding itself as an inert
// CodeBlock value — see DESIGN.md's resolution of this Open Question.
// A non-block expression evaluates normally.
func (e *Environment) evalBranch(expr ast.Expr) value.Value {
	block, ok := expr.(*ast.BlockExpr)
	if !ok {
		return e.Eval(expr)
	}
	if len(block.Stmts) == 0 {
		return value.N
	}
	var last value.Value = value.N
	for _, stmt := range block.Stmts {
		e.RegisterOp()
		last = e.runStmt(stmt)
	}
	return last
}

// evalStack implements the Stack form (spec §4.1): evaluate each
// sub-expression left to right, pushing every non-$N result, then pop
// and return the new top — or $N if the stack ended up empty.
func (e *Environment) evalStack(items []ast.Expr) value.Value {
	for _, item := range items {
		v := e.Eval(item)
		if !value.IsNone(v) {
			e.Push(v)
		}
	}
	if e.StackLen() > 0 {
		return e.Pop()
	}
	return value.N
}

// Invoke calls a CodeBlock or BuiltinWord value, counting one operation
// for the invocation itself beyond whatever its body incurs (spec
// §4.1). It implements value.EnvOps so builtins like `foreach` can
// invoke a callable without importing this package.
func (e *Environment) Invoke(callable value.Value) value.Value {
	e.RegisterOp()
	switch c := callable.(type) {
	case *value.CodeBlock:
		var last value.Value = value.N
		for _, stmt := range c.Stmts {
			e.RegisterOp()
			last = e.runStmt(stmt)
		}
		return last
	case *value.BuiltinWord:
		e.invokeBuiltin(c)
		return value.N
	default:
		e.Push(value.T)
		return value.N
	}
}

// invokeBuiltin implements the built-in word calling convention of
// spec §4.1: pop Arity values (padding deficient input with $N, in
// top-first order reversed to surface order), call the native routine,
// and push whatever it returns — or push $T if it signaled a domain
// error. Direct words manage the stack themselves.
func (e *Environment) invokeBuiltin(w *value.BuiltinWord) {
	if w.Direct != nil {
		if trace.IsEnabled() {
			trace.Call(w.Name, nil)
		}
		w.Direct(e)
		return
	}
	args := make([]value.Value, w.Arity)
	for i := w.Arity - 1; i >= 0; i-- {
		args[i] = e.Pop()
	}
	if trace.IsEnabled() {
		trace.Call(w.Name, valueStrings(args))
	}
	results, ok := w.Pure(args)
	if !ok {
		if trace.IsEnabled() {
			trace.Return(w.Name, []string{value.T.String()})
		}
		e.Push(value.T)
		return
	}
	if trace.IsEnabled() {
		trace.Return(w.Name, valueStrings(results))
	}
	for _, r := range results {
		e.Push(r)
	}
}

func valueStrings(vs []value.Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

// execAssign implements the Assign statement (spec §4.1): evaluate the
// right-hand expression, substituting $N for no value, then dispatch
// on the lvalue kind.
func (e *Environment) execAssign(s *ast.AssignStmt) {
	v := e.Eval(s.Expr)
	if value.IsNone(v) {
		v = value.N
	}
	switch lv := s.Lvalue.(type) {
	case *ast.LvalueName:
		e.SetName(lv.Name, v)
	case *ast.LvalueIndex:
		target := e.Eval(lv.Target)
		index := e.Eval(lv.Index)
		e.RegisterOp()
		if !e.setIndex(target, index, v) {
			panic(fatalSignal{Fatal(InvalidLvalue, "cannot assign through this index")})
		}
	default:
		panic(fatalSignal{Fatal(InvalidLvalue, "unsupported lvalue")})
	}
}

func asInt(v value.Value) (int64, bool) {
	i, ok := v.(value.Int)
	if !ok {
		return 0, false
	}
	return i.Val, true
}
