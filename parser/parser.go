// Package parser implements stekk's recursive-descent front end: it
// turns a token stream from package lexer into the []ast.Stmt the
// evaluator walks. The grammar is not specified by name anywhere in
// the language description — it is derived from the worked examples
// and built-in table, and documented here rather than in a grammar
// file.
package parser

import (
	"strconv"

	"stekk/ast"
	"stekk/lexer"
)

// Parse tokenizes and parses a full program, returning the top-level
// statement list.
func Parse(source string) (stmts []ast.Stmt, err error) {
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			err = se
		}
	}()
	p := &parser{toks: lexer.Tokenize(source), source: source}
	stmts = p.parseStmts(lexer.EOF)
	p.expect(lexer.EOF)
	return stmts, nil
}

type parser struct {
	toks   []lexer.Token
	pos    int
	source string
}

func (p *parser) peek() lexer.Token  { return p.toks[p.pos] }
func (p *parser) peekAt(n int) lexer.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) at(tt lexer.TokenType) bool { return p.peek().Type == tt }

func (p *parser) expect(tt lexer.TokenType) lexer.Token {
	if !p.at(tt) {
		p.fail(tt)
	}
	return p.advance()
}

func (p *parser) fail(expected lexer.TokenType) {
	tok := p.peek()
	panic(&SyntaxError{
		Line:    tok.Line,
		Context: contextSnippet(p.source, tok.Line),
		Hint:    hintFor(expected),
	})
}

func contextSnippet(source string, line int) string {
	start, cur := 0, 1
	for i := 0; i < len(source) && cur < line; i++ {
		if source[i] == '\n' {
			cur++
			start = i + 1
		}
	}
	end := start
	for end < len(source) && source[end] != '\n' {
		end++
	}
	return source[start:end]
}

// parseStmts reads statements, semicolon-separated, until it sees end
// or EOF. A trailing statement need not be followed by a semicolon.
func (p *parser) parseStmts(end lexer.TokenType) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.at(end) && !p.at(lexer.EOF) {
		stmts = append(stmts, p.parseStmt())
		if p.at(lexer.SEMI) {
			p.advance()
			continue
		}
		break
	}
	return stmts
}

// parseStmt parses an Assign statement or falls back to a bare
// expression statement, backtracking once an attempted lvalue parse
// doesn't resolve into an `=`.
func (p *parser) parseStmt() ast.Stmt {
	if p.at(lexer.IDENT) {
		save := p.pos
		if lv := p.tryParseLvalue(); lv != nil && p.at(lexer.ASSIGN) {
			p.advance()
			rhs := p.parseExpr()
			return &ast.AssignStmt{Pos: lv.Position(), Lvalue: lv, Expr: rhs}
		}
		p.pos = save
	}
	return p.parseExpr()
}

// tryParseLvalue recognizes `name` or `name#index` at the current
// position without consuming anything beyond a valid lvalue (the
// caller backtracks if what follows isn't `=`).
func (p *parser) tryParseLvalue() ast.Lvalue {
	tok := p.expect(lexer.IDENT)
	pos := ast.Position{Line: tok.Line, Col: tok.Col}
	if p.at(lexer.HASH) {
		p.advance()
		idx := p.parseExpr()
		return &ast.LvalueIndex{Pos: pos, Target: &ast.NameExpr{Pos: pos, Name: tok.Value}, Index: idx}
	}
	return &ast.LvalueName{Pos: pos, Name: tok.Value}
}

// parseExpr is the grammar's top level: the keyword-led control forms
// (`while cond => body`, `cond => then (else else)?`) sit above the
// postfix/primary expression grammar, since neither is reachable any
// other way (stekk has no infix operators to give them precedence
// against — arithmetic only exists as `.name` built-in calls inside a
// Stack form).
func (p *parser) parseExpr() ast.Expr {
	if p.at(lexer.WHILE) {
		tok := p.advance()
		cond := p.parsePostfix()
		p.expect(lexer.FATARROW)
		body := p.parsePostfix()
		return &ast.WhileExpr{Pos: ast.Position{Line: tok.Line, Col: tok.Col}, Cond: cond, Body: body}
	}

	expr := p.parsePostfix()
	if p.at(lexer.FATARROW) {
		p.advance()
		then := p.parsePostfix()
		var elseExpr ast.Expr = &ast.BlockExpr{Pos: expr.Position()}
		if p.at(lexer.ELSE) {
			p.advance()
			elseExpr = p.parsePostfix()
		}
		return &ast.IfElseExpr{Pos: expr.Position(), Cond: expr, Then: then, Else: elseExpr}
	}
	return expr
}

// parsePostfix parses a prefixed-or-bare primary, then applies the
// postfix operators `<index>` (reader indexing) and `..` (range) left
// to right.
func (p *parser) parsePostfix() ast.Expr {
	expr := p.parsePrefixed()
	for {
		switch p.peek().Type {
		case lexer.LT:
			tok := p.advance()
			idx := p.parseExpr()
			p.expect(lexer.GT)
			expr = &ast.IndexExpr{Pos: ast.Position{Line: tok.Line, Col: tok.Col}, Target: expr, Index: idx}
		case lexer.DOTDOT:
			p.advance()
			right := p.parsePrefixed()
			expr = &ast.RangeExpr{Pos: expr.Position(), Left: expr, Right: right}
		default:
			return expr
		}
	}
}

// parsePrefixed handles the two prefix forms (`@region`, `.name` /
// `.(expr)`) ahead of a bare primary.
func (p *parser) parsePrefixed() ast.Expr {
	switch p.peek().Type {
	case lexer.AT:
		tok := p.advance()
		region := p.parsePrefixed()
		return &ast.AtExpr{Pos: ast.Position{Line: tok.Line, Col: tok.Col}, Region: region}
	case lexer.FCALL:
		tok := p.advance()
		target := ast.Expr(&ast.NameExpr{Pos: ast.Position{Line: tok.Line, Col: tok.Col}, Name: tok.Value})
		return &ast.FcallExpr{Pos: ast.Position{Line: tok.Line, Col: tok.Col}, Target: target}
	case lexer.DOT:
		tok := p.advance()
		target := p.parsePrimary()
		return &ast.FcallExpr{Pos: ast.Position{Line: tok.Line, Col: tok.Col}, Target: target}
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() ast.Expr {
	tok := p.peek()
	pos := ast.Position{Line: tok.Line, Col: tok.Col}

	switch tok.Type {
	case lexer.INT:
		p.advance()
		v, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			panic(&SyntaxError{Line: tok.Line, Context: contextSnippet(p.source, tok.Line), Hint: "malformed integer literal"})
		}
		return &ast.IntegerLit{Pos: pos, Val: v}
	case lexer.FLOAT:
		p.advance()
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			panic(&SyntaxError{Line: tok.Line, Context: contextSnippet(p.source, tok.Line), Hint: "malformed float literal"})
		}
		return &ast.FloatLit{Pos: pos, Val: v}
	case lexer.STRING:
		p.advance()
		return &ast.StringLit{Pos: pos, Val: tok.Value}
	case lexer.DOLLAR:
		p.advance()
		name := p.expect(lexer.IDENT)
		return &ast.ConstExpr{Pos: pos, Name: name.Value}
	case lexer.IDENT:
		p.advance()
		return &ast.NameExpr{Pos: pos, Name: tok.Value}
	case lexer.LBRACKET:
		p.advance()
		var items []ast.Expr
		if !p.at(lexer.RBRACKET) {
			items = append(items, p.parseExpr())
			for p.at(lexer.COMMA) {
				p.advance()
				items = append(items, p.parseExpr())
			}
		}
		p.expect(lexer.RBRACKET)
		return &ast.ListExpr{Pos: pos, Items: items}
	case lexer.LBRACE:
		p.advance()
		stmts := p.parseStmts(lexer.RBRACE)
		p.expect(lexer.RBRACE)
		return &ast.BlockExpr{Pos: pos, Stmts: stmts}
	case lexer.LPAREN:
		return p.parseParenForm(pos)
	default:
		p.fail(tok.Type)
		return nil
	}
}

// parseParenForm disambiguates `()`, the Stack form `(e e e)`, and the
// Tuple form `(e, e, e)` — the two share an opening paren and are told
// apart only by whether a comma follows the first element.
func (p *parser) parseParenForm(pos ast.Position) ast.Expr {
	p.advance() // consume '('
	if p.at(lexer.RPAREN) {
		p.advance()
		return &ast.StackExpr{Pos: pos}
	}

	first := p.parseExpr()
	if p.at(lexer.COMMA) {
		items := []ast.Expr{first}
		for p.at(lexer.COMMA) {
			p.advance()
			items = append(items, p.parseExpr())
		}
		p.expect(lexer.RPAREN)
		return &ast.TupleExpr{Pos: pos, Items: items}
	}

	items := []ast.Expr{first}
	for !p.at(lexer.RPAREN) && !p.at(lexer.EOF) {
		items = append(items, p.parseExpr())
	}
	p.expect(lexer.RPAREN)
	return &ast.StackExpr{Pos: pos, Items: items}
}
