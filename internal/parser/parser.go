// Package parser builds a TinyLang ast.Stmt slice from a token stream.
//
// The control structure — a Parser holding the lexer and current/peek
// tokens, with one parse method per statement or expression shape chosen by
// a switch on the current token kind — is grounded on go-mix's
// parser.Parser (NewParser/advance/expectAdvance).
// go-mix collects parse errors into an Errors []string slice and keeps
// going; TinyLang halts at the first error instead (spec.md §4.2's "parsing
// does not attempt error recovery"), so Parse returns as soon as an error is
// produced.
package parser

import (
	"strconv"

	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/ast"
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/langerr"
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/lexer"
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/token"
)

// Parser turns a token stream into a statement list.
type Parser struct {
	lx   *lexer.Lexer
	cur  token.Token
	peek token.Token

	// classNames is populated as class declarations are parsed and consulted
	// to recognize `ClassName name...;` object declarations.
	classNames map[string]bool
}

// precedence levels for binary operators, lowest to highest.
const (
	precLowest = iota
	precOr
	precAnd
	precCompare
	precSum
	precProduct
)

var precedences = map[token.Kind]int{
	token.OR:    precOr,
	token.AND:   precAnd,
	token.EQ:    precCompare,
	token.NE:    precCompare,
	token.LT:    precCompare,
	token.GT:    precCompare,
	token.PLUS:  precSum,
	token.MINUS: precSum,
	token.STAR:  precProduct,
	token.SLASH: precProduct,
}

// New creates a Parser over src, priming the first two tokens.
func New(src string) (*Parser, error) {
	p := &Parser{lx: lexer.New(src), classNames: map[string]bool{}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	p.cur = p.peek
	tok, err := p.lx.NextToken()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return langerr.New(langerr.Parse, langerr.Pos{Line: p.cur.Line, Column: p.cur.Column}, format, args...)
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.cur.Kind != kind {
		return token.Token{}, p.errorf("expected %s, got %s %q", kind, p.cur.Kind, p.cur.Literal)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// Parse consumes the whole token stream and returns the top-level
// statement list, grounded on go-mix's Parser.Parse building a RootNode but
// returning a flat []ast.Stmt rather than a wrapping node — spec.md's
// program model has no separate "module" node.
func Parse(src string) ([]ast.Stmt, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for p.cur.Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.cur.Kind {
	case token.CLASS:
		return p.parseClassDecl()
	case token.COME_AND_DO:
		return p.parseFuncDecl()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.RETURN:
		return p.parseReturn()
	case token.PRINT:
		return p.parsePrint()
	default:
		if p.cur.IsPrimitiveType() {
			return p.parseDeclAssign()
		}
		return p.parseAssignOrExprStmt()
	}
}

func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for p.cur.Kind != token.RBRACE {
		if p.cur.Kind == token.EOF {
			return nil, p.errorf("unterminated block, expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) parseClassDecl() (ast.Stmt, error) {
	line, col := p.cur.Line, p.cur.Column
	if _, err := p.expect(token.CLASS); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	p.classNames[nameTok.Literal] = true

	var parent string
	if p.cur.Kind == token.COLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
		baseTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		parent = baseTok.Literal
	}

	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	decl := &ast.ClassDecl{Base: ast.NewBase(line, col), Name: nameTok.Literal, Parent: parent}
	for p.cur.Kind != token.RBRACE {
		if p.cur.Kind == token.EOF {
			return nil, p.errorf("unterminated class body, expected '}'")
		}
		if p.cur.Kind == token.COME_AND_DO {
			method, err := p.parseFuncDecl()
			if err != nil {
				return nil, err
			}
			decl.Methods = append(decl.Methods, *method.(*ast.FuncDecl))
			continue
		}
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		decl.Fields = append(decl.Fields, field)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseField() (ast.Field, error) {
	if !p.cur.IsPrimitiveType() {
		return ast.Field{}, p.errorf("expected field type, got %s %q", p.cur.Kind, p.cur.Literal)
	}
	typeTok := p.cur
	if err := p.advance(); err != nil {
		return ast.Field{}, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return ast.Field{}, err
	}
	field := ast.Field{Type: string(typeTok.Kind), Name: nameTok.Literal}
	if p.cur.Kind == token.ASSIGN {
		if err := p.advance(); err != nil {
			return ast.Field{}, err
		}
		val, err := p.parseExpr(precLowest)
		if err != nil {
			return ast.Field{}, err
		}
		field.Default = val
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return ast.Field{}, err
	}
	return field, nil
}

func (p *Parser) parseFuncDecl() (ast.Stmt, error) {
	line, col := p.cur.Line, p.cur.Column
	if _, err := p.expect(token.COME_AND_DO); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var params []ast.Param
	for p.cur.Kind != token.RPAREN {
		if !p.cur.IsPrimitiveType() {
			return nil, p.errorf("expected parameter type, got %s %q", p.cur.Kind, p.cur.Literal)
		}
		typeTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		paramName, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Type: string(typeTok.Kind), Name: paramName.Literal})
		if p.cur.Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	var retType string
	if p.cur.Kind == token.COLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.cur.IsPrimitiveType() {
			return nil, p.errorf("expected return type, got %s %q", p.cur.Kind, p.cur.Literal)
		}
		retType = string(p.cur.Kind)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Base: ast.NewBase(line, col), Name: nameTok.Literal, Params: params, RetType: retType, Body: body}, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	line, col := p.cur.Line, p.cur.Column
	if _, err := p.expect(token.IF); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	thenBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Base: ast.NewBase(line, col), Cond: cond, Then: thenBody}
	if p.cur.Kind == token.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind == token.IF {
			elseIf, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			stmt.Else = []ast.Stmt{elseIf}
			return stmt, nil
		}
		elseBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBody
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	line, col := p.cur.Line, p.cur.Column
	if _, err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Base: ast.NewBase(line, col), Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	line, col := p.cur.Line, p.cur.Column
	if _, err := p.expect(token.FOR); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var init ast.Stmt
	if p.cur.Kind != token.SEMI {
		var s ast.Stmt
		var err error
		if p.cur.IsPrimitiveType() {
			s, err = p.parseDeclAssignNoSemi()
		} else {
			s, err = p.parseAssignNoSemi()
		}
		if err != nil {
			return nil, err
		}
		init = s
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}

	var cond ast.Expr
	if p.cur.Kind != token.SEMI {
		c, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		cond = c
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}

	var post ast.Stmt
	if p.cur.Kind != token.RPAREN {
		s, err := p.parseAssignNoSemi()
		if err != nil {
			return nil, err
		}
		post = s
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Base: ast.NewBase(line, col), Init: init, Cond: cond, Post: post, Body: body}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	line, col := p.cur.Line, p.cur.Column
	if _, err := p.expect(token.RETURN); err != nil {
		return nil, err
	}
	if p.cur.Kind == token.SEMI {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Return{Base: ast.NewBase(line, col)}, nil
	}
	val, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.Return{Base: ast.NewBase(line, col), Value: val}, nil
}

func (p *Parser) parsePrint() (ast.Stmt, error) {
	line, col := p.cur.Line, p.cur.Column
	if _, err := p.expect(token.PRINT); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	val, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.Print{Base: ast.NewBase(line, col), Value: val}, nil
}

// parseDeclAssign parses a type-led declaration statement terminated by
// ';': a scalar declaration, a scalar declaration with initializer, or one
// of the three array-declaration shapes (spec.md §4.2).
func (p *Parser) parseDeclAssign() (ast.Stmt, error) {
	stmt, err := p.parseDeclAssignNoSemi()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseDeclAssignNoSemi() (ast.Stmt, error) {
	line, col := p.cur.Line, p.cur.Column
	declType := string(p.cur.Kind)
	if err := p.advance(); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}

	if p.cur.Kind == token.LBRACKET {
		return p.parseArrayDeclTail(line, col, declType, nameTok.Literal)
	}

	target := ast.AssignTarget{Name: nameTok.Literal}
	if p.cur.Kind != token.ASSIGN {
		return &ast.Assign{Base: ast.NewBase(line, col), DeclType: declType, Target: target}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	val, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Base: ast.NewBase(line, col), DeclType: declType, Target: target, Value: val}, nil
}

// parseArrayDeclTail parses the `[ ... ]` suffix of a primitive array
// declaration once `<type> <name>` has already been consumed: a fixed size
// `[n]`, an empty `[]`, or an empty `[]` followed by a brace-delimited
// initializer list (the only position where a `{ ... }` literal is valid,
// per spec.md §4.2).
func (p *Parser) parseArrayDeclTail(line, col int, declType, name string) (ast.Stmt, error) {
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	decl := &ast.ArrayDecl{Base: ast.NewBase(line, col), ElemType: declType, Name: name}
	if p.cur.Kind != token.RBRACKET {
		size, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		decl.Size = size
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	if p.cur.Kind == token.ASSIGN {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elems, err := p.parseBraceList()
		if err != nil {
			return nil, err
		}
		decl.Elements = elems
	}
	return decl, nil
}

func (p *Parser) parseBraceList() ([]ast.Expr, error) {
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	var elems []ast.Expr
	for p.cur.Kind != token.RBRACE {
		el, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if p.cur.Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return elems, nil
}

// parseAssignOrExprStmt handles every identifier-led top-level statement:
// a known class name leading an object or object-array declaration, a
// re-assignment, or a bare call used for its side effect. Mirrors go-mix's
// parser deciding statement shape from lookahead rather than baking it
// into the expression grammar.
func (p *Parser) parseAssignOrExprStmt() (ast.Stmt, error) {
	if p.classNames[p.cur.Literal] && p.peek.Kind == token.IDENT {
		stmt, err := p.parseObjectDecl()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return stmt, nil
	}

	line, col := p.cur.Line, p.cur.Column
	expr, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == token.ASSIGN {
		target, err := exprToAssignTarget(expr, p)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		val, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return &ast.Assign{Base: ast.NewBase(line, col), Target: target, Value: val}, nil
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Base: ast.NewBase(line, col), X: expr}, nil
}

// parseObjectDecl parses `ClassName name[size];`, `ClassName name(args);`,
// or `ClassName name;` (the bare default-instantiation form is represented
// as an ast.Assign whose DeclType names the class, per spec.md §4.4).
func (p *Parser) parseObjectDecl() (ast.Stmt, error) {
	line, col := p.cur.Line, p.cur.Column
	classTok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}

	switch p.cur.Kind {
	case token.LBRACKET:
		if err := p.advance(); err != nil {
			return nil, err
		}
		size, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
		return &ast.ObjectArrayDecl{Base: ast.NewBase(line, col), Class: classTok.Literal, Name: nameTok.Literal, Size: size}, nil
	case token.LPAREN:
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &ast.ObjectInit{Base: ast.NewBase(line, col), Class: classTok.Literal, Name: nameTok.Literal, Args: args}, nil
	default:
		return &ast.Assign{Base: ast.NewBase(line, col), DeclType: classTok.Literal, Target: ast.AssignTarget{Name: nameTok.Literal}}, nil
	}
}

func (p *Parser) parseAssignNoSemi() (ast.Stmt, error) {
	line, col := p.cur.Line, p.cur.Column
	expr, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != token.ASSIGN {
		return &ast.ExprStmt{Base: ast.NewBase(line, col), X: expr}, nil
	}
	target, err := exprToAssignTarget(expr, p)
	if err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	val, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Base: ast.NewBase(line, col), Target: target, Value: val}, nil
}

// exprToAssignTarget reinterprets an already-parsed expression (an Ident,
// Index, or Member chain) as an assignment target, enforcing spec.md §4.2's
// constant-index rule at this point since the expression grammar alone
// cannot reject a non-constant index before it's built.
func exprToAssignTarget(expr ast.Expr, p *Parser) (ast.AssignTarget, error) {
	switch e := expr.(type) {
	case *ast.Ident:
		return ast.AssignTarget{Name: e.Name}, nil
	case *ast.Index:
		base, ok := e.Array.(*ast.Ident)
		if !ok {
			return ast.AssignTarget{}, p.errorf("assignment target must be a simple array element")
		}
		if !isConstantExpr(e.Index) {
			return ast.AssignTarget{}, langerr.New(langerr.Parse, e.Pos(),
				"array index in an assignment target must be a constant expression")
		}
		return ast.AssignTarget{Name: base.Name, Index: e.Index, HasIndex: true}, nil
	case *ast.Member:
		switch obj := e.Object.(type) {
		case *ast.Ident:
			return ast.AssignTarget{Name: obj.Name, Field: e.Field, HasField: true}, nil
		case *ast.Index:
			base, ok := obj.Array.(*ast.Ident)
			if !ok {
				return ast.AssignTarget{}, p.errorf("assignment target must be a simple array element field")
			}
			if !isConstantExpr(obj.Index) {
				return ast.AssignTarget{}, langerr.New(langerr.Parse, obj.Pos(),
					"array index in an assignment target must be a constant expression")
			}
			return ast.AssignTarget{Name: base.Name, Index: obj.Index, HasIndex: true, Field: e.Field, HasField: true}, nil
		}
	}
	return ast.AssignTarget{}, p.errorf("invalid assignment target")
}

// isConstantExpr reports whether expr folds to a compile-time constant,
// per spec.md §9's decision to reject `arr[i].field` when i is not a
// literal rather than replicate the original's runtime name.find('[')
// sniff.
func isConstantExpr(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.IntLit, *ast.BoolLit, *ast.CharLit:
		return true
	case *ast.Unary:
		return (e.Op == "-") && isConstantExpr(e.Operand)
	default:
		return false
	}
}

// ---- Expression parsing (precedence climbing) -------------------------

func (p *Parser) parseExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := precedences[p.cur.Kind]
		if !ok || prec < minPrec {
			return left, nil
		}
		op := string(p.cur.Kind)
		line, col := p.cur.Line, p.cur.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Base: ast.NewBase(line, col), Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.cur.Kind == token.NOT || p.cur.Kind == token.MINUS {
		op := string(p.cur.Kind)
		line, col := p.cur.Line, p.cur.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Base: ast.NewBase(line, col), Op: op, Operand: operand}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Kind {
		case token.LBRACKET:
			line, col := p.cur.Line, p.cur.Column
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseExpr(precLowest)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			expr = &ast.Index{Base: ast.NewBase(line, col), Array: expr, Index: idx}
		case token.DOT:
			line, col := p.cur.Line, p.cur.Column
			if err := p.advance(); err != nil {
				return nil, err
			}
			nameTok, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			if p.cur.Kind == token.LPAREN {
				args, err := p.parseArgs()
				if err != nil {
					return nil, err
				}
				expr = &ast.MethodCall{Base: ast.NewBase(line, col), Object: expr, Method: nameTok.Literal, Args: args}
			} else {
				expr = &ast.Member{Base: ast.NewBase(line, col), Object: expr, Field: nameTok.Literal}
			}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgs() ([]ast.Expr, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for p.cur.Kind != token.RPAREN {
		arg, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	line, col := p.cur.Line, p.cur.Column
	switch p.cur.Kind {
	case token.INT:
		lit := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return nil, langerr.New(langerr.Parse, langerr.Pos{Line: line, Column: col}, "invalid integer literal %q", lit)
		}
		return &ast.IntLit{Base: ast.NewBase(line, col), Value: v}, nil
	case token.FLOAT:
		lit := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, langerr.New(langerr.Parse, langerr.Pos{Line: line, Column: col}, "invalid float literal %q", lit)
		}
		return &ast.FloatLit{Base: ast.NewBase(line, col), Value: v}, nil
	case token.CHAR:
		lit := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.CharLit{Base: ast.NewBase(line, col), Value: lit[0]}, nil
	case token.STRING:
		lit := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringLit{Base: ast.NewBase(line, col), Value: lit}, nil
	case token.BOOL:
		lit := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.BoolLit{Base: ast.NewBase(line, col), Value: lit == "true"}, nil
	case token.INPUT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.InputExpr{Base: ast.NewBase(line, col)}, nil
	case token.READ:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		path, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.ReadExpr{Base: ast.NewBase(line, col), Path: path}, nil
	case token.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case token.IDENT:
		name := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind == token.LPAREN {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return &ast.Call{Base: ast.NewBase(line, col), Callee: name, Args: args}, nil
		}
		return &ast.Ident{Base: ast.NewBase(line, col), Name: name}, nil
	default:
		return nil, p.errorf("unexpected token %s %q", p.cur.Kind, p.cur.Literal)
	}
}
