package ast

import (
	"bytes"
	"fmt"
)

const dumpIndentSize = 2

// Dump renders a statement list as an indented tree, one node per line,
// for the `tinylang parse` debugging subcommand. Grounded on go-mix's
// PrintingVisitor tree-indentation idiom, adapted to a type switch over the
// tagged sum type rather than Accept/Visitor double dispatch.
func Dump(stmts []Stmt) string {
	var d dumper
	for _, s := range stmts {
		d.stmt(s)
	}
	return d.buf.String()
}

type dumper struct {
	buf    bytes.Buffer
	indent int
}

func (d *dumper) line(format string, args ...any) {
	for i := 0; i < d.indent; i++ {
		d.buf.WriteByte(' ')
	}
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteByte('\n')
}

func (d *dumper) nested(f func()) {
	d.indent += dumpIndentSize
	f()
	d.indent -= dumpIndentSize
}

func (d *dumper) stmt(s Stmt) {
	switch n := s.(type) {
	case *Assign:
		d.line("Assign decltype=%q target=%s", n.DeclType, n.Target.String())
		if n.Value != nil {
			d.nested(func() { d.expr(n.Value) })
		}
	case *Print:
		d.line("Print")
		d.nested(func() { d.expr(n.Value) })
	case *FuncDecl:
		d.line("FuncDecl %s(%d params) : %s", n.Name, len(n.Params), n.RetType)
		d.nested(func() {
			for _, s := range n.Body {
				d.stmt(s)
			}
		})
	case *Return:
		d.line("Return")
		if n.Value != nil {
			d.nested(func() { d.expr(n.Value) })
		}
	case *If:
		d.line("If")
		d.nested(func() {
			d.expr(n.Cond)
			for _, s := range n.Then {
				d.stmt(s)
			}
			for _, s := range n.Else {
				d.stmt(s)
			}
		})
	case *While:
		d.line("While")
		d.nested(func() {
			d.expr(n.Cond)
			for _, s := range n.Body {
				d.stmt(s)
			}
		})
	case *For:
		d.line("For")
		d.nested(func() {
			if n.Init != nil {
				d.stmt(n.Init)
			}
			if n.Cond != nil {
				d.expr(n.Cond)
			}
			if n.Post != nil {
				d.stmt(n.Post)
			}
			for _, s := range n.Body {
				d.stmt(s)
			}
		})
	case *ExprStmt:
		d.line("ExprStmt")
		d.nested(func() { d.expr(n.X) })
	case *ClassDecl:
		d.line("ClassDecl %s : %s (%d fields, %d methods)", n.Name, n.Parent, len(n.Fields), len(n.Methods))
		d.nested(func() {
			for i := range n.Methods {
				d.stmt(&n.Methods[i])
			}
		})
	case *ArrayDecl:
		d.line("ArrayDecl %s %s[]", n.ElemType, n.Name)
	case *ObjectArrayDecl:
		d.line("ObjectArrayDecl %s %s[]", n.Class, n.Name)
	case *ObjectInit:
		d.line("ObjectInit %s %s(%d args)", n.Class, n.Name, len(n.Args))
	default:
		d.line("<unknown stmt %T>", s)
	}
}

func (d *dumper) expr(e Expr) {
	switch n := e.(type) {
	case *IntLit:
		d.line("IntLit %d", n.Value)
	case *FloatLit:
		d.line("FloatLit %g", n.Value)
	case *CharLit:
		d.line("CharLit %q", rune(n.Value))
	case *BoolLit:
		d.line("BoolLit %v", n.Value)
	case *StringLit:
		d.line("StringLit %q", n.Value)
	case *Ident:
		d.line("Ident %s", n.Name)
	case *Unary:
		d.line("Unary %s", n.Op)
		d.nested(func() { d.expr(n.Operand) })
	case *Binary:
		d.line("Binary %s", n.Op)
		d.nested(func() {
			d.expr(n.Left)
			d.expr(n.Right)
		})
	case *Call:
		d.line("Call %s(%d args)", n.Callee, len(n.Args))
		d.nested(func() {
			for _, a := range n.Args {
				d.expr(a)
			}
		})
	case *Index:
		d.line("Index")
		d.nested(func() {
			d.expr(n.Array)
			d.expr(n.Index)
		})
	case *Member:
		d.line("Member .%s", n.Field)
		d.nested(func() { d.expr(n.Object) })
	case *MethodCall:
		d.line("MethodCall .%s(%d args)", n.Method, len(n.Args))
		d.nested(func() {
			d.expr(n.Object)
			for _, a := range n.Args {
				d.expr(a)
			}
		})
	case *InputExpr:
		d.line("InputExpr")
	case *ReadExpr:
		d.line("ReadExpr")
		d.nested(func() { d.expr(n.Path) })
	default:
		d.line("<unknown expr %T>", e)
	}
}
