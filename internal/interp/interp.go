package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/ast"
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/langerr"
)

// FileReader abstracts the `read("path")` external collaborator (spec.md
// §6): it opens a named file and returns its full contents for the
// evaluator to extract a single whitespace-separated integer from. The
// default implementation reads from the OS filesystem; tests substitute an
// in-memory one.
type FileReader func(path string) (string, error)

func defaultFileReader(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

// Interp is a single TinyLang interpreter instance. Per spec.md §5 it is
// strictly single-threaded: all of its state — scope stacks, global
// tables, open input — belongs to one sequential execution.
type Interp struct {
	scopes *scopes

	classes   map[string]*ClassDef
	functions map[string]*ast.FuncDecl
	arrays    map[string]*Array
	objArrays map[string][]*Object
	objects   map[string]*Object

	out      io.Writer
	in       *bufio.Reader
	readFile FileReader
}

// New creates an Interp writing print output to out and reading input()
// lines from in. A nil readFile falls back to reading from the OS
// filesystem.
func New(out io.Writer, in io.Reader, readFile FileReader) *Interp {
	if readFile == nil {
		readFile = defaultFileReader
	}
	return &Interp{
		scopes:    newScopes(),
		classes:   map[string]*ClassDef{},
		functions: map[string]*ast.FuncDecl{},
		arrays:    map[string]*Array{},
		objArrays: map[string][]*Object{},
		objects:   map[string]*Object{},
		out:       out,
		in:        bufio.NewReader(in),
		readFile:  readFile,
	}
}

// Run executes a full program: the three-pass top-level order of spec.md
// §4.4 (register classes, instantiate default objects, execute everything
// else in source order).
func (it *Interp) Run(stmts []ast.Stmt) error {
	if err := it.registerClasses(stmts); err != nil {
		return err
	}
	for _, stmt := range stmts {
		if it.isDefaultInstantiation(stmt) {
			a := stmt.(*ast.Assign)
			obj, err := it.newInstance(it.classes[a.DeclType])
			if err != nil {
				return err
			}
			it.objects[a.Target.Name] = obj
		}
	}
	for _, stmt := range stmts {
		if _, ok := stmt.(*ast.ClassDecl); ok {
			continue
		}
		if it.isDefaultInstantiation(stmt) {
			continue
		}
		if _, err := it.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) isDefaultInstantiation(stmt ast.Stmt) bool {
	a, ok := stmt.(*ast.Assign)
	if !ok || a.Value != nil || a.Target.HasIndex || a.Target.HasField {
		return false
	}
	_, isClass := it.classes[a.DeclType]
	return isClass
}

// execResult carries a propagating return value up through nested
// statement lists.
type execResult struct {
	returned bool
	value    Value
}

func (it *Interp) execList(stmts []ast.Stmt) (execResult, error) {
	for _, stmt := range stmts {
		res, err := it.execStmt(stmt)
		if err != nil {
			return execResult{}, err
		}
		if res.returned {
			return res, nil
		}
	}
	return execResult{}, nil
}

func (it *Interp) execStmt(stmt ast.Stmt) (execResult, error) {
	switch s := stmt.(type) {
	case *ast.ClassDecl:
		return execResult{}, nil
	case *ast.FuncDecl:
		it.functions[s.Name] = s
		return execResult{}, nil
	case *ast.Assign:
		return execResult{}, it.execAssign(s)
	case *ast.ArrayDecl:
		return execResult{}, it.execArrayDecl(s)
	case *ast.ObjectArrayDecl:
		return execResult{}, it.execObjectArrayDecl(s)
	case *ast.ObjectInit:
		return execResult{}, it.execObjectInit(s)
	case *ast.Print:
		v, err := it.eval(s.Value)
		if err != nil {
			return execResult{}, err
		}
		fmt.Fprintln(it.out, v.String())
		return execResult{}, nil
	case *ast.Return:
		if s.Value == nil {
			return execResult{returned: true, value: Int(0)}, nil
		}
		v, err := it.eval(s.Value)
		if err != nil {
			return execResult{}, err
		}
		return execResult{returned: true, value: v}, nil
	case *ast.If:
		cond, err := it.eval(s.Cond)
		if err != nil {
			return execResult{}, err
		}
		if cond.Truthy() {
			return it.execList(s.Then)
		}
		return it.execList(s.Else)
	case *ast.While:
		for {
			cond, err := it.eval(s.Cond)
			if err != nil {
				return execResult{}, err
			}
			if !cond.Truthy() {
				return execResult{}, nil
			}
			res, err := it.execList(s.Body)
			if err != nil {
				return execResult{}, err
			}
			if res.returned {
				return res, nil
			}
		}
	case *ast.For:
		if s.Init != nil {
			if _, err := it.execStmt(s.Init); err != nil {
				return execResult{}, err
			}
		}
		for {
			if s.Cond != nil {
				cond, err := it.eval(s.Cond)
				if err != nil {
					return execResult{}, err
				}
				if !cond.Truthy() {
					return execResult{}, nil
				}
			}
			res, err := it.execList(s.Body)
			if err != nil {
				return execResult{}, err
			}
			if res.returned {
				return res, nil
			}
			if s.Post != nil {
				if _, err := it.execStmt(s.Post); err != nil {
					return execResult{}, err
				}
			}
		}
	case *ast.ExprStmt:
		_, err := it.eval(s.X)
		return execResult{}, err
	default:
		return execResult{}, langerr.Newf(langerr.Parse, "unhandled statement type %T", stmt)
	}
}

// ---- Assignment dispatch (spec.md §4.4) --------------------------------

func (it *Interp) execAssign(a *ast.Assign) error {
	switch {
	case a.Target.HasField:
		obj, err := it.resolveObjectTarget(a.Target)
		if err != nil {
			return err
		}
		val, err := it.eval(a.Value)
		if err != nil {
			return err
		}
		obj.Fields[a.Target.Field] = val
		return nil

	case a.Target.HasIndex:
		arr, ok := it.arrays[a.Target.Name]
		if !ok {
			return langerr.Newf(langerr.Name, "undefined array %q", a.Target.Name)
		}
		idx, err := it.constIndex(a.Target.Index)
		if err != nil {
			return err
		}
		if idx < 0 || idx >= int64(len(arr.Elems)) {
			return langerr.Newf(langerr.Bounds, "index %d out of range for array %q of length %d", idx, a.Target.Name, len(arr.Elems))
		}
		val, err := it.eval(a.Value)
		if err != nil {
			return err
		}
		arr.Elems[idx] = val
		return nil

	case a.DeclType != "" && a.Value == nil:
		if def, ok := it.classes[a.DeclType]; ok {
			obj, err := it.newInstance(def)
			if err != nil {
				return err
			}
			it.objects[a.Target.Name] = obj
			return nil
		}
		it.scopes.declare(a.Target.Name, zeroOfType(a.DeclType))
		return nil

	default:
		val, err := it.eval(a.Value)
		if err != nil {
			return err
		}
		if a.DeclType != "" {
			it.scopes.declare(a.Target.Name, val)
		} else {
			it.scopes.write(a.Target.Name, val)
		}
		return nil
	}
}

func zeroOfType(declType string) Value {
	switch declType {
	case "float":
		return Float(0)
	case "char":
		return Char(0)
	case "string":
		return Str("")
	default:
		return Int(0)
	}
}

func (it *Interp) resolveObjectTarget(target ast.AssignTarget) (*Object, error) {
	if target.HasIndex {
		objs, ok := it.objArrays[target.Name]
		if !ok {
			return nil, langerr.Newf(langerr.Name, "undefined object array %q", target.Name)
		}
		idx, err := it.constIndex(target.Index)
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= int64(len(objs)) {
			return nil, langerr.Newf(langerr.Bounds, "index %d out of range for object array %q of length %d", idx, target.Name, len(objs))
		}
		return objs[idx], nil
	}
	obj, ok := it.objects[target.Name]
	if !ok {
		return nil, langerr.Newf(langerr.Name, "undefined object %q", target.Name)
	}
	return obj, nil
}

func (it *Interp) constIndex(expr ast.Expr) (int64, error) {
	v, err := it.eval(expr)
	if err != nil {
		return 0, err
	}
	return v.IntProjection(), nil
}

func kindForType(t string) Kind {
	switch t {
	case "float":
		return KFloat
	case "char":
		return KChar
	case "string":
		return KString
	default:
		return KInt
	}
}

func (it *Interp) execArrayDecl(d *ast.ArrayDecl) error {
	kind := kindForType(d.ElemType)
	var elems []Value

	switch {
	case d.Elements != nil:
		for i, e := range d.Elements {
			v, err := it.eval(e)
			if err != nil {
				return err
			}
			if i == 0 {
				kind = v.Kind
			}
			elems = append(elems, v)
		}
	case d.Size != nil:
		n, err := it.constIndex(d.Size)
		if err != nil {
			return err
		}
		elems = make([]Value, n)
		for i := range elems {
			elems[i] = zeroOfType(d.ElemType)
		}
	}

	it.arrays[d.Name] = &Array{ElemKind: kind, Elems: elems}
	return nil
}

func (it *Interp) execObjectArrayDecl(d *ast.ObjectArrayDecl) error {
	def, ok := it.classes[d.Class]
	if !ok {
		return langerr.Newf(langerr.Name, "undefined class %q", d.Class)
	}
	n, err := it.constIndex(d.Size)
	if err != nil {
		return err
	}
	objs := make([]*Object, n)
	for i := range objs {
		obj, err := it.newInstance(def)
		if err != nil {
			return err
		}
		objs[i] = obj
	}
	it.objArrays[d.Name] = objs
	return nil
}

func (it *Interp) execObjectInit(d *ast.ObjectInit) error {
	def, ok := it.classes[d.Class]
	if !ok {
		return langerr.Newf(langerr.Name, "undefined class %q", d.Class)
	}
	obj, err := it.newInstance(def)
	if err != nil {
		return err
	}
	it.objects[d.Name] = obj

	ctor, hasCtor := def.method("init")
	if !hasCtor {
		if len(d.Args) > 0 {
			return langerr.Newf(langerr.Arity, "class %q has no constructor but %d arguments were given", d.Class, len(d.Args))
		}
		return nil
	}
	args, err := it.evalArgs(d.Args)
	if err != nil {
		return err
	}
	_, err = it.invokeMethod(obj, ctor, args)
	return err
}

// ---- Expression evaluation ----------------------------------------------

func (it *Interp) evalArgs(exprs []ast.Expr) ([]Value, error) {
	vals := make([]Value, len(exprs))
	for i, e := range exprs {
		v, err := it.eval(e)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (it *Interp) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return Int(e.Value), nil
	case *ast.FloatLit:
		return Float(e.Value), nil
	case *ast.CharLit:
		return Char(e.Value), nil
	case *ast.BoolLit:
		return Bool(e.Value), nil
	case *ast.StringLit:
		return Str(e.Value), nil
	case *ast.Ident:
		if v, ok := it.scopes.lookup(e.Name); ok {
			return v, nil
		}
		if obj, ok := it.objects[e.Name]; ok {
			return ObjectVal(obj), nil
		}
		return Value{}, langerr.Newf(langerr.Name, "undefined variable %q", e.Name)
	case *ast.Unary:
		return it.evalUnary(e)
	case *ast.Binary:
		return it.evalBinary(e)
	case *ast.Call:
		args, err := it.evalArgs(e.Args)
		if err != nil {
			return Value{}, err
		}
		return it.callFunction(e.Callee, args)
	case *ast.Index:
		return it.evalIndex(e)
	case *ast.Member:
		objVal, err := it.eval(e.Object)
		if err != nil {
			return Value{}, err
		}
		if objVal.Kind != KObject {
			return Value{}, langerr.Newf(langerr.Type, "field access %q on a non-object value", e.Field)
		}
		v, ok := objVal.Obj.Fields[e.Field]
		if !ok {
			return Value{}, langerr.Newf(langerr.Name, "undefined field %q on class %q", e.Field, objVal.Obj.Class.Name)
		}
		return v, nil
	case *ast.MethodCall:
		objVal, err := it.eval(e.Object)
		if err != nil {
			return Value{}, err
		}
		if objVal.Kind != KObject {
			return Value{}, langerr.Newf(langerr.Type, "method call %q on a non-object value", e.Method)
		}
		method, ok := objVal.Obj.Class.method(e.Method)
		if !ok {
			return Value{}, langerr.Newf(langerr.Name, "undefined method %q on class %q", e.Method, objVal.Obj.Class.Name)
		}
		args, err := it.evalArgs(e.Args)
		if err != nil {
			return Value{}, err
		}
		return it.invokeMethod(objVal.Obj, method, args)
	case *ast.InputExpr:
		line, err := it.in.ReadString('\n')
		if err != nil && line == "" {
			return Value{}, langerr.Newf(langerr.IO, "input(): %v", err)
		}
		return Str(strings.TrimRight(line, "\r\n")), nil
	case *ast.ReadExpr:
		pathVal, err := it.eval(e.Path)
		if err != nil {
			return Value{}, err
		}
		contents, err := it.readFile(pathVal.String())
		if err != nil {
			return Value{}, langerr.Newf(langerr.IO, "read(%q): %v", pathVal.String(), err)
		}
		fields := strings.Fields(contents)
		if len(fields) == 0 {
			return Value{}, langerr.Newf(langerr.IO, "read(%q): file contains no integer", pathVal.String())
		}
		n, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return Value{}, langerr.Newf(langerr.IO, "read(%q): %v", pathVal.String(), err)
		}
		return Int(n), nil
	default:
		return Value{}, langerr.Newf(langerr.Parse, "unhandled expression type %T", expr)
	}
}

func (it *Interp) evalIndex(e *ast.Index) (Value, error) {
	base, ok := e.Array.(*ast.Ident)
	if !ok {
		return Value{}, langerr.Newf(langerr.Type, "array access requires a simple array name")
	}
	idx, err := it.constIndex(e.Index)
	if err != nil {
		return Value{}, err
	}
	if objs, ok := it.objArrays[base.Name]; ok {
		if idx < 0 || idx >= int64(len(objs)) {
			return Value{}, langerr.Newf(langerr.Bounds, "index %d out of range for object array %q of length %d", idx, base.Name, len(objs))
		}
		return ObjectVal(objs[idx]), nil
	}
	arr, ok := it.arrays[base.Name]
	if !ok {
		return Value{}, langerr.Newf(langerr.Name, "undefined array %q", base.Name)
	}
	if idx < 0 || idx >= int64(len(arr.Elems)) {
		return Value{}, langerr.Newf(langerr.Bounds, "index %d out of range for array %q of length %d", idx, base.Name, len(arr.Elems))
	}
	return arr.Elems[idx], nil
}

func (it *Interp) evalUnary(e *ast.Unary) (Value, error) {
	v, err := it.eval(e.Operand)
	if err != nil {
		return Value{}, err
	}
	switch e.Op {
	case "!":
		return Bool(!v.Truthy()), nil
	case "-":
		if v.Kind == KFloat {
			return Float(-v.F), nil
		}
		return Int(-v.IntProjection()), nil
	default:
		return Value{}, langerr.Newf(langerr.Type, "unsupported unary operator %q", e.Op)
	}
}

func (it *Interp) evalBinary(e *ast.Binary) (Value, error) {
	if e.Op == "&&" {
		left, err := it.eval(e.Left)
		if err != nil {
			return Value{}, err
		}
		if !left.Truthy() {
			return Bool(false), nil
		}
		right, err := it.eval(e.Right)
		if err != nil {
			return Value{}, err
		}
		return Bool(right.Truthy()), nil
	}
	if e.Op == "||" {
		left, err := it.eval(e.Left)
		if err != nil {
			return Value{}, err
		}
		if left.Truthy() {
			return Bool(true), nil
		}
		right, err := it.eval(e.Right)
		if err != nil {
			return Value{}, err
		}
		return Bool(right.Truthy()), nil
	}

	left, err := it.eval(e.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := it.eval(e.Right)
	if err != nil {
		return Value{}, err
	}
	return applyBinary(e.Op, left, right)
}

// applyBinary implements spec.md §4.3's operator semantics: string
// concatenation for `+` when either side is a string, floating promotion
// when either side is floating, equality-only comparisons when both sides
// are characters, and integer arithmetic (with character-to-code
// promotion) otherwise.
func applyBinary(op string, l, r Value) (Value, error) {
	if op == "+" && (l.Kind == KString || r.Kind == KString) {
		return Str(l.String() + r.String()), nil
	}

	if l.Kind == KArray || r.Kind == KArray || l.Kind == KObject || r.Kind == KObject {
		return Value{}, langerr.Newf(langerr.Type, "unsupported operator %q for operand types", op)
	}

	if l.Kind == KFloat || r.Kind == KFloat {
		lf, rf := toFloat(l), toFloat(r)
		switch op {
		case "+":
			return Float(lf + rf), nil
		case "-":
			return Float(lf - rf), nil
		case "*":
			return Float(lf * rf), nil
		case "/":
			if rf == 0 {
				return Value{}, langerr.Newf(langerr.Arithmetic, "division by zero")
			}
			return Float(lf / rf), nil
		case "==":
			return Bool(lf == rf), nil
		case "!=":
			return Bool(lf != rf), nil
		case "<":
			return Bool(lf < rf), nil
		case ">":
			return Bool(lf > rf), nil
		default:
			return Value{}, langerr.Newf(langerr.Type, "unsupported operator %q for floating operands", op)
		}
	}

	if l.Kind == KChar && r.Kind == KChar {
		switch op {
		case "==":
			return Bool(l.C == r.C), nil
		case "!=":
			return Bool(l.C != r.C), nil
		default:
			return Value{}, langerr.Newf(langerr.Type, "operator %q is not defined for two character operands", op)
		}
	}

	if l.Kind == KString || r.Kind == KString {
		return Value{}, langerr.Newf(langerr.Type, "string array element used as numeric operand to %q", op)
	}

	li, ri := l.IntProjection(), r.IntProjection()
	switch op {
	case "+":
		return Int(li + ri), nil
	case "-":
		return Int(li - ri), nil
	case "*":
		return Int(li * ri), nil
	case "/":
		if ri == 0 {
			return Value{}, langerr.Newf(langerr.Arithmetic, "division by zero")
		}
		return Int(li / ri), nil
	case "==":
		return Bool(li == ri), nil
	case "!=":
		return Bool(li != ri), nil
	case "<":
		return Bool(li < ri), nil
	case ">":
		return Bool(li > ri), nil
	default:
		return Value{}, langerr.Newf(langerr.Type, "unsupported operator %q", op)
	}
}

func toFloat(v Value) float64 {
	if v.Kind == KFloat {
		return v.F
	}
	return float64(v.IntProjection())
}

// ---- Calls and method dispatch (spec.md §4.4) --------------------------

func (it *Interp) callFunction(name string, args []Value) (Value, error) {
	fn, ok := it.functions[name]
	if !ok {
		return Value{}, langerr.Newf(langerr.Name, "undefined function %q", name)
	}
	if len(fn.Params) != len(args) {
		return Value{}, langerr.Newf(langerr.Arity, "function %q expects %d argument(s), got %d", name, len(fn.Params), len(args))
	}

	it.scopes.push()
	defer it.scopes.pop()
	for i, p := range fn.Params {
		it.scopes.declare(p.Name, args[i])
	}

	res, err := it.execList(fn.Body)
	if err != nil {
		return Value{}, err
	}
	if res.returned {
		return res.value, nil
	}
	return Int(0), nil
}

// invokeMethod resolves a method already found via the inheritance chain:
// it pushes fresh frames, mirrors the receiver's fields into them, binds
// arguments, executes, then writes back every field whose name was
// rebound in the topmost frame before popping (spec.md §4.4's "field
// mirroring").
func (it *Interp) invokeMethod(obj *Object, method *ast.FuncDecl, args []Value) (Value, error) {
	if len(method.Params) != len(args) {
		return Value{}, langerr.Newf(langerr.Arity, "method %q expects %d argument(s), got %d", method.Name, len(method.Params), len(args))
	}

	it.scopes.push()
	defer it.scopes.pop()

	for name, v := range obj.Fields {
		it.scopes.declare(name, v)
	}
	for i, p := range method.Params {
		it.scopes.declare(p.Name, args[i])
	}

	res, err := it.execList(method.Body)
	if err != nil {
		return Value{}, err
	}

	for name := range obj.Fields {
		if v, ok := it.scopes.ints.top.vars[name]; ok {
			obj.Fields[name] = v
			continue
		}
		if v, ok := it.scopes.floats.top.vars[name]; ok {
			obj.Fields[name] = v
			continue
		}
		if v, ok := it.scopes.chars.top.vars[name]; ok {
			obj.Fields[name] = v
			continue
		}
		if v, ok := it.scopes.strings.top.vars[name]; ok {
			obj.Fields[name] = v
			continue
		}
	}

	if res.returned {
		return res.value, nil
	}
	return Int(0), nil
}
