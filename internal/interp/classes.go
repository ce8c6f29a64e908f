package interp

import (
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/ast"
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/langerr"
)

// ClassDef is a registered class after inheritance merging: Fields and
// Methods are already flattened base-first with child overrides applied
// (spec.md §4.4's "Inheritance resolution"), grounded on go-mix's
// objects.GoMixStruct but holding ast.FuncDecl method bodies instead of a
// pre-built closure table, since TinyLang methods are interpreted directly
// against the AST rather than wrapped as first-class function values.
type ClassDef struct {
	Name    string
	Parent  *ClassDef
	Fields  []ast.Field
	Methods map[string]*ast.FuncDecl
}

// method walks the inheritance chain, child-first, returning the nearest
// override.
func (c *ClassDef) method(name string) (*ast.FuncDecl, bool) {
	for cd := c; cd != nil; cd = cd.Parent {
		if m, ok := cd.Methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// registerClasses performs pass 1 of spec.md §4.4's three-pass top-level
// execution: it registers every class definition, merging fields and
// methods base-first so that a child's own declarations override the
// parent's by name.
func (it *Interp) registerClasses(stmts []ast.Stmt) error {
	decls := map[string]*ast.ClassDecl{}
	for _, stmt := range stmts {
		if cd, ok := stmt.(*ast.ClassDecl); ok {
			decls[cd.Name] = cd
		}
	}
	for name := range decls {
		if _, err := it.buildClass(name, decls, map[string]bool{}); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) buildClass(name string, decls map[string]*ast.ClassDecl, visiting map[string]bool) (*ClassDef, error) {
	if existing, ok := it.classes[name]; ok {
		return existing, nil
	}
	decl, ok := decls[name]
	if !ok {
		return nil, langerr.Newf(langerr.Name, "unknown class %q", name)
	}
	if visiting[name] {
		return nil, langerr.Newf(langerr.Name, "circular base-class chain involving %q", name)
	}
	visiting[name] = true

	def := &ClassDef{Name: name, Methods: map[string]*ast.FuncDecl{}}

	if decl.Parent != "" {
		parent, err := it.buildClass(decl.Parent, decls, visiting)
		if err != nil {
			return nil, langerr.Newf(langerr.Name, "class %q: missing base class %q", name, decl.Parent)
		}
		def.Parent = parent
		def.Fields = append(def.Fields, parent.Fields...)
		for mname, m := range parent.Methods {
			def.Methods[mname] = m
		}
	}

	fieldIndex := map[string]int{}
	for i, f := range def.Fields {
		fieldIndex[f.Name] = i
	}
	for _, f := range decl.Fields {
		if i, ok := fieldIndex[f.Name]; ok {
			def.Fields[i] = f
			continue
		}
		fieldIndex[f.Name] = len(def.Fields)
		def.Fields = append(def.Fields, f)
	}
	for i := range decl.Methods {
		m := decl.Methods[i]
		def.Methods[m.Name] = &m
	}

	it.classes[name] = def
	return def, nil
}

// newInstance builds a zero-initialized-then-defaulted object, evaluating
// each field's default expression in class field order (base-first).
func (it *Interp) newInstance(def *ClassDef) (*Object, error) {
	obj := &Object{Class: def, Fields: map[string]Value{}}
	for _, f := range def.Fields {
		v, err := it.zeroOrDefault(f)
		if err != nil {
			return nil, err
		}
		obj.Fields[f.Name] = v
	}
	return obj, nil
}

func (it *Interp) zeroOrDefault(f ast.Field) (Value, error) {
	if f.Default != nil {
		return it.eval(f.Default)
	}
	switch f.Type {
	case "float":
		return Float(0), nil
	case "char":
		return Char(0), nil
	case "string":
		return Str(""), nil
	default:
		return Int(0), nil
	}
}
