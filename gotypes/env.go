// Package gotypes adapts the go/types type system to the typeenv
// capability interfaces, so the resolver and rewriter can run over Go
// declarations loaded from source.
//
// The adapter renders types the way the resolver's host renderer is
// specified to: primitives by their runtime names, optional (pointer)
// types as "T | undefined" unions, channels as push-stream wrappers, and
// named types outside the analyzed packages as embedded import
// expressions that the rewriter relocates.
package gotypes

import (
	"context"
	"fmt"
	"go/types"
	"path/filepath"
	"strings"

	"github.com/descry/descry/typeenv"
	"golang.org/x/tools/go/packages"
)

// Env is a typeenv.Env over a set of loaded Go packages.
type Env struct {
	roots map[*types.Package]bool
	dirs  map[string]string // package path -> directory
	enums map[*types.Named]bool
}

// Declaration is one analyzed type declaration: an exported struct whose
// fields the driver resolves to descriptors.
type Declaration struct {
	// Name is the declared type name.
	Name string

	// Package is the import path of the declaring package.
	Package string

	// File is the absolute path of the declaring file, the reference
	// point for import relocation.
	File string

	// Fields are the exported fields, in declaration order.
	Fields []Field
}

// Field is a single analyzed property.
type Field struct {
	Name string
	Type typeenv.Type
}

// Load analyzes the packages matched by the given patterns and returns the
// environment plus every exported struct declaration found in them.
func Load(ctx context.Context, patterns ...string) (*Env, []Declaration, error) {
	if len(patterns) == 0 {
		return nil, nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedImports |
			packages.NeedDeps |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load packages: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}
	if len(pkgs) == 0 {
		return nil, nil, fmt.Errorf("no packages found")
	}

	env := &Env{
		roots: make(map[*types.Package]bool),
		dirs:  make(map[string]string),
		enums: make(map[*types.Named]bool),
	}
	var decls []Declaration

	seen := make(map[*packages.Package]bool)
	for _, pkg := range pkgs {
		env.indexDirs(pkg, seen)
	}
	for _, pkg := range pkgs {
		env.roots[pkg.Types] = true
		env.scanEnumConstants(pkg.Types)
	}
	for _, pkg := range pkgs {
		decls = append(decls, env.collectDeclarations(pkg)...)
	}
	return env, decls, nil
}

// indexDirs records the directory of every package in the import graph so
// foreign type references can be rendered as locatable import expressions.
func (e *Env) indexDirs(pkg *packages.Package, seen map[*packages.Package]bool) {
	if seen[pkg] {
		return
	}
	seen[pkg] = true
	if len(pkg.GoFiles) > 0 {
		e.dirs[pkg.PkgPath] = filepath.Dir(pkg.GoFiles[0])
	}
	for _, imp := range pkg.Imports {
		e.indexDirs(imp, seen)
	}
}

// scanEnumConstants marks named types that have constant members declared
// in their package scope. Such types classify as enums.
func (e *Env) scanEnumConstants(pkg *types.Package) {
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}
		named, ok := c.Type().(*types.Named)
		if !ok {
			continue
		}
		if named.Obj().Pkg() == pkg {
			e.enums[named] = true
		}
	}
}

// collectDeclarations returns the exported struct declarations of pkg.
func (e *Env) collectDeclarations(pkg *packages.Package) []Declaration {
	var decls []Declaration
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}
		tn, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		decl := Declaration{
			Name:    tn.Name(),
			Package: pkg.PkgPath,
			File:    pkg.Fset.Position(tn.Pos()).Filename,
		}
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			if !f.Exported() {
				continue
			}
			decl.Fields = append(decl.Fields, Field{Name: f.Name(), Type: e.Type(f.Type())})
		}
		decls = append(decls, decl)
	}
	return decls
}

// Type wraps a go/types type for the resolver.
func (e *Env) Type(t types.Type) typeenv.Type {
	return goType{env: e, t: t}
}

// undefinedType is the intrinsic absent-value type. Pointer types expose it
// as the synthetic member of their optional union.
var undefinedType = types.Typ[types.UntypedNil]

// Render renders t to the textual form the resolver classifies against.
func (e *Env) Render(t typeenv.Type) (string, error) {
	g, ok := t.(goType)
	if !ok || g.t == nil {
		return "", &typeenv.EnvError{Op: "render", Err: fmt.Errorf("foreign type %T", t)}
	}
	return e.render(g.t), nil
}

func (e *Env) render(t types.Type) string {
	if isBigInt(t) {
		return "bigint"
	}
	if isTime(t) {
		return "Date"
	}

	switch tt := t.(type) {
	case *types.Basic:
		return renderBasic(tt)
	case *types.Pointer:
		return e.render(tt.Elem()) + " | undefined"
	case *types.Chan:
		return "Observable[" + e.render(tt.Elem()) + "]"
	case *types.Slice:
		return e.render(tt.Elem()) + "[]"
	case *types.Array:
		return e.render(tt.Elem()) + "[]"
	case *types.Map:
		return "object"
	case *types.Alias:
		return tt.Obj().Name()
	case *types.Named:
		return e.renderNamed(tt)
	case *types.Interface:
		if tt.Empty() {
			return "any"
		}
		return "object"
	default:
		return types.TypeString(t, nil)
	}
}

// renderNamed renders types declared in analyzed packages by bare name and
// foreign types as import expressions rooted at the declaring package's
// directory, which the reference rewriter later relocates.
func (e *Env) renderNamed(named *types.Named) string {
	name := named.Obj().Name()
	if args := named.TypeArgs(); args != nil && args.Len() > 0 {
		parts := make([]string, 0, args.Len())
		for i := 0; i < args.Len(); i++ {
			parts = append(parts, e.render(args.At(i)))
		}
		name = name + "[" + strings.Join(parts, ", ") + "]"
	}

	pkg := named.Obj().Pkg()
	if pkg == nil || e.roots[pkg] {
		return name
	}
	dir, ok := e.dirs[pkg.Path()]
	if !ok {
		dir = pkg.Path()
	}
	return fmt.Sprintf("import(%q).%s", filepath.ToSlash(dir), name)
}

func renderBasic(b *types.Basic) string {
	info := b.Info()
	switch {
	case info&types.IsBoolean != 0:
		return "boolean"
	case info&types.IsNumeric != 0:
		return "number"
	case info&types.IsString != 0:
		return "string"
	case b.Kind() == types.UntypedNil:
		return "undefined"
	default:
		return b.Name()
	}
}

func isTime(t types.Type) bool {
	return isNamed(t, "time", "Time")
}

func isBigInt(t types.Type) bool {
	return isNamed(t, "math/big", "Int")
}

func isNamed(t types.Type, pkgPath, name string) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == pkgPath && obj.Name() == name
}
