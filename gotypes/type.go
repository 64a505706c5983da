package gotypes

import (
	"go/types"

	"github.com/descry/descry/typeenv"
)

// goType answers the resolver's capability queries for one go/types node.
//
// Pointers are exposed as optional unions (elem | undefined) so the
// resolver's strict-null normalization applies to them, mirroring how the
// host compiler rewrites optional declarations.
type goType struct {
	env *Env
	t   types.Type
}

func (g goType) IsArray() bool {
	switch g.t.Underlying().(type) {
	case *types.Slice, *types.Array:
		return true
	}
	return false
}

func (g goType) IsBoolean() bool {
	b, ok := g.basic()
	return ok && b.Info()&types.IsBoolean != 0
}

func (g goType) IsNumber() bool {
	b, ok := g.basic()
	return ok && b.Info()&types.IsNumeric != 0
}

func (g goType) IsBigInt() bool {
	return isBigInt(g.t)
}

func (g goType) IsString() bool {
	b, ok := g.basic()
	return ok && b.Info()&types.IsString != 0
}

// IsStringLiteral is always false: the Go type system has no literal
// types.
func (g goType) IsStringLiteral() bool { return false }

func (g goType) IsClass() bool {
	if isTime(g.t) || isBigInt(g.t) {
		return false
	}
	named, ok := g.t.(*types.Named)
	if !ok {
		return false
	}
	_, ok = named.Underlying().(*types.Struct)
	return ok
}

func (g goType) IsEnum() bool {
	named, ok := g.t.(*types.Named)
	return ok && g.env.enums[named]
}

func (g goType) IsInterface() bool {
	_, ok := g.t.Underlying().(*types.Interface)
	return ok
}

func (g goType) IsUnionOrIntersection() bool {
	switch g.t.(type) {
	case *types.Pointer, *types.Union:
		return true
	}
	return false
}

func (g goType) IsUndefined() bool {
	b, ok := g.t.(*types.Basic)
	return ok && b.Kind() == types.UntypedNil
}

func (g goType) HasAlias() bool {
	_, ok := g.t.(*types.Alias)
	return ok
}

func (g goType) Constituents() []typeenv.Type {
	switch tt := g.t.(type) {
	case *types.Pointer:
		// The synthetic undefined member comes last, matching the host
		// renderer precondition the resolver documents.
		return []typeenv.Type{g.env.Type(tt.Elem()), g.env.Type(undefinedType)}
	case *types.Union:
		members := make([]typeenv.Type, 0, tt.Len())
		for i := 0; i < tt.Len(); i++ {
			members = append(members, g.env.Type(tt.Term(i).Type()))
		}
		return members
	}
	return nil
}

func (g goType) TypeArgs() []typeenv.Type {
	switch tt := g.t.(type) {
	case *types.Pointer:
		return []typeenv.Type{g.env.Type(tt.Elem())}
	case *types.Chan:
		return []typeenv.Type{g.env.Type(tt.Elem())}
	case *types.Named:
		if args := tt.TypeArgs(); args != nil && args.Len() > 0 {
			out := make([]typeenv.Type, 0, args.Len())
			for i := 0; i < args.Len(); i++ {
				out = append(out, g.env.Type(args.At(i)))
			}
			return out
		}
	}
	switch tt := g.t.Underlying().(type) {
	case *types.Slice:
		return []typeenv.Type{g.env.Type(tt.Elem())}
	case *types.Array:
		return []typeenv.Type{g.env.Type(tt.Elem())}
	}
	return nil
}

// EnumMemberParent is never satisfied for Go types: enum members are
// constants, not distinct member types.
func (g goType) EnumMemberParent() (typeenv.Type, bool) { return nil, false }

func (g goType) Identical(other typeenv.Type) bool {
	o, ok := other.(goType)
	return ok && types.Identical(g.t, o.t)
}

func (g goType) basic() (*types.Basic, bool) {
	if _, named := g.t.(*types.Named); named && g.IsEnum() {
		return nil, false
	}
	b, ok := g.t.Underlying().(*types.Basic)
	return b, ok
}
