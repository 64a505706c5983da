package resolver

import "github.com/descry/descry/typeenv"

// The host compiler rewrites optional declarations under strict null
// checking: an optional T becomes the union T | undefined, and an optional
// enum-typed property becomes a union of every enum member plus undefined.
// The predicates below detect those synthesized unions so the resolver can
// recurse into the authored type instead of misclassifying the union.
//
// The compiler appends the synthetic member last. That ordering is a
// documented precondition of the host renderer, not a general union law, so
// both predicates check arity and shape explicitly and the resolver falls
// back to unclassifiable when the shape does not hold.

// isOptionalUnion reports whether t is a compiler-synthesized optional-type
// union: a non-enum union of exactly two constituents, one of which is the
// intrinsic undefined type.
func isOptionalUnion(t typeenv.Type) bool {
	if !t.IsUnionOrIntersection() || t.IsEnum() {
		return false
	}
	members := t.Constituents()
	if len(members) != 2 {
		return false
	}
	return members[0].IsUndefined() != members[1].IsUndefined()
}

// optionalMember returns the authored (non-undefined) constituent of an
// optional-type union. The second result is false when the union does not
// have the expected shape.
func optionalMember(t typeenv.Type) (typeenv.Type, bool) {
	members := t.Constituents()
	if len(members) != 2 {
		return nil, false
	}
	for i := len(members) - 1; i >= 0; i-- {
		if !members[i].IsUndefined() {
			return members[i], true
		}
	}
	return nil, false
}

// enumUnionType detects the strict-mode rewrite of an optional enum-typed
// property: a non-enum union with exactly one undefined constituent whose
// every other constituent is an enum-member value of the same enclosing
// enum declaration. It returns that enum's type so the resolver can recurse
// into it. Detection fails when any non-undefined constituent lacks an
// enum-member symbol or the constituents disagree on the enclosing enum.
func enumUnionType(t typeenv.Type) (typeenv.Type, bool) {
	if !t.IsUnionOrIntersection() || t.IsEnum() {
		return nil, false
	}
	members := t.Constituents()
	if len(members) < 2 {
		return nil, false
	}

	undefined := 0
	var enum typeenv.Type
	for _, m := range members {
		if m.IsUndefined() {
			undefined++
			continue
		}
		parent, ok := m.EnumMemberParent()
		if !ok {
			return nil, false
		}
		if enum == nil {
			enum = parent
			continue
		}
		if !enum.Identical(parent) {
			return nil, false
		}
	}
	if undefined != 1 || enum == nil {
		return nil, false
	}
	return enum, true
}
