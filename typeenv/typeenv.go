// Package typeenv declares the capability interfaces the resolver requires
// from a host type system. The engine never owns type objects; it borrows
// them per call and queries them through these interfaces only.
package typeenv

import "fmt"

// Type is an opaque node in the host type system.
//
// Implementations must answer every predicate without side effects and must
// be safe for concurrent reads. A Type is borrowed for the duration of one
// resolution call; the resolver holds no reference afterwards.
type Type interface {
	// Container and primitive predicates.
	IsArray() bool
	IsBoolean() bool
	IsNumber() bool
	IsBigInt() bool
	IsString() bool
	IsStringLiteral() bool

	// Declaration-kind predicates.
	IsClass() bool
	IsEnum() bool
	IsInterface() bool
	IsUnionOrIntersection() bool

	// IsUndefined reports whether this is the host's intrinsic
	// "undefined" (absent-value) type.
	IsUndefined() bool

	// HasAlias reports whether the type carries a named alias symbol.
	HasAlias() bool

	// Constituents enumerates union or intersection members, in the
	// host's order. Empty for non-union types.
	Constituents() []Type

	// TypeArgs enumerates generic type arguments (the element type of a
	// container, the payload of a wrapper). Empty when not applicable.
	TypeArgs() []Type

	// EnumMemberParent returns the type of the enum declaration enclosing
	// this enum-member value, or false when the type is not an enum
	// member.
	EnumMemberParent() (Type, bool)

	// Identical reports whether the other type is the same type in the
	// host type system.
	Identical(other Type) bool
}

// Env renders types to their textual form.
//
// Render may fail for types the host checker cannot materialize as text;
// the resolver folds every such failure into an unclassifiable descriptor
// rather than propagating it.
type Env interface {
	Render(t Type) (string, error)
}

// EnvError wraps a failure reported by the host type environment. It exists
// so rendering and lookup failures stay distinguishable from programming
// errors while still being folded at the resolver boundary.
type EnvError struct {
	Op  string
	Err error
}

func (e *EnvError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("typeenv: %s failed", e.Op)
	}
	return fmt.Sprintf("typeenv: %s: %v", e.Op, e.Err)
}

func (e *EnvError) Unwrap() error { return e.Err }
