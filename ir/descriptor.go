// Package ir defines the value types exchanged between the descriptor
// resolver, the reference rewriter, and the metadata driver. All values are
// immutable: constructed fresh per resolution, never shared, never mutated.
package ir

// TypeDescriptor identifies which primitive, class, or container kind a
// declared type represents at runtime.
//
// A nil TypeName means the type could not be classified. That is a valid
// terminal state, not an error: the caller must omit the annotation for that
// property entirely.
//
// ArrayDepth counts nesting levels of container-of-container (a list of
// lists of numbers has depth 2). It is meaningful only when IsArray is true.
type TypeDescriptor struct {
	TypeName   *string
	IsArray    bool
	ArrayDepth int
}

// Named returns a classified descriptor with the given type name at the
// given container depth. The array flag is set by the container branch of
// the resolver, not here.
func Named(name string, depth int) TypeDescriptor {
	return TypeDescriptor{TypeName: &name, ArrayDepth: depth}
}

// Unclassified returns the terminal "omit this annotation" descriptor.
func Unclassified() TypeDescriptor {
	return TypeDescriptor{}
}

// Classified reports whether the descriptor carries a usable type name.
func (d TypeDescriptor) Classified() bool {
	return d.TypeName != nil
}

// Name returns the type name, or "" when unclassified.
func (d TypeDescriptor) Name() string {
	if d.TypeName == nil {
		return ""
	}
	return *d.TypeName
}

// Canonical descriptor type names produced by the resolver.
const (
	NameBoolean = "Boolean"
	NameNumber  = "Number"
	NameBigInt  = "BigInt"
	NameString  = "String"
	NameDate    = "Date"
	NameObject  = "Object"
)
