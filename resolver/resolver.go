// Package resolver classifies a declared type into a runtime type
// descriptor. It walks arbitrarily nested container, wrapper, union, and
// alias structure and produces a single stable answer per type.
package resolver

import (
	"strings"

	"github.com/descry/descry/ir"
	"github.com/descry/descry/typeenv"
)

// Default substrings identifying transparent wrapper types in rendered
// names. A wrapper's first type argument is the semantically relevant
// payload; the wrapper itself never appears in a descriptor.
var defaultWrapperNames = []string{"Promise", "Observable"}

// Options adjusts resolver behavior for non-default hosts.
type Options struct {
	// WrapperNames overrides the rendered-name substrings that identify
	// deferred-value and push-stream wrapper types. Empty keeps the
	// defaults.
	WrapperNames []string
}

// Resolver produces type descriptors against one type environment.
// A Resolver is stateless and safe for concurrent use provided the
// environment is read-only.
type Resolver struct {
	env      typeenv.Env
	wrappers []string
}

// New returns a resolver over the given environment.
func New(env typeenv.Env, opts Options) *Resolver {
	wrappers := opts.WrapperNames
	if len(wrappers) == 0 {
		wrappers = defaultWrapperNames
	}
	return &Resolver{env: env, wrappers: wrappers}
}

// Resolve classifies t into a descriptor. Unclassifiable types and
// environment failures both yield the unclassified descriptor; Resolve
// never fails.
func (r *Resolver) Resolve(t typeenv.Type) ir.TypeDescriptor {
	return r.resolve(t, 0)
}

// classification discriminates the host capability set up front, so the
// precedence order of resolve stays explicit in one place instead of being
// re-queried at each branch. Several predicates overlap (an enum is also a
// union after the strict-mode transformation), which is why the order here
// is load-bearing: enum-ness is decided before generic union handling.
type classification int

const (
	classOther classification = iota
	classContainer
	classBoolean
	classNumber
	classBigInt
	classString
	classClass
	classEnum
	classInterface
	classUnionLike
	classAliased
)

func classify(t typeenv.Type) classification {
	switch {
	case t.IsArray():
		return classContainer
	case t.IsBoolean():
		return classBoolean
	case t.IsNumber():
		return classNumber
	case t.IsBigInt():
		return classBigInt
	case t.IsString(), t.IsStringLiteral():
		return classString
	case t.IsClass():
		return classClass
	case t.IsEnum():
		return classEnum
	case t.IsInterface():
		return classInterface
	case t.IsUnionOrIntersection():
		return classUnionLike
	case t.HasAlias():
		return classAliased
	default:
		return classOther
	}
}

func (r *Resolver) resolve(t typeenv.Type, depth int) ir.TypeDescriptor {
	kind := classify(t)

	switch kind {
	case classContainer:
		elem, ok := elementType(t)
		if !ok {
			return ir.Unclassified()
		}
		d := r.resolve(elem, depth+1)
		if !d.Classified() {
			// An unclassifiable element makes the whole container
			// unclassifiable; the array flags are dropped with it.
			return ir.Unclassified()
		}
		d.IsArray = true
		return d
	case classBoolean:
		return ir.Named(ir.NameBoolean, depth)
	case classNumber:
		return ir.Named(ir.NameNumber, depth)
	case classBigInt:
		return ir.Named(ir.NameBigInt, depth)
	case classString:
		return ir.Named(ir.NameString, depth)
	}

	// Everything past this point needs the rendered text. Rendering
	// failures fold into the unclassified descriptor here and never
	// propagate.
	text, err := r.env.Render(t)
	if err != nil {
		return ir.Unclassified()
	}

	if r.isWrapper(text) {
		args := t.TypeArgs()
		if len(args) == 0 {
			return ir.Unclassified()
		}
		// The wrapper is transparent: same depth, payload type.
		return r.resolve(args[0], depth)
	}

	if kind == classClass {
		return ir.Named(text, depth)
	}

	switch text {
	case "Date":
		return ir.Named(ir.NameDate, depth)
	case "boolean | undefined":
		// Strict-mode rendering of an optional boolean.
		return ir.Named(ir.NameBoolean, depth)
	}

	if isOptionalUnion(t) {
		wrapped, ok := optionalMember(t)
		if !ok {
			return ir.Unclassified()
		}
		return r.resolve(wrapped, depth)
	}
	if enum, ok := enumUnionType(t); ok {
		return r.resolve(enum, depth)
	}

	switch {
	case text == "any", text == "unknown", text == "object":
		return ir.Named(ir.NameObject, depth)
	case kind == classInterface, kind == classUnionLike:
		return ir.Named(ir.NameObject, depth)
	case kind == classEnum:
		// Enums need declaration-level handling by the caller, not a
		// descriptor string.
		return ir.Unclassified()
	case kind == classAliased:
		return ir.Named(ir.NameObject, depth)
	}

	return ir.Unclassified()
}

func (r *Resolver) isWrapper(text string) bool {
	for _, name := range r.wrappers {
		if strings.Contains(text, name) {
			return true
		}
	}
	return false
}

// elementType extracts the single element-type argument of a container.
// The second result is false when the container exposes no element type.
func elementType(t typeenv.Type) (typeenv.Type, bool) {
	args := t.TypeArgs()
	if len(args) == 0 {
		return nil, false
	}
	return args[0], true
}
