package ir

// RewrittenReference is the result of relocating a textual type reference
// that embeds a dynamic-import expression.
//
// A nil TypeReference means the input was malformed (a module specifier
// could not be extracted) and the caller must skip annotating the property.
// A nil ImportPath means no relocation was needed: either the reference
// contained no import expression, or it was already resolvable in place.
// TypeName is set only by deferred-import conversion, where the member
// accessor is split off so the caller can emit a separate type-only binding.
type RewrittenReference struct {
	TypeReference *string
	TypeName      *string
	ImportPath    *string
}

// Reference returns a rewritten reference with no relocation.
func Reference(text string) RewrittenReference {
	return RewrittenReference{TypeReference: &text}
}

// Relocated returns a rewritten reference whose specifier was replaced by
// the given module-relative import path.
func Relocated(text, importPath string) RewrittenReference {
	return RewrittenReference{TypeReference: &text, ImportPath: &importPath}
}

// Malformed returns the reference signalling unextractable input.
func Malformed() RewrittenReference {
	return RewrittenReference{}
}

// Text returns the reference text, or "" when malformed.
func (r RewrittenReference) Text() string {
	if r.TypeReference == nil {
		return ""
	}
	return *r.TypeReference
}
