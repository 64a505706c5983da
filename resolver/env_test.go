package resolver

import (
	"errors"

	"github.com/descry/descry/typeenv"
)

// fakeType is a scriptable typeenv.Type for resolver tests. Identity is
// pointer identity.
type fakeType struct {
	array, boolean, number, bigint, str, strLit bool
	class, enum, iface, union, undef, alias     bool

	text       string
	renderErr  error
	members    []*fakeType
	args       []*fakeType
	enumParent *fakeType
}

func (f *fakeType) IsArray() bool { return f.array }

func (f *fakeType) IsBoolean() bool { return f.boolean }

func (f *fakeType) IsNumber() bool { return f.number }

func (f *fakeType) IsBigInt() bool { return f.bigint }

func (f *fakeType) IsString() bool { return f.str }

func (f *fakeType) IsStringLiteral() bool { return f.strLit }

func (f *fakeType) IsClass() bool { return f.class }

func (f *fakeType) IsEnum() bool { return f.enum }

func (f *fakeType) IsInterface() bool { return f.iface }

func (f *fakeType) IsUnionOrIntersection() bool { return f.union }

func (f *fakeType) IsUndefined() bool { return f.undef }

func (f *fakeType) HasAlias() bool { return f.alias }

func (f *fakeType) Constituents() []typeenv.Type { return asTypes(f.members) }

func (f *fakeType) TypeArgs() []typeenv.Type { return asTypes(f.args) }

func (f *fakeType) EnumMemberParent() (typeenv.Type, bool) {
	if f.enumParent == nil {
		return nil, false
	}
	return f.enumParent, true
}

func (f *fakeType) Identical(other typeenv.Type) bool {
	o, ok := other.(*fakeType)
	return ok && o == f
}

func asTypes(fs []*fakeType) []typeenv.Type {
	if len(fs) == 0 {
		return nil
	}
	out := make([]typeenv.Type, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}

// fakeEnv renders fakeTypes by their scripted text.
type fakeEnv struct{}

func (fakeEnv) Render(t typeenv.Type) (string, error) {
	f, ok := t.(*fakeType)
	if !ok {
		return "", &typeenv.EnvError{Op: "render", Err: errors.New("not a fakeType")}
	}
	if f.renderErr != nil {
		return "", &typeenv.EnvError{Op: "render", Err: f.renderErr}
	}
	return f.text, nil
}

// Fixture constructors.

func fBool() *fakeType          { return &fakeType{boolean: true, text: "boolean"} }
func fNumber() *fakeType        { return &fakeType{number: true, text: "number"} }
func fBigInt() *fakeType        { return &fakeType{bigint: true, text: "bigint"} }
func fString() *fakeType        { return &fakeType{str: true, text: "string"} }
func fStringLiteral() *fakeType { return &fakeType{strLit: true, text: `"on"`} }
func fUndefined() *fakeType     { return &fakeType{undef: true, text: "undefined"} }

func fArray(elem *fakeType) *fakeType {
	return &fakeType{array: true, text: elem.text + "[]", args: []*fakeType{elem}}
}

func fClass(name string) *fakeType {
	return &fakeType{class: true, text: name}
}

func fEnum(name string) *fakeType {
	return &fakeType{enum: true, text: name}
}

func fEnumMember(parent *fakeType, name string) *fakeType {
	return &fakeType{text: name, enumParent: parent}
}

func fUnion(members ...*fakeType) *fakeType {
	return &fakeType{union: true, text: "union", members: members}
}

func fWrapper(name string, args ...*fakeType) *fakeType {
	return &fakeType{text: name, args: args}
}

func fText(text string) *fakeType {
	return &fakeType{text: text}
}
