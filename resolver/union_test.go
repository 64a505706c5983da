package resolver

import "testing"

func TestIsOptionalUnion(t *testing.T) {
	tests := []struct {
		name string
		typ  *fakeType
		want bool
	}{
		{"string or undefined", fUnion(fString(), fUndefined()), true},
		{"undefined first", fUnion(fUndefined(), fString()), true},
		{"no undefined member", fUnion(fString(), fNumber()), false},
		{"both undefined", fUnion(fUndefined(), fUndefined()), false},
		{"three members", fUnion(fString(), fNumber(), fUndefined()), false},
		{"single member", fUnion(fString()), false},
		{"not a union", fString(), false},
		{"enum union is excluded", &fakeType{union: true, enum: true, members: []*fakeType{fString(), fUndefined()}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isOptionalUnion(tt.typ); got != tt.want {
				t.Errorf("isOptionalUnion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOptionalMember(t *testing.T) {
	str := fString()

	got, ok := optionalMember(fUnion(fUndefined(), str))
	if !ok || got.(*fakeType) != str {
		t.Errorf("optionalMember() = %v, %v; want the string member", got, ok)
	}

	got, ok = optionalMember(fUnion(str, fUndefined()))
	if !ok || got.(*fakeType) != str {
		t.Errorf("optionalMember() = %v, %v; want the string member", got, ok)
	}

	if _, ok := optionalMember(fUnion(fUndefined(), fUndefined())); ok {
		t.Error("optionalMember() matched a union of two undefined members")
	}
}

func TestEnumUnionType(t *testing.T) {
	status := fEnum("Status")
	other := fEnum("Other")

	tests := []struct {
		name string
		typ  *fakeType
		want *fakeType // nil means detection must fail
	}{
		{
			"members plus undefined",
			fUnion(fUndefined(), fEnumMember(status, "A"), fEnumMember(status, "B")),
			status,
		},
		{
			"single member plus undefined",
			fUnion(fUndefined(), fEnumMember(status, "A")),
			status,
		},
		{
			"no undefined member",
			fUnion(fEnumMember(status, "A"), fEnumMember(status, "B")),
			nil,
		},
		{
			"two undefined members",
			fUnion(fUndefined(), fUndefined(), fEnumMember(status, "A")),
			nil,
		},
		{
			"member without enum symbol",
			fUnion(fUndefined(), fEnumMember(status, "A"), fString()),
			nil,
		},
		{
			"disagreeing enclosing enums",
			fUnion(fUndefined(), fEnumMember(status, "A"), fEnumMember(other, "B")),
			nil,
		},
		{"not a union", fEnum("Status"), nil},
		{"undefined only", fUnion(fUndefined()), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := enumUnionType(tt.typ)
			if tt.want == nil {
				if ok {
					t.Errorf("enumUnionType() = %v, want no detection", got)
				}
				return
			}
			if !ok {
				t.Fatal("enumUnionType() failed, want detection")
			}
			if !got.Identical(tt.want) {
				t.Errorf("enumUnionType() = %v, want the enclosing enum", got)
			}
		})
	}
}
