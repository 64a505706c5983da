package rewrite

import "regexp"

// deferredImportPattern locates an import expression followed by a member
// accessor: import(<specifier>).<Member>. The accessor is what deferred form
// splits off.
var deferredImportPattern = regexp.MustCompile(`import\(.+\)\.(\w+)`)

// toDeferredImport converts a reference to its deferred-import form: the
// trailing member accessor is removed and the deferred-evaluation keyword is
// inserted at the import expression's original character offset. The second
// result is the extracted member name, nil when the text contains no
// import-with-accessor pattern and is returned unchanged.
func toDeferredImport(ref string) (string, *string) {
	loc := deferredImportPattern.FindStringSubmatchIndex(ref)
	if loc == nil {
		return ref, nil
	}
	member := ref[loc[2]:loc[3]]
	// loc[2]-1 is the dot introducing the accessor.
	text := ref[:loc[2]-1] + ref[loc[3]:]
	return insertAt(text, loc[0], "await "), &member
}
