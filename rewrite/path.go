package rewrite

import (
	"regexp"
	"strings"
)

var (
	longPathPrefix   = regexp.MustCompile(`^\\\\\?\\`)
	duplicateSlashes = regexp.MustCompile(`//+`)
)

// ConvertPath normalizes a platform path to single-separator posix form:
// the long-path prefix is removed, backslashes become slashes, and runs of
// separators collapse to one. Applying it twice yields the same result.
func ConvertPath(p string) string {
	p = longPathPrefix.ReplaceAllString(p, "")
	p = strings.ReplaceAll(p, `\`, "/")
	return duplicateSlashes.ReplaceAllString(p, "/")
}

// insertAt returns s with ins spliced in at byte offset off.
func insertAt(s string, off int, ins string) string {
	return s[:off] + ins + s[off:]
}
