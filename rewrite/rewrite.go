// Package rewrite relocates textual type references that embed dynamic
// import expressions into statically resolvable, module-relative form.
//
// The rewriter deliberately operates on the rendered text with targeted
// pattern extraction rather than re-parsing it into a type graph; the
// Rewriter type isolates that string surgery so a structured rewrite could
// replace it without touching callers.
package rewrite

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/descry/descry/ir"
)

// Options selects the rewriting mode.
type Options struct {
	// Readonly selects deferred (lazy) import rewriting rooted at
	// PathToSource. When false, rewriting is immediate and rooted at the
	// source file's own directory.
	Readonly     bool
	PathToSource string
}

const (
	importToken  = "import"
	requireToken = "require"

	packageStoreSegment     = "node_modules"
	typeDeclarationsSegment = "@types"
	indexSuffix             = "/index"
)

// importSpecifierPattern extracts the quoted module specifier of an
// embedded import expression, opening parenthesis included.
var importSpecifierPattern = regexp.MustCompile(`\("([^)]).+(")`)

// Rewriter rewrites cross-file type references. The zero value is usable;
// it treats every specifier as uninstalled and always relocates.
type Rewriter struct {
	// Modules is the installed-package probe. Nil means no specifier
	// resolves as installed.
	Modules ModuleResolver
}

// New returns a rewriter probing installed packages relative to dir.
func New(dir string) *Rewriter {
	return &Rewriter{Modules: PackageProbe{Dir: dir}}
}

// Rewrite relocates the import expression embedded in ref, using sourceFile
// (the absolute path of the file whose declaration is being analyzed) as
// the reference point. Malformed input yields a nil TypeReference; the
// caller must skip the property rather than abort.
func (rw *Rewriter) Rewrite(ref, sourceFile string, opts Options) ir.RewrittenReference {
	if !strings.Contains(ref, importToken) {
		return ir.Reference(ref)
	}

	ref = ConvertPath(ref)
	match := importSpecifierPattern.FindString(ref)
	if match == "" {
		return ir.Malformed()
	}
	// match is `("<specifier>"`: drop the parenthesis and both quotes.
	specifier := match[2 : len(match)-1]

	// Fast path: a non-absolute specifier that resolves as an installed
	// package needs no relocation, only a synchronous import token.
	if !isAbsolutePath(specifier) && rw.resolves(specifier) {
		return ir.Reference(strings.Replace(ref, importToken, requireToken, 1))
	}

	from := path.Dir(ConvertPath(sourceFile))
	if opts.Readonly {
		from = ConvertPath(opts.PathToSource)
	}
	rel, err := relativePath(from, specifier)
	if err != nil {
		return ir.Malformed()
	}
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	rel = collapsePackagePath(rel)
	ref = strings.Replace(ref, specifier, rel, 1)

	if opts.Readonly {
		text, typeName := toDeferredImport(ref)
		return ir.RewrittenReference{TypeReference: &text, TypeName: typeName, ImportPath: &rel}
	}
	return ir.Relocated(strings.Replace(ref, importToken, requireToken, 1), rel)
}

func (rw *Rewriter) resolves(specifier string) bool {
	return rw.Modules != nil && rw.Modules.Resolve(specifier)
}

// collapsePackagePath strips everything up to and including a package-store
// segment: a declaration inside an installed dependency's type-declaration
// root is referenced by its path within the package. A following
// type-declarations-only segment is stripped the same way, and a remaining
// /index suffix is truncated because index modules are referenced by their
// containing directory.
func collapsePackagePath(rel string) string {
	pos := strings.Index(rel, packageStoreSegment)
	if pos < 0 {
		return rel
	}
	rel = sliceAfterSegment(rel, pos, packageStoreSegment)
	if tpos := strings.Index(rel, typeDeclarationsSegment); tpos >= 0 {
		rel = sliceAfterSegment(rel, tpos, typeDeclarationsSegment)
	}
	if strings.HasSuffix(rel, indexSuffix) {
		rel = rel[:len(rel)-len(indexSuffix)]
	}
	return rel
}

// sliceAfterSegment removes rel[:pos+len(segment)+1], the +1 eating the
// separator after the segment.
func sliceAfterSegment(rel string, pos int, segment string) string {
	cut := pos + len(segment) + 1
	if cut >= len(rel) {
		return ""
	}
	return rel[cut:]
}

// relativePath computes to relative to the directory from, in posix form.
func relativePath(from, to string) (string, error) {
	rel, err := filepath.Rel(filepath.FromSlash(from), filepath.FromSlash(to))
	if err != nil {
		return "", err
	}
	return ConvertPath(rel), nil
}

// isAbsolutePath reports whether p is absolute in either posix or
// drive-letter form. Specifiers are posix-normalized before this check.
func isAbsolutePath(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	return len(p) >= 2 && p[1] == ':'
}
