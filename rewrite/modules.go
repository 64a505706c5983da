package rewrite

import (
	"os"
	"path/filepath"
)

// ModuleResolver probes whether a module specifier can be located as an
// installed package. The probe is read-only; a false answer (including any
// lookup failure) triggers the relocation path and is never a fault.
type ModuleResolver interface {
	Resolve(specifier string) bool
}

// ModuleResolverFunc adapts a function to the ModuleResolver interface.
type ModuleResolverFunc func(specifier string) bool

// Resolve calls f.
func (f ModuleResolverFunc) Resolve(specifier string) bool { return f(specifier) }

// PackageProbe resolves specifiers against package-store directories,
// walking upward from Dir the way the host module system does.
type PackageProbe struct {
	// Dir is the directory the probe starts from, typically the directory
	// of the file under analysis.
	Dir string
}

// Candidate file extensions for a specifier that names a file rather than
// a package directory.
var probeExtensions = []string{"", ".d.ts", ".ts", ".js", ".json"}

// Resolve reports whether the specifier exists under a node_modules
// directory at or above the probe's starting directory.
func (p PackageProbe) Resolve(specifier string) bool {
	dir := p.Dir
	for {
		base := filepath.Join(dir, "node_modules", filepath.FromSlash(specifier))
		for _, ext := range probeExtensions {
			if _, err := os.Stat(base + ext); err == nil {
				return true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}
