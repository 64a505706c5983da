package descry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/descry/descry/gotypes"
	"github.com/descry/descry/resolver"
	"github.com/descry/descry/rewrite"
	"github.com/descry/descry/sink"
	"github.com/google/uuid"
)

// Generator drives metadata generation over a set of packages. Create one
// with FromPackages and configure it by chaining.
//
// Example:
//
//	descry.FromPackages("./api/...").
//	    WithReadonly("./src").
//	    ToDir(ctx, "./gen")
type Generator struct {
	cfg    Config
	out    sink.OutputSink
	logger *slog.Logger
}

// FromPackages returns a generator analyzing the given package patterns.
func FromPackages(patterns ...string) *Generator {
	return &Generator{cfg: Config{Packages: patterns}}
}

// FromConfig returns a generator using a loaded configuration.
func FromConfig(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// WithReadonly switches cross-package references to deferred-import form,
// relocated relative to pathToSource.
func (g *Generator) WithReadonly(pathToSource string) *Generator {
	g.cfg.Readonly = true
	g.cfg.PathToSource = pathToSource
	return g
}

// WithWrapperNames overrides the wrapper-type name substrings.
func (g *Generator) WithWrapperNames(names ...string) *Generator {
	g.cfg.WrapperNames = names
	return g
}

// WithSink sets the output destination used by Write.
func (g *Generator) WithSink(s sink.OutputSink) *Generator {
	g.out = s
	return g
}

// WithLogger sets the logger used for progress and skip reporting.
func (g *Generator) WithLogger(l *slog.Logger) *Generator {
	g.logger = l
	return g
}

// PropertyMetadata is the runtime annotation for one resolved property.
// Exactly one of Type and TypeReference is set; properties that could not
// be classified are omitted from the document entirely.
type PropertyMetadata struct {
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	IsArray    bool   `json:"isArray,omitempty"`
	ArrayDepth int    `json:"arrayDepth,omitempty"`

	// TypeReference carries a relocated cross-file reference. TypeName is
	// the member extracted by deferred-import conversion, for which the
	// consumer emits a separate type-only binding.
	TypeReference string `json:"typeReference,omitempty"`
	TypeName      string `json:"typeName,omitempty"`
	ImportPath    string `json:"importPath,omitempty"`
}

// DeclarationMetadata is the metadata document for one declaration.
type DeclarationMetadata struct {
	Name       string             `json:"name"`
	Properties []PropertyMetadata `json:"properties"`
}

// PackageMetadata groups declarations by package.
type PackageMetadata struct {
	Package      string                `json:"package"`
	Declarations []DeclarationMetadata `json:"declarations"`
}

// Result is a completed generation run.
type Result struct {
	// BuildID uniquely identifies this run.
	BuildID string `json:"buildId"`

	Packages []PackageMetadata `json:"packages"`

	// Skipped lists properties omitted because their type was
	// unclassifiable or their reference text was malformed.
	Skipped []string `json:"skipped,omitempty"`
}

// Run analyzes the configured packages and returns the generated metadata
// without writing any files.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	logger := g.logger
	if logger == nil {
		logger = slog.Default()
	}

	env, decls, err := gotypes.Load(ctx, g.cfg.Packages...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	res := resolver.New(env, resolver.Options{WrapperNames: g.cfg.WrapperNames})
	opts := rewrite.Options{Readonly: g.cfg.Readonly, PathToSource: g.cfg.PathToSource}

	result := &Result{BuildID: uuid.NewString()}
	byPackage := make(map[string]*PackageMetadata)
	var order []string

	for _, decl := range decls {
		dm := DeclarationMetadata{Name: decl.Name, Properties: []PropertyMetadata{}}
		rw := rewrite.New(filepath.Dir(decl.File))

		for _, field := range decl.Fields {
			prop, ok := g.resolveProperty(res, rw, decl.File, field, opts)
			if !ok {
				result.Skipped = append(result.Skipped, decl.Name+"."+field.Name)
				logger.DebugContext(ctx, "property skipped",
					slog.String("declaration", decl.Name),
					slog.String("property", field.Name),
				)
				continue
			}
			dm.Properties = append(dm.Properties, prop)
		}

		pm, ok := byPackage[decl.Package]
		if !ok {
			pm = &PackageMetadata{Package: decl.Package}
			byPackage[decl.Package] = pm
			order = append(order, decl.Package)
		}
		pm.Declarations = append(pm.Declarations, dm)
	}

	for _, pkg := range order {
		result.Packages = append(result.Packages, *byPackage[pkg])
	}

	logger.InfoContext(ctx, "generation completed",
		slog.String("buildId", result.BuildID),
		slog.Int("packages", len(result.Packages)),
		slog.Int("declarations", len(decls)),
		slog.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

// resolveProperty produces the annotation for one field. The second result
// is false when the annotation must be omitted: an unclassifiable type or a
// malformed reference, both non-fatal.
func (g *Generator) resolveProperty(res *resolver.Resolver, rw *rewrite.Rewriter, file string, field gotypes.Field, opts rewrite.Options) (PropertyMetadata, bool) {
	d := res.Resolve(field.Type)
	if !d.Classified() {
		return PropertyMetadata{}, false
	}

	prop := PropertyMetadata{
		Name:       field.Name,
		IsArray:    d.IsArray,
		ArrayDepth: d.ArrayDepth,
	}
	if !strings.Contains(d.Name(), "import(") {
		prop.Type = d.Name()
		return prop, true
	}

	ref := rw.Rewrite(d.Name(), file, opts)
	if ref.TypeReference == nil {
		return PropertyMetadata{}, false
	}
	prop.TypeReference = ref.Text()
	if ref.TypeName != nil {
		prop.TypeName = *ref.TypeName
	}
	if ref.ImportPath != nil {
		prop.ImportPath = *ref.ImportPath
	}
	return prop, true
}

// ToDir runs generation and writes one metadata document per package plus a
// manifest into dir.
func (g *Generator) ToDir(ctx context.Context, dir string) error {
	g.out = sink.NewFilesystemSink(dir)
	return g.Write(ctx)
}

// Write runs generation and writes the documents to the configured sink.
func (g *Generator) Write(ctx context.Context) error {
	if g.out == nil {
		return fmt.Errorf("no output sink configured")
	}
	result, err := g.Run(ctx)
	if err != nil {
		return err
	}

	manifest := struct {
		BuildID string   `json:"buildId"`
		Files   []string `json:"files"`
		Skipped []string `json:"skipped,omitempty"`
	}{BuildID: result.BuildID, Skipped: result.Skipped}

	for _, pm := range result.Packages {
		content, err := json.MarshalIndent(pm, "", "  ")
		if err != nil {
			return fmt.Errorf("encode metadata for %s: %w", pm.Package, err)
		}
		name := metadataFileName(pm.Package)
		if err := g.out.WriteFile(ctx, name, append(content, '\n')); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		manifest.Files = append(manifest.Files, name)
	}

	content, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := g.out.WriteFile(ctx, "manifest.json", append(content, '\n')); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// metadataFileName flattens a package path into a document file name.
func metadataFileName(pkgPath string) string {
	return strings.ReplaceAll(pkgPath, "/", "_") + ".metadata.json"
}
