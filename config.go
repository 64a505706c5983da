// Package descry generates runtime type metadata for Go declarations: for
// every exported struct in the analyzed packages it resolves each field's
// declared type to a compact descriptor and relocates cross-package type
// references, producing metadata documents the type system itself does not
// retain after compilation.
package descry

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config controls a metadata generation run.
type Config struct {
	// Packages are the package patterns to analyze (e.g. "./...").
	Packages []string `yaml:"packages" validate:"required,min=1,dive,required"`

	// OutDir is the directory metadata documents are written into.
	OutDir string `yaml:"out"`

	// Readonly selects deferred-import rewriting for cross-package
	// references, rooted at PathToSource.
	Readonly bool `yaml:"readonly"`

	// PathToSource is the reference directory for deferred rewriting.
	// Required when Readonly is set.
	PathToSource string `yaml:"pathToSource" validate:"required_if=Readonly true"`

	// WrapperNames overrides the rendered-name substrings identifying
	// transparent wrapper types.
	WrapperNames []string `yaml:"wrapperNames"`
}

var validate = validator.New()

// Validate reports whether the configuration is usable.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
