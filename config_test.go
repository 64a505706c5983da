package descry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "minimal",
			cfg:  Config{Packages: []string{"./..."}},
		},
		{
			name: "readonly with path",
			cfg:  Config{Packages: []string{"."}, Readonly: true, PathToSource: "/src"},
		},
		{
			name:    "no packages",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name:    "empty pattern",
			cfg:     Config{Packages: []string{""}},
			wantErr: true,
		},
		{
			name:    "readonly without path",
			cfg:     Config{Packages: []string{"."}, Readonly: true},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".descry.yaml")
	content := `packages:
  - ./api/...
out: ./gen
readonly: true
pathToSource: ./src
wrapperNames:
  - Future
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if len(cfg.Packages) != 1 || cfg.Packages[0] != "./api/..." {
		t.Errorf("Packages = %v", cfg.Packages)
	}
	if cfg.OutDir != "./gen" {
		t.Errorf("OutDir = %q", cfg.OutDir)
	}
	if !cfg.Readonly || cfg.PathToSource != "./src" {
		t.Errorf("Readonly = %v, PathToSource = %q", cfg.Readonly, cfg.PathToSource)
	}
	if len(cfg.WrapperNames) != 1 || cfg.WrapperNames[0] != "Future" {
		t.Errorf("WrapperNames = %v", cfg.WrapperNames)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() of a missing file succeeded")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte(":\t not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() of invalid yaml succeeded")
	}
}
