package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/descry/descry"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate runtime type metadata documents."`
	Check   CheckCmd   `cmd:"" help:"Resolve types without writing files and report skipped properties."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Out          string   `arg:"" help:"Output directory for metadata documents."`
	Packages     []string `help:"Package patterns to analyze (default: current directory)." short:"p"`
	Config       string   `help:"Path to a YAML config file." short:"c" default:".descry.yaml"`
	Readonly     bool     `help:"Emit deferred-import references." short:"r"`
	PathToSource string   `help:"Reference directory for deferred rewriting."`
}

func (c *GenCmd) Run() error {
	cfg, err := loadConfig(c.Config, c.Packages)
	if err != nil {
		return err
	}
	if c.Readonly {
		cfg.Readonly = true
		cfg.PathToSource = c.PathToSource
	}
	return descry.FromConfig(*cfg).ToDir(context.Background(), c.Out)
}

type CheckCmd struct {
	Packages []string `help:"Package patterns to analyze (default: current directory)." short:"p"`
	Config   string   `help:"Path to a YAML config file." short:"c" default:".descry.yaml"`
}

func (c *CheckCmd) Run() error {
	cfg, err := loadConfig(c.Config, c.Packages)
	if err != nil {
		return err
	}
	result, err := descry.FromConfig(*cfg).Run(context.Background())
	if err != nil {
		return err
	}
	for _, prop := range result.Skipped {
		fmt.Fprintf(os.Stderr, "skipped: %s\n", prop)
	}
	fmt.Printf("%d packages analyzed, %d properties skipped\n", len(result.Packages), len(result.Skipped))
	return nil
}

// loadConfig merges the optional config file with command-line package
// patterns; flags win over the file.
func loadConfig(path string, packages []string) (*descry.Config, error) {
	cfg := &descry.Config{}
	loaded, err := descry.LoadConfig(path)
	switch {
	case err == nil:
		cfg = loaded
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}
	if len(packages) > 0 {
		cfg.Packages = packages
	}
	if len(cfg.Packages) == 0 {
		cfg.Packages = []string{"."}
	}
	return cfg, nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("descry"),
		kong.Description("Generate runtime type metadata from static Go declarations."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
