package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/kxue43/fix-filenames/rename"
	"github.com/kxue43/fix-filenames/version"
)

type (
	CLI struct {
		rootDir string
		Root    string           `name:"root" type:"existingdir" placeholder:"DIR" help:"Directory to scan. Defaults to the current working directory."`
		Verbose bool             `name:"verbose" short:"v" help:"Log every rule decision to stderr."`
		Version kong.VersionFlag `name:"version" help:"Show version information and quit."`
	}
)

func (c *CLI) AfterApply() (err error) {
	if c.Root != "" {
		c.rootDir, err = filepath.Abs(c.Root)
		if err != nil {
			return fmt.Errorf("failed to resolve %q to an absolute path: %w", c.Root, err)
		}

		return nil
	}

	c.rootDir, err = os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}

	return nil
}

func (c *CLI) Run() error {
	return c.run(os.Stdout, os.Stderr)
}

func (c *CLI) run(stdout, stderr io.Writer) error {
	level := log.InfoLevel
	if c.Verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(stderr, log.Options{
		Prefix: "fix-filenames",
		Level:  level,
	})

	renamer := rename.NewRenamer(
		c.rootDir,
		rename.WithReporter(rename.NewReporter(stdout)),
		rename.WithLogger(logger),
	)

	// Per-file failures are part of the report, not of the exit code.
	_ = renamer.Run()

	return nil
}

func main() {
	var cli CLI

	ctx := kong.Parse(
		&cli,
		kong.Name("fix-filenames"),
		kong.Description("Restore file extensions mangled by an export, e.g. store.ts.ts or package.json2.txt, under a directory tree."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.FromBuildInfo()},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
