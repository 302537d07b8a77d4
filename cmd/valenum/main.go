// valenum generates valued enum tables and their feature methods.
//
// Source mode reads //valenum: directives from the Go files of a
// package:
//
//	//go:generate valenum -t Color
//
// Description mode reads a YAML or JSON file and also declares the
// enum types:
//
//	//go:generate valenum -d shape.yaml
//
// With --check nothing is written; the command fails when the output
// file is missing, hand-edited or out of date.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/rawbytedev/valenum/decl"
	"github.com/rawbytedev/valenum/gen"
	"github.com/spf13/pflag"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	types   []string
	desc    string
	output  string
	check   bool
	verbose bool
	dir     string
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	var showVersion bool

	flagSet := pflag.NewFlagSet("valenum", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringSliceVarP(&cfg.types, "type", "t", nil, "enum type to generate, repeatable (source mode)")
	flagSet.StringVarP(&cfg.desc, "desc", "d", "", "YAML or JSON description file (description mode)")
	flagSet.StringVarP(&cfg.output, "output", "o", "", "output file (default <type>_valenum.go)")
	flagSet.BoolVarP(&cfg.check, "check", "c", false, "fail if the output file is missing or stale instead of writing it")
	flagSet.BoolVarP(&cfg.verbose, "verbose", "v", false, "log progress")
	flagSet.BoolVar(&showVersion, "version", false, "print the version and exit")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "usage: valenum [flags] [dir]\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if showVersion {
		fmt.Fprintf(stdout, "valenum %s\n", version())
		return exitOK
	}
	switch rest := flagSet.Args(); {
	case len(rest) > 1:
		fmt.Fprintf(stderr, "valenum: unexpected argument: %s\n", rest[1])
		return exitUsage
	case len(rest) == 1:
		cfg.dir = rest[0]
	default:
		cfg.dir = "."
	}
	if cfg.desc != "" && len(cfg.types) > 0 {
		fmt.Fprintln(stderr, "valenum: --type and --desc are mutually exclusive")
		return exitUsage
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := generate(cfg, logger); err != nil {
		for _, d := range decl.Diagnostics(err) {
			fmt.Fprintf(stderr, "valenum: %v\n", d)
		}
		return exitFailure
	}
	return exitOK
}

func generate(cfg config, logger *slog.Logger) error {
	doc, err := load(cfg)
	if err != nil {
		return err
	}
	if doc.Package == "" {
		doc.Package = os.Getenv("GOPACKAGE")
	}
	if doc.Package == "" {
		return errors.New("no package name: set package in the description or run under go generate")
	}
	logger.Debug("loaded", "path", doc.Path, "package", doc.Package, "enums", len(doc.Enums))

	var errs []error
	file := &gen.File{Package: doc.Package, Imports: doc.Imports}
	for i := range doc.Enums {
		r, err := decl.Resolve(&doc.Enums[i])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		file.Enums = append(file.Enums, r)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if len(file.Enums) == 0 {
		return fmt.Errorf("%s: no annotated enums", doc.Path)
	}

	output := outputPath(cfg, doc)
	generator := gen.NewGenerator(gen.Options{Filename: output, Logger: logger})
	src, err := generator.Generate(file)
	if err != nil {
		return err
	}

	if cfg.check {
		existing, err := os.ReadFile(output)
		if err != nil {
			return fmt.Errorf("check %s: %w", output, err)
		}
		if err := gen.Verify(existing); err != nil {
			return fmt.Errorf("check %s: %w", output, err)
		}
		if !bytes.Equal(existing, src) {
			return fmt.Errorf("check %s: %w", output, gen.ErrStale)
		}
		logger.Debug("up to date", "output", output)
		return nil
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return err
	}
	logger.Debug("wrote", "output", output, "bytes", len(src))
	return nil
}

func load(cfg config) (*decl.Document, error) {
	if cfg.desc != "" {
		return decl.LoadFile(cfg.desc)
	}
	return decl.LoadPackage(cfg.dir, cfg.types)
}

// outputPath picks the output file: the flag, else a name derived from
// the description file or the first enum, next to the input.
func outputPath(cfg config, doc *decl.Document) string {
	if cfg.output != "" {
		return cfg.output
	}
	if cfg.desc != "" {
		base := strings.TrimSuffix(filepath.Base(cfg.desc), filepath.Ext(cfg.desc))
		return filepath.Join(filepath.Dir(cfg.desc), base+"_valenum.go")
	}
	return filepath.Join(cfg.dir, strings.ToLower(doc.Enums[0].Name)+"_valenum.go")
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
