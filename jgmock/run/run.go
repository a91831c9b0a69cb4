// Package run implements the main logic for the jgmock tool in a testable way.
package run

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	detect "github.com/JohannGerellTobii/jg/jgmock/run/3_detect"
	generate "github.com/JohannGerellTobii/jg/jgmock/run/5_generate"
	output "github.com/JohannGerellTobii/jg/jgmock/run/6_output"
)

// Exported variables.
var (
	ErrNoPackage = errors.New("GOPACKAGE is not set, run jgmock through go generate")
)

// FileSystem interface for mocking.
type FileSystem interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// PackageLoader loads the DST files of a package by import path.
type PackageLoader interface {
	detect.PackageLoader
}

// Run executes the jgmock tool logic. It takes command-line arguments, an environment variable
// getter, a FileSystem for writing, a PackageLoader for parsing packages, and the writer
// progress is logged to. On success it writes the generated mock next to the go:generate
// directive that invoked it.
func Run(args []string, getEnv func(string) string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer) error {
	parsed, err := parseArgs(args, out)
	if errors.Is(err, arg.ErrHelp) {
		return nil
	}

	if err != nil {
		return err
	}

	logger := newLogger(out, parsed.Verbose)

	pkgName := getEnv("GOPACKAGE")
	if pkgName == "" {
		return ErrNoPackage
	}

	symbol, err := detect.Find(pkgLoader, parsed.Symbol, pkgName)
	if err != nil {
		return fmt.Errorf("cannot mock %s: %w", parsed.Symbol, err)
	}

	logger.Debug().
		Str("symbol", parsed.Symbol).
		Stringer("kind", symbol.Kind).
		Str("package", symbol.PkgPath).
		Int("methods", len(symbol.Methods)).
		Msg("symbol resolved")

	opts := generate.Options{
		PkgName:   pkgName,
		Name:      parsed.Name,
		Suffix:    parsed.Suffix,
		Reference: parsed.Reference,
		Proxy:     parsed.Proxy,
	}

	code, err := generate.Code(symbol, opts)
	if err != nil {
		return fmt.Errorf("cannot mock %s: %w", parsed.Symbol, err)
	}

	logger.Debug().Int("bytes", len(code)).Msg("code generated")

	return output.WriteGeneratedCode(code, generate.MockName(symbol, opts), pkgName, getEnv, fileSys, logger)
}

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Symbol    string `arg:"positional,required" help:"interface, function, or function type to mock (e.g. Store or store.Store)"`
	Name      string `arg:"--name"              help:"name of the generated mock (defaults to <Symbol>Mock for interfaces, Mock<Symbol> for functions)"`
	Suffix    string `arg:"--suffix"            help:"suffix appended to every generated identifier"`
	Reference string `arg:"--reference"         help:"import path of a package that already defines this function's mock"`
	Proxy     bool   `arg:"--proxy"             help:"generate a function forwarding to a connectable subject instead of a mock"`
	Verbose   bool   `arg:"-v,--verbose"        help:"log every generation stage"`
}

// Description is shown at the top of the help text.
func (cliArgs) Description() string {
	return "jgmock generates call-tracking mocks for use with github.com/JohannGerellTobii/jg."
}

func newLogger(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:          out,
		NoColor:      !isTerminal(out),
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	return zerolog.New(console).Level(level).With().Str("tool", "jgmock").Logger()
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// parseArgs parses command-line arguments into cliArgs. Help is written to out.
func parseArgs(args []string, out io.Writer) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "jgmock"}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(out)

		return cliArgs{}, err
	}

	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}
