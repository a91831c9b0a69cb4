// jgmock is a tool to generate call-tracking mocks for github.com/JohannGerellTobii/jg.
// Install it with `go install github.com/JohannGerellTobii/jg/jgmock@latest` and add a
// `//go:generate jgmock <symbol>` comment next to the code that needs the mock. The symbol is
// an interface, a function, or a function type, qualified by its package name when it is
// declared elsewhere. The mock is written to generated_<name>.go (or _test.go) in the package
// holding the directive.
package main

import (
	"fmt"
	"go/token"
	"os"

	"github.com/dave/dst"

	"github.com/JohannGerellTobii/jg/jgmock/run"
	load "github.com/JohannGerellTobii/jg/jgmock/run/2_load"
)

// main is the entry point of the jgmock tool.
func main() {
	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, &realPackageLoader{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements FileSystem using os package.
type realFileSystem struct{}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements PackageLoader using direct DST parsing.
type realPackageLoader struct{}

// Load loads a package by import path and returns its DST files and FileSet.
func (pl *realPackageLoader) Load(importPath string) ([]*dst.File, *token.FileSet, error) {
	files, fset, err := load.PackageDST(importPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	return files, fset, nil
}
