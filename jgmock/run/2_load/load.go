// Package load parses Go packages into DST without type checking.
package load

import (
	"errors"
	"fmt"
	"go/build"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// Dir resolves importPath to a directory. "." is the working directory, which is where
// go:generate runs the tool. A bare name that matches a subdirectory holding Go files is that
// subdirectory, so a local package may shadow a standard library one.
func Dir(importPath string) (string, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	if importPath == "." {
		return workDir, nil
	}

	if !strings.Contains(importPath, "/") && hasGoFiles(filepath.Join(workDir, importPath)) {
		return filepath.Join(workDir, importPath), nil
	}

	pkg, err := build.Import(importPath, workDir, build.FindOnly)
	if err != nil {
		return "", fmt.Errorf("failed to find package %q: %w", importPath, err)
	}

	return pkg.Dir, nil
}

// PackageDST loads a package by import path and returns its DST files and FileSet.
// Test files are included only for the working directory package, where the go:generate
// directive lives. Files that fail to parse are skipped.
func PackageDST(importPath string) ([]*dst.File, *token.FileSet, error) {
	dir, err := Dir(importPath)
	if err != nil {
		return nil, nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	includeTests := importPath == "."
	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)
	files := make([]*dst.File, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}

		if !includeTests && strings.HasSuffix(name, "_test.go") {
			continue
		}

		file, err := dec.ParseFile(filepath.Join(dir, name), nil, 0)
		if err != nil {
			continue
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, nil, fmt.Errorf("%w: no parsable .go files in %s", errNoPackagesFound, dir)
	}

	return files, fset, nil
}

// unexported variables.
var (
	errNoPackagesFound = errors.New("no packages found")
)

func hasGoFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".go") {
			return true
		}
	}

	return false
}
