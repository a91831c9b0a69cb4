//go:build targ

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
	"github.com/toejough/targ"
	"github.com/toejough/targ/file"
	"github.com/toejough/targ/sh"
)

// Build builds the local jgmock binary.
func Build() error {
	fmt.Println("Building jgmock...")

	if err := os.MkdirAll("bin", 0o755); err != nil {
		return fmt.Errorf("failed to create bin directory: %w", err)
	}

	return sh.Run("go", "build", "-o", "bin/jgmock", "./jgmock")
}

// Check runs all checks & fixes on the code, in order of correctness.
func Check() error {
	fmt.Println("Checking...")

	return targ.Deps(
		Tidy,         // clean up the module dependencies
		FixImports,   // remove unused imports before anything else looks at the code
		Test,         // does our code work?
		ReorderDecls, // linter will yell about declaration order if not correct
		Lint,
	)
}

// CheckGenerated regenerates every mock and fails if any generated file changed, showing the
// difference.
func CheckGenerated() error {
	fmt.Println("Checking generated mocks are up to date...")

	before, err := readGenerated()
	if err != nil {
		return err
	}

	if err := targ.Deps(Generate); err != nil {
		return err
	}

	after, err := readGenerated()
	if err != nil {
		return err
	}

	stale := 0

	for name, content := range after {
		if before[name] == content {
			continue
		}

		stale++

		fmt.Println(textdiff.Unified(name+" (committed)", name+" (generated)", before[name], content))
	}

	if stale > 0 {
		return fmt.Errorf("%d generated file(s) were stale", stale)
	}

	fmt.Printf("All %d generated file(s) are up to date.\n", len(after))

	return nil
}

// Clean removes build artifacts.
func Clean() {
	fmt.Println("Cleaning...")

	_ = os.RemoveAll("bin")
	_ = os.Remove("coverage.out")
}

// FixImports fixes the imports of every file.
func FixImports() error {
	fmt.Println("Fixing imports...")
	return sh.Run("goimports", "-w", ".")
}

// Generate runs go generate on all packages using the locally-built jgmock binary.
func Generate() error {
	fmt.Println("Generating...")

	if err := targ.Deps(Build); err != nil {
		return err
	}

	binDir, err := filepath.Abs("bin")
	if err != nil {
		return fmt.Errorf("failed to get absolute path for bin: %w", err)
	}

	cmd := exec.Command("go", "generate", "./...")
	cmd.Env = append(os.Environ(), "PATH="+binDir+string(filepath.ListSeparator)+os.Getenv("PATH"))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// Lint lints the codebase.
func Lint() error {
	fmt.Println("Linting...")
	return sh.Run("golangci-lint", "run")
}

// Mutate runs the mutation tests.
func Mutate() error {
	fmt.Println("Running mutation tests...")

	if err := targ.Deps(TestForFail); err != nil {
		return err
	}

	return sh.Run("go", "test", "-timeout=6000s", "-tags=mutation", "-ooze.v", "./dev", "-run=TestMutation")
}

// ReorderDecls reorders declarations in Go files per conventions.
func ReorderDecls() error {
	fmt.Println("Reordering declarations...")

	files, err := sourceFiles()
	if err != nil {
		return err
	}

	reorderedCount := 0

	for _, name := range files {
		content, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}

		reordered, err := reorder.Source(string(content))
		if err != nil {
			fmt.Printf("Warning: failed to reorder %s: %v\n", name, err)

			continue
		}

		if string(content) == reordered {
			continue
		}

		if err := os.WriteFile(name, []byte(reordered), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}

		fmt.Printf("  Reordered: %s\n", name)

		reorderedCount++
	}

	fmt.Printf("Reordered %d file(s).\n", reorderedCount)

	return nil
}

// ReorderDeclsCheck reports the files that need reordering without modifying them.
func ReorderDeclsCheck() error {
	fmt.Println("Checking declaration order...")

	files, err := sourceFiles()
	if err != nil {
		return err
	}

	outOfOrder := 0

	for _, name := range files {
		content, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}

		reordered, err := reorder.Source(string(content))
		if err != nil {
			fmt.Printf("Warning: failed to reorder %s: %v\n", name, err)

			continue
		}

		if string(content) != reordered {
			outOfOrder++

			fmt.Println(textdiff.Unified(name+" (current)", name+" (reordered)", string(content), reordered))
		}
	}

	if outOfOrder > 0 {
		return fmt.Errorf("%d file(s) need reordering, run 'targ reorder-decls' to fix", outOfOrder)
	}

	fmt.Printf("All %d file(s) are correctly ordered.\n", len(files))

	return nil
}

// Test runs the unit tests with the race detector and coverage.
func Test() error {
	fmt.Println("Running unit tests...")

	if err := targ.Deps(Generate); err != nil {
		return err
	}

	return sh.Run(
		"go", "test",
		"-timeout=2m",
		"-race",
		"-count=1",
		"-coverprofile=coverage.out",
		"-coverpkg=./,./internal/...,./jgmock/...,./match/...,./stacktrace/...",
		"./...",
	)
}

// TestForFail runs the unit tests purely to find out whether any fail.
func TestForFail() error {
	fmt.Println("Running unit tests for overall pass/fail...")

	return sh.Run("go", "test", "-timeout=30s", "-failfast", "./...")
}

// Tidy tidies up go.mod.
func Tidy() error {
	fmt.Println("Tidying go.mod...")
	return sh.Run("go", "mod", "tidy")
}

// Watch re-runs Check whenever files change.
func Watch(ctx context.Context) error {
	fmt.Println("Watching...")

	return file.Watch(ctx, []string{"**/*.go"}, file.WatchOptions{}, func(changes file.ChangeSet) error {
		if !hasRelevantChanges(changes) {
			return nil
		}

		fmt.Println("Change detected...")

		targ.ResetDeps()

		if err := Check(); err != nil {
			fmt.Println("continuing to watch after check failure (see errors above)")
		} else {
			fmt.Println("continuing to watch after all checks passed!")
		}

		return nil
	})
}

// hasRelevantChanges filters out the files Check itself writes.
func hasRelevantChanges(changes file.ChangeSet) bool {
	allFiles := append(append(changes.Added, changes.Removed...), changes.Modified...)

	for _, f := range allFiles {
		if strings.Contains(f, "generated_") || strings.HasSuffix(f, "coverage.out") {
			continue
		}

		return true
	}

	return false
}

func isGeneratedFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 200)

	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return strings.Contains(string(buf[:n]), "DO NOT EDIT"), nil
}

// readGenerated returns the content of every generated_*.go file by path.
func readGenerated() (map[string]string, error) {
	contents := map[string]string{}

	err := filepath.WalkDir(".", func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "generated_") || filepath.Ext(path) != ".go" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		contents[path] = string(content)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect generated files: %w", err)
	}

	return contents, nil
}

// sourceFiles returns the hand-written Go files of the module.
func sourceFiles() ([]string, error) {
	var files []string

	err := filepath.WalkDir(".", func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path != "." && (strings.HasPrefix(entry.Name(), ".") || strings.HasPrefix(entry.Name(), "_")) {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) != ".go" || strings.HasPrefix(entry.Name(), "generated_") {
			return nil
		}

		generated, err := isGeneratedFile(path)
		if err != nil {
			return err
		}

		if !generated {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find Go files: %w", err)
	}

	return files, nil
}
