// Package output writes generated mocks next to the go:generate directive.
package output

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/toejough/go-reorder"
)

// Writer interface for writing generated code.
type Writer interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// FileName returns generated_<mockName>.go, or generated_<mockName>_test.go when the directive
// is in a test package or a _test.go file.
func FileName(mockName, pkgName, goFile string) string {
	base := strings.TrimSuffix(strings.TrimSuffix(mockName, ".go"), "_test")

	if strings.HasSuffix(pkgName, "_test") || strings.HasSuffix(goFile, "_test.go") {
		return "generated_" + base + "_test.go"
	}

	return "generated_" + base + ".go"
}

// WriteGeneratedCode orders the declarations of code and writes it to FileName. A failure to
// reorder is logged and the code is written as generated.
func WriteGeneratedCode(
	code, mockName, pkgName string, getEnv func(string) string, fileWriter Writer, logger zerolog.Logger,
) error {
	const generatedFilePermissions = 0o600

	filename := FileName(mockName, pkgName, getEnv("GOFILE"))

	reordered, err := reorderSource(code)
	if err != nil {
		logger.Warn().Err(err).Str("file", filename).Msg("failed to reorder declarations")

		reordered = code
	}

	err = fileWriter.WriteFile(filename, []byte(reordered), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}

	logger.Info().Str("file", filename).Msg("written successfully")

	return nil
}

// reorderSource reorders code that parses. reorder.Source panics on some unparsable input.
func reorderSource(code string) (string, error) {
	_, err := parser.ParseFile(token.NewFileSet(), "", code, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("failed to parse generated code: %w", err)
	}

	return reorder.Source(code)
}
