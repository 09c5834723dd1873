package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/configsnap/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_LoadError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A host file with a syntax error fails while loading.
	invalidHCL := `
		compilation {
			assembly_name = "Demo"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"generate", "--out", filepath.Join(tempDir, "out"), filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned the load error")
	require.Contains(t, runErr.Error(), "failed to parse", "The error message should contain the underlying reason.")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error for help")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"generate", "--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, args)

	// --- Assert ---
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "run() should return an ExitError when argument parsing fails")
	require.Equal(t, cli.CodeUsage, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_GenerateWritesSnapshots(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	hostPath := filepath.Join(tempDir, "host.yaml")
	host := "global_options:\n  build_property.PodNetEnableAnalyzerConfigSnapshot: \"True\"\n"
	require.NoError(t, os.WriteFile(hostPath, []byte(host), 0600))
	outDir := filepath.Join(tempDir, "out")

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, []string{"generate", "--out", outDir, hostPath})

	// --- Assert ---
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(outDir, "_AnalyzerConfigOptions.GlobalOptions.txt"))
	require.NoError(t, err)
	require.Equal(t, "// [build_property.PodNetEnableAnalyzerConfigSnapshot]  = \"True\"\n", string(got))
}
