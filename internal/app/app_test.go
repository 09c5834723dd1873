package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/configsnap/internal/sink"
	"github.com/specialistvlad/configsnap/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enabledHCL = `
global_options = {
  "build_property.PodNetEnableAnalyzerConfigSnapshot" = "true"
  "build_property.RootNamespace" = "Demo"
}

compilation {
  assembly_name = "Demo"
}
`

type workspace struct {
	hostDir string
	outDir  string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	root := t.TempDir()
	ws := workspace{hostDir: filepath.Join(root, "host"), outDir: filepath.Join(root, "out")}
	require.NoError(t, os.MkdirAll(ws.hostDir, 0o755))
	return ws
}

func (ws workspace) write(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(ws.hostDir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func (ws workspace) config(t *testing.T) *Config {
	t.Helper()
	cfg, err := NewConfig(Config{HostPaths: []string{ws.hostDir}, OutDir: ws.outDir})
	require.NoError(t, err)
	return cfg
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{HostPaths: []string{"."}})
	require.NoError(t, err)
	assert.Equal(t, DefaultOutDir, cfg.OutDir)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, DefaultDebounce, cfg.Debounce)

	_, err = NewConfig(Config{})
	assert.ErrorContains(t, err, "host path is required")

	_, err = NewConfig(Config{HostPaths: []string{"."}, Workers: -1})
	assert.ErrorContains(t, err, "workers")

	_, err = NewConfig(Config{HostPaths: []string{"."}, LogLevel: "loud"})
	assert.ErrorContains(t, err, "invalid log-level")

	_, err = NewConfig(Config{HostPaths: []string{"."}, LogFormat: "xml"})
	assert.ErrorContains(t, err, "invalid log-format")
}

func TestLoader_MergesHCLAndYAML(t *testing.T) {
	ws := newWorkspace(t)
	ws.write(t, "a.hcl", `global_options = { a = "1" }`)
	ws.write(t, "b.yaml", "global_options: {b: '2'}\n")
	ws.write(t, "c.txt", "ignored")

	m, err := NewLoader().Load(context.Background(), ws.hostDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, m.GlobalOptions.Keys())
}

func TestApp_Generate(t *testing.T) {
	ws := newWorkspace(t)
	ws.write(t, "host.hcl", enabledHCL)

	a, logs := SetupAppTest(t, ws.config(t))

	report, err := a.Generate(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, snapshot.Hints, report.Written)

	got, err := os.ReadFile(filepath.Join(ws.outDir, sink.FileName(snapshot.HintCompilation)))
	require.NoError(t, err)
	assert.Contains(t, string(got), "// [AssemblyName]: Demo")
	assert.Contains(t, logs.String(), "Snapshots generated.")

	t.Run("second pass reuses every stage", func(t *testing.T) {
		report, err := a.Generate(context.Background())
		require.NoError(t, err)
		assert.Empty(t, report.Written)
		assert.Len(t, report.Unchanged, len(snapshot.Hints))

		for hint, n := range a.Generator().Formatted() {
			assert.Equal(t, int64(1), n, hint)
		}
	})

	t.Run("turning the gate off removes the snapshots", func(t *testing.T) {
		ws.write(t, "host.hcl", `global_options = { "build_property.PodNetEnableAnalyzerConfigSnapshot" = "false" }`)

		report, err := a.Generate(context.Background())
		require.NoError(t, err)
		assert.ElementsMatch(t, snapshot.Hints, report.Removed)

		entries, err := os.ReadDir(ws.outDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestApp_PropertiesFileEnablesGate(t *testing.T) {
	ws := newWorkspace(t)
	ws.write(t, "host.hcl", `global_options = { "build_property.RootNamespace" = "Demo" }`)
	propsPath := filepath.Join(filepath.Dir(ws.hostDir), "build.env")
	require.NoError(t, os.WriteFile(propsPath, []byte("PodNetEnableAnalyzerConfigSnapshot=TRUE\n"), 0o644))

	cfg := ws.config(t)
	cfg.PropertiesPath = propsPath
	a, _ := SetupAppTest(t, cfg)

	report, err := a.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.Written, len(snapshot.Hints))

	got, err := os.ReadFile(filepath.Join(ws.outDir, sink.FileName(snapshot.HintGlobalOptions)))
	require.NoError(t, err)
	assert.Contains(t, string(got), `[build_property.PodNetEnableAnalyzerConfigSnapshot]  = "TRUE"`)
}

func TestApp_Check(t *testing.T) {
	ws := newWorkspace(t)
	ws.write(t, "host.hcl", enabledHCL)
	a, _ := SetupAppTest(t, ws.config(t))

	var drift *sink.DriftError
	err := a.Check(context.Background())
	require.True(t, errors.As(err, &drift), "expected drift before generation, got %v", err)
	assert.Len(t, drift.Drifts, len(snapshot.Hints))

	_, err = a.Generate(context.Background())
	require.NoError(t, err)
	require.NoError(t, a.Check(context.Background()))

	ws.write(t, "host.hcl", enabledHCL+"\nadditional_text \"new.txt\" {}\n")
	err = a.Check(context.Background())
	require.True(t, errors.As(err, &drift))
	require.Len(t, drift.Drifts, 1)
	assert.Equal(t, snapshot.HintAdditionalTexts, drift.Drifts[0].Hint)
}

func TestApp_LoadError(t *testing.T) {
	ws := newWorkspace(t)
	ws.write(t, "host.hcl", `global_options = {`)
	a, _ := SetupAppTest(t, ws.config(t))

	_, err := a.Generate(context.Background())
	assert.ErrorContains(t, err, "failed to load host state")
}

func TestApp_WatchRegenerates(t *testing.T) {
	ws := newWorkspace(t)
	ws.write(t, "host.hcl", enabledHCL)
	cfg := ws.config(t)
	cfg.Debounce = 20 * time.Millisecond
	a, _ := SetupAppTest(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Watch(ctx) }()

	target := filepath.Join(ws.outDir, sink.FileName(snapshot.HintCompilation))
	require.Eventually(t, func() bool {
		_, err := os.Stat(target)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	// The watcher subscribes after the initial pass; keep rewriting until the
	// change is observed.
	updated := `global_options = { "build_property.PodNetEnableAnalyzerConfigSnapshot" = "true" }
compilation { assembly_name = "Renamed" }
`
	require.Eventually(t, func() bool {
		ws.write(t, "host.hcl", updated)
		got, err := os.ReadFile(target)
		return err == nil && strings.Contains(string(got), "// [AssemblyName]: Renamed")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
