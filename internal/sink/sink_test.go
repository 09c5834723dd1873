package sink

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/configsnap/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSink struct{}

func (failingSink) AddSource(string, string) error { return errors.New("disk full") }

func TestPass_RejectsDuplicateHint(t *testing.T) {
	mem := NewMemory()
	pass := NewPass(mem)

	require.NoError(t, pass.AddSource(snapshot.HintParseOptions, "one"))
	err := pass.AddSource(snapshot.HintParseOptions, "two")
	require.ErrorIs(t, err, ErrDuplicateHint)

	text, ok := mem.Get(snapshot.HintParseOptions)
	require.True(t, ok)
	assert.Equal(t, "one", text, "the first registration must win")
}

func TestPass_WrapsSinkError(t *testing.T) {
	pass := NewPass(failingSink{})
	err := pass.AddSource(snapshot.HintCompilation, "x")
	assert.ErrorContains(t, err, "failed to register _Compilation")
	assert.ErrorContains(t, err, "disk full")

	// A failed registration does not consume the hint.
	assert.NotErrorIs(t, pass.AddSource(snapshot.HintCompilation, "x"), ErrDuplicateHint)
}

func TestMemory_KeepsRegistrationOrder(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.AddSource("b", "2"))
	require.NoError(t, mem.AddSource("a", "1"))
	require.NoError(t, mem.AddSource("b", "3"))

	assert.Equal(t, []string{"b", "a"}, mem.Hints())
	assert.Equal(t, []snapshot.Snapshot{{Hint: "b", Text: "3"}, {Hint: "a", Text: "1"}}, mem.Snapshots())

	mem.Reset()
	assert.Empty(t, mem.Hints())
}

func TestDir_Flush(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "out")
	dir := NewDir(root)

	require.NoError(t, dir.AddSource(snapshot.HintGlobalOptions, "global\n"))
	require.NoError(t, dir.AddSource(snapshot.HintCompilation, "comp\n"))
	report, err := dir.Flush(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{snapshot.HintGlobalOptions, snapshot.HintCompilation}, report.Written)

	data, err := os.ReadFile(filepath.Join(root, "_AnalyzerConfigOptions.GlobalOptions.txt"))
	require.NoError(t, err)
	assert.Equal(t, "global\n", string(data))

	t.Run("unchanged content is not rewritten", func(t *testing.T) {
		require.NoError(t, dir.AddSource(snapshot.HintGlobalOptions, "global\n"))
		require.NoError(t, dir.AddSource(snapshot.HintCompilation, "comp v2\n"))
		report, err := dir.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{snapshot.HintGlobalOptions}, report.Unchanged)
		assert.Equal(t, []string{snapshot.HintCompilation}, report.Written)
	})

	t.Run("unregistered hints are removed", func(t *testing.T) {
		report, err := dir.Flush(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{snapshot.HintGlobalOptions, snapshot.HintCompilation}, report.Removed)

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestDir_FlushLeavesForeignFiles(t *testing.T) {
	root := t.TempDir()
	foreign := filepath.Join(root, "README.md")
	require.NoError(t, os.WriteFile(foreign, []byte("keep"), 0o644))

	_, err := NewDir(root).Flush(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, foreign)
}

func TestCheck(t *testing.T) {
	root := t.TempDir()
	write := func(hint, text string) {
		require.NoError(t, os.WriteFile(filepath.Join(root, FileName(hint)), []byte(text), 0o644))
	}
	write(snapshot.HintGlobalOptions, "same\n")
	write(snapshot.HintParseOptions, "old\n")
	write(snapshot.HintSyntaxTrees, "stale\n")

	t.Run("reports every drift", func(t *testing.T) {
		got := NewMemory()
		require.NoError(t, got.AddSource(snapshot.HintGlobalOptions, "same\n"))
		require.NoError(t, got.AddSource(snapshot.HintParseOptions, "new\n"))
		require.NoError(t, got.AddSource(snapshot.HintCompilation, "fresh\n"))

		err := Check(root, got)
		var drift *DriftError
		require.ErrorAs(t, err, &drift)

		kinds := make(map[string]DriftKind)
		for _, d := range drift.Drifts {
			kinds[d.Hint] = d.Kind
		}
		assert.Equal(t, map[string]DriftKind{
			snapshot.HintParseOptions: DriftChanged,
			snapshot.HintSyntaxTrees:  DriftUnexpected,
			snapshot.HintCompilation:  DriftMissing,
		}, kinds)
		assert.Contains(t, err.Error(), "3 snapshot(s)")
		assert.Contains(t, err.Error(), "new")
	})

	t.Run("matching pass has no drift", func(t *testing.T) {
		got := NewMemory()
		require.NoError(t, got.AddSource(snapshot.HintGlobalOptions, "same\n"))
		require.NoError(t, got.AddSource(snapshot.HintParseOptions, "old\n"))
		require.NoError(t, got.AddSource(snapshot.HintSyntaxTrees, "stale\n"))
		assert.NoError(t, Check(root, got))
	})
}
