package sink

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/specialistvlad/configsnap/internal/ctxlog"
	"github.com/specialistvlad/configsnap/internal/snapshot"
)

// FileExtension is appended to a hint name to form its file name.
const FileExtension = ".txt"

// FileName returns the file an artifact registered under hint is stored in.
func FileName(hint string) string {
	return hint + FileExtension
}

// FlushReport lists what a Flush did, by hint name.
type FlushReport struct {
	Written   []string
	Unchanged []string
	Removed   []string
}

// Dir is a Sink that buffers one pass and mirrors it into a directory.
type Dir struct {
	root    string
	pending *Memory
}

// NewDir creates a directory sink rooted at root. The directory is created
// on the first Flush.
func NewDir(root string) *Dir {
	return &Dir{root: root, pending: NewMemory()}
}

// Root returns the directory the sink writes to.
func (d *Dir) Root() string {
	return d.root
}

// AddSource implements Sink.
func (d *Dir) AddSource(hint, text string) error {
	return d.pending.AddSource(hint, text)
}

// Flush writes every buffered artifact whose content differs from the file on
// disk, then removes the files of known hints that were not registered in
// this pass. The buffer is cleared afterwards.
func (d *Dir) Flush(ctx context.Context) (*FlushReport, error) {
	logger := ctxlog.FromContext(ctx)
	defer d.pending.Reset()

	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", d.root, err)
	}

	report := &FlushReport{}
	registered := make(map[string]struct{})
	for _, snap := range d.pending.Snapshots() {
		registered[snap.Hint] = struct{}{}
		path := filepath.Join(d.root, FileName(snap.Hint))

		existing, err := os.ReadFile(path)
		if err == nil && string(existing) == snap.Text {
			report.Unchanged = append(report.Unchanged, snap.Hint)
			continue
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return report, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := os.WriteFile(path, []byte(snap.Text), 0o644); err != nil {
			return report, fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Debug("Snapshot written.", "hint", snap.Hint, "path", path)
		report.Written = append(report.Written, snap.Hint)
	}

	for _, hint := range snapshot.Hints {
		if _, ok := registered[hint]; ok {
			continue
		}
		path := filepath.Join(d.root, FileName(hint))
		err := os.Remove(path)
		if err == nil {
			logger.Debug("Stale snapshot removed.", "hint", hint, "path", path)
			report.Removed = append(report.Removed, hint)
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return report, fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	logger.Debug("Output directory flushed.",
		"written", len(report.Written),
		"unchanged", len(report.Unchanged),
		"removed", len(report.Removed),
	)
	return report, nil
}
