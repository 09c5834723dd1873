package sink

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/configsnap/internal/snapshot"
)

// DriftKind classifies a mismatch between a pass and a snapshot directory.
type DriftKind string

const (
	DriftMissing    DriftKind = "missing"    // generated, but no file on disk
	DriftUnexpected DriftKind = "unexpected" // file on disk, but not generated
	DriftChanged    DriftKind = "changed"
)

// Drift is one mismatching hint.
type Drift struct {
	Hint string
	Kind DriftKind
	Diff string // -want +got, only for DriftChanged
}

// DriftError is returned by Check when the pass does not match the directory.
type DriftError struct {
	Dir    string
	Drifts []Drift
}

// Error implements the error interface for DriftError.
func (e *DriftError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d snapshot(s) in %s are out of date:", len(e.Drifts), e.Dir)
	for _, d := range e.Drifts {
		fmt.Fprintf(&sb, "\n  %s: %s", d.Hint, d.Kind)
		if d.Diff != "" {
			sb.WriteString("\n")
			sb.WriteString(d.Diff)
		}
	}
	return sb.String()
}

// Check compares the artifacts in got with the files in dir for every known
// hint. It returns a *DriftError describing each mismatch, or nil.
func Check(dir string, got *Memory) error {
	var drifts []Drift
	for _, hint := range snapshot.Hints {
		path := filepath.Join(dir, FileName(hint))
		want, err := os.ReadFile(path)
		onDisk := err == nil
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		text, generated := got.Get(hint)
		switch {
		case generated && !onDisk:
			drifts = append(drifts, Drift{Hint: hint, Kind: DriftMissing})
		case !generated && onDisk:
			drifts = append(drifts, Drift{Hint: hint, Kind: DriftUnexpected})
		case generated && onDisk:
			if diff := cmp.Diff(string(want), text); diff != "" {
				drifts = append(drifts, Drift{Hint: hint, Kind: DriftChanged, Diff: diff})
			}
		}
	}

	if len(drifts) == 0 {
		return nil
	}
	return &DriftError{Dir: dir, Drifts: drifts}
}
