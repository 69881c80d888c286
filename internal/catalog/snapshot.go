package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/appnotresponding/rumbo/pkg/diff"
	rumboerrors "github.com/appnotresponding/rumbo/pkg/errors"
)

const snapshotPerm = 0o644

// Check compares the plain catalog against the snapshot stored at path. A
// mismatch returns a *errors.SnapshotError carrying a unified diff.
func Check(path string, opts Options) error {
	log := opts.Logger.Component("catalog").WithFields(map[string]any{"snapshot": path})

	stored, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("snapshot %s does not exist, run with --update to create it: %w", path, err)
		}
		return fmt.Errorf("read snapshot %s: %w", path, err)
	}

	rendered := Plain(opts)
	if delta := diff.Lines(string(stored), rendered, path, "render"); delta != "" {
		log.Warn("snapshot mismatch")
		return rumboerrors.NewSnapshotError(path, delta)
	}

	log.Debug("snapshot matches")
	return nil
}

// Update writes the plain catalog to path, creating parent directories. It
// reports whether the stored content changed.
func Update(path string, opts Options) (bool, error) {
	log := opts.Logger.Component("catalog").WithFields(map[string]any{"snapshot": path})
	rendered := Plain(opts)

	if stored, err := os.ReadFile(path); err == nil && string(stored) == rendered {
		log.Debug("snapshot already current")
		return false, nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(rendered), snapshotPerm); err != nil {
		return false, fmt.Errorf("write snapshot %s: %w", path, err)
	}

	log.Info("snapshot updated")
	return true, nil
}
