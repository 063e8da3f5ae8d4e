//go:build !windows

package script

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// WriteFile atomically replaces path with data: the pending file is synced
// before the rename, so readers see either the old or the new script.
func WriteFile(path string, data []byte) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("script: create pending file: %w", err)
	}
	defer func() { _ = pendingFile.Cleanup() }()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("script: write %s: %w", path, err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("script: replace %s: %w", path, err)
	}
	return nil
}
