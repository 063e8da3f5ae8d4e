//go:build windows

package script

import (
	"fmt"
	"os"
)

// WriteFile replaces path with data. renameio has no Windows support.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("script: write %s: %w", path, err)
	}
	return nil
}
