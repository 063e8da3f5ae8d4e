package clock

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SourceDir is the directory, relative to the build root, holding the
// per-device PLL frequency files.
const SourceDir = "src"

// FrequencyPath returns the PLL frequency file for device under dir.
// An empty dir resolves relative to the current working directory.
func FrequencyPath(dir, device string) string {
	return filepath.Join(dir, SourceDir, device+"_pll_freq")
}

// ReadFrequency reads the PLL frequency in MHz from the first line of path.
// Lines after the first are ignored.
func ReadFrequency(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrResourceNotFound, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); errors.Is(err, bufio.ErrTooLong) {
			return 0, fmt.Errorf("%w: %s: %v", ErrMalformedInput, path, err)
		} else if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrResourceNotFound, path, err)
		}
		return 0, fmt.Errorf("%w: %s: file is empty", ErrMalformedInput, path)
	}

	mhz, err := ParseFrequency(scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return mhz, nil
}

// ParseFrequency parses a single line holding a base-10 integer, ignoring
// surrounding whitespace.
func ParseFrequency(line string) (int, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty frequency line", ErrMalformedInput)
	}
	mhz, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: frequency %q is not an integer", ErrMalformedInput, trimmed)
	}
	return mhz, nil
}
