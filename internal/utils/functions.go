package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

var sizeSuffixes = map[float64][]string{
	1000: {"KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"},
	1024: {"KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"},
}

// ApproximateSize converts a byte count to a human-readable string with one
// decimal digit, using multiples of 1024 when binary is set and 1000 otherwise.
func ApproximateSize(size float64, binary bool) (string, error) {
	if size < 0 {
		return "", ErrNegativeSize
	}
	multiple := 1000.0
	if binary {
		multiple = 1024.0
	}
	for _, suffix := range sizeSuffixes[multiple] {
		size /= multiple
		if size < multiple {
			return fmt.Sprintf("%.1f%s", size, suffix), nil
		}
	}
	return "", ErrSizeTooLarge
}

// HumanSize is ApproximateSize in binary units for display code; values it
// cannot format are printed as raw byte counts.
func HumanSize(size float64) string {
	s, err := ApproximateSize(size, true)
	if err != nil {
		return fmt.Sprintf("%.0fB", size)
	}
	return s
}

// CleanTemp removes partial download files (<name>.<random>.tmp) left in dir
// by aborted downloads and returns the removed paths.
func CleanTemp(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var removed []string
	for _, entry := range entries {
		if entry.IsDir() || !TempFileRegex.MatchString(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("error removing %s: %w", path, err)
		}
		removed = append(removed, path)
	}
	return removed, nil
}

// TempPattern is the os.CreateTemp pattern used for a download whose
// provisional name is name.
func TempPattern(name string) string {
	return name + ".*" + TempSuffix
}
