package aco

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// SanitizeFilename returns name with the .aco extension enforced.
// An empty name is replaced with one derived from now.
func SanitizeFilename(name string, now time.Time) string {
	if name == "" {
		name = "aco-" + now.Format("20060102-150405")
	}
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	return name
}

// WriteFile encodes colors into the file named by SanitizeFilename(name) and returns that path.
// On failure the partially written file is left in place.
func WriteFile(name string, colors []ColorEntry) (string, error) {
	path := SanitizeFilename(name, time.Now())

	file, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("creating %s: %w", path, err)
	}

	encodeErr := Encode(file, colors)
	closeErr := file.Close()
	if encodeErr != nil {
		return path, encodeErr
	}
	if closeErr != nil {
		return path, fmt.Errorf("%w: closing %s: %w", ErrParse, path, closeErr)
	}
	return path, nil
}

// ReadFile decodes the color table stored at path.
func ReadFile(path string) ([]ColorEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	return Decode(file)
}
