package csvio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteMarker persists the last fully processed game ID, atomically.
func WriteMarker(path, gameID string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create checkpoint dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp marker: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.WriteString(gameID); err != nil {
		return fmt.Errorf("write marker: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp marker: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename marker into place: %w", err)
	}
	return nil
}

// ReadMarker returns the stored game ID, or "" when no marker exists.
func ReadMarker(path string) (string, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read marker %s: %w", path, err)
	}
	return strings.TrimSpace(string(b)), nil
}
