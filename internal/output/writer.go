// Package output persists a season batch as a dated JSON file with a
// companion image directory.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/aniplanner/simulcast/internal/filesystem"
	"github.com/aniplanner/simulcast/internal/simulcast"
)

// Writer manages the year-named output directory layout
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at dir
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir}
}

// ImagesDir ensures and returns the images directory for a year.
func (w *Writer) ImagesDir(year int) (string, error) {
	dir := filepath.Join(w.dir, strconv.Itoa(year), "images")
	if err := filesystem.API().MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create images directory: %w", err)
	}
	return dir, nil
}

// WriteBatch serializes the batch as indented JSON, keeping non-ASCII
// characters literal, and writes it to
// <dir>/<year>/simulcast_<season>_<year>.json. An existing file is
// overwritten.
func (w *Writer) WriteBatch(batch *simulcast.Batch, seasonKey string, year int) (string, error) {
	yearDir := filepath.Join(w.dir, strconv.Itoa(year))
	if err := filesystem.API().MkdirAll(yearDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batch); err != nil {
		return "", fmt.Errorf("failed to encode batch: %w", err)
	}

	path := filepath.Join(yearDir, fmt.Sprintf("simulcast_%s_%d.json", seasonKey, year))
	if err := filesystem.API().WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}
