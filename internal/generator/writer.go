package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PostFilename is "<date>-<slug>.<ext>".
func PostFilename(day time.Time, slug, ext string) string {
	return fmt.Sprintf("%s-%s.%s", day.Format(DateLayout), slug, strings.TrimPrefix(ext, "."))
}

// WritePost writes content into dir, creating the directory when needed.
// An existing file with the same name is overwritten. It returns the absolute path.
func WritePost(dir, filename, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create posts directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write post: %w", err)
	}
	return path, nil
}
