// Package memory loads the daily notes document a post is drafted from.
//
// A memory file lives at <dir>/<YYYY-MM-DD>.md. It may start with a YAML
// front matter block; its tags are carried over to the post and the block
// itself is stripped before the text reaches the composer.
package memory

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/frontmatter"
)

var ErrNotFound = errors.New("memory file not found")

// Meta is the optional front matter of a memory file.
type Meta struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// Document is a memory file's text with its front matter removed.
type Document struct {
	Path string
	Text string
	Meta Meta
}

// PathFor returns the memory file path for a YYYY-MM-DD date.
func PathFor(dir, date string) string {
	return filepath.Join(dir, date+".md")
}

// Load reads the memory file for date. A missing file yields an error wrapping ErrNotFound.
func Load(dir, date string) (*Document, error) {
	path := PathFor(dir, date)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read memory file: %w", err)
	}

	doc := Parse(raw)
	doc.Path = path
	return doc, nil
}

// Parse separates front matter from the memory text. Malformed front matter
// leaves the text untouched.
func Parse(raw []byte) *Document {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return &Document{Text: string(raw)}
	}
	return &Document{Text: string(body), Meta: meta}
}
