package generator

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// PostMeta mirrors the front matter keys written by RenderPost.
type PostMeta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	PubDate     string   `yaml:"pubDate"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
	Draft       bool     `yaml:"draft"`
}

// ParsePost splits a rendered post into its metadata and markdown body.
func ParsePost(doc string) (PostMeta, string, error) {
	var meta PostMeta
	body, err := frontmatter.MustParse(strings.NewReader(doc), &meta)
	if err != nil {
		return PostMeta{}, "", fmt.Errorf("parse front matter: %w", err)
	}
	return meta, string(body), nil
}
