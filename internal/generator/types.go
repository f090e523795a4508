package generator

import "time"

// Section is a "## " header of a memory document with the bullet lines of its body.
type Section struct {
	Title   string
	Bullets []string
}

// FrontMatter is the metadata block consumed by the static-site builder.
type FrontMatter struct {
	Title       string
	Description string
	PubDate     time.Time
	Author      string
	Tags        []string
	Draft       bool
}

// Post is a rendered-once draft: front matter plus the markdown parts of the body.
type Post struct {
	FrontMatter FrontMatter
	Heading     string
	Summary     string // optional TL;DR, omitted when empty
	Body        string // output of Compose
	Activity    []string
	Footer      string
}
