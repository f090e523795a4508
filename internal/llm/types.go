package llm

import (
	"context"
)

// Summarizer writes a short TL;DR for a day's notes and commits.
type Summarizer interface {
	Summarize(ctx context.Context, in DayDigest) (string, error)
}

// DayDigest is what a summarizer gets to see about the day.
type DayDigest struct {
	Date     string
	Sections []DigestSection
	Commits  []DigestRepo
}

type DigestSection struct {
	Title   string
	Bullets []string
}

type DigestRepo struct {
	Repo     string
	Subjects []string
}

func (d DayDigest) Empty() bool {
	return len(d.Sections) == 0 && len(d.Commits) == 0
}
