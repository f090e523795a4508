package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	d := DayDigest{
		Date: "2024-01-02",
		Sections: []DigestSection{
			{Title: "Blog", Bullets: []string{"  - wrote a draft", "* fixed RSS"}},
		},
		Commits: []DigestRepo{
			{Repo: "site", Subjects: []string{"Add RSS feed"}},
		},
	}

	p := BuildPrompt(d)
	assert.Contains(t, p, "Summarize what I did on 2024-01-02.")
	assert.Contains(t, p, "[REDACTED]")
	assert.Contains(t, p, "## Blog\n- wrote a draft\n* fixed RSS\n")
	assert.Contains(t, p, "- [site] Add RSS feed\n")
}

func TestBuildPrompt_OmitsEmptyParts(t *testing.T) {
	p := BuildPrompt(DayDigest{Date: "2024-01-02"})
	assert.NotContains(t, p, "Notes:")
	assert.NotContains(t, p, "Commits:")
}

func TestNewSummarizer(t *testing.T) {
	s, err := NewSummarizer(SummarizerOptions{Provider: "none"})
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = NewSummarizer(SummarizerOptions{Provider: "gemini"})
	assert.Error(t, err)

	_, err = NewSummarizer(SummarizerOptions{Provider: "openai", Model: "gpt-4o-mini"})
	assert.Error(t, err, "missing api key")

	s, err = NewSummarizer(SummarizerOptions{APIKey: "sk-test", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAISummarizer{}, s)
}

func TestOpenAISummarizer_EmptyDigestSkipsCall(t *testing.T) {
	s, err := NewOpenAISummarizer("sk-test", "gpt-4o-mini", "http://127.0.0.1:1")
	require.NoError(t, err)

	out, err := s.Summarize(context.Background(), DayDigest{Date: "2024-01-02"})
	require.NoError(t, err)
	assert.Empty(t, out)
}
