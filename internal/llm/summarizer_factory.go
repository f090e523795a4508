package llm

import (
	"fmt"
	"strings"
)

type SummarizerOptions struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// NewSummarizer returns nil for the "none" provider.
func NewSummarizer(opts SummarizerOptions) (Summarizer, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = "openai"
	}

	switch provider {
	case "none", "off":
		return nil, nil
	case "openai":
		s, err := NewOpenAISummarizer(opts.APIKey, opts.Model, opts.BaseURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported summarizer provider: %s", opts.Provider)
	}
}
