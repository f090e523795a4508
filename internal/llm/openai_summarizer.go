package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAISummarizer calls the chat completions API through the official SDK.
type OpenAISummarizer struct {
	model   string
	opts    []option.RequestOption
	timeout time.Duration
}

func NewOpenAISummarizer(apiKey, model, baseURL string) (*OpenAISummarizer, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing; set summary.api_key or DAILYPOST_API_KEY")
	}
	if model == "" {
		return nil, errors.New("summary model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAISummarizer{
		model:   model,
		opts:    opts,
		timeout: 90 * time.Second,
	}, nil
}

func (s *OpenAISummarizer) Summarize(ctx context.Context, in DayDigest) (string, error) {
	if in.Empty() {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client := openai.NewClient(s.opts...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(BuildPrompt(in)),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
