package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	domai "github.com/xlhuang/ai-radar/internal/domain/ai"
	"github.com/xlhuang/ai-radar/internal/domain/profile"
	"github.com/xlhuang/ai-radar/internal/infra/ai/prompt"
)

const (
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 1000
	defaultTimeout   = 60 * time.Second
)

type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

// NewClient builds an analysis client. An empty api key is tolerated here and
// rejected on the first Analyze call, before any network I/O. Zero maxTokens
// or timeout fall back to the defaults.
func NewClient(apiKey, model string, maxTokens int, timeout time.Duration) *Client {
	var api *openai.Client
	if strings.TrimSpace(apiKey) != "" {
		api = openai.NewClient(apiKey)
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{api: api, model: model, maxTokens: maxTokens, timeout: timeout}
}

// Analyze issues one chat completion and returns the raw message content.
// Every call is stateless; there is no streaming and no retry.
func (c *Client) Analyze(ctx context.Context, nickname string, in profile.Inputs) (string, error) {
	if c.api == nil {
		return "", domai.ErrNotConfigured
	}
	model := c.model
	if model == "" {
		model = defaultModel
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: 0.7,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.SystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.UserPrompt(nickname, in)},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = c.maxTokens
	} else {
		req.MaxTokens = c.maxTokens
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domai.ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", domai.ErrUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}
