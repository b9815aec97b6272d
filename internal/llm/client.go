package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Generator is the single call surface the pipeline needs from a language
// model: one prompt in, one completion out. Implementations must be safe
// for concurrent use; the pipeline issues one call per translation and one
// per narration attempt, with no retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client wraps the Anthropic SDK behind Generator.
type Client struct {
	client    *anthropic.Client
	model     string
	maxTokens int
}

// NewClient creates a Generator backed by Anthropic Claude or a compatible
// provider reachable through baseURL.
func NewClient(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = "claude-sonnet-4-6"
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: 1024,
	}
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.F(anthropic.Model(c.model)),
		MaxTokens: anthropic.F(int64(c.maxTokens)),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		}),
	})
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	logUsage(c.model, resp.Usage.InputTokens, resp.Usage.OutputTokens, time.Since(start).Milliseconds())

	var text string
	for _, block := range resp.Content {
		if b, ok := block.AsUnion().(anthropic.TextBlock); ok {
			text += b.Text
		}
	}
	return text, nil
}
