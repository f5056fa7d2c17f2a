package ai

import (
	"context"

	"github.com/xlhuang/ai-radar/internal/domain/profile"
)

// Client is the port to the external chat-completion service. Analyze issues
// one stateless call and returns the raw text of the model's reply.
type Client interface {
	Analyze(ctx context.Context, nickname string, in profile.Inputs) (string, error)
}
