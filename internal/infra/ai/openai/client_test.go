package openai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domai "github.com/xlhuang/ai-radar/internal/domain/ai"
	"github.com/xlhuang/ai-radar/internal/domain/profile"
)

var testInputs = profile.Inputs{
	Innovation:    "Prototyped a new ranking model",
	Collaboration: "Paired daily with the data team",
	Leadership:    "Ran the incident retro",
	TechAcumen:    "Following the agent tooling space",
}

func TestAnalyzeWithoutKeyReturnsNotConfigured(t *testing.T) {
	c := NewClient("", "gpt-4o-mini", 0, 0)

	_, err := c.Analyze(context.Background(), "Alex", testInputs)
	require.Error(t, err)
	assert.ErrorIs(t, err, domai.ErrNotConfigured)
}

func TestAnalyzeTreatsBlankKeyAsMissing(t *testing.T) {
	c := NewClient("   ", "gpt-4o-mini", 0, 0)

	_, err := c.Analyze(context.Background(), "Alex", testInputs)
	assert.ErrorIs(t, err, domai.ErrNotConfigured)
}

func TestNewClientAppliesDefaults(t *testing.T) {
	c := NewClient("sk-test", "", 0, 0)

	assert.Equal(t, defaultMaxTokens, c.maxTokens)
	assert.Equal(t, defaultTimeout, c.timeout)
}

func TestNewClientKeepsExplicitLimits(t *testing.T) {
	c := NewClient("sk-test", "gpt-4o-mini", 2000, 30*time.Second)

	assert.Equal(t, 2000, c.maxTokens)
	assert.Equal(t, 30*time.Second, c.timeout)
}
