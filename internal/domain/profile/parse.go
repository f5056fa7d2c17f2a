package profile

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Fallback texts so presentation never renders a blank analysis or slogan.
const (
	fallbackAnalysis = "The answers show a balanced profile across all four dimensions. Provide more detail for a sharper analysis."
	fallbackSlogan   = "Potential in progress."
)

// Models are not contractually guaranteed to return only JSON; responses are
// often wrapped in code fences or prose. Greedy so nested braces stay inside
// the span.
var jsonSpan = regexp.MustCompile(`(?s)\{.*\}`)

// rawResult mirrors the document the model is instructed to emit. Score
// values are decoded loosely because the model sometimes quotes numbers or
// drops keys.
type rawResult struct {
	Scores         map[string]any `json:"scores"`
	Analysis       string         `json:"analysis"`
	GoldenSentence string         `json:"golden_sentence"`
}

// ParseAnalysis parses raw model text into a normalized result. It tries a
// direct JSON parse first, then the first {...} span in the text, and returns
// ErrMalformedResponse when both fail. Normalization never fails: scores
// default to 0 and are clamped to [0,100], text fields fall back to fixed
// strings.
func ParseAnalysis(text string) (AnalysisResult, error) {
	var raw rawResult
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		span := jsonSpan.FindString(text)
		if span == "" {
			return AnalysisResult{}, fmt.Errorf("%w: no JSON object in response", ErrMalformedResponse)
		}
		if err := json.Unmarshal([]byte(span), &raw); err != nil {
			return AnalysisResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}

	res := AnalysisResult{
		Scores: Scores{
			Innovation:    coerceScore(raw.Scores[string(DimInnovation)]),
			Collaboration: coerceScore(raw.Scores[string(DimCollaboration)]),
			Leadership:    coerceScore(raw.Scores[string(DimLeadership)]),
			TechAcumen:    coerceScore(raw.Scores[string(DimTechAcumen)]),
		},
		Analysis:       strings.TrimSpace(raw.Analysis),
		GoldenSentence: strings.TrimSpace(raw.GoldenSentence),
	}
	if res.Analysis == "" {
		res.Analysis = fallbackAnalysis
	}
	if res.GoldenSentence == "" {
		res.GoldenSentence = fallbackSlogan
	}
	return res, nil
}

// coerceScore converts a loosely-typed score cell to an int clamped to
// [0,100]. Anything absent or non-coercible becomes 0.
func coerceScore(v any) int {
	var n int
	switch t := v.(type) {
	case float64:
		n = int(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		n = int(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		n = int(f)
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
