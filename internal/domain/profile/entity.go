package profile

import (
	"time"
)

// ShareID identifies a stored analysis for replay links.
type ShareID string

// Dimension is one of the four scored axes.
type Dimension string

const (
	DimInnovation    Dimension = "innovation"
	DimCollaboration Dimension = "collaboration"
	DimLeadership    Dimension = "leadership"
	DimTechAcumen    Dimension = "tech_acumen"
)

// Dimensions lists the axes in fixed presentation order.
var Dimensions = []Dimension{DimInnovation, DimCollaboration, DimLeadership, DimTechAcumen}

// Inputs holds the four free-text answers from the form. Immutable once
// handed to the analysis client.
type Inputs struct {
	Innovation    string `json:"innovation"`
	Collaboration string `json:"collaboration"`
	Leadership    string `json:"leadership"`
	TechAcumen    string `json:"tech_acumen"`
}

// Scores value object, one integer per dimension, always within [0,100]
// after normalization.
type Scores struct {
	Innovation    int `json:"innovation"`
	Collaboration int `json:"collaboration"`
	Leadership    int `json:"leadership"`
	TechAcumen    int `json:"tech_acumen"`
}

// AnalysisResult is the canonical parsed model output.
type AnalysisResult struct {
	Scores         Scores `json:"scores"`
	Analysis       string `json:"analysis"`
	GoldenSentence string `json:"golden_sentence"`
}

// ShareRecord is the flattened row persisted once per successful analysis.
// Append-only; never updated or deleted.
type ShareRecord struct {
	CreatedAt      time.Time `json:"created_at"`
	ShareID        ShareID   `json:"share_id"`
	Nickname       string    `json:"nickname"`
	Inputs         Inputs    `json:"inputs"`
	Scores         Scores    `json:"scores"`
	Analysis       string    `json:"analysis"`
	GoldenSentence string    `json:"golden_sentence"`
}

// Result rebuilds the canonical analysis shape from a stored row.
func (r *ShareRecord) Result() AnalysisResult {
	return AnalysisResult{
		Scores:         r.Scores,
		Analysis:       r.Analysis,
		GoldenSentence: r.GoldenSentence,
	}
}
