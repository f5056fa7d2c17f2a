package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xlhuang/ai-radar/internal/application"
	domai "github.com/xlhuang/ai-radar/internal/domain/ai"
	domain "github.com/xlhuang/ai-radar/internal/domain/profile"
)

// Service implements the analysis pipeline use-cases: validate the form,
// call the model, parse/normalize, persist best-effort, build the chart.
// One model call per submission; retries are always a fresh user action.
type Service struct {
	AI        domai.Client
	Repo      domain.Repository    // nil when persistence is disabled
	Snapshots domain.SnapshotStore // nil when no artifact store is configured
	Clock     application.Clock
	Log       *zap.Logger
}

// GenerateCommand carries one form submission.
type GenerateCommand struct {
	Nickname string
	Inputs   domain.Inputs
}

// GenerateResult is what the presentation layer renders.
type GenerateResult struct {
	ShareID        string             `json:"share_id,omitempty"`
	Saved          bool               `json:"saved"`
	Nickname       string             `json:"nickname"`
	CreatedAt      time.Time          `json:"created_at"`
	Scores         domain.Scores      `json:"scores"`
	Analysis       string             `json:"analysis"`
	GoldenSentence string             `json:"golden_sentence"`
	Chart          domain.RadarSeries `json:"chart"`
}

// Generate runs the full pipeline for one submission.
func (s *Service) Generate(ctx context.Context, cmd GenerateCommand) (GenerateResult, error) {
	if err := cmd.Inputs.Validate(); err != nil {
		return GenerateResult{}, err
	}

	raw, err := s.AI.Analyze(ctx, cmd.Nickname, cmd.Inputs)
	if err != nil {
		return GenerateResult{}, err
	}

	res, err := domain.ParseAnalysis(raw)
	if err != nil {
		// Keep the raw text around for diagnosis; it is the only evidence.
		s.Log.Warn("unparseable model response", zap.String("raw", raw))
		return GenerateResult{}, err
	}

	rec := &domain.ShareRecord{
		CreatedAt:      s.Clock.Now(),
		ShareID:        domain.ShareID(uuid.New().String()),
		Nickname:       cmd.Nickname,
		Inputs:         cmd.Inputs,
		Scores:         res.Scores,
		Analysis:       res.Analysis,
		GoldenSentence: res.GoldenSentence,
	}

	saved := false
	if s.Repo != nil {
		if err := s.Repo.Append(ctx, rec); err != nil {
			// Best effort: the analysis is still rendered, just not shareable.
			s.Log.Warn("share record append failed",
				zap.String("share_id", string(rec.ShareID)), zap.Error(err))
		} else {
			saved = true
		}
	}

	return resultFromRecord(rec, saved), nil
}

// Replay rebuilds a stored result by share identifier without re-running the
// model.
func (s *Service) Replay(ctx context.Context, id domain.ShareID) (GenerateResult, error) {
	if s.Repo == nil {
		return GenerateResult{}, domain.ErrRecordNotFound
	}
	rec, err := s.Repo.FindByShareID(ctx, id)
	if err != nil {
		return GenerateResult{}, err
	}
	return resultFromRecord(rec, true), nil
}

// Snapshot uploads a JSON export of a stored result and returns its URL.
func (s *Service) Snapshot(ctx context.Context, id domain.ShareID) (string, error) {
	res, err := s.Replay(ctx, id)
	if err != nil {
		return "", err
	}
	if s.Snapshots == nil {
		return "", fmt.Errorf("%w: no snapshot store configured", domain.ErrStoreUnavailable)
	}
	data, err := json.Marshal(res)
	if err != nil {
		return "", err
	}
	url, err := s.Snapshots.Put(ctx, fmt.Sprintf("profiles/%s.json", id), data, "application/json")
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return url, nil
}

func resultFromRecord(rec *domain.ShareRecord, saved bool) GenerateResult {
	return GenerateResult{
		ShareID:        string(rec.ShareID),
		Saved:          saved,
		Nickname:       rec.Nickname,
		CreatedAt:      rec.CreatedAt,
		Scores:         rec.Scores,
		Analysis:       rec.Analysis,
		GoldenSentence: rec.GoldenSentence,
		Chart:          domain.BuildRadar(rec.Nickname, rec.Scores),
	}
}
