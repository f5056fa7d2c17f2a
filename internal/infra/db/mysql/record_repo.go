package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domain "github.com/xlhuang/ai-radar/internal/domain/profile"
)

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

const insertRecord = `
INSERT INTO profile_records
  (share_id, created_at, nickname,
   innovation_answer, collaboration_answer, leadership_answer, tech_acumen_answer,
   innovation_score, collaboration_score, leadership_score, tech_acumen_score,
   analysis, golden_sentence)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?);
`

// Append inserts one share record. Plain insert, no upsert: rows are never
// overwritten.
func (r *RecordRepository) Append(ctx context.Context, rec *domain.ShareRecord) error {
	_, err := r.db.ExecContext(ctx, insertRecord,
		string(rec.ShareID),
		rec.CreatedAt,
		stringOrDash(rec.Nickname),
		rec.Inputs.Innovation,
		rec.Inputs.Collaboration,
		rec.Inputs.Leadership,
		rec.Inputs.TechAcumen,
		rec.Scores.Innovation,
		rec.Scores.Collaboration,
		rec.Scores.Leadership,
		rec.Scores.TechAcumen,
		rec.Analysis,
		rec.GoldenSentence,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

const selectRecord = `
SELECT share_id, created_at, nickname,
       innovation_answer, collaboration_answer, leadership_answer, tech_acumen_answer,
       innovation_score, collaboration_score, leadership_score, tech_acumen_score,
       analysis, golden_sentence
FROM profile_records
WHERE share_id=?
LIMIT 1;
`

// FindByShareID returns the record matching the share identifier exactly.
func (r *RecordRepository) FindByShareID(ctx context.Context, id domain.ShareID) (*domain.ShareRecord, error) {
	var rec domain.ShareRecord
	var shareID string
	err := r.db.QueryRowContext(ctx, selectRecord, string(id)).Scan(
		&shareID,
		&rec.CreatedAt,
		&rec.Nickname,
		&rec.Inputs.Innovation,
		&rec.Inputs.Collaboration,
		&rec.Inputs.Leadership,
		&rec.Inputs.TechAcumen,
		&rec.Scores.Innovation,
		&rec.Scores.Collaboration,
		&rec.Scores.Leadership,
		&rec.Scores.TechAcumen,
		&rec.Analysis,
		&rec.GoldenSentence,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	rec.ShareID = domain.ShareID(shareID)
	return &rec, nil
}
