package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/xlhuang/ai-radar/internal/domain/profile"
)

func sampleRecord() *domain.ShareRecord {
	return &domain.ShareRecord{
		CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		ShareID:   "abc-123",
		Nickname:  "Alex",
		Inputs: domain.Inputs{
			Innovation:    "Built a new caching layer",
			Collaboration: "Led standup",
			Leadership:    "Reassigned tasks",
			TechAcumen:    "Excited about agents",
		},
		Scores:         domain.Scores{Innovation: 90, Collaboration: 75, Leadership: 60, TechAcumen: 85},
		Analysis:       "Strong profile.",
		GoldenSentence: "Ship it.",
	}
}

func TestAppendInsertsRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := sampleRecord()
	mock.ExpectExec("INSERT INTO profile_records").
		WithArgs("abc-123", rec.CreatedAt, "Alex",
			rec.Inputs.Innovation, rec.Inputs.Collaboration, rec.Inputs.Leadership, rec.Inputs.TechAcumen,
			90, 75, 60, 85,
			rec.Analysis, rec.GoldenSentence).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewRecordRepository(db)
	assert.NoError(t, repo.Append(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendWrapsStoreFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO profile_records").
		WillReturnError(errors.New("connection refused"))

	repo := NewRecordRepository(db)
	err = repo.Append(context.Background(), sampleRecord())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestFindByShareIDRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := sampleRecord()
	rows := sqlmock.NewRows([]string{
		"share_id", "created_at", "nickname",
		"innovation_answer", "collaboration_answer", "leadership_answer", "tech_acumen_answer",
		"innovation_score", "collaboration_score", "leadership_score", "tech_acumen_score",
		"analysis", "golden_sentence",
	}).AddRow("abc-123", rec.CreatedAt, "Alex",
		rec.Inputs.Innovation, rec.Inputs.Collaboration, rec.Inputs.Leadership, rec.Inputs.TechAcumen,
		90, 75, 60, 85,
		rec.Analysis, rec.GoldenSentence)
	mock.ExpectQuery("SELECT share_id").WithArgs("abc-123").WillReturnRows(rows)

	repo := NewRecordRepository(db)
	got, err := repo.FindByShareID(context.Background(), "abc-123")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestFindByShareIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT share_id").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"share_id"}))

	repo := NewRecordRepository(db)
	_, err = repo.FindByShareID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}
