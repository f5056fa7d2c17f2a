package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/xlhuang/ai-radar/internal/domain/profile"
)

func TestRowRoundTrip(t *testing.T) {
	rec := &domain.ShareRecord{
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

	row := recordToRow(rec)
	require.Len(t, row, rowWidth)

	got, err := rowToRecord(row)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRowToRecordCoercesStringScores(t *testing.T) {
	// The API returns cells as strings when the sheet formats them as text.
	row := []any{
		"2026-05-01T12:00:00Z", "abc-123", "Alex",
		"a", "b", "c", "d",
		"90", "75.0", "not-a-number", float64(85),
		"analysis", "slogan",
	}
	rec, err := rowToRecord(row)
	require.NoError(t, err)
	assert.Equal(t, domain.Scores{Innovation: 90, Collaboration: 75, Leadership: 0, TechAcumen: 85}, rec.Scores)
}

func TestRowToRecordRejectsShortRows(t *testing.T) {
	_, err := rowToRecord([]any{"ts", "id"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
