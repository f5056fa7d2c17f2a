package sheets

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	domain "github.com/xlhuang/ai-radar/internal/domain/profile"
)

// Column order of one record row in the worksheet:
// timestamp, share id, nickname, four answers, four scores, analysis, slogan.
const (
	rowWidth   = 13
	rangeA2M   = "!A:M"
	timeLayout = time.RFC3339
)

// Store persists share records as flat rows in one worksheet. Consistency is
// whatever the Sheets API provides; lookups are a linear scan over the share-ID
// column.
type Store struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetName     string
}

// New builds a Sheets-backed store from a service-account credential file.
func New(ctx context.Context, spreadsheetID, sheetName, credentialsFile string) (*Store, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read sheets credentials: %w", err)
	}
	conf, err := google.JWTConfigFromJSON(data, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse sheets credentials: %w", err)
	}
	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, err
	}
	if sheetName == "" {
		sheetName = "records"
	}
	return &Store{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}, nil
}

func (s *Store) Append(ctx context.Context, rec *domain.ShareRecord) error {
	vr := &sheetsapi.ValueRange{Values: [][]any{recordToRow(rec)}}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.sheetName+rangeA2M, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Store) FindByShareID(ctx context.Context, id domain.ShareID) (*domain.ShareRecord, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, s.sheetName+rangeA2M).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	for _, row := range resp.Values {
		if len(row) > 1 && cellString(row[1]) == string(id) {
			return rowToRecord(row)
		}
	}
	return nil, domain.ErrRecordNotFound
}

// recordToRow flattens a record into the fixed column order.
func recordToRow(rec *domain.ShareRecord) []any {
	return []any{
		rec.CreatedAt.Format(timeLayout),
		string(rec.ShareID),
		rec.Nickname,
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
	}
}

// rowToRecord resolves a flat sheet row back into the canonical record shape.
// This boundary is the only place that knows about the flat layout; score
// cells may come back as strings or numbers depending on cell formatting.
func rowToRecord(row []any) (*domain.ShareRecord, error) {
	if len(row) < rowWidth {
		return nil, fmt.Errorf("%w: row has %d of %d columns", domain.ErrStoreUnavailable, len(row), rowWidth)
	}
	rec := &domain.ShareRecord{
		ShareID:  domain.ShareID(cellString(row[1])),
		Nickname: cellString(row[2]),
		Inputs: domain.Inputs{
			Innovation:    cellString(row[3]),
			Collaboration: cellString(row[4]),
			Leadership:    cellString(row[5]),
			TechAcumen:    cellString(row[6]),
		},
		Scores: domain.Scores{
			Innovation:    cellInt(row[7]),
			Collaboration: cellInt(row[8]),
			Leadership:    cellInt(row[9]),
			TechAcumen:    cellInt(row[10]),
		},
		Analysis:       cellString(row[11]),
		GoldenSentence: cellString(row[12]),
	}
	if ts, err := time.Parse(timeLayout, cellString(row[0])); err == nil {
		rec.CreatedAt = ts
	}
	return rec, nil
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func cellInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case float64:
		return int(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return int(f)
	default:
		return 0
	}
}
