package database

import (
	"context"
	"testing"

	"github.com/nao1215/mbdg/internal/lookup"
	"github.com/nao1215/mbdg/internal/model"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)

	b := model.NewBuilder()
	b.Add(model.Entry{Traditional: "你好", Simplified: "你好", Pronunciation: "ni3 hao3", Definitions: []string{"hello", "hi"}})
	dict := b.Build("mbdg-dict.txt", "feedface")

	rec, err := NewRecorder(ctx, db, dict)
	if err != nil {
		t.Fatalf("failed to create recorder: %v", err)
	}

	svc := lookup.NewService(dict, lookup.WithRecorder(rec))
	svc.FormatLookup(ctx, "你好")
	svc.FormatLookup(ctx, "xyz")

	registered, err := db.GetDictionary(ctx, "feedface")
	if err != nil {
		t.Fatalf("failed to get dictionary: %v", err)
	}
	if registered == nil || registered.Entries != 1 {
		t.Errorf("expected registered dictionary with 1 entry, got %+v", registered)
	}

	records, err := db.RecentLookups(ctx, 0)
	if err != nil {
		t.Fatalf("failed to read lookups: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Query != "你好" || !records[1].Found {
		t.Errorf("unexpected first lookup: %+v", records[1])
	}
	if records[0].Query != "xyz" || records[0].Found {
		t.Errorf("unexpected second lookup: %+v", records[0])
	}
	if records[0].DictionaryDigest != "feedface" || records[0].Mode != string(lookup.ModeSimplified) {
		t.Errorf("unexpected record fields: %+v", records[0])
	}
}
