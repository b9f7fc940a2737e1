package database

import (
	"context"

	"github.com/nao1215/mbdg/internal/lookup"
	"github.com/nao1215/mbdg/internal/model"
)

// Recorder binds a HistoryDB to one dictionary so it can be handed to a
// lookup.Service as its lookup.Recorder.
type Recorder struct {
	db     *HistoryDB
	digest string
}

var _ lookup.Recorder = (*Recorder)(nil)

// NewRecorder registers dict in the history and returns a Recorder for it.
func NewRecorder(ctx context.Context, db *HistoryDB, dict *model.Dictionary) (*Recorder, error) {
	if err := db.RegisterDictionary(ctx, dict.Path, dict.Digest, dict.Len()); err != nil {
		return nil, err
	}
	return &Recorder{db: db, digest: dict.Digest}, nil
}

// Record stores result as a lookup made with mode.
func (r *Recorder) Record(ctx context.Context, mode lookup.Mode, result model.Result) error {
	return r.db.RecordLookup(ctx, &LookupRecord{
		Query:            result.Query,
		Found:            result.Found(),
		Mode:             mode.String(),
		DictionaryDigest: r.digest,
	})
}
