package lexicon

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/constants"
	"github.com/veridoc/ocr-review/internal/common"
	"github.com/veridoc/ocr-review/internal/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCorrection(original, corrected string) entity.Correction {
	return entity.Correction{
		ID:            uuid.New(),
		DocumentID:    uuid.New(),
		OriginalText:  original,
		CorrectedText: corrected,
		Author:        "analyst1",
		CreatedAt:     time.Now(),
	}
}

type fakeLog struct {
	n            int
	err          error
	calls        int
	gotOriginal  string
	gotCorrected string
	gotScope     string
}

func (f *fakeLog) CountPair(_ context.Context, originalText, correctedText, scope string) (int, error) {
	f.calls++
	f.gotOriginal = originalText
	f.gotCorrected = correctedText
	f.gotScope = scope
	if f.err != nil {
		return 0, f.err
	}
	return f.n, nil
}

type fakeStore struct {
	existing    *entity.LexiconEntry
	getErr      error
	upsertErr   error
	upsertCalls int
	gotInitial  int
}

func (f *fakeStore) Get(_ context.Context, misspelled, scope string) (*entity.LexiconEntry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.existing == nil || f.existing.Misspelled != misspelled || f.existing.Scope != scope {
		return nil, common.ErrNotFound
	}
	return f.existing, nil
}

func (f *fakeStore) Upsert(_ context.Context, misspelled, corrected, scope string, initialFrequency int) (*entity.LexiconEntry, error) {
	f.upsertCalls++
	f.gotInitial = initialFrequency
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	entry := &entity.LexiconEntry{
		ID:         uuid.New(),
		Misspelled: misspelled,
		Corrected:  corrected,
		Scope:      scope,
		Frequency:  initialFrequency,
	}
	if f.existing != nil {
		entry.Frequency = f.existing.Frequency + 1
	}
	return entry, nil
}

func newTestLearner(log *fakeLog, store *fakeStore, cfg common.LexiconConfig) *Learner {
	return NewLearner(log, store, cfg, testLogger())
}

func TestLearner_Observe_BelowThreshold(t *testing.T) {
	log := &fakeLog{n: 1}
	store := &fakeStore{}
	l := newTestLearner(log, store, common.LexiconConfig{LearningThreshold: 2})

	entry, _, err := l.Observe(context.Background(), testCorrection("Teh", "The"), "invoice")
	if err != nil {
		t.Fatalf("Observe() error = %v", err)
	}
	if entry != nil {
		t.Errorf("entry = %+v, want nil below threshold", entry)
	}
	if store.upsertCalls != 0 {
		t.Errorf("Upsert called %d times, want 0", store.upsertCalls)
	}
}

func TestLearner_Observe_PromotesAtThreshold(t *testing.T) {
	log := &fakeLog{n: 2}
	store := &fakeStore{}
	l := newTestLearner(log, store, common.LexiconConfig{LearningThreshold: 2})

	entry, overwrote, err := l.Observe(context.Background(), testCorrection("Teh", "The"), "invoice")
	if err != nil {
		t.Fatalf("Observe() error = %v", err)
	}
	if entry == nil {
		t.Fatal("entry = nil, want promotion")
	}
	if overwrote {
		t.Error("overwrote = true, want false for a fresh promotion")
	}
	if entry.Misspelled != "Teh" || entry.Corrected != "The" || entry.Scope != "invoice" {
		t.Errorf("entry = %+v, want Teh -> The in invoice scope", entry)
	}
	if entry.Frequency != 2 || store.gotInitial != 2 {
		t.Errorf("Frequency = %d (initial %d), want pair count 2", entry.Frequency, store.gotInitial)
	}
	if log.gotScope != "invoice" {
		t.Errorf("CountPair scope = %q, want %q", log.gotScope, "invoice")
	}
}

func TestLearner_Observe_UnknownTypeLearnsGlobal(t *testing.T) {
	log := &fakeLog{n: 1}
	store := &fakeStore{}
	l := newTestLearner(log, store, common.LexiconConfig{LearningThreshold: 1})

	tests := []struct {
		name    string
		docType string
	}{
		{name: "empty type", docType: ""},
		{name: "unknown type", docType: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, _, err := l.Observe(context.Background(), testCorrection("Teh", "The"), tt.docType)
			if err != nil {
				t.Fatalf("Observe() error = %v", err)
			}
			if entry == nil || entry.Scope != constants.ScopeGlobal {
				t.Errorf("entry = %+v, want global scope", entry)
			}
		})
	}
}

func TestLearner_Observe_TypeThresholdOverride(t *testing.T) {
	cfg := common.LexiconConfig{
		LearningThreshold: 1,
		TypeThresholds:    map[string]int{"receipt": 3},
	}

	log := &fakeLog{n: 2}
	store := &fakeStore{}
	l := newTestLearner(log, store, cfg)

	entry, _, err := l.Observe(context.Background(), testCorrection("T0TAL", "TOTAL"), "receipt")
	if err != nil {
		t.Fatalf("Observe() error = %v", err)
	}
	if entry != nil {
		t.Errorf("entry = %+v, want nil (receipt threshold is 3, count is 2)", entry)
	}

	log.n = 3
	entry, _, err = l.Observe(context.Background(), testCorrection("T0TAL", "TOTAL"), "receipt")
	if err != nil {
		t.Fatalf("Observe() error = %v", err)
	}
	if entry == nil || entry.Frequency != 3 {
		t.Errorf("entry = %+v, want promotion with frequency 3", entry)
	}
}

func TestLearner_Observe_OverwriteKeepsCounting(t *testing.T) {
	log := &fakeLog{n: 4}
	store := &fakeStore{existing: &entity.LexiconEntry{
		ID:         uuid.New(),
		Misspelled: "Teh",
		Corrected:  "The",
		Scope:      constants.ScopeGlobal,
		Frequency:  3,
	}}
	l := newTestLearner(log, store, common.LexiconConfig{LearningThreshold: 1})

	entry, overwrote, err := l.Observe(context.Background(), testCorrection("Teh", "Th3"), "")
	if err != nil {
		t.Fatalf("Observe() error = %v", err)
	}
	if !overwrote {
		t.Error("overwrote = false, want true when the target changes")
	}
	if entry.Corrected != "Th3" {
		t.Errorf("Corrected = %q, want latest target %q", entry.Corrected, "Th3")
	}
	if entry.Frequency != 4 {
		t.Errorf("Frequency = %d, want 4 (continues across target change)", entry.Frequency)
	}
}

func TestLearner_Observe_IgnoresDegenerateCorrections(t *testing.T) {
	log := &fakeLog{n: 10}
	store := &fakeStore{}
	l := newTestLearner(log, store, common.LexiconConfig{LearningThreshold: 1})

	tests := []struct {
		name       string
		correction entity.Correction
	}{
		{name: "no-op", correction: testCorrection("same", "same")},
		{name: "empty original", correction: testCorrection("", "The")},
		{name: "empty corrected", correction: testCorrection("Teh", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, _, err := l.Observe(context.Background(), tt.correction, "invoice")
			if err != nil {
				t.Fatalf("Observe() error = %v", err)
			}
			if entry != nil {
				t.Errorf("entry = %+v, want nil", entry)
			}
		})
	}
	if log.calls != 0 || store.upsertCalls != 0 {
		t.Errorf("counted %d, upserted %d, want no store traffic", log.calls, store.upsertCalls)
	}
}

func TestLearner_Observe_StoreFailures(t *testing.T) {
	tests := []struct {
		name  string
		log   *fakeLog
		store *fakeStore
	}{
		{name: "count fails", log: &fakeLog{err: errors.New("connection refused")}, store: &fakeStore{}},
		{name: "get fails", log: &fakeLog{n: 1}, store: &fakeStore{getErr: errors.New("connection refused")}},
		{name: "upsert fails", log: &fakeLog{n: 1}, store: &fakeStore{upsertErr: errors.New("connection refused")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLearner(tt.log, tt.store, common.LexiconConfig{LearningThreshold: 1})
			if _, _, err := l.Observe(context.Background(), testCorrection("Teh", "The"), "invoice"); err == nil {
				t.Error("Observe() expected error")
			}
		})
	}
}
