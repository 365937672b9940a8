package resolve

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/constants"
	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/geometry"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testWord(text string) entity.Word {
	box := geometry.BBox{X1: 0.1, Y1: 0.1, X2: 0.3, Y2: 0.15}
	return entity.Word{ID: uuid.New(), Text: text, Geometry: &box}
}

func correctionAt(ts time.Time, original, corrected string) entity.Correction {
	return entity.Correction{
		ID:            uuid.New(),
		DocumentID:    uuid.New(),
		OriginalText:  original,
		CorrectedText: corrected,
		Author:        "analyst1",
		CreatedAt:     ts,
	}
}

func buildTestIndex(t *testing.T, corrections ...entity.Correction) *Index {
	t.Helper()
	return BuildIndex(corrections, DefaultPaddingMarkers, testLogger())
}

func TestResolveWords_ExactMatch(t *testing.T) {
	// the full review round trip: OCR text corrected once, applied on read
	idx := buildTestIndex(t,
		correctionAt(time.Now(), "KOWALSKAK<ANNA<<<<<<<<<", "KOWALSKA<<ANNA<<<<<<<<<<<<<<"),
	)

	words := []entity.Word{testWord("KOWALSKAK<ANNA<<<<<<<<<")}
	result := ResolveWords(words, idx, nil)

	got := result.Words[0]
	if got.Text != "KOWALSKA<<ANNA<<<<<<<<<<<<<<" {
		t.Errorf("Text = %q, want %q", got.Text, "KOWALSKA<<ANNA<<<<<<<<<<<<<<")
	}
	if !got.ManuallyCorrected {
		t.Error("ManuallyCorrected = false, want true")
	}
	if got.AutoCorrected {
		t.Error("AutoCorrected = true, want false")
	}
	if got.OriginalText == nil || *got.OriginalText != "KOWALSKAK<ANNA<<<<<<<<<" {
		t.Errorf("OriginalText = %v, want pre-rewrite text", got.OriginalText)
	}
	if len(result.Rewrites) != 1 || result.Rewrites[0].Strategy != StrategyExact {
		t.Errorf("Rewrites = %+v, want one exact rewrite", result.Rewrites)
	}
}

func TestResolveWords_ExactBeatsFuzzy(t *testing.T) {
	base := time.Now()
	// both corrections share the stripped key "AB"; the word matches the
	// first one exactly and the second only after padding strip
	idx := buildTestIndex(t,
		correctionAt(base, "AB<<<", "EXACT_TARGET"),
		correctionAt(base.Add(time.Second), "AB<", "FUZZY_TARGET"),
	)

	result := ResolveWords([]entity.Word{testWord("AB<<<")}, idx, nil)

	if got := result.Words[0].Text; got != "EXACT_TARGET" {
		t.Errorf("Text = %q, want %q", got, "EXACT_TARGET")
	}
	if result.Rewrites[0].Strategy != StrategyExact {
		t.Errorf("Strategy = %q, want %q", result.Rewrites[0].Strategy, StrategyExact)
	}
}

func TestResolveWords_LatestCorrectionWins(t *testing.T) {
	base := time.Now()
	idx := buildTestIndex(t,
		correctionAt(base, "INVO1CE", "INVOICE-OLD"),
		correctionAt(base.Add(time.Minute), "INVO1CE", "INVOICE"),
	)

	result := ResolveWords([]entity.Word{testWord("INVO1CE")}, idx, nil)

	if got := result.Words[0].Text; got != "INVOICE" {
		t.Errorf("Text = %q, want newest corrected text %q", got, "INVOICE")
	}
}

func TestResolveWords_FuzzyPadding(t *testing.T) {
	// recorded with 10 trailing markers, corrected to 14
	idx := buildTestIndex(t,
		correctionAt(time.Now(), "ZAIDI<<NOUR<<<<<<<<<<", "ZAIDI<<NOUR<<<<<<<<<<<<<<"),
	)

	// fresh OCR run produced 12 markers, an unseen exact string
	result := ResolveWords([]entity.Word{testWord("ZAIDI<<NOUR<<<<<<<<<<<<")}, idx, nil)

	got := result.Words[0]
	if got.Text != "ZAIDI<<NOUR<<<<<<<<<<<<<<" {
		t.Errorf("Text = %q, want %q", got.Text, "ZAIDI<<NOUR<<<<<<<<<<<<<<")
	}
	if !got.ManuallyCorrected {
		t.Error("ManuallyCorrected = false, want true")
	}
	if result.Rewrites[0].Strategy != StrategyFuzzyPadding {
		t.Errorf("Strategy = %q, want %q", result.Rewrites[0].Strategy, StrategyFuzzyPadding)
	}
}

func TestResolveWords_FuzzyMatchAlreadyCorrectText(t *testing.T) {
	idx := buildTestIndex(t,
		correctionAt(time.Now(), "ZAIDI<<NOUR<<<<<<<<<<", "ZAIDI<<NOUR<<<<<<<<<<<<"),
	)

	// the word already carries the corrected form; fuzzy matches but there is
	// nothing to rewrite, and the match still ends the chain
	result := ResolveWords([]entity.Word{testWord("ZAIDI<<NOUR<<<<<<<<<<<<")}, idx, nil)

	got := result.Words[0]
	if got.Text != "ZAIDI<<NOUR<<<<<<<<<<<<" {
		t.Errorf("Text = %q, want unchanged", got.Text)
	}
	if got.ManuallyCorrected || got.OriginalText != nil {
		t.Errorf("no-op match must not flag the word: %+v", got)
	}
	if len(result.Rewrites) != 0 {
		t.Errorf("Rewrites = %+v, want none", result.Rewrites)
	}
}

func TestResolveWords_CaseInsensitive(t *testing.T) {
	idx := buildTestIndex(t,
		correctionAt(time.Now(), "Recieved", "Received"),
	)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "upper word keeps upper", text: "RECIEVED", want: "RECEIVED"},
		{name: "lower word keeps lower", text: "recieved", want: "received"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolveWords([]entity.Word{testWord(tt.text)}, idx, nil)
			got := result.Words[0]
			if got.Text != tt.want {
				t.Errorf("Text = %q, want %q", got.Text, tt.want)
			}
			if len(result.Rewrites) != 1 || result.Rewrites[0].Strategy != StrategyCaseInsensitive {
				t.Errorf("Rewrites = %+v, want one case_insensitive rewrite", result.Rewrites)
			}
		})
	}
}

func TestResolveWords_LexiconAutoCorrect(t *testing.T) {
	idx := buildTestIndex(t)
	lexicon := map[string]string{"Teh": "The"}

	result := ResolveWords([]entity.Word{testWord("Teh")}, idx, lexicon)

	got := result.Words[0]
	if got.Text != "The" {
		t.Errorf("Text = %q, want %q", got.Text, "The")
	}
	if !got.AutoCorrected {
		t.Error("AutoCorrected = false, want true")
	}
	if got.ManuallyCorrected {
		t.Error("ManuallyCorrected = true, want false")
	}
	if got.OriginalText == nil || *got.OriginalText != "Teh" {
		t.Errorf("OriginalText = %v, want %q", got.OriginalText, "Teh")
	}
	if result.Rewrites[0].Strategy != StrategyLexicon {
		t.Errorf("Strategy = %q, want %q", result.Rewrites[0].Strategy, StrategyLexicon)
	}
}

func TestResolveWords_DocumentCorrectionBeatsLexicon(t *testing.T) {
	idx := buildTestIndex(t,
		correctionAt(time.Now(), "T0TAL", "TOTAL"),
	)
	lexicon := map[string]string{"T0TAL": "LEXICON_TARGET"}

	result := ResolveWords([]entity.Word{testWord("T0TAL")}, idx, lexicon)

	got := result.Words[0]
	if got.Text != "TOTAL" {
		t.Errorf("Text = %q, want document-level target %q", got.Text, "TOTAL")
	}
	if !got.ManuallyCorrected || got.AutoCorrected {
		t.Errorf("flags = %+v, want manual only", got)
	}
}

func TestResolveWords_LexiconSkipsManuallyCorrected(t *testing.T) {
	idx := buildTestIndex(t)
	lexicon := map[string]string{"Teh": "The"}

	w := testWord("Teh")
	w.ManuallyCorrected = true
	result := ResolveWords([]entity.Word{w}, idx, lexicon)

	if got := result.Words[0].Text; got != "Teh" {
		t.Errorf("Text = %q, manually corrected words must not be auto-rewritten", got)
	}
	if len(result.Rewrites) != 0 {
		t.Errorf("Rewrites = %+v, want none", result.Rewrites)
	}
}

func TestResolveWords_AutoCorrectionOverridden(t *testing.T) {
	idx := buildTestIndex(t,
		correctionAt(time.Now(), "Munchen", "München"),
	)

	original := "Munchen0"
	w := testWord("Munchen")
	w.AutoCorrected = true
	w.OriginalText = &original

	result := ResolveWords([]entity.Word{w}, idx, nil)

	got := result.Words[0]
	if got.Text != "München" {
		t.Errorf("Text = %q, want %q", got.Text, "München")
	}
	if !got.ManuallyCorrected || !got.AutoCorrectionOverridden {
		t.Errorf("flags = %+v, want manually_corrected and auto_correction_overridden", got)
	}
	if !got.AutoCorrected {
		t.Error("AutoCorrected must stay set as history")
	}
	if *got.OriginalText != original {
		t.Errorf("OriginalText = %q, must never be overwritten", *got.OriginalText)
	}
}

func TestResolveWords_SkipsWordsWithoutGeometry(t *testing.T) {
	idx := buildTestIndex(t,
		correctionAt(time.Now(), "T0TAL", "TOTAL"),
	)

	w := entity.Word{ID: uuid.New(), Text: "T0TAL"} // malformed geometry at ingest
	result := ResolveWords([]entity.Word{w}, idx, nil)

	if got := result.Words[0].Text; got != "T0TAL" {
		t.Errorf("Text = %q, geometry-less words must pass through untouched", got)
	}
	if len(result.Rewrites) != 0 {
		t.Errorf("Rewrites = %+v, want none", result.Rewrites)
	}
}

func TestResolveWords_SkipsBlankText(t *testing.T) {
	idx := buildTestIndex(t,
		correctionAt(time.Now(), "   ", "something"),
	)

	result := ResolveWords([]entity.Word{testWord("   ")}, idx, nil)

	if got := result.Words[0].Text; got != "   " {
		t.Errorf("Text = %q, blank words must pass through untouched", got)
	}
}

func TestResolveWords_Idempotent(t *testing.T) {
	base := time.Now()
	idx := buildTestIndex(t,
		correctionAt(base, "INVO1CE", "INVOICE"),
		correctionAt(base.Add(time.Second), "ZAIDI<<NOUR<<<<<<<<<<", "ZAIDI<<NOUR<<<<<<<<<<<<<<"),
	)
	lexicon := map[string]string{"Teh": "The"}

	words := []entity.Word{
		testWord("INVO1CE"),
		testWord("ZAIDI<<NOUR<<<<<<<<<<<<"),
		testWord("Teh"),
		testWord("untouched"),
	}

	first := ResolveWords(words, idx, lexicon)
	second := ResolveWords(words, idx, lexicon)

	if !reflect.DeepEqual(first.Words, second.Words) {
		t.Errorf("outputs differ between runs:\nfirst  = %+v\nsecond = %+v", first.Words, second.Words)
	}
	if !reflect.DeepEqual(first.Rewrites, second.Rewrites) {
		t.Errorf("rewrites differ between runs:\nfirst  = %+v\nsecond = %+v", first.Rewrites, second.Rewrites)
	}
}

func TestResolveWords_DoesNotMutateInput(t *testing.T) {
	idx := buildTestIndex(t,
		correctionAt(time.Now(), "T0TAL", "TOTAL"),
	)

	words := []entity.Word{testWord("T0TAL")}
	ResolveWords(words, idx, nil)

	if words[0].Text != "T0TAL" || words[0].ManuallyCorrected {
		t.Errorf("input slice mutated: %+v", words[0])
	}
}

func TestBuildIndex_SkipsMalformedRecords(t *testing.T) {
	base := time.Now()
	idx := buildTestIndex(t,
		correctionAt(base, "", "corrected"),
		correctionAt(base.Add(time.Second), "original", ""),
		correctionAt(base.Add(2*time.Second), "same", "same"),
		correctionAt(base.Add(3*time.Second), "T0TAL", "TOTAL"),
	)

	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (malformed records skipped)", idx.Len())
	}

	result := ResolveWords([]entity.Word{testWord("T0TAL")}, idx, nil)
	if got := result.Words[0].Text; got != "TOTAL" {
		t.Errorf("Text = %q, resolution must survive malformed records", got)
	}
}

func TestMergeLexicon_TypeScopeShadowsGlobal(t *testing.T) {
	entries := []entity.LexiconEntry{
		{Misspelled: "Teh", Corrected: "The", Scope: constants.ScopeGlobal},
		{Misspelled: "Teh", Corrected: "TEH-INVOICE", Scope: "invoice"},
		{Misspelled: "Onvoice", Corrected: "Invoice", Scope: constants.ScopeGlobal},
	}

	m := MergeLexicon(entries, "invoice")
	if m["Teh"] != "TEH-INVOICE" {
		t.Errorf(`m["Teh"] = %q, want type-scoped target`, m["Teh"])
	}
	if m["Onvoice"] != "Invoice" {
		t.Errorf(`m["Onvoice"] = %q, want global target`, m["Onvoice"])
	}

	global := MergeLexicon(entries, constants.ScopeGlobal)
	if global["Teh"] != "The" {
		t.Errorf(`global["Teh"] = %q, want global target`, global["Teh"])
	}
}

type fakeCorrectionSource struct {
	items []entity.Correction
	err   error
	calls int
}

func (f *fakeCorrectionSource) ListByDocument(_ context.Context, _ uuid.UUID) ([]entity.Correction, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeLexiconSource struct {
	entries []entity.LexiconEntry
	err     error
	calls   int
}

func (f *fakeLexiconSource) Snapshot(_ context.Context, _ []string) ([]entity.LexiconEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func TestResolver_ResolvePage(t *testing.T) {
	corrections := &fakeCorrectionSource{items: []entity.Correction{
		correctionAt(time.Now(), "INVO1CE", "INVOICE"),
	}}
	lexicon := &fakeLexiconSource{entries: []entity.LexiconEntry{
		{Misspelled: "Teh", Corrected: "The", Scope: constants.ScopeGlobal},
	}}

	r := NewResolver(corrections, lexicon, Config{AutoCorrection: true}, testLogger())

	words := []entity.Word{testWord("INVO1CE"), testWord("Teh")}
	result, err := r.ResolvePage(context.Background(), uuid.New(), "invoice", words)
	if err != nil {
		t.Fatalf("ResolvePage() error = %v", err)
	}

	if got := result.Words[0].Text; got != "INVOICE" {
		t.Errorf("Words[0].Text = %q, want %q", got, "INVOICE")
	}
	if got := result.Words[1].Text; got != "The" {
		t.Errorf("Words[1].Text = %q, want %q", got, "The")
	}
	if len(result.Rewrites) != 2 {
		t.Errorf("len(Rewrites) = %d, want 2", len(result.Rewrites))
	}
}

func TestResolver_ResolvePage_CorrectionLoadFailure(t *testing.T) {
	corrections := &fakeCorrectionSource{err: errors.New("connection refused")}
	lexicon := &fakeLexiconSource{}

	r := NewResolver(corrections, lexicon, Config{AutoCorrection: true}, testLogger())

	if _, err := r.ResolvePage(context.Background(), uuid.New(), "invoice", nil); err == nil {
		t.Fatal("ResolvePage() expected error when the correction log is unreadable")
	}
}

func TestResolver_ResolvePage_AutoCorrectionDisabled(t *testing.T) {
	corrections := &fakeCorrectionSource{}
	lexicon := &fakeLexiconSource{entries: []entity.LexiconEntry{
		{Misspelled: "Teh", Corrected: "The", Scope: constants.ScopeGlobal},
	}}

	r := NewResolver(corrections, lexicon, Config{AutoCorrection: false}, testLogger())

	result, err := r.ResolvePage(context.Background(), uuid.New(), "invoice", []entity.Word{testWord("Teh")})
	if err != nil {
		t.Fatalf("ResolvePage() error = %v", err)
	}
	if got := result.Words[0].Text; got != "Teh" {
		t.Errorf("Text = %q, lexicon must not apply when disabled", got)
	}
	if lexicon.calls != 0 {
		t.Errorf("lexicon queried %d times, want 0", lexicon.calls)
	}
}
