package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/constants"
	"github.com/veridoc/ocr-review/internal/entity"
)

// CorrectionSource supplies a document's correction history.
type CorrectionSource interface {
	// ListByDocument returns every correction for the document ordered by
	// created_at then id, oldest first.
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.Correction, error)
}

// LexiconSource supplies learned correction rules.
type LexiconSource interface {
	Snapshot(ctx context.Context, scopes []string) ([]entity.LexiconEntry, error)
}

// Config tunes matching behavior.
type Config struct {
	// PaddingMarkers is the cutset stripped from word tails by the fuzzy
	// strategy. Empty means DefaultPaddingMarkers.
	PaddingMarkers string
	// AutoCorrection gates the lexicon fallback. Document-level corrections
	// always apply.
	AutoCorrection bool
}

// Resolver rewrites page words from the document's correction history and the
// learned lexicon. Resolution is read-only and deterministic: the same log
// and lexicon snapshot always produce the same output.
type Resolver struct {
	corrections CorrectionSource
	lexicon     LexiconSource
	cfg         Config
	logger      *slog.Logger
}

func NewResolver(corrections CorrectionSource, lexicon LexiconSource, cfg Config, logger *slog.Logger) *Resolver {
	if cfg.PaddingMarkers == "" {
		cfg.PaddingMarkers = DefaultPaddingMarkers
	}
	return &Resolver{
		corrections: corrections,
		lexicon:     lexicon,
		cfg:         cfg,
		logger:      logger,
	}
}

// Rewrite records one applied text change, for logging and metrics.
type Rewrite struct {
	WordIndex int // position in the input slice
	From      string
	To        string
	Strategy  string
}

// PageResult carries the rewritten words plus rewrite provenance.
type PageResult struct {
	Words    []entity.Word
	Rewrites []Rewrite
}

// ResolvePage loads the document's corrections and lexicon snapshot, then
// applies them to the given words. Store failures propagate to the caller;
// per-word problems never do.
func (r *Resolver) ResolvePage(ctx context.Context, documentID uuid.UUID, documentType string, words []entity.Word) (*PageResult, error) {
	corrections, err := r.corrections.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load corrections: %w", err)
	}
	idx := BuildIndex(corrections, r.cfg.PaddingMarkers, r.logger)

	var lex map[string]string
	if r.cfg.AutoCorrection {
		scope := constants.ScopeFor(constants.DocumentType(documentType))
		scopes := []string{constants.ScopeGlobal}
		if scope != constants.ScopeGlobal {
			scopes = append(scopes, scope)
		}
		entries, err := r.lexicon.Snapshot(ctx, scopes)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		lex = MergeLexicon(entries, scope)
	}

	result := ResolveWords(words, idx, lex)
	r.logger.Debug("resolve.page.ok",
		"document_id", documentID,
		"corrections", idx.Len(),
		"words", len(words),
		"rewrites", len(result.Rewrites))
	return result, nil
}

// ResolveWords applies the match chain to each word: document-level
// strategies first (exact, fuzzy padding, case-insensitive; first hit ends
// the chain), then the lexicon exact match. Words without geometry or with
// blank text pass through untouched. The input slice is not modified.
func ResolveWords(words []entity.Word, idx *Index, lexicon map[string]string) *PageResult {
	out := make([]entity.Word, len(words))
	copy(out, words)
	result := &PageResult{Words: out}

	strategies := idx.Strategies()

	for i := range out {
		w := &out[i]
		if w.Geometry == nil || strings.TrimSpace(w.Text) == "" {
			continue
		}

		matched := false
		for _, s := range strategies {
			corrected, ok := s.TryMatch(w.Text)
			if !ok {
				continue
			}
			if corrected != w.Text {
				result.apply(i, w, corrected, s.Name(), true)
			}
			matched = true
			break
		}
		if matched {
			continue
		}

		// Lexicon fallback. A manually corrected word is never rewritten by
		// learned rules.
		if w.ManuallyCorrected || lexicon == nil {
			continue
		}
		if corrected, ok := lexicon[w.Text]; ok && corrected != w.Text {
			result.apply(i, w, corrected, StrategyLexicon, false)
		}
	}

	return result
}

func (r *PageResult) apply(i int, w *entity.Word, corrected, strategy string, manual bool) {
	from := w.Text
	if w.OriginalText == nil {
		original := from
		w.OriginalText = &original
	}
	w.Text = corrected
	if manual {
		if w.AutoCorrected {
			w.AutoCorrectionOverridden = true
		}
		w.ManuallyCorrected = true
	} else {
		w.AutoCorrected = true
	}
	r.Rewrites = append(r.Rewrites, Rewrite{WordIndex: i, From: from, To: corrected, Strategy: strategy})
}

// MergeLexicon flattens scoped entries into one lookup map. Entries in the
// document's own scope shadow global entries for the same misspelled text.
func MergeLexicon(entries []entity.LexiconEntry, docScope string) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Scope == constants.ScopeGlobal {
			m[e.Misspelled] = e.Corrected
		}
	}
	if docScope != constants.ScopeGlobal {
		for _, e := range entries {
			if e.Scope == docScope {
				m[e.Misspelled] = e.Corrected
			}
		}
	}
	return m
}
