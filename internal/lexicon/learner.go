package lexicon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/veridoc/ocr-review/constants"
	"github.com/veridoc/ocr-review/internal/common"
	"github.com/veridoc/ocr-review/internal/entity"
)

// LogCounter counts identical corrections in the append-only log. Scope
// "global" counts across all documents, any other scope counts corrections
// on documents of that type only.
type LogCounter interface {
	CountPair(ctx context.Context, originalText, correctedText, scope string) (int, error)
}

// Store persists learned entries keyed by (misspelled, scope).
type Store interface {
	// Get returns the current entry or common.ErrNotFound.
	Get(ctx context.Context, misspelled, scope string) (*entity.LexiconEntry, error)
	// Upsert inserts with the given initial frequency, or on conflict sets
	// the corrected text and increments the stored frequency by one.
	Upsert(ctx context.Context, misspelled, corrected, scope string, initialFrequency int) (*entity.LexiconEntry, error)
}

// Learner promotes repeated corrections into lexicon entries. The lexicon is
// derived state: every entry is reproducible from the correction log alone.
type Learner struct {
	log    LogCounter
	store  Store
	cfg    common.LexiconConfig
	logger *slog.Logger
}

func NewLearner(log LogCounter, store Store, cfg common.LexiconConfig, logger *slog.Logger) *Learner {
	return &Learner{
		log:    log,
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// Observe feeds one logged correction into the learner. It counts how often
// the same (original, corrected) pair appears in the log for the document
// type's scope and, once the scope's threshold is reached, upserts the rule.
// Below the threshold it returns (nil, false, nil). overwrote reports that an
// existing entry's corrected text was replaced by this observation.
func (l *Learner) Observe(ctx context.Context, c entity.Correction, docType string) (entry *entity.LexiconEntry, overwrote bool, err error) {
	if c.OriginalText == "" || c.CorrectedText == "" || c.OriginalText == c.CorrectedText {
		return nil, false, nil
	}

	scope := constants.ScopeFor(constants.DocumentType(docType))

	n, err := l.log.CountPair(ctx, c.OriginalText, c.CorrectedText, scope)
	if err != nil {
		return nil, false, fmt.Errorf("count correction pair: %w", err)
	}

	threshold := l.cfg.ThresholdFor(scope)
	if n < threshold {
		l.logger.Debug("lexicon.below_threshold",
			"original", c.OriginalText,
			"corrected", c.CorrectedText,
			"scope", scope,
			"count", n,
			"threshold", threshold)
		return nil, false, nil
	}

	existing, err := l.store.Get(ctx, c.OriginalText, scope)
	switch {
	case err == nil:
		if existing.Corrected != c.CorrectedText {
			overwrote = true
			l.logger.Warn("lexicon.overwrite",
				"misspelled", c.OriginalText,
				"scope", scope,
				"old_corrected", existing.Corrected,
				"new_corrected", c.CorrectedText)
		}
	case errors.Is(err, common.ErrNotFound):
		// first promotion for this misspelling in this scope
	default:
		return nil, false, fmt.Errorf("load lexicon entry: %w", err)
	}

	entry, err = l.store.Upsert(ctx, c.OriginalText, c.CorrectedText, scope, n)
	if err != nil {
		return nil, false, fmt.Errorf("upsert lexicon entry: %w", err)
	}

	l.logger.Info("lexicon.promoted",
		"misspelled", entry.Misspelled,
		"corrected", entry.Corrected,
		"scope", entry.Scope,
		"frequency", entry.Frequency)
	return entry, overwrote, nil
}
