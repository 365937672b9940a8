package resolve

import (
	"log/slog"
	"strings"

	"github.com/veridoc/ocr-review/internal/entity"
)

type fuzzyEntry struct {
	Original  string
	Corrected string
}

// Index holds a document's correction history keyed for O(1) lookup per word.
type Index struct {
	markers string
	exact   map[string]string
	fuzzy   map[string]fuzzyEntry
	lower   map[string]string
}

// BuildIndex folds corrections into the exact, fuzzy and case-insensitive
// maps. Corrections must arrive oldest first: a later entry overwrites an
// earlier one per key, so the newest correction wins. Records missing either
// text, or whose texts are identical, are skipped with a warning and never
// abort the build.
func BuildIndex(corrections []entity.Correction, markers string, logger *slog.Logger) *Index {
	if markers == "" {
		markers = DefaultPaddingMarkers
	}
	idx := &Index{
		markers: markers,
		exact:   make(map[string]string, len(corrections)),
		fuzzy:   make(map[string]fuzzyEntry, len(corrections)),
		lower:   make(map[string]string, len(corrections)),
	}

	for _, c := range corrections {
		if c.OriginalText == "" || c.CorrectedText == "" {
			logger.Warn("resolve.correction.skipped",
				"correction_id", c.ID, "reason", "missing text")
			continue
		}
		if c.OriginalText == c.CorrectedText {
			logger.Warn("resolve.correction.skipped",
				"correction_id", c.ID, "reason", "no-op")
			continue
		}

		idx.exact[c.OriginalText] = c.CorrectedText
		idx.lower[strings.ToLower(c.OriginalText)] = c.CorrectedText
		if key := strings.TrimRight(c.OriginalText, markers); key != "" {
			idx.fuzzy[key] = fuzzyEntry{Original: c.OriginalText, Corrected: c.CorrectedText}
		}
	}

	return idx
}

// Strategies returns the document-level match chain in priority order:
// exact, fuzzy padding, case-insensitive.
func (idx *Index) Strategies() []Strategy {
	return []Strategy{
		exactStrategy{m: idx.exact},
		fuzzyStrategy{markers: idx.markers, m: idx.fuzzy},
		caseInsensitiveStrategy{m: idx.lower},
	}
}

// Len returns the number of distinct original texts indexed.
func (idx *Index) Len() int {
	return len(idx.exact)
}
