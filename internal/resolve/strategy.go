package resolve

import "strings"

// Strategy names, stable for logging and metrics.
const (
	StrategyExact           = "exact"
	StrategyFuzzyPadding    = "fuzzy_padding"
	StrategyCaseInsensitive = "case_insensitive"
	StrategyLexicon         = "lexicon"
)

// DefaultPaddingMarkers is the trailing filler stripped by the fuzzy match,
// the machine-readable-zone padding character.
const DefaultPaddingMarkers = "<"

// Strategy decides whether a word's current text should be rewritten.
// Strategies are evaluated in priority order; the first match ends the chain.
// Every implementation must answer in O(len(text)), not O(corrections).
type Strategy interface {
	Name() string
	TryMatch(text string) (corrected string, ok bool)
}

// exactStrategy matches the full word text against logged original texts.
type exactStrategy struct {
	m map[string]string
}

func (s exactStrategy) Name() string { return StrategyExact }

func (s exactStrategy) TryMatch(text string) (string, bool) {
	corrected, ok := s.m[text]
	return corrected, ok
}

// fuzzyStrategy matches after stripping trailing padding markers from the
// word, covering OCR output whose fixed-width padding length differs from
// the one recorded with the correction.
type fuzzyStrategy struct {
	markers string
	m       map[string]fuzzyEntry
}

func (s fuzzyStrategy) Name() string { return StrategyFuzzyPadding }

func (s fuzzyStrategy) TryMatch(text string) (string, bool) {
	key := strings.TrimRight(text, s.markers)
	if key == "" {
		return "", false
	}
	entry, ok := s.m[key]
	if !ok {
		return "", false
	}
	return entry.Corrected, true
}

// caseInsensitiveStrategy is the last-resort document-level match. The
// corrected text is re-cased to the word's own case pattern.
type caseInsensitiveStrategy struct {
	m map[string]string
}

func (s caseInsensitiveStrategy) Name() string { return StrategyCaseInsensitive }

func (s caseInsensitiveStrategy) TryMatch(text string) (string, bool) {
	corrected, ok := s.m[strings.ToLower(text)]
	if !ok {
		return "", false
	}
	return PreserveCase(text, corrected), true
}
