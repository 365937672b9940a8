// Package classify assigns a document type from reconstructed page text
// using keyword and pattern signals.
package classify

import (
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/veridoc/ocr-review/constants"
)

// DefaultThreshold is the minimum score a type must reach to be assigned.
const DefaultThreshold = 0.6

// Signal weights. Keywords dominate, patterns confirm, layout presence
// nudges.
const (
	keywordWeight = 0.6
	patternWeight = 0.3
	layoutWeight  = 0.1
)

type profile struct {
	Type     constants.DocumentType
	Keywords []string
	Patterns []*regexp.Regexp
}

// profiles are scored in this order; on a tie the earlier type wins.
var profiles = []profile{
	{
		Type:     constants.TypeInvoice,
		Keywords: []string{"invoice", "bill", "amount due", "total amount", "due date", "invoice number"},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)invoice\s+(?:number|#|no\.?)\s*:?\s*[A-Z0-9-]+`),
			regexp.MustCompile(`(?i)amount\s+due\s*:?\s*[$€£]?\s*\d+`),
			regexp.MustCompile(`(?i)due\s+date\s*:?\s*\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
		},
	},
	{
		Type:     constants.TypeReceipt,
		Keywords: []string{"receipt", "total paid", "change", "thank you", "store", "cash"},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)total\s+paid\s*:?\s*[$€£]?\s*\d+`),
			regexp.MustCompile(`(?i)change\s*:?\s*[$€£]?\s*\d+`),
			regexp.MustCompile(`(?i)thank\s+you\s+for\s+your\s+business`),
		},
	},
	{
		Type:     constants.TypeIdentity,
		Keywords: []string{"passport", "driver license", "id card", "identification", "date of birth"},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)passport\s+(?:number|no\.?)\s*:?\s*[A-Z0-9]+`),
			regexp.MustCompile(`(?i)driver\s+licen[cs]e`),
			regexp.MustCompile(`(?i)date\s+of\s+birth\s*:?\s*\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
		},
	},
	{
		Type:     constants.TypeContract,
		Keywords: []string{"agreement", "contract", "terms", "conditions", "party", "signature"},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)this\s+agreement`),
			regexp.MustCompile(`(?i)terms\s+and\s+conditions`),
			regexp.MustCompile(`(?i)signature\s*:?\s*_+`),
		},
	},
	{
		Type:     constants.TypeBankStatement,
		Keywords: []string{"bank statement", "account", "balance", "transaction", "deposit", "withdrawal"},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)account\s+(?:number|no\.?)\s*:?\s*[0-9-]+`),
			regexp.MustCompile(`(?i)(?:beginning|ending)\s+balance`),
			regexp.MustCompile(`(?i)transaction\s+(?:date|history)`),
		},
	},
}

// Result is the winning type and its score. Score is kept even when the
// type falls back to unknown, so callers can log near misses.
type Result struct {
	Type  constants.DocumentType
	Score float64
}

// Classifier scores text against the built-in type profiles.
type Classifier struct {
	threshold float64
	logger    *slog.Logger
}

// NewClassifier returns a classifier with the given assignment threshold.
// A non-positive threshold means DefaultThreshold.
func NewClassifier(threshold float64, logger *slog.Logger) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{threshold: threshold, logger: logger}
}

// Classify scores the reconstructed document text against every profile and
// returns the best type, or unknown when no profile reaches the threshold.
// hasLayout reports whether geometry-valid words back the text.
func (c *Classifier) Classify(text string, hasLayout bool) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Type: constants.TypeUnknown, Score: 0}
	}

	textLower := strings.ToLower(text)

	best := Result{Type: constants.TypeUnknown, Score: 0}
	for _, p := range profiles {
		score := scoreProfile(text, textLower, p, hasLayout)
		if score > best.Score {
			best = Result{Type: p.Type, Score: score}
		}
	}

	if best.Score < c.threshold {
		c.logger.Debug("classify.below_threshold",
			"best_type", best.Type,
			"score", best.Score,
			"threshold", c.threshold)
		return Result{Type: constants.TypeUnknown, Score: best.Score}
	}

	c.logger.Info("classify.ok", "document_type", best.Type, "score", best.Score)
	return best
}

func scoreProfile(text, textLower string, p profile, hasLayout bool) float64 {
	var score, max float64

	perKeyword := keywordWeight / float64(len(p.Keywords))
	for _, kw := range p.Keywords {
		max += perKeyword
		if !strings.Contains(textLower, kw) {
			continue
		}
		score += perKeyword
		// repeated mentions earn a small bonus, capped
		if n := strings.Count(textLower, kw); n > 1 {
			score += math.Min(0.1, float64(n-1)*0.02)
		}
	}

	perPattern := patternWeight / float64(len(p.Patterns))
	for _, re := range p.Patterns {
		max += perPattern
		if re.MatchString(text) {
			score += perPattern
		}
	}

	max += layoutWeight
	if hasLayout {
		score += layoutWeight * 0.5
	}

	if max <= 0 {
		return 0
	}
	return math.Min(1.0, score/max)
}
