// Package quality scores recognized documents and routes them to review
// queues.
package quality

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/internal/entity"
)

// Level buckets an overall quality score for routing decisions.
type Level string

const (
	LevelHigh   Level = "high"   // auto-process
	LevelMedium Level = "medium" // quick review
	LevelLow    Level = "low"    // full manual review
)

// Review queue names.
const (
	QueueAutoProcess = "auto_process"
	QueueQuickReview = "quick_review"
	QueueFullReview  = "full_review"
)

// Level cuts on the overall score.
const (
	highThreshold   = 0.8
	mediumThreshold = 0.5
)

// Component weights. Recognition confidence dominates, geometry coverage and
// correction history share the rest.
const (
	confidenceWeight = 0.4
	geometryWeight   = 0.3
	correctionWeight = 0.3
)

// Metrics holds the component and overall scores for one document.
type Metrics struct {
	Confidence       float64  `json:"confidence"`
	GeometryCoverage float64  `json:"geometry_coverage"`
	CorrectionScore  float64  `json:"correction_score"`
	Overall          float64  `json:"overall"`
	Level            Level    `json:"level"`
	Recommendations  []string `json:"recommendations"`
}

// Decision assigns a scored document to a review queue.
type Decision struct {
	DocumentID      uuid.UUID `json:"document_id"`
	Level           Level     `json:"quality_level"`
	Overall         float64   `json:"overall_quality"`
	Queue           string    `json:"routing_queue"`
	Priority        int       `json:"priority"` // 1 reviews first, 5 last
	ReviewMinutes   int       `json:"estimated_review_minutes"`
	Recommendations []string  `json:"recommendations"`
}

// Scorer computes quality metrics over a document's words.
type Scorer struct {
	logger *slog.Logger
}

func NewScorer(logger *slog.Logger) *Scorer {
	return &Scorer{logger: logger}
}

// Score combines mean word confidence, the share of words carrying usable
// geometry, and the share of words that needed correction into one weighted
// score. Words are taken as stored; pass resolved words to score the
// reviewed state.
func (s *Scorer) Score(words []entity.Word) Metrics {
	if len(words) == 0 {
		return Metrics{
			Level:           LevelLow,
			Recommendations: []string{"no recognized words, comprehensive manual review required"},
		}
	}

	var confSum float64
	var confCount, withGeometry, rewritten int
	for _, w := range words {
		if w.Confidence != nil && *w.Confidence > 0 {
			confSum += *w.Confidence
			confCount++
		}
		if w.Geometry != nil {
			withGeometry++
		}
		if w.OriginalText != nil {
			rewritten++
		}
	}

	m := Metrics{}
	if confCount > 0 {
		m.Confidence = confSum / float64(confCount)
	}
	total := float64(len(words))
	m.GeometryCoverage = float64(withGeometry) / total
	m.CorrectionScore = 1 - float64(rewritten)/total

	m.Overall = m.Confidence*confidenceWeight +
		m.GeometryCoverage*geometryWeight +
		m.CorrectionScore*correctionWeight
	m.Level = levelFor(m.Overall)
	m.Recommendations = recommendations(m)

	s.logger.Info("quality.scored",
		"overall", m.Overall,
		"level", m.Level,
		"confidence", m.Confidence,
		"geometry_coverage", m.GeometryCoverage,
		"correction_score", m.CorrectionScore)
	return m
}

// Route turns metrics into a queue assignment.
func (s *Scorer) Route(documentID uuid.UUID, m Metrics) Decision {
	d := Decision{
		DocumentID:      documentID,
		Level:           m.Level,
		Overall:         m.Overall,
		Recommendations: m.Recommendations,
	}
	switch m.Level {
	case LevelHigh:
		d.Queue, d.Priority, d.ReviewMinutes = QueueAutoProcess, 5, 2
	case LevelMedium:
		d.Queue, d.Priority, d.ReviewMinutes = QueueQuickReview, 3, 5
	default:
		d.Queue, d.Priority, d.ReviewMinutes = QueueFullReview, 1, 15
	}

	s.logger.Info("quality.routed",
		"document_id", documentID,
		"queue", d.Queue,
		"priority", d.Priority)
	return d
}

func levelFor(overall float64) Level {
	switch {
	case overall >= highThreshold:
		return LevelHigh
	case overall >= mediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

func recommendations(m Metrics) []string {
	var out []string
	if m.Confidence < 0.6 {
		out = append(out, "low recognition confidence, review text manually")
		out = append(out, "consider rescanning at a higher resolution")
	}
	if m.GeometryCoverage < 0.5 {
		out = append(out, "many words lack usable geometry, verify word positions")
	}
	if m.CorrectionScore < 0.4 {
		out = append(out, "heavy correction history, re-review the full document")
	}
	switch m.Level {
	case LevelHigh:
		out = append(out, "high quality, suitable for automated processing")
	case LevelMedium:
		out = append(out, "medium quality, quick review recommended")
	default:
		out = append(out, "low quality, comprehensive manual review required")
	}
	return out
}
