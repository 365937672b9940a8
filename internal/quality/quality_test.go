package quality

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/geometry"
)

func testScorer() *Scorer {
	return NewScorer(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func scoredWord(conf float64, withGeometry, rewritten bool) entity.Word {
	w := entity.Word{ID: uuid.New(), Text: "word"}
	if conf > 0 {
		w.Confidence = &conf
	}
	if withGeometry {
		box := geometry.BBox{X1: 0.1, Y1: 0.1, X2: 0.2, Y2: 0.2}
		w.Geometry = &box
	}
	if rewritten {
		original := "w0rd"
		w.OriginalText = &original
		w.ManuallyCorrected = true
	}
	return w
}

func repeatWords(n int, conf float64, withGeometry, rewritten bool) []entity.Word {
	out := make([]entity.Word, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, scoredWord(conf, withGeometry, rewritten))
	}
	return out
}

func TestScorer_Score_Levels(t *testing.T) {
	tests := []struct {
		name        string
		words       []entity.Word
		wantOverall float64
		wantLevel   Level
	}{
		{
			name:        "clean high confidence document",
			words:       repeatWords(10, 0.95, true, false),
			wantOverall: 0.95*confidenceWeight + geometryWeight + correctionWeight,
			wantLevel:   LevelHigh,
		},
		{
			name: "half corrected document",
			words: append(
				repeatWords(5, 0.7, true, true),
				repeatWords(5, 0.7, true, false)...,
			),
			wantOverall: 0.7*confidenceWeight + geometryWeight + 0.5*correctionWeight,
			wantLevel:   LevelMedium,
		},
		{
			name: "poor scan",
			words: append(
				repeatWords(2, 0.2, true, true),
				repeatWords(3, 0.2, false, true)...,
			),
			wantOverall: 0.2*confidenceWeight + 0.4*geometryWeight + 0,
			wantLevel:   LevelLow,
		},
		{
			name:        "exactly at high cut",
			words:       repeatWords(10, 0.5, true, false),
			wantOverall: 0.8,
			wantLevel:   LevelHigh,
		},
		{
			name:        "exactly at medium cut",
			words:       repeatWords(10, 0.5, true, true),
			wantOverall: 0.5,
			wantLevel:   LevelMedium,
		},
	}

	s := testScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := s.Score(tt.words)
			if math.Abs(m.Overall-tt.wantOverall) > 1e-9 {
				t.Errorf("Overall = %v, want %v", m.Overall, tt.wantOverall)
			}
			if m.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", m.Level, tt.wantLevel)
			}
		})
	}
}

func TestScorer_Score_NoWords(t *testing.T) {
	m := testScorer().Score(nil)

	if m.Level != LevelLow || m.Overall != 0 {
		t.Errorf("Score(nil) = %+v, want low level with zero score", m)
	}
	if len(m.Recommendations) == 0 {
		t.Error("Recommendations empty, want manual review advice")
	}
}

func TestScorer_Score_IgnoresMissingConfidence(t *testing.T) {
	words := []entity.Word{
		scoredWord(0.9, true, false),
		scoredWord(0, true, false), // engine reported nothing
	}

	m := testScorer().Score(words)
	if math.Abs(m.Confidence-0.9) > 1e-9 {
		t.Errorf("Confidence = %v, want mean over reported values only", m.Confidence)
	}
}

func TestScorer_Score_Recommendations(t *testing.T) {
	m := testScorer().Score(repeatWords(4, 0.3, false, true))

	var hasConfidence, hasGeometry, hasHistory bool
	for _, r := range m.Recommendations {
		if strings.Contains(r, "confidence") {
			hasConfidence = true
		}
		if strings.Contains(r, "geometry") {
			hasGeometry = true
		}
		if strings.Contains(r, "correction history") {
			hasHistory = true
		}
	}
	if !hasConfidence || !hasGeometry || !hasHistory {
		t.Errorf("Recommendations = %v, want confidence, geometry and history advice", m.Recommendations)
	}
}

func TestScorer_Route(t *testing.T) {
	tests := []struct {
		name         string
		level        Level
		wantQueue    string
		wantPriority int
		wantMinutes  int
	}{
		{name: "high", level: LevelHigh, wantQueue: QueueAutoProcess, wantPriority: 5, wantMinutes: 2},
		{name: "medium", level: LevelMedium, wantQueue: QueueQuickReview, wantPriority: 3, wantMinutes: 5},
		{name: "low", level: LevelLow, wantQueue: QueueFullReview, wantPriority: 1, wantMinutes: 15},
	}

	s := testScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			d := s.Route(id, Metrics{Level: tt.level})
			if d.DocumentID != id {
				t.Errorf("DocumentID = %v, want %v", d.DocumentID, id)
			}
			if d.Queue != tt.wantQueue || d.Priority != tt.wantPriority || d.ReviewMinutes != tt.wantMinutes {
				t.Errorf("Route() = {%s %d %d}, want {%s %d %d}",
					d.Queue, d.Priority, d.ReviewMinutes,
					tt.wantQueue, tt.wantPriority, tt.wantMinutes)
			}
		})
	}
}
