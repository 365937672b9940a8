package metrics

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecorder_CountersExposed(t *testing.T) {
	rec := NewRecorder()
	rec.CorrectionsRecorded.Inc()
	rec.NoopRejected.Inc()
	rec.WordsRewritten.WithLabelValues("exact").Inc()
	rec.WordsRewritten.WithLabelValues("exact").Inc()
	rec.LexiconPromotions.Inc()
	rec.LexiconOverwrites.Inc()
	rec.TrainingSamples.Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()

	for _, want := range []string{
		"corrections_recorded_total 1",
		"noop_corrections_rejected_total 1",
		`words_rewritten_total{strategy="exact"} 2`,
		"lexicon_promotions_total 1",
		"lexicon_overwrites_total 1",
		"training_samples_total 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	// Two recorders must not collide on registration.
	a := NewRecorder()
	b := NewRecorder()
	a.CorrectionsRecorded.Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	b.Handler().ServeHTTP(w, req)

	if strings.Contains(w.Body.String(), "corrections_recorded_total 1") {
		t.Error("recorder b sees recorder a's counts")
	}
}

func TestStartServer_Probes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := NewRecorder()

	ready := false
	server := StartServer("127.0.0.1:0", rec, func() bool { return ready }, logger)
	defer func() { _ = server.Close() }()

	mux := server.Handler

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET /healthz = %d, want %d", w.Code, http.StatusOK)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /readyz before ready = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	ready = true
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET /readyz after ready = %d, want %d", w.Code, http.StatusOK)
	}
}
