package metrics

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the counters incremented along the correction path. Each
// Recorder owns its registry, so tests can create one per case without
// duplicate-registration panics.
type Recorder struct {
	CorrectionsRecorded prometheus.Counter
	NoopRejected        prometheus.Counter
	WordsRewritten      *prometheus.CounterVec
	LexiconPromotions   prometheus.Counter
	LexiconOverwrites   prometheus.Counter
	TrainingSamples     prometheus.Counter

	registry *prometheus.Registry
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	factory := promauto.With(reg)
	return &Recorder{
		CorrectionsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "corrections_recorded_total",
			Help: "Corrections appended to the log.",
		}),
		NoopRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "noop_corrections_rejected_total",
			Help: "Corrections rejected because the text did not change.",
		}),
		WordsRewritten: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "words_rewritten_total",
			Help: "Word rewrites applied during resolution, by strategy.",
		}, []string{"strategy"}),
		LexiconPromotions: factory.NewCounter(prometheus.CounterOpts{
			Name: "lexicon_promotions_total",
			Help: "Correction patterns promoted into the lexicon.",
		}),
		LexiconOverwrites: factory.NewCounter(prometheus.CounterOpts{
			Name: "lexicon_overwrites_total",
			Help: "Lexicon entries whose corrected text was replaced.",
		}),
		TrainingSamples: factory.NewCounter(prometheus.CounterOpts{
			Name: "training_samples_total",
			Help: "Training samples collected from corrected words.",
		}),
		registry: reg,
	}
}

// Handler exposes the recorder's registry in Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// StartServer runs the health/metrics listener in the background and returns
// the server so the caller can shut it down.
//
//   - /metrics  Prometheus scrape endpoint
//   - /healthz  liveness: 200 while the process is up
//   - /readyz   readiness: 200 once ready() reports true
func StartServer(addr string, rec *Recorder, ready func() bool, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if ready == nil || ready() {
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("health server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("health server stopped", "error", err)
		}
	}()

	return server
}
