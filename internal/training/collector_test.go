package training

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/internal/common"
	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/geometry"
)

type fakeStore struct {
	saved []entity.TrainingSample
	err   error
}

func (f *fakeStore) Save(_ context.Context, s entity.TrainingSample) (*entity.TrainingSample, error) {
	if f.err != nil {
		return nil, f.err
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	f.saved = append(f.saved, s)
	return &s, nil
}

func newTestCollector(t *testing.T, store *fakeStore, minSamples int) (*Collector, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := common.TrainingConfig{SamplesDir: dir, MinSamples: minSamples}
	return NewCollector(store, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), dir
}

func makePageImage(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "page-0.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create page image: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode page image: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close page image: %v", err)
	}
	return path
}

func sampleRequest(pagePath string) Request {
	box := geometry.BBox{X1: 0.2, Y1: 0.25, X2: 0.6, Y2: 0.75}
	return Request{
		DocumentID:    uuid.New(),
		PageIndex:     0,
		WordRef:       "0:1:2:3",
		OriginalText:  "T0TAL",
		CorrectedText: "TOTAL",
		BBox:          &box,
		PageImagePath: pagePath,
	}
}

func TestCollector_Collect(t *testing.T) {
	store := &fakeStore{}
	c, dir := newTestCollector(t, store, 10)

	req := sampleRequest(makePageImage(t, 100, 80))
	sample, err := c.Collect(context.Background(), req)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(store.saved) != 1 {
		t.Fatalf("store rows = %d, want 1", len(store.saved))
	}
	if store.saved[0].ImagePath != sample.ImagePath {
		t.Errorf("stored ImagePath = %q, want %q", store.saved[0].ImagePath, sample.ImagePath)
	}

	f, err := os.Open(sample.ImagePath)
	if err != nil {
		t.Fatalf("open crop: %v", err)
	}
	defer f.Close()
	crop, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode crop: %v", err)
	}
	// 0.2..0.6 of 100 and 0.25..0.75 of 80
	if got := crop.Bounds(); got.Dx() != 40 || got.Dy() != 40 {
		t.Errorf("crop size = %dx%d, want 40x40", got.Dx(), got.Dy())
	}

	sidecarPath := sample.ImagePath[:len(sample.ImagePath)-len(".png")] + ".json"
	raw, err := os.ReadFile(sidecarPath)
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	var sc Sidecar
	if err := json.Unmarshal(raw, &sc); err != nil {
		t.Fatalf("decode sidecar: %v", err)
	}
	if sc.DocumentID != req.DocumentID || sc.WordRef != req.WordRef {
		t.Errorf("sidecar = %+v, want request identifiers", sc)
	}
	if sc.OriginalText != "T0TAL" || sc.CorrectedText != "TOTAL" {
		t.Errorf("sidecar texts = %q -> %q, want T0TAL -> TOTAL", sc.OriginalText, sc.CorrectedText)
	}
	if sc.CreatedAt.IsZero() {
		t.Error("sidecar timestamp is zero")
	}
	if len(sc.BBox) != 1 || len(sc.BBox[0]) != 4 {
		t.Errorf("sidecar bbox = %v, want one flattened box", sc.BBox)
	}

	if filepath.Dir(sample.ImagePath) != dir {
		t.Errorf("ImagePath = %q, want file under %q", sample.ImagePath, dir)
	}

	n, err := c.CountSamples()
	if err != nil {
		t.Fatalf("CountSamples() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CountSamples() = %d, want 1", n)
	}
}

func TestCollector_Collect_Rejections(t *testing.T) {
	store := &fakeStore{}
	c, _ := newTestCollector(t, store, 10)
	pagePath := makePageImage(t, 100, 80)

	noGeometry := sampleRequest(pagePath)
	noGeometry.BBox = nil

	blankText := sampleRequest(pagePath)
	blankText.CorrectedText = ""

	badExt := sampleRequest(pagePath)
	badExt.PageImagePath = "/tmp/page.pdf"

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "missing geometry", req: noGeometry, wantErr: common.ErrBadGeometry},
		{name: "blank corrected text", req: blankText, wantErr: common.ErrInvalidInput},
		{name: "unsupported page image", req: badExt, wantErr: common.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Collect(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Collect() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if len(store.saved) != 0 {
		t.Errorf("store rows = %d, want 0", len(store.saved))
	}
}

func TestCollector_Collect_MissingPageImage(t *testing.T) {
	c, _ := newTestCollector(t, &fakeStore{}, 10)

	req := sampleRequest(filepath.Join(t.TempDir(), "gone.png"))
	if _, err := c.Collect(context.Background(), req); err == nil {
		t.Error("Collect() expected error for missing page image")
	}
}

func TestCollector_Collect_StoreFailureKeepsFiles(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	c, _ := newTestCollector(t, store, 10)

	if _, err := c.Collect(context.Background(), sampleRequest(makePageImage(t, 100, 80))); err == nil {
		t.Fatal("Collect() expected store error")
	}

	// files survive a failed catalog write so the row can be backfilled
	n, err := c.CountSamples()
	if err != nil {
		t.Fatalf("CountSamples() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CountSamples() = %d, want 1", n)
	}
}

func TestCollector_Readiness(t *testing.T) {
	store := &fakeStore{}
	c, _ := newTestCollector(t, store, 2)
	pagePath := makePageImage(t, 100, 80)

	ready, msg, err := c.Readiness()
	if err != nil {
		t.Fatalf("Readiness() error = %v", err)
	}
	if ready || msg != "insufficient samples: 0/2" {
		t.Errorf("Readiness() = %v %q, want not ready 0/2", ready, msg)
	}

	for i := 0; i < 2; i++ {
		if _, err := c.Collect(context.Background(), sampleRequest(pagePath)); err != nil {
			t.Fatalf("Collect() error = %v", err)
		}
	}

	ready, msg, err = c.Readiness()
	if err != nil {
		t.Fatalf("Readiness() error = %v", err)
	}
	if !ready || msg != "ready to train with 2 samples" {
		t.Errorf("Readiness() = %v %q, want ready with 2 samples", ready, msg)
	}
}

func TestCollector_CountSamples_MissingDir(t *testing.T) {
	store := &fakeStore{}
	cfg := common.TrainingConfig{SamplesDir: filepath.Join(t.TempDir(), "never-created"), MinSamples: 10}
	c := NewCollector(store, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	n, err := c.CountSamples()
	if err != nil {
		t.Fatalf("CountSamples() error = %v", err)
	}
	if n != 0 {
		t.Errorf("CountSamples() = %d, want 0", n)
	}
}
