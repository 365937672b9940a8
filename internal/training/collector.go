// Package training collects word-level crops from corrected documents as
// recognition training samples. Model training itself happens elsewhere;
// this package only builds the dataset.
package training

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "image/jpeg"
	"image/png"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/veridoc/ocr-review/constants"
	"github.com/veridoc/ocr-review/internal/common"
	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/geometry"
)

// Store persists the sample catalog rows.
type Store interface {
	Save(ctx context.Context, sample entity.TrainingSample) (*entity.TrainingSample, error)
}

// Request describes one corrected word to sample.
type Request struct {
	DocumentID    uuid.UUID
	PageIndex     int
	WordRef       string
	OriginalText  string
	CorrectedText string
	BBox          *geometry.BBox
	PageImagePath string
}

// Sidecar is the metadata file written next to each crop. Field names match
// the dataset loader's expectations.
type Sidecar struct {
	DocumentID    uuid.UUID   `json:"document_id"`
	Page          int         `json:"page"`
	WordRef       string      `json:"word_ref"`
	OriginalText  string      `json:"original_text"`
	CorrectedText string      `json:"corrected_text"`
	BBox          [][]float64 `json:"bbox,omitempty"`
	CreatedAt     time.Time   `json:"timestamp"`
}

// Collector crops corrected words out of stored page images and writes
// <sample-id>.png plus <sample-id>.json pairs under the samples directory.
type Collector struct {
	store  Store
	cfg    common.TrainingConfig
	logger *slog.Logger
}

func NewCollector(store Store, cfg common.TrainingConfig, logger *slog.Logger) *Collector {
	return &Collector{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// Collect crops the word region from the page image and records the sample
// on disk and in the catalog. Words without usable geometry cannot be
// sampled.
func (c *Collector) Collect(ctx context.Context, req Request) (*entity.TrainingSample, error) {
	if req.OriginalText == "" || req.CorrectedText == "" {
		return nil, common.NewAppError("TRAINING_SAMPLE", "sample needs original and corrected text", common.ErrInvalidInput)
	}
	if req.BBox == nil {
		return nil, fmt.Errorf("word has no usable geometry: %w", common.ErrBadGeometry)
	}
	if !constants.IsImageExt(filepath.Ext(req.PageImagePath)) {
		return nil, common.NewAppError("TRAINING_SAMPLE",
			fmt.Sprintf("unsupported page image %q", req.PageImagePath), common.ErrInvalidInput)
	}

	src, err := loadImage(req.PageImagePath)
	if err != nil {
		return nil, fmt.Errorf("load page image: %w", err)
	}

	bounds := src.Bounds()
	rect := req.BBox.PixelRect(bounds.Dx(), bounds.Dy()).Add(bounds.Min)
	if rect.Empty() {
		return nil, fmt.Errorf("bbox outside page image: %w", common.ErrBadGeometry)
	}

	crop := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Copy(crop, image.Point{}, src, rect, draw.Src, nil)

	if err := os.MkdirAll(c.cfg.SamplesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create samples dir: %w", err)
	}

	sampleID := uuid.New()
	imagePath := filepath.Join(c.cfg.SamplesDir, sampleID.String()+".png")
	sidecarPath := filepath.Join(c.cfg.SamplesDir, sampleID.String()+".json")

	if err := writePNG(imagePath, crop); err != nil {
		return nil, fmt.Errorf("write sample image: %w", err)
	}

	sidecar := Sidecar{
		DocumentID:    req.DocumentID,
		Page:          req.PageIndex,
		WordRef:       req.WordRef,
		OriginalText:  req.OriginalText,
		CorrectedText: req.CorrectedText,
		BBox:          req.BBox.Points(),
		CreatedAt:     time.Now().UTC(),
	}
	data, err := sonic.MarshalIndent(sidecar, "", "  ")
	if err != nil {
		os.Remove(imagePath)
		return nil, fmt.Errorf("encode sample metadata: %w", err)
	}
	if err := os.WriteFile(sidecarPath, data, 0o644); err != nil {
		os.Remove(imagePath)
		return nil, fmt.Errorf("write sample metadata: %w", err)
	}

	sample, err := c.store.Save(ctx, entity.TrainingSample{
		DocumentID:    req.DocumentID,
		WordRef:       req.WordRef,
		ImagePath:     imagePath,
		OriginalText:  req.OriginalText,
		CorrectedText: req.CorrectedText,
	})
	if err != nil {
		// files stay on disk, the catalog row can be backfilled
		return nil, fmt.Errorf("save sample row: %w", err)
	}

	c.logger.Info("training.sample.collected",
		"sample_id", sample.ID,
		"document_id", req.DocumentID,
		"word_ref", req.WordRef,
		"image_path", imagePath)
	return sample, nil
}

// CountSamples counts sidecar files in the samples directory. A missing
// directory counts as zero.
func (c *Collector) CountSamples() (int, error) {
	matches, err := filepath.Glob(filepath.Join(c.cfg.SamplesDir, "*.json"))
	if err != nil {
		return 0, fmt.Errorf("scan samples dir: %w", err)
	}
	return len(matches), nil
}

// Readiness reports whether enough samples exist to start a training run.
func (c *Collector) Readiness() (bool, string, error) {
	n, err := c.CountSamples()
	if err != nil {
		return false, "", err
	}
	if n < c.cfg.MinSamples {
		return false, fmt.Sprintf("insufficient samples: %d/%d", n, c.cfg.MinSamples), nil
	}
	return true, fmt.Sprintf("ready to train with %d samples", n), nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
