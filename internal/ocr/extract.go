package ocr

import (
	"log/slog"
	"strings"

	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/geometry"
)

// ExtractedPage is one payload page flattened into words in reading order
// (block, line, word), ready for persistence.
type ExtractedPage struct {
	PageIndex int
	Width     int
	Height    int
	Words     []entity.Word
}

type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ExtractPages flattens a decoded payload. Empty-text words are dropped.
// A word whose geometry matches neither accepted encoding is kept without
// geometry and logged; it still counts for line reconstruction but is never
// auto-corrected or cropped.
func (e *Extractor) ExtractPages(p *Payload) []ExtractedPage {
	pages := make([]ExtractedPage, 0, len(p.Pages))

	for pageIdx, page := range p.Pages {
		out := ExtractedPage{
			PageIndex: pageIdx,
			Width:     page.Width(),
			Height:    page.Height(),
		}

		for blockIdx, block := range page.Blocks {
			for lineIdx, line := range block.Lines {
				for wordIdx, word := range line.Words {
					text := strings.TrimSpace(word.Value)
					if text == "" {
						continue
					}

					w := entity.Word{
						PageIndex:  pageIdx,
						BlockIndex: blockIdx,
						LineIndex:  lineIdx,
						WordIndex:  wordIdx,
						Text:       text,
						Confidence: word.Confidence,
					}

					if len(word.Geometry) > 0 {
						box, err := geometry.FromPoints(word.Geometry)
						if err != nil {
							e.logger.Warn("ocr.word.geometry.invalid",
								"page", pageIdx, "block", blockIdx, "line", lineIdx,
								"word", wordIdx, "text", text, "error", err)
						} else {
							w.Geometry = &box
						}
					}

					out.Words = append(out.Words, w)
				}
			}
		}

		pages = append(pages, out)
	}

	return pages
}
