package ocr

import (
	"io"
	"log/slog"
	"testing"

	"github.com/veridoc/ocr-review/internal/geometry"
)

func testExtractor() *Extractor {
	return NewExtractor(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func floatPtr(f float64) *float64 { return &f }

func TestExtractPages(t *testing.T) {
	payload := &Payload{
		Pages: []PayloadPage{
			{
				Dimensions: []int{800, 600},
				Blocks: []PayloadBlock{
					{
						Lines: []PayloadLine{
							{
								Words: []PayloadWord{
									{Value: "Total", Confidence: floatPtr(0.97), Geometry: [][]float64{{0.1, 0.2}, {0.3, 0.25}}},
									{Value: "42.00", Confidence: floatPtr(0.88), Geometry: [][]float64{{0.4, 0.2, 0.55, 0.25}}},
									{Value: "   "},
								},
							},
						},
					},
				},
			},
		},
	}

	pages := testExtractor().ExtractPages(payload)
	if len(pages) != 1 {
		t.Fatalf("len(pages) = %d, want 1", len(pages))
	}

	page := pages[0]
	if page.Width != 600 || page.Height != 800 {
		t.Errorf("page size = %dx%d, want 600x800", page.Width, page.Height)
	}
	if len(page.Words) != 2 {
		t.Fatalf("len(words) = %d, want 2 (blank word dropped)", len(page.Words))
	}

	want := geometry.BBox{X1: 0.1, Y1: 0.2, X2: 0.3, Y2: 0.25}
	if page.Words[0].Geometry == nil || *page.Words[0].Geometry != want {
		t.Errorf("words[0].Geometry = %+v, want %+v", page.Words[0].Geometry, want)
	}
	want = geometry.BBox{X1: 0.4, Y1: 0.2, X2: 0.55, Y2: 0.25}
	if page.Words[1].Geometry == nil || *page.Words[1].Geometry != want {
		t.Errorf("words[1].Geometry = %+v, want %+v", page.Words[1].Geometry, want)
	}
}

func TestExtractPages_MalformedGeometryKeepsWord(t *testing.T) {
	payload := &Payload{
		Pages: []PayloadPage{
			{
				Blocks: []PayloadBlock{
					{
						Lines: []PayloadLine{
							{
								Words: []PayloadWord{
									{Value: "REF123", Geometry: [][]float64{{0.1, 0.2, 0.3}}},
									{Value: "nogeo"},
								},
							},
						},
					},
				},
			},
		},
	}

	pages := testExtractor().ExtractPages(payload)
	words := pages[0].Words
	if len(words) != 2 {
		t.Fatalf("len(words) = %d, want 2", len(words))
	}
	if words[0].Geometry != nil {
		t.Errorf("malformed geometry should leave Geometry nil, got %+v", words[0].Geometry)
	}
	if words[0].Text != "REF123" {
		t.Errorf("words[0].Text = %q, want %q", words[0].Text, "REF123")
	}
	if words[1].Geometry != nil {
		t.Errorf("absent geometry should leave Geometry nil, got %+v", words[1].Geometry)
	}
}

func TestExtractPages_ReadingOrderIndexes(t *testing.T) {
	payload := &Payload{
		Pages: []PayloadPage{
			{
				Blocks: []PayloadBlock{
					{Lines: []PayloadLine{
						{Words: []PayloadWord{{Value: "a"}, {Value: "b"}}},
						{Words: []PayloadWord{{Value: "c"}}},
					}},
					{Lines: []PayloadLine{
						{Words: []PayloadWord{{Value: "d"}}},
					}},
				},
			},
		},
	}

	words := testExtractor().ExtractPages(payload)[0].Words

	type pos struct{ block, line, word int }
	want := []pos{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {1, 0, 0}}
	if len(words) != len(want) {
		t.Fatalf("len(words) = %d, want %d", len(words), len(want))
	}
	for i, w := range words {
		got := pos{w.BlockIndex, w.LineIndex, w.WordIndex}
		if got != want[i] {
			t.Errorf("words[%d] position = %+v, want %+v", i, got, want[i])
		}
	}
}
