package geometry

import (
	"fmt"
	"image"
	"math"

	"github.com/veridoc/ocr-review/internal/common"
)

// BBox is a word bounding box normalized to [0,1] relative to the page
// image's pixel dimensions, independent of zoom or display scale.
type BBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// FromPoints normalizes the two accepted geometry encodings into a BBox:
// a two-corner pair [[x1,y1],[x2,y2]] or a flattened box [[x1,y1,x2,y2]].
// Anything else fails with common.ErrBadGeometry.
func FromPoints(points [][]float64) (BBox, error) {
	switch {
	case len(points) == 2 && len(points[0]) == 2 && len(points[1]) == 2:
		return newBBox(points[0][0], points[0][1], points[1][0], points[1][1])
	case len(points) == 1 && len(points[0]) == 4:
		return newBBox(points[0][0], points[0][1], points[0][2], points[0][3])
	default:
		return BBox{}, common.WrapError(common.ErrBadGeometry, fmt.Sprintf("unrecognized point shape %v", points))
	}
}

func newBBox(x1, y1, x2, y2 float64) (BBox, error) {
	for _, v := range [4]float64{x1, y1, x2, y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return BBox{}, common.WrapError(common.ErrBadGeometry, "non-finite coordinate")
		}
	}
	if x2 <= x1 || y2 <= y1 {
		return BBox{}, common.WrapError(common.ErrBadGeometry,
			fmt.Sprintf("degenerate box (%g,%g,%g,%g)", x1, y1, x2, y2))
	}
	return BBox{X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// Points returns the flattened persisted form [[x1,y1,x2,y2]].
func (b BBox) Points() [][]float64 {
	return [][]float64{{b.X1, b.Y1, b.X2, b.Y2}}
}

func (b BBox) Width() float64 {
	return b.X2 - b.X1
}

func (b BBox) Height() float64 {
	return b.Y2 - b.Y1
}

// PixelRect denormalizes the box against a page image of the given pixel
// dimensions, clamped to the image bounds.
func (b BBox) PixelRect(width, height int) image.Rectangle {
	r := image.Rect(
		int(math.Floor(b.X1*float64(width))),
		int(math.Floor(b.Y1*float64(height))),
		int(math.Ceil(b.X2*float64(width))),
		int(math.Ceil(b.Y2*float64(height))),
	)
	return r.Intersect(image.Rect(0, 0, width, height))
}
