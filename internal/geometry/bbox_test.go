package geometry

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/veridoc/ocr-review/internal/common"
)

func TestFromPoints_AcceptedEncodings(t *testing.T) {
	want := BBox{X1: 0.1, Y1: 0.2, X2: 0.3, Y2: 0.4}

	tests := []struct {
		name   string
		points [][]float64
	}{
		{
			name:   "two corner points",
			points: [][]float64{{0.1, 0.2}, {0.3, 0.4}},
		},
		{
			name:   "flattened box",
			points: [][]float64{{0.1, 0.2, 0.3, 0.4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromPoints(tt.points)
			if err != nil {
				t.Fatalf("FromPoints() error = %v", err)
			}
			if got != want {
				t.Errorf("FromPoints() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestFromPoints_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		points [][]float64
	}{
		{name: "nil", points: nil},
		{name: "empty", points: [][]float64{}},
		{name: "single corner", points: [][]float64{{0.1, 0.2}}},
		{name: "three points", points: [][]float64{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}}},
		{name: "three element row", points: [][]float64{{0.1, 0.2, 0.3}}},
		{name: "five element row", points: [][]float64{{0.1, 0.2, 0.3, 0.4, 0.5}}},
		{name: "zero width", points: [][]float64{{0.1, 0.2, 0.1, 0.4}}},
		{name: "inverted corners", points: [][]float64{{0.3, 0.4}, {0.1, 0.2}}},
		{name: "nan coordinate", points: [][]float64{{math.NaN(), 0.2, 0.3, 0.4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromPoints(tt.points)
			if err == nil {
				t.Fatalf("FromPoints(%v) expected error, got nil", tt.points)
			}
			if !errors.Is(err, common.ErrBadGeometry) {
				t.Errorf("FromPoints(%v) error = %v, want ErrBadGeometry", tt.points, err)
			}
		})
	}
}

func TestBBox_Points_RoundTrip(t *testing.T) {
	box := BBox{X1: 0.05, Y1: 0.1, X2: 0.95, Y2: 0.2}

	got, err := FromPoints(box.Points())
	if err != nil {
		t.Fatalf("FromPoints(Points()) error = %v", err)
	}
	if got != box {
		t.Errorf("round trip = %+v, want %+v", got, box)
	}
}

func TestBBox_PixelRect(t *testing.T) {
	tests := []struct {
		name   string
		box    BBox
		width  int
		height int
		want   image.Rectangle
	}{
		{
			name:   "interior box",
			box:    BBox{X1: 0.1, Y1: 0.2, X2: 0.3, Y2: 0.4},
			width:  1000,
			height: 800,
			want:   image.Rect(100, 160, 300, 320),
		},
		{
			name:   "clamped to image bounds",
			box:    BBox{X1: -0.2, Y1: 0.5, X2: 1.4, Y2: 1.1},
			width:  100,
			height: 100,
			want:   image.Rect(0, 50, 100, 100),
		},
		{
			name:   "fractional edges round outward",
			box:    BBox{X1: 0.111, Y1: 0.111, X2: 0.222, Y2: 0.222},
			width:  100,
			height: 100,
			want:   image.Rect(11, 11, 23, 23),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.box.PixelRect(tt.width, tt.height)
			if got != tt.want {
				t.Errorf("PixelRect(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}
