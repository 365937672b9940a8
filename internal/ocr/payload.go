package ocr

import (
	"github.com/bytedance/sonic"

	"github.com/veridoc/ocr-review/internal/common"
)

// Payload is the OCR engine's JSON export: pages of blocks of lines of words.
// Word geometry arrives in one of two encodings, normalized during extraction.
type Payload struct {
	Pages []PayloadPage `json:"pages"`
}

type PayloadPage struct {
	PageIndex int `json:"page_idx"`
	// Dimensions is [height, width] in pixels, engine order.
	Dimensions []int          `json:"dimensions,omitempty"`
	Blocks     []PayloadBlock `json:"blocks"`
}

type PayloadBlock struct {
	Lines []PayloadLine `json:"lines"`
}

type PayloadLine struct {
	Words []PayloadWord `json:"words"`
}

type PayloadWord struct {
	Value      string      `json:"value"`
	Confidence *float64    `json:"confidence,omitempty"`
	Geometry   [][]float64 `json:"geometry,omitempty"`
}

// DecodePayload parses an OCR export. Payloads run to thousands of words, so
// decoding goes through sonic rather than encoding/json.
func DecodePayload(data []byte) (*Payload, error) {
	var p Payload
	if err := sonic.Unmarshal(data, &p); err != nil {
		return nil, common.WrapError(err, "decode ocr payload")
	}
	return &p, nil
}

// Width returns the page pixel width, or 0 when the payload omits dimensions.
func (p PayloadPage) Width() int {
	if len(p.Dimensions) == 2 {
		return p.Dimensions[1]
	}
	return 0
}

// Height returns the page pixel height, or 0 when the payload omits dimensions.
func (p PayloadPage) Height() int {
	if len(p.Dimensions) == 2 {
		return p.Dimensions[0]
	}
	return 0
}
