package ocr

import (
	"testing"
)

const samplePayload = `{
  "pages": [
    {
      "page_idx": 0,
      "dimensions": [1024, 768],
      "orientation": {"value": 0, "confidence": 0.99},
      "blocks": [
        {
          "lines": [
            {
              "words": [
                {"value": "INVOICE", "confidence": 0.98, "geometry": [[0.1, 0.1], [0.3, 0.15]]},
                {"value": "2024-001", "confidence": 0.91, "geometry": [[0.35, 0.1, 0.5, 0.15]]}
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func TestDecodePayload(t *testing.T) {
	p, err := DecodePayload([]byte(samplePayload))
	if err != nil {
		t.Fatalf("DecodePayload() error = %v", err)
	}

	if len(p.Pages) != 1 {
		t.Fatalf("len(Pages) = %d, want 1", len(p.Pages))
	}
	page := p.Pages[0]
	if page.Width() != 768 || page.Height() != 1024 {
		t.Errorf("page dimensions = %dx%d, want 768x1024", page.Width(), page.Height())
	}

	words := page.Blocks[0].Lines[0].Words
	if len(words) != 2 {
		t.Fatalf("len(words) = %d, want 2", len(words))
	}
	if words[0].Value != "INVOICE" {
		t.Errorf("words[0].Value = %q, want %q", words[0].Value, "INVOICE")
	}
	if words[0].Confidence == nil || *words[0].Confidence != 0.98 {
		t.Errorf("words[0].Confidence = %v, want 0.98", words[0].Confidence)
	}
}

func TestDecodePayload_Invalid(t *testing.T) {
	if _, err := DecodePayload([]byte("{not json")); err == nil {
		t.Fatal("DecodePayload() expected error for malformed JSON")
	}
}

func TestValidatePayloadSchema(t *testing.T) {
	schema := BuildPayloadJSONSchema()

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "valid payload", data: samplePayload, wantErr: false},
		{name: "missing pages", data: `{"document": "x"}`, wantErr: true},
		{
			name:    "word without value",
			data:    `{"pages":[{"blocks":[{"lines":[{"words":[{"confidence":0.5}]}]}]}]}`,
			wantErr: true,
		},
		{
			name:    "confidence out of range",
			data:    `{"pages":[{"blocks":[{"lines":[{"words":[{"value":"a","confidence":1.5}]}]}]}]}`,
			wantErr: true,
		},
		{name: "empty pages", data: `{"pages":[]}`, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(schema, []byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateJSONAgainstSchema() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCorrectionImportSchema(t *testing.T) {
	schema := BuildCorrectionImportJSONSchema()

	valid := `{"document_id":"7f9c24e8-3b2a-4f69-9f8e-111111111111","page":0,"word_id":"w12","original_text":"KOWALSKAK","corrected_text":"KOWALSKA","user_id":"analyst1"}`
	if err := ValidateJSONAgainstSchema(schema, []byte(valid)); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}

	missing := `{"document_id":"x","original_text":"a"}`
	if err := ValidateJSONAgainstSchema(schema, []byte(missing)); err == nil {
		t.Error("record without corrected_text accepted")
	}

	empty := `{"document_id":"x","original_text":"","corrected_text":"b"}`
	if err := ValidateJSONAgainstSchema(schema, []byte(empty)); err == nil {
		t.Error("record with empty original_text accepted")
	}
}
