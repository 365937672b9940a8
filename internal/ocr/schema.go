package ocr

// BuildPayloadJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map, used to validate OCR exports before decoding. Engines attach
// extra keys (orientation, language), so objects stay open.
func BuildPayloadJSONSchema() map[string]any {
	geometryProp := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "number"},
			"minItems": 2,
			"maxItems": 4,
		},
	}

	wordProp := map[string]any{
		"type":     "object",
		"required": []string{"value"},
		"properties": map[string]any{
			"value":      map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"geometry":   geometryProp,
		},
	}

	lineProp := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{"type": "array", "items": wordProp},
		},
	}

	blockProp := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lines": map[string]any{"type": "array", "items": lineProp},
		},
	}

	pageProp := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"page_idx": map[string]any{"type": "integer", "minimum": 0},
			"dimensions": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "integer", "minimum": 0},
				"minItems": 2,
				"maxItems": 2,
			},
			"blocks": map[string]any{"type": "array", "items": blockProp},
		},
	}

	return map[string]any{
		"type":     "object",
		"required": []string{"pages"},
		"properties": map[string]any{
			"pages": map[string]any{"type": "array", "items": pageProp},
		},
	}
}

// BuildCorrectionImportJSONSchema returns the schema for one legacy correction
// record as accepted by the bulk importer.
func BuildCorrectionImportJSONSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"document_id", "original_text", "corrected_text"},
		"properties": map[string]any{
			"document_id":     map[string]any{"type": "string", "minLength": 1},
			"page":            map[string]any{"type": "integer", "minimum": 0},
			"word_id":         map[string]any{"type": "string"},
			"original_text":   map[string]any{"type": "string", "minLength": 1},
			"corrected_text":  map[string]any{"type": "string", "minLength": 1},
			"corrected_bbox":  map[string]any{"type": "array"},
			"user_id":         map[string]any{"type": "string"},
			"timestamp":       map[string]any{"type": "string"},
			"correction_type": map[string]any{"type": "string"},
		},
	}
}
