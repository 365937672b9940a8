package ocr

import (
	"reflect"
	"testing"

	"github.com/veridoc/ocr-review/internal/entity"
)

func word(block, line, idx int, text string) entity.Word {
	return entity.Word{BlockIndex: block, LineIndex: line, WordIndex: idx, Text: text}
}

func TestLines(t *testing.T) {
	words := []entity.Word{
		word(0, 0, 0, "ACME"),
		word(0, 0, 1, "GmbH"),
		word(0, 1, 0, "Invoice"),
		word(0, 1, 1, "2024-001"),
		word(1, 0, 0, "Total"),
	}

	got := Lines(words)
	want := []string{"ACME GmbH", "Invoice 2024-001", "Total"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestLines_UnsortedInput(t *testing.T) {
	words := []entity.Word{
		word(1, 0, 0, "Total"),
		word(0, 0, 1, "GmbH"),
		word(0, 1, 0, "Invoice"),
		word(0, 0, 0, "ACME"),
	}

	got := Lines(words)
	want := []string{"ACME GmbH", "Invoice", "Total"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestLines_Empty(t *testing.T) {
	if got := Lines(nil); got != nil {
		t.Errorf("Lines(nil) = %v, want nil", got)
	}
}

func TestFullText(t *testing.T) {
	words := []entity.Word{
		word(0, 0, 0, "amount"),
		word(0, 1, 0, "due"),
	}
	if got := FullText(words); got != "amount due" {
		t.Errorf("FullText() = %q, want %q", got, "amount due")
	}
}
