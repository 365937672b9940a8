package ocr

import (
	"sort"
	"strings"

	"github.com/veridoc/ocr-review/internal/entity"
)

// Lines reconstructs page text line by line in reading order
// (block, line, word). Words without geometry still take part.
func Lines(words []entity.Word) []string {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]entity.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.BlockIndex != b.BlockIndex {
			return a.BlockIndex < b.BlockIndex
		}
		if a.LineIndex != b.LineIndex {
			return a.LineIndex < b.LineIndex
		}
		return a.WordIndex < b.WordIndex
	})

	var lines []string
	var current []string
	curBlock, curLine := sorted[0].BlockIndex, sorted[0].LineIndex

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = current[:0]
		}
	}

	for _, w := range sorted {
		if w.BlockIndex != curBlock || w.LineIndex != curLine {
			flush()
			curBlock, curLine = w.BlockIndex, w.LineIndex
		}
		if w.Text != "" {
			current = append(current, w.Text)
		}
	}
	flush()

	return lines
}

// FullText joins reconstructed lines with single spaces, the form consumed by
// the classifier.
func FullText(words []entity.Word) string {
	return strings.Join(Lines(words), " ")
}
