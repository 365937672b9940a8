package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatWordRef builds the positional reference "page:block:line:word" used
// by corrections and training samples. Positions survive re-recognition,
// word row IDs do not.
func FormatWordRef(pageIndex, blockIndex, lineIndex, wordIndex int) string {
	return fmt.Sprintf("%d:%d:%d:%d", pageIndex, blockIndex, lineIndex, wordIndex)
}

// WordRefOf is FormatWordRef for a loaded word.
func WordRefOf(w Word) string {
	return FormatWordRef(w.PageIndex, w.BlockIndex, w.LineIndex, w.WordIndex)
}

// ParseWordRef splits a positional reference back into its four indexes.
func ParseWordRef(ref string) (pageIndex, blockIndex, lineIndex, wordIndex int, err error) {
	parts := strings.Split(ref, ":")
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("word ref %q: want page:block:line:word", ref)
	}
	idx := make([]int, 4)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || n < 0 {
			return 0, 0, 0, 0, fmt.Errorf("word ref %q: bad index %q", ref, p)
		}
		idx[i] = n
	}
	return idx[0], idx[1], idx[2], idx[3], nil
}
