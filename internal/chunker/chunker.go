package chunker

import "strings"

const (
	// DefaultSize is the default chunk window width in runes.
	DefaultSize = 512

	// DefaultOverlap is the default number of runes shared between
	// consecutive windows.
	DefaultOverlap = 50
)

// Chunk splits text into overlapping windows of at most size runes.
// Windows advance by size-overlap runes; each window is trimmed and
// dropped if empty after trimming. The final window is clipped to the
// end of the input rather than padded.
//
// size is clamped to at least 1 and overlap to [0, size-1]; an overlap
// of size or more would stall progress. Empty or whitespace-only input
// yields no chunks.
//
// Windows are measured in runes so multi-byte text never splits inside
// a code point.
func Chunk(text string, size, overlap int) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if size < 1 {
		size = 1
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap > size-1 {
		overlap = size - 1
	}

	runes := []rune(trimmed)
	var chunks []string

	start := 0
	for start < len(runes) {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end >= len(runes) {
			break
		}
		start = end - overlap
	}

	return chunks
}
