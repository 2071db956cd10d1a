package editor

import "github.com/rivo/uniseg"

// Cursor columns and selection widths are grapheme indices, not byte offsets.
// A grapheme may span several bytes and code points ("e" + combining accent is
// one grapheme), so all offset arithmetic goes through these helpers.

// graphemeCount returns the number of grapheme clusters in s.
func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// graphemeToByteOffset converts a grapheme index into a byte offset in s.
// Indices past the end map to len(s).
func graphemeToByteOffset(s string, graphemeIdx int) int {
	if graphemeIdx <= 0 {
		return 0
	}

	idx := 0
	state := -1
	original := s
	for len(s) > 0 {
		_, rest, _, newState := uniseg.StepString(s, state)
		idx++
		if idx == graphemeIdx {
			return len(original) - len(rest)
		}
		s = rest
		state = newState
	}
	return len(original)
}

// sliceByGraphemes returns the substring between grapheme indices [start, end).
func sliceByGraphemes(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}

	startByte := graphemeToByteOffset(s, start)
	endByte := graphemeToByteOffset(s, end)
	if startByte >= len(s) {
		return ""
	}
	return s[startByte:endByte]
}
