package model

import "strconv"

// FormatIndex builds the symbolic index for the article at the given
// zero-based position within its group: group prefix + 1-based ordinal.
// Unique within {group, run}; not stable across runs.
func FormatIndex(prefix string, pos int) string {
	return prefix + strconv.Itoa(pos+1)
}

// ParseIndex recovers the zero-based position from a symbolic index.
// The prefix must match exactly and the suffix must be a plain 1-based
// decimal ordinal; anything else reports false.
func ParseIndex(prefix, ref string) (int, bool) {
	if prefix == "" || len(ref) <= len(prefix) || ref[:len(prefix)] != prefix {
		return 0, false
	}
	digits := ref[len(prefix):]
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
