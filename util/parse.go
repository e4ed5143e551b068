package util

import "strconv"

// TrailingInt parses the integer following the leading letter of a process
// name ("P10" -> 10). Returns false for names with no parseable number.
func TrailingInt(name string) (int, bool) {
	if len(name) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
