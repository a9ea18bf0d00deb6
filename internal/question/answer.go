package question

import "strings"

// NormalizeLine trims surrounding whitespace from a code line for matching.
func NormalizeLine(value string) string {
	return strings.TrimSpace(value)
}

// CheckChoice reports whether index selects the correct option. Any index
// outside the options, or a question that is not multiple choice, is wrong.
func CheckChoice(q Question, index int) bool {
	if q.MultipleChoice == nil {
		return false
	}
	if index < 0 || index >= len(q.MultipleChoice.Options) {
		return false
	}
	return index == q.MultipleChoice.CorrectIndex
}

// LinesMatch compares two line sequences position by position after
// trimming each line. Same lines in a different order do not match.
func LinesMatch(working, canonical []string) bool {
	if len(working) != len(canonical) {
		return false
	}
	for i := range working {
		if NormalizeLine(working[i]) != NormalizeLine(canonical[i]) {
			return false
		}
	}
	return true
}

// CheckReorder reports whether working reproduces the canonical order of q.
func CheckReorder(q Question, working []string) bool {
	if q.Reorder == nil {
		return false
	}
	return LinesMatch(working, q.Reorder.Lines)
}

// SameLines reports whether a and b hold the same multiset of lines,
// compared exactly.
func SameLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, line := range a {
		counts[line]++
	}
	for _, line := range b {
		counts[line]--
		if counts[line] < 0 {
			return false
		}
	}
	return true
}
