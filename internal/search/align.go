package search

import "strings"

// Alignment scoring constants. Fixed policy, not configurable.
const (
	matchScore      = 2
	mismatchPenalty = -1
	gapPenalty      = -2

	exactBoost  = 10000
	prefixBoost = 5000
)

// Align computes a Smith-Waterman local-alignment score between query and
// candidate over their rune sequences. The boundary row and column are fixed
// at zero, every cell is floored at zero, and the result is the maximum value
// anywhere in the table. Either side empty scores 0.
func Align(query, candidate string) int {
	q := []rune(query)
	c := []rune(candidate)
	m := len(q)
	n := len(c)
	if m == 0 || n == 0 {
		return 0
	}

	// Two-row DP: prev holds row i-1, curr is filled left to right. Index 0
	// of each row is the zero boundary column and is never written.
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	best := 0
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag := prev[j-1] + mismatchPenalty
			if q[i-1] == c[j-1] {
				diag = prev[j-1] + matchScore
			}
			score := max(0, diag, prev[j]+gapPenalty, curr[j-1]+gapPenalty)
			curr[j] = score
			if score > best {
				best = score
			}
		}
		prev, curr = curr, prev
	}
	return best
}

// Score returns the alignment score for (query, candidate) plus the
// exact-match and prefix-match boosts. Both relations are evaluated on the
// inputs as given; callers fold case beforehand. The boosts dwarf any
// reachable alignment score, so exact matches always outrank prefix matches,
// which always outrank purely fuzzy ones.
func Score(query, candidate string) int {
	if query == "" || candidate == "" {
		return 0
	}
	score := Align(query, candidate)
	if query == candidate {
		score += exactBoost
	} else if strings.HasPrefix(candidate, query) {
		score += prefixBoost
	}
	return score
}
