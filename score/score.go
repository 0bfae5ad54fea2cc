// Package score ranks provider titles against the user's query.
package score

import (
	"slices"
	"strings"
)

// DecayStep is the confidence lost per rank position.
const DecayStep = 0.15

// Decay returns 1 - 0.15*rank. It is negative from rank 7 on.
func Decay(rank int) float64 {
	return 1 - DecayStep*float64(rank)
}

// ClampedDecay is Decay limited to [0, 1].
func ClampedDecay(rank int) float64 {
	return min(max(Decay(rank), 0), 1)
}

// Confidence combines lexical similarity of the lower-cased strings with the
// positional decay of rank.
func Confidence(title, query string, rank int, clamp bool) float64 {
	decay := Decay(rank)
	if clamp {
		decay = ClampedDecay(rank)
	}
	return Similarity(strings.ToLower(title), strings.ToLower(query)) * decay
}

// Similarity is the partial token sort ratio of a and b in [0, 1].
// Tokens are sorted so word order does not matter, then the shorter string is
// aligned against every window of the longer one, including windows that hang
// off either end.
func Similarity(a, b string) float64 {
	return partialRatio([]rune(sortTokens(a)), []rune(sortTokens(b)))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	slices.Sort(tokens)
	return strings.Join(tokens, " ")
}

func partialRatio(s1, s2 []rune) float64 {
	if len(s1) == 0 && len(s2) == 0 {
		return 1
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0
	}
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}

	best := bestWindow(s1, s2)
	if len(s1) == len(s2) {
		best = max(best, bestWindow(s2, s1))
	}
	return best
}

// bestWindow expects len(short) <= len(long).
func bestWindow(short, long []rune) float64 {
	n, m := len(short), len(long)
	best := 0.0

	try := func(window []rune) bool {
		r := ratio(short, window)
		if r > best {
			best = r
		}
		return best == 1
	}

	for i := 1; i < n; i++ {
		if try(long[:i]) {
			return best
		}
	}
	for i := 0; i <= m-n; i++ {
		if try(long[i : i+n]) {
			return best
		}
	}
	for i := m - n + 1; i < m; i++ {
		if try(long[i:]) {
			return best
		}
	}
	return best
}

// ratio is the normalized InDel similarity 2*LCS / (len(a)+len(b)).
func ratio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	return 2 * float64(lcs(a, b)) / float64(total)
}

func lcs(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
