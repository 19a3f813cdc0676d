package match

import (
	"sort"
)

// DefaultMinScore is the minimum score for a key to be suggested.
const DefaultMinScore = 0.6

// Candidate is an available key scored against a missing one.
type Candidate struct {
	Key   string
	Score float64 // 0-1, higher is closer
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every key against target and returns them best first.
// target itself is skipped.
func Rank(target string, keys []string) CandidateList {
	candidates := make(CandidateList, 0, len(keys))

	for _, k := range keys {
		if k == target {
			continue
		}

		candidates = append(candidates, Candidate{Key: k, Score: KeyScore(target, k)})
	}

	// Sort by score (descending), then by key for determinism
	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to n keys scoring at least DefaultMinScore against
// target, best first.
func Suggest(target string, keys []string, n int) []string {
	ranked := Rank(target, keys).AboveThreshold(DefaultMinScore).Top(n)

	out := make([]string, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, c.Key)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Key < c[j].Key
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates with a score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
