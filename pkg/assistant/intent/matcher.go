// Package intent resolves a user utterance to the best-matching trigger
// phrase from a candidate set.
package intent

import (
	"strings"

	"classrecord-be/pkg/assistant/similarity"
)

// Result is a successful match against a candidate set.
type Result struct {
	Index  int     // position of the winning phrase in the candidate slice
	Phrase string  // the winning phrase, as declared
	Score  float64 // similarity percentage, always >= the threshold used
}

// Match scores the utterance against every candidate phrase and returns
// the highest-scoring one at or above threshold. Ties keep the first
// declared candidate, so results are deterministic for a fixed set.
func Match(utterance string, phrases []string, threshold float64) (Result, bool) {
	return match(utterance, phrases, threshold, false)
}

// MatchPrefix behaves like Match but scores each candidate against the
// utterance truncated to the candidate's length. Trailing free text
// (such as note content after a trigger phrase) then no longer dilutes
// the score of a short trigger.
func MatchPrefix(utterance string, phrases []string, threshold float64) (Result, bool) {
	return match(utterance, phrases, threshold, true)
}

func match(utterance string, phrases []string, threshold float64, prefix bool) (Result, bool) {
	normalized := Normalize(utterance)

	best := Result{Index: -1}
	for i, phrase := range phrases {
		candidate := Normalize(phrase)
		input := normalized
		if prefix && len(input) > len(candidate) {
			input = input[:len(candidate)]
		}
		score := similarity.Score(input, candidate)
		if score > best.Score {
			best = Result{Index: i, Phrase: phrase, Score: score}
		}
	}

	if best.Index < 0 || best.Score < threshold {
		return Result{Index: -1}, false
	}
	return best, true
}

// Normalize lowercases and trims an utterance before scoring.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
