package dictionary

import (
	"slices"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	DefaultSuggestionLimit  = 3
	DefaultSuggestionCutoff = 0.6
)

// SuggestOptions controls how many close matches are returned and how similar they must be.
type SuggestOptions struct {
	Limit  int
	Cutoff float64
}

// DefaultSuggestOptions returns at most 3 matches with a similarity of 0.6 or more.
func DefaultSuggestOptions() SuggestOptions {
	return SuggestOptions{
		Limit:  DefaultSuggestionLimit,
		Cutoff: DefaultSuggestionCutoff,
	}
}

type scoredWord struct {
	word  string
	score float64
}

// Suggest returns the candidates closest to word, best first. The score is the
// difflib sequence ratio over runes; equal scores keep the order of candidates.
func Suggest(candidates []string, word string, opts SuggestOptions) []string {
	if opts.Limit <= 0 {
		return nil
	}

	target := splitRunes(word)
	matcher := difflib.NewMatcher(nil, target)

	var scored []scoredWord
	for _, candidate := range candidates {
		matcher.SetSeq1(splitRunes(candidate))
		if matcher.RealQuickRatio() < opts.Cutoff ||
			matcher.QuickRatio() < opts.Cutoff {
			continue
		}
		if score := matcher.Ratio(); score >= opts.Cutoff {
			scored = append(scored, scoredWord{word: candidate, score: score})
		}
	}

	slices.SortStableFunc(scored, func(a, b scoredWord) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	suggestions := make([]string, 0, min(len(scored), opts.Limit))
	for _, s := range scored {
		if len(suggestions) == opts.Limit {
			break
		}
		suggestions = append(suggestions, s.word)
	}
	return suggestions
}

// Suggest returns close matches for word among the dictionary's words.
func (d *Dictionary) Suggest(word string, opts SuggestOptions) []string {
	return Suggest(d.words, word, opts)
}

func splitRunes(s string) []string {
	runes := []rune(s)
	result := make([]string, len(runes))
	for i, r := range runes {
		result[i] = string(r)
	}
	return result
}
