package service

import "strings"

// SimilarityChecker decides whether two candidate meanings are too alike
// to coexist as option and distractor in one question.
type SimilarityChecker struct {
	stopWords map[string]struct{}
	threshold float64 // Jaccard overlap above which meanings are too similar
}

// NewSimilarityChecker creates a checker with the given stop words and
// similarity threshold.
func NewSimilarityChecker(stopWords []string, threshold float64) *SimilarityChecker {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[w] = struct{}{}
	}
	return &SimilarityChecker{
		stopWords: set,
		threshold: threshold,
	}
}

// TooSimilar reports whether two meanings overlap too much to be a good
// option/distractor pair. Near-empty text is conservatively treated as
// too similar so it never ends up as either option.
func (c *SimilarityChecker) TooSimilar(meaningA, meaningB string) bool {
	wordsA := c.wordSet(meaningA)
	wordsB := c.wordSet(meaningB)

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return true
	}

	intersection := 0
	union := len(wordsB)
	for word := range wordsA {
		if _, ok := wordsB[word]; ok {
			intersection++
		} else {
			union++
		}
	}

	similarity := float64(intersection) / float64(union)
	return similarity > c.threshold
}

func (c *SimilarityChecker) wordSet(meaning string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(meaning))
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		if _, stop := c.stopWords[word]; stop {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}
