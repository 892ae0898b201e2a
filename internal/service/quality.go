package service

import (
	"strings"
	"unicode/utf8"

	"github.com/lingoproject/lingoquiz/internal/config"
	"github.com/lingoproject/lingoquiz/internal/content"
)

// QualityClassifier decides whether a piece of crowd-sourced text is
// meaningful enough to show a learner. Both predicates are pure; anything
// malformed is classified as generic/invalid rather than rejected with an
// error, because upstream content quality is inherently unreliable.
type QualityClassifier struct {
	rules           *content.Ruleset
	minOptionLength int
	maxOptionLength int
	wordRepeatLimit int
}

// NewQualityClassifier creates a classifier over the given phrase lists
// and thresholds.
func NewQualityClassifier(rules *content.Ruleset, cfg config.Quiz) *QualityClassifier {
	return &QualityClassifier{
		rules:           rules,
		minOptionLength: cfg.MinOptionLength,
		maxOptionLength: cfg.MaxOptionLength,
		wordRepeatLimit: cfg.WordRepeatLimit,
	}
}

// IsGeneric reports whether the text is placeholder, templated or
// meta-commentary content unsuitable for display to an end user.
func (c *QualityClassifier) IsGeneric(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))

	if utf8.RuneCountInString(lower) < 3 {
		return true
	}

	for _, phrase := range c.rules.GenericPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	for _, marker := range c.rules.UncertaintyMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	// "the definition", "this meaning" and friends are commentary about
	// the definition, not a definition.
	for _, noun := range c.rules.MetaNouns {
		if strings.Contains(lower, "the "+noun) || strings.Contains(lower, "this "+noun) {
			return true
		}
	}

	return false
}

// IsValidQuizOption reports whether the text can serve as a multiple
// choice option. excludedTerm is the term the option would define; an
// option containing its own term gives the answer away.
func (c *QualityClassifier) IsValidQuizOption(text, excludedTerm string) bool {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	length := utf8.RuneCountInString(trimmed)
	if length < c.minOptionLength || length > c.maxOptionLength {
		return false
	}

	if c.IsGeneric(trimmed) {
		return false
	}

	if excludedTerm != "" && strings.Contains(lower, strings.ToLower(excludedTerm)) {
		return false
	}

	for _, fragment := range c.rules.ForbiddenFragments {
		if strings.Contains(lower, fragment) {
			return false
		}
	}

	words := strings.Fields(lower)

	// A significant word appearing repeatedly is a strong signal of
	// auto-generated filler.
	if len(words) > 3 {
		counts := make(map[string]int, len(words))
		for _, word := range words {
			if utf8.RuneCountInString(word) > 3 {
				counts[word]++
			}
		}
		for _, count := range counts {
			if count > c.wordRepeatLimit {
				return false
			}
		}
	}

	meaningful := 0
	for _, word := range words {
		if utf8.RuneCountInString(word) <= 3 {
			continue
		}
		if c.isFiller(word) {
			continue
		}
		meaningful++
	}

	return meaningful >= 1
}

func (c *QualityClassifier) isFiller(word string) bool {
	for _, filler := range c.rules.FillerWords {
		if word == filler {
			return true
		}
	}
	return false
}
