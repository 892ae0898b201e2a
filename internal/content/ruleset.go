// Package content holds the static lookup tables the quiz engine is
// configured with: generic-phrase lists, bilingual glossaries, prompt
// templates and language script rules. Everything here is loaded once at
// process start and passed by reference into the services; nothing is
// mutated afterwards.
package content

// Ruleset groups the phrase lists used by the quality classifier.
type Ruleset struct {
	// GenericPhrases mark placeholder or templated text. A single
	// case-insensitive substring match classifies the text as generic.
	GenericPhrases []string

	// UncertaintyMarkers are hedging fragments typical of auto-generated
	// definitions ("might be", "cannot be determined", ...).
	UncertaintyMarkers []string

	// MetaNouns are checked as "the <noun>" and "this <noun>" patterns,
	// catching meta-commentary about the definition itself.
	MetaNouns []string

	// ForbiddenFragments disqualify a text from being a quiz option even
	// when it is not generic.
	ForbiddenFragments []string

	// FillerWords are excluded when counting meaningful words.
	FillerWords []string

	// StopWords are removed before computing word-overlap similarity.
	StopWords []string
}

// DefaultRuleset returns the curated phrase lists.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		GenericPhrases: []string{
			"slang term", "colloquial phrase", "tongue twister",
			"street language", "local expression", "insult", "compliment", "greeting", "farewell",
			"idiomatic expression", "common phrase", "regional saying",
			"a phrase used", "a term for", "a word for", "a way to",
			"in lunfardo", "argentine slang", "argentinian slang", "german slang", "australian slang",
			"used to address", "used to refer", "used to describe", "used to express",
			"no translation", "no definite translation", "no clear translation",
			"chapter:", "page:", "section:",
			"see notes", "see above", "see below", "see entry",
			"placeholder", "todo", "tbd", "to be determined",
			"translation needed", "needs translation", "requires translation",
			"traduccion", "[traducción", "[translation]",
			"ai generated", "automatically generated", "auto-generated",
			"this term", "this word", "this phrase", "this expression",
			"the term appears", "the word appears", "appears to be",
			"might be", "could be", "possibly", "perhaps",
			"without context", "context needed", "more context required",
		},
		UncertaintyMarkers: []string{
			"the provided entry", "the given entry", "this entry",
			"lacks", "doesn't offer", "doesn't provide",
			"insufficient information", "limited information",
			"cannot be determined", "unclear from", "ambiguous",
			"requires more", "needs more", "without further",
		},
		MetaNouns: []string{
			"definition", "meaning", "explanation", "translation",
			"entry", "text", "content", "information",
		},
		ForbiddenFragments: []string{
			"the provided entry", "example", "context", "ambiguous", "without further information",
			"missing", "insufficient", "no further", "cannot be determined", "no specific", "requires more",
			"see notes", "see above", "see below", "typo", "abbreviation", "truncated", "unclear", "unknown",
			"not enough", "no translation", "not specified", "not available", "not given", "not provided",
			"definition is", "entry only", "entry does not", "entry indicates", "entry shows", "entry lists",
			"entry includes", "entry describes", "entry highlights", "entry notes", "entry mentions",
			"entry refers", "entry suggests", "entry states", "entry uses", "entry provides",
			"context-dependent", "context dependent", "contextual", "contextually",
			"uncertain", "unspecified", "multi-meaning", "contradictory",
			"further information", "more information", "more context", "not enough context",
			"cannot determine", "not determinable", "not possible", "not clear",
			"not found", "not listed", "not defined", "not described", "not explained", "not elaborated",
			"not detailed", "not explicit",
			"based on the", "according to", "it appears", "it seems", "likely", "probably",
			"chapter", "page", "section", "document", "source",
			"variant of", "variation of", "similar to", "related to", "type of",
		},
		FillerWords: []string{"the", "and", "that", "with", "for"},
		StopWords: []string{
			"a", "an", "the", "of", "to", "and", "or", "in", "on", "at", "for", "with", "by",
		},
	}
}
