// Package entities contains domain entities used across the application.
package entities

import "strings"

// Category is the standardized type of a dictionary entry.
type Category string

const (
	CategoryUnset            Category = ""
	CategorySlang            Category = "slang"
	CategoryInsults          Category = "insults"
	CategoryJokes            Category = "jokes"
	CategoryTongueTwisters   Category = "tongue_twisters"
	CategoryColloquialPhrase Category = "colloquial_phrases"
	CategoryUniqueConcepts   Category = "unique_concepts"
)

// ParseCategory maps a raw category string to a known Category.
// Unknown values map to CategoryUnset because upstream content
// quality is unreliable and must never make a read fail.
func ParseCategory(raw string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategorySlang:
		return CategorySlang
	case CategoryInsults:
		return CategoryInsults
	case CategoryJokes:
		return CategoryJokes
	case CategoryTongueTwisters:
		return CategoryTongueTwisters
	case CategoryColloquialPhrase:
		return CategoryColloquialPhrase
	case CategoryUniqueConcepts:
		return CategoryUniqueConcepts
	default:
		return CategoryUnset
	}
}

// Entry represents a single dictionary record for a slang or idiom term
// in one language. Entries are owned by the external content store and
// are never mutated by this core.
type Entry struct {
	ID           int64             // unique entry ID
	Term         string            // the original term or phrase in its native language
	LanguageCode string            // language code of the term (e.g. "es", "de")
	RegionCode   string            // specific region if applicable (e.g. "Berlin", "Colombia")
	Category     Category          // standardized category, may be unset
	Meanings     map[string]string // curated meanings keyed by target language code
	Notes        string            // free-text cultural notes, frequently auto-generated
	Translations []Translation     // translations in list order
	Examples     []Example         // example sentences in list order
}

// CuratedMeaning returns the manually reviewed meaning for the target
// language, or the empty string if none is present.
func (e *Entry) CuratedMeaning(targetLanguage string) string {
	if e == nil || e.Meanings == nil {
		return ""
	}
	return e.Meanings[targetLanguage]
}

// Translation is one translation of an entry into a target language.
type Translation struct {
	TargetLanguageCode string // language code of the translation
	Text               string // main translation of the entry
	LiteralText        string // optional literal translation
}

// Example is one example sentence using an entry.
type Example struct {
	Sentence     string // example sentence using the entry
	LanguageCode string // language code of the example sentence
	Translation  string // optional translation of the example sentence
}
