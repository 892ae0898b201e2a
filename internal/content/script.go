package content

import (
	"regexp"
	"strings"
)

// ScriptRule decides whether a piece of text is script-appropriate for a
// target language. Notes only need to contain a characteristic letter,
// while translations are held to a stricter shape because they are used
// verbatim as quiz options.
type ScriptRule struct {
	NotesPattern       *regexp.Regexp // at least one characteristic letter
	NotesExclude       string         // substring that disqualifies notes
	TranslationPattern *regexp.Regexp // shape a translation must satisfy
}

// MatchesNotes reports whether the notes text looks like the rule's
// language.
func (r ScriptRule) MatchesNotes(notes string) bool {
	if r.NotesPattern == nil || !r.NotesPattern.MatchString(notes) {
		return false
	}
	if r.NotesExclude != "" && containsFold(notes, r.NotesExclude) {
		return false
	}
	return true
}

// MatchesTranslation reports whether a translation text looks like the
// rule's language.
func (r ScriptRule) MatchesTranslation(text string) bool {
	return r.TranslationPattern != nil && r.TranslationPattern.MatchString(text)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// DefaultScriptRules returns the per-language script heuristics.
// English content is recognized by the presence of Latin letters; Spanish
// content by the presence of Spanish diacritics.
func DefaultScriptRules() map[string]ScriptRule {
	return map[string]ScriptRule{
		"en": {
			NotesPattern:       regexp.MustCompile(`[a-zA-Z]`),
			NotesExclude:       "[traducción",
			TranslationPattern: regexp.MustCompile(`^[a-zA-Z0-9 ,.!?'"]+$`),
		},
		"es": {
			NotesPattern:       regexp.MustCompile(`[áéíóúñü]`),
			TranslationPattern: regexp.MustCompile(`[áéíóúñü]`),
		},
	}
}
