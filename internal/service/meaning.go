package service

import (
	"strings"

	"github.com/lingoproject/lingoquiz/internal/content"
	"github.com/lingoproject/lingoquiz/internal/domain/entities"
)

// MeaningResolver picks the best human-readable definition for an entry
// in a target language. Source data quality is inconsistent: curated
// fields are best-effort, notes and translations are frequently
// auto-generated placeholders, and the static glossary is a safety net
// for a small set of very common terms.
type MeaningResolver struct {
	classifier *QualityClassifier
	glossary   content.Glossary
	scripts    map[string]content.ScriptRule
}

// NewMeaningResolver creates a resolver over the given quality
// classifier, glossary and script rules.
func NewMeaningResolver(
	classifier *QualityClassifier,
	glossary content.Glossary,
	scripts map[string]content.ScriptRule,
) *MeaningResolver {
	return &MeaningResolver{
		classifier: classifier,
		glossary:   glossary,
		scripts:    scripts,
	}
}

// Resolve returns the best available meaning for the entry in the target
// language, walking the fallback chain in order: curated meaning, notes,
// translations, static glossary. First success wins. The second return is
// false when no step yields a usable meaning; the caller must skip the
// entry for quiz purposes.
func (r *MeaningResolver) Resolve(entry *entities.Entry, targetLanguage string) (string, bool) {
	if entry == nil {
		return "", false
	}

	// 1. Curated per-language meaning.
	if curated := entry.CuratedMeaning(targetLanguage); curated != "" {
		if !r.classifier.IsGeneric(curated) {
			return strings.TrimSpace(curated), true
		}
	}

	script, hasScript := r.scripts[targetLanguage]

	// 2. Free-text notes, if script-appropriate for the target language.
	if hasScript && entry.Notes != "" {
		notes := strings.TrimSpace(entry.Notes)
		if script.MatchesNotes(notes) && !r.classifier.IsGeneric(notes) {
			return notes, true
		}
	}

	// 3. First translation whose text matches the target language's
	// script, in list order.
	if hasScript {
		for _, tr := range entry.Translations {
			if tr.Text == "" {
				continue
			}
			if script.MatchesTranslation(tr.Text) && !r.classifier.IsGeneric(tr.Text) {
				return strings.TrimSpace(tr.Text), true
			}
		}
	}

	// 4. Static glossary of well-known terms.
	if meaning, ok := r.glossary.Lookup(targetLanguage, strings.ToLower(entry.Term)); ok {
		return meaning, true
	}

	return "", false
}
