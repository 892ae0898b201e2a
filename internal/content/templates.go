package content

import (
	"fmt"

	"github.com/lingoproject/lingoquiz/internal/domain/entities"
)

// Templates holds the category- and language-specific strings used when
// assembling questions.
type Templates struct {
	prompts       map[string]map[entities.Category]string // lang -> category -> format
	defaultPrompt map[string]string                       // lang -> format
	categoryNames map[string]map[entities.Category]string // lang -> category -> display name
	regionPhrase  map[string]string                       // lang -> format
	leadPhrase    map[string]string                       // lang -> "This is a %s" / "Esta es una %s"
}

// Prompt renders the question text for a term, picking the most specific
// template available for the category and target language. Unknown
// languages fall back to English.
func (t *Templates) Prompt(category entities.Category, targetLanguage, term string) string {
	lang := t.normalizeLang(targetLanguage)
	if byCat, ok := t.prompts[lang]; ok {
		if format, ok := byCat[category]; ok {
			return fmt.Sprintf(format, term)
		}
	}
	return fmt.Sprintf(t.defaultPrompt[lang], term)
}

// CategoryLead renders the leading explanation sentence naming the
// entry's category ("This is a slang" / "Esta es una jerga").
func (t *Templates) CategoryLead(category entities.Category, targetLanguage string) string {
	lang := t.normalizeLang(targetLanguage)
	name := string(category)
	if byCat, ok := t.categoryNames[lang]; ok {
		if display, ok := byCat[category]; ok {
			name = display
		}
	}
	return fmt.Sprintf(t.leadPhrase[lang], name)
}

// RegionNote renders the regional context fragment ("typical of Berlin").
func (t *Templates) RegionNote(targetLanguage, region string) string {
	lang := t.normalizeLang(targetLanguage)
	return fmt.Sprintf(t.regionPhrase[lang], region)
}

func (t *Templates) normalizeLang(lang string) string {
	if _, ok := t.defaultPrompt[lang]; ok {
		return lang
	}
	return "en"
}

// DefaultTemplates returns the built-in English and Spanish templates.
func DefaultTemplates() *Templates {
	return &Templates{
		prompts: map[string]map[entities.Category]string{
			"en": {
				entities.CategoryInsults: `What does the insult "%s" mean?`,
				entities.CategoryJokes:   `What does "%s" mean in this context?`,
			},
			"es": {
				entities.CategoryInsults: `¿Qué significa el insulto "%s"?`,
				entities.CategoryJokes:   `¿Qué significa "%s" en este contexto?`,
			},
		},
		defaultPrompt: map[string]string{
			"en": `What does "%s" mean?`,
			"es": `¿Qué significa "%s"?`,
		},
		categoryNames: map[string]map[entities.Category]string{
			"en": {
				entities.CategorySlang:            "slang",
				entities.CategoryInsults:          "insult",
				entities.CategoryJokes:            "joke",
				entities.CategoryTongueTwisters:   "tongue twister",
				entities.CategoryColloquialPhrase: "colloquial phrase",
				entities.CategoryUniqueConcepts:   "unique concept",
			},
			"es": {
				entities.CategorySlang:            "jerga",
				entities.CategoryInsults:          "insulto",
				entities.CategoryJokes:            "broma",
				entities.CategoryTongueTwisters:   "trabalenguas",
				entities.CategoryColloquialPhrase: "frase coloquial",
				entities.CategoryUniqueConcepts:   "concepto único",
			},
		},
		regionPhrase: map[string]string{
			"en": "typical of %s",
			"es": "típica de %s",
		},
		leadPhrase: map[string]string{
			"en": "This is a %s",
			"es": "Esta es una %s",
		},
	}
}
