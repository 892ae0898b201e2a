package content

import (
	"encoding/json"
	"fmt"
	"os"
)

// Bundle groups the static content the engine is configured with.
type Bundle struct {
	Rules     *Ruleset
	Glossary  Glossary
	Scripts   map[string]ScriptRule
	Templates *Templates
}

// DefaultBundle returns the built-in content tables.
func DefaultBundle() *Bundle {
	return &Bundle{
		Rules:     DefaultRuleset(),
		Glossary:  DefaultGlossary(),
		Scripts:   DefaultScriptRules(),
		Templates: DefaultTemplates(),
	}
}

// LoadBundle returns the default bundle with curated overrides applied
// from a JSON file. An empty path means no overrides. Override lists
// replace the corresponding default list wholesale when present.
func LoadBundle(path string) (*Bundle, error) {
	bundle := DefaultBundle()
	if path == "" {
		return bundle, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	var overrides struct {
		Glossary           Glossary `json:"glossary"`
		GenericPhrases     []string `json:"generic_phrases"`
		ForbiddenFragments []string `json:"forbidden_fragments"`
		StopWords          []string `json:"stop_words"`
	}
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content JSON: %w", err)
	}

	if len(overrides.Glossary) > 0 {
		bundle.Glossary = overrides.Glossary
	}
	if len(overrides.GenericPhrases) > 0 {
		bundle.Rules.GenericPhrases = overrides.GenericPhrases
	}
	if len(overrides.ForbiddenFragments) > 0 {
		bundle.Rules.ForbiddenFragments = overrides.ForbiddenFragments
	}
	if len(overrides.StopWords) > 0 {
		bundle.Rules.StopWords = overrides.StopWords
	}

	return bundle, nil
}
