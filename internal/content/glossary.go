package content

// Glossary maps a target language code to a table of well-known terms and
// their curated meanings, keyed by lower-cased term. It is the last
// fallback of the meaning resolver: a safety net for a small set of very
// common terms whose crowd-sourced data is unreliable.
type Glossary map[string]map[string]string

// Lookup returns the glossary meaning for a term in the target language.
func (g Glossary) Lookup(targetLanguage, lowerTerm string) (string, bool) {
	table, ok := g[targetLanguage]
	if !ok {
		return "", false
	}
	meaning, ok := table[lowerTerm]
	return meaning, ok
}

// Terms returns the set of glossary terms for the target language.
func (g Glossary) Terms(targetLanguage string) map[string]struct{} {
	table := g[targetLanguage]
	terms := make(map[string]struct{}, len(table))
	for term := range table {
		terms[term] = struct{}{}
	}
	return terms
}

// DefaultGlossary returns the built-in bilingual glossary covering the
// most common Argentine, Colombian and German terms.
func DefaultGlossary() Glossary {
	return Glossary{
		"en": {
			"chamuyo":           "Sweet talk, flattery, or deceptive talk to persuade someone.",
			"chamuyar":          "To sweet-talk, flatter, or try to persuade with smooth or deceptive talk.",
			"ya fue":            "Forget it, it's over, it doesn't matter anymore.",
			"talle":             "Clothing size.",
			"pandulce":          "A sweet bread eaten at Christmas.",
			"chocar la ferrari": "To ruin something valuable or waste a great opportunity.",
			"che":               "Hey, dude (common interjection).",
			"boludo":            "Dude or idiot, depending on context.",
			"pibe":              "Young person or kid.",
			"laburo":            "Work or job.",
			"parcero":           "Friend or buddy (Colombia).",
			"chimba":            "Cool or awesome (Colombia).",
			"bacano":            "Cool or nice (Colombia).",
			"tinto":             "Black coffee (Colombia)",
			"alter":             "Informal way to say 'dude' or 'man'.",
			"krass":             "Means 'awesome' or 'intense'.",
			"geil":              "Originally vulgar, now commonly used to mean 'cool' or 'awesome'.",
			"digger":            "North German slang for 'buddy' or 'mate'.",
			"servus":            "Bavarian/Austrian greeting meaning 'hello' or 'goodbye'.",
			"bock":              "Means 'desire' or 'motivation'.",
			"abfahrt":           "Means 'awesome' or 'wicked'.",
			"chillen":           "To relax or chill out.",
			"checken":           "To understand or get something.",
			"hammer":            "Means 'awesome' or 'amazing'.",
			"kumpel":            "Informal word for friend or buddy.",
			"mucke":             "Slang for music.",
			"pennen":            "To sleep.",
			"knorke":            "Berlin slang meaning 'great' or 'fantastic'.",
			"icke":              "Berlin dialect for 'I' or 'me'.",
			"zoff":              "Means trouble or conflict.",
			"quatsch":           "Nonsense or rubbish.",
			"schweinerei":       "Something outrageous or a mess.",
			"fetzig":            "Cool or awesome.",
		},
		"es": {
			"chamuyo":           "Charla persuasiva, piropo o intento de convencer con palabras bonitas.",
			"chamuyar":          "Hablar con intención de convencer, adular o seducir.",
			"ya fue":            "No importa, olvídalo, ya pasó.",
			"talle":             "Tamaño de ropa.",
			"pandulce":          "Pan dulce típico de Navidad.",
			"chocar la ferrari": "Arruinar algo valioso o desperdiciar una gran oportunidad.",
			"che":               "Interjección para llamar la atención, como 'oye'.",
			"boludo":            "Persona tonta o amigo, según el contexto.",
			"pibe":              "Niño o joven.",
			"laburo":            "Trabajo o empleo.",
			"parcero":           "Amigo o compañero (Colombia).",
			"chimba":            "Genial o excelente (Colombia).",
			"bacano":            "Bueno o agradable (Colombia).",
			"tinto":             "Café negro (Colombia)",
		},
	}
}
