package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBundle_EmptyPathUsesDefaults(t *testing.T) {
	t.Parallel()

	bundle, err := LoadBundle("")
	require.NoError(t, err)

	meaning, ok := bundle.Glossary.Lookup("en", "che")
	require.True(t, ok)
	assert.Equal(t, "Hey, dude (common interjection).", meaning)
	assert.NotEmpty(t, bundle.Rules.GenericPhrases)
	assert.NotNil(t, bundle.Templates)
}

func TestLoadBundle_Overrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "content.json")
	payload := `{
		"glossary": {"en": {"mate": "Shared herbal drink."}},
		"generic_phrases": ["placeholder text"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	bundle, err := LoadBundle(path)
	require.NoError(t, err)

	meaning, ok := bundle.Glossary.Lookup("en", "mate")
	require.True(t, ok)
	assert.Equal(t, "Shared herbal drink.", meaning)

	// The override replaces the default table wholesale.
	_, ok = bundle.Glossary.Lookup("en", "che")
	assert.False(t, ok)

	assert.Equal(t, []string{"placeholder text"}, bundle.Rules.GenericPhrases)

	// Untouched sections keep their defaults.
	assert.NotEmpty(t, bundle.Rules.ForbiddenFragments)
	assert.NotEmpty(t, bundle.Rules.StopWords)
}

func TestLoadBundle_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadBundle(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadBundle_MalformedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadBundle(path)
	assert.Error(t, err)
}
