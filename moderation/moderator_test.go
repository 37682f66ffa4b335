package moderation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	dictionary := []string{"badger", "snake", "mushroom"}
	mod, err := NewModerator(dictionary, replacementChar)
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The badger is here",
			expected: "The ****** is here",
			words:    []string{"badger"},
		},
		{
			name:     "Multiple occurrences and preserved spacing",
			input:    "badger badger badger",
			expected: "****** ****** ******",
			words:    []string{"badger", "badger", "badger"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "Look at B.4.d.g.€r !",
			expected: "Look at ********** !",
			words:    []string{"badger"},
		},
		{
			name:     "Uppercase and extreme noise",
			input:    "S-N-A-K-E is a B.A.D.G.E.R",
			expected: "********* is a ***********",
			words:    []string{"snake", "badger"},
		},
		{
			name:     "Accents are kept",
			input:    "Un été avec un badger",
			expected: "Un été avec un ******",
			words:    []string{"badger"},
		},
		{
			name:     "Nothing to censor",
			input:    "Direct messages are amazing",
			expected: "Direct messages are amazing",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result := mod.Censor(tt.input)
			req.Equal(tt.expected, result.Content)
			req.Equal(tt.words, result.Words)
		})
	}
}

func TestModerator_NoiseOnlyEntriesAreIgnored(t *testing.T) {
	req := require.New(t)

	// Given real noise in the dictionary
	mod, err := NewModerator([]string{"...", ",,,", "", "badger"}, replacementChar)
	req.NoError(err)

	result := mod.Censor("The badger is safe")
	req.Equal("The ****** is safe", result.Content)
	req.Equal([]string{"badger"}, result.Words)

	// Then noise in messages stays untouched
	result = mod.Censor("Hello ...")
	req.Equal("Hello ...", result.Content)
	req.Nil(result.Words)
}

func TestLoadAll(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{
		"words/en.txt":    {Data: []byte("badger\r\nsnake\n\n")},
		"words/fr.txt":    {Data: []byte("blaireau\nbadger\n")},
		"words/README.md": {Data: []byte("ignored")},
	}

	dictionary, err := LoadAll(fsys, "words")
	req.NoError(err)
	req.ElementsMatch([]string{"badger", "snake", "blaireau"}, dictionary.Words)
	req.ElementsMatch([]string{"en", "fr"}, dictionary.Languages)
}

func TestLoadEmbedded(t *testing.T) {
	req := require.New(t)
	dictionary, err := LoadEmbedded()
	req.NoError(err)
	req.NotEmpty(dictionary.Words)
	req.Contains(dictionary.Languages, "en")
}

func TestModerator_Censor_Tags_Language(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator([]string{"blaireau"}, replacementChar)
	req.NoError(err)

	// Given a French sentence with a forbidden word
	result := mod.Censor("Bonjour à tous, je voulais simplement vous dire que ce blaireau de voisin " +
		"a encore laissé sa voiture devant notre maison toute la nuit.")

	// Then the word is masked and the language of the original is reported
	req.Equal([]string{"blaireau"}, result.Words)
	req.NotContains(result.Content, "blaireau")
	req.Equal("fr", result.Language)

	// Clean content is not analyzed
	req.Empty(mod.Censor("Bonjour à tous, le repas de ce soir était vraiment délicieux.").Language)
}

func TestDetectLanguage(t *testing.T) {
	req := require.New(t)
	req.Equal("fr", detectLanguage("Bonjour à tous, je voulais simplement vous dire que le repas de ce soir était vraiment délicieux et que nous reviendrons bientôt."))
	req.Empty(detectLanguage(""))
}
