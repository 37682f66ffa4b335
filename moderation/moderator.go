// Package moderation censors forbidden words in message content before it is stored.
package moderation

import (
	"chat-relay/domain"
	"unicode"

	"github.com/abadojack/whatlanggo"
	goahocorasick "github.com/anknown/ahocorasick"
)

// leet folds look-alike characters onto the letter they stand for.
var leet = map[rune]rune{
	'4': 'a', '@': 'a',
	'3': 'e', '€': 'e',
	'1': 'i', '!': 'i', '|': 'i',
	'0': 'o',
	'5': 's', '$': 's',
}

type Moderator struct {
	automaton *goahocorasick.Machine
	mask      rune
}

// NewModerator builds the Aho-Corasick automaton over the folded dictionary.
// Entries made only of noise are ignored.
func NewModerator(censoredWords []string, mask rune) (*Moderator, error) {
	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range censoredWords {
		if folded, _ := fold(word); len(folded) > 0 {
			patterns = append(patterns, folded)
		}
	}

	automaton := new(goahocorasick.Machine)
	if err := automaton.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{automaton: automaton, mask: mask}, nil
}

// Censor masks every character spanned by a forbidden word, separators
// included, and reports the matched words along with the language of the
// original text. Clean content comes back untouched with no language guess.
func (m *Moderator) Censor(content string) domain.CensorResult {
	folded, positions := fold(content)
	if len(folded) == 0 {
		return domain.CensorResult{Content: content}
	}
	hits := m.automaton.MultiPatternSearch(folded, false)
	if len(hits) == 0 {
		return domain.CensorResult{Content: content}
	}

	runes := []rune(content)
	result := domain.CensorResult{Words: make([]string, 0, len(hits))}
	for _, hit := range hits {
		last := hit.Pos + len(hit.Word) - 1
		if hit.Pos < 0 || last >= len(positions) {
			continue
		}
		for i := positions[hit.Pos]; i <= positions[last]; i++ {
			runes[i] = m.mask
		}
		result.Words = append(result.Words, string(hit.Word))
	}
	result.Content = string(runes)
	result.Language = detectLanguage(content)
	return result
}

// fold lowercases text, undoes leet speak and drops punctuation, spaces and
// symbols. positions[i] is the rune index in text of folded[i].
func fold(text string) (folded []rune, positions []int) {
	for i, r := range []rune(text) {
		if plain, ok := leet[r]; ok {
			r = plain
		}
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		folded = append(folded, unicode.ToLower(r))
		positions = append(positions, i)
	}
	return folded, positions
}

// detectLanguage returns the ISO 639-1 code of text, or "" when the guess
// is not reliable enough.
func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
