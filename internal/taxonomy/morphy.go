package taxonomy

import (
	"strings"

	"github.com/heartmarshall/wordsim/internal/domain"
)

type substitution struct {
	suffix  string
	replace string
}

// Inflectional detachment rules used by WordNet's morphy.
var substitutions = map[domain.PartOfSpeech][]substitution{
	domain.PartOfSpeechNoun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	domain.PartOfSpeechVerb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	domain.PartOfSpeechAdjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

// baseForms returns the word itself followed by every distinct candidate
// produced by the detachment rules for pos.
func baseForms(word string, pos domain.PartOfSpeech) []string {
	forms := []string{word}
	seen := map[string]bool{word: true}
	for _, sub := range substitutions[pos] {
		if !strings.HasSuffix(word, sub.suffix) {
			continue
		}
		base := strings.TrimSuffix(word, sub.suffix) + sub.replace
		if base == "" || seen[base] {
			continue
		}
		seen[base] = true
		forms = append(forms, base)
	}
	return forms
}
