package domain

import (
	"fmt"
	"strings"
)

// PartOfSpeech is the WordNet syntactic category of a sense.
type PartOfSpeech string

const (
	PartOfSpeechNoun      PartOfSpeech = "NOUN"
	PartOfSpeechVerb      PartOfSpeech = "VERB"
	PartOfSpeechAdjective PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb    PartOfSpeech = "ADVERB"
)

// AllPartsOfSpeech lists the parts of speech in WordNet order.
var AllPartsOfSpeech = []PartOfSpeech{PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb}

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb:
		return true
	}
	return false
}

// Letter returns the single-letter WordNet tag (n, v, a, r).
func (p PartOfSpeech) Letter() string {
	switch p {
	case PartOfSpeechNoun:
		return "n"
	case PartOfSpeechVerb:
		return "v"
	case PartOfSpeechAdjective:
		return "a"
	case PartOfSpeechAdverb:
		return "r"
	}
	return ""
}

// ParsePOSLetter maps a WordNet tag to a PartOfSpeech. Satellite adjectives
// ("s") are folded into ADJECTIVE, as WordNet IC files do.
func ParsePOSLetter(s string) (PartOfSpeech, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n":
		return PartOfSpeechNoun, nil
	case "v":
		return PartOfSpeechVerb, nil
	case "a", "s":
		return PartOfSpeechAdjective, nil
	case "r":
		return PartOfSpeechAdverb, nil
	}
	return "", fmt.Errorf("part of speech %q: %w", s, ErrInvalidInput)
}

// Measure selects a sense-similarity function.
type Measure string

const (
	MeasurePath   Measure = "path"
	MeasureResnik Measure = "resnik"
	MeasureLin    Measure = "lin"
)

// AllMeasures lists the measures in report order.
var AllMeasures = []Measure{MeasurePath, MeasureResnik, MeasureLin}

func (m Measure) String() string { return string(m) }

func (m Measure) IsValid() bool {
	switch m {
	case MeasurePath, MeasureResnik, MeasureLin:
		return true
	}
	return false
}

// ParseMeasure accepts the short names, the long *_similarity names and the
// empty string, which selects path similarity.
func ParseMeasure(s string) (Measure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "path", "path_similarity":
		return MeasurePath, nil
	case "resnik", "res", "res_similarity":
		return MeasureResnik, nil
	case "lin", "lin_similarity":
		return MeasureLin, nil
	}
	return "", fmt.Errorf("measure %q: %w", s, ErrInvalidMeasure)
}
