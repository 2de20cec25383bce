package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares text for lookup and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - composes Unicode to NFC, so "café" and "café" match
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = norm.NFC.String(strings.ToLower(text))

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeLemma normalizes a word the way WordNet spells lemmas:
// multi-word expressions are joined with underscores.
func NormalizeLemma(word string) string {
	return strings.ReplaceAll(NormalizeText(strings.ReplaceAll(word, "_", " ")), " ", "_")
}
