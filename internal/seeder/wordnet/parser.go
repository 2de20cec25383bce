// Package wordnet parses Open English WordNet GWN-LMF JSON files into a
// taxonomy lexicon. Pure function: file path in, domain structs out. No
// database dependencies.
package wordnet

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/wordsim/internal/domain"
)

// ParseResult holds the parsed lexicon.
type ParseResult struct {
	Lexicon domain.Lexicon
	Stats   Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalSynsets   int
	TotalEntries   int
	Lemmas         int
	Hypernyms      int
	SkippedSynsets int // unknown part of speech
	DanglingSenses int // sense pointing to a missing synset
	DanglingEdges  int // hypernym pointing to a missing synset
	Duplicates     int
}

// GWN-LMF JSON internal types for deserialization.

type gwnDocument struct {
	Graph []gwnLexicon `json:"@graph"`
}

type gwnLexicon struct {
	Entries []gwnEntry  `json:"entry"`
	Synsets []gwnSynset `json:"synset"`
}

type gwnEntry struct {
	ID    string     `json:"@id"`
	Lemma gwnLemma   `json:"lemma"`
	Sense []gwnSense `json:"sense"`
}

type gwnLemma struct {
	WrittenForm  string `json:"writtenForm"`
	PartOfSpeech string `json:"partOfSpeech"`
}

type gwnSense struct {
	ID     string `json:"@id"`
	Synset string `json:"synset"`
}

type gwnSynset struct {
	ID           string        `json:"@id"`
	PartOfSpeech string        `json:"partOfSpeech"`
	Relations    []gwnRelation `json:"relations"`
}

type gwnRelation struct {
	RelType string `json:"relType"`
	Target  string `json:"target"`
}

// hypernymRelations are the synset relations that form the is-a hierarchy.
var hypernymRelations = map[string]bool{
	"hypernym":          true,
	"instance_hypernym": true,
}

// Parse reads a GWN-LMF JSON file and extracts synsets, lemmas and hypernym
// edges.
func Parse(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader is Parse over an already opened document.
func ParseReader(r io.Reader) (ParseResult, error) {
	var doc gwnDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ParseResult{}, fmt.Errorf("decode JSON: %w", err)
	}

	var result ParseResult
	lex := &result.Lexicon

	// Step 1: synsets of every lexicon, so senses and relations may point
	// across lexicons of the same document. The synset's part of speech is
	// authoritative; satellite adjectives fold into ADJECTIVE.
	synsetPOS := make(map[string]domain.PartOfSpeech)
	for _, gl := range doc.Graph {
		result.Stats.TotalEntries += len(gl.Entries)
		result.Stats.TotalSynsets += len(gl.Synsets)

		for _, s := range gl.Synsets {
			pos, err := domain.ParsePOSLetter(s.PartOfSpeech)
			if err != nil {
				pos, err = posFromID(s.ID)
			}
			if err != nil || s.ID == "" {
				result.Stats.SkippedSynsets++
				continue
			}
			if _, dup := synsetPOS[s.ID]; dup {
				result.Stats.Duplicates++
				continue
			}
			synsetPOS[s.ID] = pos
			lex.Synsets = append(lex.Synsets, domain.Synset{
				ID:     s.ID,
				POS:    pos,
				Offset: offsetFromID(s.ID),
			})
		}
	}

	// Step 2: lemmas, one per (word, synset).
	type lemmaKey struct{ word, synset string }
	seenLemma := make(map[lemmaKey]bool)
	for _, gl := range doc.Graph {
		for _, entry := range gl.Entries {
			word := domain.NormalizeLemma(entry.Lemma.WrittenForm)
			if word == "" {
				continue
			}
			for _, sense := range entry.Sense {
				pos, ok := synsetPOS[sense.Synset]
				if !ok {
					result.Stats.DanglingSenses++
					continue
				}
				key := lemmaKey{word, sense.Synset}
				if seenLemma[key] {
					result.Stats.Duplicates++
					continue
				}
				seenLemma[key] = true
				lex.Lemmas = append(lex.Lemmas, domain.Lemma{Word: word, POS: pos, SynsetID: sense.Synset})
			}
		}
	}

	// Step 3: hypernym edges, specific → general.
	type edgeKey struct{ from, to string }
	seenEdge := make(map[edgeKey]bool)
	for _, gl := range doc.Graph {
		for _, s := range gl.Synsets {
			pos, ok := synsetPOS[s.ID]
			if !ok {
				continue
			}
			for _, rel := range s.Relations {
				if !hypernymRelations[rel.RelType] {
					continue
				}
				if targetPOS, ok := synsetPOS[rel.Target]; !ok || targetPOS != pos || rel.Target == s.ID {
					result.Stats.DanglingEdges++
					continue
				}
				key := edgeKey{s.ID, rel.Target}
				if seenEdge[key] {
					result.Stats.Duplicates++
					continue
				}
				seenEdge[key] = true
				lex.Hypernyms = append(lex.Hypernyms, domain.Hypernym{POS: pos, SynsetID: s.ID, HypernymID: rel.Target})
			}
		}
	}

	result.Stats.Lemmas = len(lex.Lemmas)
	result.Stats.Hypernyms = len(lex.Hypernyms)
	return result, nil
}

// offsetFromID extracts the WordNet data-file offset from synset IDs of the
// form <prefix>-<offset>-<pos>, e.g. "oewn-02084071-n". It returns 0 when
// the ID carries no offset.
func offsetFromID(id string) int {
	parts := strings.Split(id, "-")
	if len(parts) < 3 {
		return 0
	}
	offset, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

func posFromID(id string) (domain.PartOfSpeech, error) {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return "", fmt.Errorf("synset id %q has no part of speech: %w", id, domain.ErrInvalidInput)
	}
	return domain.ParsePOSLetter(id[i+1:])
}
