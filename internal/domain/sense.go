package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// Sense is one meaning of a word: a synset node in the lexical taxonomy.
// Senses are owned by the taxonomy and never mutated after it is built.
type Sense struct {
	ID  string
	POS PartOfSpeech
	// Offset is the WordNet data-file offset, used to look up information
	// content. Zero when the source carries no offset.
	Offset int
	Lemmas []string
}

// SenseKey identifies a sense. Identical IDs under different parts of
// speech are different senses.
type SenseKey struct {
	POS PartOfSpeech
	ID  string
}

func (k SenseKey) String() string { return fmt.Sprintf("%s/%s", k.POS.Letter(), k.ID) }

// Key returns the identity of the sense.
func (s Sense) Key() SenseKey { return SenseKey{POS: s.POS, ID: s.ID} }

// ICKey returns the information-content lookup key of the sense.
func (s Sense) ICKey() ICKey { return ICKey{POS: s.POS, Offset: s.Offset} }

func (s Sense) String() string { return s.Key().String() }

// ICKey addresses an entry of an information-content table.
type ICKey struct {
	POS    PartOfSpeech
	Offset int
}

// Synset is a taxonomy node as read from a lexicon source.
type Synset struct {
	ID     string       `db:"id"`
	POS    PartOfSpeech `db:"pos"`
	Offset int          `db:"wn_offset"`
}

// Lemma links a written word to one of its synsets.
type Lemma struct {
	Word     string       `db:"word"`
	POS      PartOfSpeech `db:"pos"`
	SynsetID string       `db:"synset_id"`
}

// Hypernym is a directed "is-a" edge from a synset to a more general one.
// Both ends share the part of speech.
type Hypernym struct {
	POS        PartOfSpeech `db:"pos"`
	SynsetID   string       `db:"synset_id"`
	HypernymID string       `db:"hypernym_id"`
}

// Lexicon is a complete taxonomy snapshot, as produced by parsers and stores.
type Lexicon struct {
	Synsets   []Synset
	Lemmas    []Lemma
	Hypernyms []Hypernym
}

// ICCounts holds raw corpus frequencies of synsets, as stored in WordNet
// information-content files. Roots holds the per-POS total of root counts.
type ICCounts struct {
	Counts map[ICKey]float64
	Roots  map[PartOfSpeech]float64
}

// NewICCounts returns empty, ready-to-fill counts.
func NewICCounts() ICCounts {
	return ICCounts{
		Counts: make(map[ICKey]float64),
		Roots:  make(map[PartOfSpeech]float64),
	}
}

// ICCount is one row of ICCounts.
type ICCount struct {
	POS    PartOfSpeech `db:"pos"`
	Offset int          `db:"wn_offset"`
	Count  float64      `db:"count"`
}

// Entries flattens the counts, ordered by part of speech and offset.
func (c ICCounts) Entries() []ICCount {
	out := make([]ICCount, 0, len(c.Counts))
	for k, v := range c.Counts {
		out = append(out, ICCount{POS: k.POS, Offset: k.Offset, Count: v})
	}
	slices.SortFunc(out, func(a, b ICCount) int {
		if d := cmp.Compare(a.POS, b.POS); d != 0 {
			return d
		}
		return cmp.Compare(a.Offset, b.Offset)
	})
	return out
}
