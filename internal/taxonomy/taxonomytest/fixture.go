// Package taxonomytest provides a small, hand-built noun taxonomy with a
// synthetic information-content table for tests.
package taxonomytest

import (
	"testing"

	"github.com/heartmarshall/wordsim/internal/domain"
	"github.com/heartmarshall/wordsim/internal/taxonomy"
)

type node struct {
	id     string
	offset int
	parent string
	ic     float64
	words  []string
}

// nouns is a fragment of the WordNet noun hierarchy. An ic of -1 leaves the
// synset out of the IC table.
var nouns = []node{
	{"entity.n.01", 1740, "", 0, []string{"entity"}},
	{"physical_entity.n.01", 1930, "entity.n.01", 0.1, []string{"physical_entity"}},
	{"object.n.01", 2684, "physical_entity.n.01", 0.5, []string{"object"}},
	{"whole.n.02", 3553, "object.n.01", 1.0, []string{"whole", "unit"}},
	{"living_thing.n.01", 4258, "whole.n.02", 1.5, []string{"living_thing"}},
	{"organism.n.01", 4475, "living_thing.n.01", 2.0, []string{"organism", "being"}},
	{"animal.n.01", 15388, "organism.n.01", 3.0, []string{"animal", "beast"}},
	{"carnivore.n.01", 2075296, "animal.n.01", 5.0, []string{"carnivore"}},
	{"canine.n.02", 2083346, "carnivore.n.01", 7.0, []string{"canine"}},
	{"dog.n.01", 2084071, "canine.n.02", 8.0, []string{"dog", "domestic_dog"}},
	{"feline.n.01", 2120997, "carnivore.n.01", 7.5, []string{"feline"}},
	{"cat.n.01", 2121620, "feline.n.01", 8.5, []string{"cat", "true_cat"}},
	{"person.n.01", 7846, "organism.n.01", 3.0, []string{"person", "individual"}},
	{"man.n.01", 10287213, "person.n.01", 5.5, []string{"man"}},
	{"chap.n.01", 9908025, "man.n.01", 9.0, []string{"chap", "dog", "fellow"}},
	{"guy.n.01", 10153414, "man.n.01", 9.5, []string{"guy", "cat"}},
	{"artifact.n.01", 21939, "whole.n.02", 2.5, []string{"artifact"}},
	{"instrumentality.n.03", 3575240, "artifact.n.01", 3.5, []string{"instrumentality"}},
	{"conveyance.n.03", 3100490, "instrumentality.n.03", 5.0, []string{"conveyance", "transport"}},
	{"vehicle.n.01", 4524313, "conveyance.n.03", 5.5, []string{"vehicle"}},
	{"motor_vehicle.n.01", 3791235, "vehicle.n.01", 6.5, []string{"motor_vehicle"}},
	{"car.n.01", 2958343, "motor_vehicle.n.01", 7.0, []string{"car", "auto", "automobile", "machine", "motorcar"}},
	{"device.n.01", 3183080, "instrumentality.n.03", 4.0, []string{"device"}},
	{"machine.n.01", 3699975, "device.n.01", 6.0, []string{"machine"}},
	{"abstraction.n.06", 2137, "entity.n.01", 1.0, []string{"abstraction"}},
	{"idea.n.01", 5833840, "abstraction.n.06", -1, []string{"idea", "thought"}},
	{"unseen.n.01", 0, "abstraction.n.06", -1, []string{"unseen"}},
}

// verbs are disconnected from the noun hierarchy. "chap.n.01" reuses a noun
// ID on purpose.
var verbs = []node{
	{"travel.v.01", 1835496, "", 0.5, []string{"travel", "go", "move"}},
	{"run.v.01", 1926311, "travel.v.01", 4.0, []string{"run"}},
	{"chap.n.01", 1234567, "travel.v.01", 6.0, []string{"chap"}},
}

// Lexicon returns the fixture taxonomy.
func Lexicon() domain.Lexicon {
	var lex domain.Lexicon
	add := func(pos domain.PartOfSpeech, nodes []node) {
		for _, n := range nodes {
			lex.Synsets = append(lex.Synsets, domain.Synset{ID: n.id, POS: pos, Offset: n.offset})
			for _, w := range n.words {
				lex.Lemmas = append(lex.Lemmas, domain.Lemma{Word: w, POS: pos, SynsetID: n.id})
			}
			if n.parent != "" {
				lex.Hypernyms = append(lex.Hypernyms, domain.Hypernym{POS: pos, SynsetID: n.id, HypernymID: n.parent})
			}
		}
	}
	add(domain.PartOfSpeechNoun, nouns)
	add(domain.PartOfSpeechVerb, verbs)
	return lex
}

// ICValues returns the synthetic information-content table of the fixture.
func ICValues() map[domain.ICKey]float64 {
	values := make(map[domain.ICKey]float64)
	add := func(pos domain.PartOfSpeech, nodes []node) {
		for _, n := range nodes {
			if n.ic < 0 || n.offset == 0 {
				continue
			}
			values[domain.ICKey{POS: pos, Offset: n.offset}] = n.ic
		}
	}
	add(domain.PartOfSpeechNoun, nouns)
	add(domain.PartOfSpeechVerb, verbs)
	return values
}

// Graph builds the fixture graph or fails the test.
func Graph(t testing.TB) *taxonomy.Graph {
	t.Helper()
	ic, err := taxonomy.NewICTable(ICValues())
	if err != nil {
		t.Fatalf("taxonomytest: ic table: %v", err)
	}
	g, err := taxonomy.Build(Lexicon(), ic)
	if err != nil {
		t.Fatalf("taxonomytest: build graph: %v", err)
	}
	return g
}

// Sense returns the fixture sense with the given noun synset ID.
func Sense(t testing.TB, g *taxonomy.Graph, id string) domain.Sense {
	t.Helper()
	return SenseOf(t, g, domain.PartOfSpeechNoun, id)
}

// SenseOf returns the fixture sense with the given identity.
func SenseOf(t testing.TB, g *taxonomy.Graph, pos domain.PartOfSpeech, id string) domain.Sense {
	t.Helper()
	s, ok := g.Sense(domain.SenseKey{POS: pos, ID: id})
	if !ok {
		t.Fatalf("taxonomytest: no sense %s/%s", pos.Letter(), id)
	}
	return s
}
