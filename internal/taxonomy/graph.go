// Package taxonomy holds the read-only lexical graph: senses linked by
// hypernymy, a lemma index and an information-content table. A Graph is
// built once and is safe for concurrent use; no query mutates it.
package taxonomy

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/heartmarshall/wordsim/internal/domain"
)

// Graph is an immutable hypernym DAG. Edges point from a sense to its
// hypernyms.
type Graph struct {
	dag    *simple.DirectedGraph
	nodes  map[domain.SenseKey]int64
	senses []domain.Sense // indexed by node id
	lemmas map[string]map[domain.PartOfSpeech][]int64
	ic     *ICTable
	stats  Stats
}

// Stats summarizes the size of a graph.
type Stats struct {
	Synsets   int `json:"synsets"`
	Lemmas    int `json:"lemmas"`
	Hypernyms int `json:"hypernyms"`
	ICEntries int `json:"ic_entries"`
}

// Build validates lex and assembles a Graph. ic may be nil, in which case
// every information-content query is undefined.
func Build(lex domain.Lexicon, ic *ICTable) (*Graph, error) {
	g := &Graph{
		dag:    simple.NewDirectedGraph(),
		nodes:  make(map[domain.SenseKey]int64, len(lex.Synsets)),
		senses: make([]domain.Sense, 0, len(lex.Synsets)),
		lemmas: make(map[string]map[domain.PartOfSpeech][]int64),
		ic:     ic,
	}

	for _, s := range lex.Synsets {
		if s.ID == "" || !s.POS.IsValid() {
			return nil, fmt.Errorf("synset %q (%q): %w", s.ID, s.POS, domain.ErrInvalidInput)
		}
		key := domain.SenseKey{POS: s.POS, ID: s.ID}
		if _, dup := g.nodes[key]; dup {
			continue
		}
		id := int64(len(g.senses))
		g.nodes[key] = id
		g.senses = append(g.senses, domain.Sense{ID: s.ID, POS: s.POS, Offset: s.Offset})
		g.dag.AddNode(simple.Node(id))
	}

	for _, l := range lex.Lemmas {
		id, ok := g.nodes[domain.SenseKey{POS: l.POS, ID: l.SynsetID}]
		if !ok {
			return nil, fmt.Errorf("lemma %q references unknown synset %s/%s: %w",
				l.Word, l.POS.Letter(), l.SynsetID, domain.ErrInvalidInput)
		}
		word := domain.NormalizeLemma(l.Word)
		if word == "" {
			continue
		}
		byPOS := g.lemmas[word]
		if byPOS == nil {
			byPOS = make(map[domain.PartOfSpeech][]int64)
			g.lemmas[word] = byPOS
		}
		if slices.Contains(byPOS[l.POS], id) {
			continue
		}
		byPOS[l.POS] = append(byPOS[l.POS], id)
		g.senses[id].Lemmas = append(g.senses[id].Lemmas, word)
		g.stats.Lemmas++
	}

	for _, h := range lex.Hypernyms {
		from, ok := g.nodes[domain.SenseKey{POS: h.POS, ID: h.SynsetID}]
		if !ok {
			return nil, fmt.Errorf("hypernym edge from unknown synset %s/%s: %w",
				h.POS.Letter(), h.SynsetID, domain.ErrInvalidInput)
		}
		to, ok := g.nodes[domain.SenseKey{POS: h.POS, ID: h.HypernymID}]
		if !ok {
			return nil, fmt.Errorf("hypernym edge to unknown synset %s/%s: %w",
				h.POS.Letter(), h.HypernymID, domain.ErrInvalidInput)
		}
		if from == to {
			return nil, fmt.Errorf("synset %s/%s is its own hypernym: %w",
				h.POS.Letter(), h.SynsetID, domain.ErrInvalidInput)
		}
		if g.dag.HasEdgeFromTo(from, to) {
			continue
		}
		g.dag.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
		g.stats.Hypernyms++
	}

	if _, err := topo.Sort(g.dag); err != nil {
		var cycles topo.Unorderable
		if errors.As(err, &cycles) && len(cycles) > 0 {
			return nil, fmt.Errorf("hypernym cycle through %s: %w",
				g.senses[cycles[0][0].ID()], domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("hypernym relation is not acyclic: %w", domain.ErrInvalidInput)
	}

	g.stats.Synsets = len(g.senses)
	g.stats.ICEntries = ic.Len()
	return g, nil
}

// Stats returns the size of the graph.
func (g *Graph) Stats() Stats { return g.stats }

// SensesOf returns every sense of word with the given part of speech, or an
// empty slice when the word is absent. Inflected forms fall back to their
// base forms ("dogs" finds the senses of "dog").
func (g *Graph) SensesOf(word string, pos domain.PartOfSpeech) []domain.Sense {
	word = domain.NormalizeLemma(word)
	if word == "" {
		return []domain.Sense{}
	}

	var ids []int64
	for _, form := range baseForms(word, pos) {
		for _, id := range g.lemmas[form][pos] {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}

	out := make([]domain.Sense, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.senses[id])
	}
	return out
}

// Sense returns the sense with the given identity.
func (g *Graph) Sense(key domain.SenseKey) (domain.Sense, bool) {
	id, ok := g.nodes[key]
	if !ok {
		return domain.Sense{}, false
	}
	return g.senses[id], true
}

// InformationContent returns the IC of s; false means unknown.
func (g *Graph) InformationContent(s domain.Sense) (float64, bool) {
	return g.ic.Lookup(s.ICKey())
}

// PathLength returns the smallest number of edges connecting a and b
// through a common ancestor. It reports false when the senses share no
// ancestor, which includes senses of different parts of speech.
func (g *Graph) PathLength(a, b domain.Sense) (int, bool) {
	if a.Key() == b.Key() {
		if _, ok := g.nodes[a.Key()]; ok {
			return 0, true
		}
		return 0, false
	}
	best := -1
	g.common(a, b, func(_ int64, da, db int) {
		if d := da + db; best < 0 || d < best {
			best = d
		}
	})
	if best < 0 {
		return 0, false
	}
	return best, true
}

// LCSInformationContent returns the information content of the most
// specific common ancestor of a and b.
func (g *Graph) LCSInformationContent(a, b domain.Sense) (float64, bool) {
	lcs, ok := g.LeastCommonSubsumer(a, b)
	if !ok {
		return 0, false
	}
	return g.InformationContent(lcs)
}

// LeastCommonSubsumer returns the common ancestor of a and b (possibly one
// of them) with the highest known information content. Ties go to the
// ancestor on the shorter path, then to the smaller ID.
func (g *Graph) LeastCommonSubsumer(a, b domain.Sense) (domain.Sense, bool) {
	var (
		best     int64 = -1
		bestIC   float64
		bestPath int
	)
	g.common(a, b, func(n int64, da, db int) {
		ic, ok := g.ic.Lookup(g.senses[n].ICKey())
		if !ok {
			return
		}
		path := da + db
		switch {
		case best < 0, ic > bestIC:
		case ic == bestIC && path < bestPath:
		case ic == bestIC && path == bestPath && g.senses[n].ID < g.senses[best].ID:
		default:
			return
		}
		best, bestIC, bestPath = n, ic, path
	})
	if best < 0 {
		return domain.Sense{}, false
	}
	return g.senses[best], true
}

// common calls fn for every common ancestor of a and b with the hypernym
// distance from each of them.
func (g *Graph) common(a, b domain.Sense, fn func(n int64, da, db int)) {
	na, ok := g.nodes[a.Key()]
	if !ok {
		return
	}
	nb, ok := g.nodes[b.Key()]
	if !ok {
		return
	}
	if a.POS != b.POS {
		return
	}

	up := g.ancestors(na)
	var bf traverse.BreadthFirst
	bf.Walk(g.dag, simple.Node(nb), func(n graph.Node, d int) bool {
		if da, ok := up[n.ID()]; ok {
			fn(n.ID(), da, d)
		}
		return false
	})
}

// ancestors maps every hypernym ancestor of n, and n itself, to its
// shortest distance from n.
func (g *Graph) ancestors(n int64) map[int64]int {
	depth := make(map[int64]int)
	var bf traverse.BreadthFirst
	bf.Walk(g.dag, simple.Node(n), func(node graph.Node, d int) bool {
		depth[node.ID()] = d
		return false
	})
	return depth
}
