package similarity

import (
	"fmt"

	"github.com/heartmarshall/wordsim/internal/domain"
)

// Accessor is the read-only view of the lexical graph the metrics need.
type Accessor interface {
	SensesOf(word string, pos domain.PartOfSpeech) []domain.Sense
	PathLength(a, b domain.Sense) (int, bool)
	InformationContent(s domain.Sense) (float64, bool)
	LCSInformationContent(a, b domain.Sense) (float64, bool)
}

// Metric scores two senses. The boolean is false when the similarity is
// undefined for the pair.
type Metric func(g Accessor, a, b domain.Sense) (float64, bool)

// Path scores senses by the inverse of the shortest hypernym path between
// them: 1 / (length + 1).
func Path(g Accessor, a, b domain.Sense) (float64, bool) {
	n, ok := g.PathLength(a, b)
	if !ok {
		return 0, false
	}
	return 1 / float64(n+1), true
}

// Resnik scores senses by the information content of their least common
// subsumer.
func Resnik(g Accessor, a, b domain.Sense) (float64, bool) {
	if _, ok := g.InformationContent(a); !ok {
		return 0, false
	}
	if _, ok := g.InformationContent(b); !ok {
		return 0, false
	}
	return g.LCSInformationContent(a, b)
}

// Lin normalizes the Resnik score by the information content of both
// senses: 2 * IC(lcs) / (IC(a) + IC(b)).
func Lin(g Accessor, a, b domain.Sense) (float64, bool) {
	icA, ok := g.InformationContent(a)
	if !ok || icA == 0 {
		return 0, false
	}
	icB, ok := g.InformationContent(b)
	if !ok || icB == 0 {
		return 0, false
	}
	lcs, ok := g.LCSInformationContent(a, b)
	if !ok {
		return 0, false
	}
	denom := icA + icB
	if denom <= 0 {
		return 0, false
	}
	return 2 * lcs / denom, true
}

// MetricFor returns the metric selected by m.
func MetricFor(m domain.Measure) (Metric, error) {
	switch m {
	case domain.MeasurePath:
		return Path, nil
	case domain.MeasureResnik:
		return Resnik, nil
	case domain.MeasureLin:
		return Lin, nil
	}
	return nil, fmt.Errorf("measure %q: %w", m, domain.ErrInvalidMeasure)
}
