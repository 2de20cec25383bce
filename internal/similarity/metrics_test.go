package similarity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordsim/internal/domain"
	"github.com/heartmarshall/wordsim/internal/similarity"
	"github.com/heartmarshall/wordsim/internal/taxonomy/taxonomytest"
)

// ---------------------------------------------------------------------------
// Manual mock (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockAccessor struct {
	SensesOfFunc              func(word string, pos domain.PartOfSpeech) []domain.Sense
	PathLengthFunc            func(a, b domain.Sense) (int, bool)
	InformationContentFunc    func(s domain.Sense) (float64, bool)
	LCSInformationContentFunc func(a, b domain.Sense) (float64, bool)
}

func (m *mockAccessor) SensesOf(word string, pos domain.PartOfSpeech) []domain.Sense {
	return m.SensesOfFunc(word, pos)
}

func (m *mockAccessor) PathLength(a, b domain.Sense) (int, bool) {
	return m.PathLengthFunc(a, b)
}

func (m *mockAccessor) InformationContent(s domain.Sense) (float64, bool) {
	return m.InformationContentFunc(s)
}

func (m *mockAccessor) LCSInformationContent(a, b domain.Sense) (float64, bool) {
	return m.LCSInformationContentFunc(a, b)
}

func icOf(values map[string]float64) func(domain.Sense) (float64, bool) {
	return func(s domain.Sense) (float64, bool) {
		v, ok := values[s.ID]
		return v, ok
	}
}

func lcsIC(v float64, ok bool) func(a, b domain.Sense) (float64, bool) {
	return func(_, _ domain.Sense) (float64, bool) { return v, ok }
}

var (
	senseA = domain.Sense{ID: "a", POS: domain.PartOfSpeechNoun, Offset: 1}
	senseB = domain.Sense{ID: "b", POS: domain.PartOfSpeechNoun, Offset: 2}
)

// ---------------------------------------------------------------------------
// Path
// ---------------------------------------------------------------------------

func TestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length int
		want   float64
	}{
		{0, 1},
		{1, 0.5},
		{3, 0.25},
		{9, 0.1},
	}
	for _, tt := range tests {
		g := &mockAccessor{PathLengthFunc: func(_, _ domain.Sense) (int, bool) { return tt.length, true }}
		got, ok := similarity.Path(g, senseA, senseB)
		require.True(t, ok)
		assert.InDelta(t, tt.want, got, 1e-12, "length %d", tt.length)
	}
}

func TestPath_Undefined(t *testing.T) {
	t.Parallel()

	g := &mockAccessor{PathLengthFunc: func(_, _ domain.Sense) (int, bool) { return 0, false }}
	_, ok := similarity.Path(g, senseA, senseB)
	assert.False(t, ok)
}

func TestPath_SameSenseIsOne(t *testing.T) {
	t.Parallel()

	g := taxonomytest.Graph(t)
	for _, id := range []string{"entity.n.01", "dog.n.01", "car.n.01", "idea.n.01"} {
		s := taxonomytest.Sense(t, g, id)
		got, ok := similarity.Path(g, s, s)
		require.True(t, ok)
		assert.Equal(t, 1.0, got, id)
	}
}

// ---------------------------------------------------------------------------
// Resnik
// ---------------------------------------------------------------------------

func TestResnik(t *testing.T) {
	t.Parallel()

	g := &mockAccessor{
		InformationContentFunc:    icOf(map[string]float64{"a": 8, "b": 8.5}),
		LCSInformationContentFunc: lcsIC(5, true),
	}
	got, ok := similarity.Resnik(g, senseA, senseB)
	require.True(t, ok)
	assert.Equal(t, 5.0, got)
}

func TestResnik_Undefined(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ic   map[string]float64
		lcs  bool
	}{
		{"first operand unknown", map[string]float64{"b": 1}, true},
		{"second operand unknown", map[string]float64{"a": 1}, true},
		{"no common ancestor", map[string]float64{"a": 1, "b": 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := &mockAccessor{
				InformationContentFunc:    icOf(tt.ic),
				LCSInformationContentFunc: lcsIC(2, tt.lcs),
			}
			_, ok := similarity.Resnik(g, senseA, senseB)
			assert.False(t, ok)
		})
	}
}

func TestResnik_MonotoneInLCS(t *testing.T) {
	t.Parallel()

	prev := -1.0
	for _, lcs := range []float64{0, 0.5, 1, 2.5, 7} {
		g := &mockAccessor{
			InformationContentFunc:    icOf(map[string]float64{"a": 9, "b": 9}),
			LCSInformationContentFunc: lcsIC(lcs, true),
		}
		got, ok := similarity.Resnik(g, senseA, senseB)
		require.True(t, ok)
		assert.Greater(t, got, prev)
		prev = got
	}
}

// ---------------------------------------------------------------------------
// Lin
// ---------------------------------------------------------------------------

func TestLin(t *testing.T) {
	t.Parallel()

	g := &mockAccessor{
		InformationContentFunc:    icOf(map[string]float64{"a": 8, "b": 8.5}),
		LCSInformationContentFunc: lcsIC(5, true),
	}
	got, ok := similarity.Lin(g, senseA, senseB)
	require.True(t, ok)
	assert.InDelta(t, 10.0/16.5, got, 1e-12)
}

func TestLin_Undefined(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ic   map[string]float64
		lcs  bool
	}{
		{"first operand unknown", map[string]float64{"b": 1}, true},
		{"second operand unknown", map[string]float64{"a": 1}, true},
		{"first operand zero", map[string]float64{"a": 0, "b": 1}, true},
		{"second operand zero", map[string]float64{"a": 1, "b": 0}, true},
		{"no common ancestor", map[string]float64{"a": 1, "b": 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := &mockAccessor{
				InformationContentFunc:    icOf(tt.ic),
				LCSInformationContentFunc: lcsIC(0.5, tt.lcs),
			}
			_, ok := similarity.Lin(g, senseA, senseB)
			assert.False(t, ok)
		})
	}
}

// ---------------------------------------------------------------------------
// Properties over the fixture taxonomy
// ---------------------------------------------------------------------------

func nounSenses(t *testing.T) ([]domain.Sense, similarity.Accessor) {
	t.Helper()
	g := taxonomytest.Graph(t)
	var senses []domain.Sense
	for _, s := range taxonomytest.Lexicon().Synsets {
		if s.POS == domain.PartOfSpeechNoun {
			senses = append(senses, taxonomytest.Sense(t, g, s.ID))
		}
	}
	return senses, g
}

func TestMetrics_Symmetric(t *testing.T) {
	t.Parallel()

	senses, g := nounSenses(t)
	metrics := map[string]similarity.Metric{
		"path":   similarity.Path,
		"resnik": similarity.Resnik,
		"lin":    similarity.Lin,
	}
	for name, metric := range metrics {
		for _, a := range senses {
			for _, b := range senses {
				ab, okAB := metric(g, a, b)
				ba, okBA := metric(g, b, a)
				assert.Equal(t, okAB, okBA, "%s(%s, %s) definedness", name, a.ID, b.ID)
				assert.InDelta(t, ab, ba, 1e-12, "%s(%s, %s)", name, a.ID, b.ID)
			}
		}
	}
}

func TestMetrics_Ranges(t *testing.T) {
	t.Parallel()

	senses, g := nounSenses(t)
	for _, a := range senses {
		for _, b := range senses {
			if v, ok := similarity.Path(g, a, b); ok {
				assert.Greater(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
				assert.Equal(t, a.Key() == b.Key(), v == 1.0, "path is 1 only for identical senses")
			}
			if v, ok := similarity.Lin(g, a, b); ok {
				assert.GreaterOrEqual(t, v, 0.0, "lin(%s, %s)", a.ID, b.ID)
				assert.LessOrEqual(t, v, 1.0+1e-12, "lin(%s, %s)", a.ID, b.ID)
			}
			if v, ok := similarity.Resnik(g, a, b); ok {
				assert.GreaterOrEqual(t, v, 0.0)
			}
		}
	}
}

func TestMetricFor(t *testing.T) {
	t.Parallel()

	for _, m := range domain.AllMeasures {
		metric, err := similarity.MetricFor(m)
		require.NoError(t, err)
		assert.NotNil(t, metric)
	}

	_, err := similarity.MetricFor("jaccard")
	assert.True(t, errors.Is(err, domain.ErrInvalidMeasure))
}
