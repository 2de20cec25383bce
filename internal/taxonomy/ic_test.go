package taxonomy

import (
	"errors"
	"math"
	"testing"

	"github.com/heartmarshall/wordsim/internal/domain"
)

func TestNewICTable(t *testing.T) {
	t.Parallel()

	key := domain.ICKey{POS: domain.PartOfSpeechNoun, Offset: 2084071}
	values := map[domain.ICKey]float64{key: 8}

	table, err := NewICTable(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values[key] = 1 // the table keeps its own copy

	got, ok := table.Lookup(key)
	if !ok || got != 8 {
		t.Errorf("Lookup() = %v, %v; want 8, true", got, ok)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestNewICTable_RejectsInvalidValues(t *testing.T) {
	t.Parallel()

	key := domain.ICKey{POS: domain.PartOfSpeechNoun, Offset: 1}
	for _, v := range []float64{-0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := NewICTable(map[domain.ICKey]float64{key: v}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("NewICTable(%v) error = %v, want ErrInvalidInput", v, err)
		}
	}
}

func TestICTable_LookupMisses(t *testing.T) {
	t.Parallel()

	var nilTable *ICTable
	if _, ok := nilTable.Lookup(domain.ICKey{POS: domain.PartOfSpeechNoun, Offset: 1}); ok {
		t.Error("nil table must not report values")
	}
	if nilTable.Len() != 0 {
		t.Errorf("nil table Len() = %d", nilTable.Len())
	}

	table, _ := NewICTable(map[domain.ICKey]float64{
		{POS: domain.PartOfSpeechNoun, Offset: 0}: 1,
		{POS: domain.PartOfSpeechNoun, Offset: 7}: 2,
	})
	if _, ok := table.Lookup(domain.ICKey{POS: domain.PartOfSpeechNoun, Offset: 0}); ok {
		t.Error("offset 0 must be unknown")
	}
	if _, ok := table.Lookup(domain.ICKey{POS: domain.PartOfSpeechVerb, Offset: 7}); ok {
		t.Error("lookup must respect part of speech")
	}
}

func TestICTableFromCounts(t *testing.T) {
	t.Parallel()

	noun := domain.PartOfSpeechNoun
	c := domain.NewICCounts()
	c.Roots[noun] = 1000
	c.Counts[domain.ICKey{POS: noun, Offset: 1}] = 1000
	c.Counts[domain.ICKey{POS: noun, Offset: 2}] = 10
	c.Counts[domain.ICKey{POS: noun, Offset: 3}] = 0
	c.Counts[domain.ICKey{POS: noun, Offset: 4}] = 1001

	table, err := ICTableFromCounts(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		offset int
		want   float64
		ok     bool
	}{
		{1, 0, true},
		{2, -math.Log(0.01), true},
		{3, 0, false},
		{4, 0, true},
		{5, 0, false},
	}
	for _, tt := range tests {
		got, ok := table.Lookup(domain.ICKey{POS: noun, Offset: tt.offset})
		if ok != tt.ok || math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Lookup(%d) = %v, %v; want %v, %v", tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestICTableFromCounts_MissingRoot(t *testing.T) {
	t.Parallel()

	noun := domain.PartOfSpeechNoun
	adj := domain.PartOfSpeechAdjective
	c := domain.NewICCounts()
	c.Roots[noun] = 100
	c.Counts[domain.ICKey{POS: noun, Offset: 1}] = 10
	c.Counts[domain.ICKey{POS: adj, Offset: 1148283}] = 4.25

	table, err := ICTableFromCounts(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := table.Lookup(domain.ICKey{POS: noun, Offset: 1}); !ok || math.Abs(got-math.Log(10)) > 1e-12 {
		t.Errorf("noun lookup = %v, %v; want %v, true", got, ok, math.Log(10))
	}
	if _, ok := table.Lookup(domain.ICKey{POS: adj, Offset: 1148283}); ok {
		t.Error("count without a root total must stay unknown")
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestICTableFromCounts_InvalidCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		count float64
	}{
		{"negative", -1},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := domain.NewICCounts()
			c.Roots[domain.PartOfSpeechNoun] = 100
			c.Counts[domain.ICKey{POS: domain.PartOfSpeechNoun, Offset: 9}] = tt.count

			if _, err := ICTableFromCounts(c); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
