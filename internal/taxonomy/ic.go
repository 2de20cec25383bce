package taxonomy

import (
	"fmt"
	"maps"
	"math"

	"github.com/heartmarshall/wordsim/internal/domain"
)

// ICTable maps senses to their information content. It is immutable once
// constructed and is passed explicitly to Build.
type ICTable struct {
	values map[domain.ICKey]float64
}

// NewICTable creates a table from precomputed information-content values.
// Values must be finite and non-negative.
func NewICTable(values map[domain.ICKey]float64) (*ICTable, error) {
	for k, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("ic for %s/%d is %v: %w", k.POS.Letter(), k.Offset, v, domain.ErrInvalidInput)
		}
	}
	return &ICTable{values: maps.Clone(values)}, nil
}

// ICTableFromCounts derives information content from raw corpus counts:
// IC = -ln(count / root total of the part of speech). Zero counts stay
// unknown rather than becoming infinite, as do counts of a part of speech
// without a root total (IC files only carry roots for nouns and verbs).
func ICTableFromCounts(c domain.ICCounts) (*ICTable, error) {
	values := make(map[domain.ICKey]float64, len(c.Counts))
	for k, count := range c.Counts {
		if math.IsNaN(count) || math.IsInf(count, 0) || count < 0 {
			return nil, fmt.Errorf("count for %s/%d is %v: %w", k.POS.Letter(), k.Offset, count, domain.ErrInvalidInput)
		}
		total := c.Roots[k.POS]
		if count == 0 || total <= 0 {
			continue
		}
		ic := -math.Log(count / total)
		if ic < 0 {
			// Counts above the root total only appear through rounding in
			// the source files; clamp to the root's IC.
			ic = 0
		}
		values[k] = ic
	}
	return &ICTable{values: values}, nil
}

// Lookup returns the information content for key, or false when the sense
// was never seen in the reference corpus.
func (t *ICTable) Lookup(key domain.ICKey) (float64, bool) {
	if t == nil || key.Offset == 0 {
		return 0, false
	}
	v, ok := t.values[key]
	return v, ok
}

// Len returns the number of known entries.
func (t *ICTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.values)
}
