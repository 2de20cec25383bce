package icfile

import (
	"errors"
	"math"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/heartmarshall/wordsim/internal/domain"
	"github.com/heartmarshall/wordsim/internal/taxonomy"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func TestParse(t *testing.T) {
	result, err := Parse(testdataPath(t, "ic-sample.dat"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if result.Version != "eOS9lXC6GvMWznF1wkZofDdtbBU" {
		t.Errorf("Version = %q", result.Version)
	}
	if result.Stats.Entries != 9 || result.Stats.Roots != 2 {
		t.Errorf("Stats = %+v, want 9 entries and 2 roots", result.Stats)
	}

	noun := domain.PartOfSpeechNoun
	checks := []struct {
		key  domain.ICKey
		want float64
	}{
		{domain.ICKey{POS: noun, Offset: 1740}, 1000},
		{domain.ICKey{POS: noun, Offset: 2084071}, 10},
		{domain.ICKey{POS: noun, Offset: 2075296}, 20.5},
		{domain.ICKey{POS: noun, Offset: 2120997}, 0},
		{domain.ICKey{POS: domain.PartOfSpeechVerb, Offset: 1926311}, 30},
		// Satellite and head adjective counts share a key.
		{domain.ICKey{POS: domain.PartOfSpeechAdjective, Offset: 1148283}, 5},
	}
	for _, c := range checks {
		if got := result.Counts.Counts[c.key]; got != c.want {
			t.Errorf("count %s/%d = %v, want %v", c.key.POS, c.key.Offset, got, c.want)
		}
	}

	if got := result.Counts.Roots[noun]; got != 1000 {
		t.Errorf("noun root total = %v, want 1000", got)
	}
	if got := result.Counts.Roots[domain.PartOfSpeechVerb]; got != 300 {
		t.Errorf("verb root total = %v, want 300", got)
	}
}

func TestParse_FeedsICTable(t *testing.T) {
	result, err := Parse(testdataPath(t, "ic-sample.dat"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	table, err := taxonomy.ICTableFromCounts(result.Counts)
	if err != nil {
		t.Fatalf("ICTableFromCounts: %v", err)
	}

	ic, ok := table.Lookup(domain.ICKey{POS: domain.PartOfSpeechNoun, Offset: 2084071})
	if !ok || math.Abs(ic-math.Log(100)) > 1e-12 {
		t.Errorf("IC(dog) = %v, %v; want ln(100)", ic, ok)
	}
	if _, ok := table.Lookup(domain.ICKey{POS: domain.PartOfSpeechNoun, Offset: 2120997}); ok {
		t.Error("zero count must stay unknown")
	}
	// Adjectives carry no ROOT line in the sample.
	if _, ok := table.Lookup(domain.ICKey{POS: domain.PartOfSpeechAdjective, Offset: 1148283}); ok {
		t.Error("adjective without a root total must stay unknown")
	}
}

func TestParseReader_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing header", "1740n 10 ROOT\n"},
		{"bad pos", "wnver::x\n1740q 10\n"},
		{"bad offset", "wnver::x\nabcn 10\n"},
		{"bad count", "wnver::x\n1740n many\n"},
		{"negative count", "wnver::x\n1740n -3\n"},
		{"bad marker", "wnver::x\n1740n 3 LEAF\n"},
		{"too many fields", "wnver::x\n1740n 3 ROOT extra\n"},
		{"single field", "wnver::x\n1740n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReader(strings.NewReader(tt.input))
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestParseReader_ReportsLine(t *testing.T) {
	_, err := ParseReader(strings.NewReader("wnver::x\n1740n 1 ROOT\n\n2084071n oops\n"))
	if err == nil || !strings.Contains(err.Error(), "line 4") {
		t.Errorf("error should mention line 4, got %v", err)
	}
}
