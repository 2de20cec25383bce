// Package dataset parses word-pair similarity datasets such as WordSim-353
// and SimLex-999 exports. Pure function: reader in, domain structs out.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/wordsim/internal/domain"
)

// LoadPairs reads a pair dataset from a CSV file.
func LoadPairs(path string) ([]domain.WordPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pairs file: %w", err)
	}
	defer f.Close()

	pairs, err := ParsePairs(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return pairs, nil
}

// ParsePairs reads CSV rows of the form word1,word2,score. The first row is
// a header and is skipped. Columns past the third are ignored and lines
// starting with '#' are comments.
func ParsePairs(r io.Reader) ([]domain.WordPair, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	// Skip header row.
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var pairs []domain.WordPair
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: expected 3 columns, got %d: %w", line, len(record), domain.ErrInvalidInput)
		}

		a := strings.TrimSpace(record[0])
		b := strings.TrimSpace(record[1])
		if a == "" || b == "" {
			return nil, fmt.Errorf("line %d: empty word: %w", line, domain.ErrInvalidInput)
		}

		score, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: score %q: %w", line, record[2], domain.ErrInvalidInput)
		}

		pairs = append(pairs, domain.WordPair{A: a, B: b, Human: score})
	}

	return pairs, nil
}
