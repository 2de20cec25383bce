// Package icfile parses WordNet information-content files (the ic-*.dat
// format distributed with the WordNet IC corpus) into raw synset counts.
// Pure function: file path in, domain structs out. No database dependencies.
package icfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/wordsim/internal/domain"
)

const headerPrefix = "wnver::"

// ParseResult holds the parsed counts.
type ParseResult struct {
	// Version is the WordNet version hash from the header line.
	Version string
	Counts  domain.ICCounts
	Stats   Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	Entries int
	Roots   int
}

// Parse reads an IC file.
func Parse(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader reads IC data: a "wnver::<hash>" header followed by lines of
// the form "<offset><pos> <count> [ROOT]". Root counts are also summed
// into the per-POS root total. Repeated entries accumulate.
func ParseReader(r io.Reader) (ParseResult, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return ParseResult{}, fmt.Errorf("read header: %w", err)
		}
		return ParseResult{}, fmt.Errorf("empty ic file: %w", domain.ErrInvalidInput)
	}
	header := strings.TrimSpace(scanner.Text())
	if !strings.HasPrefix(header, headerPrefix) {
		return ParseResult{}, fmt.Errorf("line 1: missing %q header: %w", headerPrefix, domain.ErrInvalidInput)
	}

	result := ParseResult{
		Version: strings.TrimPrefix(header, headerPrefix),
		Counts:  domain.NewICCounts(),
	}

	line := 1
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 || len(fields) > 3 {
			return ParseResult{}, fmt.Errorf("line %d: expected 2 or 3 fields, got %d: %w",
				line, len(fields), domain.ErrInvalidInput)
		}

		key, err := parseKey(fields[0])
		if err != nil {
			return ParseResult{}, fmt.Errorf("line %d: %w", line, err)
		}
		count, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || count < 0 {
			return ParseResult{}, fmt.Errorf("line %d: count %q: %w", line, fields[1], domain.ErrInvalidInput)
		}

		result.Counts.Counts[key] += count
		result.Stats.Entries++

		if len(fields) == 3 {
			if fields[2] != "ROOT" {
				return ParseResult{}, fmt.Errorf("line %d: unexpected marker %q: %w", line, fields[2], domain.ErrInvalidInput)
			}
			result.Counts.Roots[key.POS] += count
			result.Stats.Roots++
		}
	}
	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("read line %d: %w", line+1, err)
	}

	return result, nil
}

// parseKey splits "02084071n" into offset and part of speech.
func parseKey(s string) (domain.ICKey, error) {
	if len(s) < 2 {
		return domain.ICKey{}, fmt.Errorf("synset key %q: %w", s, domain.ErrInvalidInput)
	}
	pos, err := domain.ParsePOSLetter(s[len(s)-1:])
	if err != nil {
		return domain.ICKey{}, err
	}
	offset, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || offset <= 0 {
		return domain.ICKey{}, fmt.Errorf("synset offset %q: %w", s[:len(s)-1], domain.ErrInvalidInput)
	}
	return domain.ICKey{POS: pos, Offset: offset}, nil
}
