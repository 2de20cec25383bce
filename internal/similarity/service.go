// Package similarity scores senses and words against a lexical graph.
package similarity

import (
	"errors"
	"log/slog"
	"math"

	"github.com/heartmarshall/wordsim/internal/domain"
)

// Match is the best-scoring sense pair of two words.
type Match struct {
	SenseA domain.Sense
	SenseB domain.Sense
	Score  float64
}

// PairScore is the outcome of scoring one dataset pair. Err is set, and
// Score is meaningless, when the similarity is undefined.
type PairScore struct {
	Pair  domain.WordPair
	Score float64
	Err   error
}

// Defined reports whether the pair received a score.
func (p PairScore) Defined() bool { return p.Err == nil }

// Service implements word-level similarity on top of the sense metrics.
type Service struct {
	log   *slog.Logger
	graph Accessor
}

// NewService creates a similarity service over g.
func NewService(logger *slog.Logger, g Accessor) *Service {
	return &Service{
		log:   logger.With("service", "similarity"),
		graph: g,
	}
}

// WordSimilarity returns the highest similarity between any noun sense of
// wordA and any noun sense of wordB, rounded to 4 decimal places.
func (s *Service) WordSimilarity(wordA, wordB string, m domain.Measure) (float64, error) {
	match, err := s.BestMatch(wordA, wordB, m)
	if err != nil {
		return 0, err
	}
	return RoundScore(match.Score), nil
}

// BestMatch finds the noun sense pair of wordA and wordB with the highest
// defined score under m. Scores are not rounded.
func (s *Service) BestMatch(wordA, wordB string, m domain.Measure) (Match, error) {
	metric, err := MetricFor(m)
	if err != nil {
		return Match{}, &domain.SimilarityError{WordA: wordA, WordB: wordB, Measure: m, Err: err}
	}

	sensesA := s.graph.SensesOf(wordA, domain.PartOfSpeechNoun)
	sensesB := s.graph.SensesOf(wordB, domain.PartOfSpeechNoun)

	var unknown []string
	if len(sensesA) == 0 {
		unknown = append(unknown, wordA)
	}
	if len(sensesB) == 0 {
		unknown = append(unknown, wordB)
	}
	if len(unknown) > 0 {
		return Match{}, &domain.SimilarityError{
			WordA: wordA, WordB: wordB, Measure: m,
			Unknown: unknown,
			Err:     domain.ErrUnknownWord,
		}
	}

	best := Match{Score: math.Inf(-1)}
	found := false
	for _, a := range sensesA {
		for _, b := range sensesB {
			score, ok := metric(s.graph, a, b)
			if !ok || score <= best.Score {
				continue
			}
			best = Match{SenseA: a, SenseB: b, Score: score}
			found = true
		}
	}
	if !found {
		return Match{}, &domain.SimilarityError{
			WordA: wordA, WordB: wordB, Measure: m,
			Err: domain.ErrUndefinedSimilarity,
		}
	}
	return best, nil
}

// ScorePairs scores every pair in order. Pairs whose similarity is
// undefined are returned with their error; an invalid measure fails the
// whole batch.
func (s *Service) ScorePairs(pairs []domain.WordPair, m domain.Measure) ([]PairScore, error) {
	if _, err := MetricFor(m); err != nil {
		return nil, err
	}

	out := make([]PairScore, 0, len(pairs))
	undefined := 0
	for _, p := range pairs {
		score, err := s.WordSimilarity(p.A, p.B, m)
		if err != nil {
			if !errors.Is(err, domain.ErrUndefinedSimilarity) {
				return nil, err
			}
			undefined++
			s.log.Debug("similarity undefined",
				slog.String("word_a", p.A),
				slog.String("word_b", p.B),
				slog.String("measure", m.String()),
				slog.String("error", err.Error()),
			)
		}
		out = append(out, PairScore{Pair: p, Score: score, Err: err})
	}

	s.log.Info("pairs scored",
		slog.String("measure", m.String()),
		slog.Int("total", len(pairs)),
		slog.Int("undefined", undefined),
	)
	return out, nil
}

// RoundScore rounds a similarity score to 4 decimal places.
func RoundScore(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
