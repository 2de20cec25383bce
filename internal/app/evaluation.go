package app

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordsim/internal/correlation"
	"github.com/heartmarshall/wordsim/internal/domain"
	"github.com/heartmarshall/wordsim/internal/report"
	"github.com/heartmarshall/wordsim/internal/similarity"
)

// PairScorer scores dataset pairs. Implemented by similarity.Service.
type PairScorer interface {
	ScorePairs(pairs []domain.WordPair, m domain.Measure) ([]similarity.PairScore, error)
}

// MeasureReport is the evaluation outcome of one measure.
type MeasureReport struct {
	Measure   domain.Measure
	Total     int
	Undefined int
	Result    domain.CorrelationResult
	Render    domain.RenderRequest
	// Err is set when the defined pairs could not be analyzed, e.g. fewer
	// than two of them. Result and Render are then empty.
	Err error
}

// Evaluator compares similarity measures against human judgements.
type Evaluator struct {
	log    *slog.Logger
	scorer PairScorer
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(logger *slog.Logger, scorer PairScorer) *Evaluator {
	return &Evaluator{
		log:    logger.With("service", "evaluation"),
		scorer: scorer,
	}
}

// Evaluate scores pairs under every measure, drops undefined pairs and
// correlates the remaining scores with the human column. A failed analysis
// is reported per measure; only a scoring failure aborts.
func (e *Evaluator) Evaluate(pairs []domain.WordPair, measures []domain.Measure) ([]MeasureReport, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no pairs to evaluate: %w", domain.ErrInsufficientData)
	}

	reports := make([]MeasureReport, 0, len(measures))
	for _, m := range measures {
		scores, err := e.scorer.ScorePairs(pairs, m)
		if err != nil {
			return nil, fmt.Errorf("score pairs with %s: %w", m, err)
		}

		x, y, undefined := Pairs(scores)
		rep := MeasureReport{Measure: m, Total: len(pairs), Undefined: undefined}

		res, err := correlation.Analyze(x, y)
		if err != nil {
			rep.Err = err
			e.log.Warn("analysis failed",
				slog.String("measure", m.String()),
				slog.Int("defined", len(x)),
				slog.String("error", err.Error()),
			)
			reports = append(reports, rep)
			continue
		}
		rep.Result = res

		rep.Render, err = report.Render(x, y, m.String()+" similarity", "human score", res)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", m, err)
		}

		e.log.Info("measure evaluated",
			slog.String("measure", m.String()),
			slog.Int("defined", res.N),
			slog.Int("undefined", undefined),
			slog.Float64("rank_correlation", res.RankCorrelation),
			slog.Float64("p_value", res.PValue),
		)
		reports = append(reports, rep)
	}
	return reports, nil
}

// Pairs splits scored pairs into a score column and a human column,
// dropping pairs whose similarity is undefined.
func Pairs(scores []similarity.PairScore) (x, y []float64, undefined int) {
	x = make([]float64, 0, len(scores))
	y = make([]float64, 0, len(scores))
	for _, s := range scores {
		if !s.Defined() {
			undefined++
			continue
		}
		x = append(x, s.Score)
		y = append(y, s.Pair.Human)
	}
	return x, y, undefined
}
