// Package report turns correlation results into declarative plot
// descriptions for an external rendering backend.
package report

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordsim/internal/domain"
)

// Annotation placement in axes coordinates and its box style.
const (
	annotationX     = 0.6
	annotationY     = 0.3
	annotationStyle = "round/wheat/0.5"
)

// Render describes a scatter plot of (x, y) with the fitted regression line
// and a text box carrying the statistics of res. It computes no statistics
// itself.
func Render(x, y []float64, xLabel, yLabel string, res domain.CorrelationResult) (domain.RenderRequest, error) {
	if len(x) != len(y) {
		return domain.RenderRequest{}, fmt.Errorf("series of lengths %d and %d: %w",
			len(x), len(y), domain.ErrInvalidInput)
	}

	points := make([]domain.Point, len(x))
	line := make([]domain.Point, len(x))
	for i := range x {
		points[i] = domain.Point{X: x[i], Y: y[i]}
		line[i] = domain.Point{X: x[i], Y: res.Regression.Intercept + res.Regression.Slope*x[i]}
	}

	return domain.RenderRequest{
		ID:     uuid.New(),
		Kind:   domain.PlotKindScatterLine,
		Title:  fmt.Sprintf("Correlation between %s and %s", xLabel, yLabel),
		XLabel: xLabel,
		YLabel: yLabel,
		Points: points,
		Line:   line,
		Annotation: domain.Annotation{
			Lines: []string{
				fmt.Sprintf("rank-corr=%.4f", res.RankCorrelation),
				"p-value=" + strconv.FormatFloat(res.PValue, 'f', -1, 64),
				fmt.Sprintf("regression-corr=%.4f", res.Regression.RValue),
			},
			X:     annotationX,
			Y:     annotationY,
			Style: annotationStyle,
		},
	}, nil
}
