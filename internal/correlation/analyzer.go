// Package correlation compares two numeric series: Spearman rank
// correlation with its two-sided p-value, and an ordinary-least-squares
// line fit.
package correlation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/heartmarshall/wordsim/internal/domain"
)

// Analyze computes the rank correlation of x and y and the regression of y
// on x. The series must have equal length of at least 2 and contain only
// finite values; neither may be constant.
func Analyze(x, y []float64) (domain.CorrelationResult, error) {
	if len(x) != len(y) || len(x) < 2 {
		return domain.CorrelationResult{}, fmt.Errorf("series of lengths %d and %d: %w",
			len(x), len(y), domain.ErrInsufficientData)
	}
	if err := checkFinite("x", x); err != nil {
		return domain.CorrelationResult{}, err
	}
	if err := checkFinite("y", y); err != nil {
		return domain.CorrelationResult{}, err
	}
	if constant(x) {
		return domain.CorrelationResult{}, fmt.Errorf("x is constant, regression slope is undefined: %w",
			domain.ErrInvalidInput)
	}
	if constant(y) {
		return domain.CorrelationResult{}, fmt.Errorf("y is constant, rank correlation is undefined: %w",
			domain.ErrInvalidInput)
	}

	n := len(x)
	rho := clamp(stat.Correlation(rank(x), rank(y), nil))
	intercept, slope := stat.LinearRegression(x, y, nil, false)

	return domain.CorrelationResult{
		RankCorrelation: rho,
		PValue:          pValue(rho, n),
		Regression: domain.Regression{
			Slope:     slope,
			Intercept: intercept,
			RValue:    clamp(stat.Correlation(x, y, nil)),
		},
		N: n,
	}, nil
}

// pValue is the two-sided p-value of the null hypothesis of no
// correlation, from Student's t distribution with n-2 degrees of freedom.
func pValue(r float64, n int) float64 {
	dof := float64(n - 2)
	switch {
	case dof == 0:
		return 1
	case math.Abs(r) == 1:
		return 0
	}
	t := r * math.Sqrt(dof/((1-r)*(1+r)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
	return 2 * dist.Survival(math.Abs(t))
}

func checkFinite(name string, v []float64) error {
	for i, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%s[%d] is %v: %w", name, i, f, domain.ErrInvalidInput)
		}
	}
	return nil
}

// clamp keeps a correlation coefficient within [-1, 1] against rounding.
func clamp(r float64) float64 {
	return math.Max(-1, math.Min(1, r))
}
