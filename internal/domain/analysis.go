package domain

import "github.com/google/uuid"

// WordPair is one row of an evaluation dataset: two words and the reference
// (human-judged) similarity between them.
type WordPair struct {
	A     string
	B     string
	Human float64
}

// Regression is an ordinary-least-squares line fit.
type Regression struct {
	Slope     float64 `json:"slope"     yaml:"slope"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
	RValue    float64 `json:"r_value"   yaml:"r_value"`
}

// CorrelationResult is the outcome of comparing two numeric series.
type CorrelationResult struct {
	RankCorrelation float64    `json:"rank_correlation" yaml:"rank_correlation"`
	PValue          float64    `json:"p_value"          yaml:"p_value"`
	Regression      Regression `json:"regression"       yaml:"regression"`
	N               int        `json:"n"                yaml:"n"`
}

// Point is a 2-D data point of a plot.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Annotation is a text box placed in axes coordinates (0..1).
type Annotation struct {
	Lines []string `json:"lines" yaml:"lines"`
	X     float64  `json:"x"     yaml:"x"`
	Y     float64  `json:"y"     yaml:"y"`
	Style string   `json:"style" yaml:"style"`
}

// PlotKindScatterLine is a scatter plot with an overlaid line.
const PlotKindScatterLine = "scatter+line"

// RenderRequest is a declarative plot description handed to an external
// rendering backend.
type RenderRequest struct {
	ID         uuid.UUID  `json:"id"          yaml:"id"`
	Kind       string     `json:"kind"        yaml:"kind"`
	Title      string     `json:"title"       yaml:"title"`
	XLabel     string     `json:"x_label"     yaml:"x_label"`
	YLabel     string     `json:"y_label"     yaml:"y_label"`
	Points     []Point    `json:"points"      yaml:"points"`
	Line       []Point    `json:"line"        yaml:"line"`
	Annotation Annotation `json:"annotation"  yaml:"annotation"`
}
