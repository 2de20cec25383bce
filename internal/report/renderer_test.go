package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/wordsim/internal/domain"
)

func sampleResult() domain.CorrelationResult {
	return domain.CorrelationResult{
		RankCorrelation: 0.82078268,
		PValue:          0.0885870053135438,
		Regression:      domain.Regression{Slope: 2, Intercept: 0.5, RValue: 0.912345},
		N:               3,
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3}
	y := []float64{2.4, 4.6, 6.5}

	req, err := Render(x, y, "path", "human", sampleResult())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, req.ID)
	assert.Equal(t, domain.PlotKindScatterLine, req.Kind)
	assert.Equal(t, "Correlation between path and human", req.Title)
	assert.Equal(t, "path", req.XLabel)
	assert.Equal(t, "human", req.YLabel)
	assert.Equal(t, []domain.Point{{X: 1, Y: 2.4}, {X: 2, Y: 4.6}, {X: 3, Y: 6.5}}, req.Points)
	assert.Equal(t, []domain.Point{{X: 1, Y: 2.5}, {X: 2, Y: 4.5}, {X: 3, Y: 6.5}}, req.Line)

	assert.Equal(t, []string{
		"rank-corr=0.8208",
		"p-value=0.0885870053135438",
		"regression-corr=0.9123",
	}, req.Annotation.Lines)
	assert.Equal(t, 0.6, req.Annotation.X)
	assert.Equal(t, 0.3, req.Annotation.Y)
	assert.Equal(t, "round/wheat/0.5", req.Annotation.Style)
}

func TestRender_FullPrecisionPValue(t *testing.T) {
	t.Parallel()

	res := sampleResult()
	res.PValue = 1.2345678901234e-7

	req, err := Render([]float64{1, 2}, []float64{1, 2}, "a", "b", res)
	require.NoError(t, err)
	assert.Equal(t, "p-value=0.00000012345678901234", req.Annotation.Lines[1])
}

func TestRender_UniqueIDs(t *testing.T) {
	t.Parallel()

	a, err := Render([]float64{1, 2}, []float64{1, 2}, "a", "b", sampleResult())
	require.NoError(t, err)
	b, err := Render([]float64{1, 2}, []float64{1, 2}, "a", "b", sampleResult())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRender_MismatchedSeries(t *testing.T) {
	t.Parallel()

	_, err := Render([]float64{1, 2, 3}, []float64{1, 2}, "a", "b", sampleResult())
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestEncode_JSON(t *testing.T) {
	t.Parallel()

	req, err := Render([]float64{1, 2}, []float64{3, 4}, "lin", "human", sampleResult())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, req, "JSON"))

	var got domain.RenderRequest
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, req, got)
	assert.Contains(t, buf.String(), `"kind": "scatter+line"`)
}

func TestEncode_YAML(t *testing.T) {
	t.Parallel()

	req, err := Render([]float64{1, 2}, []float64{3, 4}, "lin", "human", sampleResult())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, req, FormatYAML))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, req.ID.String(), got["id"])
	assert.Equal(t, "Correlation between lin and human", got["title"])
	assert.Contains(t, buf.String(), "style: round/wheat/0.5")
}

func TestEncode_UnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Encode(&buf, domain.RenderRequest{}, "svg")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Zero(t, buf.Len())
}

func TestExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".json", Extension(FormatJSON))
	assert.Equal(t, ".yaml", Extension("YAML"))
}
