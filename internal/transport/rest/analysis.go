package rest

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/wordsim/internal/correlation"
	"github.com/heartmarshall/wordsim/internal/domain"
	"github.com/heartmarshall/wordsim/internal/report"
)

// Axis labels used when a report request names none.
const (
	defaultXLabel = "x"
	defaultYLabel = "y"
)

// AnalysisHandler serves correlation analysis and report rendering over
// caller-supplied series.
type AnalysisHandler struct {
	maxSeries     int
	defaultFormat string
	log           *slog.Logger
}

// NewAnalysisHandler creates an AnalysisHandler. Series longer than
// maxSeries are rejected; defaultFormat encodes reports when the request
// has no format parameter.
func NewAnalysisHandler(maxSeries int, defaultFormat string, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		maxSeries:     maxSeries,
		defaultFormat: defaultFormat,
		log:           logger.With("handler", "analysis"),
	}
}

// Series elements are pointers so a JSON null stays distinguishable from 0.
type correlationRequest struct {
	X []*float64 `json:"x"`
	Y []*float64 `json:"y"`
}

type reportRequest struct {
	X      []*float64 `json:"x"`
	Y      []*float64 `json:"y"`
	XLabel string     `json:"x_label"`
	YLabel string     `json:"y_label"`
}

// Correlation handles POST /v1/correlation.
func (h *AnalysisHandler) Correlation(w http.ResponseWriter, r *http.Request) {
	var req correlationRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	x, y, err := h.validateSeries(req.X, req.Y)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := correlation.Analyze(x, y)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Report handles POST /v1/report[?format=json|yaml]. It analyzes the series
// and returns the render request describing the plot.
func (h *AnalysisHandler) Report(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(h.defaultFormat)
	if f := r.URL.Query().Get("format"); f != "" {
		format = strings.ToLower(f)
	}
	if format != report.FormatJSON && format != report.FormatYAML {
		handleError(h.log, w, r, domain.NewValidationError("format", "must be json or yaml"))
		return
	}

	var req reportRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	x, y, err := h.validateSeries(req.X, req.Y)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.XLabel == "" {
		req.XLabel = defaultXLabel
	}
	if req.YLabel == "" {
		req.YLabel = defaultYLabel
	}

	res, err := correlation.Analyze(x, y)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rr, err := report.Render(x, y, req.XLabel, req.YLabel, res)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if format == report.FormatJSON {
		writeJSON(w, http.StatusOK, rr)
		return
	}
	var buf bytes.Buffer
	if err := report.Encode(&buf, rr, format); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

// validateSeries checks the series against the length limit and rejects
// missing values, which are never imputed.
func (h *AnalysisHandler) validateSeries(xs, ys []*float64) ([]float64, []float64, error) {
	var errs []domain.FieldError
	if h.maxSeries > 0 && len(xs) > h.maxSeries {
		errs = append(errs, domain.FieldError{Field: "x", Message: fmt.Sprintf("at most %d values", h.maxSeries)})
	}
	if h.maxSeries > 0 && len(ys) > h.maxSeries {
		errs = append(errs, domain.FieldError{Field: "y", Message: fmt.Sprintf("at most %d values", h.maxSeries)})
	}
	if len(errs) > 0 {
		return nil, nil, domain.NewValidationErrors(errs)
	}

	x, err := seriesValues("x", xs)
	if err != nil {
		return nil, nil, err
	}
	y, err := seriesValues("y", ys)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func seriesValues(name string, s []*float64) ([]float64, error) {
	out := make([]float64, len(s))
	for i, v := range s {
		if v == nil {
			return nil, fmt.Errorf("%s[%d] is missing: %w", name, i, domain.ErrInvalidInput)
		}
		out[i] = *v
	}
	return out, nil
}
