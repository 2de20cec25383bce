package rest

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/wordsim/internal/domain"
	"github.com/heartmarshall/wordsim/internal/similarity"
)

// similarityService finds the best-scoring sense pair of two words.
// Implemented by similarity.Service.
type similarityService interface {
	BestMatch(wordA, wordB string, m domain.Measure) (similarity.Match, error)
}

// SimilarityHandler serves word-similarity queries.
type SimilarityHandler struct {
	svc            similarityService
	defaultMeasure domain.Measure
	log            *slog.Logger
}

// NewSimilarityHandler creates a SimilarityHandler. defaultMeasure is used
// when the request names none.
func NewSimilarityHandler(svc similarityService, defaultMeasure domain.Measure, logger *slog.Logger) *SimilarityHandler {
	return &SimilarityHandler{
		svc:            svc,
		defaultMeasure: defaultMeasure,
		log:            logger.With("handler", "similarity"),
	}
}

type senseResponse struct {
	ID     string   `json:"id"`
	POS    string   `json:"pos"`
	Offset int      `json:"offset,omitempty"`
	Lemmas []string `json:"lemmas"`
}

type similarityResponse struct {
	WordA   string         `json:"word_a"`
	WordB   string         `json:"word_b"`
	Measure domain.Measure `json:"measure"`
	Score   float64        `json:"score"`
	SenseA  *senseResponse `json:"sense_a,omitempty"`
	SenseB  *senseResponse `json:"sense_b,omitempty"`
}

// Get handles GET /v1/similarity?word_a=&word_b=&measure=&explain=.
func (h *SimilarityHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	wordA := strings.TrimSpace(q.Get("word_a"))
	wordB := strings.TrimSpace(q.Get("word_b"))

	var fieldErrs []domain.FieldError
	if wordA == "" {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "word_a", Message: "required"})
	}
	if wordB == "" {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "word_b", Message: "required"})
	}
	explain := false
	if raw := q.Get("explain"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: "explain", Message: "must be a boolean"})
		}
		explain = v
	}
	if len(fieldErrs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(fieldErrs))
		return
	}

	measure := h.defaultMeasure
	if raw := q.Get("measure"); raw != "" {
		m, err := domain.ParseMeasure(raw)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		measure = m
	}

	match, err := h.svc.BestMatch(wordA, wordB, measure)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := similarityResponse{
		WordA:   wordA,
		WordB:   wordB,
		Measure: measure,
		Score:   similarity.RoundScore(match.Score),
	}
	if explain {
		resp.SenseA = toSenseResponse(match.SenseA)
		resp.SenseB = toSenseResponse(match.SenseB)
	}
	writeJSON(w, http.StatusOK, resp)
}

func toSenseResponse(s domain.Sense) *senseResponse {
	lemmas := s.Lemmas
	if lemmas == nil {
		lemmas = []string{}
	}
	return &senseResponse{
		ID:     s.ID,
		POS:    s.POS.String(),
		Offset: s.Offset,
		Lemmas: lemmas,
	}
}
