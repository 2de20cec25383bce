// Package rest exposes the similarity engine over JSON HTTP endpoints.
package rest

import "net/http"

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Similarity *SimilarityHandler
	Analysis   *AnalysisHandler
}

// NewRouter registers every endpoint on a new ServeMux. Requests with a
// known path and the wrong method get 405 from the mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /v1/similarity", h.Similarity.Get)
	mux.HandleFunc("POST /v1/correlation", h.Analysis.Correlation)
	mux.HandleFunc("POST /v1/report", h.Analysis.Report)

	return mux
}
