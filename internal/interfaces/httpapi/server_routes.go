package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/resolve", handler.ResolveLeague)
}

func registerPositionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/positions", handler.GetPosition)
	mux.HandleFunc("POST /v1/positions/batch", handler.ResolvePositionBatch)
}

// Analyses spend completion API quota, so only this route is rate limited.
func registerAnalysisRoutes(mux *http.ServeMux, handler *Handler, limit RateLimitConfig) {
	mux.Handle("POST /v1/analyses", RateLimit(limit, http.HandlerFunc(handler.CreateAnalysis)))
}
