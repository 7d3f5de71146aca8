package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /v1/competitions/{code}/matches", handler.ListMatchesByCompetition)
	mux.HandleFunc("GET /v1/matches/{matchID}/events", handler.ListMatchEvents)
	mux.HandleFunc("GET /v1/matches/{matchID}/lineups", handler.ListMatchLineups)
	mux.HandleFunc("GET /v1/matches/{matchID}/player-stats", handler.ListMatchPlayerStats)
	mux.HandleFunc("GET /v1/matches/{matchID}/team-stats", handler.ListMatchTeamStats)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/update", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunUpdateJob)))
	mux.Handle("POST /v1/internal/jobs/refresh-totals", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRefreshTotalsJob)))
}
