package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournament", handler.GetTournament)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/calendar", handler.GetCalendar)
	mux.HandleFunc("GET /v1/bracket", handler.GetBracket)
	mux.HandleFunc("GET /v1/stats/awards", handler.GetAwards)
	mux.HandleFunc("GET /v1/stats/top", handler.GetTopStats)
	mux.HandleFunc("POST /v1/matches", handler.SubmitMatch)
}
