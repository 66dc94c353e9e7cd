package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/calcettolab/torneo-api/internal/domain/sheet"
	"github.com/calcettolab/torneo-api/internal/platform/logging"
	"github.com/calcettolab/torneo-api/internal/usecase"
)

type Handler struct {
	tournamentService *usecase.TournamentService
	calendarService   *usecase.CalendarService
	bracketService    *usecase.BracketService
	statsService      *usecase.StatsService
	matchService      *usecase.MatchService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	tournamentService *usecase.TournamentService,
	calendarService *usecase.CalendarService,
	bracketService *usecase.BracketService,
	statsService *usecase.StatsService,
	matchService *usecase.MatchService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		tournamentService: tournamentService,
		calendarService:   calendarService,
		bracketService:    bracketService,
		statsService:      statsService,
		matchService:      matchService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	t, err := h.tournamentService.Tournament(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get tournament failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(t))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	refs, err := h.tournamentService.Teams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamRefDTO, 0, len(refs))
	for _, ref := range refs {
		items = append(items, teamRefToDTO(ref))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCalendar")
	defer span.End()

	days, err := h.calendarService.Days(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get calendar failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]calendarDayDTO, 0, len(days))
	for _, day := range days {
		items = append(items, calendarDayToDTO(day))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBracket")
	defer span.End()

	b, err := h.bracketService.Bracket(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get bracket failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bracketToDTO(b))
}

func (h *Handler) GetAwards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAwards")
	defer span.End()

	awards, err := h.statsService.Awards(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get awards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, awardsToDTO(awards))
}

func (h *Handler) GetTopStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopStats")
	defer span.End()

	category := r.URL.Query().Get("category")
	rows, err := h.statsService.Top(ctx, category)
	if err != nil {
		h.logger.WarnContext(ctx, "get top stats failed", "category", category, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]statRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, statRowToDTO(row))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SubmitMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitMatch")
	defer span.End()

	var req submitMatchRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id, err := h.matchService.Submit(ctx, usecase.SubmitMatchInput{
		Team1ID:    req.Team1ID,
		Team1Label: req.Team1Label,
		Team2ID:    req.Team2ID,
		Team2Label: req.Team2Label,
		Score1:     req.Score1,
		Score2:     req.Score2,
		Date:       req.Date,
		Team1Stats: statsFromRequest(req.Team1Stats),
		Team2Stats: statsFromRequest(req.Team2Stats),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit match failed", "team1", req.Team1ID, "team2", req.Team2ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, submitMatchResponse{ID: id})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func statsFromRequest(in submitMatchStatsRequest) sheet.MatchStats {
	return sheet.MatchStats{
		Flash:            in.Flash,
		GoalAttacker:     in.GoalAttacker,
		GoalDefender:     in.GoalDefender,
		AutogoalAttacker: in.AutogoalAttacker,
		AutogoalDefender: in.AutogoalDefender,
	}
}
