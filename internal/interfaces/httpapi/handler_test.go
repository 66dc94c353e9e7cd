package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/calcettolab/torneo-api/internal/infrastructure/repository/memory"
	"github.com/calcettolab/torneo-api/internal/usecase"
)

type downSource struct{}

func (downSource) FetchTab(context.Context, string) ([][]string, error) {
	return nil, errors.New("backend down")
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	source := memory.NewSeeded()
	fetcher := usecase.NewRowFetcher(source, nil, nil)
	handler := NewHandler(
		usecase.NewTournamentService(fetcher),
		usecase.NewCalendarService(fetcher),
		usecase.NewBracketService(fetcher),
		usecase.NewStatsService(fetcher),
		usecase.NewMatchService(fetcher, source, nil),
		nil,
	)
	return NewRouter(handler, nil, []string{"*"})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestHandler_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestHandler_GetTournament(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tournament", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data object: %v", body)
	}
	groups, ok := data["groups"].([]any)
	if !ok || len(groups) != 2 {
		t.Fatalf("groups = %v", data["groups"])
	}
}

func TestHandler_GetCalendar(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/calendar", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	days, ok := body["data"].([]any)
	if !ok || len(days) != 2 {
		t.Fatalf("days = %v", body["data"])
	}
	first, _ := days[0].(map[string]any)
	if first["round_label"] != "Giornata 1" {
		t.Fatalf("first day = %v", first)
	}
}

func TestHandler_GetBracket(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bracket", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if _, ok := data["left_rounds"]; !ok {
		t.Fatalf("bracket payload = %v", data)
	}
}

func TestHandler_GetTopStats_RejectsUnknownCategory(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stats/top?category=golden-boot", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_GetTopStats(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stats/top?category=capocannoniere", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	rows, ok := body["data"].([]any)
	if !ok || len(rows) == 0 || len(rows) > 5 {
		t.Fatalf("rows = %v", body["data"])
	}
}

func TestHandler_SubmitMatch(t *testing.T) {
	router := newTestRouter(t)

	payload := `{
		"team1_id": "T1",
		"team2_id": "T5",
		"score1": 6,
		"score2": 3,
		"date": "2026-05-17",
		"team1_stats": {"flash": 1, "goal_attacker": 4, "goal_defender": 2},
		"team2_stats": {"goal_attacker": 2, "goal_defender": 1}
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/matches", strings.NewReader(payload)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	// The seed ships six match rows.
	if data["id"] != "A7" {
		t.Fatalf("id = %v, want A7", data["id"])
	}
}

func TestHandler_SubmitMatch_BadPayloads(t *testing.T) {
	router := newTestRouter(t)

	cases := map[string]string{
		"not json":        `{`,
		"unknown field":   `{"team1_id":"T1","team2_id":"T2","date":"2026-05-17","extra":1}`,
		"same team":       `{"team1_id":"T1","team2_id":"T1","date":"2026-05-17"}`,
		"missing date":    `{"team1_id":"T1","team2_id":"T2"}`,
		"bad date format": `{"team1_id":"T1","team2_id":"T2","date":"17/05/2026"}`,
		"negative score":  `{"team1_id":"T1","team2_id":"T2","date":"2026-05-17","score1":-2}`,
	}
	for name, payload := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/matches", strings.NewReader(payload)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}
}

func TestHandler_SubmitMatch_UnknownTeam(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"team1_id":"T99","team2_id":"T1","date":"2026-05-17"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/matches", strings.NewReader(payload)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandler_SourceDownMapsToUnavailable(t *testing.T) {
	fetcher := usecase.NewRowFetcher(downSource{}, nil, nil)
	handler := NewHandler(
		usecase.NewTournamentService(fetcher),
		usecase.NewCalendarService(fetcher),
		usecase.NewBracketService(fetcher),
		usecase.NewStatsService(fetcher),
		usecase.NewMatchService(fetcher, memory.NewSeeded(), nil),
		nil,
	)
	router := NewRouter(handler, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tournament", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	errorObj, _ := body["error"].(map[string]any)
	if errorObj["status"] != "UNAVAILABLE" {
		t.Fatalf("error = %v", errorObj)
	}
}
