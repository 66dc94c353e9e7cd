package app

import (
	"fmt"
	"net/http"

	"github.com/calcettolab/torneo-api/external/sheets"
	"github.com/calcettolab/torneo-api/internal/config"
	"github.com/calcettolab/torneo-api/internal/domain/sheet"
	"github.com/calcettolab/torneo-api/internal/infrastructure/repository/memory"
	"github.com/calcettolab/torneo-api/internal/interfaces/httpapi"
	"github.com/calcettolab/torneo-api/internal/platform/logging"
	"github.com/calcettolab/torneo-api/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	fallback := memory.NewSeeded()

	var primary sheet.RowSource
	var sink sheet.RowSink
	if cfg.SheetsEnabled {
		client := sheets.NewClient(sheets.ClientConfig{
			BaseURL:            cfg.SheetsBaseURL,
			SpreadsheetID:      cfg.SheetsSpreadsheetID,
			Token:              cfg.SheetsToken,
			Timeout:            cfg.SheetsTimeout,
			MaxRetries:         cfg.SheetsMaxRetries,
			CacheTTL:           cfg.SheetsCacheTTL,
			Logger:             logger,
			CircuitThreshold:   cfg.SheetsCircuitFailures,
			CircuitOpenTimeout: cfg.SheetsCircuitOpenTimeout,
		})
		primary = client
		sink = client
	} else {
		// Demo mode: the seeded dataset serves reads and absorbs writes.
		primary = fallback
		sink = fallback
	}

	fetcher := usecase.NewRowFetcher(primary, fallback, logger)

	handler := httpapi.NewHandler(
		usecase.NewTournamentService(fetcher),
		usecase.NewCalendarService(fetcher),
		usecase.NewBracketService(fetcher),
		usecase.NewStatsService(fetcher),
		usecase.NewMatchService(fetcher, sink, logger),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
