package config

import (
	"testing"
	"time"

	"github.com/calcettolab/torneo-api/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SHEETS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %s, want dev", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %s", cfg.HTTPAddr)
	}
	if cfg.SheetsCacheTTL != 90*time.Second {
		t.Fatalf("SheetsCacheTTL = %s", cfg.SheetsCacheTTL)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("LogLevel = %v", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_SheetsRequiresCredentials(t *testing.T) {
	t.Setenv("SHEETS_ENABLED", "true")
	t.Setenv("SHEETS_SPREADSHEET_ID", "")
	t.Setenv("SHEETS_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when sheets credentials are missing")
	}

	t.Setenv("SHEETS_SPREADSHEET_ID", "sheet-123")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when sheets token is missing")
	}

	t.Setenv("SHEETS_TOKEN", "token")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SheetsSpreadsheetID != "sheet-123" {
		t.Fatalf("SheetsSpreadsheetID = %s", cfg.SheetsSpreadsheetID)
	}
}

func TestLoad_InvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid APP_ENV")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SHEETS_ENABLED", "false")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHEETS_CACHE_TTL", "2m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AppEnv != EnvProd {
		t.Fatalf("AppEnv = %s", cfg.AppEnv)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.SheetsCacheTTL != 2*time.Minute {
		t.Fatalf("SheetsCacheTTL = %s", cfg.SheetsCacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}
