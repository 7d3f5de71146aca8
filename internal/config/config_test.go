package config

import (
	"testing"
	"time"

	"github.com/openpitch/statsbomb-api/internal/domain/competition"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.StatsBombTimeout != 20*time.Second {
		t.Fatalf("unexpected StatsBombTimeout: %s", cfg.StatsBombTimeout)
	}
	if cfg.CompetitionIDByCode["WC"] != 43 {
		t.Fatalf("expected WC to map to 43, got %d", cfg.CompetitionIDByCode["WC"])
	}
	defaults := competition.DefaultCodeToID()
	if len(cfg.CompetitionIDByCode) != len(defaults) {
		t.Fatalf("expected %d default codes, got %d", len(defaults), len(cfg.CompetitionIDByCode))
	}
	for code, id := range defaults {
		if cfg.CompetitionIDByCode[code] != id {
			t.Fatalf("code %s = %d, want %d", code, cfg.CompetitionIDByCode[code], id)
		}
	}
	if cfg.UpdateSeasonsPerCompetition != 2 {
		t.Fatalf("unexpected UpdateSeasonsPerCompetition: %d", cfg.UpdateSeasonsPerCompetition)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected empty DBURL by default, got %q", cfg.DBURL)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_CompetitionMapOverride(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("COMPETITION_ID_BY_CODE", "wc:43, pl:2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CompetitionIDByCode) != 2 {
		t.Fatalf("expected two codes, got %d", len(cfg.CompetitionIDByCode))
	}
	if cfg.CompetitionIDByCode["PL"] != 2 {
		t.Fatalf("expected PL to map to 2, got %d", cfg.CompetitionIDByCode["PL"])
	}
}

func TestLoad_CompetitionMapRejectsMalformedItems(t *testing.T) {
	cases := []string{"WC", "WC:abc", ":43", "WC:0"}
	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("COMPETITION_ID_BY_CODE", raw)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for COMPETITION_ID_BY_CODE=%q", raw)
			}
		})
	}
}

func TestLoad_StatsBombRetriesValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STATSBOMB_MAX_RETRIES", "-1")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative STATSBOMB_MAX_RETRIES")
	}
}
