package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/openpitch/statsbomb-api/internal/domain/competition"
	"github.com/openpitch/statsbomb-api/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	DBURL                       string
	CacheTTL                    time.Duration
	CORSAllowedOrigins          []string
	InternalJobToken            string
	StatsBombBaseURL            string
	StatsBombTimeout            time.Duration
	StatsBombMaxRetries         int
	StatsBombCircuitEnabled     bool
	StatsBombCircuitFailures    int
	StatsBombCircuitOpenTimeout time.Duration
	StatsBombCircuitHalfOpen    int
	CompetitionIDByCode         map[string]int64
	UpdateSeasonsPerCompetition int
	UpdateMaxWorkers            int
	UpdateInterval              time.Duration
	PprofEnabled                bool
	PprofAddr                   string
	UptraceEnabled              bool
	UptraceDSN                  string
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeUploadRate         time.Duration
	LogLevel                    logging.Level
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	statsBombTimeout, err := time.ParseDuration(getEnv("STATSBOMB_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSBOMB_TIMEOUT: %w", err)
	}
	statsBombMaxRetries, err := getEnvAsInt("STATSBOMB_MAX_RETRIES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSBOMB_MAX_RETRIES: %w", err)
	}
	if statsBombMaxRetries < 0 {
		return Config{}, fmt.Errorf("STATSBOMB_MAX_RETRIES must be >= 0")
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("STATSBOMB_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSBOMB_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailures, err := getEnvAsInt("STATSBOMB_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSBOMB_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailures < 1 {
		return Config{}, fmt.Errorf("STATSBOMB_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("STATSBOMB_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSBOMB_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if circuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("STATSBOMB_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	circuitHalfOpen, err := getEnvAsInt("STATSBOMB_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSBOMB_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpen < 1 {
		return Config{}, fmt.Errorf("STATSBOMB_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	competitionIDByCode := competition.DefaultCodeToID()
	if raw := strings.TrimSpace(getEnv("COMPETITION_ID_BY_CODE", "")); raw != "" {
		competitionIDByCode, err = parseIDMap(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse COMPETITION_ID_BY_CODE: %w", err)
		}
	}
	if len(competitionIDByCode) == 0 {
		return Config{}, fmt.Errorf("COMPETITION_ID_BY_CODE cannot be empty")
	}

	updateSeasons, err := getEnvAsInt("UPDATE_SEASONS_PER_COMPETITION", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPDATE_SEASONS_PER_COMPETITION: %w", err)
	}
	if updateSeasons < 1 {
		return Config{}, fmt.Errorf("UPDATE_SEASONS_PER_COMPETITION must be >= 1")
	}
	updateMaxWorkers, err := getEnvAsInt("UPDATE_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPDATE_MAX_WORKERS: %w", err)
	}
	if updateMaxWorkers < 1 {
		return Config{}, fmt.Errorf("UPDATE_MAX_WORKERS must be >= 1")
	}
	updateInterval, err := time.ParseDuration(getEnv("UPDATE_INTERVAL", "6h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPDATE_INTERVAL: %w", err)
	}
	if updateInterval <= 0 {
		return Config{}, fmt.Errorf("UPDATE_INTERVAL must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "statsbomb-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		DBURL:                       strings.TrimSpace(getEnv("DB_URL", "")),
		CacheTTL:                    cacheTTL,
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		InternalJobToken:            strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		StatsBombBaseURL:            strings.TrimSpace(getEnv("STATSBOMB_BASE_URL", "")),
		StatsBombTimeout:            statsBombTimeout,
		StatsBombMaxRetries:         statsBombMaxRetries,
		StatsBombCircuitEnabled:     circuitEnabled,
		StatsBombCircuitFailures:    circuitFailures,
		StatsBombCircuitOpenTimeout: circuitOpenTimeout,
		StatsBombCircuitHalfOpen:    circuitHalfOpen,
		CompetitionIDByCode:         competitionIDByCode,
		UpdateSeasonsPerCompetition: updateSeasons,
		UpdateMaxWorkers:            updateMaxWorkers,
		UpdateInterval:              updateInterval,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
		LogLevel:                    parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseIDMap(raw string) (map[string]int64, error) {
	out := make(map[string]int64)
	parts := strings.Split(raw, ",")
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}

		segments := strings.SplitN(item, ":", 2)
		if len(segments) != 2 {
			return nil, fmt.Errorf("invalid map item %q, expected code:number", item)
		}

		key := strings.ToUpper(strings.TrimSpace(segments[0]))
		if key == "" {
			return nil, fmt.Errorf("empty competition code in item %q", item)
		}
		value, err := strconv.ParseInt(strings.TrimSpace(segments[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number in item %q: %w", item, err)
		}
		if value <= 0 {
			return nil, fmt.Errorf("id must be > 0 in item %q", item)
		}

		out[key] = value
	}
	return out, nil
}
