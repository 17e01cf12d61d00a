package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday-predictor/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	PprofEnabled               bool
	PprofAddr                  string
	SwaggerEnabled             bool
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	ScraperTimeout             time.Duration
	ScraperMaxBodyBytes        int64
	PositionBatchWorkers       int
	PositionBatchMax           int
	GroqEnabled                bool
	GroqAPIKey                 string
	GroqBaseURL                string
	GroqModel                  string
	GroqTimeout                time.Duration
	GroqTemperature            float64
	GroqMaxTokens              int
	GroqCircuitEnabled         bool
	GroqCircuitFailureCount    int
	GroqCircuitOpenTimeout     time.Duration
	GroqCircuitHalfOpenMaxReq  int
	RateLimitEnabled           bool
	RateLimitRPS               float64
	RateLimitBurst             int
	RateLimitTrustProxy        bool
	LogLevel                   logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
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

	scraperTimeout, err := time.ParseDuration(getEnv("SCRAPER_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_TIMEOUT: %w", err)
	}
	if scraperTimeout <= 0 {
		return Config{}, fmt.Errorf("SCRAPER_TIMEOUT must be > 0")
	}
	scraperMaxBodyBytes, err := getEnvAsInt("SCRAPER_MAX_BODY_BYTES", 6<<20)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_MAX_BODY_BYTES: %w", err)
	}
	if scraperMaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("SCRAPER_MAX_BODY_BYTES must be > 0")
	}

	positionBatchWorkers, err := getEnvAsInt("POSITION_BATCH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse POSITION_BATCH_WORKERS: %w", err)
	}
	if positionBatchWorkers < 1 {
		return Config{}, fmt.Errorf("POSITION_BATCH_WORKERS must be >= 1")
	}
	positionBatchMax, err := getEnvAsInt("POSITION_BATCH_MAX", 20)
	if err != nil {
		return Config{}, fmt.Errorf("parse POSITION_BATCH_MAX: %w", err)
	}
	if positionBatchMax < 1 {
		return Config{}, fmt.Errorf("POSITION_BATCH_MAX must be >= 1")
	}

	groqEnabled, err := strconv.ParseBool(getEnv("GROQ_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GROQ_ENABLED: %w", err)
	}
	groqAPIKey := strings.TrimSpace(getEnv("GROQ_API_KEY", ""))
	if groqEnabled && groqAPIKey == "" {
		return Config{}, fmt.Errorf("GROQ_API_KEY is required when GROQ_ENABLED=true")
	}
	groqTimeout, err := time.ParseDuration(getEnv("GROQ_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GROQ_TIMEOUT: %w", err)
	}
	if groqTimeout <= 0 {
		return Config{}, fmt.Errorf("GROQ_TIMEOUT must be > 0")
	}
	groqTemperature, err := getEnvAsFloat("GROQ_TEMPERATURE", 0.7)
	if err != nil {
		return Config{}, err
	}
	if groqTemperature < 0 || groqTemperature > 2 {
		return Config{}, fmt.Errorf("GROQ_TEMPERATURE must be between 0 and 2")
	}
	groqMaxTokens, err := getEnvAsInt("GROQ_MAX_TOKENS", 1000)
	if err != nil {
		return Config{}, fmt.Errorf("parse GROQ_MAX_TOKENS: %w", err)
	}
	if groqMaxTokens < 1 {
		return Config{}, fmt.Errorf("GROQ_MAX_TOKENS must be >= 1")
	}
	groqCircuitEnabled, err := strconv.ParseBool(getEnv("GROQ_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GROQ_CIRCUIT_ENABLED: %w", err)
	}
	groqCircuitFailureCount, err := getEnvAsInt("GROQ_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse GROQ_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if groqCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("GROQ_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	groqCircuitOpenTimeout, err := time.ParseDuration(getEnv("GROQ_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GROQ_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if groqCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("GROQ_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	groqCircuitHalfOpenMaxReq, err := getEnvAsInt("GROQ_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse GROQ_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if groqCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("GROQ_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	rateLimitEnabled, err := strconv.ParseBool(getEnv("RATE_LIMIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_ENABLED: %w", err)
	}
	rateLimitRPS, err := getEnvAsFloat("RATE_LIMIT_RPS", 1)
	if err != nil {
		return Config{}, err
	}
	if rateLimitEnabled && rateLimitRPS <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be > 0")
	}
	rateLimitBurst, err := getEnvAsInt("RATE_LIMIT_BURST", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_BURST: %w", err)
	}
	if rateLimitEnabled && rateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be >= 1")
	}

	rateLimitTrustProxy, err := strconv.ParseBool(getEnv("RATE_LIMIT_TRUST_PROXY", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_TRUST_PROXY: %w", err)
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "matchday-predictor-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":3000"),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		SwaggerEnabled:             swaggerEnabled,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		ScraperTimeout:             scraperTimeout,
		ScraperMaxBodyBytes:        int64(scraperMaxBodyBytes),
		PositionBatchWorkers:       positionBatchWorkers,
		PositionBatchMax:           positionBatchMax,
		GroqEnabled:                groqEnabled,
		GroqAPIKey:                 groqAPIKey,
		GroqBaseURL:                strings.TrimSpace(getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1")),
		GroqModel:                  strings.TrimSpace(getEnv("GROQ_MODEL", "llama3-8b-8192")),
		GroqTimeout:                groqTimeout,
		GroqTemperature:            groqTemperature,
		GroqMaxTokens:              groqMaxTokens,
		GroqCircuitEnabled:         groqCircuitEnabled,
		GroqCircuitFailureCount:    groqCircuitFailureCount,
		GroqCircuitOpenTimeout:     groqCircuitOpenTimeout,
		GroqCircuitHalfOpenMaxReq:  groqCircuitHalfOpenMaxReq,
		RateLimitEnabled:           rateLimitEnabled,
		RateLimitRPS:               rateLimitRPS,
		RateLimitBurst:             rateLimitBurst,
		RateLimitTrustProxy:        rateLimitTrustProxy,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	// Analyses wait on two scrapes plus the completion call.
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.LogLevel = parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	return cfg, nil
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

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, crerr.Wrapf(err, "parse %s", key)
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

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", crerr.Newf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
