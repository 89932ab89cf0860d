package config

import (
	"os"
	"strings"
	"time"
)

type SessionBackend string

const (
	SessionMemory   SessionBackend = "memory"
	SessionSQLite   SessionBackend = "sqlite"
	SessionRedis    SessionBackend = "redis"
	SessionPostgres SessionBackend = "postgres"
)

// Server es la configuración del host HTTP del motor.
type Server struct {
	Addr string

	SessionBackend SessionBackend
	SessionDBPath  string
	RedisURL       string
	DatabaseDSN    string

	SeedFile string

	ProviderBaseURL string
	ProviderAPIKey  string
	ProviderDelay   time.Duration

	ShutdownTimeout time.Duration
}

// FromEnv arma la config desde variables de entorno.
// Si SESSION_BACKEND no viene, se infiere: REDIS_URL > DB_DSN > sqlite.
func FromEnv() Server {
	addr := ":8080"
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		addr = ":" + v
	}

	cfg := Server{
		Addr:            addr,
		SessionDBPath:   envOr("SESSION_DB_PATH", "data/twin-session.db"),
		RedisURL:        strings.TrimSpace(os.Getenv("REDIS_URL")),
		DatabaseDSN:     strings.TrimSpace(os.Getenv("DB_DSN")),
		SeedFile:        strings.TrimSpace(os.Getenv("SEED_FILE")),
		ProviderBaseURL: strings.TrimSpace(os.Getenv("PROVIDER_BASE_URL")),
		ProviderAPIKey:  os.Getenv("PROVIDER_API_KEY"),
		ProviderDelay:   durationOr("PROVIDER_DELAY", 1500*time.Millisecond),
		ShutdownTimeout: durationOr("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	cfg.SessionBackend = resolveBackend(os.Getenv("SESSION_BACKEND"), cfg)
	return cfg
}

func resolveBackend(raw string, cfg Server) SessionBackend {
	switch b := SessionBackend(strings.ToLower(strings.TrimSpace(raw))); b {
	case SessionMemory, SessionSQLite, SessionRedis, SessionPostgres:
		return b
	}
	switch {
	case cfg.RedisURL != "":
		return SessionRedis
	case cfg.DatabaseDSN != "":
		return SessionPostgres
	default:
		return SessionSQLite
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// durationOr acepta "1500ms", "2s"; un valor inválido usa el default.
func durationOr(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}
