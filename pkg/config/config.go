package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database  DatabaseConfig
	Redis     RedisConfig
	Session   SessionConfig
	CORS      CORSConfig
	Log       LogConfig
	WordPress WordPressConfig
	Analyzer  AnalyzerConfig
	Drafts    DraftsConfig
	Widget    WidgetConfig
	Exports   ExportsConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SessionConfig controls the shared editor password gate.
type SessionConfig struct {
	Secret             string
	CookieName         string
	TTL                time.Duration
	EditorPasswordHash string
	CookieSecure       bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// WordPressConfig points the article fetcher at the newsroom CMS.
type WordPressConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// AnalyzerConfig describes the external article-analysis service the tool proxies.
type AnalyzerConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DraftsConfig governs server-side builder autosave.
type DraftsConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// WidgetConfig tunes widget generation defaults.
type WidgetConfig struct {
	InteractiveDefault bool
}

// ExportsConfig controls reader-response export jobs.
type ExportsConfig struct {
	Enabled           bool
	StorageDir        string
	SignedURLSecret   string
	SignedURLTTL      time.Duration
	CleanupInterval   time.Duration
	WorkerConcurrency int
	WorkerRetries     int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Session = SessionConfig{
		Secret:             v.GetString("SESSION_SECRET"),
		CookieName:         v.GetString("SESSION_COOKIE_NAME"),
		TTL:                parseDuration(v.GetString("SESSION_TTL"), 12*time.Hour),
		EditorPasswordHash: v.GetString("EDITOR_PASSWORD_HASH"),
		CookieSecure:       v.GetString("ENV") == EnvProduction,
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.WordPress = WordPressConfig{
		BaseURL:  v.GetString("WORDPRESS_BASE_URL"),
		Timeout:  parseDuration(v.GetString("WORDPRESS_TIMEOUT"), 10*time.Second),
		CacheTTL: parseDuration(v.GetString("ARTICLE_CACHE_TTL"), 15*time.Minute),
	}

	cfg.Analyzer = AnalyzerConfig{
		Enabled: v.GetBool("ENABLE_ANALYZER_PROXY"),
		BaseURL: v.GetString("ANALYZER_BASE_URL"),
		APIKey:  v.GetString("ANALYZER_API_KEY"),
		Timeout: parseDuration(v.GetString("ANALYZER_TIMEOUT"), 60*time.Second),
	}

	cfg.Drafts = DraftsConfig{
		TTL:           parseDuration(v.GetString("DRAFT_TTL"), 7*24*time.Hour),
		SweepInterval: parseDuration(v.GetString("DRAFT_SWEEP_INTERVAL"), time.Hour),
	}

	cfg.Widget = WidgetConfig{
		InteractiveDefault: v.GetBool("WIDGET_INTERACTIVE_DEFAULT"),
	}

	cfg.Exports = ExportsConfig{
		Enabled:           v.GetBool("ENABLE_EXPORTS"),
		StorageDir:        v.GetString("EXPORTS_STORAGE_DIR"),
		SignedURLSecret:   v.GetString("EXPORTS_SIGNED_URL_SECRET"),
		SignedURLTTL:      parseDuration(v.GetString("EXPORTS_SIGNED_URL_TTL"), 24*time.Hour),
		CleanupInterval:   parseDuration(v.GetString("EXPORTS_CLEANUP_INTERVAL"), time.Hour),
		WorkerConcurrency: v.GetInt("EXPORTS_WORKER_CONCURRENCY"),
		WorkerRetries:     v.GetInt("EXPORTS_WORKER_RETRIES"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "civic_action")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SESSION_SECRET", "dev_secret")
	v.SetDefault("SESSION_COOKIE_NAME", "civic_session")
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("EDITOR_PASSWORD_HASH", "")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("WORDPRESS_BASE_URL", "https://planetdetroit.org")
	v.SetDefault("WORDPRESS_TIMEOUT", "10s")
	v.SetDefault("ARTICLE_CACHE_TTL", "15m")

	v.SetDefault("ENABLE_ANALYZER_PROXY", false)
	v.SetDefault("ANALYZER_BASE_URL", "http://localhost:8000")
	v.SetDefault("ANALYZER_API_KEY", "")
	v.SetDefault("ANALYZER_TIMEOUT", "60s")

	v.SetDefault("DRAFT_TTL", "168h")
	v.SetDefault("DRAFT_SWEEP_INTERVAL", "1h")

	v.SetDefault("WIDGET_INTERACTIVE_DEFAULT", true)

	v.SetDefault("ENABLE_EXPORTS", false)
	v.SetDefault("EXPORTS_STORAGE_DIR", "./exports")
	v.SetDefault("EXPORTS_SIGNED_URL_SECRET", "dev_exports_secret")
	v.SetDefault("EXPORTS_SIGNED_URL_TTL", "24h")
	v.SetDefault("EXPORTS_CLEANUP_INTERVAL", "1h")
	v.SetDefault("EXPORTS_WORKER_CONCURRENCY", 1)
	v.SetDefault("EXPORTS_WORKER_RETRIES", 3)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
