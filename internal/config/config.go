package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultAddr          = ":8080"
	DefaultBaseURL       = "http://localhost:8080"
	DefaultLocale        = "en-US"
	DefaultSessionSecret = "dev-only-session-secret-change-me"
)

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetLocale() language.Tag
	GetSessionSecret() string
	GetCatalogDir() string
	GetCatalogHotReload() bool
}

// Config holds all configuration for the application.
type Config struct {
	Addr             string
	AppBaseURL       string
	Locale           language.Tag
	SessionSecret    string
	CatalogDir       string
	CatalogHotReload bool
}

var _ Provider = (*Config)(nil)

// New loads configuration from a .env file, if present, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) *Config {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Addr:          get("APP_ADDR", DefaultAddr),
		AppBaseURL:    get("APP_BASE_URL", DefaultBaseURL),
		SessionSecret: get("SESSION_SECRET", DefaultSessionSecret),
		CatalogDir:    getenv("CATALOG_DIR"),
	}

	locale := get("APP_LOCALE", DefaultLocale)
	tag, err := language.Parse(locale)
	if err != nil {
		slog.Warn("Invalid APP_LOCALE, falling back to default", "value", locale, "default", DefaultLocale, "error", err)
		tag = language.MustParse(DefaultLocale)
	}
	cfg.Locale = tag

	if v := getenv("CATALOG_HOT_RELOAD"); v != "" {
		reload, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("Invalid CATALOG_HOT_RELOAD, hot reload disabled", "value", v)
		}
		cfg.CatalogHotReload = reload
	}

	if cfg.SessionSecret == DefaultSessionSecret {
		slog.Warn("SESSION_SECRET is not set, using an insecure development secret")
	}
	if cfg.CatalogHotReload && cfg.CatalogDir == "" {
		slog.Warn("CATALOG_HOT_RELOAD requires CATALOG_DIR; the embedded catalog cannot be watched")
		cfg.CatalogHotReload = false
	}

	return cfg
}

func (c *Config) GetAddr() string { return c.Addr }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetLocale() language.Tag { return c.Locale }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetCatalogDir() string { return c.CatalogDir }
func (c *Config) GetCatalogHotReload() bool { return c.CatalogHotReload }
