package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	OCR    OCRConfig
	LLM    LLMConfig
	Raster RasterConfig
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// OCRConfig holds OCR engine settings.
type OCRConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	Language    string `mapstructure:"language"`
	Orientation bool   `mapstructure:"orientation"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// LLMConfig holds LLM completion settings.
type LLMConfig struct {
	APIKey      string `mapstructure:"api_key"`
	BaseURL     string `mapstructure:"base_url"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// RasterConfig holds PDF rasterization settings.
type RasterConfig struct {
	Pdftoppm string `mapstructure:"pdftoppm"`
	DPI      int    `mapstructure:"dpi"`
	MaxPages int    `mapstructure:"max_pages"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the INVOCR_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVOCR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// OCR defaults
	v.SetDefault("ocr.endpoint", "http://localhost:8866/predict/ocr_system")
	v.SetDefault("ocr.language", "en")
	v.SetDefault("ocr.orientation", true)
	v.SetDefault("ocr.timeout_secs", 60)

	// LLM defaults
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "gpt-4o")
	v.SetDefault("llm.timeout_secs", 120)

	// Raster defaults
	v.SetDefault("raster.pdftoppm", "pdftoppm")
	v.SetDefault("raster.dpi", 200)
	v.SetDefault("raster.max_pages", 0)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (the service is open by default, like the original deployment)
	v.SetDefault("cors.allowed_origins", "*")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "INVOCR_SERVER_PORT",
		"server.read_timeout":  "INVOCR_SERVER_READ_TIMEOUT",
		"server.write_timeout": "INVOCR_SERVER_WRITE_TIMEOUT",
		"server.environment":   "INVOCR_SERVER_ENVIRONMENT",
		"ocr.endpoint":         "INVOCR_OCR_ENDPOINT",
		"ocr.language":         "INVOCR_OCR_LANGUAGE",
		"ocr.orientation":      "INVOCR_OCR_ORIENTATION",
		"ocr.timeout_secs":     "INVOCR_OCR_TIMEOUT_SECS",
		"llm.api_key":          "INVOCR_LLM_API_KEY",
		"llm.base_url":         "INVOCR_LLM_BASE_URL",
		"llm.model":            "INVOCR_LLM_MODEL",
		"llm.timeout_secs":     "INVOCR_LLM_TIMEOUT_SECS",
		"raster.pdftoppm":      "INVOCR_RASTER_PDFTOPPM",
		"raster.dpi":           "INVOCR_RASTER_DPI",
		"raster.max_pages":     "INVOCR_RASTER_MAX_PAGES",
		"log.level":            "INVOCR_LOG_LEVEL",
		"log.format":           "INVOCR_LOG_FORMAT",
		"cors.allowed_origins": "INVOCR_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Comma-separated origins come through as a single string
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = strings.Split(cfg.CORS.AllowedOrigins[0], ",")
	}
	for i := range cfg.CORS.AllowedOrigins {
		cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(cfg.CORS.AllowedOrigins[i])
	}

	return &cfg, nil
}
