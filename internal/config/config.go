package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Inputs and output
	NotesDir     string
	OutputPath   string
	RoutingTable string // YAML file; empty means the built-in table

	// PDF
	PDFFallbackPdftotext bool

	// HTTP surface
	Port            string
	APIKey          string // guards mutating routes when set
	MaxUploadBytes  int64
	ShutdownTimeout time.Duration

	// Logging
	LogFormat string // json or text
	LogLevel  string
}

func Load() Config {
	cfg := Config{
		NotesDir:     envOr("NOTES_DIR", "notes"),
		OutputPath:   envOr("OUTPUT_PATH", "client/public/materials-data.json"),
		RoutingTable: os.Getenv("ROUTING_TABLE"),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		Port:            envOr("PORT", "8090"),
		APIKey:          os.Getenv("API_KEY"),
		MaxUploadBytes:  envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		LogFormat: strings.ToLower(envOr("LOG_FORMAT", "json")),
		LogLevel:  strings.ToLower(envOr("LOG_LEVEL", "info")),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.NotesDir == "" {
		return fmt.Errorf("NOTES_DIR is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH is required")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// NewLogger builds the process logger. Invalid settings fall back to JSON at
// info level; Validate reports them.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return l, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
