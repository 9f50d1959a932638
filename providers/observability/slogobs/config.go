package slogobs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// LevelTrace sits below slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 4

// envConfig mirrors the logging environment variables. The CALC_ prefixed
// names take precedence over the generic ones.
type envConfig struct {
	Level          string `env:"CALC_LOG_LEVEL"`
	FallbackLevel  string `env:"LOG_LEVEL"`
	Format         string `env:"CALC_LOG_FORMAT"`
	FallbackFormat string `env:"LOG_FORMAT"`
}

func readEnv() envConfig {
	cfg, err := env.ParseAs[envConfig]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: reading log configuration: %v\n", err)
		return envConfig{}
	}
	return cfg
}

func (c envConfig) level() slog.Level {
	value := firstNonEmpty(c.Level, c.FallbackLevel)
	if value == "" {
		return slog.LevelInfo
	}
	return ParseLogLevel(value)
}

func (c envConfig) format() Format {
	return ParseFormat(firstNonEmpty(c.Format, c.FallbackFormat))
}

// GetLogLevelFromEnv returns the level named by CALC_LOG_LEVEL, then
// LOG_LEVEL, defaulting to INFO.
func GetLogLevelFromEnv() slog.Level {
	return readEnv().level()
}

// GetFormatFromEnv returns the format named by CALC_LOG_FORMAT, then
// LOG_FORMAT, defaulting to FormatCompact.
func GetFormatFromEnv() Format {
	return readEnv().format()
}

// ParseLogLevel parses TRACE, DEBUG, INFO, WARN, WARNING or ERROR
// (case-insensitive). Unknown values yield INFO and a warning on stderr.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "Warning: Unknown log level '%s', using INFO\n", level)
		return slog.LevelInfo
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
