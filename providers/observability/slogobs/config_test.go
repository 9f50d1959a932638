package slogobs

import (
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetLogLevelFromEnv(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("CALC_LOG_LEVEL", "")
		t.Setenv("LOG_LEVEL", "")
		if got := GetLogLevelFromEnv(); got != slog.LevelInfo {
			t.Errorf("Expected INFO, got %v", got)
		}
	})

	t.Run("generic fallback", func(t *testing.T) {
		t.Setenv("CALC_LOG_LEVEL", "")
		t.Setenv("LOG_LEVEL", "error")
		if got := GetLogLevelFromEnv(); got != slog.LevelError {
			t.Errorf("Expected ERROR, got %v", got)
		}
	})

	t.Run("prefixed wins", func(t *testing.T) {
		t.Setenv("CALC_LOG_LEVEL", "debug")
		t.Setenv("LOG_LEVEL", "error")
		if got := GetLogLevelFromEnv(); got != slog.LevelDebug {
			t.Errorf("Expected DEBUG, got %v", got)
		}
	})
}

func TestGetFormatFromEnv(t *testing.T) {
	t.Setenv("CALC_LOG_FORMAT", "")
	t.Setenv("LOG_FORMAT", "")
	if got := GetFormatFromEnv(); got != FormatCompact {
		t.Errorf("Expected compact default, got %s", got)
	}

	t.Setenv("LOG_FORMAT", "pretty")
	if got := GetFormatFromEnv(); got != FormatPretty {
		t.Errorf("Expected pretty, got %s", got)
	}

	t.Setenv("CALC_LOG_FORMAT", "json")
	if got := GetFormatFromEnv(); got != FormatJSON {
		t.Errorf("Expected json, got %s", got)
	}
}

func TestApplyOptions_OverrideEnv(t *testing.T) {
	t.Setenv("CALC_LOG_FORMAT", "pretty")
	t.Setenv("CALC_LOG_LEVEL", "error")

	cfg := applyOptions(WithFormat(FormatJSON), WithLevel(slog.LevelDebug), WithColors(true))

	if cfg.format != FormatJSON || cfg.level != slog.LevelDebug || !cfg.colors {
		t.Errorf("Expected options to override env, got %+v", cfg)
	}

	fromEnv := applyOptions()
	if fromEnv.format != FormatPretty || fromEnv.level != slog.LevelError {
		t.Errorf("Expected env configuration, got %+v", fromEnv)
	}
}
