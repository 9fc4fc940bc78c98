package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{Level: "debug", Output: &buf})

	logger.Info().Str("path", "/ticket/1").Msg("test message")

	out := buf.String()
	if !strings.Contains(out, `"path":"/ticket/1"`) {
		t.Errorf("output missing structured field: %s", out)
	}
	if !strings.Contains(out, `"test message"`) {
		t.Errorf("output missing message: %s", out)
	}
}

func TestNewLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	Setup(Config{Level: "debug", Output: &buf})

	logger := NewLogger("rt-client")
	logger.Info().Msg("hello")

	if !strings.Contains(buf.String(), `"component":"rt-client"`) {
		t.Errorf("output missing component field: %s", buf.String())
	}
}
