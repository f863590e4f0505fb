package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestRedactsSensitiveKeys(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, zapcore.InfoLevel)
	log.Info("request", "path", "/api/v1/payroll/report", "authorization", "Bearer abc.def.ghi")

	out := buf.String()
	if strings.Contains(out, "abc.def.ghi") {
		t.Fatalf("expected token to be redacted, got %s", out)
	}
	if !strings.Contains(out, "/api/v1/payroll/report") {
		t.Fatalf("expected path in output, got %s", out)
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, zapcore.WarnLevel)
	log.Info("quiet")
	log.With("component", "test").Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud") || !strings.Contains(out, "component") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("development", "chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
