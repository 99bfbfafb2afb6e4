package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.trai.ch/pin/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, slog.LevelDebug)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error(errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestLogger_InfoLevelSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be suppressed at info level, got:\n%s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("expected info message in output, got:\n%s", out)
	}
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	log := logger.NewWithWriter(&first, slog.LevelInfo)

	log.Info("to first")
	log.SetOutput(&second)
	log.Info("to second")

	if !strings.Contains(first.String(), "to first") {
		t.Error("expected first buffer to receive the first message")
	}
	if !strings.Contains(second.String(), "to second") {
		t.Error("expected second buffer to receive the second message")
	}
	if strings.Contains(second.String(), "to first") {
		t.Error("second buffer must not contain messages logged before SetOutput")
	}
}
