package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.New(NewHandler(&buf, "text", slog.LevelInfo)))

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "saved", "path", "leetcode/1_two-sum/1-two-sum-999.py")
	logger.Error(context.Background(), "boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
	if !strings.Contains(out, "msg=saved") || !strings.Contains(out, "path=leetcode/1_two-sum/1-two-sum-999.py") {
		t.Fatalf("missing info line: %q", out)
	}
	if !strings.Contains(out, "level=ERROR") {
		t.Fatalf("missing error line: %q", out)
	}
}

func TestNewHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.New(NewHandler(&buf, "JSON", slog.LevelInfo)))
	logger.Info(context.Background(), "hello")

	if !strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("expected JSON output, got %q", buf.String())
	}
}

func TestNilLoggerIsNoop(t *testing.T) {
	logger := New(nil)
	logger.Info(context.Background(), "ignored")
	logger.Error(context.Background(), "ignored")
	logger.Debug(context.Background(), "ignored")
}
