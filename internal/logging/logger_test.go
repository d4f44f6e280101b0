package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(t *testing.T, format string) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelDebug)

	var handler slog.Handler
	switch format {
	case "json":
		handler = newJSONHandler(buf, levelVar)
	default:
		handler = newConsoleHandler(buf, levelVar)
	}
	return slog.New(handler), buf
}

func TestConsoleHandlerOutput(t *testing.T) {
	logger, buf := newBufferLogger(t, "console")
	logger = NewComponentLogger(logger, "organizer")

	logger.Info("moved file", String("source", "/a b/x.jpg"), Int("count", 3))

	line := buf.String()
	if !strings.Contains(line, "INFO organizer: moved file") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, `source="/a b/x.jpg"`) {
		t.Fatalf("quoted value missing: %q", line)
	}
	if !strings.Contains(line, "count=3") {
		t.Fatalf("int attr missing: %q", line)
	}
}

func TestJSONHandlerOutput(t *testing.T) {
	logger, buf := newBufferLogger(t, "json")
	logger.Warn("collision", String("destination", "/archive/a.jpg"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal: %v (line %q)", err, buf.String())
	}
	if record["msg"] != "collision" {
		t.Fatalf("msg = %v", record["msg"])
	}
	if record["level"] != "warn" {
		t.Fatalf("level = %v", record["level"])
	}
	if record["destination"] != "/archive/a.jpg" {
		t.Fatalf("destination = %v", record["destination"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestRunIDContext(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-123")
	id, ok := RunIDFromContext(ctx)
	if !ok || id != "run-123" {
		t.Fatalf("RunIDFromContext = %q, %v", id, ok)
	}

	logger, buf := newBufferLogger(t, "console")
	WithContext(ctx, logger).Info("hello")
	if !strings.Contains(buf.String(), "run_id=run-123") {
		t.Fatalf("run id missing: %q", buf.String())
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel("nonsense"); got != slog.LevelInfo {
		t.Fatalf("parseLevel = %v", got)
	}
	if got := parseLevel("debug"); got != slog.LevelDebug {
		t.Fatalf("parseLevel = %v", got)
	}
}
