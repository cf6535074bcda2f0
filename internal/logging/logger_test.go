package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info("wrote report", "dst", "best_times.pdf", "rows", 12)

	out := buf.String()
	if !strings.Contains(out, "INFO wrote report") {
		t.Fatalf("unexpected line: %s", out)
	}
	if !strings.Contains(out, "dst=best_times.pdf") || !strings.Contains(out, "rows=12") {
		t.Fatalf("attrs missing: %s", out)
	}
}

func TestNewConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn should pass: %s", out)
	}
}

func TestNewConsoleWith(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.With("run_id", "abc").Info("start")
	if !strings.Contains(buf.String(), "run_id=abc") {
		t.Fatalf("bound attr missing: %s", buf.String())
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info("wrote report", "dst", "best_times.pdf")

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if decoded["msg"] != "wrote report" || decoded["level"] != "info" {
		t.Fatalf("unexpected keys: %v", decoded)
	}
	if _, ok := decoded["ts"]; !ok {
		t.Fatal("ts key missing")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
