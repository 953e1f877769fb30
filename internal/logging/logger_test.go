package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	stdlog "log"
	"strings"
	"testing"
)

// decodeLine decodes the first JSON log line in the buffer.
func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.SplitN(buf.String(), "\n", 2)[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	return entry
}

// TestZerologAdapterFields tests structured field emission.
func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "derivation")

	logger.Info("derivation completed",
		String("policy", "filter"),
		Int("n", 2),
		Float64("seconds", 0.25))

	entry := decodeLine(t, &buf)
	if entry["component"] != "derivation" {
		t.Errorf("component = %v", entry["component"])
	}
	if entry["message"] != "derivation completed" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["policy"] != "filter" {
		t.Errorf("policy = %v", entry["policy"])
	}
	if entry["n"] != float64(2) {
		t.Errorf("n = %v", entry["n"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
}

// TestZerologAdapterError tests the error level with a cause.
func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "server")

	logger.Error("request failed", errors.New("boom"), String("path", "/api/v1/derive"))

	entry := decodeLine(t, &buf)
	if entry["level"] != "error" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v", entry["error"])
	}
}

// TestZerologAdapterPrintf tests the std-log compatibility methods.
func TestZerologAdapterPrintf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "server")

	logger.Printf("listening on %s", ":8080")
	entry := decodeLine(t, &buf)
	if entry["message"] != "listening on :8080" {
		t.Errorf("message = %v", entry["message"])
	}
}

// TestStdLoggerAdapter tests the standard-library backend.
func TestStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLoggerAdapter(stdlog.New(&buf, "", 0))

	logger.Info("started")
	logger.Debug("detail", String("k", "v"))
	logger.Error("failed", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"[INFO] started", "[DEBUG] detail", "[ERROR] failed: boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}
