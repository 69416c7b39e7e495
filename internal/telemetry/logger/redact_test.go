package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestElideOversizedValue_LargeSetPayload(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:  "info",
		Format: "json",
		Output: &buf,
	}

	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	value := strings.Repeat("x", 10_000)
	l.Info("command dispatched", "value", value)

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	got, ok := logEntry["value"].(string)
	if !ok {
		t.Fatal("Expected value field in log")
	}

	if got == value {
		t.Error("oversized value should be elided, got original value")
	}
	if !strings.Contains(got, "<elided>") {
		t.Errorf("elided value should contain elision marker, got: %s", got)
	}
	if !strings.Contains(got, "10000 bytes total") {
		t.Errorf("elided value should report original length, got: %s", got)
	}
}

func TestElideOversizedValue_SmallValuesPassThrough(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:  "info",
		Format: "json",
		Output: &buf,
	}

	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("command dispatched", "key", "mykey", "value", "myvalue")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if v, ok := logEntry["key"].(string); !ok || v != "mykey" {
		t.Errorf("small key should pass through unchanged, got: %v", logEntry["key"])
	}
	if v, ok := logEntry["value"].(string); !ok || v != "myvalue" {
		t.Errorf("small value should pass through unchanged, got: %v", logEntry["value"])
	}
}

func TestElideString(t *testing.T) {
	short := "hello"
	if got := ElideString(short); got != short {
		t.Errorf("ElideString(%q) = %q, want unchanged", short, got)
	}

	long := strings.Repeat("a", 500)
	got := ElideString(long)
	if got == long {
		t.Error("ElideString should elide a value over maxLoggedValueLen")
	}
	if !strings.Contains(got, "500 bytes total") {
		t.Errorf("ElideString should report original length, got: %s", got)
	}
	if len(got) >= len(long) {
		t.Errorf("elided string should be shorter than the input, got len %d", len(got))
	}
}

func TestIsOversizedValue(t *testing.T) {
	tests := []struct {
		value     string
		oversized bool
	}{
		{"", false},
		{"short key", false},
		{strings.Repeat("a", maxLoggedValueLen), false},
		{strings.Repeat("a", maxLoggedValueLen+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.value[:min(len(tt.value), 16)], func(t *testing.T) {
			if got := IsOversizedValue(tt.value); got != tt.oversized {
				t.Errorf("IsOversizedValue(len=%d) = %v, want %v", len(tt.value), got, tt.oversized)
			}
		})
	}
}
