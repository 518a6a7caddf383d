package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVsRedactsFreeText(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.Info("insight created", "insight_id", "abc", "summary", "slept badly all week", "note", "private")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["insight_id"] != "abc" {
		t.Errorf("Expected insight_id to pass through, got %v", fields["insight_id"])
	}
	if fields["summary"] != "[REDACTED]" {
		t.Errorf("Expected summary to be redacted, got %v", fields["summary"])
	}
	if fields["note"] != "[REDACTED]" {
		t.Errorf("Expected note to be redacted, got %v", fields["note"])
	}
}

func TestSanitizeKVsOddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	if len(out) != 3 {
		t.Fatalf("Expected 3 values, got %d", len(out))
	}
	if out[2] != "dangling" {
		t.Errorf("Expected trailing value to be kept, got %v", out[2])
	}
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", ""} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", mode, err)
		}
		l.With("component", "test").Debug("hello")
	}
	Nop().Info("discarded", "k", "v")
}
