package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger{sugar: zap.New(core).Sugar()}, logs
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"text", FormatText},
		{"unknown", FormatText},
		{"", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoggerInfoCarriesFields(t *testing.T) {
	l, logs := observed()
	l.Info("test message", "key1", "value1", "key2", 42)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Message != "test message" {
		t.Errorf("expected message %q, got %q", "test message", entry.Message)
	}
	fields := entry.ContextMap()
	if fields["key1"] != "value1" {
		t.Errorf("expected key1=value1, got %v", fields["key1"])
	}
}

func TestLoggerWithRequestID(t *testing.T) {
	l, logs := observed()
	reqLogger := l.WithRequestID("req-123")
	reqLogger.Info("test message")

	fields := logs.All()[0].ContextMap()
	if fields["request_id"] != "req-123" {
		t.Errorf("expected request_id=req-123, got %v", fields["request_id"])
	}
}

func TestLoggerWithFields(t *testing.T) {
	l, logs := observed()
	fieldLogger := l.WithFields("client", "192.168.1.100", "tls", true)
	fieldLogger.Info("test message")

	fields := logs.All()[0].ContextMap()
	if fields["client"] != "192.168.1.100" {
		t.Errorf("expected client=192.168.1.100, got %v", fields["client"])
	}
	if fields["tls"] != true {
		t.Errorf("expected tls=true, got %v", fields["tls"])
	}
}

func TestLoggerWithFieldsIsolatesParent(t *testing.T) {
	l, logs := observed()
	child := l.WithFields("child_field", "value")

	l.Info("parent message")
	child.Info("child message")

	all := logs.All()
	if _, ok := all[0].ContextMap()["child_field"]; ok {
		t.Error("parent logger should not have child's fields")
	}
	if all[1].ContextMap()["child_field"] != "value" {
		t.Error("child logger should have its own fields")
	}
}

func TestNewLogger(t *testing.T) {
	l := New(Config{Level: "debug", Format: "json", Output: "stdout"})
	if l == nil {
		t.Fatal("New returned nil")
	}
}

func TestNewDefault(t *testing.T) {
	if NewDefault() == nil {
		t.Fatal("NewDefault returned nil")
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	l.Debug("test")
	l.Info("test")
	l.Warn("test")
	l.Error("test")

	if l.WithRequestID("req-123") == nil {
		t.Error("WithRequestID returned nil")
	}
	if l.WithFields("key", "value") == nil {
		t.Error("WithFields returned nil")
	}
}

func TestLoggerAllLevels(t *testing.T) {
	l, logs := observed()

	tests := []struct {
		logFunc func(string, ...interface{})
		level   zapcore.Level
	}{
		{l.Debug, zapcore.DebugLevel},
		{l.Info, zapcore.InfoLevel},
		{l.Warn, zapcore.WarnLevel},
		{l.Error, zapcore.ErrorLevel},
	}

	for i, tt := range tests {
		tt.logFunc("test message")
		if got := logs.All()[i].Level; got != tt.level {
			t.Errorf("expected level %v, got %v", tt.level, got)
		}
	}
}
