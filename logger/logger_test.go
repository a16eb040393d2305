package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	l := New(&Config{Level: "info", Format: "console", Output: "stdout"}, "test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	l := New(&Config{Level: "invalid-level", Format: "json"}, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	if l := NewFromEnv("env-svc"); l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewWithWriter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "debug", Format: "json"}, "svc", &buf)
	l.WithComponent("endpoint").Debug("url built", Fields(FieldURL, "https://api.example.com"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry[FieldComponent] != "endpoint" {
		t.Errorf("expected component=endpoint, got %v", entry[FieldComponent])
	}
	if entry[FieldURL] != "https://api.example.com" {
		t.Errorf("expected url field, got %v", entry[FieldURL])
	}
	if entry["message"] != "url built" {
		t.Errorf("expected message, got %v", entry["message"])
	}
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "warn", Format: "json"}, "svc", &buf)
	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected nothing below warn, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn line, got %q", buf.String())
	}
}

func TestConsoleWriterNoColor(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "endpointctl", &buf)
	l.Error("boom")
	if !strings.Contains(buf.String(), "[END][ERR]") {
		t.Errorf("expected service tag and level, got %q", buf.String())
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Error("discarded")
	if l.WithComponent("x") == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "json"}, "svc", &buf)
	l.WithFields(map[string]interface{}{"k": "v"}).WithError(os.ErrNotExist).Info("x")
	if !strings.Contains(buf.String(), `"k":"v"`) || !strings.Contains(buf.String(), `"error"`) {
		t.Errorf("expected fields in output, got %q", buf.String())
	}
}

func TestGlobalLogger(t *testing.T) {
	t.Cleanup(func() { SetGlobalLogger(nil) })
	SetGlobalLogger(nil)
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}

	l := NewNop()
	SetGlobalLogger(l)
	if GetGlobalLogger() != l {
		t.Error("expected SetGlobalLogger to set the global logger")
	}
	// These should not panic
	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	Error("error msg")
	if WithComponent("c") == nil {
		t.Error("expected component logger")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output 'stderr', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json"}, false},
		{"valid console", Config{Level: "debug", Format: "console"}, false},
		{"invalid level", Config{Level: "bad", Format: "json"}, true},
		{"invalid format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFieldsHelpers(t *testing.T) {
	m := Fields("a", 1, "b")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("expected odd trailing key to be dropped, got %v", m)
	}
	ef := ErrorFields("url", os.ErrInvalid)
	if ef[FieldOperation] != "url" || ef[FieldError] != os.ErrInvalid.Error() {
		t.Errorf("unexpected error fields %v", ef)
	}
	merged := MergeWithError(nil, os.ErrInvalid)
	if merged[FieldError] != os.ErrInvalid.Error() {
		t.Errorf("unexpected merged fields %v", merged)
	}
}

func TestGlobalLoggerConcurrentInit(t *testing.T) {
	SetGlobalLogger(nil)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	const workers = 16
	got := make([]*Logger, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = WithComponent("endpoint")
			got[i] = GetGlobalLogger()
		}(i)
	}
	wg.Wait()

	for i, l := range got {
		if l == nil || l != got[0] {
			t.Fatalf("worker %d saw a different global logger", i)
		}
	}
}
