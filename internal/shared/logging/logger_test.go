package logging

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		raw string
		exp slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DBG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range testCases {
		if got := ParseLevel(tc.raw); got != tc.exp {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.raw, got, tc.exp)
		}
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Config{Level: "debug", Format: "json"})
	logger.Debug("hello", slog.String("k", "v"))

	if out := buf.String(); !strings.Contains(out, `"msg":"hello"`) {
		t.Fatalf("expected JSON record, got %q", out)
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Config{Level: "warn"})
	logger.Info("quiet")

	if buf.Len() != 0 {
		t.Fatalf("info record should be filtered, got %q", buf.String())
	}
}

func TestDailyFileCreatesDatedFile(t *testing.T) {
	dir := t.TempDir()
	file, writer, err := DailyFile(dir)
	if err != nil {
		t.Fatalf("DailyFile: %v", err)
	}
	defer file.Close()

	want := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	if file.Name() != want {
		t.Fatalf("file = %q, want %q", file.Name(), want)
	}
	if writer == nil {
		t.Fatal("expected a writer")
	}
}
