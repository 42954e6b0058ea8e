// ABOUTME: Tests for the logging package
// ABOUTME: Validates level filtering, level parsing, and output redirection

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// capture redirects output for the duration of the test.
func capture(t *testing.T, l Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	savedLevel := GetLevel()
	SetLevel(l)
	t.Cleanup(func() {
		SetOutput(prev)
		SetLevel(savedLevel)
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, LevelWarn)

	Debug("debug %d", 1)
	Info("info %d", 2)
	Warn("warn %d", 3)
	Error("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("messages below level emitted: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") || !strings.Contains(out, "[ERROR] error 4") {
		t.Errorf("messages at or above level missing: %q", out)
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	buf := capture(t, LevelDebug)

	Debug("key %s", "ctrl+q")
	if !strings.Contains(buf.String(), "[DEBUG] key ctrl+q") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestSetOutput_NilDiscards(t *testing.T) {
	capture(t, LevelDebug)

	prev := SetOutput(nil)
	defer SetOutput(prev)
	Error("dropped")
}

func TestOpenFile(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)
	SetLevel(LevelInfo)

	path := filepath.Join(t.TempDir(), "kilo.log")
	restore, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() unexpected error: %v", err)
	}
	Info("session started")
	restore()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "[INFO] session started") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenFile_BadPath(t *testing.T) {
	t.Parallel()

	if _, err := OpenFile(filepath.Join(t.TempDir(), "missing", "kilo.log")); err == nil {
		t.Error("OpenFile() in missing directory should fail")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: " warn ", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLevel(%q) should fail", tt.in)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseLevel(%q) = (%v, %v), want %v", tt.in, got, err, tt.want)
			}
		})
	}
}
