package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantErr   bool
	}{
		{"", false, false},
		{"debug", true, false},
		{"info", false, false},
		{"error", false, false},
		{"chatty", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, "test", tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}

			logger.Debug("debug line")
			got := strings.Contains(buf.String(), "debug line")
			if got != tt.wantDebug {
				t.Errorf("debug logged = %v, expected %v", got, tt.wantDebug)
			}
		})
	}
}

func TestNewPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "platformer", "info")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("imported level", "id", "lvl01")
	out := buf.String()
	for _, want := range []string{"platformer", "imported level", "id=lvl01"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "play.log")

	logger, closer, err := OpenFile(path, "play", "info")
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	logger.Info("level finished", "outcome", "won")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "level finished") {
		t.Errorf("log file = %q, expected entry", data)
	}
}
