package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlaySetupErrors(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	badPrefs := filepath.Join(dir, "prefs.yaml")
	if err := os.WriteFile(badPrefs, []byte("highscore: [oops"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		opts    options
		wantErr string
	}{
		{
			name:    "missing config",
			opts:    options{configPath: filepath.Join(dir, "nope.yaml")},
			wantErr: "failed to load config",
		},
		{
			name:    "unopenable log",
			opts:    options{logPath: filepath.Join(dir, "missing", "log.json")},
			wantErr: "failed to open log",
		},
		{
			name:    "corrupt preferences",
			opts:    options{prefsPath: badPrefs, logPath: filepath.Join(dir, "log.json")},
			wantErr: "failed to load preferences",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := play(tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("play() error = %v, want %q", err, tt.wantErr)
			}
		})
	}

	logPath := filepath.Join(dir, "log.json")
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file not created: %v", err)
	}
	if err := os.Remove(logPath); err != nil {
		t.Errorf("removing log after failed setup: %v", err)
	}
}
