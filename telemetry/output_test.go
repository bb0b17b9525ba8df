package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/tiltsnake/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}

	// All methods are nil-safe
	if err := om.WriteLife(LifeRecord{}); err != nil {
		t.Errorf("WriteLife on nil: %v", err)
	}
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Errorf("WriteWindow on nil: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WriteLife(LifeRecord{Life: i, Score: i * 2, Cause: "hazard"}); err != nil {
			t.Fatalf("WriteLife: %v", err)
		}
	}
	if err := om.WriteWindow(WindowStats{WindowEnd: 60, ApplesEaten: 4}); err != nil {
		t.Fatalf("WriteWindow: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "lives.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("lives.csv has %d lines, want header + 3:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "life,end_time,score") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Count(string(data), "life,end_time") != 1 {
		t.Error("header written more than once")
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}

	windows, err := os.ReadFile(filepath.Join(dir, "windows.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(windows), "window_end,apples") {
		t.Errorf("windows.csv header missing: %s", windows)
	}
}
