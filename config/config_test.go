package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/tiltsnake/systems"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.World.Size != 480 {
		t.Errorf("world.size = %v, want 480", cfg.World.Size)
	}
	if cfg.Derived.HazardPolicy != systems.HazardReset {
		t.Errorf("hazard policy = %v, want reset", cfg.Derived.HazardPolicy)
	}
	if cfg.Derived.FrameDelta != 1.0/60 {
		t.Errorf("frame delta = %v, want 1/60", cfg.Derived.FrameDelta)
	}

	// Embedded defaults must match the core's shipped tuning
	got := cfg.Controller()
	want := systems.DefaultControllerConfig()
	if got != want {
		t.Errorf("Controller() = %+v\nwant %+v", got, want)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := []byte("rules:\n  hazard_policy: duplicate_head\ntrail:\n  sample_time: 0.5\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Derived.HazardPolicy != systems.HazardDuplicateHead {
		t.Errorf("hazard policy = %v, want duplicate_head", cfg.Derived.HazardPolicy)
	}
	if cfg.Trail.SampleTime != 0.5 {
		t.Errorf("sample_time = %v, want 0.5", cfg.Trail.SampleTime)
	}
	// Untouched fields keep their defaults
	if cfg.Trail.SampleDist != 10 || !cfg.Rules.ShrinkOnEat {
		t.Errorf("defaults lost: sample_dist=%v shrink_on_eat=%v", cfg.Trail.SampleDist, cfg.Rules.ShrinkOnEat)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"unknown hazard policy", "rules:\n  hazard_policy: explode\n"},
		{"zero world", "world:\n  size: 0\n"},
		{"bad yaml", "trail: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Snake.MaxSpeed = 1234

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot: %v", err)
	}
	if back.Snake.MaxSpeed != 1234 {
		t.Errorf("max_speed = %v, want 1234", back.Snake.MaxSpeed)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("Cfg() before Init() should panic")
		}
	}()
	Cfg()
}
