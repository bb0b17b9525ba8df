package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNewExtendsLongerAxis(t *testing.T) {
	tests := []struct {
		name         string
		w, h         float32
		wantW, wantH float32
		wantScale    float32
	}{
		{"landscape", 960, 640, 720, 480, 640.0 / 480},
		{"portrait", 480, 960, 480, 960, 1},
		{"square", 240, 240, 480, 480, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := New(tt.w, tt.h, 480)
			if !near(cam.WorldW, tt.wantW) || !near(cam.WorldH, tt.wantH) {
				t.Errorf("world = %vx%v, want %vx%v", cam.WorldW, cam.WorldH, tt.wantW, tt.wantH)
			}
			if !near(cam.Scale, tt.wantScale) {
				t.Errorf("scale = %v, want %v", cam.Scale, tt.wantScale)
			}
			if cam.Arena().MinSide() != 480 {
				t.Errorf("arena min side = %v, want 480", cam.Arena().MinSide())
			}
		})
	}
}

func TestWorldToScreenFlipsY(t *testing.T) {
	cam := New(960, 640, 480)

	sx, sy := cam.WorldToScreen(0, 0)
	if !near(sx, 0) || !near(sy, 640) {
		t.Errorf("origin -> (%v, %v), want bottom-left (0, 640)", sx, sy)
	}

	sx, sy = cam.WorldToScreen(cam.WorldW, cam.WorldH)
	if !near(sx, 960) || !near(sy, 0) {
		t.Errorf("far corner -> (%v, %v), want top-right (960, 0)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 480)

	testCases := []struct{ sx, sy float32 }{
		{640, 360}, // center
		{100, 100}, // top-left
		{1200, 600},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestResize(t *testing.T) {
	cam := New(960, 640, 480)

	if cam.Resize(960, 640) {
		t.Error("Resize to same size reported a change")
	}
	if cam.Resize(0, 100) {
		t.Error("Resize to zero width reported a change")
	}
	if !cam.Resize(640, 960) {
		t.Fatal("Resize to portrait reported no change")
	}
	if !near(cam.WorldW, 480) || !near(cam.WorldH, 720) {
		t.Errorf("world after resize = %vx%v, want 480x720", cam.WorldW, cam.WorldH)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(960, 640, 480)

	if !cam.IsVisible(100, 100, 5) {
		t.Error("interior point should be visible")
	}
	if !cam.IsVisible(-3, 100, 5) {
		t.Error("circle overlapping left edge should be visible")
	}
	if cam.IsVisible(-10, 100, 5) {
		t.Error("circle fully left of the world should be culled")
	}
}
