package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func TestDefault_Builds(t *testing.T) {
	cfg := Default()

	positions, err := cfg.Sheet.BuildPositions()
	if err != nil {
		t.Fatalf("BuildPositions: %v", err)
	}
	if len(positions) != 3 {
		t.Fatalf("default position count = %d, want 3", len(positions))
	}

	// Closed, half, and almost-full fractions of the space below the handle.
	heights := []float64{0, 50, 90}
	for i, want := range heights {
		if got := positions[i].ResolveToPixels(100); got != want {
			t.Errorf("position %d resolves to %v at height 100, want %v", i, got, want)
		}
	}

	initial, err := cfg.Sheet.InitialPosition(positions)
	if err != nil {
		t.Fatalf("InitialPosition: %v", err)
	}
	if initial != positions[0] {
		t.Error("default initial should be the first position")
	}
	if cfg.Sheet.HandleHeight != 3 {
		t.Errorf("default handle height = %d, want 3", cfg.Sheet.HandleHeight)
	}
}

func TestBuildPositions_Validation(t *testing.T) {
	tests := []struct {
		name      string
		positions []PositionConfig
	}{
		{
			name:      "empty list",
			positions: nil,
		},
		{
			name:      "both fraction and absolute",
			positions: []PositionConfig{{Fraction: floatPtr(0.5), Absolute: floatPtr(10)}},
		},
		{
			name:      "neither fraction nor absolute",
			positions: []PositionConfig{{DurationMs: 100}},
		},
		{
			name:      "fraction above one",
			positions: []PositionConfig{{Fraction: floatPtr(1.5)}},
		},
		{
			name:      "negative fraction",
			positions: []PositionConfig{{Fraction: floatPtr(-0.1)}},
		},
		{
			name:      "unknown curve",
			positions: []PositionConfig{{Fraction: floatPtr(0.5), Curve: "bounce"}},
		},
		{
			name:      "negative duration",
			positions: []PositionConfig{{Fraction: floatPtr(0.5), DurationMs: -10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := SheetConfig{Positions: tt.positions}
			if _, err := c.BuildPositions(); err == nil {
				t.Error("BuildPositions should fail")
			}
		})
	}
}

func TestBuildPositions_Defaults(t *testing.T) {
	c := SheetConfig{Positions: []PositionConfig{{Absolute: floatPtr(25)}}}

	positions, err := c.BuildPositions()
	if err != nil {
		t.Fatalf("BuildPositions: %v", err)
	}
	p := positions[0]
	if p.Duration() != 250*time.Millisecond {
		t.Errorf("duration = %v, want the 250ms default", p.Duration())
	}
	if p.ResolveToPixels(0) != 25 {
		t.Errorf("absolute resolves to %v, want 25", p.ResolveToPixels(0))
	}
}

func TestInitialPosition_OutOfRange(t *testing.T) {
	c := SheetConfig{Initial: 5, Positions: []PositionConfig{{Fraction: floatPtr(0.5)}}}
	positions, err := c.BuildPositions()
	if err != nil {
		t.Fatalf("BuildPositions: %v", err)
	}
	if _, err := c.InitialPosition(positions); err == nil {
		t.Error("out-of-range initial index should fail")
	}
}

func TestLoadFrom_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[sheet]
handle_height = 5
initial = 1

[sheet.margin]
top = 2
left = 1

[[sheet.positions]]
absolute = 0.0
duration_ms = 100

[[sheet.positions]]
fraction = 0.7
curve = "ease-in-out"
duration_ms = 400
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := loadFrom([]string{path})
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}

	if cfg.Sheet.HandleHeight != 5 {
		t.Errorf("handle height = %d, want 5", cfg.Sheet.HandleHeight)
	}
	if cfg.Sheet.Margin.Top != 2 || cfg.Sheet.Margin.Left != 1 {
		t.Errorf("margin = %+v, want top 2 left 1", cfg.Sheet.Margin)
	}

	positions, err := cfg.Sheet.BuildPositions()
	if err != nil {
		t.Fatalf("BuildPositions: %v", err)
	}
	if len(positions) != 2 {
		t.Fatalf("position count = %d, want 2 (file replaces defaults)", len(positions))
	}
	if positions[1].ResolveToPixels(100) != 70 {
		t.Errorf("position 1 resolves to %v at height 100, want 70", positions[1].ResolveToPixels(100))
	}
	if positions[1].Duration() != 400*time.Millisecond {
		t.Errorf("position 1 duration = %v, want 400ms", positions[1].Duration())
	}

	initial, err := cfg.Sheet.InitialPosition(positions)
	if err != nil {
		t.Fatalf("InitialPosition: %v", err)
	}
	if initial != positions[1] {
		t.Error("initial should be the second position")
	}
}

func TestLoadFrom_MissingFilesFallBackToDefaults(t *testing.T) {
	cfg, err := loadFrom([]string{filepath.Join(t.TempDir(), "nope.toml")})
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if len(cfg.Sheet.Positions) != 3 {
		t.Errorf("position count = %d, want the 3 defaults", len(cfg.Sheet.Positions))
	}
}
