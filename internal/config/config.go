// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/snapsheet/internal/sheet"
)

const appName = "snapsheet"

// Defaults applied when the config omits a value.
const (
	defaultHandleHeight = 3
	defaultDurationMs   = 250
	defaultCurve        = "ease-out"
)

type Config struct {
	Sheet SheetConfig `koanf:"sheet"`
}

// SheetConfig describes the sheet geometry and its snap positions.
type SheetConfig struct {
	HandleHeight int              `koanf:"handle_height"` // grab handle height in cells
	Initial      int              `koanf:"initial"`       // index into positions (default 0)
	Margin       MarginConfig     `koanf:"margin"`
	Positions    []PositionConfig `koanf:"positions"`
}

// MarginConfig is the margin around the remaining region. Negative values are
// allowed.
type MarginConfig struct {
	Top    float64 `koanf:"top"`
	Bottom float64 `koanf:"bottom"`
	Left   float64 `koanf:"left"`
	Right  float64 `koanf:"right"`
}

// PositionConfig is one snap position. Exactly one of fraction/absolute must
// be set: fraction is relative to the space below the handle, absolute is in
// cells from the bottom.
type PositionConfig struct {
	Fraction   *float64 `koanf:"fraction"`
	Absolute   *float64 `koanf:"absolute"`
	DurationMs int      `koanf:"duration_ms"` // snap animation duration (default 250)
	Curve      string   `koanf:"curve"`       // easing curve name (default "ease-out")
}

// Default returns the stock configuration: closed, half-open, and almost-full
// positions below the handle.
func Default() Config {
	closed := 0.0
	half := 0.5
	most := 0.9
	return Config{
		Sheet: SheetConfig{
			HandleHeight: defaultHandleHeight,
			Positions: []PositionConfig{
				{Absolute: &closed},
				{Fraction: &half},
				{Fraction: &most},
			},
		},
	}
}

// Load reads the configuration, merging files in priority order (last wins):
// $XDG_CONFIG_HOME/snapsheet/config.toml, then ./config.toml. Missing files
// are skipped; with no file at all the defaults are returned.
func Load() (*Config, error) {
	return loadFrom(configPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Sheet.HandleHeight == 0 {
		cfg.Sheet.HandleHeight = defaultHandleHeight
	}
	return &cfg, nil
}

func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		"config.toml",
	}
}

// BuildPositions validates the configured snap positions and converts them to
// engine positions. All configuration mistakes surface here, at load time,
// never during drag handling.
func (c SheetConfig) BuildPositions() ([]*sheet.SnapPosition, error) {
	if len(c.Positions) == 0 {
		return nil, fmt.Errorf("config: sheet needs at least one snap position")
	}

	positions := make([]*sheet.SnapPosition, 0, len(c.Positions))
	for i, pc := range c.Positions {
		p, err := pc.build()
		if err != nil {
			return nil, fmt.Errorf("config: position %d: %w", i, err)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// InitialPosition resolves the configured initial index against the built
// position list.
func (c SheetConfig) InitialPosition(positions []*sheet.SnapPosition) (*sheet.SnapPosition, error) {
	if c.Initial < 0 || c.Initial >= len(positions) {
		return nil, fmt.Errorf("config: initial position index %d out of range (have %d positions)", c.Initial, len(positions))
	}
	return positions[c.Initial], nil
}

// Insets converts the margin to engine insets.
func (c MarginConfig) Insets() sheet.Insets {
	return sheet.Insets{Top: c.Top, Bottom: c.Bottom, Left: c.Left, Right: c.Right}
}

func (pc PositionConfig) build() (*sheet.SnapPosition, error) {
	if pc.Fraction != nil && pc.Absolute != nil {
		return nil, fmt.Errorf("both fraction and absolute are set")
	}
	if pc.Fraction == nil && pc.Absolute == nil {
		return nil, fmt.Errorf("one of fraction or absolute is required")
	}
	if pc.Fraction != nil && (*pc.Fraction < 0 || *pc.Fraction > 1) {
		return nil, fmt.Errorf("fraction %v outside [0,1]", *pc.Fraction)
	}
	if pc.DurationMs < 0 {
		return nil, fmt.Errorf("negative duration %dms", pc.DurationMs)
	}

	curveName := pc.Curve
	if curveName == "" {
		curveName = defaultCurve
	}
	curve, ok := sheet.CurveByName(curveName)
	if !ok {
		return nil, fmt.Errorf("unknown curve %q (accepted: %s)", pc.Curve, strings.Join(sheet.CurveNames(), ", "))
	}

	durationMs := pc.DurationMs
	if durationMs == 0 {
		durationMs = defaultDurationMs
	}
	duration := time.Duration(durationMs) * time.Millisecond

	if pc.Absolute != nil {
		return sheet.Absolute(*pc.Absolute, curve, duration), nil
	}
	return sheet.Fraction(*pc.Fraction, curve, duration), nil
}
