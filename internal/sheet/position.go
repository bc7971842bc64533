// internal/sheet/position.go
package sheet

import "time"

// SnapPosition is a configured resting height for the sheet, expressed either
// as an absolute pixel offset from the bottom or as a fraction of the
// available height, together with the easing curve and duration used when
// animating toward it.
//
// Positions are immutable and compared by identity: the engine's hysteresis
// treats two positions with identical resolved values but different
// identities as distinct. Construct each position once, as static
// configuration, and pass the same pointer around.
type SnapPosition struct {
	absolute float64
	fraction float64
	isAbs    bool
	curve    Curve
	duration time.Duration
}

// Absolute creates a snap position at a fixed pixel offset from the bottom.
// A nil curve defaults to Linear.
func Absolute(px float64, curve Curve, duration time.Duration) *SnapPosition {
	if curve == nil {
		curve = Linear
	}
	return &SnapPosition{absolute: px, isAbs: true, curve: curve, duration: duration}
}

// Fraction creates a snap position at a fraction (expected in [0,1]) of the
// available height. A nil curve defaults to Linear.
func Fraction(f float64, curve Curve, duration time.Duration) *SnapPosition {
	if curve == nil {
		curve = Linear
	}
	return &SnapPosition{fraction: f, curve: curve, duration: duration}
}

// DefaultPositions returns the stock configuration: closed (0px), then half
// and ninety percent of the space below the handle, each with a 250ms
// ease-out animation.
func DefaultPositions() []*SnapPosition {
	return []*SnapPosition{
		Absolute(0, EaseOut, 250*time.Millisecond),
		Fraction(0.5, EaseOut, 250*time.Millisecond),
		Fraction(0.9, EaseOut, 250*time.Millisecond),
	}
}

// ResolveToPixels converts the position to a pixel offset against the given
// available height. Absolute positions ignore the height entirely. No
// clamping is performed: callers decide how to treat results outside the
// visible bounds.
func (p *SnapPosition) ResolveToPixels(availableHeight float64) float64 {
	if p.isAbs {
		return p.absolute
	}
	return p.fraction * availableHeight
}

// Curve returns the easing curve used when animating to this position.
func (p *SnapPosition) Curve() Curve { return p.curve }

// Duration returns the animation duration used when animating to this position.
func (p *SnapPosition) Duration() time.Duration { return p.duration }
