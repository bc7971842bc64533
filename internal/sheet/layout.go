// internal/sheet/layout.go
package sheet

// Bounds is the space the host makes available to the sheet.
type Bounds struct {
	MaxWidth  float64
	MaxHeight float64
}

// Insets are margins applied to the remaining region. Negative values are
// permitted and let the region bleed past its nominal edges.
type Insets struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Rect is a positioned rectangle with a top-left origin, y growing downward.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout holds the four regions of the sheet in back-to-front draw order:
// background first, then the remaining region, the grab handle, and finally
// the sheet itself, so the sheet and handle visually sit on top.
type Layout struct {
	Background Rect
	Remaining  Rect
	Handle     Rect
	Sheet      Rect
}

// ComposeLayout computes the four regions for the given raised offset.
//
// The remaining region spans from margin.Top down to the top of the handle
// (offset + margin.Bottom + handleHeight above the container bottom) and
// resizes live as the offset changes. The handle's bottom edge sits exactly
// offset pixels above the container bottom; the sheet fills everything below
// that down to the bottom edge.
func ComposeLayout(offset float64, b Bounds, margin Insets, handleHeight float64) Layout {
	w := b.MaxWidth
	h := b.MaxHeight
	return Layout{
		Background: Rect{X: 0, Y: 0, W: w, H: h},
		Remaining: Rect{
			X: margin.Left,
			Y: margin.Top,
			W: w - margin.Left - margin.Right,
			H: h - margin.Top - (offset + margin.Bottom + handleHeight),
		},
		Handle: Rect{X: 0, Y: h - offset - handleHeight, W: w, H: handleHeight},
		Sheet:  Rect{X: 0, Y: h - offset, W: w, H: offset},
	}
}
