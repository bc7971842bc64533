// internal/sheet/easing.go
package sheet

import "sort"

// Curve maps normalized animation progress to eased progress.
// Defined on t in [0,1] with Curve(0) == 0 and Curve(1) == 1.
type Curve func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 { return t }

// EaseIn starts slow and accelerates (cubic).
func EaseIn(t float64) float64 { return t * t * t }

// EaseOut starts fast and decelerates (cubic).
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOut accelerates through the first half and decelerates through the second (cubic).
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Decelerate starts fast and flattens out (quadratic).
func Decelerate(t float64) float64 {
	u := 1 - t
	return 1 - u*u
}

var curves = map[string]Curve{
	"linear":      Linear,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
	"decelerate":  Decelerate,
}

// CurveByName looks up a named easing curve. Names are the ones accepted in
// configuration files: "linear", "ease-in", "ease-out", "ease-in-out",
// "decelerate".
func CurveByName(name string) (Curve, bool) {
	c, ok := curves[name]
	return c, ok
}

// CurveNames returns the accepted curve names in sorted order, for error messages.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
