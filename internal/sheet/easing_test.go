package sheet

import (
	"math"
	"testing"
)

func TestCurves_Endpoints(t *testing.T) {
	for _, name := range CurveNames() {
		c, ok := CurveByName(name)
		if !ok {
			t.Fatalf("CurveByName(%q) not found", name)
		}
		if got := c(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := c(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestCurves_Monotonic(t *testing.T) {
	const steps = 100
	for _, name := range CurveNames() {
		c, _ := CurveByName(name)
		prev := c(0)
		for i := 1; i <= steps; i++ {
			v := c(float64(i) / steps)
			if v < prev-1e-9 {
				t.Errorf("%s is not monotonic at t=%v", name, float64(i)/steps)
				break
			}
			prev = v
		}
	}
}

func TestCurveByName_Unknown(t *testing.T) {
	if _, ok := CurveByName("bounce"); ok {
		t.Error("CurveByName should reject unknown names")
	}
}

func TestEaseInOut_Midpoint(t *testing.T) {
	if got := EaseInOut(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EaseInOut(0.5) = %v, want 0.5", got)
	}
}
