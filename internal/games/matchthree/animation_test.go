package matchthree

import (
	"math"
	"testing"

	"github.com/DeXoteric/MatchThreeGame/internal/match3"
)

func TestEasingEndpoints(t *testing.T) {
	for _, name := range EasingNames() {
		ease, err := ParseEasing(name)
		if err != nil {
			t.Fatalf("ParseEasing(%q) error = %v", name, err)
		}
		if got := ease(0); got != 0 {
			t.Errorf("%s(0) = %v, expected 0", name, got)
		}
		if got := ease(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, expected 1", name, got)
		}
	}
}

func TestEasingMidpoints(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"linear", 0.5},
		{"ease-in", 0.25},
		{"ease-out", 0.75},
		{"smoothstep", 0.5},
		{"smootherstep", 0.5},
	}

	for _, tc := range tests {
		ease, _ := ParseEasing(tc.name)
		if got := ease(0.5); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s(0.5) = %v, expected %v", tc.name, got, tc.want)
		}
	}

	if _, err := ParseEasing("bounce"); err == nil {
		t.Error("unknown easing should fail")
	}
}

func TestSwapTweenRoundTrip(t *testing.T) {
	res := match3.SwapResult{Swap: match3.Swap{A: match3.C(0, 0), B: match3.C(1, 0)}}
	tw := newSwapTween(res, 2, Linear)

	if tw.advance() {
		t.Fatal("first tick should not finish a 2-tick leg")
	}
	ax, _, bx, _ := tw.positions()
	if ax != 0.5 || bx != 0.5 {
		t.Errorf("halfway positions = %v, %v", ax, bx)
	}
	if !tw.advance() {
		t.Fatal("second tick should finish the leg")
	}

	tw.reverse()
	ax, _, bx, _ = tw.positions()
	if ax != 1 || bx != 0 {
		t.Errorf("reverse leg should start swapped, got %v, %v", ax, bx)
	}
	tw.advance()
	tw.advance()
	ax, _, bx, _ = tw.positions()
	if ax != 0 || bx != 1 {
		t.Errorf("reverse leg should end at origin, got %v, %v", ax, bx)
	}
}
