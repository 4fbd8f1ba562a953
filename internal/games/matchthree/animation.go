package matchthree

import (
	"fmt"
	"sort"

	"github.com/DeXoteric/MatchThreeGame/internal/core"
	"github.com/DeXoteric/MatchThreeGame/internal/match3"
)

// Easing maps linear progress in [0, 1] onto an animation curve.
type Easing func(t float64) float64

// Linear moves at constant speed.
func Linear(t float64) float64 { return t }

// EaseIn starts slow and accelerates.
func EaseIn(t float64) float64 { return t * t }

// EaseOut starts fast and decelerates.
func EaseOut(t float64) float64 { return t * (2 - t) }

// SmoothStep eases both ends.
func SmoothStep(t float64) float64 { return t * t * (3 - 2*t) }

// SmootherStep eases both ends with zero second derivative at the edges.
func SmootherStep(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

var easings = map[string]Easing{
	"linear":       Linear,
	"ease-in":      EaseIn,
	"ease-out":     EaseOut,
	"smoothstep":   SmoothStep,
	"smootherstep": SmootherStep,
}

// ParseEasing looks up an easing curve by its config name.
func ParseEasing(name string) (Easing, error) {
	e, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("matchthree: unknown easing %q", name)
	}
	return e, nil
}

// EasingNames returns the accepted easing names, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// swapTween animates two pieces trading places. A rejected swap plays the
// same tween a second time in reverse.
type swapTween struct {
	result   match3.SwapResult
	ticks    int
	duration int
	back     bool
	ease     Easing
}

func newSwapTween(result match3.SwapResult, duration int, ease Easing) *swapTween {
	if duration < 1 {
		duration = 1
	}
	if ease == nil {
		ease = Linear
	}
	return &swapTween{result: result, duration: duration, ease: ease}
}

// advance moves one tick and reports whether the current leg finished.
func (t *swapTween) advance() bool {
	t.ticks++
	return t.ticks >= t.duration
}

// reverse starts the return leg.
func (t *swapTween) reverse() {
	t.back = true
	t.ticks = 0
}

// fraction is how far the piece from A has travelled toward B.
func (t *swapTween) fraction() float64 {
	p := t.ease(core.ClampF(float64(t.ticks)/float64(t.duration), 0, 1))
	if t.back {
		return 1 - p
	}
	return p
}

// positions returns the interpolated board positions of the pieces that
// started at A and at B.
func (t *swapTween) positions() (ax, ay, bx, by float64) {
	f := t.fraction()
	a, b := t.result.Swap.A, t.result.Swap.B
	ax = lerp(float64(a.X), float64(b.X), f)
	ay = lerp(float64(a.Y), float64(b.Y), f)
	bx = lerp(float64(b.X), float64(a.X), f)
	by = lerp(float64(b.Y), float64(a.Y), f)
	return ax, ay, bx, by
}

func lerp(from, to, f float64) float64 {
	return from + (to-from)*f
}

// flash marks freshly matched cells before they are cleared.
type flash struct {
	cells []match3.Coord
	ticks int
}
