package match3

import "fmt"

// Swap is a proposed exchange of two board slots.
type Swap struct {
	A Coord
	B Coord
}

// String returns a string representation of the swap.
func (s Swap) String() string {
	return fmt.Sprintf("%v<->%v", s.A, s.B)
}

// SwapResult describes the board a swap would produce.
type SwapResult struct {
	Swap    Swap
	Grid    *Grid     // Working copy with the swap applied
	MatchA  *MatchSet // Matches through A after the swap, nil if none
	MatchB  *MatchSet // Matches through B after the swap, nil if none
	Matched *MatchSet // MatchA ∪ MatchB
}

// HasMatch reports whether the swap produced at least one match at its origins.
func (r SwapResult) HasMatch() bool {
	return r.Matched.Len() > 0
}

// EvaluateSwap applies the swap to a clone of g and reports the matches at
// both swapped cells. g itself is never modified; committing or reverting is
// up to the caller.
func EvaluateSwap(g *Grid, a, b Coord) (SwapResult, error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return SwapResult{}, fmt.Errorf("%w: %v<->%v on %dx%d board", ErrOutOfBounds, a, b, g.w, g.h)
	}
	if !CanSwap(g, a, b) {
		return SwapResult{}, fmt.Errorf("%w: %v<->%v", ErrInvalidSwap, a, b)
	}

	work := g.Clone()
	if err := work.Swap(a, b); err != nil {
		return SwapResult{}, err
	}

	matchA := FindMatchesAt(work, a)
	matchB := FindMatchesAt(work, b)

	return SwapResult{
		Swap:    Swap{A: a, B: b},
		Grid:    work,
		MatchA:  matchA,
		MatchB:  matchB,
		Matched: matchA.Union(matchB),
	}, nil
}

// FindValidSwaps returns every adjacent swap that would create a match at
// one of its two cells. Each unordered pair is reported once, with A being
// the left or lower cell. Order is row-major over A, right before up.
func FindValidSwaps(g *Grid) []Swap {
	var swaps []Swap
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			a := C(x, y)
			for _, dir := range []Direction{Right, Up} {
				b := a.Step(dir, 1)
				if !CanSwap(g, a, b) {
					continue
				}
				res, err := EvaluateSwap(g, a, b)
				if err != nil || !res.HasMatch() {
					continue
				}
				swaps = append(swaps, res.Swap)
			}
		}
	}
	return swaps
}
