package match3

// MinMatch is the run length at which pieces are matched.
const MinMatch = 3

// directionalMinLength is the per-direction threshold used when two opposing
// scans are combined into one axis match.
const directionalMinLength = 2

// IsAdjacent reports whether a and b are one step apart along exactly one axis.
func IsAdjacent(a, b Coord) bool {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	return (dx == 1 && dy == 0) || (dx == 0 && dy == 1)
}

// ScanDirection collects the run that starts at start and extends in dir.
// dir is normalized to a unit step along one axis; diagonal directions
// yield nil. The run stops at the board edge, at an
// empty slot or at a piece of another kind; gaps are never skipped.
// Returns nil when start is out of bounds or empty, or when the run is
// shorter than minLength.
func ScanDirection(g *Grid, start Coord, dir Direction, minLength int) *MatchSet {
	if !g.InBounds(start) {
		return nil
	}
	kind := g.at(start)
	if kind.IsEmpty() {
		return nil
	}

	step := dir.Normalize()
	if step.DX != 0 && step.DY != 0 {
		return nil
	}

	run := NewMatchSet(start)
	if step.IsZero() {
		return finishRun(run, minLength)
	}

	maxSteps := max(g.w, g.h) - 1
	for i := 1; i <= maxSteps; i++ {
		next := start.Step(step, i)
		if !g.InBounds(next) {
			break
		}
		if !g.at(next).Matches(kind) || run.Contains(next) {
			break
		}
		run.Add(next)
	}

	return finishRun(run, minLength)
}

func finishRun(run *MatchSet, minLength int) *MatchSet {
	if run.Len() >= minLength {
		return run
	}
	return nil
}

// FindHorizontalMatches returns the row match through start, or nil when the
// combined left and right runs are shorter than minLength.
func FindHorizontalMatches(g *Grid, start Coord, minLength int) *MatchSet {
	return findAxisMatches(g, start, Right, minLength)
}

// FindVerticalMatches returns the column match through start, or nil when the
// combined up and down runs are shorter than minLength.
func FindVerticalMatches(g *Grid, start Coord, minLength int) *MatchSet {
	return findAxisMatches(g, start, Up, minLength)
}

func findAxisMatches(g *Grid, start Coord, dir Direction, minLength int) *MatchSet {
	if !g.InBounds(start) || g.at(start).IsEmpty() {
		return nil
	}

	forward := ScanDirection(g, start, dir, directionalMinLength)
	backward := ScanDirection(g, start, dir.Opposite(), directionalMinLength)

	combined := NewMatchSet(start).Union(forward).Union(backward)
	if combined.Len() < minLength {
		return nil
	}
	return combined
}

// FindMatchesAt unions the horizontal and vertical matches through c.
// Returns nil when c is not part of any match.
func FindMatchesAt(g *Grid, c Coord) *MatchSet {
	h := FindHorizontalMatches(g, c, MinMatch)
	v := FindVerticalMatches(g, c, MinMatch)
	if h == nil && v == nil {
		return nil
	}
	return h.Union(v)
}

// ComputeAllMatches scans every coordinate and returns all cells that belong
// to at least one match, each tagged with its kind.
func ComputeAllMatches(g *Grid) Highlights {
	out := newHighlights()
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			matches := FindMatchesAt(g, C(x, y))
			for _, c := range matches.Coords() {
				out.kinds[c] = g.at(c)
			}
		}
	}
	return out
}

// CanSwap reports whether a and b are adjacent, in bounds and both hold a piece.
// It says nothing about whether the swap would produce a match.
func CanSwap(g *Grid, a, b Coord) bool {
	if !IsAdjacent(a, b) || !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	return !g.at(a).IsEmpty() && !g.at(b).IsEmpty()
}
