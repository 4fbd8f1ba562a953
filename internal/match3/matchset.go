package match3

import "sort"

// MatchSet is a duplicate-free collection of coordinates that form one match.
// Insertion order is kept so scans read naturally from their origin outward.
type MatchSet struct {
	order []Coord
	seen  map[Coord]struct{}
}

// NewMatchSet creates a set holding the given coordinates.
func NewMatchSet(coords ...Coord) *MatchSet {
	s := &MatchSet{seen: make(map[Coord]struct{}, len(coords))}
	for _, c := range coords {
		s.Add(c)
	}
	return s
}

// Add inserts c and reports whether it was new.
func (s *MatchSet) Add(c Coord) bool {
	if s.seen == nil {
		s.seen = make(map[Coord]struct{})
	}
	if _, ok := s.seen[c]; ok {
		return false
	}
	s.seen[c] = struct{}{}
	s.order = append(s.order, c)
	return true
}

// Contains reports whether c is in the set.
func (s *MatchSet) Contains(c Coord) bool {
	if s == nil {
		return false
	}
	_, ok := s.seen[c]
	return ok
}

// Len returns the number of coordinates. A nil set has length 0.
func (s *MatchSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Coords returns a copy of the coordinates in insertion order.
func (s *MatchSet) Coords() []Coord {
	if s == nil {
		return nil
	}
	return append([]Coord(nil), s.order...)
}

// Sorted returns the coordinates ordered by row, then column.
func (s *MatchSet) Sorted() []Coord {
	coords := s.Coords()
	sortCoords(coords)
	return coords
}

// Union returns a new set with the members of s followed by the new members of other.
// Either operand may be nil.
func (s *MatchSet) Union(other *MatchSet) *MatchSet {
	out := NewMatchSet(s.Coords()...)
	for _, c := range other.Coords() {
		out.Add(c)
	}
	return out
}

func sortCoords(coords []Coord) {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
}

// Highlights is the full-board match result: every matched coordinate tagged
// with the kind it matched on.
type Highlights struct {
	kinds map[Coord]PieceKind
}

func newHighlights() Highlights {
	return Highlights{kinds: make(map[Coord]PieceKind)}
}

// Len returns the number of matched coordinates.
func (h Highlights) Len() int {
	return len(h.kinds)
}

// Empty reports whether nothing on the board is matched.
func (h Highlights) Empty() bool {
	return len(h.kinds) == 0
}

// Contains reports whether c belongs to at least one match.
func (h Highlights) Contains(c Coord) bool {
	_, ok := h.kinds[c]
	return ok
}

// Kind returns the matched kind at c.
func (h Highlights) Kind(c Coord) (PieceKind, bool) {
	k, ok := h.kinds[c]
	return k, ok
}

// Coords returns all matched coordinates ordered by row, then column.
func (h Highlights) Coords() []Coord {
	coords := make([]Coord, 0, len(h.kinds))
	for c := range h.kinds {
		coords = append(coords, c)
	}
	sortCoords(coords)
	return coords
}
