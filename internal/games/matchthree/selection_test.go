package matchthree

import (
	"testing"

	"github.com/DeXoteric/MatchThreeGame/internal/match3"
)

func TestSelectionPick(t *testing.T) {
	tests := []struct {
		name  string
		picks []match3.Coord
		want  Phase
		first match3.Coord
	}{
		{"first pick", []match3.Coord{match3.C(1, 1)}, PhasePendingSelection, match3.C(1, 1)},
		{"same piece deselects", []match3.Coord{match3.C(1, 1), match3.C(1, 1)}, PhaseIdle, match3.C(0, 0)},
		{"adjacent pick pends swap", []match3.Coord{match3.C(1, 1), match3.C(1, 2)}, PhasePendingSwap, match3.C(1, 1)},
		{"far pick reselects", []match3.Coord{match3.C(1, 1), match3.C(3, 3)}, PhasePendingSelection, match3.C(3, 3)},
		{"diagonal reselects", []match3.Coord{match3.C(1, 1), match3.C(2, 2)}, PhasePendingSelection, match3.C(2, 2)},
		{"picks ignored while swapping", []match3.Coord{match3.C(1, 1), match3.C(2, 1), match3.C(0, 0)}, PhasePendingSwap, match3.C(1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s Selection
			for _, c := range tc.picks {
				s.Pick(c)
			}
			if s.Phase() != tc.want {
				t.Fatalf("Phase() = %v, expected %v", s.Phase(), tc.want)
			}
			if first, ok := s.First(); ok && first != tc.first {
				t.Errorf("First() = %v, expected %v", first, tc.first)
			}
		})
	}
}

func TestSelectionResolve(t *testing.T) {
	var s Selection
	s.Resolve(true)
	if s.Phase() != PhaseIdle {
		t.Error("Resolve without a pending swap should do nothing")
	}

	s.Pick(match3.C(0, 0))
	s.Pick(match3.C(1, 0))
	pair, ok := s.Pair()
	if !ok || pair != (match3.Swap{A: match3.C(0, 0), B: match3.C(1, 0)}) {
		t.Errorf("Pair() = %v, %v", pair, ok)
	}

	s.Resolve(false)
	if s.Phase() != PhaseReverted {
		t.Errorf("Phase() = %v, expected reverted", s.Phase())
	}
	if _, ok := s.Pair(); !ok {
		t.Error("Pair() should stay available while reverting")
	}

	s.Reset()
	if s.Phase() != PhaseIdle {
		t.Error("Reset should return to idle")
	}
	if _, ok := s.Pair(); ok {
		t.Error("idle selection has no pair")
	}
}
