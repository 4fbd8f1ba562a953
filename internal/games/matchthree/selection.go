package matchthree

import "github.com/DeXoteric/MatchThreeGame/internal/match3"

// Phase is a step of the pick-two-pieces flow.
type Phase int

const (
	PhaseIdle             Phase = iota // Nothing picked
	PhasePendingSelection              // First piece picked
	PhasePendingSwap                   // Adjacent second piece picked, swap in flight
	PhaseValidated                     // Swap produced a match and was committed
	PhaseReverted                      // Swap produced nothing and is being undone
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePendingSelection:
		return "pending_selection"
	case PhasePendingSwap:
		return "pending_swap"
	case PhaseValidated:
		return "validated"
	case PhaseReverted:
		return "reverted"
	default:
		return "unknown"
	}
}

// Selection tracks which pieces the player has picked.
// The zero value is idle.
type Selection struct {
	phase  Phase
	first  match3.Coord
	second match3.Coord
}

// Phase returns the current phase.
func (s *Selection) Phase() Phase {
	return s.phase
}

// First returns the first picked coordinate, if any.
func (s *Selection) First() (match3.Coord, bool) {
	if s.phase == PhaseIdle {
		return match3.Coord{}, false
	}
	return s.first, true
}

// Pair returns the swap once a second piece has been picked.
func (s *Selection) Pair() (match3.Swap, bool) {
	switch s.phase {
	case PhasePendingSwap, PhaseValidated, PhaseReverted:
		return match3.Swap{A: s.first, B: s.second}, true
	default:
		return match3.Swap{}, false
	}
}

// Pick feeds a picked coordinate into the flow and returns the new phase.
// Picking the selected piece again deselects it; picking a non-adjacent
// piece moves the selection there. Picks are ignored while a swap is in flight.
func (s *Selection) Pick(c match3.Coord) Phase {
	switch s.phase {
	case PhaseIdle:
		s.phase = PhasePendingSelection
		s.first = c
	case PhasePendingSelection:
		switch {
		case c == s.first:
			s.phase = PhaseIdle
		case match3.IsAdjacent(s.first, c):
			s.phase = PhasePendingSwap
			s.second = c
		default:
			s.first = c
		}
	}
	return s.phase
}

// Resolve records the outcome of a pending swap.
func (s *Selection) Resolve(matched bool) {
	if s.phase != PhasePendingSwap {
		return
	}
	if matched {
		s.phase = PhaseValidated
	} else {
		s.phase = PhaseReverted
	}
}

// Reset returns to idle.
func (s *Selection) Reset() {
	*s = Selection{}
}
