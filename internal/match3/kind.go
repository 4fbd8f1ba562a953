package match3

import "strings"

// PieceKind is the match value of a piece. The zero value means "no piece".
type PieceKind uint8

const (
	Empty PieceKind = iota
	Yellow
	Blue
	Magenta
	Indigo
	Green
	Teal
	Red
	Cyan
	Wild
)

// String returns the lowercase name of the kind.
func (k PieceKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Indigo:
		return "indigo"
	case Green:
		return "green"
	case Teal:
		return "teal"
	case Red:
		return "red"
	case Cyan:
		return "cyan"
	case Wild:
		return "wild"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for ASCII rendering and board files.
func (k PieceKind) Char() rune {
	switch k {
	case Empty:
		return '.'
	case Yellow:
		return 'Y'
	case Blue:
		return 'B'
	case Magenta:
		return 'M'
	case Indigo:
		return 'I'
	case Green:
		return 'G'
	case Teal:
		return 'T'
	case Red:
		return 'R'
	case Cyan:
		return 'C'
	case Wild:
		return '*'
	default:
		return '?'
	}
}

// IsEmpty reports whether the slot holds no piece.
func (k PieceKind) IsEmpty() bool {
	return k == Empty
}

// Matches reports whether two pieces can extend the same run.
// Only exact equality counts: a Wild piece matches another Wild, nothing else.
func (k PieceKind) Matches(other PieceKind) bool {
	return k != Empty && k == other
}

// ParseKind converts a name or single-character code to a PieceKind.
func ParseKind(s string) (PieceKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ".", "-", "empty":
		return Empty, true
	case "y", "yellow":
		return Yellow, true
	case "b", "blue":
		return Blue, true
	case "m", "magenta":
		return Magenta, true
	case "i", "indigo":
		return Indigo, true
	case "g", "green":
		return Green, true
	case "t", "teal":
		return Teal, true
	case "r", "red":
		return Red, true
	case "c", "cyan":
		return Cyan, true
	case "*", "w", "wild":
		return Wild, true
	default:
		return Empty, false
	}
}

// PlayableKinds returns the regular piece kinds in spawn order (Wild excluded).
func PlayableKinds() []PieceKind {
	return []PieceKind{Yellow, Blue, Magenta, Indigo, Green, Teal, Red, Cyan}
}
