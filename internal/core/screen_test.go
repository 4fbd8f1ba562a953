package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 6)

	if s.Width() != 12 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 12x6", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(8, 8)

	s.SetColored(3, 4, 'R', ColorRed)
	c := s.GetCell(3, 4)
	if c.Rune != 'R' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, expected red 'R'", c)
	}

	s.Set(3, 4, 'x')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set should reset the color to default")
	}

	// Out of bounds writes are dropped
	s.SetColored(-1, 0, 'A', ColorBlue)
	s.SetColored(0, 99, 'A', ColorBlue)
	if s.Get(-1, 0) != ' ' || s.Get(0, 99) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawTextColored(0, 0, "GGGG", ColorGreen)

	s.Clear()

	for x := 0; x < 4; x++ {
		if c := s.GetCell(x, 0); c != (Cell{Rune: ' '}) {
			t.Errorf("after Clear cell (%d, 0) = %+v", x, c)
		}
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(7, 1, "Moves", ColorYellow)

	if got := s.Row(1); got != "       Mov" {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(8, 1).Color != ColorYellow {
		t.Error("drawn text should keep its color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(0, "abc")

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	expected := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
	if s.GetCell(5, 3).Color != ColorGray {
		t.Error("box corner should carry the box color")
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColored(0, 0, "Score", ColorCyan)

	s.Resize(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Scor" {
		t.Errorf("Row(0) = %q after shrink", got)
	}

	s.Resize(12, 5)
	if got := s.Row(0); !strings.HasPrefix(got, "Scor ") {
		t.Errorf("Row(0) = %q after grow", got)
	}
	if s.GetCell(0, 0).Color != ColorCyan {
		t.Error("resize should keep cell colors")
	}
	if got := s.Row(-1); got != strings.Repeat(" ", 12) {
		t.Errorf("out of range row = %q", got)
	}
}
