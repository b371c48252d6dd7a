package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3, 2) = %q, expected '@'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", got)
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenColor(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetWithColor(1, 1, '*', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '*' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected {'*', ColorRed}", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 2, 'o')
	if c := s.GetCell(2, 2).Color; c != ColorDefault {
		t.Errorf("Set should use ColorDefault, got %v", c)
	}

	// Out of bounds returns an uncolored space
	cell = s.GetCell(99, 99)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetWithColor(0, 0, '#', ColorGreen)
	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear left %+v at (0, 0)", cell)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("Resize to 5x3 got %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("content inside new bounds should survive resize, got %q", got)
	}

	// Growing back does not resurrect clipped content
	s.Resize(10, 5)
	if got := s.Get(9, 4); got != ' ' {
		t.Errorf("clipped content should not survive, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "hello") // clipped at the edge

	if got := s.Get(7, 0); got != 'h' {
		t.Errorf("Get(7, 0) = %q, expected 'h'", got)
	}
	if got := s.Get(9, 0); got != 'l' {
		t.Errorf("Get(9, 0) = %q, expected 'l'", got)
	}

	s.DrawTextCentered(1, "ab")
	if got := s.Get(4, 1); got != 'a' {
		t.Errorf("centered text misplaced, Get(4, 1) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(NewRect(1, 1, 5, 3))

	if got := s.Get(1, 1); got != '┌' {
		t.Errorf("top-left corner = %q", got)
	}
	if got := s.Get(5, 3); got != '┘' {
		t.Errorf("bottom-right corner = %q", got)
	}
	if got := s.Get(3, 1); got != '─' {
		t.Errorf("top edge = %q", got)
	}
	if got := s.Get(1, 2); got != '│' {
		t.Errorf("left edge = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", got)
	}
}
