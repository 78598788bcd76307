package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if got := s.String(); got != want {
		t.Errorf("new screen should be blank, got %q", got)
	}
}

func TestScreenCellsCarryColor(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(2, 1, '▓', ColorCactus)
	s.Set(3, 1, 'x')

	if c := s.GetCell(2, 1); c.Rune != '▓' || c.Color != ColorCactus {
		t.Errorf("GetCell(2, 1) = %+v", c)
	}
	if c := s.GetCell(3, 1); c.Color != ColorDefault {
		t.Errorf("Set should use the default color, got %v", c.Color)
	}

	s.Clear()
	if c := s.GetCell(2, 1); c != blankCell {
		t.Errorf("after Clear, GetCell(2, 1) = %+v", c)
	}
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(5, 2)

	tests := []struct {
		name string
		draw func()
	}{
		{"negative x", func() { s.Set(-1, 0, '#') }},
		{"past right edge", func() { s.SetColored(5, 0, '#', ColorRunner) }},
		{"negative y", func() { s.Set(0, -1, '#') }},
		{"past bottom edge", func() { s.Set(0, 2, '#') }},
		{"rect hanging off the left", func() { s.DrawRect(-3, 0, 2, 2, '#', ColorRunner) }},
		{"line below the screen", func() { s.DrawHLine(0, 9, 5, '#', ColorGround) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.draw()
			if strings.ContainsRune(s.String(), '#') {
				t.Errorf("out-of-bounds draw leaked into the buffer: %q", s.String())
			}
		})
	}

	if s.Get(-1, 0) != ' ' || s.GetCell(9, 9) != blankCell {
		t.Error("out-of-bounds reads should return a blank cell")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(7, 0, "HI 42", ColorHighScore)

	if got := s.String(); got != "       HI " {
		t.Errorf("text should be clipped at the right edge, got %q", got)
	}
	if c := s.GetCell(8, 0); c.Rune != 'I' || c.Color != ColorHighScore {
		t.Errorf("GetCell(8, 0) = %+v", c)
	}

	s.DrawText(0, 0, "Score")
	if c := s.GetCell(0, 0); c.Rune != 'S' || c.Color != ColorDefault {
		t.Errorf("DrawText should use the default color, got %+v", c)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(1, 1, 2, 3, '█', ColorRunner)

	want := "      \n" +
		" ██   \n" +
		" ██   \n" +
		" ██   "
	if got := s.String(); got != want {
		t.Errorf("DrawRect:\n%s\nexpected:\n%s", got, want)
	}
	if c := s.GetCell(2, 3); c.Color != ColorRunner {
		t.Errorf("rect cell color = %v, expected ColorRunner", c.Color)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawHLine(0, 1, 8, '═', ColorGround)

	if got := s.String(); got != "        \n════════" {
		t.Errorf("DrawHLine = %q", got)
	}
	if c := s.GetCell(7, 1); c.Color != ColorGround {
		t.Errorf("line color = %v, expected ColorGround", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(0, 0, 5, 3)

	want := "┌───┐\n" +
		"│   │\n" +
		"└───┘"
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, want)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawTextColored(0, 0, "Score: 12", ColorHUD)
	s.DrawHLine(0, 3, 10, '═', ColorGround)

	s.Resize(5, 2)
	if got := s.String(); got != "Score\n     " {
		t.Errorf("after shrinking, screen = %q", got)
	}

	s.Resize(7, 3)
	if s.Width() != 7 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 7x3", s.Width(), s.Height())
	}
	if c := s.GetCell(0, 0); c.Rune != 'S' || c.Color != ColorHUD {
		t.Errorf("color should survive resizing, got %+v", c)
	}
	if s.Get(5, 0) != ' ' {
		t.Error("cells outside the old area should be blank after growing")
	}
}
