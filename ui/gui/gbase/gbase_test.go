package gbase

import "testing"

func TestNewBoardLayout(t *testing.T) {
	l := NewBoardLayout(1280, 720)
	if l.Square != 77 {
		t.Fatalf("Square = %d, want 77", l.Square)
	}
	if l.Size() != 616 {
		t.Fatalf("Size() = %d, want 616", l.Size())
	}
	if l.X != (1280-616)/2 || l.Y != (720-StatusH-616)/2 {
		t.Fatalf("origin = (%d, %d)", l.X, l.Y)
	}
}

func TestSquareAtInvertsOrigin(t *testing.T) {
	l := NewBoardLayout(1000, 800)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x, y := l.SquareOrigin(row, col)
			for _, d := range []int{0, l.Square / 2, l.Square - 1} {
				r, c, ok := l.SquareAt(x+d, y+d)
				if !ok || r != row || c != col {
					t.Fatalf("SquareAt(%d, %d) = %d, %d, %v; want %d, %d", x+d, y+d, r, c, ok, row, col)
				}
			}
		}
	}
}

func TestSquareAtOutside(t *testing.T) {
	l := NewBoardLayout(1000, 800)
	points := [][2]int{
		{l.X - 1, l.Y},
		{l.X, l.Y - 1},
		{l.X + l.Size(), l.Y},
		{l.X, l.Y + l.Size()},
	}
	for _, p := range points {
		if _, _, ok := l.SquareAt(p[0], p[1]); ok {
			t.Errorf("SquareAt(%d, %d) inside the board", p[0], p[1])
		}
	}
}

func TestPaletteFromString(t *testing.T) {
	if PaletteFromString("dark") != DarkPalette {
		t.Error("dark")
	}
	if PaletteFromString("light") != LightPalette || PaletteFromString("") != LightPalette {
		t.Error("light is the fallback")
	}
	if DarkPalette.String() != "dark" {
		t.Error("DarkPalette.String()")
	}
}
