package base

import (
	"errors"
	"strings"
	"testing"
)

func rows(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestNewBoardDefault(t *testing.T) {
	b := NewBoard()
	want := rows(
		"rkbqkbkr",
		"pppppppp",
		"        ",
		"        ",
		"        ",
		"        ",
		"PPPPPPPP",
		"RKBQKBKR",
	)
	if got := b.String(); got != want {
		t.Fatalf("dump mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
	if n := b.Occupied(); n != 32 {
		t.Errorf("Occupied() = %d, want 32", n)
	}

	cases := []struct {
		row, col int
		color    Color
		kind     Type
	}{
		{0, 0, Black, Rook},
		{0, 1, Black, Knight},
		{0, 4, Black, King},
		{1, 3, Black, Pawn},
		{6, 7, White, Pawn},
		{7, 3, White, Queen},
		{7, 4, White, King},
		{7, 6, White, Knight},
	}
	for _, c := range cases {
		p, ok := b.At(c.row, c.col)
		if !ok {
			t.Errorf("At(%d, %d) empty", c.row, c.col)
			continue
		}
		if p.Color() != c.color || p.Type() != c.kind {
			t.Errorf("At(%d, %d) = %v, want %v %v", c.row, c.col, p, c.color, c.kind)
		}
		if p.HasMoved() {
			t.Errorf("At(%d, %d) has moved", c.row, c.col)
		}
	}
	for row := 2; row < 6; row++ {
		for col := 0; col < BoardWidth; col++ {
			if _, ok := b.At(row, col); ok {
				t.Errorf("At(%d, %d) occupied, want empty", row, col)
			}
		}
	}
}

func TestSetPiecesOutOfBounds(t *testing.T) {
	cases := []struct {
		name      string
		placement string
	}{
		{"ninth rank", "8/8/8/8/8/8/8/8/p"},
		{"nine letters", "ppppppppp"},
		{"skip past edge", "8p"},
		{"skip then letter", "4P4Q"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewBoardFromPlacement(c.placement)
			if !errors.Is(err, ErrPlacementOutOfBounds) {
				t.Fatalf("err = %v, want ErrPlacementOutOfBounds", err)
			}
			if !strings.Contains(err.Error(), "invalid placement string: board dimensions exceeded") {
				t.Errorf("err message = %q", err.Error())
			}
		})
	}
}

func TestSetPiecesPartialOnError(t *testing.T) {
	b := &Board{}
	err := b.SetPieces("K7/8/8/8/8/8/8/7k/q")
	if !errors.Is(err, ErrPlacementOutOfBounds) {
		t.Fatalf("err = %v, want ErrPlacementOutOfBounds", err)
	}
	if _, ok := b.At(0, 0); !ok {
		t.Error("piece before the failure was rolled back")
	}
	if _, ok := b.At(7, 7); !ok {
		t.Error("piece before the failure was rolled back")
	}
	if n := b.Occupied(); n != 2 {
		t.Errorf("Occupied() = %d, want 2", n)
	}
}

func TestSetPiecesSkipCount(t *testing.T) {
	b, err := NewBoardFromPlacement("3p4")
	if err != nil {
		t.Fatal(err)
	}
	for col := 0; col < BoardWidth; col++ {
		p, ok := b.At(0, col)
		if col == 3 {
			if !ok || p.Color() != Black || p.Type() != Pawn {
				t.Errorf("At(0, 3) = %v, %v; want BLACK PAWN", p, ok)
			}
			continue
		}
		if ok {
			t.Errorf("At(0, %d) = %v, want empty", col, p)
		}
	}
}

func TestSetPiecesDigitsAreSeparateSkips(t *testing.T) {
	b, err := NewBoardFromPlacement("12R")
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := b.At(0, 3); !ok || p.Type() != Rook {
		t.Errorf("At(0, 3) = %v, %v; want WHITE ROOK", p, ok)
	}
	if _, err := NewBoardFromPlacement("10p"); err != nil {
		t.Errorf("\"10p\" should place at column 1, got %v", err)
	}
}

func TestSetPiecesIgnoresUnknown(t *testing.T) {
	b, err := NewBoardFromPlacement("xKx/x?1q")
	if err != nil {
		t.Fatal(err)
	}
	want := rows("K       ", " q      ", "        ", "        ", "        ", "        ", "        ", "        ")
	if got := b.String(); got != want {
		t.Fatalf("dump mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestSetPiecesPermissiveRanks(t *testing.T) {
	cases := []string{
		"",
		"8/8",
		"4/4/4",
		"pp/PP/8/8/8/8/8/8/",
		"8/8/8/8/8/8/8/8/8/8",
	}
	for _, c := range cases {
		if _, err := NewBoardFromPlacement(c); err != nil {
			t.Errorf("NewBoardFromPlacement(%q) = %v, want nil", c, err)
		}
	}
}

func TestSetPiecesReparse(t *testing.T) {
	once := NewBoard()
	twice := NewBoard()
	if err := twice.SetPieces(DefaultPlacement); err != nil {
		t.Fatal(err)
	}
	for p, sq := range once.Squares() {
		if twice.Square(p) != sq {
			t.Fatalf("square %v differs after re-parse", p)
		}
	}

	// no clearing step: squares the new placement does not reach keep
	// the pieces of the previous one
	if err := twice.SetPieces("4k3"); err != nil {
		t.Fatal(err)
	}
	want := rows(
		"rkbqkbkr",
		"pppppppp",
		"        ",
		"        ",
		"        ",
		"        ",
		"PPPPPPPP",
		"RKBQKBKR",
	)
	if got := twice.String(); got != want {
		t.Fatalf("dump mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
	if err := twice.SetPieces("Q"); err != nil {
		t.Fatal(err)
	}
	if p, _ := twice.At(0, 0); p.Color() != White || p.Type() != Queen {
		t.Errorf("At(0, 0) = %v, want WHITE QUEEN", p)
	}
	if p, _ := twice.At(0, 1); p.Color() != Black || p.Type() != Knight {
		t.Errorf("At(0, 1) = %v, want stale BLACK KNIGHT", p)
	}
}

func TestUnimplemented(t *testing.T) {
	b := NewBoard()
	before := b.String()

	if err := b.MovePiece(6, 4); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("MovePiece err = %v, want ErrNotImplemented", err)
	}
	moves, err := b.ValidMoves()
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("ValidMoves err = %v, want ErrNotImplemented", err)
	}
	if moves != nil {
		t.Errorf("ValidMoves moves = %v, want nil", moves)
	}
	if after := b.String(); after != before {
		t.Errorf("grid changed\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestSquaresOrder(t *testing.T) {
	b := NewBoard()
	i := 0
	for p := range b.Squares() {
		if ConvPointToIndex(p) != i {
			t.Fatalf("square %d yielded as %v", i, p)
		}
		i++
	}
	if i != BoardSize {
		t.Fatalf("yielded %d squares, want %d", i, BoardSize)
	}
}

func TestAtOutOfRange(t *testing.T) {
	b := NewBoard()
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if _, ok := b.At(rc[0], rc[1]); ok {
			t.Errorf("At(%d, %d) reported a piece", rc[0], rc[1])
		}
	}
	if !b.Square(Point{Row: 9, Col: 0}).Empty() {
		t.Error("Square outside the grid is not empty")
	}
}
