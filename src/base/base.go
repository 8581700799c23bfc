package base

import "fmt"

// piece placement field of Forsyth–Edwards Notation
const DefaultPlacement string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

const (
	BoardHeight int = 8
	BoardWidth  int = 8
	BoardSize   int = BoardHeight * BoardWidth
)

// ---- Point ----

// Row 0 is the first rank of the placement string (black's back rank in the
// default position).
type Point struct {
	Row uint8
	Col uint8
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

type Move struct {
	From Point
	To   Point
}

func ConvPointToIndex(p Point) int {
	return int(p.Row)*BoardWidth + int(p.Col)
}

func ConvIndexToPoint(i int) Point {
	return Point{Row: uint8(i / BoardWidth), Col: uint8(i % BoardWidth)}
}

func IsValidPoint(p Point) bool {
	return int(p.Row) < BoardHeight && int(p.Col) < BoardWidth
}

func IsValidRowCol(row, col int) bool {
	return row >= 0 && row < BoardHeight && col >= 0 && col < BoardWidth
}
