package base

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	ErrPlacementOutOfBounds = errors.New("invalid placement string: board dimensions exceeded")
	ErrNotImplemented       = errors.New("not implemented")
)

// Board is an 8x8 grid of optional pieces. It is not safe for concurrent use.
type Board struct {
	grid [BoardSize]Square
}

func NewBoard() *Board {
	b := &Board{}
	if err := b.SetPieces(DefaultPlacement); err != nil {
		panic(err) // DefaultPlacement is always in bounds
	}
	return b
}

func NewBoardFromPlacement(placement string) (*Board, error) {
	b := &Board{}
	if err := b.SetPieces(placement); err != nil {
		return nil, err
	}
	return b, nil
}

// SetPieces parses the piece placement field of a FEN string into the grid.
//
// Each digit is its own skip count, so "11" skips two squares. Unknown
// characters are ignored and rank lengths are not checked. Squares that the
// placement does not reach keep their current occupant. A piece outside the
// grid stops the parse with ErrPlacementOutOfBounds; pieces placed before it
// stay on the board.
func (b *Board) SetPieces(placement string) error {
	row, col := 0, 0
	for _, r := range placement {
		switch {
		case r == placementNextRow:
			row++
			col = 0
		case isPlacementDigit(r):
			col += int(r - '0')
		default:
			c, t, ok := ConvertPieceFromRune(r)
			if !ok {
				continue
			}
			if !IsValidRowCol(row, col) {
				return fmt.Errorf("%w: %q at row %d, col %d", ErrPlacementOutOfBounds, r, row, col)
			}
			b.grid[row*BoardWidth+col] = OccupiedSquare(NewPiece(c, t))
			col++
		}
	}
	return nil
}

// ---- Query ----

func (b *Board) At(row, col int) (Piece, bool) {
	if !IsValidRowCol(row, col) {
		return Piece{}, false
	}
	return b.grid[row*BoardWidth+col].Piece()
}

func (b *Board) Square(p Point) Square {
	if !IsValidPoint(p) {
		return Square{}
	}
	return b.grid[ConvPointToIndex(p)]
}

// Squares yields all 64 squares in row-major order.
func (b *Board) Squares() iter.Seq2[Point, Square] {
	return func(yield func(Point, Square) bool) {
		for i, sq := range b.grid {
			if !yield(ConvIndexToPoint(i), sq) {
				return
			}
		}
	}
}

func (b *Board) Occupied() int {
	n := 0
	for _, sq := range b.grid {
		if !sq.Empty() {
			n++
		}
	}
	return n
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize + BoardHeight)
	for i, sq := range b.grid {
		if p, ok := sq.Piece(); ok {
			sb.WriteRune(ConvertRuneFromPiece(p))
		} else {
			sb.WriteByte(' ')
		}
		if i%BoardWidth == BoardWidth-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ---- Moves ----

func (b *Board) MovePiece(row, col int) error {
	return fmt.Errorf("move piece at (%d, %d): %w", row, col, ErrNotImplemented)
}

func (b *Board) ValidMoves() ([]Move, error) {
	return nil, fmt.Errorf("valid moves: %w", ErrNotImplemented)
}
