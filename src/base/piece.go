package base

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "WHITE"
	case Black:
		return "BLACK"
	default:
		return "INVALID"
	}
}

type Type uint8

const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (t Type) String() string {
	switch t {
	case Pawn:
		return "PAWN"
	case Knight:
		return "KNIGHT"
	case Bishop:
		return "BISHOP"
	case Rook:
		return "ROOK"
	case Queen:
		return "QUEEN"
	case King:
		return "KING"
	default:
		return "EMPTY"
	}
}

// ---- Piece ----

// Piece is a chess piece identity. Color and type never change after
// NewPiece; hasMoved is kept for castling and en-passant rules and stays false
// until moves are executed.
type Piece struct {
	color    Color
	kind     Type
	hasMoved bool
}

func NewPiece(c Color, t Type) Piece {
	return Piece{color: c, kind: t}
}

func (p Piece) Color() Color {
	return p.color
}

func (p Piece) Type() Type {
	return p.kind
}

func (p Piece) HasMoved() bool {
	return p.hasMoved
}

// "WHITE KING"
func (p Piece) String() string {
	return p.color.String() + " " + p.kind.String()
}

// ---- Square ----

type Square struct {
	piece    Piece
	occupied bool
}

func OccupiedSquare(p Piece) Square {
	return Square{piece: p, occupied: true}
}

func (s Square) Empty() bool {
	return !s.occupied
}

func (s Square) Piece() (Piece, bool) {
	return s.piece, s.occupied
}
