package server

import (
	"chessboard/src/base"
	"encoding/json"
)

type PieceView struct {
	Color    string `json:"color"`
	Type     string `json:"type"`
	HasMoved bool   `json:"has_moved"`
	Label    string `json:"label"`
}

// SquareView.Piece is nil for an empty square.
type SquareView struct {
	Row   int        `json:"row"`
	Col   int        `json:"col"`
	Piece *PieceView `json:"piece"`
}

type BoardView struct {
	ID      string       `json:"id"`
	Dump    string       `json:"dump"`
	Squares []SquareView `json:"squares"`
}

// Placement nil means the start position; an empty string is an empty board.
type PlacementRequest struct {
	Placement *string `json:"placement"`
}

type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func newPieceView(p base.Piece) *PieceView {
	return &PieceView{
		Color:    p.Color().String(),
		Type:     p.Type().String(),
		HasMoved: p.HasMoved(),
		Label:    p.String(),
	}
}

func newSquareView(pt base.Point, sq base.Square) SquareView {
	v := SquareView{Row: int(pt.Row), Col: int(pt.Col)}
	if p, ok := sq.Piece(); ok {
		v.Piece = newPieceView(p)
	}
	return v
}

func newBoardView(id string, b *base.Board) BoardView {
	v := BoardView{ID: id, Dump: b.String(), Squares: make([]SquareView, 0, base.BoardSize)}
	for pt, sq := range b.Squares() {
		v.Squares = append(v.Squares, newSquareView(pt, sq))
	}
	return v
}

// ---- WebSocket ----

type MessageType string

const (
	MessageTypeGet       MessageType = "get"
	MessageTypePlacement MessageType = "placement"
	MessageTypeBoard     MessageType = "board"
	MessageTypeError     MessageType = "error"
)

type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
