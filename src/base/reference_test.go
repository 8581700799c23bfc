package base

import (
	"testing"

	"github.com/corentings/chess/v2"
)

// Cross-checks the grid against an independent FEN decoder for
// well-formed placements.
func TestSetPiecesMatchesReference(t *testing.T) {
	placements := []string{
		DefaultPlacement,
		"r1b1kbnr/pppp1ppp/2n5/4P3/1q6/5N2/PPPBPPPP/RN1QKB1R",
		"8/8/8/4k3/8/8/8/4K3",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R",
	}
	types := map[chess.PieceType]Type{
		chess.King:   King,
		chess.Queen:  Queen,
		chess.Rook:   Rook,
		chess.Bishop: Bishop,
		chess.Knight: Knight,
		chess.Pawn:   Pawn,
	}
	for _, placement := range placements {
		t.Run(placement, func(t *testing.T) {
			opt, err := chess.FEN(placement + " w - - 0 1")
			if err != nil {
				t.Fatalf("reference decoder: %v", err)
			}
			ref := chess.NewGame(opt).Position().Board()

			b, err := NewBoardFromPlacement(placement)
			if err != nil {
				t.Fatal(err)
			}
			for row := 0; row < BoardHeight; row++ {
				for col := 0; col < BoardWidth; col++ {
					want := ref.Piece(chess.NewSquare(chess.File(col), chess.Rank(BoardHeight-1-row)))
					got, ok := b.At(row, col)
					if want == chess.NoPiece {
						if ok {
							t.Errorf("(%d, %d) = %v, want empty", row, col, got)
						}
						continue
					}
					wantColor := White
					if want.Color() == chess.Black {
						wantColor = Black
					}
					if !ok || got.Color() != wantColor || got.Type() != types[want.Type()] {
						t.Errorf("(%d, %d) = %v, want %v", row, col, got, want)
					}
				}
			}
		})
	}
}
