package cli

import (
	"chessboard/src/base"
	"fmt"
	"io"
)

type DrawFunc func(w io.Writer, b *base.Board)

// PrintDump writes the plain board dump.
func PrintDump(w io.Writer, b *base.Board) {
	fmt.Fprint(w, b.String())
}

// Piece -> unicode glyph
func pieceGlyph(p base.Piece) string {
	if p.Color() == base.White {
		switch p.Type() {
		case base.King:
			return "♔"
		case base.Queen:
			return "♕"
		case base.Rook:
			return "♖"
		case base.Bishop:
			return "♗"
		case base.Knight:
			return "♘"
		case base.Pawn:
			return "♙"
		}
	} else {
		switch p.Type() {
		case base.King:
			return "♚"
		case base.Queen:
			return "♛"
		case base.Rook:
			return "♜"
		case base.Bishop:
			return "♝"
		case base.Knight:
			return "♞"
		case base.Pawn:
			return "♟"
		}
	}
	return "?"
}

// PrintBoard draws the grid with ANSI colors. Row 0 is printed on top with
// rank label 8.
func PrintBoard(w io.Writer, b *base.Board) {
	// ANSI-code
	const (
		reset   = "\033[0m"
		lightBg = "\033[47m"
		darkBg  = "\033[100m"
		whiteF  = "\033[97m"
		blackF  = "\033[30m"
		dimF    = "\033[90m"
	)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	for row := 0; row < base.BoardHeight; row++ {
		rank := base.BoardHeight - row
		fmt.Fprintf(w, "%d ", rank)
		for col := 0; col < base.BoardWidth; col++ {
			p, ok := b.At(row, col)
			g := " "
			if ok {
				g = pieceGlyph(p)
			}

			var bg, fg string
			if (row+col)%2 == 0 {
				bg = lightBg
			} else {
				bg = darkBg
			}
			switch {
			case !ok:
				fg = dimF
			case p.Color() == base.White && bg == darkBg:
				fg = whiteF
			default:
				fg = blackF
			}

			fmt.Fprintf(w, "%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Fprintf(w, " %d\n", rank)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(w)
}
