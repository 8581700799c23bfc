package ghelper

import (
	"chessboard/src/base"
	"chessboard/ui/gui/gbase"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// RenderBoard draws the checkered background of the grid once; the scene
// reuses it every frame.
func RenderBoard(l gbase.BoardLayout, p gbase.Palette) image.Image {
	size := l.Size()
	sq := float64(l.Square)
	dc := gg.NewContext(size, size)
	for row := 0; row < base.BoardHeight; row++ {
		for col := 0; col < base.BoardWidth; col++ {
			c := p.DarkSquare
			if gbase.IsLightSquare(row, col) {
				c = p.LightSquare
			}
			setRGBA(dc, c)
			dc.DrawRectangle(float64(col)*sq, float64(row)*sq, sq, sq)
			dc.Fill()
		}
	}
	return dc.Image()
}

// RenderHighlight is a square outline for the selected square.
func RenderHighlight(size int, c color.RGBA, strokeW float64) image.Image {
	dc := gg.NewContext(size, size)
	setRGBA(dc, c)
	dc.SetLineWidth(strokeW)
	dc.DrawRoundedRectangle(strokeW/2, strokeW/2, float64(size)-strokeW, float64(size)-strokeW, strokeW)
	dc.Stroke()
	return dc.Image()
}

func setRGBA(dc *gg.Context, c color.RGBA) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}

// PieceGlyph is the letter drawn in the window. Unlike the text dump,
// knights are 'N'/'n' so they can be told apart from kings.
func PieceGlyph(p base.Piece) string {
	var g string
	switch p.Type() {
	case base.King:
		g = "K"
	case base.Queen:
		g = "Q"
	case base.Rook:
		g = "R"
	case base.Bishop:
		g = "B"
	case base.Knight:
		g = "N"
	case base.Pawn:
		g = "P"
	default:
		return "?"
	}
	if p.Color() == base.Black {
		g = string(g[0] + 'a' - 'A')
	}
	return g
}
