package gbase

import (
	"chessboard/src/base"
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	BoardMargin int = 40
	StatusH     int = 24
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg          color.RGBA
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	WhitePiece  color.RGBA
	BlackPiece  color.RGBA
	Text        color.RGBA
	Accent      color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:          color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	LightSquare: color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
	DarkSquare:  color.RGBA{0xb5, 0x88, 0x63, 0xff},
	WhitePiece:  color.RGBA{0xff, 0xff, 0xff, 0xff},
	BlackPiece:  color.RGBA{0x11, 0x11, 0x11, 0xff},
	Text:        color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:      color.RGBA{0x22, 0x88, 0xcc, 0xff},
}

var DarkPalette = Palette{
	Bg:          color.RGBA{0x1e, 0x1f, 0x22, 0xff},
	LightSquare: color.RGBA{0x9e, 0xa3, 0xab, 0xff},
	DarkSquare:  color.RGBA{0x4b, 0x55, 0x63, 0xff},
	WhitePiece:  color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
	BlackPiece:  color.RGBA{0x05, 0x05, 0x05, 0xff},
	Text:        color.RGBA{0xe6, 0xe6, 0xe6, 0xff},
	Accent:      color.RGBA{0x4f, 0xa3, 0xe0, 0xff},
}

// ---- Board layout ----

// BoardLayout places the 8x8 grid centered in the window. Row 0 is drawn on
// top.
type BoardLayout struct {
	X, Y   int // top-left pixel
	Square int // pixel size per square
}

func NewBoardLayout(windowW, windowH int) BoardLayout {
	side := min(windowW, windowH-StatusH) - 2*BoardMargin
	sq := max(side/base.BoardWidth, 1)
	size := sq * base.BoardWidth
	return BoardLayout{
		X:      (windowW - size) / 2,
		Y:      (windowH - StatusH - size) / 2,
		Square: sq,
	}
}

func (l BoardLayout) Size() int {
	return l.Square * base.BoardWidth
}

func (l BoardLayout) SquareOrigin(row, col int) (int, int) {
	return l.X + col*l.Square, l.Y + row*l.Square
}

func (l BoardLayout) SquareAt(px, py int) (row, col int, ok bool) {
	if px < l.X || py < l.Y || px >= l.X+l.Size() || py >= l.Y+l.Size() {
		return 0, 0, false
	}
	return (py - l.Y) / l.Square, (px - l.X) / l.Square, true
}

func IsLightSquare(row, col int) bool {
	return (row+col)%2 == 0
}
