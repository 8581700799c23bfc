package gdraw

import (
	"chessboard/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *ghelper.GUIGameContext) error
	Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image)
}
