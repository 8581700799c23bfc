package ghelper

import (
	"chessboard/src"
	"chessboard/src/logx"
	"chessboard/ui/gui/gbase"
	"chessboard/ui/gui/gbase/gconf"
	"chessboard/ui/gui/ghelper/gfont"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder *src.GameBuilder
	Fonts   *gfont.FontCache
	Config  *gconf.Config
	Theme   gbase.Palette
	Logx    logx.Logger
}

func NewGUIGameContext(b *src.GameBuilder, f *gfont.FontCache, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder: b,
		Fonts:   f,
		Config:  c,
		Theme:   gbase.PaletteFromString(c.Theme),
		Logx:    l,
	}
}
