package gui

import (
	"chessboard/src"
	"chessboard/src/logx"
	"chessboard/ui/gui/gbase"
	"chessboard/ui/gui/gbase/gconf"
	"chessboard/ui/gui/gdraw"
	"chessboard/ui/gui/ghelper"
	"chessboard/ui/gui/ghelper/gfont"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	scene gdraw.Scene
	ctx   *ghelper.GUIGameContext
}

func NewGUI(b *src.GameBuilder, cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	fonts, err := gfont.LoadFonts(cfg.FontPath)
	if err != nil {
		return nil, err
	}
	ctx := ghelper.NewGUIGameContext(b, fonts, cfg, logx)
	scene, err := gdraw.NewGUIBoardDrawer(ctx)
	if err != nil {
		fonts.Close()
		return nil, err
	}
	return &GUIProcessing{scene: scene, ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	defer gp.ctx.Fonts.Close()

	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle(gp.ctx.Config.Title)
	ebiten.SetTPS(gp.ctx.Config.TPS)
	gp.ctx.Logx.Infof("open window %dx%d at %d tps", gp.ctx.Config.WindowW, gp.ctx.Config.WindowH, gp.ctx.Config.TPS)

	if err := ebiten.RunGame(gp); err != nil && !errors.Is(err, gbase.ErrExit) {
		return err
	}
	return nil
}

func (gp *GUIProcessing) Update() error {
	return gp.scene.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.scene.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
