package gdraw

import (
	"chessboard/src/base"
	"chessboard/src/logx"
	"chessboard/ui/gui/gbase"
	"chessboard/ui/gui/ghelper"
	"chessboard/ui/gui/ghelper/gclipboard"
	"chessboard/ui/gui/ghelper/gdialog"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const statusFontSize = 14

// GUIBoardDrawer implements Scene
type GUIBoardDrawer struct {
	layout    gbase.BoardLayout
	boardImg  *ebiten.Image
	highlight *ebiten.Image

	pieceFace  font.Face
	statusFace font.Face

	selected    int // -1 or square index
	showFPS     bool
	status      string
	statusColor color.RGBA
}

func NewGUIBoardDrawer(ctx *ghelper.GUIGameContext) (*GUIBoardDrawer, error) {
	layout := gbase.NewBoardLayout(ctx.Config.WindowW, ctx.Config.WindowH)
	pieceFace, err := ctx.Fonts.Face(float64(layout.Square) * 0.6)
	if err != nil {
		return nil, err
	}
	statusFace, err := ctx.Fonts.Face(statusFontSize)
	if err != nil {
		return nil, err
	}
	return &GUIBoardDrawer{
		layout:      layout,
		boardImg:    ebiten.NewImageFromImage(ghelper.RenderBoard(layout, ctx.Theme)),
		highlight:   ebiten.NewImageFromImage(ghelper.RenderHighlight(layout.Square, ctx.Theme.Accent, 4)),
		pieceFace:   pieceFace,
		statusFace:  statusFace,
		selected:    -1,
		showFPS:     ctx.Config.ShowFPS,
		status:      "F: fps  F3: log level  O: open  C/V: copy/paste  R: reset  Esc: quit",
		statusColor: ctx.Theme.Text,
	}, nil
}

func (bd *GUIBoardDrawer) setStatus(ctx *ghelper.GUIGameContext, msg string, isErr bool) {
	bd.status = msg
	bd.statusColor = ctx.Theme.Text
	if isErr {
		bd.statusColor = ctx.Theme.Accent
	}
}

func (bd *GUIBoardDrawer) Update(ctx *ghelper.GUIGameContext) error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return gbase.ErrExit
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		if t, ok := ctx.Logx.(logx.LevelToggler); ok {
			t.ToggleLevel()
			bd.setStatus(ctx, "logging level: "+t.Level().CapitalString(), false)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		bd.showFPS = !bd.showFPS
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		ctx.Builder.CreateClassic()
		bd.selected = -1
		bd.setStatus(ctx, "start position", false)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		bd.openPlacement(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if err := gclipboard.WriteAll(ctx.Builder.Dump()); err != nil {
			bd.setStatus(ctx, err.Error(), true)
		} else {
			bd.setStatus(ctx, "board dump copied", false)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		data, err := gclipboard.ReadAll()
		if err != nil {
			bd.setStatus(ctx, err.Error(), true)
			break
		}
		bd.loadPlacement(ctx, data, "clipboard")
	}

	x, y := ebiten.CursorPosition()
	row, col, inside := bd.layout.SquareAt(x, y)
	if !inside {
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		bd.selected = row*base.BoardWidth + col
		if p, ok := ctx.Builder.PieceAt(row, col); ok {
			bd.setStatus(ctx, fmt.Sprintf("(%d, %d): %s", row, col, p), false)
		} else {
			bd.setStatus(ctx, fmt.Sprintf("(%d, %d): empty", row, col), false)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if err := ctx.Builder.Move(row, col); err != nil {
			bd.setStatus(ctx, err.Error(), true)
		}
	}
	return nil
}

func (bd *GUIBoardDrawer) openPlacement(ctx *ghelper.GUIGameContext) {
	res, err := gdialog.OpenFile("Open placement")
	if errors.Is(err, gdialog.ErrCancelled) {
		return
	}
	if err != nil {
		ctx.Logx.Errorf("error open file: %v", err)
		bd.setStatus(ctx, err.Error(), true)
		return
	}
	bd.loadPlacement(ctx, string(res.Data), res.Name)
}

// loadPlacement uses the first field of data, so both bare placements and
// full FEN lines work.
func (bd *GUIBoardDrawer) loadPlacement(ctx *ghelper.GUIGameContext, data, source string) {
	fields := strings.Fields(data)
	if len(fields) == 0 {
		bd.setStatus(ctx, source+": no placement", true)
		return
	}
	if err := ctx.Builder.CreateFromPlacement(fields[0]); err != nil {
		bd.setStatus(ctx, err.Error(), true)
		return
	}
	bd.selected = -1
	bd.setStatus(ctx, "loaded "+source, false)
}

func (bd *GUIBoardDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(bd.layout.X), float64(bd.layout.Y))
	screen.DrawImage(bd.boardImg, op)

	if bd.selected >= 0 {
		x, y := bd.layout.SquareOrigin(bd.selected/base.BoardWidth, bd.selected%base.BoardWidth)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(bd.highlight, op)
	}

	for pt, sq := range ctx.Builder.CurrentBoard().Squares() {
		p, ok := sq.Piece()
		if !ok {
			continue
		}
		glyph := ghelper.PieceGlyph(p)
		clr := ctx.Theme.WhitePiece
		if p.Color() == base.Black {
			clr = ctx.Theme.BlackPiece
		}
		x, y := bd.layout.SquareOrigin(int(pt.Row), int(pt.Col))
		bounds := text.BoundString(bd.pieceFace, glyph)
		gx := x + (bd.layout.Square-bounds.Dx())/2 - bounds.Min.X
		gy := y + (bd.layout.Square-bounds.Dy())/2 - bounds.Min.Y
		text.Draw(screen, glyph, bd.pieceFace, gx, gy, clr)
	}

	text.Draw(screen, bd.status, bd.statusFace, bd.layout.X, ctx.Config.WindowH-gbase.StatusH/2, bd.statusColor)

	// debug overlay
	if bd.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}
