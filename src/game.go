package src

import (
	"chessboard/src/base"
	"chessboard/src/logx"
	"fmt"
)

// at first use Create* methods; CurrentBoard falls back to the start position
type GameBuilder struct {
	board  *base.Board
	logger logx.Logger
}

func NewBuilderBoard(logger logx.Logger) *GameBuilder {
	return &GameBuilder{board: nil, logger: logger}
}

func (gb *GameBuilder) Logger() logx.Logger {
	return gb.logger
}

func (gb *GameBuilder) CreateClassic() {
	gb.logger.Debug("create classic board")
	gb.board = base.NewBoard()
}

// CreateFromPlacement replaces the current board. On error the previous board
// is kept.
func (gb *GameBuilder) CreateFromPlacement(placement string) error {
	gb.logger.Debugf("create board by placement: %v", placement)
	board, err := base.NewBoardFromPlacement(placement)
	if err != nil {
		gb.logger.Warnf("rejected placement %q: %v", placement, err)
		return fmt.Errorf("error parse placement: %w", err)
	}
	gb.board = board
	return nil
}

// SetPlacement parses into the current board without clearing it first.
func (gb *GameBuilder) SetPlacement(placement string) error {
	gb.logger.Debugf("set placement: %v", placement)
	if gb.board == nil {
		gb.board = &base.Board{}
	}
	if err := gb.board.SetPieces(placement); err != nil {
		gb.logger.Warnf("placement %q left board partially populated: %v", placement, err)
		return fmt.Errorf("error parse placement: %w", err)
	}
	return nil
}

func (gb *GameBuilder) CurrentBoard() *base.Board {
	if gb.board == nil {
		gb.CreateClassic()
	}
	return gb.board
}

func (gb *GameBuilder) Dump() string {
	return gb.CurrentBoard().String()
}

func (gb *GameBuilder) PieceAt(row, col int) (base.Piece, bool) {
	return gb.CurrentBoard().At(row, col)
}

func (gb *GameBuilder) Move(row, col int) error {
	gb.logger.Infof("move piece at (%d, %d)", row, col)
	if err := gb.CurrentBoard().MovePiece(row, col); err != nil {
		gb.logger.Debugf("move rejected: %v", err)
		return err
	}
	return nil
}

func (gb *GameBuilder) ValidMoves() ([]base.Move, error) {
	gb.logger.Debug("call valid moves")
	return gb.CurrentBoard().ValidMoves()
}
