package server

import (
	"chessboard/src"
	"chessboard/src/base"
	"chessboard/src/logx"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type BoardController struct {
	store  *BoardStore
	logger logx.Logger
}

func NewBoardController(store *BoardStore, logger logx.Logger) *BoardController {
	return &BoardController{store: store, logger: logger}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrBoardNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, base.ErrPlacementOutOfBounds):
		return fiber.StatusBadRequest
	case errors.Is(err, base.ErrNotImplemented):
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}

func (bc *BoardController) fail(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		bc.logger.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}

func (bc *BoardController) CreateBoard(c *fiber.Ctx) error {
	var req PlacementRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
	}
	view, err := bc.store.Create(req.Placement)
	if err != nil {
		return bc.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (bc *BoardController) GetBoard(c *fiber.Ctx) error {
	view, err := bc.store.View(c.Params("id"))
	if err != nil {
		return bc.fail(c, err)
	}
	return c.JSON(view)
}

// SetPlacement parses into the existing board; squares the placement does
// not reach keep their pieces.
func (bc *BoardController) SetPlacement(c *fiber.Ctx) error {
	var req PlacementRequest
	if err := c.BodyParser(&req); err != nil || req.Placement == nil {
		return badRequest(c, "placement is required")
	}
	id := c.Params("id")
	err := bc.store.With(id, func(gb *src.GameBuilder) error {
		return gb.SetPlacement(*req.Placement)
	})
	if err != nil {
		return bc.fail(c, err)
	}
	return bc.GetBoard(c)
}

func (bc *BoardController) DeleteBoard(c *fiber.Ctx) error {
	if err := bc.store.Delete(c.Params("id")); err != nil {
		return bc.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (bc *BoardController) GetDump(c *fiber.Ctx) error {
	view, err := bc.store.View(c.Params("id"))
	if err != nil {
		return bc.fail(c, err)
	}
	return c.SendString(view.Dump)
}

func (bc *BoardController) GetSquare(c *fiber.Ctx) error {
	row, err := c.ParamsInt("row")
	if err != nil {
		return badRequest(c, "invalid row")
	}
	col, err := c.ParamsInt("col")
	if err != nil {
		return badRequest(c, "invalid col")
	}
	if !base.IsValidRowCol(row, col) {
		return badRequest(c, "square outside the board")
	}

	var view SquareView
	err = bc.store.With(c.Params("id"), func(gb *src.GameBuilder) error {
		pt := base.Point{Row: uint8(row), Col: uint8(col)}
		view = newSquareView(pt, gb.CurrentBoard().Square(pt))
		return nil
	})
	if err != nil {
		return bc.fail(c, err)
	}
	return c.JSON(view)
}

func (bc *BoardController) GetMoves(c *fiber.Ctx) error {
	var moves []base.Move
	err := bc.store.With(c.Params("id"), func(gb *src.GameBuilder) error {
		var err error
		moves, err = gb.ValidMoves()
		return err
	})
	if err != nil {
		return bc.fail(c, err)
	}
	return c.JSON(fiber.Map{"moves": moves})
}

func (bc *BoardController) MovePiece(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	err := bc.store.With(c.Params("id"), func(gb *src.GameBuilder) error {
		return gb.Move(req.Row, req.Col)
	})
	if err != nil {
		return bc.fail(c, err)
	}
	return bc.GetBoard(c)
}
