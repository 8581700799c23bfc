package server

import (
	"chessboard/src/logx"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type Server struct {
	app    *fiber.App
	store  *BoardStore
	logger logx.Logger
}

func NewServer(logger logx.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "chessboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
	})
	store := NewBoardStore(logger)

	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Debugf("%s %s -> %d (%s)", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	boards := NewBoardController(store, logger)
	api := app.Group("/api")
	api.Post("/boards", boards.CreateBoard)
	api.Get("/boards/:id", boards.GetBoard)
	api.Put("/boards/:id", boards.SetPlacement)
	api.Delete("/boards/:id", boards.DeleteBoard)
	api.Get("/boards/:id/dump", boards.GetDump)
	api.Get("/boards/:id/squares/:row/:col", boards.GetSquare)
	api.Get("/boards/:id/moves", boards.GetMoves)
	api.Post("/boards/:id/moves", boards.MovePiece)

	wsc := NewWebSocketController(store, logger)
	app.Use("/ws", WebSocketUpgrade())
	app.Get("/ws/boards/:id", websocket.New(wsc.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	return &Server{app: app, store: store, logger: logger}
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	s.logger.Infof("listen on %s", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
