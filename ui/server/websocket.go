package server

import (
	"chessboard/src"
	"chessboard/src/logx"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade rejects plain HTTP requests to websocket routes.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}
}

type WebSocketController struct {
	store  *BoardStore
	logger logx.Logger
}

func NewWebSocketController(store *BoardStore, logger logx.Logger) *WebSocketController {
	return &WebSocketController{store: store, logger: logger}
}

func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	boardID := c.Params("id")
	wsc.logger.Debugf("websocket connected to board %s", boardID)
	defer wsc.logger.Debugf("websocket closed for board %s", boardID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg Message
		var reply Message
		if err := json.Unmarshal(message, &msg); err != nil {
			reply = errorMessage(fmt.Errorf("parse error: %w", err))
		} else {
			reply = wsc.handleMessage(boardID, msg)
		}
		if err := c.WriteJSON(reply); err != nil {
			wsc.logger.Warnf("websocket write: %v", err)
			return
		}
	}
}

func (wsc *WebSocketController) handleMessage(boardID string, msg Message) Message {
	switch msg.Type {
	case MessageTypeGet:
	case MessageTypePlacement:
		var placement string
		if err := json.Unmarshal(msg.Payload, &placement); err != nil {
			return errorMessage(fmt.Errorf("placement payload must be a string: %w", err))
		}
		err := wsc.store.With(boardID, func(gb *src.GameBuilder) error {
			return gb.SetPlacement(placement)
		})
		if err != nil {
			return errorMessage(err)
		}
	default:
		return errorMessage(fmt.Errorf("unknown message type: %s", msg.Type))
	}

	view, err := wsc.store.View(boardID)
	if err != nil {
		return errorMessage(err)
	}
	payload, err := json.Marshal(view)
	if err != nil {
		return errorMessage(err)
	}
	return Message{Type: MessageTypeBoard, Payload: payload}
}

func errorMessage(err error) Message {
	payload, _ := json.Marshal(err.Error())
	return Message{Type: MessageTypeError, Payload: payload}
}
