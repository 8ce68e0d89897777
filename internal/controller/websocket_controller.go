package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"
	"github.com/iguridi/fog-of-war-chess/internal/model"
	"github.com/iguridi/fog-of-war-chess/internal/service"
	"github.com/iguridi/fog-of-war-chess/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection runs the read loop for one websocket observer. The
// game pushes a fogged state snapshot on register and after every executed
// move.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals("playerID").(string)
	sock := ws.NewConn(c)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, sock); err != nil {
		log.Printf("register connection: %v", err)
		sock.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse message: %v", err)
			continue
		}

		if err := wsc.handleMessage(gameID, msg); err != nil {
			log.Printf("handle message: %v", err)
			wsc.sendError(sock, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.SimpleMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		result, err := wsc.gameService.HandleMove(gameID, move.From, move.To)
		if err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("move rejected: %s", result.Error)
		}
		return nil
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(sock *ws.Conn, errorMsg string) {
	payload, _ := json.Marshal(errorMsg)
	sock.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: json.RawMessage(payload),
	})
}
