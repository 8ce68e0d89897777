package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/iguridi/fog-of-war-chess/internal/model"
	"github.com/iguridi/fog-of-war-chess/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// moveRequest is the wire shape of a move attempt.
type moveRequest struct {
	From model.Position `json:"from"`
	To   model.Position `json:"to"`
}

func inRange(pos model.Position) bool {
	return pos.Row >= 0 && pos.Row < model.BoardSize && pos.Col >= 0 && pos.Col < model.BoardSize
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID := gc.gameService.CreateGame()

	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch game state",
		})
	}

	return c.JSON(state)
}

// MakeMove validates coordinates at the boundary before the core sees them,
// then returns the structured move result. Rule violations come back as
// success=false with HTTP 200.
func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid move payload",
		})
	}
	if !inRange(req.From) || !inRange(req.To) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Move coordinates out of range",
		})
	}

	result, err := gc.gameService.HandleMove(gameID, req.From, req.To)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to make move",
		})
	}

	return c.JSON(result)
}

func (gc *GameController) NewGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	state, err := gc.gameService.ResetGame(gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset game",
		})
	}

	return c.JSON(state)
}
