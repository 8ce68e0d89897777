package service

import (
	"github.com/iguridi/fog-of-war-chess/internal/model"
	"github.com/iguridi/fog-of-war-chess/internal/ws"
)

// GameService is the façade the controllers depend on.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() string {
	return gs.gameManager.CreateGame()
}

func (gs *GameService) ResetGame(gameID string) (*model.VisibleState, error) {
	game, err := gs.gameManager.ResetGame(gameID)
	if err != nil {
		return nil, err
	}
	state := game.VisibleState(model.White)
	return &state, nil
}

func (gs *GameService) GetGameState(gameID string) (*model.VisibleState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, from, to model.Position) (*model.MoveResult, error) {
	return gs.gameManager.MakeMove(gameID, from, to)
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn *ws.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}
