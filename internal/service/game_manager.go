package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/iguridi/fog-of-war-chess/internal/ai"
	"github.com/iguridi/fog-of-war-chess/internal/model"
	"github.com/iguridi/fog-of-war-chess/internal/ws"
)

// ErrGameNotFound is returned for unknown game IDs.
var ErrGameNotFound = errors.New("game not found")

// GameManager is the session registry: one Game per ID, each with its own
// search engine. It replaces the original's process-wide singleton game.
type GameManager struct {
	games       map[string]*model.Game
	mu          sync.RWMutex
	searchDepth int
}

func NewGameManager(searchDepth int) *GameManager {
	return &GameManager{
		games:       make(map[string]*model.Game),
		searchDepth: searchDepth,
	}
}

// CreateGame starts a fresh session and returns its ID.
func (gm *GameManager) CreateGame() string {
	gameID := uuid.New().String()

	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.games[gameID] = model.NewGame(gameID, ai.NewEngine(gm.searchDepth))
	return gameID
}

// ResetGame replaces the session's game wholesale with a fresh starting
// position under the same ID. The observer registry moves to the new game
// so open websockets keep receiving state pushes across the reset.
func (gm *GameManager) ResetGame(gameID string) (*model.Game, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	old, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	game := model.NewGame(gameID, ai.NewEngine(gm.searchDepth))
	game.AdoptConnections(old.Connections())
	gm.games[gameID] = game
	game.BroadcastState()
	return game, nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// MakeMove runs a move attempt and shapes the structured result. Rule
// violations are not errors at this layer; only unknown games are.
func (gm *GameManager) MakeMove(gameID string, from, to model.Position) (*model.MoveResult, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}

	aiMove, err := game.AttemptMove(from, to)
	if err != nil {
		return &model.MoveResult{Success: false, Error: err.Error()}, nil
	}

	state := game.VisibleState(model.White)
	return &model.MoveResult{Success: true, State: &state, AIMove: aiMove}, nil
}

func (gm *GameManager) GetGameState(gameID string) (*model.VisibleState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	state := game.VisibleState(model.White)
	return &state, nil
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn *ws.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
