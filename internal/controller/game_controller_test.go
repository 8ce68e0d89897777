package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iguridi/fog-of-war-chess/internal/middleware"
	"github.com/iguridi/fog-of-war-chess/internal/model"
	"github.com/iguridi/fog-of-war-chess/internal/service"
)

func newTestApp() *fiber.App {
	gameManager := service.NewGameManager(2)
	gameService := service.NewGameService(gameManager)
	gameController := NewGameController(gameService)

	app := fiber.New()
	api := app.Group("/api", middleware.EnsurePlayerID())
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Post("/:gameId/new-game", gameController.NewGame)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Player-ID", "tester")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func createGame(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, body := doRequest(t, app, fiber.MethodPost, "/api/game/create", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created struct {
		GameID string `json:"game_id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.GameID)
	return created.GameID
}

func TestRequiresPlayerID(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(fiber.MethodPost, "/api/game/create", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreateAndFetchState(t *testing.T) {
	app := newTestApp()
	gameID := createGame(t, app)

	resp, body := doRequest(t, app, fiber.MethodGet, "/api/game/"+gameID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var state model.VisibleState
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, model.BoardSize, state.BoardSize)
	assert.Equal(t, model.White, state.Turn)
	assert.False(t, state.GameOver)
	require.Len(t, state.Board, model.BoardSize)
	assert.Equal(t, "fog", state.Board[0][0], "black's back rank starts fogged")
}

func TestStateUnknownGame(t *testing.T) {
	app := newTestApp()

	resp, _ := doRequest(t, app, fiber.MethodGet, "/api/game/nonexistent", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMoveRoundTrip(t *testing.T) {
	app := newTestApp()
	gameID := createGame(t, app)

	move := map[string]model.Position{
		"from": {Row: 6, Col: 4},
		"to":   {Row: 4, Col: 4},
	}
	resp, body := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/game/%s/move", gameID), move)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result model.MoveResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	require.NotNil(t, result.State)
	require.NotNil(t, result.AIMove, "the engine has replies from the start position")
	assert.Equal(t, model.White, result.State.Turn)
	assert.NotEmpty(t, result.State.MoveHistory)
}

func TestMoveRejectedAsStructuredResult(t *testing.T) {
	app := newTestApp()
	gameID := createGame(t, app)

	move := map[string]model.Position{
		"from": {Row: 6, Col: 4},
		"to":   {Row: 3, Col: 4},
	}
	resp, body := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/game/%s/move", gameID), move)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, "rule violations are not transport errors")

	var result model.MoveResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.False(t, result.Success)
	assert.Equal(t, model.ErrIllegalMove.Error(), result.Error)
	assert.Nil(t, result.State)
}

func TestMoveOutOfRangeRejectedAtBoundary(t *testing.T) {
	app := newTestApp()
	gameID := createGame(t, app)

	move := map[string]model.Position{
		"from": {Row: 6, Col: 4},
		"to":   {Row: 8, Col: 4},
	}
	resp, _ := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/game/%s/move", gameID), move)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestNewGameResetsSession(t *testing.T) {
	app := newTestApp()
	gameID := createGame(t, app)

	move := map[string]model.Position{
		"from": {Row: 6, Col: 0},
		"to":   {Row: 5, Col: 0},
	}
	resp, _ := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/game/%s/move", gameID), move)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/game/%s/new-game", gameID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var state model.VisibleState
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, model.White, state.Turn)
	assert.Empty(t, state.MoveHistory)
	assert.False(t, state.GameOver)

	resp, body = doRequest(t, app, fiber.MethodPost, "/api/game/nonexistent/new-game", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, service.ErrGameNotFound.Error(), payload["error"])
}
