package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iguridi/fog-of-war-chess/internal/model"
)

func TestResetGameKeepsObserverRegistry(t *testing.T) {
	gm := NewGameManager(1)
	gameID := gm.CreateGame()

	before, err := gm.GetGame(gameID)
	require.NoError(t, err)

	after, err := gm.ResetGame(gameID)
	require.NoError(t, err)
	require.NotSame(t, before, after)
	assert.Same(t, before.Connections(), after.Connections(),
		"open websockets must keep receiving state pushes across a reset")

	current, err := gm.GetGame(gameID)
	require.NoError(t, err)
	assert.Same(t, after, current)
}

func TestResetGameUnknownID(t *testing.T) {
	gm := NewGameManager(1)

	_, err := gm.ResetGame("nonexistent")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestMakeMoveUnknownGame(t *testing.T) {
	gm := NewGameManager(1)

	_, err := gm.MakeMove("nonexistent", model.Position{Row: 6, Col: 4}, model.Position{Row: 4, Col: 4})
	assert.ErrorIs(t, err, ErrGameNotFound)
}
