package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartingBoardSetup(t *testing.T) {
	b := NewStartingBoard()

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, pt := range backRank {
		black := b.PieceAt(pos(0, col))
		require.NotNil(t, black)
		assert.Equal(t, pt, black.Type)
		assert.Equal(t, Black, black.Color)

		white := b.PieceAt(pos(7, col))
		require.NotNil(t, white)
		assert.Equal(t, pt, white.Type)
		assert.Equal(t, White, white.Color)
	}
	for col := 0; col < BoardSize; col++ {
		assert.Equal(t, Pawn, b.PieceAt(pos(1, col)).Type)
		assert.Equal(t, Pawn, b.PieceAt(pos(6, col)).Type)
	}
	assert.Len(t, b.Pieces(White), 16)
	assert.Len(t, b.Pieces(Black), 16)
}

func TestOutOfRangeAccessIsHarmless(t *testing.T) {
	b := NewStartingBoard()

	assert.Nil(t, b.PieceAt(pos(-1, 0)))
	assert.Nil(t, b.PieceAt(pos(0, 8)))
	assert.True(t, b.IsEmpty(pos(9, 9)))
	b.SetPiece(pos(-3, 12), &Piece{Type: Queen, Color: White})

	assert.False(t, b.IsValidPos(pos(8, 0)))
	assert.True(t, b.IsValidPos(pos(0, 0)))
	assert.True(t, b.IsValidPos(pos(7, 7)))
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewStartingBoard()
	clone := b.Clone()

	// Applying identical moves keeps the boards equal square by square.
	apply := func(board *Board, from, to Position) {
		board.SetPiece(to, board.PieceAt(from))
		board.SetPiece(from, nil)
	}
	apply(b, pos(6, 4), pos(4, 4))
	apply(clone, pos(6, 4), pos(4, 4))
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			orig := b.PieceAt(pos(row, col))
			copied := clone.PieceAt(pos(row, col))
			if orig == nil {
				assert.Nil(t, copied)
				continue
			}
			require.NotNil(t, copied)
			assert.Equal(t, *orig, *copied)
			assert.NotSame(t, orig, copied, "clone must not alias the original's pieces")
		}
	}

	// Mutating the clone never touches the original.
	clone.SetPiece(pos(0, 0), nil)
	clone.PieceAt(pos(0, 4)).HasMoved = true
	assert.NotNil(t, b.PieceAt(pos(0, 0)))
	assert.False(t, b.PieceAt(pos(0, 4)).HasMoved)
}

func TestVisibleSquaresIncludeOwnPieces(t *testing.T) {
	b := NewStartingBoard()
	visible := b.VisibleSquares(White)

	for _, pp := range b.Pieces(White) {
		assert.True(t, visible[pp.Pos], "own square %v must be visible", pp.Pos)
	}
}

func TestVisibleSquaresFogAtStart(t *testing.T) {
	b := NewStartingBoard()
	visible := b.VisibleSquares(White)

	// Black's back rank is out of sight from the starting position.
	for col := 0; col < BoardSize; col++ {
		assert.False(t, visible[pos(0, col)])
	}
	// White pawns see one and two squares ahead.
	assert.True(t, visible[pos(5, 3)])
	assert.True(t, visible[pos(4, 3)])
	assert.False(t, visible[pos(3, 3)])
}

func TestVisibilityNotCachedAcrossMutations(t *testing.T) {
	b := NewBoard()
	rook := &Piece{Type: Rook, Color: White}
	b.SetPiece(pos(4, 4), rook)

	visible := b.VisibleSquares(White)
	assert.True(t, visible[pos(4, 7)])

	b.SetPiece(pos(4, 6), &Piece{Type: Pawn, Color: Black})
	visible = b.VisibleSquares(White)
	assert.False(t, visible[pos(4, 7)], "a new blocker must darken the ray immediately")
}
