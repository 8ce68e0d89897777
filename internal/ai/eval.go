package ai

import (
	"github.com/iguridi/fog-of-war-chess/internal/model"
)

// Material values in centipawns. The king is valued far above all other
// material so that losing it dominates any positional heuristic.
var pieceValues = map[model.PieceType]float64{
	model.Pawn:   100,
	model.Knight: 320,
	model.Bishop: 330,
	model.Rook:   500,
	model.Queen:  900,
	model.King:   20000,
}

const (
	// hiddenPiecePenalty is charged per enemy piece outside our sight.
	// Deliberately coarser than any true piece value: the engine cannot
	// know what it cannot see.
	hiddenPiecePenalty = 120

	// visibilityWeight rewards each square of sightline advantage.
	visibilityWeight = 2
)

// Piece-square tables indexed [row][col] with row 0 at the top of the
// board, oriented for white (home ranks at rows 6-7). Black reads them
// mirrored vertically.
var pieceSquareTables = map[model.PieceType][8][8]float64{
	model.Pawn: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	model.Knight: {
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 0, 0, 0, -20, -40},
		{-30, 0, 10, 15, 15, 10, 0, -30},
		{-30, 5, 15, 20, 20, 15, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	},
	model.Bishop: {
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 10, 10, 10, 10, 10, 10, -10},
		{-10, 5, 0, 0, 0, 0, 5, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	},
	model.Rook: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{0, 0, 0, 5, 5, 0, 0, 0},
	},
	model.Queen: {
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{0, 0, 5, 5, 5, 5, 0, -5},
		{-10, 5, 5, 5, 5, 5, 0, -10},
		{-10, 0, 5, 0, 0, 0, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	},
	model.King: {
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{20, 30, 10, 0, 0, 10, 30, 20},
	},
}

func squareBonus(pt model.PieceType, color model.Color, pos model.Position) float64 {
	table := pieceSquareTables[pt]
	if color == model.White {
		return table[pos.Row][pos.Col]
	}
	return table[model.BoardSize-1-pos.Row][pos.Col]
}

// evaluate scores the board from color's perspective under imperfect
// information: own pieces count at full material plus positional bonus,
// visible enemy pieces count the same against us, and each hidden enemy
// piece costs only a flat penalty. A small term rewards out-seeing the
// opponent.
func evaluate(b *model.Board, color model.Color) float64 {
	visible := b.VisibleSquares(color)
	opponentVisible := b.VisibleSquares(color.Opponent())

	score := 0.0
	for _, pp := range b.Pieces(color) {
		score += pieceValues[pp.Piece.Type] + squareBonus(pp.Piece.Type, pp.Piece.Color, pp.Pos)
	}
	for _, pp := range b.Pieces(color.Opponent()) {
		if visible[pp.Pos] {
			score -= pieceValues[pp.Piece.Type] + squareBonus(pp.Piece.Type, pp.Piece.Color, pp.Pos)
		} else {
			score -= hiddenPiecePenalty
		}
	}
	score += visibilityWeight * float64(len(visible)-len(opponentVisible))
	return score
}
