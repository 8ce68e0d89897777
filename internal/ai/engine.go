// Package ai implements the fog-limited search opponent: fixed-depth
// minimax with fail-hard alpha-beta pruning over cloned boards.
package ai

import (
	"math"
	"math/rand"
	"time"

	"github.com/iguridi/fog-of-war-chess/internal/model"
)

// DefaultDepth is the search depth in plies.
const DefaultDepth = 3

// Engine is a search-based move picker. It only ever reads the board it is
// handed; every simulated position is an independent clone.
type Engine struct {
	depth int
	rng   *rand.Rand
}

func NewEngine(depth int) *Engine {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &Engine{
		depth: depth,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GetMove returns the best move found for color, or nil when color has no
// moves. Candidate destinations are restricted to squares color can see:
// the engine is fog-limited exactly like a human player.
func (e *Engine) GetMove(b *model.Board, color model.Color) *model.SimpleMove {
	moves := candidateMoves(b, color)
	if len(moves) == 0 {
		return nil
	}

	// King capture ends the game and dominates every heuristic, so it
	// short-circuits the search entirely.
	for _, m := range moves {
		if target := b.PieceAt(m.To); target != nil && target.Type == model.King {
			capture := m
			return &capture
		}
	}

	// Shuffling the root order turns "keep the first strictly-best move"
	// into uniform random tie-breaking.
	e.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	best := moves[0]
	bestScore := math.Inf(-1)
	alpha := math.Inf(-1)
	beta := math.Inf(1)
	for _, m := range moves {
		score := e.minimax(applyMove(b, m), color, color.Opponent(), e.depth-1, alpha, beta)
		if score > bestScore {
			bestScore = score
			best = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return &best
}

// minimax recurses over cloned boards with fail-hard alpha-beta pruning.
// Pruning changes only the nodes visited, never the value returned for the
// chosen line.
func (e *Engine) minimax(b *model.Board, engineColor, toMove model.Color, depth int, alpha, beta float64) float64 {
	// A missing king decides the node regardless of remaining depth.
	if b.FindKing(engineColor.Opponent()) == nil {
		return math.Inf(1)
	}
	if b.FindKing(engineColor) == nil {
		return math.Inf(-1)
	}
	if depth <= 0 {
		return evaluate(b, engineColor)
	}

	moves := allMoves(b, toMove)
	if len(moves) == 0 {
		return evaluate(b, engineColor)
	}

	if toMove == engineColor {
		best := math.Inf(-1)
		for _, m := range moves {
			score := e.minimax(applyMove(b, m), engineColor, toMove.Opponent(), depth-1, alpha, beta)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, m := range moves {
		score := e.minimax(applyMove(b, m), engineColor, toMove.Opponent(), depth-1, alpha, beta)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// applyMove clones the board and applies the move as a plain relocation.
// Castling, en passant and promotion side effects are not simulated inside
// the tree; only real execution in the game applies them.
func applyMove(b *model.Board, m model.SimpleMove) *model.Board {
	clone := b.Clone()
	clone.SetPiece(m.To, clone.PieceAt(m.From))
	clone.SetPiece(m.From, nil)
	return clone
}

// candidateMoves enumerates color's pseudo-legal moves whose destinations
// are within its visible squares.
func candidateMoves(b *model.Board, color model.Color) []model.SimpleMove {
	visible := b.VisibleSquares(color)
	moves := []model.SimpleMove{}
	for _, pp := range b.Pieces(color) {
		for _, to := range pp.Piece.PseudoLegalMoves(pp.Pos, b, nil) {
			if visible[to] {
				moves = append(moves, model.SimpleMove{From: pp.Pos, To: to})
			}
		}
	}
	return moves
}

// allMoves enumerates pseudo-legal moves without the fog restriction, for
// positions deeper in the tree.
func allMoves(b *model.Board, color model.Color) []model.SimpleMove {
	moves := []model.SimpleMove{}
	for _, pp := range b.Pieces(color) {
		for _, to := range pp.Piece.PseudoLegalMoves(pp.Pos, b, nil) {
			moves = append(moves, model.SimpleMove{From: pp.Pos, To: to})
		}
	}
	return moves
}
