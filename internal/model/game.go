package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/iguridi/fog-of-war-chess/internal/ws"
)

// Move-attempt error taxonomy. All recoverable; controllers surface them as
// structured results, never as transport failures.
var (
	ErrGameOver    = errors.New("game is over")
	ErrWrongTurn   = errors.New("not your turn")
	ErrNoPiece     = errors.New("no valid piece at that position")
	ErrIllegalMove = errors.New("invalid move")
)

// MovePicker chooses a reply for the computer-controlled side. A nil result
// means the side has no move and passes.
type MovePicker interface {
	GetMove(board *Board, color Color) *SimpleMove
}

// GameConnections tracks the websocket connections observing one game.
type GameConnections struct {
	connections map[string]*ws.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*ws.Conn),
	}
}

// Count reports how many observers are registered.
func (gc *GameConnections) Count() int {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	return len(gc.connections)
}

// Game owns the authoritative board for one session. The search AI only
// ever receives clones of it; nothing outside executeMove mutates it.
type Game struct {
	ID string

	mu              sync.Mutex
	board           *Board
	turn            Color
	gameOver        bool
	winner          *Color
	lastMove        *SimpleMove
	enPassantTarget *Position
	moveHistory     []HistoryPly

	aiColor Color
	picker  MovePicker

	whiteClock *Clock
	blackClock *Clock

	connections *GameConnections
}

// NewGame sets up the standard starting position with the given picker
// playing black.
func NewGame(id string, picker MovePicker) *Game {
	g := &Game{
		ID:          id,
		board:       NewStartingBoard(),
		turn:        White,
		moveHistory: make([]HistoryPly, 0),
		aiColor:     Black,
		picker:      picker,
		whiteClock:  NewClock(),
		blackClock:  NewClock(),
		connections: NewGameConnections(),
	}
	g.whiteClock.Start()
	return g
}

func (g *Game) clockFor(color Color) *Clock {
	if color == White {
		return g.whiteClock
	}
	return g.blackClock
}

// AttemptMove validates and executes a human move, then drives the AI reply
// through the same execution path. The returned move is the AI's reply, if
// one was executed.
func (g *Game) AttemptMove(from, to Position) (*SimpleMove, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver {
		return nil, ErrGameOver
	}
	if g.turn == g.aiColor {
		return nil, ErrWrongTurn
	}
	piece := g.board.PieceAt(from)
	if piece == nil || piece.Color != g.turn {
		return nil, ErrNoPiece
	}
	legal := false
	for _, dest := range piece.PseudoLegalMoves(from, g.board, g.enPassantTarget) {
		if dest == to {
			legal = true
			break
		}
	}
	if !legal {
		return nil, ErrIllegalMove
	}

	g.clockFor(g.turn).Stop()
	g.executeMove(from, to)

	if g.gameOver {
		g.broadcastAsync()
		return nil, nil
	}

	g.turn = g.aiColor
	var aiMove *SimpleMove
	if g.picker != nil {
		g.clockFor(g.aiColor).Start()
		aiMove = g.picker.GetMove(g.board, g.aiColor)
		g.clockFor(g.aiColor).Stop()
		if aiMove != nil {
			g.executeMove(aiMove.From, aiMove.To)
		}
	}
	if !g.gameOver {
		g.turn = g.aiColor.Opponent()
		g.clockFor(g.turn).Start()
	}

	g.broadcastAsync()
	return aiMove, nil
}

// executeMove applies a move's side effects in a fixed order; en passant
// removal must precede clearing the target, and promotion must follow the
// relocation it replaces.
func (g *Game) executeMove(from, to Position) {
	piece := g.board.PieceAt(from)
	captured := g.board.PieceAt(to)
	epCapture := piece.Type == Pawn && g.enPassantTarget != nil && to == *g.enPassantTarget
	notation := g.notation(from, to, piece, captured != nil || epCapture)

	if captured != nil && captured.Type == King {
		g.endGame(piece.Color)
	}

	// En passant removes a pawn from a square other than the destination,
	// so the king check repeats there.
	if epCapture {
		capturedPos := Position{Row: from.Row, Col: to.Col}
		if victim := g.board.PieceAt(capturedPos); victim != nil {
			if victim.Type == King {
				g.endGame(piece.Color)
			}
			g.board.SetPiece(capturedPos, nil)
		}
	}

	g.enPassantTarget = nil
	if piece.Type == Pawn && abs(to.Row-from.Row) == 2 {
		g.enPassantTarget = &Position{Row: from.Row + pawnDirection(piece.Color), Col: from.Col}
	}

	if piece.Type == King && abs(to.Col-from.Col) == 2 {
		notation = g.relocateCastleRook(from, to)
	}

	g.board.SetPiece(to, piece)
	g.board.SetPiece(from, nil)
	piece.HasMoved = true

	// Auto-queen; there is no under-promotion choice.
	if piece.Type == Pawn && to.Row == promotionRow(piece.Color) {
		g.board.SetPiece(to, &Piece{Type: Queen, Color: piece.Color, HasMoved: true})
	}

	g.lastMove = &SimpleMove{From: from, To: to}
	g.moveHistory = append(g.moveHistory, HistoryPly{
		From:     from,
		To:       to,
		Color:    piece.Color,
		Notation: notation,
	})
}

// relocateCastleRook moves the rook next to the king's destination and
// returns the castle notation.
func (g *Game) relocateCastleRook(from, to Position) string {
	switch to.Col {
	case 2:
		rook := g.board.PieceAt(Position{Row: from.Row, Col: 0})
		g.board.SetPiece(Position{Row: from.Row, Col: 0}, nil)
		g.board.SetPiece(Position{Row: from.Row, Col: 3}, rook)
		if rook != nil {
			rook.HasMoved = true
		}
		return "O-O-O"
	case 6:
		rook := g.board.PieceAt(Position{Row: from.Row, Col: 7})
		g.board.SetPiece(Position{Row: from.Row, Col: 7}, nil)
		g.board.SetPiece(Position{Row: from.Row, Col: 5}, rook)
		if rook != nil {
			rook.HasMoved = true
		}
		return "O-O"
	}
	return ""
}

func (g *Game) endGame(winner Color) {
	g.gameOver = true
	w := winner
	g.winner = &w
	g.whiteClock.Stop()
	g.blackClock.Stop()
}

func (g *Game) notation(from, to Position, piece *Piece, capture bool) string {
	captureMark := ""
	if capture {
		captureMark = "x"
	}
	fileSpec := ""
	if piece.Type == Pawn && from.Col != to.Col {
		fileSpec = from.getFileNotation()
	}
	return fmt.Sprintf("%s%s%s%s", piece.Type.getPieceNotation(), fileSpec, captureMark, to.getSquareNotation())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// VisibleState projects the game for one viewer with fog applied: squares
// outside the viewer's sight render as "fog" regardless of occupancy.
func (g *Game) VisibleState(viewer Color) VisibleState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.visibleState(viewer)
}

func (g *Game) visibleState(viewer Color) VisibleState {
	visible := g.board.VisibleSquares(viewer)

	grid := make([][]any, BoardSize)
	for row := 0; row < BoardSize; row++ {
		grid[row] = make([]any, BoardSize)
		for col := 0; col < BoardSize; col++ {
			pos := Position{Row: row, Col: col}
			if !visible[pos] {
				grid[row][col] = "fog"
				continue
			}
			if piece := g.board.PieceAt(pos); piece != nil {
				grid[row][col] = VisiblePiece{
					Type:   piece.Type,
					Color:  piece.Color,
					Symbol: piece.Symbol(),
				}
			}
		}
	}

	history := make([]HistoryPly, len(g.moveHistory))
	copy(history, g.moveHistory)

	return VisibleState{
		Board:       grid,
		Turn:        g.turn,
		GameOver:    g.gameOver,
		Winner:      g.winner,
		LastMove:    g.lastMove,
		BoardSize:   BoardSize,
		MoveHistory: history,
		Clocks: ClockState{
			WhiteMs: g.whiteClock.Elapsed().Milliseconds(),
			BlackMs: g.blackClock.Elapsed().Milliseconds(),
		},
	}
}

// Connections returns the game's observer registry.
func (g *Game) Connections() *GameConnections {
	return g.connections
}

// AdoptConnections carries an existing registry over, so observers of a
// replaced game keep receiving state pushes under the same ID.
func (g *Game) AdoptConnections(conns *GameConnections) {
	if conns != nil {
		g.connections = conns
	}
}

// BroadcastState pushes the current fogged snapshot to every observer.
func (g *Game) BroadcastState() {
	state := g.VisibleState(White)
	go g.broadcast(state)
}

// RegisterConnection adds a websocket observer and pushes the current state
// to it.
func (g *Game) RegisterConnection(playerID string, conn *ws.Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	state := g.VisibleState(White)
	go g.broadcast(state)
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, playerID)
}

// broadcastAsync snapshots the white viewer's state under the game lock and
// ships it without holding any lock. Callers must hold g.mu.
func (g *Game) broadcastAsync() {
	state := g.visibleState(White)
	go g.broadcast(state)
}

func (g *Game) broadcast(state VisibleState) {
	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("game %s: marshal state: %v", g.ID, err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Printf("game %s: send state to %s: %v", g.ID, playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
