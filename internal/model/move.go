package model

// SimpleMove is a from/to square pair.
type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// HistoryPly records one executed half-move.
type HistoryPly struct {
	From     Position `json:"from"`
	To       Position `json:"to"`
	Color    Color    `json:"color"`
	Notation string   `json:"notation"`
}

// VisiblePiece is the client-facing projection of a piece.
type VisiblePiece struct {
	Type   PieceType `json:"type"`
	Color  Color     `json:"color"`
	Symbol string    `json:"symbol"`
}

// ClockState reports cumulative think time per side, in milliseconds.
type ClockState struct {
	WhiteMs int64 `json:"whiteMs"`
	BlackMs int64 `json:"blackMs"`
}

// VisibleState is the game state with fog-of-war applied for one viewer.
// Board cells hold a VisiblePiece, nil for a visible empty square, or the
// string "fog" for squares outside the viewer's sight.
type VisibleState struct {
	Board       [][]any      `json:"board"`
	Turn        Color        `json:"turn"`
	GameOver    bool         `json:"gameOver"`
	Winner      *Color       `json:"winner"`
	LastMove    *SimpleMove  `json:"lastMove"`
	BoardSize   int          `json:"boardSize"`
	MoveHistory []HistoryPly `json:"moveHistory"`
	Clocks      ClockState   `json:"clocks"`
}

// MoveResult is the structured outcome of a move attempt. Rule violations
// surface here as Success=false, never as transport-level failures.
type MoveResult struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	State   *VisibleState `json:"state,omitempty"`
	AIMove  *SimpleMove   `json:"aiMove,omitempty"`
}
