package model

import "fmt"

// BoardSize is the side length of the board grid.
const BoardSize = 8

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

// Piece is a value held by exactly one board square. Clones copy it, never
// alias it.
type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

var whiteSymbols = map[PieceType]string{
	King: "♔", Queen: "♕", Rook: "♖",
	Bishop: "♗", Knight: "♘", Pawn: "♙",
}

var blackSymbols = map[PieceType]string{
	King: "♚", Queen: "♛", Rook: "♜",
	Bishop: "♝", Knight: "♞", Pawn: "♟",
}

// Symbol returns the Unicode glyph for the piece.
func (p *Piece) Symbol() string {
	if p.Color == White {
		return whiteSymbols[p.Type]
	}
	return blackSymbols[p.Type]
}

// Position is a (row, col) square, row 0 at black's back rank.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) getSquareNotation() string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, BoardSize-p.Row)
}

func (p Position) getFileNotation() string {
	return fmt.Sprintf("%c", 'a'+p.Col)
}

// PlacedPiece pairs a piece with the square it occupies.
type PlacedPiece struct {
	Pos   Position
	Piece *Piece
}

// Board is an 8x8 grid owning its pieces.
type Board struct {
	grid [BoardSize][BoardSize]*Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStartingBoard returns a board with the standard chess starting position.
func NewStartingBoard() *Board {
	b := NewBoard()
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, pt := range backRank {
		b.grid[0][col] = &Piece{Type: pt, Color: Black}
		b.grid[7][col] = &Piece{Type: pt, Color: White}
	}
	for col := 0; col < BoardSize; col++ {
		b.grid[1][col] = &Piece{Type: Pawn, Color: Black}
		b.grid[6][col] = &Piece{Type: Pawn, Color: White}
	}
	return b
}

// IsValidPos reports whether pos is on the board.
func (b *Board) IsValidPos(pos Position) bool {
	return pos.Row >= 0 && pos.Row < BoardSize && pos.Col >= 0 && pos.Col < BoardSize
}

// PieceAt returns the piece at pos, or nil for empty or off-board positions.
func (b *Board) PieceAt(pos Position) *Piece {
	if !b.IsValidPos(pos) {
		return nil
	}
	return b.grid[pos.Row][pos.Col]
}

// SetPiece places a piece at pos. Off-board positions are ignored.
func (b *Board) SetPiece(pos Position, piece *Piece) {
	if !b.IsValidPos(pos) {
		return
	}
	b.grid[pos.Row][pos.Col] = piece
}

// IsEmpty reports whether pos holds no piece.
func (b *Board) IsEmpty(pos Position) bool {
	return b.PieceAt(pos) == nil
}

// Pieces returns all pieces of the given color with their positions.
func (b *Board) Pieces(color Color) []PlacedPiece {
	pieces := []PlacedPiece{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.grid[row][col]
			if piece != nil && piece.Color == color {
				pieces = append(pieces, PlacedPiece{Pos: Position{Row: row, Col: col}, Piece: piece})
			}
		}
	}
	return pieces
}

// FindKing returns the square of the given color's king, or nil if it has
// been captured.
func (b *Board) FindKing(color Color) *Position {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.grid[row][col]
			if piece != nil && piece.Type == King && piece.Color == color {
				return &Position{Row: row, Col: col}
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the board for simulation. Pieces are copied
// by value so mutating the clone never touches the original.
func (b *Board) Clone() *Board {
	clone := NewBoard()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if piece := b.grid[row][col]; piece != nil {
				copied := *piece
				clone.grid[row][col] = &copied
			}
		}
	}
	return clone
}

// VisibleSquares returns the union of squares visible to the given color:
// every square a friendly piece occupies plus everything those pieces see.
// Recomputed from scratch on every call; never cached across mutations.
func (b *Board) VisibleSquares(color Color) map[Position]bool {
	visible := make(map[Position]bool)
	for _, pp := range b.Pieces(color) {
		visible[pp.Pos] = true
		for pos := range pp.Piece.VisibleSquares(pp.Pos, b) {
			visible[pos] = true
		}
	}
	return visible
}
