package model

var (
	orthogonalDirs = []Position{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	diagonalDirs   = []Position{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	kingDirs       = append(append([]Position{}, orthogonalDirs...), diagonalDirs...)
	knightJumps    = []Position{
		{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1},
		{Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2},
	}
)

func pawnDirection(color Color) int {
	if color == White {
		return -1
	}
	return 1
}

func pawnStartRow(color Color) int {
	if color == White {
		return 6
	}
	return 1
}

func promotionRow(color Color) int {
	if color == White {
		return 0
	}
	return BoardSize - 1
}

// PseudoLegalMoves returns the destinations reachable from pos by
// piece-movement rules alone. There is no king-safety filtering: king
// capture, not checkmate, ends the game.
func (p *Piece) PseudoLegalMoves(pos Position, b *Board, enPassant *Position) []Position {
	switch p.Type {
	case King:
		return p.kingMoves(pos, b)
	case Queen:
		return p.slidingMoves(pos, b, kingDirs)
	case Rook:
		return p.slidingMoves(pos, b, orthogonalDirs)
	case Bishop:
		return p.slidingMoves(pos, b, diagonalDirs)
	case Knight:
		return p.knightMoves(pos, b)
	case Pawn:
		return p.pawnMoves(pos, b, enPassant)
	}
	return nil
}

// VisibleSquares returns the squares the piece currently sees. Not the same
// set as its moves: a pawn's attack diagonals are visible even when empty,
// and a king's castling destinations are moves but not sight.
func (p *Piece) VisibleSquares(pos Position, b *Board) map[Position]bool {
	switch p.Type {
	case King:
		return p.kingVisibility(pos, b)
	case Queen:
		return p.slidingVisibility(pos, b, kingDirs)
	case Rook:
		return p.slidingVisibility(pos, b, orthogonalDirs)
	case Bishop:
		return p.slidingVisibility(pos, b, diagonalDirs)
	case Knight:
		return p.knightVisibility(pos, b)
	case Pawn:
		return p.pawnVisibility(pos, b)
	}
	return nil
}

func (p *Piece) kingMoves(pos Position, b *Board) []Position {
	moves := []Position{}
	for _, dir := range kingDirs {
		target := Position{Row: pos.Row + dir.Row, Col: pos.Col + dir.Col}
		if !b.IsValidPos(target) {
			continue
		}
		if occupant := b.PieceAt(target); occupant == nil || occupant.Color != p.Color {
			moves = append(moves, target)
		}
	}
	if !p.HasMoved && pos.Row == homeRow(p.Color) && pos.Col == 4 {
		moves = append(moves, p.castleMoves(pos, b)...)
	}
	return moves
}

func homeRow(color Color) int {
	if color == White {
		return BoardSize - 1
	}
	return 0
}

// castleMoves adds the two-square king moves when the corresponding rook is
// unmoved and every square strictly between king and rook is empty.
func (p *Piece) castleMoves(pos Position, b *Board) []Position {
	moves := []Position{}
	kingside := b.PieceAt(Position{Row: pos.Row, Col: 7})
	if kingside != nil && kingside.Type == Rook && !kingside.HasMoved &&
		b.IsEmpty(Position{Row: pos.Row, Col: 5}) && b.IsEmpty(Position{Row: pos.Row, Col: 6}) {
		moves = append(moves, Position{Row: pos.Row, Col: 6})
	}
	queenside := b.PieceAt(Position{Row: pos.Row, Col: 0})
	if queenside != nil && queenside.Type == Rook && !queenside.HasMoved &&
		b.IsEmpty(Position{Row: pos.Row, Col: 1}) && b.IsEmpty(Position{Row: pos.Row, Col: 2}) &&
		b.IsEmpty(Position{Row: pos.Row, Col: 3}) {
		moves = append(moves, Position{Row: pos.Row, Col: 2})
	}
	return moves
}

func (p *Piece) kingVisibility(pos Position, b *Board) map[Position]bool {
	visible := make(map[Position]bool)
	for _, dir := range kingDirs {
		target := Position{Row: pos.Row + dir.Row, Col: pos.Col + dir.Col}
		if b.IsValidPos(target) {
			visible[target] = true
		}
	}
	return visible
}

func (p *Piece) knightMoves(pos Position, b *Board) []Position {
	moves := []Position{}
	for _, jump := range knightJumps {
		target := Position{Row: pos.Row + jump.Row, Col: pos.Col + jump.Col}
		if !b.IsValidPos(target) {
			continue
		}
		if occupant := b.PieceAt(target); occupant == nil || occupant.Color != p.Color {
			moves = append(moves, target)
		}
	}
	return moves
}

// Knights jump, so occupancy never blocks their sight.
func (p *Piece) knightVisibility(pos Position, b *Board) map[Position]bool {
	visible := make(map[Position]bool)
	for _, jump := range knightJumps {
		target := Position{Row: pos.Row + jump.Row, Col: pos.Col + jump.Col}
		if b.IsValidPos(target) {
			visible[target] = true
		}
	}
	return visible
}

func (p *Piece) slidingMoves(pos Position, b *Board, dirs []Position) []Position {
	moves := []Position{}
	for _, dir := range dirs {
		target := Position{Row: pos.Row + dir.Row, Col: pos.Col + dir.Col}
		for b.IsValidPos(target) {
			occupant := b.PieceAt(target)
			if occupant == nil {
				moves = append(moves, target)
			} else {
				if occupant.Color != p.Color {
					moves = append(moves, target)
				}
				break
			}
			target = Position{Row: target.Row + dir.Row, Col: target.Col + dir.Col}
		}
	}
	return moves
}

// A ray stays visible up to and including the first occupied square: you can
// see what blocks you.
func (p *Piece) slidingVisibility(pos Position, b *Board, dirs []Position) map[Position]bool {
	visible := make(map[Position]bool)
	for _, dir := range dirs {
		target := Position{Row: pos.Row + dir.Row, Col: pos.Col + dir.Col}
		for b.IsValidPos(target) {
			visible[target] = true
			if !b.IsEmpty(target) {
				break
			}
			target = Position{Row: target.Row + dir.Row, Col: target.Col + dir.Col}
		}
	}
	return visible
}

func (p *Piece) pawnMoves(pos Position, b *Board, enPassant *Position) []Position {
	moves := []Position{}
	dir := pawnDirection(p.Color)
	forward := Position{Row: pos.Row + dir, Col: pos.Col}
	if b.IsValidPos(forward) && b.IsEmpty(forward) {
		moves = append(moves, forward)
		if pos.Row == pawnStartRow(p.Color) {
			double := Position{Row: pos.Row + 2*dir, Col: pos.Col}
			if b.IsValidPos(double) && b.IsEmpty(double) {
				moves = append(moves, double)
			}
		}
	}
	for _, dc := range []int{-1, 1} {
		target := Position{Row: pos.Row + dir, Col: pos.Col + dc}
		if !b.IsValidPos(target) {
			continue
		}
		occupant := b.PieceAt(target)
		if occupant != nil && occupant.Color != p.Color {
			moves = append(moves, target)
		} else if enPassant != nil && target == *enPassant {
			moves = append(moves, target)
		}
	}
	return moves
}

func (p *Piece) pawnVisibility(pos Position, b *Board) map[Position]bool {
	visible := make(map[Position]bool)
	dir := pawnDirection(p.Color)
	forward := Position{Row: pos.Row + dir, Col: pos.Col}
	if b.IsValidPos(forward) {
		visible[forward] = true
		if pos.Row == pawnStartRow(p.Color) {
			double := Position{Row: pos.Row + 2*dir, Col: pos.Col}
			if b.IsValidPos(double) {
				visible[double] = true
			}
		}
	}
	// Attack diagonals are watched even when empty.
	for _, dc := range []int{-1, 1} {
		target := Position{Row: pos.Row + dir, Col: pos.Col + dc}
		if b.IsValidPos(target) {
			visible[target] = true
		}
	}
	return visible
}
