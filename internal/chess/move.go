package chess

// Move is a request to move a piece. It is validated against the board
// before it is trusted.
type Move struct {
	From Position
	To   Position

	// The piece being moved and its colour.
	Piece  Piece
	Colour Colour

	// The piece promoted to (Empty if not specified).
	Promotion Piece
}

// IsDoublePawnPush reports whether the move advances a pawn two rows.
func (m Move) IsDoublePawnPush() bool {
	if m.Piece != Pawn || m.From.Column != m.To.Column {
		return false
	}
	d := m.To.Row - m.From.Row
	return d == 2 || d == -2
}

// IsCastle reports whether the move is a king stepping two columns along
// its row.
func (m Move) IsCastle() bool {
	if m.Piece != King || m.From.Row != m.To.Row {
		return false
	}
	d := m.To.Column - m.From.Column
	return d == 2 || d == -2
}

// IsPromotion reports whether the move brings a pawn to its last row.
func (m Move) IsPromotion() bool {
	return m.Piece == Pawn && m.To.Row == PromotionRow(m.Colour)
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}
