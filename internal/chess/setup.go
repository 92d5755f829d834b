package chess

// backRank lists the pieces of the home row from the a-file to the h-file.
var backRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialLayout returns the standard 32-piece starting layout.
func InitialLayout() []PositionedPiece {
	layout := make([]PositionedPiece, 0, 4*BoardSize)
	for _, colour := range []Colour{White, Black} {
		for col, piece := range backRank {
			layout = append(layout,
				PositionedPiece{Piece: piece, Colour: colour, Position: Position{Row: HomeRow(colour), Column: col}},
				PositionedPiece{Piece: Pawn, Colour: colour, Position: Position{Row: PawnStartRow(colour), Column: col}},
			)
		}
	}
	return layout
}

// SetupInitialPosition resets the board to the standard starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{
		Pieces:     InitialLayout(),
		ToMove:     White,
		MoveNumber: 1,
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}
