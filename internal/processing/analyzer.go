// Package processing analyses replayed games for draw claims and other
// features of the move sequence.
package processing

import (
	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/engine"
	"github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/hashing"
)

// Half-move clock values for the move-count draw rules.
const (
	fiftyMovePlies       = 100
	seventyFiveMovePlies = 150
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FiftyMoveRule        bool
	SeventyFiveMoveRule  bool
	ThreefoldRepetition  bool
	FivefoldRepetition   bool
	InsufficientMaterial bool
	Underpromotion       bool
	Positions            []uint64 // Position keys, start position first
}

// Claims names the draw rules the game reached, in a fixed order.
func (ga *GameAnalysis) Claims() []string {
	var claims []string
	if ga.FiftyMoveRule {
		claims = append(claims, "fifty-move")
	}
	if ga.SeventyFiveMoveRule {
		claims = append(claims, "seventy-five-move")
	}
	if ga.ThreefoldRepetition {
		claims = append(claims, "threefold")
	}
	if ga.FivefoldRepetition {
		claims = append(claims, "fivefold")
	}
	if ga.InsufficientMaterial {
		claims = append(claims, "insufficient-material")
	}
	return claims
}

// Tracker builds a GameAnalysis one ply at a time.
type Tracker struct {
	analysis      GameAnalysis
	positionCount map[uint64]int
}

// NewTracker starts tracking from the given position.
func NewTracker(start *chess.Board) *Tracker {
	key := hashing.PositionKey(start)
	return &Tracker{
		analysis:      GameAnalysis{Positions: []uint64{key}},
		positionCount: map[uint64]int{key: 1},
	}
}

// Record notes a move that was just applied to board.
func (t *Tracker) Record(board *chess.Board, move chess.Move) {
	if board.HalfmoveClock >= fiftyMovePlies {
		t.analysis.FiftyMoveRule = true
	}
	if board.HalfmoveClock >= seventyFiveMovePlies {
		t.analysis.SeventyFiveMoveRule = true
	}

	if move.Promotion != chess.Empty && move.Promotion != chess.Queen {
		t.analysis.Underpromotion = true
	}

	key := hashing.PositionKey(board)
	t.analysis.Positions = append(t.analysis.Positions, key)
	t.positionCount[key]++

	switch n := t.positionCount[key]; {
	case n >= 5:
		t.analysis.FivefoldRepetition = true
		fallthrough
	case n >= 3:
		t.analysis.ThreefoldRepetition = true
	}
}

// Finish completes the analysis at the final position.
func (t *Tracker) Finish(board *chess.Board) *GameAnalysis {
	t.analysis.InsufficientMaterial = HasInsufficientMaterial(board)
	analysis := t.analysis
	return &analysis
}

// AnalyzeMoves replays moves on a copy of start and analyses the game. It
// stops at the first rejected move and returns the board as it stood then.
func AnalyzeMoves(start *chess.Board, moves []chess.Move) (*chess.Board, *GameAnalysis, error) {
	board := start.Copy()
	tracker := NewTracker(board)

	for i, move := range moves {
		if err := engine.ApplyMove(board, move); err != nil {
			return board, tracker.Finish(board), &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: move.String()}
		}
		tracker.Record(board, move)
	}
	return board, tracker.Finish(board), nil
}

// HasInsufficientMaterial reports whether neither side can possibly mate:
// bare kings, a single minor piece, or bishops that all stand on squares of
// one colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	knights, bishops := 0, 0
	lightBishops, darkBishops := 0, 0

	for _, p := range board.Pieces {
		switch p.Piece {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Knight:
			knights++
		case chess.Bishop:
			bishops++
			if (p.Position.Row+p.Position.Column)%2 == 0 {
				darkBishops++
			} else {
				lightBishops++
			}
		}
	}

	switch {
	case knights+bishops <= 1:
		return true
	case knights == 0:
		return lightBishops == 0 || darkBishops == 0
	default:
		return false
	}
}
