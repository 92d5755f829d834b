package hashing

import (
	"testing"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/engine"
	"github.com/lgbarn/boardstate-go/internal/notation"
)

// play replays a move line from the initial position.
func play(t *testing.T, line string) *chess.Board {
	t.Helper()
	board := chess.NewInitialBoard()
	moves, err := notation.ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine(%q): %v", line, err)
	}
	for _, m := range moves {
		move, err := notation.Resolve(board, m)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", m, err)
		}
		if err := engine.ApplyMove(board, move); err != nil {
			t.Fatalf("ApplyMove(%s): %v", m, err)
		}
	}
	return board
}

func TestPositionKeyConsistency(t *testing.T) {
	// Create two identical boards and verify they produce the same key
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	if PositionKey(board1) != PositionKey(board2) {
		t.Errorf("Identical boards produced different keys: %x != %x", PositionKey(board1), PositionKey(board2))
	}
}

func TestPositionKeyDifferentPositions(t *testing.T) {
	if PositionKey(chess.NewInitialBoard()) == PositionKey(play(t, "e2e4")) {
		t.Error("Different positions produced the same key")
	}
}

func TestPositionKeyIgnoresCounters(t *testing.T) {
	// The knights go out and come back: same position, different clocks.
	board := play(t, "g1f3 g8f6 f3g1 f6g8")
	if board.HalfmoveClock != 4 {
		t.Fatalf("HalfmoveClock = %d, want 4", board.HalfmoveClock)
	}
	if PositionKey(board) != PositionKey(chess.NewInitialBoard()) {
		t.Error("Repeated position produced a different key")
	}
}

func TestPositionKeyEnPassant(t *testing.T) {
	// Same placement and side to move; only the first has an en-passant target.
	direct := play(t, "e2e4 e7e5")
	slow := play(t, "e2e3 e7e6 e3e4 e6e5")

	if PositionKey(direct) == PositionKey(slow) {
		t.Error("En-passant target did not affect the key")
	}
}

func TestPositionKeyCastling(t *testing.T) {
	withRights, err := engine.NewBoardFromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	withoutRights, err := engine.NewBoardFromFEN("4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if PositionKey(withRights) == PositionKey(withoutRights) {
		t.Error("Castling rights did not affect the key")
	}
}

func TestSideToMoveAffectsKey(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board1.ToMove = chess.White

	board2 := chess.NewInitialBoard()
	board2.ToMove = chess.Black

	if PositionKey(board1) == PositionKey(board2) {
		t.Error("Same position with different side to move should have different keys")
	}
}

func TestMaterialSignature(t *testing.T) {
	initial := MaterialSignature(chess.NewInitialBoard())
	if initial != MaterialSignature(play(t, "e2e4 e7e5")) {
		t.Error("Material signature changed without a capture")
	}
	if initial == MaterialSignature(play(t, "e2e4 d7d5 e4d5")) {
		t.Error("Material signature unchanged after a capture")
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false)
	board := chess.NewInitialBoard()

	// First game should not be a duplicate
	if _, dup := detector.CheckAndAdd(0, 0, board); dup {
		t.Error("First game was marked as duplicate")
	}

	// Same position should be a duplicate of game 0
	first, dup := detector.CheckAndAdd(1, 4, play(t, "g1f3 g8f6 f3g1 f6g8"))
	if !dup || first != 0 {
		t.Errorf("CheckAndAdd = %d, %v; want 0, true", first, dup)
	}

	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique game, got %d", detector.UniqueCount())
	}
}

func TestDuplicateDetectorExactMatch(t *testing.T) {
	detector := NewDuplicateDetector(true)

	detector.CheckAndAdd(0, 0, chess.NewInitialBoard())
	if _, dup := detector.CheckAndAdd(1, 4, play(t, "g1f3 g8f6 f3g1 f6g8")); dup {
		t.Error("Games with different ply counts matched in exact mode")
	}
	if first, dup := detector.CheckAndAdd(2, 4, play(t, "b1c3 b8c6 c3b1 c6b8")); !dup || first != 1 {
		t.Errorf("CheckAndAdd = %d, %v; want 1, true", first, dup)
	}
}

func TestDuplicateDetectorDifferentGames(t *testing.T) {
	detector := NewDuplicateDetector(false)

	// Neither should be duplicates
	if _, dup := detector.CheckAndAdd(0, 0, chess.NewInitialBoard()); dup {
		t.Error("Game 1 was incorrectly marked as duplicate")
	}
	if _, dup := detector.CheckAndAdd(1, 1, play(t, "e2e4")); dup {
		t.Error("Game 2 was incorrectly marked as duplicate")
	}
	if _, dup := detector.CheckAndAdd(2, 0, nil); dup {
		t.Error("Game without a board was marked as duplicate")
	}

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("Expected 2 unique games, got %d", detector.UniqueCount())
	}
}
