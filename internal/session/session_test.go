package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/engine"
	boarderrors "github.com/lgbarn/boardstate-go/internal/errors"
)

func TestSession_ApplyText(t *testing.T) {
	ctx := context.Background()
	s := New("game-1", nil)
	defer s.Close()

	move, err := s.ApplyText(ctx, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, chess.Pawn, move.Piece)
	assert.Equal(t, chess.White, move.Colour)

	fen, err := s.FEN(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2", fen)

	history, err := s.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, move, history[0])
}

func TestSession_RejectsIllegalMoves(t *testing.T) {
	ctx := context.Background()
	s := New("game-1", nil)
	defer s.Close()

	_, err := s.ApplyText(ctx, "e2e5")
	assert.ErrorIs(t, err, boarderrors.ErrIllegalMove)

	_, err = s.ApplyText(ctx, "e4e5")
	assert.ErrorIs(t, err, boarderrors.ErrIllegalMove, "empty source square")

	_, err = s.ApplyText(ctx, "e2")
	assert.ErrorIs(t, err, boarderrors.ErrInvalidMoveText)

	fen, err := s.FEN(ctx)
	require.NoError(t, err)
	assert.Equal(t, engine.InitialFEN, fen)
}

func TestSession_ApplyAndValidate(t *testing.T) {
	ctx := context.Background()
	board, err := engine.NewBoardFromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	s := New("castle", board)
	defer s.Close()

	castle := chess.Move{From: chess.MustPosition(0, 4), To: chess.MustPosition(0, 6), Piece: chess.King, Colour: chess.White}
	require.NoError(t, s.Validate(ctx, castle))
	require.NoError(t, s.Apply(ctx, castle))
	assert.ErrorIs(t, s.Apply(ctx, castle), boarderrors.ErrIllegalMove)

	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	rook, ok := snapshot.PieceAt(chess.MustPosition(0, 5))
	require.True(t, ok)
	assert.Equal(t, chess.Rook, rook.Piece)

	// The snapshot is a copy.
	snapshot.RemovePiece(chess.MustPosition(0, 5))
	fen, err := s.FEN(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4k3/8/8/8/8/8/8/5RK1 b - - 1 2", fen)
}

func TestSession_InCheck(t *testing.T) {
	ctx := context.Background()
	s := New("check", nil)
	defer s.Close()

	for _, text := range []string{"e2e4", "f7f6", "d2d4", "g7g5", "d1h5"} {
		_, err := s.ApplyText(ctx, text)
		require.NoError(t, err, text)
	}

	inCheck, err := s.InCheck(ctx, chess.Black)
	require.NoError(t, err)
	assert.True(t, inCheck)

	inCheck, err = s.InCheck(ctx, chess.White)
	require.NoError(t, err)
	assert.False(t, inCheck)
}

func TestSession_Close(t *testing.T) {
	ctx := context.Background()
	s := New("closing", nil)

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Close(), boarderrors.ErrSessionClosed)

	_, err := s.FEN(ctx)
	assert.ErrorIs(t, err, boarderrors.ErrSessionClosed)
	_, err = s.ApplyText(ctx, "e2e4")
	assert.ErrorIs(t, err, boarderrors.ErrSessionClosed)
}

func TestSession_CancelledContext(t *testing.T) {
	s := New("cancelled", nil)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// With both the request and the cancellation ready either may win, but a
	// cancelled call must never report a different failure.
	_, err := s.FEN(ctx)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestSession_ConcurrentReaders(t *testing.T) {
	ctx := context.Background()
	s := New("busy", nil)
	defer s.Close()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.FEN(ctx)
			assert.NoError(t, err)
			_, err = s.History(ctx)
			assert.NoError(t, err)
		}()
	}

	// Only one of the two racing writers can move the e-pawn.
	applied := 0
	var mu sync.Mutex
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.ApplyText(ctx, "e2e4"); err == nil {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, applied)
}

func TestManager(t *testing.T) {
	ctx := context.Background()
	m := NewManager()

	a := m.Create(nil)
	b := m.Create(nil)
	require.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, m.Len())

	got, err := m.Get(a.ID())
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = a.ApplyText(ctx, "d2d4")
	require.NoError(t, err)
	fenB, err := b.FEN(ctx)
	require.NoError(t, err)
	assert.Equal(t, engine.InitialFEN, fenB, "sessions share no state")

	require.NoError(t, m.Close(a.ID()))
	_, err = m.Get(a.ID())
	assert.ErrorIs(t, err, boarderrors.ErrSessionNotFound)
	assert.ErrorIs(t, m.Close(a.ID()), boarderrors.ErrSessionNotFound)
	assert.Equal(t, []string{b.ID()}, m.IDs())
}

func TestManager_CloseAll(t *testing.T) {
	m := NewManager()
	var sessions []*Session
	for i := 0; i < 3; i++ {
		sessions = append(sessions, m.Create(nil))
	}

	// Two sessions were closed behind the manager's back.
	require.NoError(t, sessions[0].Close())
	require.NoError(t, sessions[2].Close())

	err := m.CloseAll()
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr), "want *multierror.Error, got %T", err)
	assert.Len(t, merr.Errors, 2)
	assert.ErrorIs(t, err, boarderrors.ErrSessionClosed)
	assert.Zero(t, m.Len())

	assert.NoError(t, m.CloseAll(), "nothing left to close")
}

func TestManager_ParallelGames(t *testing.T) {
	ctx := context.Background()
	m := NewManager()
	defer m.CloseAll()

	lines := [][]string{
		{"e2e4", "e7e5", "g1f3"},
		{"d2d4", "d7d5"},
		{"c2c4"},
	}

	var wg sync.WaitGroup
	fens := make([]string, len(lines))
	for i, line := range lines {
		wg.Add(1)
		go func(i int, line []string) {
			defer wg.Done()
			s := m.Create(nil)
			for _, text := range line {
				if _, err := s.ApplyText(ctx, text); err != nil {
					t.Errorf("game %d: %s: %v", i, text, err)
					return
				}
			}
			fen, err := s.FEN(ctx)
			assert.NoError(t, err)
			fens[i] = fen
		}(i, line)
	}
	wg.Wait()

	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 4", fens[0])
	assert.Equal(t, "rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq d6 0 3", fens[1])
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq c3 0 2", fens[2])
}
