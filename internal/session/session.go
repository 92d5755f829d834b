// Package session runs games as long-lived sessions. Each session owns its
// board in a single goroutine; callers talk to it through requests, so a
// board is never touched by two goroutines at once.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/engine"
	"github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/notation"
)

// request is a unit of work run on the session goroutine.
type request struct {
	fn   func(board *chess.Board)
	done chan struct{}
}

// Session is one game in progress.
type Session struct {
	id       string
	board    *chess.Board
	requests chan request
	quit     chan struct{}
	stopped  chan struct{}
	once     sync.Once
}

// New starts a session that owns board. A nil board starts from the
// standard initial position.
func New(id string, board *chess.Board) *Session {
	if board == nil {
		board = chess.NewInitialBoard()
	}
	s := &Session{
		id:       id,
		board:    board,
		requests: make(chan request),
		quit:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go s.run()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) run() {
	defer close(s.stopped)
	for {
		select {
		case req := <-s.requests:
			req.fn(s.board)
			close(req.done)
		case <-s.quit:
			return
		}
	}
}

// do runs fn on the session goroutine and waits for it to finish.
// Once a request has been accepted it always runs to completion, even if
// ctx is cancelled meanwhile.
func (s *Session) do(ctx context.Context, fn func(board *chess.Board)) error {
	req := request{fn: fn, done: make(chan struct{})}
	select {
	case s.requests <- req:
	case <-s.quit:
		return fmt.Errorf("session %s: %w", s.id, errors.ErrSessionClosed)
	case <-ctx.Done():
		return ctx.Err()
	}
	<-req.done
	return nil
}

// Apply validates and commits move.
func (s *Session) Apply(ctx context.Context, move chess.Move) error {
	var applyErr error
	if err := s.do(ctx, func(board *chess.Board) {
		applyErr = engine.ApplyMove(board, move)
	}); err != nil {
		return err
	}
	return applyErr
}

// ApplyText parses a long algebraic move, resolves it against the current
// position and commits it.
func (s *Session) ApplyText(ctx context.Context, text string) (chess.Move, error) {
	m, err := notation.ParseMove(text)
	if err != nil {
		return chess.Move{}, err
	}

	var move chess.Move
	var applyErr error
	if err := s.do(ctx, func(board *chess.Board) {
		move, applyErr = notation.Resolve(board, m)
		if applyErr == nil {
			applyErr = engine.ApplyMove(board, move)
		}
	}); err != nil {
		return chess.Move{}, err
	}
	if applyErr != nil {
		return chess.Move{}, applyErr
	}
	return move, nil
}

// Validate reports whether move would be accepted, without committing it.
func (s *Session) Validate(ctx context.Context, move chess.Move) error {
	var validErr error
	if err := s.do(ctx, func(board *chess.Board) {
		validErr = engine.ValidateMove(board, move)
	}); err != nil {
		return err
	}
	return validErr
}

// FEN returns the current position as a FEN string.
func (s *Session) FEN(ctx context.Context) (string, error) {
	var fen string
	err := s.do(ctx, func(board *chess.Board) {
		fen = engine.BoardToFEN(board)
	})
	return fen, err
}

// InCheck reports whether colour's king is attacked.
func (s *Session) InCheck(ctx context.Context, colour chess.Colour) (bool, error) {
	var inCheck bool
	var checkErr error
	if err := s.do(ctx, func(board *chess.Board) {
		inCheck, checkErr = engine.IsInCheck(board, colour)
	}); err != nil {
		return false, err
	}
	return inCheck, checkErr
}

// History returns the committed moves, oldest first.
func (s *Session) History(ctx context.Context) ([]chess.Move, error) {
	var history []chess.Move
	err := s.do(ctx, func(board *chess.Board) {
		history = append([]chess.Move(nil), board.History...)
	})
	return history, err
}

// Snapshot returns a deep copy of the board.
func (s *Session) Snapshot(ctx context.Context) (*chess.Board, error) {
	var board *chess.Board
	err := s.do(ctx, func(b *chess.Board) {
		board = b.Copy()
	})
	return board, err
}

// Close stops the session goroutine. Closing twice returns ErrSessionClosed.
func (s *Session) Close() error {
	closed := false
	s.once.Do(func() {
		close(s.quit)
		closed = true
	})
	<-s.stopped
	if !closed {
		return fmt.Errorf("session %s: %w", s.id, errors.ErrSessionClosed)
	}
	return nil
}
