// repl.go - Interactive game sessions
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/config"
	"github.com/lgbarn/boardstate-go/internal/engine"
	"github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/notation"
	"github.com/lgbarn/boardstate-go/internal/session"
)

// replCommands documents the interactive commands.
var replCommands = []struct {
	usage string
	help  string
}{
	{"new [fen]", "Start a game, from fen if given, and select it"},
	{"use <id>", "Select an open game"},
	{"list", "List open games"},
	{"move <uci>...", "Apply moves to the selected game"},
	{"fen", "Show the position of the selected game"},
	{"check", "Show whether the side to move is in check"},
	{"history", "List the moves played in the selected game"},
	{"close", "Close the selected game"},
	{"help", "Show this list"},
	{"quit", "Close every game and exit"},
}

// repl holds the state of an interactive run.
type repl struct {
	cfg     *config.Config
	out     io.Writer
	manager *session.Manager
	current *session.Session
}

// runREPL reads commands from in until quit or end of input. Command errors
// are reported on out and do not end the run.
func runREPL(in io.Reader, out io.Writer, cfg *config.Config) error {
	r := &repl{
		cfg:     cfg,
		out:     out,
		manager: session.NewManager(),
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			break
		}
		if err := r.execute(context.Background(), fields[0], fields[1:]); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}

	scanErr := scanner.Err()
	if err := r.manager.CloseAll(); err != nil && scanErr == nil {
		return err
	}
	return scanErr
}

// execute runs one command.
func (r *repl) execute(ctx context.Context, name string, args []string) error {
	switch name {
	case "new":
		return r.newGame(strings.Join(args, " "))
	case "use":
		return r.useGame(args)
	case "list":
		r.listGames()
		return nil
	case "help":
		printREPLHelp(r.out)
		return nil
	}

	if r.current == nil {
		return fmt.Errorf("no game selected, use new: %w", errors.ErrSessionNotFound)
	}

	switch name {
	case "move":
		return r.move(ctx, args)
	case "fen":
		return r.printFEN(ctx)
	case "check":
		return r.printCheck(ctx)
	case "history":
		return r.printHistory(ctx)
	case "close":
		err := r.manager.Close(r.current.ID())
		r.current = nil
		return err
	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

func (r *repl) newGame(fen string) error {
	var board *chess.Board
	if fen != "" {
		b, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			return err
		}
		board = b
	}
	r.current = r.manager.Create(board)
	fmt.Fprintf(r.out, "game %s\n", r.current.ID())
	return nil
}

func (r *repl) useGame(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: use <id>")
	}
	s, err := r.manager.Get(args[0])
	if err != nil {
		return err
	}
	r.current = s
	return nil
}

func (r *repl) listGames() {
	for _, id := range r.manager.IDs() {
		marker := " "
		if r.current != nil && r.current.ID() == id {
			marker = "*"
		}
		fmt.Fprintf(r.out, "%s %s\n", marker, id)
	}
}

// move applies each move in turn and stops at the first one rejected.
func (r *repl) move(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: move <uci>...")
	}
	for _, text := range args {
		m, err := r.current.ApplyText(ctx, text)
		if err != nil {
			return err
		}
		r.cfg.Logf(2, "%s: %s %s\n", r.current.ID(), m.Colour, notation.FormatMove(m))
	}
	return r.printFEN(ctx)
}

func (r *repl) printFEN(ctx context.Context) error {
	fen, err := r.current.FEN(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, fen)
	return nil
}

func (r *repl) printCheck(ctx context.Context) error {
	board, err := r.current.Snapshot(ctx)
	if err != nil {
		return err
	}
	inCheck, err := r.current.InCheck(ctx, board.ToMove)
	if err != nil {
		return err
	}
	answer := "no"
	if inCheck {
		answer = "yes"
	}
	fmt.Fprintf(r.out, "check: %s\n", answer)
	return nil
}

func (r *repl) printHistory(ctx context.Context) error {
	history, err := r.current.History(ctx)
	if err != nil {
		return err
	}
	moves := make([]string, len(history))
	for i, m := range history {
		moves[i] = notation.FormatMove(m)
	}
	fmt.Fprintf(r.out, "moves: %s\n", strings.Join(moves, " "))
	return nil
}
