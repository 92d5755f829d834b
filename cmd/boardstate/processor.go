// processor.go - Game replay and output functions
package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/boardstate-go/internal/config"
	"github.com/lgbarn/boardstate-go/internal/engine"
	"github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/hashing"
	"github.com/lgbarn/boardstate-go/internal/notation"
	"github.com/lgbarn/boardstate-go/internal/output"
	"github.com/lgbarn/boardstate-go/internal/processing"
	"github.com/lgbarn/boardstate-go/internal/worker"
)

// maxLineSize bounds a single game line.
const maxLineSize = 1024 * 1024

// runStats counts games for the final report.
type runStats struct {
	total      int
	replayed   int
	failed     int
	duplicates int
	unique     int
}

// readLines returns the game lines of r, skipping blank lines and # comments.
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// replayLine plays one game from the configured start position. The result
// holds the board as it stood after the last legal move.
func replayLine(item worker.WorkItem, cfg *config.Config) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index, Line: item.Line}

	board, err := engine.NewBoardFromFEN(cfg.Replay.StartFEN)
	if err != nil {
		result.Error = err
		return result
	}
	result.Board = board

	tracker := processing.NewTracker(board)
	moves, err := notation.ParseLine(item.Line)
	if err != nil {
		result.Error = err
		result.Analysis = tracker.Finish(board)
		return result
	}

	for i, uci := range moves {
		if cfg.Replay.MaxPlies > 0 && i >= cfg.Replay.MaxPlies {
			break
		}
		move, err := notation.Resolve(board, uci)
		if err == nil {
			err = engine.ApplyMove(board, move)
		}
		if err != nil {
			result.Error = &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: uci.String()}
			break
		}
		result.Plies++
		tracker.Record(board, move)
		if cfg.Output.FENEachMove {
			result.Positions = append(result.Positions, engine.BoardToFEN(board))
		}
	}
	result.Analysis = tracker.Finish(board)

	inCheck, err := engine.IsInCheck(board, board.ToMove)
	if err != nil {
		if result.Error == nil {
			result.Error = err
		}
		return result
	}
	result.InCheck = inCheck
	return result
}

// replayAndWrite replays every line and writes the results in input order.
// With SuppressDuplicates, a game ending in the same position as an earlier
// legal game is counted but not written.
func replayAndWrite(lines []string, cfg *config.Config) (runStats, error) {
	stats := runStats{total: len(lines)}
	writer := output.NewWriter(cfg.OutputFile, cfg)

	var detector *hashing.DuplicateDetector
	if cfg.Output.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(false)
	}

	for _, r := range replayGames(lines, cfg) {
		stats.replayed++
		if r.Error != nil {
			stats.failed++
			cfg.Logf(1, "game %d: %v\n", r.Index+1, r.Error)
		} else {
			cfg.Logf(2, "game %d: %d ply(s)\n", r.Index+1, r.Plies)
		}
		if detector != nil && r.Error == nil {
			if first, dup := detector.CheckAndAdd(r.Index, r.Plies, r.Board); dup {
				cfg.Logf(2, "game %d: same position as game %d\n", r.Index+1, first+1)
				continue
			}
		}
		if err := writer.WriteResult(r); err != nil {
			return stats, err
		}
	}
	if detector != nil {
		stats.duplicates = detector.DuplicateCount()
		stats.unique = detector.UniqueCount()
	}
	return stats, writer.Close()
}

// replayGames replays lines on the worker pool, or in this goroutine when
// only one worker is configured.
func replayGames(lines []string, cfg *config.Config) []worker.ProcessResult {
	if cfg.Workers <= 1 || len(lines) < 2 {
		return replaySequential(lines, cfg)
	}
	return replayParallel(lines, cfg)
}

// replaySequential replays games one after another.
func replaySequential(lines []string, cfg *config.Config) []worker.ProcessResult {
	results := make([]worker.ProcessResult, 0, len(lines))
	for i, line := range lines {
		r := replayLine(worker.WorkItem{Line: line, Index: i}, cfg)
		results = append(results, r)
		if r.Error != nil && cfg.Replay.StopOnError {
			break
		}
	}
	return results
}

// replayParallel replays games on a worker pool. Each game is owned by the
// one worker that replays it.
func replayParallel(lines []string, cfg *config.Config) []worker.ProcessResult {
	bufferSize := len(lines)
	if bufferSize > 100 {
		bufferSize = 100
	}

	var pool *worker.Pool
	replay := func(item worker.WorkItem) worker.ProcessResult {
		r := replayLine(item, cfg)
		if r.Error != nil && cfg.Replay.StopOnError {
			pool.Stop()
		}
		return r
	}
	pool = worker.NewPool(replay, worker.WithWorkers(cfg.Workers), worker.WithBufferSize(bufferSize))
	cfg.Logf(2, "replaying %d game(s) on %d worker(s)\n", len(lines), pool.NumWorkers())
	pool.Start()

	go func() {
		for i, line := range lines {
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem{Line: line, Index: i})
		}
		pool.Close()
	}()

	results := worker.CollectOrdered(pool.Results())
	if cfg.Replay.StopOnError {
		results = untilFirstError(results, lines, cfg)
	}
	return results
}

// untilFirstError cuts ordered results after the first failed game. A stopped
// pool may have skipped earlier games; those are replayed here so the output
// matches a sequential run.
func untilFirstError(results []worker.ProcessResult, lines []string, cfg *config.Config) []worker.ProcessResult {
	out := make([]worker.ProcessResult, 0, len(results))
	next := 0
	for _, r := range results {
		for ; next < r.Index; next++ {
			skipped := replayLine(worker.WorkItem{Line: lines[next], Index: next}, cfg)
			out = append(out, skipped)
			if skipped.Error != nil {
				return out
			}
		}
		out = append(out, r)
		next = r.Index + 1
		if r.Error != nil {
			return out
		}
	}
	return out
}
