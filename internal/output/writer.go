// Package output writes replayed games as text or JSON.
package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/boardstate-go/internal/config"
	"github.com/lgbarn/boardstate-go/internal/worker"
)

// GameWriter is the interface for writing replay results to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteResult writes a single game to the output.
	WriteResult(r worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by the output format flags.
func NewWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONLines {
		return NewJSONWriterSingle(w, cfg)
	}
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes games as plain text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteResult writes a game in text form.
func (tw *TextWriter) WriteResult(r worker.ProcessResult) error {
	return OutputResult(tw.w, r, tw.cfg)
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately
// as one compact line.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteResult buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(r worker.ProcessResult) error {
	jsonGame := ResultToJSON(r, jw.cfg)
	if jw.single {
		return jw.encode(jsonGame)
	}
	jw.games = append(jw.games, jsonGame)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Games: jw.games})
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	if !jw.single {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
