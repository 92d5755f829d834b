package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithJSONLines writes one JSON object per line instead of an array.
func (b *ConfigBuilder) WithJSONLines(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONLines = enabled
	return b
}

// WithFENEachMove prints a position after every ply.
func (b *ConfigBuilder) WithFENEachMove(enabled bool) *ConfigBuilder {
	b.cfg.Output.FENEachMove = enabled
	return b
}

// WithCheckReport adds check status to each result.
func (b *ConfigBuilder) WithCheckReport(enabled bool) *ConfigBuilder {
	b.cfg.Output.ReportCheck = enabled
	return b
}

// WithHistory includes the applied moves in each result.
func (b *ConfigBuilder) WithHistory(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowHistory = enabled
	return b
}

// WithDrawReport adds draw claims to each result.
func (b *ConfigBuilder) WithDrawReport(enabled bool) *ConfigBuilder {
	b.cfg.Output.ReportDraws = enabled
	return b
}

// WithDuplicateSuppression drops games whose final position was already output.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Output.SuppressDuplicates = enabled
	return b
}

// WithStartFEN sets the position games start from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Replay.StartFEN = fen
	return b
}

// WithPlyLimit stops every game after n plies.
func (b *ConfigBuilder) WithPlyLimit(n int) *ConfigBuilder {
	b.cfg.Replay.MaxPlies = n
	return b
}

// WithStopOnError aborts the run at the first illegal move.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.Replay.StopOnError = enabled
	return b
}

// WithWorkers sets the number of replay goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
