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

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithPerftCache sets the perft cache size; 0 disables it, -1 means unlimited.
func (b *ConfigBuilder) WithPerftCache(size int) *ConfigBuilder {
	b.cfg.Perft.CacheSize = size
	return b
}

// WithPerft requests a move counting run.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithCoordinates controls whether board coordinates are drawn.
func (b *ConfigBuilder) WithCoordinates(show bool) *ConfigBuilder {
	b.cfg.Output.Coordinates = show
	return b
}

// WithEmptySquare sets the character drawn for empty squares.
func (b *ConfigBuilder) WithEmptySquare(c byte) *ConfigBuilder {
	b.cfg.Output.EmptySquare = c
	return b
}

// ShowMoves controls whether legal destinations are listed after a rejected move.
func (b *ConfigBuilder) ShowMoves(show bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = show
	return b
}

// FlipForBlack controls whether the board is drawn from the side to move.
func (b *ConfigBuilder) FlipForBlack(flip bool) *ConfigBuilder {
	b.cfg.Output.FlipForBlack = flip
	return b
}
