// Package config provides configuration for the chessrules command.
package config

import (
	"io"
	"log/slog"
	"os"
)

// Verbosity levels.
const (
	Quiet   = 0 // warnings and errors only
	Normal  = 1 // game events
	Verbose = 2 // every move and rejection
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Board rendering
	Output OutputConfig

	// Move counting runs
	Perft PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		Output:     *NewOutputConfig(),
		Perft:      *NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer the board and prompts go to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the writer log records go to.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// LogLevel maps the verbosity to a slog level.
func (c *Config) LogLevel() slog.Level {
	switch {
	case c.Verbosity <= Quiet:
		return slog.LevelWarn
	case c.Verbosity == Normal:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// NewLogger returns a text logger writing to LogFile at LogLevel.
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(c.LogFile, &slog.HandlerOptions{Level: c.LogLevel()}))
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	return c.Perft.Validate()
}
