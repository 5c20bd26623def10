package config

// OutputConfig holds settings related to board rendering.
type OutputConfig struct {
	// Coordinates prints file letters and rank numbers around the board
	Coordinates bool

	// EmptySquare is the character drawn for an empty square
	EmptySquare byte

	// ShowMoves lists the legal destinations of the piece being moved when a move is rejected
	ShowMoves bool

	// FlipForBlack draws the board from Black's side when Black is to move
	FlipForBlack bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Coordinates: true,
		EmptySquare: '.',
		ShowMoves:   true,
	}
}
