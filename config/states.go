package config

// PlayerState is the player's movement state.
type PlayerState int

const (
	Idle PlayerState = iota
	Walking
	Jumping
	Falling
	Ramming
)

func (s PlayerState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Walking:
		return "Walking"
	case Jumping:
		return "Jumping"
	case Falling:
		return "Falling"
	case Ramming:
		return "Ramming"
	}
	return "Unknown"
}

// Direction is a horizontal facing or patrol direction.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "Left"
	}
	return "Right"
}

// Sign maps a direction to its signed multiplier: Left is -1, Right is 1.
func Sign(d Direction) float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// Opposite returns the reverse direction.
func Opposite(d Direction) Direction {
	if d == DirectionLeft {
		return DirectionRight
	}
	return DirectionLeft
}

// DirectionOf returns the direction a signed speed points to. Zero maps to
// fallback.
func DirectionOf(speed float64, fallback Direction) Direction {
	switch {
	case speed < 0:
		return DirectionLeft
	case speed > 0:
		return DirectionRight
	}
	return fallback
}

// SessionStatus describes where the game session is.
type SessionStatus int

const (
	StatusPlaying SessionStatus = iota
	StatusLevelComplete
	StatusDead
	StatusWon
)

func (s SessionStatus) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusLevelComplete:
		return "LevelComplete"
	case StatusDead:
		return "Dead"
	case StatusWon:
		return "Won"
	}
	return "Unknown"
}
