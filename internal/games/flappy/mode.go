package flappy

// Mode is the state of the flappy state machine.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
