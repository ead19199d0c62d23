package core

// Mode is the outer game mode gating gameplay phases
type Mode uint8

const (
	ModeMenu Mode = iota
	ModeInGame
	modeCount
)

// Valid reports whether m is a member of the closed mode set
func (m Mode) Valid() bool {
	return m < modeCount
}

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeInGame:
		return "in_game"
	default:
		return "invalid"
	}
}
