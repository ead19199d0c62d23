package engine

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/baobei/core"
)

var ErrInvalidMode = errors.New("invalid mode")

// GameState holds the outer mode
// Mode is atomic: the frontend starts the game from its own goroutine
type GameState struct {
	mode atomic.Uint32
}

// NewGameState starts in ModeMenu
func NewGameState() *GameState {
	gs := &GameState{}
	gs.mode.Store(uint32(core.ModeMenu))
	return gs
}

func (gs *GameState) Mode() core.Mode {
	return core.Mode(gs.mode.Load())
}

// SetMode switches mode; values outside the mode set are rejected
func (gs *GameState) SetMode(m core.Mode) error {
	if !m.Valid() {
		return fmt.Errorf("set mode %d: %w", m, ErrInvalidMode)
	}
	gs.mode.Store(uint32(m))
	return nil
}

// InGame reports whether gameplay phases run
func (gs *GameState) InGame() bool {
	return gs.Mode() == core.ModeInGame
}
