package terminal

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/input"
)

// ErrQuit is returned by Pump when the user asks to leave
var ErrQuit = errors.New("quit requested")

// Controls are frontend actions outside the simulated key set
type Controls interface {
	Mode() core.Mode
	StartGame()
	ToggleMute() bool
}

// Pump reads screen events until ctx is cancelled or the user quits
// Key events are mapped through km into tracker; menu keys drive controls
func Pump(ctx context.Context, screen tcell.Screen, tracker *KeyTracker, km KeyMap, controls Controls, log *logrus.Entry) error {
	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if err := handleKey(ev, tracker, km, controls, log); err != nil {
				return err
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventFocus:
			if !ev.Focused {
				tracker.ReleaseAll()
			}
		}
	}
}

func handleKey(ev *tcell.EventKey, tracker *KeyTracker, km KeyMap, controls Controls, log *logrus.Entry) error {
	if ev.Key() == tcell.KeyCtrlC {
		return ErrQuit
	}

	if controls.Mode() == core.ModeMenu {
		switch {
		case ev.Key() == tcell.KeyEnter:
			tracker.ReleaseAll()
			controls.StartGame()
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return ErrQuit
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M'):
			log.WithField("muted", controls.ToggleMute()).Info("mute toggled")
		}
		return nil
	}

	if ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M') {
		if _, bound := km.Runes[ev.Rune()]; !bound {
			log.WithField("muted", controls.ToggleMute()).Info("mute toggled")
			return nil
		}
	}

	if k, ok := km.Lookup(ev); ok {
		tracker.Press(k)
		if k == input.KeyEscape {
			// Held keys must not carry into the next game
			tracker.ReleaseAll()
			tracker.Press(input.KeyEscape)
		}
	}
	return nil
}
