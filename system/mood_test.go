package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/status"
	"pgregory.net/rapid"
)

func TestMoodDecaysOnInterval(t *testing.T) {
	h := newHarness(t, nil)
	h.sched.StartGame()

	for i := 0; i < 10; i++ {
		h.tick(noInput, time.Second)
	}
	if got := float64(h.mood()); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Expected mood 0.8 after 10s, got %v", got)
	}
}

func TestMoodDecayCatchesUpOnLongTick(t *testing.T) {
	h := newHarness(t, nil)
	h.sched.StartGame()

	h.tick(noInput, 3500*time.Millisecond)
	if got := float64(h.mood()); math.Abs(got-0.94) > 1e-9 {
		t.Errorf("Expected three decay steps, got mood %v", got)
	}
	// 500ms carried, next 500ms completes the fourth period
	h.tick(noInput, 500*time.Millisecond)
	if got := float64(h.mood()); math.Abs(got-0.92) > 1e-9 {
		t.Errorf("Expected fourth decay step, got mood %v", got)
	}
}

func TestMoodDepletionReportedOnce(t *testing.T) {
	h := newHarness(t, nil)
	h.sched.StartGame()
	h.setMood(0.01)

	h.tick(noInput, time.Second)
	if h.mood() != core.MoodEmpty {
		t.Fatalf("Expected empty mood, got %v", h.mood())
	}
	h.tick(noInput, time.Second)
	h.tick(noInput, time.Second)

	if got := h.stat(status.KeyDepletions); got != 1 {
		t.Errorf("Expected one depletion, got %d", got)
	}
}

// TestMoodStaysClampedInGame drives arbitrary tick lengths and deliveries through the systems
func TestMoodStaysClampedInGame(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := newHarness(t, nil)
		h.sched.StartGame()
		h.place(h.layout.Player, spotCompanion.X, spotCompanion.Y)

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(rt, "deliver") {
				h.carry(h.request())
				h.action(time.Duration(rapid.IntRange(200, 5000).Draw(rt, "ms")) * time.Millisecond)
			} else {
				h.tick(noInput, time.Duration(rapid.IntRange(0, 5000).Draw(rt, "ms"))*time.Millisecond)
			}
			if m := h.mood(); m < core.MoodEmpty || m > core.MoodFull {
				rt.Fatalf("Mood out of bounds: %v", m)
			}
		}
	})
}
