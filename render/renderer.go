package render

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/parameter"
)

// Renderer draws published snapshots to a tcell screen
// Observe is called on the clock goroutine, drawing happens on Run's goroutine
type Renderer struct {
	screen  tcell.Screen
	palette palette

	mu     sync.Mutex
	latest engine.Snapshot
	fresh  bool
}

// NewRenderer creates a renderer, color false draws with terminal default styles
func NewRenderer(screen tcell.Screen, color bool) *Renderer {
	return &Renderer{screen: screen, palette: palette{color: color}}
}

// Observe stores the snapshot for the next frame
func (r *Renderer) Observe(s engine.Snapshot) {
	r.mu.Lock()
	r.latest = s
	r.fresh = true
	r.mu.Unlock()
}

// Run draws the latest snapshot every FrameUpdateInterval until ctx is cancelled
func (r *Renderer) Run(ctx context.Context) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.mu.Lock()
			snap, fresh := r.latest, r.fresh
			r.fresh = false
			r.mu.Unlock()
			if fresh {
				r.Draw(snap)
			}
		}
	}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(s engine.Snapshot) {
	r.screen.Clear()
	w, h := r.screen.Size()
	r.fill(0, 0, w-1, h-1, ' ', r.palette.style(RgbStatusBar, RgbBackground))

	if s.Mode == core.ModeMenu {
		r.drawMenu(s, w, h)
	} else {
		r.drawRoom(s, w, h)
	}
	r.drawStatus(s, w, h)
	r.screen.Show()
}

func (r *Renderer) drawMenu(s engine.Snapshot, w, h int) {
	title := r.palette.style(RgbCompanion, RgbBackground).Bold(true)
	hint := r.palette.style(RgbHint, RgbBackground)

	mid := (h - parameter.StatusRows) / 2
	r.centered(mid-2, w, parameter.MenuTitle, title)
	if s.MoodIndex >= 0 && s.MoodIndex < len(parameter.MoodFaces) {
		r.centered(mid, w, parameter.MoodFaces[s.MoodIndex],
			r.palette.style(r.palette.mood(s.MoodIndex), RgbBackground))
	}
	r.centered(mid+2, w, parameter.MenuHint, hint)
}

func (r *Renderer) drawRoom(s engine.Snapshot, w, h int) {
	vp := NewViewport(s.Room, w, h-parameter.StatusRows)
	floor := r.palette.style(RgbHint, RgbFloor)
	r.fill(0, 0, w-1, h-1-parameter.StatusRows, ' ', floor)

	// Room fixtures first, then characters; within a layer back to front
	views := slices.Clone(s.Entities)
	slices.SortStableFunc(views, func(a, b engine.EntityView) int {
		if la, lb := layer(a.Kind), layer(b.Kind); la != lb {
			return la - lb
		}
		da, db := Depth(a.Position.Y, s.Room.Y), Depth(b.Position.Y, s.Room.Y)
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})

	for _, v := range views {
		switch v.Kind {
		case core.KindWall:
			x0, y0, x1, y1 := vp.Rect(v.Box)
			r.fill(x0, y0, x1, y1, '█', r.palette.style(RgbWall, RgbFloor))
		case core.KindFurniture:
			x0, y0, x1, y1 := vp.Rect(v.Box)
			r.fill(x0, y0, x1, y1, '▒', r.palette.style(RgbFurniture, RgbFloor))
			r.label(x0, y0, x1, v.Name, r.palette.style(RgbStatusBar, RgbFurniture))
		case core.KindProducer:
			x0, y0, x1, y1 := vp.Rect(v.Trigger)
			r.outline(x0, y0, x1, y1, r.palette.style(RgbTrigger, RgbFloor))
			cx, cy := vp.Cell(v.Position.X, v.Position.Y)
			r.screen.SetContent(cx, cy, ItemGlyph(v.Item), nil, r.palette.item(v.Item, RgbFloor))
		case core.KindCompanion:
			cx, cy := vp.Cell(v.Position.X, v.Position.Y)
			r.screen.SetContent(cx, cy, '@', nil, r.palette.style(RgbCompanion, RgbFloor).Bold(true))
			if s.MoodIndex >= 0 && s.MoodIndex < len(parameter.MoodFaces) {
				face := parameter.MoodFaces[s.MoodIndex]
				r.text(cx-len(face)/2, cy-1, face, r.palette.style(r.palette.mood(s.MoodIndex), RgbFloor))
			}
			// Requested item floats above the face
			if s.HasRequest {
				r.text(cx-1, cy-2, fmt.Sprintf("[%c]", ItemGlyph(s.Requested)), r.palette.item(s.Requested, RgbFloor))
			}
		case core.KindPlayer:
			cx, cy := vp.Cell(v.Position.X, v.Position.Y)
			r.screen.SetContent(cx, cy, 'P', nil, r.palette.style(RgbPlayer, RgbFloor).Bold(true))
			if v.HasItem {
				r.screen.SetContent(cx+1, cy, ItemGlyph(v.Item), nil, r.palette.item(v.Item, RgbFloor))
			}
		}
	}
}

func layer(k core.Kind) int {
	if k == core.KindPlayer || k == core.KindCompanion {
		return 1
	}
	return 0
}

func (r *Renderer) drawStatus(s engine.Snapshot, w, h int) {
	row := h - parameter.StatusRows
	bar := r.palette.style(RgbStatusBar, RgbBackground)
	r.fill(0, row, w-1, h-1, ' ', bar)

	x := r.text(0, row, fmt.Sprintf(" %s ", s.Mode), bar.Reverse(true))
	x = r.text(x+1, row, fmt.Sprintf(parameter.HappinessFmt, float64(s.Mood)),
		r.palette.style(r.palette.mood(s.MoodIndex), RgbBackground))

	if s.Carrying {
		x = r.text(x+2, row, "carry:", bar)
		x = r.text(x, row, s.Carried.String(), r.palette.item(s.Carried, RgbBackground))
	}
	if s.HasRequest {
		x = r.text(x+2, row, "wants:", bar)
		x = r.text(x, row, s.Requested.String(), r.palette.item(s.Requested, RgbBackground))
	}
	if s.Gamepads > 0 {
		x = r.text(x+2, row, fmt.Sprintf("pads:%d", s.Gamepads), bar)
	}

	if s.Mode == core.ModeInGame {
		hint := parameter.GameHint
		if start := w - len(hint) - 1; start > x+2 {
			r.text(start, row, hint, r.palette.style(RgbHint, RgbBackground))
		}
	}
}

// text writes str from (x, y) and returns the column after it
func (r *Renderer) text(x, y int, str string, style tcell.Style) int {
	for _, ch := range str {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *Renderer) centered(y, w int, str string, style tcell.Style) {
	r.text((w-len([]rune(str)))/2, y, str, style)
}

// label writes name centred on the top row of a rect if it fits
func (r *Renderer) label(x0, y, x1 int, name string, style tcell.Style) {
	if len(name) > x1-x0+1 {
		return
	}
	r.text(x0+(x1-x0+1-len(name))/2, y, name, style)
}

func (r *Renderer) fill(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) outline(x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y0, '·', nil, style)
		r.screen.SetContent(x, y1, '·', nil, style)
	}
	for y := y0; y <= y1; y++ {
		r.screen.SetContent(x0, y, '·', nil, style)
		r.screen.SetContent(x1, y, '·', nil, style)
	}
}
