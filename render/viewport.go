package render

import (
	"math"

	"github.com/lixenwraith/baobei/parameter"
	"github.com/lixenwraith/baobei/vmath"
)

// Depth is the presentation layer of a room point, lower rows sit in front
// Returns DepthRange at y=0 falling to 0 at the top of the room
func Depth(y, roomHeight float64) float64 {
	if roomHeight <= 0 {
		return 0
	}
	return parameter.DepthRange - y*parameter.DepthRange/roomHeight
}

// Viewport maps room units to terminal cells
// Room origin is bottom-left with +Y up; terminal rows grow downward
type Viewport struct {
	Room       vmath.Vec2F
	Cols, Rows int
	OffsetX    int
	OffsetY    int
}

// NewViewport fits the room into a cols x rows area
func NewViewport(room vmath.Vec2F, cols, rows int) Viewport {
	return Viewport{Room: room, Cols: max(cols, 1), Rows: max(rows, 1)}
}

// Cell returns the column and row containing room point (x, y)
func (v Viewport) Cell(x, y float64) (int, int) {
	col := int(math.Floor(x / v.Room.X * float64(v.Cols)))
	row := int(math.Floor((v.Room.Y - y) / v.Room.Y * float64(v.Rows)))
	return v.OffsetX + clampInt(col, 0, v.Cols-1), v.OffsetY + clampInt(row, 0, v.Rows-1)
}

// Rect returns the inclusive cell rectangle covering b, top-left first
func (v Viewport) Rect(b vmath.Box) (x0, y0, x1, y1 int) {
	x0, y1 = v.Cell(b.MinX(), b.MinY())
	x1, y0 = v.Cell(b.MaxX(), b.MaxY())
	return x0, y0, x1, y1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
