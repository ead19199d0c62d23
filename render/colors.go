package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/baobei/core"
)

// RGB color definitions for room elements
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloor      = tcell.NewRGBColor(40, 38, 52)    // Room floor
	RgbWall       = tcell.NewRGBColor(110, 100, 130) // Walls
	RgbFurniture  = tcell.NewRGBColor(150, 110, 80)  // Sink, kitchen, fridge, couch, table
	RgbTrigger    = tcell.NewRGBColor(70, 70, 90)    // Producer area outline
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbCompanion  = tcell.NewRGBColor(255, 120, 180) // Pink
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbHint       = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	// Mood bar, saddest first
	RgbMood = [...]tcell.Color{
		tcell.NewRGBColor(255, 80, 80),
		tcell.NewRGBColor(255, 140, 60),
		tcell.NewRGBColor(255, 220, 0),
		tcell.NewRGBColor(160, 230, 60),
		tcell.NewRGBColor(50, 255, 50),
	}
)

// Item glyphs and colors
var (
	itemGlyphs = [core.ItemCount]rune{
		core.ItemWaterGlass: 'W',
		core.ItemChips:      'C',
		core.ItemIceCream:   'I',
	}
	itemColors = [core.ItemCount]tcell.Color{
		core.ItemWaterGlass: tcell.NewRGBColor(100, 150, 255),
		core.ItemChips:      tcell.NewRGBColor(255, 220, 0),
		core.ItemIceCream:   tcell.NewRGBColor(240, 240, 255),
	}
)

// ItemGlyph returns the single-cell glyph of an item, '?' for invalid items
func ItemGlyph(it core.Item) rune {
	if !it.Valid() {
		return '?'
	}
	return itemGlyphs[it]
}

// palette resolves styles, collapsing to terminal defaults when color is off
type palette struct {
	color bool
}

func (p palette) style(fg, bg tcell.Color) tcell.Style {
	if !p.color {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

func (p palette) item(it core.Item, bg tcell.Color) tcell.Style {
	if !it.Valid() {
		return p.style(RgbStatusBar, bg)
	}
	return p.style(itemColors[it], bg).Bold(true)
}

func (p palette) mood(index int) tcell.Color {
	index = max(0, min(index, len(RgbMood)-1))
	return RgbMood[index]
}
