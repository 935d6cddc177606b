package render

import (
	"math"

	"mengya/internal/inventory"

	"github.com/gdamore/tcell/v2"
)

// slotCellWidth is one backpack cell: a wide icon plus the divider.
const slotCellWidth = 3

// drawStatus writes the level title on the top row.
func (r *Renderer) drawStatus(title string) {
	r.drawText(1, 0, title, tcell.StyleDefault.Foreground(r.dim(colorText)).Bold(true))
}

// drawHUD renders the separator, the interaction hint and the last messages
// below the stage.
func (r *Renderer) drawHUD(hint string, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, r.dim(colorDim))
	if hint != "" {
		r.drawText(1, hudY+1, hint, tcell.StyleDefault.Foreground(r.dim(colorHint)))
	}

	start := max(len(messages)-(hudRows-2), 0)
	for i, msg := range messages[start:] {
		r.drawText(1, hudY+2+i, msg, tcell.StyleDefault.Foreground(r.dim(colorMessage)))
	}
}

// DrawerWidth is the width in columns of a backpack drawer with n cells.
func DrawerWidth(n int) int { return n*slotCellWidth + 1 }

// drawDrawer renders the backpack strip sliding in from the right edge.
// offset is how many columns of it are on screen.
func (r *Renderer) drawDrawer(slots []*inventory.Slot, offset float64) {
	cols := int(math.Round(offset))
	if cols <= 0 || len(slots) == 0 {
		return
	}
	screenW, _ := r.screen.Size()
	x0, y0 := screenW-cols, 1
	width := DrawerWidth(len(slots))

	border := tcell.StyleDefault.Foreground(r.dim(colorBorder)).Background(r.dim(colorPanel))
	r.drawBox(x0, y0, width, 3, border)

	for i, s := range slots {
		x := x0 + 1 + i*slotCellWidth
		cell := tcell.StyleDefault.Background(r.dim(colorSlotBG))
		if s == nil {
			r.drawText(x, y0+1, "  ", cell)
			continue
		}
		if icon, ok := s.Icon(); ok {
			r.putGlyph(x, y0+1, icon.Glyph, cell.Foreground(r.dim(icon.Color)))
		} else {
			r.drawText(x, y0+1, "··", cell.Foreground(r.dim(colorDim)))
		}
		if i < len(slots)-1 {
			r.screen.SetContent(x+2, y0+1, '│', nil, border)
		}
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
