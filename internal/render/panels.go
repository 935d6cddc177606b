package render

import (
	"fmt"
	"strings"

	"mengya/assets"
	"mengya/internal/dialogue"
	"mengya/internal/pickup"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at (x, y) and returns the columns used. Wide
// runes take two columns.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	col := x
	for _, ch := range s {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col - x
}

// drawBox fills a w×h rectangle and frames it.
func (r *Renderer) drawBox(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
	for col := x + 1; col < x+w-1; col++ {
		r.screen.SetContent(col, y, '─', nil, style)
		r.screen.SetContent(col, y+h-1, '─', nil, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		r.screen.SetContent(x, row, '│', nil, style)
		r.screen.SetContent(x+w-1, row, '│', nil, style)
	}
	r.screen.SetContent(x, y, '┌', nil, style)
	r.screen.SetContent(x+w-1, y, '┐', nil, style)
	r.screen.SetContent(x, y+h-1, '└', nil, style)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, style)
}

// centredBox returns the origin of a w×h box centred on the screen, with w
// shrunk to fit.
func (r *Renderer) centredBox(w, h int) (x, y, width int) {
	sw, sh := r.screen.Size()
	width = min(w, sw)
	return (sw - width) / 2, max((sh-h)/2, 0), width
}

// drawDialogue renders the speech box above the HUD.
func (r *Renderer) drawDialogue(d DialogueView) {
	sw, sh := r.screen.Size()
	width := min(sw-2, 70)
	lines := dialogue.Wrap(d.Text, width-4)
	h := len(lines) + 3
	x := (sw - width) / 2
	y := max(sh-hudRows-h, 1)

	panel := tcell.StyleDefault.Foreground(r.dim(colorBorder)).Background(r.dim(colorPanel))
	r.drawBox(x, y, width, h, panel)
	if d.Speaker != "" {
		r.drawText(x+2, y, " "+d.Speaker+" ", panel.Foreground(r.dim(colorSpeaker)).Bold(true))
	}
	text := panel.Foreground(r.dim(colorText)).Bold(d.Bold)
	for i, line := range lines {
		r.drawText(x+2, y+1+i, line, text)
	}
	if d.Prompt {
		prompt := "[Space] ▸"
		r.drawText(x+width-2-runewidth.StringWidth(prompt), y+h-1, prompt, panel.Foreground(r.dim(colorHint)))
	}
}

// drawDetail renders the pickup panel for the selected item.
func (r *Renderer) drawDetail(p pickup.Panel) {
	lines := dialogue.Wrap(p.Body, 40)
	labels := make([]string, len(p.Actions))
	for i, a := range p.Actions {
		labels[i] = a.Label()
	}
	actions := strings.Join(labels, "  ")

	w := max(44, runewidth.StringWidth(actions)+4)
	h := len(lines) + 5
	x, y, w := r.centredBox(w, h)

	panel := tcell.StyleDefault.Foreground(r.dim(colorBorder)).Background(r.dim(colorPanel))
	r.drawBox(x, y, w, h, panel)
	if !p.Icon.IsZero() {
		r.putGlyph(x+2, y+1, p.Icon.Glyph, panel.Foreground(r.dim(p.Icon.Color)))
	}
	r.drawText(x+5, y+1, p.Title, panel.Foreground(r.dim(colorText)).Bold(true))
	for i, line := range lines {
		r.drawText(x+2, y+3+i, line, panel.Foreground(r.dim(colorText)))
	}
	r.drawText(x+2, y+h-2, actions, panel.Foreground(r.dim(colorHint)))
}

// drawExit renders the leave confirmation.
func (r *Renderer) drawExit(msg string) {
	const actions = "[Y] Yes  [N] No"
	w := max(runewidth.StringWidth(msg), len(actions)) + 6
	x, y, w := r.centredBox(w, 5)
	panel := tcell.StyleDefault.Foreground(r.dim(colorBorder)).Background(r.dim(colorPanel))
	r.drawBox(x, y, w, 5, panel)
	r.drawText(x+3, y+1, msg, panel.Foreground(r.dim(colorText)).Bold(true))
	r.drawText(x+3, y+3, actions, panel.Foreground(r.dim(colorHint)))
}

// sliderWidth is the number of cells in a volume bar.
const sliderWidth = 10

// drawVolume renders the volume sliders with the selected row marked.
func (r *Renderer) drawVolume(v VolumeView) {
	h := len(v.Labels) + 4
	x, y, w := r.centredBox(40, h)
	panel := tcell.StyleDefault.Foreground(r.dim(colorBorder)).Background(r.dim(colorPanel))
	r.drawBox(x, y, w, h, panel)
	r.drawText(x+2, y, " Volume ", panel.Foreground(r.dim(colorText)).Bold(true))

	for i, label := range v.Labels {
		val := 0.0
		if i < len(v.Values) {
			val = v.Values[i]
		}
		style := panel.Foreground(r.dim(colorText))
		marker := "  "
		if i == v.Selected {
			style = panel.Foreground(r.dim(colorSelect))
			marker = "▸ "
		}
		filled := int(val*sliderWidth + 0.5)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", sliderWidth-filled)
		r.drawText(x+2, y+2+i, fmt.Sprintf("%s%-8s %s %3.0f%%", marker, label, bar, val*100), style)
	}
	r.drawText(x+2, y+h-1, " ↑↓ select  ←→ adjust ", panel.Foreground(r.dim(colorHint)))
}

// drawCG renders the closing picture over a black screen.
func (r *Renderer) drawCG() {
	sw, sh := r.screen.Size()
	lines := assets.ClosingCG
	y := max((sh-len(lines))/2, 0)
	style := tcell.StyleDefault.Foreground(r.dim(assets.ColorCG))
	for i, line := range lines {
		x := max((sw-runewidth.StringWidth(line))/2, 0)
		r.drawText(x, y+i, line, style)
	}
}
