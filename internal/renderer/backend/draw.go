package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Draw renders the buffer, the status line and the cursor.
func (t *Terminal) Draw() {
	snap := t.eng.Snapshot()
	p := snap.Point()

	width, height := t.screen.Size()
	textRows := height
	if t.showStatus && textRows > 1 {
		textRows--
	}
	t.scrollTo(p.Row, textRows)

	t.screen.Clear()
	for y := 0; y < textRows; y++ {
		row := t.top + y
		if row > snap.RowCount() {
			break
		}
		t.drawText(0, y, width, snap.RowText(row), t.textStyle)
	}

	if t.showStatus && height > 1 {
		status := fmt.Sprintf(" %d:%d  %d/%d ", p.Row, p.Column, p.Index, t.eng.Buffer().Len())
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, height-1, ' ', nil, t.statusStyle)
		}
		t.drawText(0, height-1, width, status, t.statusStyle)
	}

	line := []rune(snap.RowText(p.Row))
	col := min(p.Column, len(line))
	t.screen.ShowCursor(t.displayWidth(string(line[:col])), p.Row-t.top)
	t.screen.Show()
}

// scrollTo adjusts the first visible row so that row is on screen.
func (t *Terminal) scrollTo(row, visible int) {
	if visible < 1 {
		visible = 1
	}
	if row < t.top {
		t.top = row
	}
	if row >= t.top+visible {
		t.top = row - visible + 1
	}
}

// drawText draws s at (x, y) expanding tabs and respecting grapheme widths.
func (t *Terminal) drawText(x, y, width int, s string, style tcell.Style) {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() && x < width {
		runes := gr.Runes()
		if runes[0] == '\t' {
			next := x + t.tabWidth - x%t.tabWidth
			for ; x < next && x < width; x++ {
				t.screen.SetContent(x, y, ' ', nil, style)
			}
			continue
		}
		t.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += max(gr.Width(), 1)
	}
}

// displayWidth returns the number of cells s occupies when drawn from
// column 0.
func (t *Terminal) displayWidth(s string) int {
	x := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if gr.Runes()[0] == '\t' {
			x += t.tabWidth - x%t.tabWidth
			continue
		}
		x += max(gr.Width(), 1)
	}
	return x
}
