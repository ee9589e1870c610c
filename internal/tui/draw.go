package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	listTitle       = "List"
	highlightSymbol = ">> "
)

var (
	borderStyle   = tcell.StyleDefault
	rowStyle      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	selectedStyle = rowStyle.Background(tcell.ColorLightGreen).Bold(true)
)

type rect struct {
	y int
	x int
	h int
	w int
}

type row struct {
	label    string
	selected bool
}

// draw renders the list into one bordered box covering the screen. It only
// reads list. tcell's Show reports no errors; a lost terminal shows up as a
// nil event from PollEvent instead.
func draw(screen tcell.Screen, list *selectionList) {
	screen.Clear()
	w, h := screen.Size()
	r := rect{y: 0, x: 0, h: h, w: w}
	drawBox(screen, r, listTitle)
	drawList(screen, r, renderRows(list, r.h-2))
	screen.Show()
}

// renderRows returns the visible rows, scrolled so the cursor stays in view.
func renderRows(list *selectionList, viewH int) []row {
	if viewH <= 0 || list.len() == 0 {
		return nil
	}
	start := 0
	if list.hasSelection() && list.selected >= viewH {
		start = list.selected - viewH + 1
	}
	end := min(list.len(), start+viewH)

	pad := ""
	if list.hasSelection() {
		pad = strings.Repeat(" ", runewidth.StringWidth(highlightSymbol))
	}
	rows := make([]row, 0, end-start)
	for i := start; i < end; i++ {
		label := pad + singleLine(list.items[i])
		selected := i == list.selected
		if selected {
			label = highlightSymbol + singleLine(list.items[i])
		}
		rows = append(rows, row{label: label, selected: selected})
	}
	return rows
}

func drawBox(screen tcell.Screen, r rect, title string) {
	if r.w <= 0 || r.h <= 0 {
		return
	}
	for x := r.x + 1; x < r.x+r.w-1; x++ {
		screen.SetContent(x, r.y, tcell.RuneHLine, nil, borderStyle)
		screen.SetContent(x, r.y+r.h-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := r.y + 1; y < r.y+r.h-1; y++ {
		screen.SetContent(r.x, y, tcell.RuneVLine, nil, borderStyle)
		screen.SetContent(r.x+r.w-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	screen.SetContent(r.x, r.y, tcell.RuneULCorner, nil, borderStyle)
	screen.SetContent(r.x+r.w-1, r.y, tcell.RuneURCorner, nil, borderStyle)
	screen.SetContent(r.x, r.y+r.h-1, tcell.RuneLLCorner, nil, borderStyle)
	screen.SetContent(r.x+r.w-1, r.y+r.h-1, tcell.RuneLRCorner, nil, borderStyle)

	putString(screen, r.x+1, r.y, runewidth.Truncate(title, max(0, r.w-2), ""), borderStyle)
}

func drawList(screen tcell.Screen, r rect, rows []row) {
	if r.h < 3 || r.w < 3 {
		return
	}
	innerW := r.w - 2
	for i, rw := range rows {
		if i >= r.h-2 {
			break
		}
		style := rowStyle
		if rw.selected {
			style = selectedStyle
		}
		putString(screen, r.x+1, r.y+1+i, fitWidth(rw.label, innerW), style)
	}
}

// singleLine flattens control characters so an entry occupies one row.
func singleLine(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}

// putString writes s from column x, advancing by each rune's display width.
func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		screen.SetContent(x, y, ch, nil, style)
		x += w
	}
}

// fitWidth cuts s to width display columns and pads it with spaces to
// exactly that width.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
