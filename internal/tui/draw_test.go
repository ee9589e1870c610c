package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/clipse/internal/history"
)

// screenLine returns the runes of row y, one per cell.
func screenLine(screen tcell.Screen, y int) []rune {
	w, _ := screen.Size()
	line := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		line = append(line, ch)
	}
	return line
}

// innerRow returns row y without the left and right border cells.
func innerRow(screen tcell.Screen, y int) string {
	line := screenLine(screen, y)
	if len(line) < 2 {
		return ""
	}
	return string(line[1 : len(line)-1])
}

func TestDrawRendersBorderedListWithTitle(t *testing.T) {
	screen := newTestScreen(t, 20, 6)
	list := newSelectionList(history.History{"a", "b", "c"})
	list.next()

	draw(screen, list)

	if ch, _, _, _ := screen.GetContent(0, 0); ch != tcell.RuneULCorner {
		t.Fatalf("expected upper-left corner, got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(19, 5); ch != tcell.RuneLRCorner {
		t.Fatalf("expected lower-right corner, got %q", ch)
	}
	if top := innerRow(screen, 0); !strings.HasPrefix(top, "List") {
		t.Fatalf("expected title on top border, got %q", top)
	}
	if got := innerRow(screen, 4); strings.Trim(got, " ") != "" {
		t.Fatalf("expected empty fourth row, got %q", got)
	}

	if got := innerRow(screen, 1); strings.TrimRight(got, " ") != "   a" {
		t.Fatalf("row 1=%q", got)
	}
	if got := innerRow(screen, 2); strings.TrimRight(got, " ") != ">> b" {
		t.Fatalf("row 2=%q", got)
	}

	_, _, style, _ := screen.GetContent(1, 2)
	if style != selectedStyle {
		t.Fatalf("expected selected style on cursor row")
	}
	_, _, style, _ = screen.GetContent(18, 2)
	if style != selectedStyle {
		t.Fatalf("expected selected style to fill the row")
	}
	_, _, style, _ = screen.GetContent(1, 1)
	if style != rowStyle {
		t.Fatalf("expected plain row style on other rows")
	}
}

func TestDrawWithoutCursorHighlightsNothing(t *testing.T) {
	screen := newTestScreen(t, 20, 6)
	list := newSelectionList(history.History{"a", "b"})
	list.unselect()

	draw(screen, list)
	for y := 1; y <= 2; y++ {
		for x := 1; x < 19; x++ {
			if _, _, style, _ := screen.GetContent(x, y); style == selectedStyle {
				t.Fatalf("unexpected highlight at %d,%d", x, y)
			}
		}
	}
	if got := innerRow(screen, 1); strings.TrimRight(got, " ") != "a" {
		t.Fatalf("expected unpadded row without cursor, got %q", got)
	}
}

func TestDrawDoesNotMutateList(t *testing.T) {
	screen := newTestScreen(t, 10, 4)
	list := newSelectionList(history.History{"a", "b", "c", "d", "e"})
	list.selectIndex(4)

	draw(screen, list)
	if list.selected != 4 || !list.items.Equal(history.History{"a", "b", "c", "d", "e"}) {
		t.Fatalf("draw mutated list: %#v", list)
	}
}

func TestRenderRowsScrollsToCursor(t *testing.T) {
	list := newSelectionList(history.History{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"})
	list.selectIndex(7)

	rows := renderRows(list, 3)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"   5", "   6", ">> 7"}
	for i, r := range rows {
		if r.label != want[i] {
			t.Fatalf("row %d=%q want %q", i, r.label, want[i])
		}
	}
	if !rows[2].selected {
		t.Fatalf("expected last visible row to be selected")
	}
}

func TestRenderRowsFlattensMultilineEntries(t *testing.T) {
	list := newSelectionList(history.History{"line one\nline two\ttab"})
	rows := renderRows(list, 5)
	if len(rows) != 1 || rows[0].label != ">> line one line two tab" {
		t.Fatalf("unexpected rows %#v", rows)
	}
}

func TestRenderRowsEmpty(t *testing.T) {
	if rows := renderRows(newSelectionList(nil), 5); rows != nil {
		t.Fatalf("expected no rows, got %#v", rows)
	}
}

func TestFitWidthWideRunes(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"日本語", 4, "日本"},
		{"日本語", 5, "日本 "},
		{"日本", 6, "日本  "},
		{"abc", 0, ""},
		{"abc", 3, "abc"},
	}
	for _, tc := range cases {
		if got := fitWidth(tc.in, tc.width); got != tc.want {
			t.Fatalf("fitWidth(%q, %d)=%q want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestDrawTruncatesWideEntries(t *testing.T) {
	screen := newTestScreen(t, 8, 3)
	list := newSelectionList(history.History{"日本語テキスト"})

	draw(screen, list)
	if got := string(screenLine(screen, 1)[1:5]); got != ">> 日" {
		t.Fatalf("row=%q", got)
	}
	if ch, _, _, _ := screen.GetContent(6, 1); ch != ' ' {
		t.Fatalf("expected padding after the cut, got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(7, 1); ch != tcell.RuneVLine {
		t.Fatalf("expected right border intact, got %q", ch)
	}
}
