package tui

import "github.com/baaaaaaaka/clipse/internal/history"

const noSelection = -1

// selectionList pairs the entries with a cursor that is either noSelection
// or a valid index into items.
type selectionList struct {
	items    history.History
	selected int
}

func newSelectionList(items history.History) *selectionList {
	l := &selectionList{items: items.Clone(), selected: noSelection}
	if len(l.items) > 0 {
		l.selectIndex(0)
	}
	return l
}

func (l *selectionList) len() int { return len(l.items) }

func (l *selectionList) hasSelection() bool { return l.selected != noSelection }

// next moves the cursor down, wrapping to the top. The list must not be empty.
func (l *selectionList) next() {
	i := 0
	if l.hasSelection() && l.selected < len(l.items)-1 {
		i = l.selected + 1
	}
	l.selectIndex(i)
}

// previous moves the cursor up, wrapping to the bottom. The list must not be empty.
func (l *selectionList) previous() {
	i := 0
	if l.hasSelection() {
		if l.selected == 0 {
			i = len(l.items) - 1
		} else {
			i = l.selected - 1
		}
	}
	l.selectIndex(i)
}

func (l *selectionList) selectIndex(i int) {
	l.selected = i
}

func (l *selectionList) unselect() {
	l.selected = noSelection
}

// removeSelected deletes the entry under the cursor and moves the cursor to
// the entry above it, or to the new first entry when the top was removed.
// The cursor is cleared when the list becomes empty.
func (l *selectionList) removeSelected() bool {
	if !l.hasSelection() {
		return false
	}
	idx := l.selected
	l.items.Remove(idx)
	l.unselect()
	if len(l.items) > 0 {
		l.selectIndex(max(idx-1, 0))
	}
	return true
}

func (l *selectionList) current() (string, bool) {
	if !l.hasSelection() {
		return "", false
	}
	return l.items[l.selected], true
}
