package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"pgregory.net/rapid"

	"github.com/baaaaaaaka/clipse/internal/history"
)

var propertyKeys = []*tcell.EventKey{
	runeKey('j'),
	runeKey('k'),
	runeKey('h'),
	runeKey('d'),
	runeKey('x'),
	specialKey(tcell.KeyDown),
	specialKey(tcell.KeyUp),
	specialKey(tcell.KeyLeft),
}

func TestLoopInvariantsHold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := history.History(rapid.SliceOfN(rapid.StringMatching(`[a-c]{1,2}`), 1, 8).Draw(t, "items"))
		keys := rapid.SliceOfN(rapid.SampledFrom(propertyKeys), 0, 40).Draw(t, "keys")

		state := newLoopState(initial)
		expected := initial.Clone()
		deletions := 0

		for _, k := range keys {
			if state.list.len() == 0 {
				// The loop stops here with ErrNoItems.
				break
			}
			before := state.list.selected
			armed := state.hasLast && state.lastKey == deleteKey

			if outcome := handleKey(state, k); outcome != nil {
				t.Fatalf("unexpected outcome %#v for %v", outcome, k.Name())
			}

			if k.Key() == tcell.KeyRune && k.Rune() == 'd' && armed && before != noSelection {
				expected.Remove(before)
				deletions++
			}

			if state.list.hasSelection() && state.list.selected >= state.list.len() {
				t.Fatalf("cursor %d out of range for %d items", state.list.selected, state.list.len())
			}
			if isMotion(k) && !state.list.hasSelection() {
				t.Fatalf("cursor missing after %v", k.Name())
			}
			if state.dirty != (deletions > 0) {
				t.Fatalf("dirty=%v after %d deletions", state.dirty, deletions)
			}
			if !state.list.items.Equal(expected) {
				t.Fatalf("items=%#v want %#v", state.list.items, expected)
			}
		}

		if state.list.len() == 0 {
			return
		}
		cursor := state.list.selected
		snapshot := state.list.items.Clone()
		switch outcome := handleKey(state, specialKey(tcell.KeyEnter)).(type) {
		case nil:
			if cursor != noSelection {
				t.Fatalf("Enter with cursor %d produced no outcome", cursor)
			}
		case Selected:
			if outcome.Text != snapshot[cursor] {
				t.Fatalf("selected %q want %q", outcome.Text, snapshot[cursor])
			}
		default:
			t.Fatalf("unexpected outcome %#v", outcome)
		}

		switch outcome := handleKey(state, runeKey('q')).(type) {
		case DeletePersist:
			if deletions == 0 {
				t.Fatalf("DeletePersist without deletions")
			}
			if !outcome.Items.Equal(expected) {
				t.Fatalf("persisted %#v want %#v", outcome.Items, expected)
			}
		case Aborted:
			if deletions != 0 {
				t.Fatalf("Aborted after %d deletions", deletions)
			}
		default:
			t.Fatalf("unexpected quit outcome %#v", outcome)
		}
	})
}

func isMotion(k *tcell.EventKey) bool {
	switch k.Key() {
	case tcell.KeyUp, tcell.KeyDown:
		return true
	case tcell.KeyRune:
		return k.Rune() == 'j' || k.Rune() == 'k'
	}
	return false
}
