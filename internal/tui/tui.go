package tui

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/clipse/internal/history"
)

// DefaultTickRate paces redraws when no input arrives.
const DefaultTickRate = 250 * time.Millisecond

var ErrNoItems = errors.New("no items to select")

var errEventsClosed = errors.New("terminal event stream closed")

// Outcome is how a session ended: Selected, DeletePersist or Aborted.
type Outcome interface {
	isOutcome()
}

// Selected carries the entry confirmed with Enter.
type Selected struct {
	Text string
}

// DeletePersist is returned on quit after at least one deletion. Items is
// the list that remains.
type DeletePersist struct {
	Items history.History
}

// Aborted is returned on quit without deletions.
type Aborted struct{}

func (Selected) isOutcome()      {}
func (DeletePersist) isOutcome() {}
func (Aborted) isOutcome()       {}

type tickEvent struct {
	when time.Time
}

func (e *tickEvent) When() time.Time { return e.when }

// keyCode identifies a key for chord matching. r is set only for rune keys.
type keyCode struct {
	key tcell.Key
	r   rune
}

func keyCodeOf(ev *tcell.EventKey) keyCode {
	if ev.Key() == tcell.KeyRune {
		return keyCode{key: tcell.KeyRune, r: ev.Rune()}
	}
	return keyCode{key: ev.Key()}
}

var deleteKey = keyCode{key: tcell.KeyRune, r: 'd'}

type loopState struct {
	list     *selectionList
	lastKey  keyCode
	hasLast  bool
	dirty    bool
	lastTick time.Time
}

func newLoopState(items history.History) *loopState {
	return &loopState{
		list:     newSelectionList(items),
		lastTick: time.Now(),
	}
}

// Run drives the list on screen until the user confirms an entry or quits.
// An empty list at the top of an iteration ends the run with ErrNoItems.
func Run(screen tcell.Screen, items history.History, tickRate time.Duration) (Outcome, error) {
	state := newLoopState(items)
	for {
		draw(screen, state.list)
		if state.list.len() == 0 {
			return nil, ErrNoItems
		}

		timeout := max(0, tickRate-time.Since(state.lastTick))
		switch ev := pollEvent(screen, timeout).(type) {
		case nil:
			return nil, errEventsClosed
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if outcome := handleKey(state, ev); outcome != nil {
				return outcome, nil
			}
		}

		if time.Since(state.lastTick) >= tickRate {
			state.lastTick = time.Now()
		}
	}
}

// pollEvent waits for the next event, posting a tick after timeout so the
// wait is bounded.
func pollEvent(screen tcell.Screen, timeout time.Duration) tcell.Event {
	timer := time.AfterFunc(timeout, func() {
		_ = screen.PostEvent(&tickEvent{when: time.Now()})
	})
	defer timer.Stop()
	return screen.PollEvent()
}

func handleKey(state *loopState, ev *tcell.EventKey) Outcome {
	code := keyCodeOf(ev)
	prev, hadPrev := state.lastKey, state.hasLast
	// Every key, recognised or not, replaces the chord buffer.
	state.lastKey, state.hasLast = code, true

	switch ev.Key() {
	case tcell.KeyLeft:
		state.list.unselect()
	case tcell.KeyDown:
		state.list.next()
	case tcell.KeyUp:
		state.list.previous()
	case tcell.KeyEnter, tcell.KeyCtrlJ:
		if text, ok := state.list.current(); ok {
			return Selected{Text: text}
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			if state.dirty {
				return DeletePersist{Items: state.list.items.Clone()}
			}
			return Aborted{}
		case 'h':
			state.list.unselect()
		case 'j':
			state.list.next()
		case 'k':
			state.list.previous()
		case 'd':
			if hadPrev && prev == deleteKey && state.list.removeSelected() {
				state.dirty = true
			}
		}
	}
	return nil
}
