package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/clipse/internal/history"
)

var newScreen = tcell.NewScreen

// SelectEntry takes over the terminal (raw mode, alternate screen), runs the
// list and hands the terminal back on every exit path, panics included.
func SelectEntry(items history.History, tickRate time.Duration) (Outcome, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	return Run(screen, items, tickRate)
}
