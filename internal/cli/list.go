package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/baaaaaaaka/clipse/internal/history"
)

type listedEntry struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	SHA256 string `json:"sha256"`
}

// terminalWidth reports the column count when w is a terminal.
var terminalWidth = func(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}

func printHistory(out io.Writer, h history.History, asJSON bool) error {
	if asJSON {
		entries := make([]listedEntry, 0, len(h))
		for i, text := range h {
			entries = append(entries, listedEntry{Index: i, Text: text, SHA256: history.Digest(text)})
		}
		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	width, isTTY := terminalWidth(out)
	for _, text := range h {
		line := flattenControl(text)
		if isTTY {
			line = runewidth.Truncate(line, width, "…")
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func flattenControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}
