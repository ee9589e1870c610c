// Package clipboard hands entry text to a desktop clipboard helper process.
package clipboard

import (
	"errors"
	"strings"
)

var ErrNoHelper = errors.New("no clipboard helper found (tried " + strings.Join(candidateNames(), ", ") + ")")

type candidate struct {
	cmd  string
	args []string
}

var candidates = []candidate{
	{cmd: "wl-copy"},
	{cmd: "xclip", args: []string{"-selection", "clipboard"}},
	{cmd: "xsel", args: []string{"--clipboard", "--input"}},
	{cmd: "pbcopy"},
	{cmd: "clip"},
}

func candidateNames() []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.cmd)
	}
	return out
}
