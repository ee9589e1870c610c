//go:build !noclipboard

package clipboard

import (
	"fmt"
	"io"
	"os/exec"
)

// Available reports whether this build can copy to the clipboard.
const Available = true

var lookPath = exec.LookPath

// Resolve returns the argv of the helper to run. A non-empty override wins
// over the built-in candidate list.
func Resolve(override []string) ([]string, error) {
	if len(override) > 0 {
		path, err := lookPath(override[0])
		if err != nil {
			return nil, fmt.Errorf("clipboard helper %q: %w", override[0], err)
		}
		return append([]string{path}, override[1:]...), nil
	}
	for _, cand := range candidates {
		path, err := lookPath(cand.cmd)
		if err != nil {
			continue
		}
		return append([]string{path}, cand.args...), nil
	}
	return nil, ErrNoHelper
}

// Copy starts the helper, writes text to its stdin once and closes it. The
// process is released without waiting for it to exit.
func Copy(override []string, text string) error {
	argv, err := Resolve(override)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("clipboard helper stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start clipboard helper: %w", err)
	}
	if _, err := io.WriteString(stdin, text); err != nil {
		_ = stdin.Close()
		return fmt.Errorf("write clipboard helper: %w", err)
	}
	if err := stdin.Close(); err != nil {
		return fmt.Errorf("close clipboard helper stdin: %w", err)
	}
	return cmd.Process.Release()
}
