//go:build noclipboard

package clipboard

import "errors"

// Available reports whether this build can copy to the clipboard.
const Available = false

var errDisabled = errors.New("clipboard support not compiled in")

func Resolve(override []string) ([]string, error) {
	return nil, errDisabled
}

func Copy(override []string, text string) error {
	return errDisabled
}
