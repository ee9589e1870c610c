//go:build !windows

package config

import "os"

func replaceFile(from, to string) error {
	return os.Rename(from, to)
}
