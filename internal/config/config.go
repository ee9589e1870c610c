package config

import "github.com/baaaaaaaka/clipse/internal/history"

const CurrentVersion = 1

// AppName addresses the config document under the user config dir.
const AppName = "clipse"

type Config struct {
	Version   int       `json:"version"`
	Clipboard Clipboard `json:"clipboard"`
	// CopyCommand overrides the clipboard helper argv, e.g. ["wl-copy", "-n"].
	CopyCommand []string `json:"copyCommand,omitempty"`
}

type Clipboard struct {
	Content history.History `json:"content"`
}

func defaultConfig() Config {
	return Config{Version: CurrentVersion, Clipboard: Clipboard{Content: history.History{}}}
}
