package config

import "github.com/baaaaaaaka/clipse/internal/history"

// History returns a copy of the stored entries.
func (c Config) History() history.History {
	h := c.Clipboard.Content.Clone()
	if h == nil {
		h = history.History{}
	}
	return h
}

func (c *Config) SetHistory(h history.History) {
	c.Clipboard.Content = h.Clone()
	if c.Clipboard.Content == nil {
		c.Clipboard.Content = history.History{}
	}
}

// AddEntry appends text as the newest entry.
func (c *Config) AddEntry(text string) {
	c.Clipboard.Content.Push(text)
}

// AddEntries appends entries in order.
func (c *Config) AddEntries(entries history.History) {
	for _, e := range entries {
		c.Clipboard.Content.Push(e)
	}
}
