package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/clipse/internal/clipboard"
	"github.com/baaaaaaaka/clipse/internal/config"
	"github.com/baaaaaaaka/clipse/internal/history"
	"github.com/baaaaaaaka/clipse/internal/tui"
)

// historyStore is the persistence the driver needs. Update holds the store
// lock across read and write so concurrent invocations do not drop entries.
type historyStore interface {
	Load() (config.Config, error)
	Save(config.Config) error
	Update(func(*config.Config) error) error
}

var (
	openStore = func(path string) (historyStore, error) {
		store, err := config.NewStore(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	selectEntry        = tui.SelectEntry
	copyToClipboard    = clipboard.Copy
	clipboardAvailable = clipboard.Available
)

var errEmptyHistory = errors.New("history is empty")

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	if opts.asJSON && !opts.list {
		return errors.New("--json requires --list")
	}

	logger, closeLog, err := newLogger(opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := openStore(opts.configPath)
	if err != nil {
		return err
	}
	var cfg config.Config
	if cmd.Flags().Changed("add") {
		// Adds are stored before anything else so they survive an aborted UI.
		cfg, err = updateHistory(store, func(c *config.Config) error {
			c.AddEntry(opts.add)
			return nil
		})
		if err != nil {
			return err
		}
		logger.Info("entry added", "sha256", history.Digest(opts.add), "entries", len(cfg.Clipboard.Content))
	} else {
		cfg, err = store.Load()
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		logger.Debug("history loaded", "entries", len(cfg.Clipboard.Content))
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.list:
		return printHistory(out, cfg.History(), opts.asJSON)
	case opts.exportPath != "":
		return history.Export(opts.exportPath, cfg.History())
	case opts.importPath != "":
		entries, err := history.Import(opts.importPath)
		if err != nil {
			return err
		}
		if _, err := updateHistory(store, func(c *config.Config) error {
			c.AddEntries(entries)
			return nil
		}); err != nil {
			return err
		}
		logger.Info("entries imported", "count", len(entries), "from", opts.importPath)
		return nil
	case opts.pop:
		var text string
		if _, err := updateHistory(store, func(c *config.Config) error {
			h := c.History()
			last, ok := h.Pop()
			if !ok {
				return errEmptyHistory
			}
			text = last
			c.SetHistory(h)
			return nil
		}); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, text)
		return err
	case opts.peek:
		text, ok := cfg.History().Peek()
		if !ok {
			return errEmptyHistory
		}
		_, err := fmt.Fprintln(out, text)
		return err
	}

	outcome, err := selectEntry(cfg.History(), tui.DefaultTickRate)
	if err != nil {
		logger.Error("selection failed", "error", err)
		return err
	}
	return applyOutcome(out, store, cfg, outcome, opts.copy, logger)
}

func applyOutcome(out io.Writer, store historyStore, cfg config.Config, outcome tui.Outcome, copyRequested bool, logger *slog.Logger) error {
	switch o := outcome.(type) {
	case tui.Selected:
		logger.Info("entry selected", "sha256", history.Digest(o.Text), "copy", copyRequested)
		if copyRequested && clipboardAvailable {
			if err := copyToClipboard(cfg.CopyCommand, o.Text); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			return nil
		}
		_, err := fmt.Fprintln(out, o.Text)
		return err
	case tui.DeletePersist:
		logger.Info("entries deleted", "remaining", len(o.Items))
		cfg.SetHistory(o.Items)
		return saveHistory(store, cfg, logger)
	case tui.Aborted:
		logger.Debug("selection aborted")
		return nil
	default:
		return fmt.Errorf("unexpected outcome %T", outcome)
	}
}

// updateHistory runs fn against the stored document under the store lock and
// returns the document as written. Errors from fn are returned unwrapped.
func updateHistory(store historyStore, fn func(*config.Config) error) (config.Config, error) {
	var updated config.Config
	var fnErr error
	err := store.Update(func(c *config.Config) error {
		if fnErr = fn(c); fnErr != nil {
			return fnErr
		}
		updated = *c
		updated.SetHistory(c.History())
		return nil
	})
	if fnErr != nil {
		return config.Config{}, fnErr
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("update history: %w", err)
	}
	return updated, nil
}

func saveHistory(store historyStore, cfg config.Config, logger *slog.Logger) error {
	if err := store.Save(cfg); err != nil {
		return fmt.Errorf("store history: %w", err)
	}
	logger.Debug("history stored", "entries", len(cfg.Clipboard.Content))
	return nil
}
