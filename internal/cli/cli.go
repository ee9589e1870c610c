package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type rootOptions struct {
	configPath string
	logFile    string

	add  string
	copy bool

	list       bool
	asJSON     bool
	exportPath string
	importPath string
	pop        bool
	peek       bool
}

func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "[ERROR]: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "clipse",
		Short:         "Browse, pick and prune your clipboard history",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       buildVersion(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Override config file path (default: OS user config dir)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Append debug logs to this file")

	flags := cmd.Flags()
	flags.StringVarP(&opts.add, "add", "a", "", "Append text to the history before opening the list")
	flags.BoolVarP(&opts.copy, "copy", "c", false, "Copy the selected entry to the clipboard instead of printing it")
	flags.BoolVar(&opts.list, "list", false, "Print the history and exit")
	flags.BoolVar(&opts.asJSON, "json", false, "With --list, print JSON including each entry's SHA-256")
	flags.StringVar(&opts.exportPath, "export", "", "Write the history to a file (.yaml/.yml or one entry per line)")
	flags.StringVar(&opts.importPath, "import", "", "Append entries from a file written by --export")
	flags.BoolVar(&opts.pop, "pop", false, "Remove the newest entry and print it")
	flags.BoolVar(&opts.peek, "peek", false, "Print the newest entry")
	cmd.MarkFlagsMutuallyExclusive("list", "export", "import", "pop", "peek")

	return cmd
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
