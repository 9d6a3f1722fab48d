// Package cli implements the timegaps command.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/timegaps/timegaps/internal/config"
)

var (
	optStdin            bool
	optNullSep          bool
	optAccepted         bool
	optRefTime          string
	optTimeFromBasename string
	optTimeFromString   string
	optTimeRegex        string
	optDelete           bool
	optMove             string
	optRecursiveDelete  bool
	optGlob             bool
	optVerbose          int
	optConfig           string
)

const version = "0.1.1"

// RootCmd is the timegaps command. The first positional argument is the
// rules string, the remaining ones are items.
var RootCmd = &cobra.Command{
	Use:     "timegaps RULES [ITEM ...]",
	Version: version,
	Short:   "Accept or reject items based on age categorization",
	Long: `Accept or reject items based on age categorization.

Items are classified into accepted and rejected sets according to their
timestamps and the given rules. Rules have the form
<category><maxcount>[,<category><maxcount>...] with categories recent,
hours, days, weeks, months, years, e.g. 'recent5,days12,months5'. Per
category, at most maxcount items are accepted, one per sub-period. By
default items are paths whose modification time is taken from the inode,
and the rejected items are written to stdout, newline-separated.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runRoot,
}

func init() {
	fl := RootCmd.Flags()
	fl.BoolVarP(&optStdin, "stdin", "s", false, "Read items from stdin instead of the command line")
	fl.BoolVarP(&optNullSep, "nullsep", "0", false, "Use the NUL character as item separator for input and output")
	fl.BoolVarP(&optAccepted, "accepted", "a", false, "Output accepted items and act on them, instead of rejected ones")
	fl.StringVarP(&optRefTime, "reference-time", "t", "", "Reference time as local time TIME (format YYYYMMDD-HHMMSS); default is invocation time")
	fl.StringVar(&optTimeFromBasename, "time-from-basename", "", "Parse item time from the path basename using Go reference LAYOUT instead of the inode mtime")
	fl.StringVar(&optTimeFromString, "time-from-string", "", "Treat items as plain strings and parse their time using Go reference LAYOUT")
	fl.StringVar(&optTimeRegex, "time-regex", "", "Regexp with one capture group selecting the time part of the basename/string before layout parsing")
	fl.BoolVarP(&optDelete, "delete", "d", false, "Attempt to delete reported paths")
	fl.StringVarP(&optMove, "move", "m", "", "Attempt to move reported paths to directory DIR")
	fl.BoolVarP(&optRecursiveDelete, "recursive-delete", "r", false, "Allow deletion of non-empty directories (requires --delete)")
	fl.BoolVarP(&optGlob, "glob", "g", false, "Expand shell-style wildcards in command line items")
	fl.CountVarP(&optVerbose, "verbose", "v", "Increase verbosity (once for info, twice for debug)")
	fl.StringVar(&optConfig, "config", "", "YAML config file with flag defaults (default: $TIMEGAPS_CONFIG if set)")

	RootCmd.MarkFlagsMutuallyExclusive("time-from-basename", "time-from-string")
	RootCmd.MarkFlagsMutuallyExclusive("delete", "move")
}

// applyConfig fills flags the invocation left untouched with values from
// the config file.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if !fl.Changed("nullsep") && cfg.NullSep {
		optNullSep = true
	}
	if !fl.Changed("accepted") && cfg.Accepted {
		optAccepted = true
	}
	// A configured move target must not override an explicitly
	// requested delete: the two actions are mutually exclusive.
	if !fl.Changed("move") && optMove == "" && !optDelete {
		optMove = cfg.MoveTo
	}
	if !fl.Changed("verbose") {
		optVerbose = cfg.Verbosity
	}
}

// newLogger builds the run logger: text lines on stderr, level from the
// verbosity count, every line tagged with a fresh run ID.
func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelError
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("run", ulid.Make().String())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
