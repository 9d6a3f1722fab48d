package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/timegaps/timegaps/internal/config"
	"github.com/timegaps/timegaps/internal/filter"
	"github.com/timegaps/timegaps/internal/item"
)

func runRoot(cmd *cobra.Command, args []string) {
	cfg, err := config.Resolve(optConfig)
	if err != nil {
		exitErr("config", err)
	}
	applyConfig(cmd, cfg)
	log := newLogger(optVerbose)

	rules, err := filter.ParseRules(args[0])
	if err != nil {
		exitErr("rules", err)
	}
	log.Info("using rules", "rules", rules)

	if err := validateOptions(args[1:]); err != nil {
		exitErr("arguments", err)
	}

	ref := time.Now()
	if optRefTime != "" {
		if ref, err = item.ParseReferenceTime(optRefTime); err != nil {
			exitErr("reference time", err)
		}
	}
	log.Info("using reference time", "ref", ref.Format(time.RFC3339))

	f, err := filter.New(rules, ref)
	if err != nil {
		exitErr("filter setup", err)
	}

	entries, err := collectItems(args[1:], log)
	if err != nil {
		exitErr("items", err)
	}
	log.Info("collected items", "count", len(entries))

	accepted, rejected := filter.Filter(f, entries)
	log.Info("classified items", "accepted", len(accepted), "rejected", len(rejected))

	report := rejected
	if optAccepted {
		report = accepted
	}
	if err := emit(os.Stdout, report, log); err != nil {
		exitErr("output", err)
	}
}

// validateOptions checks flag and argument combinations that pflag
// cannot express on its own.
func validateOptions(items []string) error {
	if optStdin && len(items) > 0 {
		return errors.New("no ITEM must be given on the command line when --stdin is set")
	}
	if optStdin && optGlob {
		return errors.New("--glob applies to command line items and cannot be combined with --stdin")
	}
	if !optStdin && len(items) == 0 {
		return errors.New("at least one ITEM must be given (--stdin not set)")
	}
	if optTimeFromString != "" && (optDelete || optMove != "") {
		return errors.New("--time-from-string cannot be combined with --delete or --move")
	}
	if optRecursiveDelete && !optDelete {
		return errors.New("--recursive-delete requires --delete")
	}
	if optTimeRegex != "" && optTimeFromBasename == "" && optTimeFromString == "" {
		return errors.New("--time-regex requires --time-from-basename or --time-from-string")
	}
	if optMove != "" {
		fi, err := os.Stat(optMove)
		if err != nil || !fi.IsDir() {
			return fmt.Errorf("move target is not a directory: %q", optMove)
		}
	}
	return nil
}
