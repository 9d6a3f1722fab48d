package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/timegaps/timegaps/internal/item"
)

// collectItems turns the raw item arguments (or stdin) into entries
// carrying resolved timestamps. Any unresolvable item is fatal: no
// partial classification is attempted.
func collectItems(args []string, log *slog.Logger) ([]*item.Entry, error) {
	strs := args
	if optStdin {
		var err error
		if strs, err = readStdinItems(); err != nil {
			return nil, err
		}
		log.Debug("read items from stdin", "count", len(strs))
	} else if optGlob {
		var err error
		if strs, err = expandGlobs(args); err != nil {
			return nil, err
		}
		log.Debug("expanded wildcards", "count", len(strs))
	}

	if optTimeFromString != "" {
		return stringEntries(strs, log)
	}
	return pathEntries(strs, log)
}

// stringEntries treats items as opaque strings; the timestamp must be
// parsable from the string itself.
func stringEntries(strs []string, log *slog.Logger) ([]*item.Entry, error) {
	res, err := item.NewResolver(optTimeFromString, optTimeRegex)
	if err != nil {
		return nil, err
	}
	entries := make([]*item.Entry, 0, len(strs))
	for _, s := range strs {
		t, err := res.Parse(s)
		if err != nil {
			return nil, err
		}
		log.Debug("resolved item time", "item", s, "time", t)
		entries = append(entries, &item.Entry{Text: s, Time: t, Kind: item.KindString})
	}
	return entries, nil
}

// pathEntries treats items as filesystem paths. The timestamp comes
// from the inode mtime, or from the basename when a layout is given.
func pathEntries(paths []string, log *slog.Logger) ([]*item.Entry, error) {
	var res *item.Resolver
	if optTimeFromBasename != "" {
		var err error
		if res, err = item.NewResolver(optTimeFromBasename, optTimeRegex); err != nil {
			return nil, err
		}
	}
	entries := make([]*item.Entry, 0, len(paths))
	for _, p := range paths {
		var mt time.Time
		if res != nil {
			var err error
			if mt, err = res.Parse(filepath.Base(p)); err != nil {
				return nil, err
			}
		}
		e, err := item.FromPath(p, mt)
		if err != nil {
			return nil, err
		}
		log.Debug("collected path", "path", e.Text, "type", e.Kind, "time", e.Time)
		entries = append(entries, e)
	}
	return entries, nil
}

// readStdinItems reads all of stdin and splits it on the item separator.
// Empty chunks from leading, trailing or doubled separators are dropped.
func readStdinItems() ([]string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return splitSeparated(data, separator()), nil
}

func splitSeparated(data []byte, sep byte) []string {
	var items []string
	start := 0
	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == sep {
			if i > start {
				items = append(items, string(data[start:i]))
			}
			start = i + 1
		}
	}
	return items
}

// expandGlobs expands shell-style wildcards in command line items. A
// pattern matching nothing is an error, as the unmatched pattern could
// not name an existing path either.
func expandGlobs(patterns []string) ([]string, error) {
	var paths []string
	for _, pat := range patterns {
		matches, err := filepath.Glob(pat)
		if err != nil {
			return nil, fmt.Errorf("bad wildcard pattern %q: %w", pat, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matches nothing", pat)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func separator() byte {
	if optNullSep {
		return 0
	}
	return '\n'
}
