package item

import (
	"fmt"
	"io/fs"
	"os"
	"time"
)

// FromPath builds an Entry from a filesystem path. The path is stat'ed
// with Lstat (symlinks are not followed) and the entry type recorded.
// A non-zero modTime overrides the inode mtime, for callers that parse
// the timestamp from the basename instead.
func FromPath(path string, modTime time.Time) (*Entry, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %w", path, err)
	}
	kind, err := kindOf(fi.Mode())
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	if modTime.IsZero() {
		modTime = fi.ModTime()
	}
	return &Entry{Text: path, Time: modTime, Kind: kind}, nil
}

func kindOf(mode fs.FileMode) (Kind, error) {
	switch {
	case mode.IsRegular():
		return KindFile, nil
	case mode.IsDir():
		return KindDir, nil
	case mode&fs.ModeSymlink != 0:
		return KindSymlink, nil
	}
	return KindString, fmt.Errorf("unsupported file type %v", mode.Type())
}
