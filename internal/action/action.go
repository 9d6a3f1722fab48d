// Package action performs filesystem actions on classified items:
// deletion and displacement of rejected (or accepted) entries.
package action

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/timegaps/timegaps/internal/item"
)

// Delete removes the entry from the filesystem. Directories must be
// empty unless recursive is set.
func Delete(e *item.Entry, recursive bool) error {
	if e.Kind == item.KindDir && recursive {
		return os.RemoveAll(e.Text)
	}
	return os.Remove(e.Text)
}

// Move displaces the entry into dir, keeping its basename. Rename is
// tried first; regular files falling foul of a cross-device rename are
// copied and the source removed.
func Move(e *item.Entry, dir string) error {
	dst := filepath.Join(dir, filepath.Base(e.Text))
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("move %q: target %q already exists", e.Text, dst)
	}
	err := os.Rename(e.Text, dst)
	if err == nil || e.Kind != item.KindFile {
		return err
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return err
	}
	if cpErr := copyFile(e.Text, dst); cpErr != nil {
		return fmt.Errorf("move %q: %w", e.Text, cpErr)
	}
	return os.Remove(e.Text)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fi.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
