// Package item models classification input: an opaque identifier paired
// with a resolved timestamp. Identifiers are filesystem paths by default
// but may be plain strings carrying their own timestamp.
package item

import "time"

// Kind distinguishes filesystem entries from plain strings. The kind
// decides which filesystem actions apply to an entry.
type Kind int

const (
	KindString Kind = iota
	KindFile
	KindDir
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	}
	return "string"
}

// Entry is a single classifiable item.
type Entry struct {
	// Text is the identifier as provided by the caller: a path, or an
	// opaque string in string interpretation mode.
	Text string
	// Time is the resolved timestamp the entry is classified by.
	Time time.Time
	// Kind is KindString unless the entry was built from a path.
	Kind Kind
}

// ModTime returns the entry's resolved timestamp.
func (e *Entry) ModTime() time.Time { return e.Time }

func (e *Entry) String() string { return e.Text }
