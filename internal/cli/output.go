package cli

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/timegaps/timegaps/internal/action"
	"github.com/timegaps/timegaps/internal/item"
)

// emit writes the reported entries to w, one per separator, and performs
// the configured filesystem action on each. Action failures are logged
// and the run proceeds; only output failures are fatal.
func emit(w io.Writer, entries []*item.Entry, log *slog.Logger) error {
	bw := bufio.NewWriter(w)
	sep := separator()
	for _, e := range entries {
		if _, err := bw.WriteString(e.Text); err != nil {
			return err
		}
		if err := bw.WriteByte(sep); err != nil {
			return err
		}
		performAction(e, log)
	}
	return bw.Flush()
}

func performAction(e *item.Entry, log *slog.Logger) {
	if e.Kind == item.KindString {
		return
	}
	switch {
	case optMove != "":
		log.Info("moving", "type", e.Kind, "path", e.Text, "target", optMove)
		if err := action.Move(e, optMove); err != nil {
			log.Error("cannot move", "path", e.Text, "error", err)
		}
	case optDelete:
		log.Info("deleting", "type", e.Kind, "path", e.Text)
		if err := action.Delete(e, optRecursiveDelete); err != nil {
			log.Error("cannot delete", "path", e.Text, "error", err)
		}
	}
}
