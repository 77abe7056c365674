package protocol

import (
	"fmt"
	"io"
)

// Notifier surfaces protocol outcomes (login result, receipt confirmations,
// message bodies, server errors) to the user.
type Notifier interface {
	Notify(message string)
}

type writerNotifier struct {
	w io.Writer
}

// NewWriterNotifier returns a Notifier printing one message per line.
func NewWriterNotifier(w io.Writer) Notifier {
	return &writerNotifier{w: w}
}

func (n *writerNotifier) Notify(message string) {
	_, _ = fmt.Fprintln(n.w, message)
}
