// Package frame implements the text wire format spoken with the broker: a
// command line, colon-separated header lines, a blank line, a body and a
// single NUL terminator.
package frame

// Command identifies the kind of a frame.
type Command string

// Client commands.
const (
	CONNECT     Command = "CONNECT"
	SUBSCRIBE   Command = "SUBSCRIBE"
	UNSUBSCRIBE Command = "UNSUBSCRIBE"
	SEND        Command = "SEND"
	DISCONNECT  Command = "DISCONNECT"
)

// Server commands.
const (
	CONNECTED Command = "CONNECTED"
	MESSAGE   Command = "MESSAGE"
	RECEIPT   Command = "RECEIPT"
	ERROR     Command = "ERROR"
)

// Header is a single key/value pair. Headers are kept as an ordered list so
// encoding is deterministic and decoding preserves arrival order.
type Header struct {
	Key   string
	Value string
}

// Frame is one protocol message unit.
type Frame struct {
	Command Command
	Headers []Header
	Body    string
}

func New(command Command) *Frame {
	return &Frame{Command: command}
}

// AddHeader appends a header pair, keeping insertion order.
func (f *Frame) AddHeader(key, value string) *Frame {
	f.Headers = append(f.Headers, Header{Key: key, Value: value})
	return f
}

// Get returns the value of the first header with the given key.
func (f *Frame) Get(key string) (string, bool) {
	for _, h := range f.Headers {
		if h.Key == key {
			return h.Value, true
		}
	}
	return "", false
}

func (c Command) String() string {
	return string(c)
}
