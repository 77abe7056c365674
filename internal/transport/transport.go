// Package transport moves whole frames over a broker connection. The raw
// byte handling stays here; everything above works in decoded frames.
package transport

import (
	"strings"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/frame"
)

// Conn is one established broker connection. ReadFrame blocks until the next
// frame arrives; any read failure means the connection is gone.
type Conn interface {
	WriteFrame(f *frame.Frame) error
	ReadFrame() (*frame.Frame, error)
	Close() error
}

// Dial connects to a broker address. "ws://" and "wss://" addresses use the
// WebSocket transport; "tcp://" and bare host:port use a plain socket.
func Dial(addr string) (Conn, error) {
	switch {
	case strings.HasPrefix(addr, "ws://"), strings.HasPrefix(addr, "wss://"):
		return DialWebSocket(addr)
	case strings.HasPrefix(addr, "tcp://"):
		return DialTCP(strings.TrimPrefix(addr, "tcp://"))
	default:
		return DialTCP(addr)
	}
}
