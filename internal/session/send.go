package session

import (
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/frame"
)

// SendFrame builds a SEND frame publishing the body to a destination.
func (s *Session) SendFrame(destination, body string) *frame.Frame {
	f := frame.New(frame.SEND).AddHeader("destination", destination)
	f.Body = body
	return f
}
