package session

import (
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/frame"
)

// ConnectFrame builds the login frame. The login and passcode are passed
// through untouched.
func (s *Session) ConnectFrame(host, login, passcode string) *frame.Frame {
	return frame.New(frame.CONNECT).
		AddHeader("accept-version", "1.2").
		AddHeader("host", host).
		AddHeader("login", login).
		AddHeader("passcode", passcode)
}
