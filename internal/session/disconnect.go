package session

import (
	"strconv"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/frame"
)

// DisconnectFrame builds the DISCONNECT frame and marks its receipt id as the
// pending disconnect. The session must not be torn down until the broker
// echoes that id back in a RECEIPT frame.
func (s *Session) DisconnectFrame() *frame.Frame {
	receipt := s.RegisterReceipt("Disconnected from server")
	s.MarkPendingDisconnect(receipt)
	return frame.New(frame.DISCONNECT).
		AddHeader("receipt", strconv.Itoa(receipt))
}
