package session

import (
	"strconv"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/frame"
)

// UnsubscribeFrame builds an UNSUBSCRIBE frame referencing the id assigned on
// join and drops the topic mapping. Callers must check SubscriptionID first;
// the id is not recycled.
func (s *Session) UnsubscribeFrame(topic string) *frame.Frame {
	id := s.SubscriptionID(topic)
	s.RemoveSubscription(topic)
	receipt := s.RegisterReceipt("Exited channel " + topic)
	return frame.New(frame.UNSUBSCRIBE).
		AddHeader("id", strconv.Itoa(id)).
		AddHeader("receipt", strconv.Itoa(receipt))
}
