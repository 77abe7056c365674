package session

import (
	"strconv"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/frame"
)

// SubscribeFrame builds a SUBSCRIBE frame for the topic, allocating a
// subscription id and a receipt whose confirmation is surfaced when the
// broker acknowledges the join.
func (s *Session) SubscribeFrame(topic string) *frame.Frame {
	id := s.AddSubscription(topic)
	receipt := s.RegisterReceipt("Joined channel " + topic)
	return frame.New(frame.SUBSCRIBE).
		AddHeader("destination", topic).
		AddHeader("id", strconv.Itoa(id)).
		AddHeader("receipt", strconv.Itoa(receipt))
}
