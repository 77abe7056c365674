// Package session owns the client-side protocol state of one connected
// session: subscription ids, receipt correlation and the disconnect
// handshake marker. The outbound command path and the inbound frame
// processor share one Session, so every access goes through the mutex.
package session

import (
	"sync"
)

const (
	// NoSubscription is returned when a topic has no subscription id.
	NoSubscription = -1

	noDisconnect = -1
)

type Session struct {
	mu                 sync.Mutex
	username           string
	topicToSubID       map[string]int
	nextSubscriptionID int
	nextReceiptID      int
	pendingReceipts    map[int]string
	disconnectReceipt  int
}

func New(username string) *Session {
	return &Session{
		username:          username,
		topicToSubID:      make(map[string]int),
		pendingReceipts:   make(map[int]string),
		disconnectReceipt: noDisconnect,
	}
}

func (s *Session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}

// AddSubscription returns the subscription id for the topic, allocating the
// next counter value on first use. Repeated calls for the same topic return
// the existing id.
func (s *Session) AddSubscription(topic string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.topicToSubID[topic]; ok {
		return id
	}
	id := s.nextSubscriptionID
	s.nextSubscriptionID++
	s.topicToSubID[topic] = id
	return id
}

// SubscriptionID looks up the id assigned to a topic, NoSubscription when the
// topic has never been joined. Callers use it to reject duplicate joins and
// exits of unjoined channels before any frame is sent.
func (s *Session) SubscriptionID(topic string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.topicToSubID[topic]; ok {
		return id
	}
	return NoSubscription
}

// RemoveSubscription forgets the topic mapping. The numeric id is never
// recycled.
func (s *Session) RemoveSubscription(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.topicToSubID, topic)
}

// RegisterReceipt allocates the next receipt id and stores the confirmation
// message to surface once the matching RECEIPT frame arrives.
func (s *Session) RegisterReceipt(confirmation string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextReceiptID
	s.nextReceiptID++
	s.pendingReceipts[id] = confirmation
	return id
}

// ResolveReceipt removes and returns the confirmation message for a receipt
// id. Each receipt resolves at most once; unknown ids report ok == false.
func (s *Session) ResolveReceipt(id int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	confirmation, ok := s.pendingReceipts[id]
	if ok {
		delete(s.pendingReceipts, id)
	}
	return confirmation, ok
}

// MarkPendingDisconnect records the receipt id of the outstanding DISCONNECT
// frame so the inbound flow can recognize the acknowledgment that makes it
// safe to drop the connection.
func (s *Session) MarkPendingDisconnect(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disconnectReceipt = id
}

func (s *Session) IsDisconnectReceipt(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disconnectReceipt != noDisconnect && s.disconnectReceipt == id
}

// Reset clears all state for logout. The next login starts from zeroed
// counters with no leftover subscriptions or receipts.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = ""
	s.topicToSubID = make(map[string]int)
	s.nextSubscriptionID = 0
	s.nextReceiptID = 0
	s.pendingReceipts = make(map[int]string)
	s.disconnectReceipt = noDisconnect
}
