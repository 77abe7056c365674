package protocol

import (
	"strconv"
	"testing"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/event"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/frame"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/session"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

func newTestProcessor() (*Processor, *session.Session, *event.Store, *recordingNotifier) {
	s := session.New("alice")
	store := event.NewStore()
	notifier := &recordingNotifier{}
	return NewProcessor(s, store, notifier, nil), s, store, notifier
}

func TestProcessConnected(t *testing.T) {
	p, _, _, notifier := newTestProcessor()

	if p.Process(frame.New(frame.CONNECTED)) {
		t.Fatal("CONNECTED must not terminate the session")
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != "Login successful" {
		t.Errorf("expected login notification, got %v", notifier.messages)
	}
}

func TestProcessMessageStoresEvent(t *testing.T) {
	p, _, store, notifier := newTestProcessor()

	body := "user:alice\nteam a:X\nteam b:Y\nevent name:Goal\ntime:10\ngeneral game updates:\nscore:1-0\ndescription:\nGreat shot\n"
	f := frame.New(frame.MESSAGE).AddHeader("destination", "X_Y")
	f.Body = body

	if p.Process(f) {
		t.Fatal("MESSAGE must not terminate the session")
	}

	events := store.Events("X_Y", "alice")
	if len(events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(events))
	}
	e := events[0]
	if e.Name != "Goal" || e.Time != 10 {
		t.Errorf("unexpected event %+v", e)
	}
	if e.GeneralUpdates["score"] != "1-0" {
		t.Errorf("expected score update, got %v", e.GeneralUpdates)
	}
	if e.Description != "Great shot\n" {
		t.Errorf("unexpected description %q", e.Description)
	}

	// The raw body is surfaced regardless of parsing.
	if len(notifier.messages) != 1 || notifier.messages[0] != body {
		t.Errorf("expected raw body notification, got %v", notifier.messages)
	}
}

func TestProcessMessageWithoutUserLine(t *testing.T) {
	p, _, store, notifier := newTestProcessor()

	f := frame.New(frame.MESSAGE)
	f.Body = "just a chat message"
	if p.Process(f) {
		t.Fatal("MESSAGE must not terminate the session")
	}

	if events := store.Events("_", ""); len(events) != 0 {
		t.Errorf("expected nothing stored, got %d events", len(events))
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != "just a chat message" {
		t.Errorf("expected raw body notification, got %v", notifier.messages)
	}
}

func TestProcessReceipt(t *testing.T) {
	p, s, _, notifier := newTestProcessor()

	id := s.RegisterReceipt("Joined channel germany_japan")
	f := frame.New(frame.RECEIPT).AddHeader("receipt-id", strconv.Itoa(id))

	if p.Process(f) {
		t.Fatal("plain receipt must not terminate the session")
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != "Joined channel germany_japan" {
		t.Errorf("expected confirmation notification, got %v", notifier.messages)
	}
}

func TestProcessReceiptTolerance(t *testing.T) {
	tests := []struct {
		name  string
		frame *frame.Frame
	}{
		{"missing receipt-id", frame.New(frame.RECEIPT)},
		{"non-numeric receipt-id", frame.New(frame.RECEIPT).AddHeader("receipt-id", "abc")},
		{"unknown receipt-id", frame.New(frame.RECEIPT).AddHeader("receipt-id", "42")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _, notifier := newTestProcessor()
			if p.Process(tt.frame) {
				t.Error("tolerated receipt must not terminate the session")
			}
			if len(notifier.messages) != 0 {
				t.Errorf("expected no notification, got %v", notifier.messages)
			}
		})
	}
}

func TestProcessDisconnectReceiptTerminates(t *testing.T) {
	p, s, _, _ := newTestProcessor()

	disconnect := s.DisconnectFrame()
	receiptID, _ := disconnect.Get("receipt")

	other := frame.New(frame.RECEIPT).AddHeader("receipt-id", "99")
	if p.Process(other) {
		t.Fatal("unrelated receipt must not terminate the session")
	}

	f := frame.New(frame.RECEIPT).AddHeader("receipt-id", receiptID)
	if !p.Process(f) {
		t.Fatal("disconnect receipt must terminate the session")
	}
}

func TestProcessError(t *testing.T) {
	p, _, _, notifier := newTestProcessor()

	f := frame.New(frame.ERROR)
	f.Body = "user already logged in"
	if !p.Process(f) {
		t.Fatal("ERROR must terminate the session")
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != "Error received from server: user already logged in" {
		t.Errorf("unexpected notifications %v", notifier.messages)
	}
}

func TestProcessUnknownCommandIgnored(t *testing.T) {
	p, _, _, notifier := newTestProcessor()

	if p.Process(frame.New("BANANA")) {
		t.Fatal("unknown command must not terminate the session")
	}
	if len(notifier.messages) != 0 {
		t.Errorf("expected no notification, got %v", notifier.messages)
	}
}
