// Package protocol consumes decoded inbound frames one at a time and drives
// the session through its lifecycle: awaiting the broker's CONNECTED answer,
// connected, and terminated once the disconnect receipt or an ERROR frame
// arrives.
package protocol

import (
	"strconv"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/event"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/frame"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/logger"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/session"
)

// Archive receives a copy of every stored event, for durable mirroring.
type Archive interface {
	SaveEvent(user string, e event.Event)
}

type Processor struct {
	session  *session.Session
	store    *event.Store
	notifier Notifier
	archive  Archive
}

// NewProcessor wires the inbound frame processor. archive may be nil.
func NewProcessor(s *session.Session, store *event.Store, notifier Notifier, archive Archive) *Processor {
	return &Processor{
		session:  s,
		store:    store,
		notifier: notifier,
		archive:  archive,
	}
}

// Process handles one inbound frame and reports whether the connection must
// terminate. This is the single decision point the reader loop uses to stop.
func (p *Processor) Process(f *frame.Frame) bool {
	switch f.Command {
	case frame.CONNECTED:
		p.notifier.Notify("Login successful")
		return false

	case frame.MESSAGE:
		p.handleMessage(f)
		return false

	case frame.RECEIPT:
		return p.handleReceipt(f)

	case frame.ERROR:
		p.notifier.Notify("Error received from server: " + f.Body)
		return true

	default:
		logger.DebugF("Ignoring %s frame", f.Command)
		return false
	}
}

// handleMessage surfaces the raw body and, when it carries a "user:" line,
// stores the parsed event under (game, user). Parse shortcomings never
// propagate past this point.
func (p *Processor) handleMessage(f *frame.Frame) {
	p.notifier.Notify(f.Body)

	user, ok := event.ExtractUser(f.Body)
	if !ok {
		logger.Debug("MESSAGE body has no user line, not an event report")
		return
	}

	e := event.ParseBody(f.Body)
	p.store.Add(user, *e)
	logger.DebugF("Stored event %q for game %s from user %s", e.Name, e.GameKey(), user)

	if p.archive != nil {
		p.archive.SaveEvent(user, *e)
	}
}

// handleReceipt resolves the pending receipt and reports termination when the
// broker acknowledged our DISCONNECT. Receipts without a usable receipt-id
// header and unknown ids are ignored.
func (p *Processor) handleReceipt(f *frame.Frame) bool {
	value, ok := f.Get("receipt-id")
	if !ok {
		logger.Warn("RECEIPT frame without receipt-id header")
		return false
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		logger.WarnF("RECEIPT frame with non-numeric receipt-id %q", value)
		return false
	}

	if confirmation, ok := p.session.ResolveReceipt(id); ok {
		p.notifier.Notify(confirmation)
	}

	return p.session.IsDisconnectReceipt(id)
}
