package client

import (
	"fmt"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/event"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/logger"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/session"
)

// Join subscribes to a channel. Re-joining a channel that already has a
// subscription id is rejected locally, no frame is sent.
func (c *Client) Join(channel string) error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}
	if c.session.SubscriptionID(channel) != session.NoSubscription {
		return ErrAlreadySubscribed
	}
	return c.conn.WriteFrame(c.session.SubscribeFrame(channel))
}

// Exit unsubscribes from a channel. Leaving a channel that was never joined
// is rejected locally.
func (c *Client) Exit(channel string) error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}
	if c.session.SubscriptionID(channel) == session.NoSubscription {
		return ErrNotSubscribed
	}
	return c.conn.WriteFrame(c.session.UnsubscribeFrame(channel))
}

// Add publishes a free-text message to a channel.
func (c *Client) Add(channel, message string) error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}
	return c.conn.WriteFrame(c.session.SendFrame(channel, message))
}

// Report loads an events file and publishes every event to its game channel,
// one frame per event, stamped with the logged-in user.
func (c *Client) Report(filePath string) error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}

	game, err := event.LoadEventsFile(filePath)
	if err != nil {
		return err
	}

	user := c.session.Username()
	for i := range game.Events {
		e := &game.Events[i]
		if err := c.conn.WriteFrame(c.session.SendFrame(e.GameKey(), e.Body(user))); err != nil {
			return fmt.Errorf("sending event %q: %w", e.Name, err)
		}
	}

	logger.InfoF("[%s] Reported %d events for game %s_%s", c.sessionID, len(game.Events), game.TeamA, game.TeamB)
	return nil
}
