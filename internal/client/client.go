// Package client ties the pieces of one broker session together: the
// transport connection, the shared session state, the inbound frame reader
// and the outbound commands the CLI drives.
package client

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/event"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/logger"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/protocol"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/session"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/transport"
)

var (
	ErrNotLoggedIn       = errors.New("not logged in")
	ErrAlreadyLoggedIn   = errors.New("already logged in")
	ErrAlreadySubscribed = errors.New("already joined this channel")
	ErrNotSubscribed     = errors.New("not joined to this channel")
)

// Dialer lets tests swap the network transport for an in-memory one.
type Dialer func(addr string) (transport.Conn, error)

type Client struct {
	notifier protocol.Notifier
	archive  protocol.Archive
	dial     Dialer

	sessionID string
	session   *session.Session
	store     *event.Store
	conn      transport.Conn
	group     *errgroup.Group
	done      chan struct{}
}

// New creates a logged-out client. archive may be nil.
func New(notifier protocol.Notifier, archive protocol.Archive) *Client {
	return &Client{
		notifier: notifier,
		archive:  archive,
		dial:     transport.Dial,
	}
}

// NewWithDialer is New with a custom transport dialer.
func NewWithDialer(notifier protocol.Notifier, archive protocol.Archive, dial Dialer) *Client {
	c := New(notifier, archive)
	c.dial = dial
	return c
}

func (c *Client) LoggedIn() bool {
	return c.conn != nil
}

func (c *Client) Username() string {
	if c.session == nil {
		return ""
	}
	return c.session.Username()
}

// Terminated reports whether the inbound reader has stopped, either because
// the disconnect receipt arrived, the broker sent ERROR, or the transport
// dropped.
func (c *Client) Terminated() bool {
	if c.done == nil {
		return true
	}
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Login dials the broker, sends CONNECT and starts the inbound reader. The
// CONNECTED answer is surfaced asynchronously by the processor.
func (c *Client) Login(addr, username, password string) error {
	if c.LoggedIn() {
		return ErrAlreadyLoggedIn
	}

	conn, err := c.dial(addr)
	if err != nil {
		return fmt.Errorf("could not connect to server %s: %w", addr, err)
	}

	c.sessionID = uuid.NewString()
	c.session = session.New(username)
	c.store = event.NewStore()
	c.conn = conn
	processor := protocol.NewProcessor(c.session, c.store, c.notifier, c.archive)

	host := addr
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}

	if err := conn.WriteFrame(c.session.ConnectFrame(host, username, password)); err != nil {
		_ = conn.Close()
		c.conn = nil
		return fmt.Errorf("disconnected before login completed: %w", err)
	}

	logger.InfoF("[%s] Session started for user %s on %s", c.sessionID, username, addr)

	c.done = make(chan struct{})
	c.group = new(errgroup.Group)
	c.group.Go(func() error {
		defer close(c.done)
		return c.readLoop(processor)
	})

	return nil
}

// readLoop feeds inbound frames to the processor in strict arrival order
// until the processor signals termination or the transport drops.
func (c *Client) readLoop(processor *protocol.Processor) error {
	for {
		f, err := c.conn.ReadFrame()
		if err != nil {
			c.notifier.Notify("Disconnected from server")
			return err
		}
		if processor.Process(f) {
			logger.InfoF("[%s] Session terminated", c.sessionID)
			return nil
		}
	}
}

// Logout sends DISCONNECT and blocks until the inbound reader observes the
// matching receipt. There is no timeout: an unresponsive broker keeps the
// call waiting.
func (c *Client) Logout() error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}

	if err := c.conn.WriteFrame(c.session.DisconnectFrame()); err != nil {
		logger.WarnF("[%s] Fail to send DISCONNECT frame, details: %v", c.sessionID, err)
	}

	err := c.group.Wait()
	c.Teardown()
	if err != nil {
		return fmt.Errorf("connection lost during logout: %w", err)
	}
	return nil
}

// Teardown closes the transport and clears all session state so a fresh
// login starts clean. Safe to call after the reader has already stopped.
func (c *Client) Teardown() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	if c.session != nil {
		c.session.Reset()
		c.session = nil
	}
	c.store = nil
	logger.DebugF("[%s] Session state cleared", c.sessionID)
}

// WriteSummary renders the (game, user) report and writes it verbatim to a
// file.
func (c *Client) WriteSummary(game, user, outFile string) error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}
	report := c.store.Summarize(game, user)
	if err := os.WriteFile(outFile, []byte(report), 0644); err != nil {
		return fmt.Errorf("writing summary file: %w", err)
	}
	logger.InfoF("[%s] Summary for %s by %s written to %s", c.sessionID, game, user, outFile)
	return nil
}
