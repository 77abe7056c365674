package transport

import (
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/frame"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/logger"
)

// wsConn carries one frame per WebSocket message, for brokers exposing the
// protocol over a WebSocket endpoint.
type wsConn struct {
	conn   *websocket.Conn
	connID string
}

func DialWebSocket(rawURL string) (Conn, error) {
	conn, _, err := websocket.DefaultDialer.Dial(rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", rawURL, err)
	}
	c := &wsConn{conn: conn, connID: conn.RemoteAddr().String()}
	logger.DebugF("[%s] WebSocket connection established", c.connID)
	return c, nil
}

func (c *wsConn) WriteFrame(f *frame.Frame) error {
	if err := c.conn.WriteMessage(websocket.TextMessage, frame.Encode(f)); err != nil {
		logger.ErrorF("[%s] Fail to send data, details: %v", c.connID, err)
		return err
	}
	logger.DebugF("[%s] Sent %s frame", c.connID, f.Command)
	return nil
}

func (c *wsConn) ReadFrame() (*frame.Frame, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		HandleReadError(c.connID, err)
		return nil, err
	}
	f := frame.Decode(string(data))
	logger.DebugF("[%s] Received %s frame", c.connID, f.Command)
	return f, nil
}

func (c *wsConn) Close() error {
	logger.DebugF("[%s] WebSocket connection closed", c.connID)
	return c.conn.Close()
}
