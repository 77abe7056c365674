package transport

import (
	"bufio"
	"fmt"
	"net"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/frame"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/logger"
)

type tcpConn struct {
	conn   net.Conn
	reader *bufio.Reader
	connID string
}

// DialTCP opens a plain socket to the broker.
func DialTCP(addr string) (Conn, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}
	c := &tcpConn{
		conn:   conn,
		reader: bufio.NewReader(conn),
		connID: conn.RemoteAddr().String(),
	}
	logger.DebugF("[%s] Connection established", c.connID)
	return c, nil
}

func (c *tcpConn) WriteFrame(f *frame.Frame) error {
	data := frame.Encode(f)
	total := 0
	for total < len(data) {
		n, err := c.conn.Write(data[total:])
		if err != nil {
			logger.ErrorF("[%s] Fail to send data, details: %v", c.connID, err)
			return err
		}
		total += n
	}
	logger.DebugF("[%s] Sent %s frame, %d bytes", c.connID, f.Command, total)
	return nil
}

func (c *tcpConn) ReadFrame() (*frame.Frame, error) {
	f, err := frame.ReadFrame(c.reader)
	if err != nil {
		HandleReadError(c.connID, err)
		return nil, err
	}
	logger.DebugF("[%s] Received %s frame", c.connID, f.Command)
	return f, nil
}

func (c *tcpConn) Close() error {
	logger.DebugF("[%s] Connection closed", c.connID)
	if err := c.conn.Close(); err != nil && !IsNetClosedError(err) {
		logger.WarnF("[%s] Error occured while closing connection, details: %v", c.connID, err)
		return err
	}
	return nil
}
