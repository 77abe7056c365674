package transport

import (
	"errors"
	"io"
	"net"
	"os"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/logger"
)

func IsNetClosedError(err error) bool {
	if errors.Is(err, net.ErrClosed) {
		return true
	}
	var opErr *net.OpError
	ok := errors.As(err, &opErr)
	return ok && opErr.Timeout()
}

func HandleReadError(connID string, err error) {
	switch {
	case errors.Is(err, io.EOF):
		logger.InfoF("[%s] Server closed the connection", connID)
	case os.IsTimeout(err):
		logger.WarnF("[%s] Reading timeout", connID)
	default:
		logger.ErrorF("[%s] Error occured while reading frame, details: %v", connID, err)
	}
}
