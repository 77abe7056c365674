package frame

import (
	"bufio"
)

// ReadFrame blocks until a full NUL-terminated frame has been read and
// returns it decoded. Any read failure, including a short read at EOF, is
// returned to the caller; the session treats it as transport loss.
func ReadFrame(r *bufio.Reader) (*Frame, error) {
	data, err := r.ReadString(0)
	if err != nil {
		return nil, err
	}
	return Decode(data), nil
}
