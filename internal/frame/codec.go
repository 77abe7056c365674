package frame

import (
	"strings"
)

// Encode renders a frame into its wire form. Header values are written as-is,
// so callers must keep newlines out of keys and values when they need an
// exact round trip.
func Encode(f *Frame) []byte {
	var b strings.Builder
	b.WriteString(string(f.Command))
	b.WriteByte('\n')
	for _, h := range f.Headers {
		b.WriteString(h.Key)
		b.WriteByte(':')
		b.WriteString(h.Value)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(f.Body)
	b.WriteByte(0)
	return []byte(b.String())
}

// Decode parses received wire text back into a frame. The parse is tolerant:
// header lines without a colon are dropped, carriage returns are stripped,
// and empty input yields an empty frame.
func Decode(wire string) *Frame {
	wire = strings.TrimSuffix(wire, "\x00")

	f := &Frame{}
	line, rest := nextLine(wire)
	f.Command = Command(strings.TrimSuffix(line, "\r"))

	for rest != "" {
		var headerLine string
		headerLine, rest = nextLine(rest)
		headerLine = strings.TrimSuffix(headerLine, "\r")
		if headerLine == "" {
			// Blank line terminates the header section.
			break
		}
		key, value, found := strings.Cut(headerLine, ":")
		if !found {
			continue
		}
		f.AddHeader(key, value)
	}

	f.Body = rest
	return f
}

// nextLine cuts the input at the first newline, returning the line without
// its terminator and the remainder.
func nextLine(s string) (string, string) {
	line, rest, found := strings.Cut(s, "\n")
	if !found {
		return s, ""
	}
	return line, rest
}
