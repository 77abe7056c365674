package frame

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestEncodeSubscribe(t *testing.T) {
	f := New(SUBSCRIBE).
		AddHeader("destination", "chat").
		AddHeader("id", "0").
		AddHeader("receipt", "1")

	expect := "SUBSCRIBE\ndestination:chat\nid:0\nreceipt:1\n\n\x00"
	if got := Encode(f); !bytes.Equal(got, []byte(expect)) {
		t.Errorf("Encode mismatch, expected %q, got %q", expect, got)
	}
}

func TestDecodeSubscribe(t *testing.T) {
	f := Decode("SUBSCRIBE\ndestination:chat\nid:0\nreceipt:1\n\n\x00")

	if f.Command != SUBSCRIBE {
		t.Fatalf("expected command SUBSCRIBE, got %q", f.Command)
	}
	expectHeaders := []Header{
		{"destination", "chat"},
		{"id", "0"},
		{"receipt", "1"},
	}
	if len(f.Headers) != len(expectHeaders) {
		t.Fatalf("expected %d headers, got %d", len(expectHeaders), len(f.Headers))
	}
	for i, h := range expectHeaders {
		if f.Headers[i] != h {
			t.Errorf("header %d: expected %v, got %v", i, h, f.Headers[i])
		}
	}
	if f.Body != "" {
		t.Errorf("expected empty body, got %q", f.Body)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		frame *Frame
	}{
		{
			name: "connect",
			frame: New(CONNECT).
				AddHeader("accept-version", "1.2").
				AddHeader("host", "stomp.example.org").
				AddHeader("login", "meni").
				AddHeader("passcode", "films"),
		},
		{
			name:  "send with multi-line body",
			frame: &Frame{Command: SEND, Headers: []Header{{"destination", "ajax_tottenham"}}, Body: "user:meni\ntime:300\n"},
		},
		{
			name:  "value containing colon",
			frame: New(MESSAGE).AddHeader("destination", "a:b:c"),
		},
		{
			name:  "no headers",
			frame: &Frame{Command: ERROR, Body: "something broke"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded := Decode(string(Encode(tt.frame)))
			if decoded.Command != tt.frame.Command {
				t.Errorf("command: expected %q, got %q", tt.frame.Command, decoded.Command)
			}
			if len(decoded.Headers) != len(tt.frame.Headers) {
				t.Fatalf("headers: expected %d, got %d", len(tt.frame.Headers), len(decoded.Headers))
			}
			for i, h := range tt.frame.Headers {
				if decoded.Headers[i] != h {
					t.Errorf("header %d: expected %v, got %v", i, h, decoded.Headers[i])
				}
			}
			if decoded.Body != tt.frame.Body {
				t.Errorf("body: expected %q, got %q", tt.frame.Body, decoded.Body)
			}
		})
	}
}

func TestDecodeTolerance(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		f := Decode("")
		if f.Command != "" || len(f.Headers) != 0 || f.Body != "" {
			t.Errorf("expected empty frame, got %+v", f)
		}
	})

	t.Run("header line without colon is dropped", func(t *testing.T) {
		f := Decode("MESSAGE\nnot a header\ndestination:chat\n\nbody\x00")
		if len(f.Headers) != 1 || f.Headers[0].Key != "destination" {
			t.Errorf("expected only the destination header, got %+v", f.Headers)
		}
		if f.Body != "body" {
			t.Errorf("expected body %q, got %q", "body", f.Body)
		}
	})

	t.Run("carriage returns stripped", func(t *testing.T) {
		f := Decode("RECEIPT\r\nreceipt-id:7\r\n\r\n\x00")
		if f.Command != RECEIPT {
			t.Errorf("expected command RECEIPT, got %q", f.Command)
		}
		if v, ok := f.Get("receipt-id"); !ok || v != "7" {
			t.Errorf("expected receipt-id 7, got %q (ok=%v)", v, ok)
		}
	})

	t.Run("body keeps embedded newlines", func(t *testing.T) {
		f := Decode("MESSAGE\n\nline one\n\nline two\n\x00")
		if f.Body != "line one\n\nline two\n" {
			t.Errorf("unexpected body %q", f.Body)
		}
	})

	t.Run("missing trailing NUL", func(t *testing.T) {
		f := Decode("CONNECTED\nversion:1.2\n\n")
		if f.Command != CONNECTED {
			t.Errorf("expected command CONNECTED, got %q", f.Command)
		}
	})
}

func TestReadFrame(t *testing.T) {
	wire := "CONNECTED\nversion:1.2\n\n\x00RECEIPT\nreceipt-id:0\n\n\x00"
	r := bufio.NewReader(strings.NewReader(wire))

	first, err := ReadFrame(r)
	if err != nil {
		t.Fatalf("first frame: %v", err)
	}
	if first.Command != CONNECTED {
		t.Errorf("expected CONNECTED, got %q", first.Command)
	}

	second, err := ReadFrame(r)
	if err != nil {
		t.Fatalf("second frame: %v", err)
	}
	if second.Command != RECEIPT {
		t.Errorf("expected RECEIPT, got %q", second.Command)
	}

	if _, err := ReadFrame(r); err != io.EOF {
		t.Errorf("expected io.EOF after last frame, got %v", err)
	}
}
