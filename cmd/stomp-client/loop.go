package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/client"
)

// runCommandLoop reads user commands line by line until stdin closes. Frames
// arriving from the broker are printed asynchronously by the reader
// goroutine, so the loop only handles the outbound side.
func runCommandLoop(c *client.Client, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		// A server error or transport loss stops the reader without a
		// logout; clear the dead session before handling the next command.
		if c.LoggedIn() && c.Terminated() {
			c.Teardown()
		}

		switch args[0] {
		case "login":
			handleLogin(c, args, out)
		case "join":
			handleJoin(c, args, out)
		case "exit":
			handleExit(c, args, out)
		case "add":
			handleAdd(c, args, out)
		case "report":
			handleReport(c, args, out)
		case "summary":
			handleSummary(c, args, out)
		case "logout":
			handleLogout(c, out)
		default:
			fmt.Fprintf(out, "Unknown command: %s\n", args[0])
		}
	}
}

func requireLogin(c *client.Client, out io.Writer) bool {
	if !c.LoggedIn() {
		fmt.Fprintln(out, "Please login first")
		return false
	}
	return true
}

func handleLogin(c *client.Client, args []string, out io.Writer) {
	var addr, username, password string
	switch {
	case len(args) == 5:
		// Original form: login {host} {port} {username} {password}
		addr = args[1] + ":" + args[2]
		username, password = args[3], args[4]
	case len(args) == 4:
		addr = args[1]
		username, password = args[2], args[3]
	default:
		fmt.Fprintln(out, "Usage: login {host:port} {username} {password}")
		return
	}

	if err := c.Login(addr, username, password); err != nil {
		if errors.Is(err, client.ErrAlreadyLoggedIn) {
			fmt.Fprintln(out, "The client is already logged in, log out before trying again")
			return
		}
		fmt.Fprintf(out, "Could not connect to server %s\n", addr)
	}
}

func handleJoin(c *client.Client, args []string, out io.Writer) {
	if len(args) < 2 {
		fmt.Fprintln(out, "Usage: join {channel_name}")
		return
	}
	if !requireLogin(c, out) {
		return
	}
	if err := c.Join(args[1]); err != nil {
		if errors.Is(err, client.ErrAlreadySubscribed) {
			fmt.Fprintf(out, "Already joined channel %s\n", args[1])
			return
		}
		fmt.Fprintf(out, "Could not join channel %s: %v\n", args[1], err)
	}
}

func handleExit(c *client.Client, args []string, out io.Writer) {
	if len(args) < 2 {
		fmt.Fprintln(out, "Usage: exit {channel_name}")
		return
	}
	if !requireLogin(c, out) {
		return
	}
	if err := c.Exit(args[1]); err != nil {
		if errors.Is(err, client.ErrNotSubscribed) {
			fmt.Fprintf(out, "You are not subscribed to channel %s\n", args[1])
			return
		}
		fmt.Fprintf(out, "Could not exit channel %s: %v\n", args[1], err)
	}
}

func handleAdd(c *client.Client, args []string, out io.Writer) {
	if len(args) < 3 {
		fmt.Fprintln(out, "Usage: add {channel_name} {message}")
		return
	}
	if !requireLogin(c, out) {
		return
	}
	if err := c.Add(args[1], strings.Join(args[2:], " ")); err != nil {
		fmt.Fprintf(out, "Could not send message to channel %s: %v\n", args[1], err)
	}
}

func handleReport(c *client.Client, args []string, out io.Writer) {
	if len(args) < 2 {
		fmt.Fprintln(out, "Usage: report {file_path}")
		return
	}
	if !requireLogin(c, out) {
		return
	}
	if err := c.Report(args[1]); err != nil {
		fmt.Fprintf(out, "Could not report events from %s: %v\n", args[1], err)
	}
}

func handleSummary(c *client.Client, args []string, out io.Writer) {
	if len(args) < 4 {
		fmt.Fprintln(out, "Usage: summary {game_name} {user} {file}")
		return
	}
	if !requireLogin(c, out) {
		return
	}
	if err := c.WriteSummary(args[1], args[2], args[3]); err != nil {
		fmt.Fprintf(out, "Could not write summary: %v\n", err)
	}
}

func handleLogout(c *client.Client, out io.Writer) {
	if !requireLogin(c, out) {
		return
	}
	if err := c.Logout(); err != nil {
		fmt.Fprintf(out, "Logout finished with an error: %v\n", err)
	}
	fmt.Fprintln(out, "Logged out. Ready for new login.")
}
