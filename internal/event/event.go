// Package event holds the sports-game update domain: the Event value, the
// MESSAGE-body mini-language, the per-(game, user) store and the summary
// report.
package event

import (
	"sort"
	"strconv"
	"strings"
)

// Event is one immutable game update reported by a user.
type Event struct {
	TeamA          string
	TeamB          string
	Name           string
	Time           int
	GeneralUpdates map[string]string
	TeamAUpdates   map[string]string
	TeamBUpdates   map[string]string
	Description    string
}

// GameKey groups events belonging to one match.
func (e *Event) GameKey() string {
	return e.TeamA + "_" + e.TeamB
}

// Body renders the frame body for publishing this event on behalf of a user.
// The layout is the exact inverse of ParseBody, so subscribers reconstruct
// the same event.
func (e *Event) Body(user string) string {
	var b strings.Builder
	b.WriteString("user:" + user + "\n")
	b.WriteString("team a:" + e.TeamA + "\n")
	b.WriteString("team b:" + e.TeamB + "\n")
	b.WriteString("event name:" + e.Name + "\n")
	b.WriteString("time:" + strconv.Itoa(e.Time) + "\n")
	writeUpdates(&b, "general game updates:", e.GeneralUpdates)
	writeUpdates(&b, "team a updates:", e.TeamAUpdates)
	writeUpdates(&b, "team b updates:", e.TeamBUpdates)
	b.WriteString("description:\n")
	b.WriteString(e.Description)
	return b.String()
}

func writeUpdates(b *strings.Builder, marker string, updates map[string]string) {
	b.WriteString(marker)
	b.WriteByte('\n')
	for _, key := range sortedKeys(updates) {
		b.WriteString(key + ":" + updates[key] + "\n")
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
