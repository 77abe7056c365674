package event

import (
	"fmt"
	"sort"
	"strings"
)

// halftimeClock is the match-clock value separating the two halves, used when
// an event carries no explicit "before halftime" update.
const halftimeClock = 2700

// beforeHalftime is the primary summary sort key. An explicit
// "before halftime" general update wins; otherwise the flag is derived from
// the event time.
func (e *Event) beforeHalftime() bool {
	if v, ok := e.GeneralUpdates["before halftime"]; ok {
		return v == "true"
	}
	return e.Time < halftimeClock
}

// Summarize renders the textual report of everything user reported for a
// game. A (game, user) pair without events yields a "no updates" notice
// instead of a report.
func (s *Store) Summarize(game, user string) string {
	events := s.Events(game, user)
	if len(events) == 0 {
		return fmt.Sprintf("No updates found for %s from user %s", game, user)
	}

	// First-half events come first, ties broken by match clock. The sort is
	// stable so same-key events keep arrival order.
	sort.SliceStable(events, func(i, j int) bool {
		a, b := &events[i], &events[j]
		aBefore, bBefore := a.beforeHalftime(), b.beforeHalftime()
		if aBefore != bBefore {
			return aBefore
		}
		return a.Time < b.Time
	})

	// Later events override earlier ones per stat key.
	generalStats := make(map[string]string)
	teamAStats := make(map[string]string)
	teamBStats := make(map[string]string)
	for _, e := range events {
		for key, value := range e.GeneralUpdates {
			generalStats[key] = value
		}
		for key, value := range e.TeamAUpdates {
			teamAStats[key] = value
		}
		for key, value := range e.TeamBUpdates {
			teamBStats[key] = value
		}
	}

	teamA := events[0].TeamA
	teamB := events[0].TeamB

	var b strings.Builder
	b.WriteString(teamA + " vs " + teamB + "\n")
	writeStats(&b, "General stats:", generalStats)
	writeStats(&b, teamA+" stats:", teamAStats)
	writeStats(&b, teamB+" stats:", teamBStats)

	b.WriteString("Game event reports:\n")
	for _, e := range events {
		fmt.Fprintf(&b, "%d - %s:\n", e.Time, e.Name)
		b.WriteString(e.Description)
		if !strings.HasSuffix(e.Description, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func writeStats(b *strings.Builder, title string, stats map[string]string) {
	b.WriteString(title)
	b.WriteByte('\n')
	for _, key := range sortedKeys(stats) {
		b.WriteString(key + ": " + stats[key] + "\n")
	}
}
