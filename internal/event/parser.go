package event

import (
	"strconv"
	"strings"
)

// Body sections. Scalar lines (team a, team b, event name, time) come before
// any marker; each marker switches the target of the key:value lines that
// follow. The description section runs to the end of the body and is never
// terminated by another marker.
type section int

const (
	sectionScalars section = iota
	sectionGeneral
	sectionTeamA
	sectionTeamB
	sectionDescription
)

// ExtractUser returns the reporting user of a frame body, taken from the
// first "user:" line. A body without one is not an event report.
func ExtractUser(body string) (string, bool) {
	for _, line := range splitLines(body) {
		if user, ok := strings.CutPrefix(line, "user:"); ok {
			return strings.TrimSuffix(user, "\r"), true
		}
	}
	return "", false
}

// ParseBody reads an event out of a frame body. The parse is best effort:
// unknown keys are skipped and a bad time value defaults to 0.
func ParseBody(body string) *Event {
	e := &Event{
		GeneralUpdates: make(map[string]string),
		TeamAUpdates:   make(map[string]string),
		TeamBUpdates:   make(map[string]string),
	}

	current := sectionScalars
	var description strings.Builder

	for _, line := range splitLines(body) {
		if current == sectionDescription {
			description.WriteString(line)
			description.WriteByte('\n')
			continue
		}

		switch line {
		case "general game updates:":
			current = sectionGeneral
			continue
		case "team a updates:":
			current = sectionTeamA
			continue
		case "team b updates:":
			current = sectionTeamB
			continue
		case "description:":
			current = sectionDescription
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		switch current {
		case sectionGeneral:
			e.GeneralUpdates[key] = value
		case sectionTeamA:
			e.TeamAUpdates[key] = value
		case sectionTeamB:
			e.TeamBUpdates[key] = value
		case sectionScalars:
			switch key {
			case "team a":
				e.TeamA = value
			case "team b":
				e.TeamB = value
			case "event name":
				e.Name = value
			case "time":
				if t, err := strconv.Atoi(value); err == nil {
					e.Time = t
				}
			}
		}
	}

	e.Description = description.String()
	return e
}

// splitLines splits on newlines without yielding a phantom empty line after a
// trailing terminator.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
