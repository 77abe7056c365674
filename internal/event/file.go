package event

import (
	"encoding/json"
	"fmt"
	"os"
)

// GameEvents is the content of one events file: the two team names and the
// reported events, already carrying the team names.
type GameEvents struct {
	TeamA  string
	TeamB  string
	Events []Event
}

type eventsFile struct {
	TeamA  string `json:"team a"`
	TeamB  string `json:"team b"`
	Events []struct {
		Name           string                     `json:"event name"`
		Time           int                        `json:"time"`
		Description    string                     `json:"description"`
		GeneralUpdates map[string]json.RawMessage `json:"general game updates"`
		TeamAUpdates   map[string]json.RawMessage `json:"team a updates"`
		TeamBUpdates   map[string]json.RawMessage `json:"team b updates"`
	} `json:"events"`
}

// LoadEventsFile parses an events JSON file. Update values that are not JSON
// strings are kept as their literal JSON encoding.
func LoadEventsFile(path string) (*GameEvents, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading events file: %w", err)
	}

	var file eventsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing events file: %w", err)
	}

	result := &GameEvents{TeamA: file.TeamA, TeamB: file.TeamB}
	for _, raw := range file.Events {
		result.Events = append(result.Events, Event{
			TeamA:          file.TeamA,
			TeamB:          file.TeamB,
			Name:           raw.Name,
			Time:           raw.Time,
			Description:    raw.Description,
			GeneralUpdates: stringValues(raw.GeneralUpdates),
			TeamAUpdates:   stringValues(raw.TeamAUpdates),
			TeamBUpdates:   stringValues(raw.TeamBUpdates),
		})
	}
	return result, nil
}

func stringValues(updates map[string]json.RawMessage) map[string]string {
	result := make(map[string]string, len(updates))
	for key, raw := range updates {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			result[key] = s
			continue
		}
		result[key] = string(raw)
	}
	return result
}
