package event

import (
	"os"
	"path/filepath"
	"testing"
)

const eventsJSON = `{
	"team a": "Germany",
	"team b": "Japan",
	"events": [
		{
			"event name": "kickoff",
			"time": 0,
			"general game updates": {"active": true, "before halftime": "true"},
			"team a updates": {"possession": "51%"},
			"team b updates": {"possession": "49%"},
			"description": "The game has started!"
		},
		{
			"event name": "goal",
			"time": 640,
			"general game updates": {"score": "1-0"},
			"team a updates": {},
			"team b updates": {},
			"description": "Germany scores"
		}
	]
}`

func TestLoadEventsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events1.json")
	if err := os.WriteFile(path, []byte(eventsJSON), 0644); err != nil {
		t.Fatal(err)
	}

	game, err := LoadEventsFile(path)
	if err != nil {
		t.Fatalf("LoadEventsFile: %v", err)
	}

	if game.TeamA != "Germany" || game.TeamB != "Japan" {
		t.Errorf("unexpected teams %q/%q", game.TeamA, game.TeamB)
	}
	if len(game.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(game.Events))
	}

	kickoff := game.Events[0]
	if kickoff.GameKey() != "Germany_Japan" {
		t.Errorf("expected events to carry the file's team names, got key %q", kickoff.GameKey())
	}
	if kickoff.Name != "kickoff" || kickoff.Time != 0 {
		t.Errorf("unexpected first event %+v", kickoff)
	}
	// Non-string values keep their JSON encoding.
	if kickoff.GeneralUpdates["active"] != "true" {
		t.Errorf("expected boolean to be kept as literal, got %q", kickoff.GeneralUpdates["active"])
	}
	if kickoff.GeneralUpdates["before halftime"] != "true" {
		t.Errorf("expected string value kept verbatim, got %q", kickoff.GeneralUpdates["before halftime"])
	}

	goal := game.Events[1]
	if goal.Time != 640 || goal.Description != "Germany scores" {
		t.Errorf("unexpected second event %+v", goal)
	}
}

func TestLoadEventsFileErrors(t *testing.T) {
	if _, err := LoadEventsFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadEventsFile(path); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}
