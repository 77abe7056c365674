package database

import (
	"context"
	"time"

	domain "github.com/life-stream-dev/life-stream-go-stomp-client/internal/event"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/logger"
)

type ArchivedEvent struct {
	GameKey        string            `bson:"game_key"`
	User           string            `bson:"user"`
	EventName      string            `bson:"event_name"`
	Time           int               `bson:"time"`
	GeneralUpdates map[string]string `bson:"general_updates"`
	TeamAUpdates   map[string]string `bson:"team_a_updates"`
	TeamBUpdates   map[string]string `bson:"team_b_updates"`
	Description    string            `bson:"description"`
	ReceivedAt     time.Time         `bson:"received_at"`
}

// SaveEvent appends one event to the archive collection. Failures are logged
// and swallowed so the session is never disturbed by archive trouble.
func (a *Archive) SaveEvent(user string, e domain.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), a.operationTimeout)
	defer cancel()

	doc := ArchivedEvent{
		GameKey:        e.GameKey(),
		User:           user,
		EventName:      e.Name,
		Time:           e.Time,
		GeneralUpdates: e.GeneralUpdates,
		TeamAUpdates:   e.TeamAUpdates,
		TeamBUpdates:   e.TeamBUpdates,
		Description:    e.Description,
		ReceivedAt:     time.Now(),
	}

	startTime := time.Now()
	_, err := a.events.InsertOne(ctx, doc)
	if err != nil {
		logger.ErrorF("Fail to archive event %q for game %s, details: %v", e.Name, e.GameKey(), err)
		return
	}
	logger.DebugF("Archived event %q for game %s, cost: %v", e.Name, e.GameKey(), time.Since(startTime))
}
