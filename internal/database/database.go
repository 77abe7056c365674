// Package database mirrors stored game events into MongoDB when the archive
// is enabled in the config. The in-memory store stays authoritative; archive
// failures are logged and never fail the session.
package database

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/config"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/logger"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/utils"
)

const EventCollectionName = "events"

type Archive struct {
	client           *mongo.Client
	events           *mongo.Collection
	operationTimeout time.Duration
}

type CloseCallback struct {
	archive *Archive
}

func (dc *CloseCallback) Invoke(ctx context.Context) error {
	logger.Info("Closing archive database connection")
	return dc.archive.client.Disconnect(ctx)
}

func (a *Archive) CloseCallback() *CloseCallback {
	return &CloseCallback{archive: a}
}

// Connect opens the archive database and prepares the events collection.
func Connect(cfg config.ArchiveConfig, appName string) (*Archive, error) {
	logger.Debug("Connecting to archive database...")

	encodedUser := url.QueryEscape(cfg.Username)
	encodedPass := url.QueryEscape(cfg.Password)
	databaseUrl := fmt.Sprintf("mongodb://%s:%s@%s:%d/?authSource=admin",
		encodedUser, encodedPass,
		cfg.Host,
		cfg.Port,
	)

	clientOptions := options.Client().ApplyURI(databaseUrl).SetAppName(appName)
	clientOptions.SetMinPoolSize(cfg.MinPoolSize)
	clientOptions.SetMaxPoolSize(cfg.MaxPoolSize)
	clientOptions.SetMaxConnIdleTime(utils.ParseStringTime(cfg.ConnectIdleTimeout))
	clientOptions.SetConnectTimeout(utils.ParseStringTime(cfg.ConnectTimeout))
	clientOptions.SetSocketTimeout(utils.ParseStringTime(cfg.SocketTimeout))
	clientOptions.SetHeartbeatInterval(utils.ParseStringTime(cfg.Heartbeat))
	if cfg.UseTLS {
		clientOptions.SetTLSConfig(&tls.Config{InsecureSkipVerify: false})
	}
	clientOptions.SetPoolMonitor(&event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case event.ConnectionCreated:
				logger.DebugF("Archive connection created: %+v", evt)
			case event.ConnectionClosed:
				logger.DebugF("Archive connection closed: %+v", evt)
			}
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error occured while connecting to archive database: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error occured while pinging archive database: %w", err)
	}

	archive := &Archive{
		client:           client,
		events:           client.Database(cfg.Database).Collection(EventCollectionName),
		operationTimeout: utils.ParseStringTime(cfg.OperationTimeout),
	}

	_, err = archive.events.Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "game_key", Value: 1}, {Key: "user", Value: 1}},
			Options: options.Index().SetName("events_game_user"),
		},
	)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error occured while creating archive indexes: %w", err)
	}

	return archive, nil
}
