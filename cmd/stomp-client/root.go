package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/client"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/config"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/database"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/lifecycle"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/logger"
	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/protocol"
)

var configPath string

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "config.json", "config file path")
}

var rootCmd = &cobra.Command{
	Use:   "stomp-client",
	Short: "Interactive game-feed messaging client",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.ReadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			return err
		}

		loggerCallback := logger.Init(cfg.DebugMode)
		logger.Debug("Client initializing...")
		cleaner := lifecycle.NewCleaner()
		cleaner.Init(loggerCallback)
		defer cleaner.Clean()

		var archive protocol.Archive
		if cfg.Archive.Enabled {
			db, err := database.Connect(cfg.Archive, cfg.AppName)
			if err != nil {
				logger.FatalF("Error occured while initializing archive database, details: %v", err)
				return err
			}
			cleaner.Add(db.CloseCallback())
			archive = db
		}

		c := client.New(protocol.NewWriterNotifier(os.Stdout), archive)
		runCommandLoop(c, os.Stdin, os.Stdout)
		return nil
	},
}
