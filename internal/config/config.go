package config

import (
	"encoding/json"
	"errors"
	"os"
)

type ArchiveConfig struct {
	Enabled            bool   `json:"enabled"`
	Host               string `json:"host"`
	Port               uint64 `json:"port"`
	Username           string `json:"username"`
	Password           string `json:"password"`
	Database           string `json:"database"`
	UseTLS             bool   `json:"use_tls"`
	ConnectTimeout     string `json:"connect_timeout"`
	SocketTimeout      string `json:"socket_timeout"`
	ConnectIdleTimeout string `json:"connect_idle_timeout"`
	OperationTimeout   string `json:"operation_timeout"`
	Heartbeat          string `json:"heartbeat"`
	MinPoolSize        uint64 `json:"min_pool_size"`
	MaxPoolSize        uint64 `json:"max_pool_size"`
}

type Config struct {
	// Archive mirrors received game events into MongoDB when enabled.
	Archive   ArchiveConfig `json:"archive"`
	DebugMode bool          `json:"debug_mode"`
	AppName   string        `json:"app_name"`
}

var config Config
var initialized = false

func defaults() Config {
	cfg := Config{AppName: "stomp-client"}
	cfg.Archive.ConnectTimeout = "10s"
	cfg.Archive.SocketTimeout = "10s"
	cfg.Archive.ConnectIdleTimeout = "5m"
	cfg.Archive.OperationTimeout = "5s"
	cfg.Archive.Heartbeat = "10s"
	cfg.Archive.MinPoolSize = 1
	cfg.Archive.MaxPoolSize = 8
	return cfg
}

func ReadConfig(path string) (Config, error) {
	bytes, err := os.ReadFile(path)

	if err != nil {
		config = defaults()
		writer, _ := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
		data, _ := json.MarshalIndent(config, "", "\t")
		_, _ = writer.Write(data)
		_ = writer.Close()
		initialized = true
		return config, nil
	}

	err = json.Unmarshal(bytes, &config)

	if err != nil {
		return config, errors.New("the configuration file does not contain valid JSON")
	}

	initialized = true
	return config, nil
}

func GetConfig() (Config, error) {
	if initialized {
		return config, nil
	}
	return ReadConfig("config.json")
}
