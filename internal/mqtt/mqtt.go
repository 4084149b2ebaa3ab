// mqtt.go: Package mqtt provides an abstraction for MQTT client functionality.
package mqtt

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/glarsen/timedata-go/internal/conf"
	"github.com/glarsen/timedata-go/internal/logging"
)

// Client defines the interface for MQTT client operations.
type Client interface {
	// Connect attempts to connect to the MQTT broker.
	// It returns an error if the connection fails.
	Connect(ctx context.Context) error

	// Publish sends a message to the specified topic on the MQTT broker.
	// It returns an error if the publish operation fails.
	Publish(ctx context.Context, topic, payload string) error

	// IsConnected returns true if the client is currently connected to the MQTT broker.
	IsConnected() bool

	// Disconnect closes the connection to the MQTT broker.
	Disconnect()
}

// Config holds the configuration for the MQTT client.
type Config struct {
	Broker            string
	ClientID          string
	Username          string
	Password          string
	Topic             string // Default topic for publishing messages
	Retain            bool   // true to retain messages at the broker
	ReconnectCooldown time.Duration
	ReconnectDelay    time.Duration
	// Connection timeouts
	ConnectTimeout    time.Duration
	PublishTimeout    time.Duration
	DisconnectTimeout time.Duration
}

// Package-level logger for MQTT related events
var (
	mqttLogger   *slog.Logger
	mqttLevelVar = new(slog.LevelVar)
)

func init() {
	mqttLevelVar.Set(slog.LevelInfo)
	mqttLogger = logging.ForService("mqtt")
	if mqttLogger == nil {
		mqttLogger = logging.NewDiscardLogger("mqtt")
	}
}

// configureLogger points the package logger at a rotated file under the
// configured log directory, at the configured level. Safe to call more
// than once; the most recent settings win.
func configureLogger(cfg *conf.LogConfig) {
	mqttLevelVar.Set(logging.ParseLevel(cfg.Level))

	logger, _, err := logging.NewFileLogger(filepath.Join(cfg.Path, "mqtt.log"), "mqtt", mqttLevelVar)
	if err != nil {
		logging.Error("Failed to initialize mqtt file logger", "error", err)
		return
	}
	mqttLogger = logger
}

// DefaultConfig returns a Config with reasonable default values
func DefaultConfig() Config {
	return Config{
		ReconnectCooldown: 5 * time.Second,
		ReconnectDelay:    1 * time.Second,
		ConnectTimeout:    30 * time.Second,
		PublishTimeout:    10 * time.Second,
		DisconnectTimeout: 250 * time.Millisecond,
	}
}
