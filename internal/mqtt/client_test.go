package mqtt

import (
	"context"
	"testing"

	"github.com/glarsen/timedata-go/internal/conf"
	"github.com/glarsen/timedata-go/internal/errors"
)

func testSettings(t *testing.T) *conf.Settings {
	t.Helper()
	settings := &conf.Settings{}
	settings.Main.Name = "timedata-test"
	settings.Main.Log.Path = t.TempDir()
	settings.Realtime.MQTT.Broker = "tcp://localhost:1883"
	settings.Realtime.MQTT.Topic = "timedata"
	settings.Realtime.MQTT.Retain = true
	return settings
}

func TestNewClientFromSettings(t *testing.T) {
	c, err := NewClient(testSettings(t), nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	impl, ok := c.(*client)
	if !ok {
		t.Fatalf("NewClient returned %T", c)
	}

	if impl.config.Broker != "tcp://localhost:1883" {
		t.Errorf("broker = %q", impl.config.Broker)
	}
	if impl.config.ClientID != "timedata-test" {
		t.Errorf("client id = %q", impl.config.ClientID)
	}
	if !impl.config.Retain {
		t.Error("retain flag not carried over from settings")
	}

	if c.IsConnected() {
		t.Error("new client reports connected before Connect")
	}
}

func TestConnectRejectsInvalidBrokerURL(t *testing.T) {
	settings := testSettings(t)
	settings.Realtime.MQTT.Broker = "://not-a-url"

	c, err := NewClient(settings, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	err = c.Connect(context.Background())
	if err == nil {
		t.Fatal("expected error for malformed broker URL")
	}

	var ee *errors.EnhancedError
	if !errors.As(err, &ee) {
		t.Fatalf("error type = %T, want EnhancedError", err)
	}
	if ee.GetCategory() != string(errors.CategoryMQTTConnection) {
		t.Errorf("category = %q, want %q", ee.GetCategory(), errors.CategoryMQTTConnection)
	}
}

func TestPublishRequiresConnection(t *testing.T) {
	c, err := NewClient(testSettings(t), nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if err := c.Publish(context.Background(), "timedata/clock", "{}"); err == nil {
		t.Error("expected error when publishing without a connection")
	}
}
