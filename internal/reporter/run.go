package reporter

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/glarsen/timedata-go/internal/conf"
	"github.com/glarsen/timedata-go/internal/mqtt"
	"github.com/glarsen/timedata-go/internal/observability"
	"github.com/glarsen/timedata-go/internal/timedata"
)

// RunRealtime wires up the engine, transport and telemetry from settings and
// runs the reporting service until SIGINT or SIGTERM.
func RunRealtime(settings *conf.Settings) error {
	configureLogger(&settings.Main.Log)

	engine := timedata.NewEngine()
	result := engine.Configure(timedata.LocationFromConf(
		settings.Location.Latitude,
		settings.Location.Longitude,
		settings.Location.Timezone,
		settings.Location.Hemisphere,
	))
	if !result.OK() {
		// Not fatal: the service stays up and reports nothing, matching the
		// behavior the controller expects while configuration is incomplete.
		for _, notice := range result.Notices() {
			reporterLogger.Warn("Configuration notice", "notice", notice)
		}
		if err := result.Err(); err != nil {
			reporterLogger.Warn("Configuration error detail", "error", err)
		}
	}

	metrics, err := observability.NewMetrics()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	var wg sync.WaitGroup
	quitChan := make(chan struct{})

	if settings.Realtime.Telemetry.Enabled {
		endpoint, err := observability.NewEndpoint(settings, metrics)
		if err != nil {
			return fmt.Errorf("failed to create telemetry endpoint: %w", err)
		}
		endpoint.Start(&wg, quitChan)
	}

	var client mqtt.Client
	if settings.Realtime.MQTT.Enabled {
		client, err = mqtt.NewClient(settings, metrics.MQTT)
		if err != nil {
			return fmt.Errorf("failed to create MQTT client: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := client.Connect(ctx); err != nil {
			// The paho client keeps retrying in the background; publishing
			// resumes once the broker is reachable.
			reporterLogger.Warn("Initial MQTT connection failed", "error", err)
		}
		cancel()
		defer client.Disconnect()
	}

	service := NewService(settings, engine, client, metrics)

	wg.Add(1)
	go func() {
		defer wg.Done()
		service.Start(quitChan)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	reporterLogger.Info("Received shutdown signal", "signal", sig.String())

	close(quitChan)
	wg.Wait()
	return nil
}
