package realtime

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glarsen/timedata-go/internal/conf"
	"github.com/glarsen/timedata-go/internal/reporter"
)

// Command creates a new command that runs the metric reporting daemon.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "realtime",
		Short: "Publish time and sun metrics on a schedule",
		Long:  "Start the reporting daemon: clock metrics are published on the short interval and sunrise/sunset pairs on the long interval until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return reporter.RunRealtime(settings)
		},
	}

	if err := setupFlags(cmd, settings); err != nil {
		fmt.Printf("error setting up flags: %v\n", err)
		os.Exit(1)
	}

	return cmd
}

// setupFlags configures flags specific to the realtime command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) error {
	cmd.Flags().BoolVar(&settings.Realtime.MQTT.Enabled, "mqtt", viper.GetBool("realtime.mqtt.enabled"), "Enable MQTT publishing")
	cmd.Flags().StringVar(&settings.Realtime.MQTT.Broker, "broker", viper.GetString("realtime.mqtt.broker"), "MQTT broker URL")
	cmd.Flags().StringVar(&settings.Realtime.MQTT.Topic, "topic", viper.GetString("realtime.mqtt.topic"), "Base MQTT topic for published metrics")
	cmd.Flags().IntVar(&settings.Realtime.Interval.Short, "short-interval", viper.GetInt("realtime.interval.short"), "Clock metrics publish interval in seconds")
	cmd.Flags().IntVar(&settings.Realtime.Interval.Long, "long-interval", viper.GetInt("realtime.interval.long"), "Sunrise/sunset publish interval in seconds")
	cmd.Flags().BoolVar(&settings.Realtime.Telemetry.Enabled, "telemetry", viper.GetBool("realtime.telemetry.enabled"), "Enable Prometheus telemetry endpoint")
	cmd.Flags().StringVar(&settings.Realtime.Telemetry.Listen, "listen", viper.GetString("realtime.telemetry.listen"), "Listen address and port of telemetry endpoint")

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	return nil
}
