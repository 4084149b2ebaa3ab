// defaults.go: default values for the configuration, applied before the config file is read
package conf

import "github.com/spf13/viper"

// setDefaultConfig sets the default configuration values for viper.
func setDefaultConfig() {
	// Main settings
	viper.SetDefault("main.name", "timedata")
	viper.SetDefault("main.debug", false)
	viper.SetDefault("main.log.level", "info")
	viper.SetDefault("main.log.path", "logs")

	// Location settings. Latitude, longitude and timezone have no default:
	// the engine stays in the not-configured state until the user sets them.
	viper.SetDefault("location.hemisphere", "north")

	// Realtime settings
	viper.SetDefault("realtime.interval.short", 30)
	viper.SetDefault("realtime.interval.long", 600)
	viper.SetDefault("realtime.mqtt.enabled", false)
	viper.SetDefault("realtime.mqtt.broker", "tcp://localhost:1883")
	viper.SetDefault("realtime.mqtt.topic", "timedata")
	viper.SetDefault("realtime.mqtt.username", "")
	viper.SetDefault("realtime.mqtt.password", "")
	viper.SetDefault("realtime.mqtt.retain", false)
	viper.SetDefault("realtime.telemetry.enabled", false)
	viper.SetDefault("realtime.telemetry.listen", "localhost:8090")
}
