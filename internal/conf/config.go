// config.go: This file contains the configuration for the timedata application. It defines the settings struct and functions to load and save the settings.
package conf

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

//go:embed config.yaml
var configFiles embed.FS

// LogConfig contains settings for service log files.
type LogConfig struct {
	Level string // minimum level: trace, debug, info, warn, error
	Path  string // directory for per-service log files
}

// MainSettings contains top-level application settings.
type MainSettings struct {
	Name  string    // node name, also used as MQTT client id
	Debug bool      // true to enable debug output
	Log   LogConfig // log file settings
}

// LocationSettings contains the geographic location the metrics are derived for.
// Latitude and longitude are pointers so that an unset value is distinguishable
// from a valid 0.0 coordinate.
type LocationSettings struct {
	Latitude   *float64 // latitude in decimal degrees, -90..90
	Longitude  *float64 // longitude in decimal degrees, -180..180
	Timezone   string   // IANA timezone identifier, e.g. "America/Vancouver"
	Hemisphere string   // "north" or "south", used for season classification
}

// MQTTSettings contains settings for the MQTT connection to the controller.
type MQTTSettings struct {
	Enabled  bool   // true to enable MQTT publishing
	Broker   string // MQTT broker URL, e.g. tcp://localhost:1883
	Topic    string // base topic for published metrics
	Username string // MQTT username
	Password string // MQTT password
	Retain   bool   // true to retain published messages at the broker
}

// TelemetrySettings contains settings for the Prometheus telemetry endpoint.
type TelemetrySettings struct {
	Enabled bool   // true to expose Prometheus metrics
	Listen  string // listen address, e.g. "localhost:8090"
}

// IntervalSettings contains the two publish cadences in seconds.
type IntervalSettings struct {
	Short int // clock metrics refresh interval
	Long  int // solar metrics refresh interval
}

// RealtimeSettings contains settings for the realtime reporting daemon.
type RealtimeSettings struct {
	Interval  IntervalSettings
	MQTT      MQTTSettings
	Telemetry TelemetrySettings
}

// Settings is the root configuration struct.
type Settings struct {
	Main     MainSettings
	Location LocationSettings
	Realtime RealtimeSettings
}

// settingsInstance is the current settings instance
var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into a Settings struct.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	// Initialize viper and read config
	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	// Unmarshal the config into settings
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	// Validate settings
	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	// Set default values for each configuration parameter
	// function defined in defaults.go
	setDefaultConfig()

	err = viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create config with defaults
			return createDefaultConfig()
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default config file and writes it to the default config path
func createDefaultConfig() error {
	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}
	configPath := filepath.Join(configPaths[0], "config.yaml")
	defaultConfig := getDefaultConfig()

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("error creating directories for config file: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("error writing default config file: %w", err)
	}

	fmt.Println("Created default config file at:", configPath)
	return viper.ReadInConfig()
}

// getDefaultConfig returns the embedded default configuration template.
func getDefaultConfig() string {
	data, err := fs.ReadFile(configFiles, "config.yaml")
	if err != nil {
		panic(fmt.Sprintf("error reading embedded config.yaml: %v", err))
	}
	return string(data)
}

// GetDefaultConfigPaths returns the paths where the config file is searched for,
// in order of precedence: current directory, then the OS user config directory.
func GetDefaultConfigPaths() ([]string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("error getting user config directory: %w", err)
	}
	return []string{
		".",
		filepath.Join(configDir, "timedata"),
	}, nil
}

// Setting returns the current settings instance.
// Returns nil if Load has not been called.
func Setting() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}
