package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glarsen/timedata-go/cmd/realtime"
	"github.com/glarsen/timedata-go/cmd/snapshot"
	"github.com/glarsen/timedata-go/internal/conf"
	"github.com/glarsen/timedata-go/internal/logging"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timedata",
		Short: "Time and astronomical metrics for a home-automation controller",
	}

	// Set up the global flags for the root command.
	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		realtime.Command(settings),
		snapshot.Command(settings),
	}

	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		applyFlagOverrides(cmd, settings)

		if settings.Main.Debug {
			logging.SetLevel(slog.LevelDebug)
		}

		return nil
	}

	return rootCmd
}

// Flag targets for optional location values; applied only when the flag was
// actually set, so the config file values survive otherwise.
var (
	flagLatitude  float64
	flagLongitude float64
)

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Main.Debug, "debug", "d", viper.GetBool("main.debug"), "Enable debug output")
	rootCmd.PersistentFlags().Float64Var(&flagLatitude, "latitude", viper.GetFloat64("location.latitude"), "Latitude of the location in decimal degrees")
	rootCmd.PersistentFlags().Float64Var(&flagLongitude, "longitude", viper.GetFloat64("location.longitude"), "Longitude of the location in decimal degrees")
	rootCmd.PersistentFlags().StringVar(&settings.Location.Timezone, "timezone", viper.GetString("location.timezone"), "IANA timezone identifier, e.g. America/Vancouver")
	rootCmd.PersistentFlags().StringVar(&settings.Location.Hemisphere, "hemisphere", viper.GetString("location.hemisphere"), "Hemisphere for season classification (north or south)")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	return nil
}

// applyFlagOverrides copies explicitly set location flags into the settings.
func applyFlagOverrides(cmd *cobra.Command, settings *conf.Settings) {
	if cmd.Flags().Changed("latitude") {
		lat := flagLatitude
		settings.Location.Latitude = &lat
	}
	if cmd.Flags().Changed("longitude") {
		lon := flagLongitude
		settings.Location.Longitude = &lon
	}
}
