package snapshot

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/glarsen/timedata-go/internal/conf"
	"github.com/glarsen/timedata-go/internal/reporter"
	"github.com/glarsen/timedata-go/internal/timedata"
)

// Command creates a new command that prints one full metric snapshot.
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Print the full metric set for the current instant as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSnapshot(settings)
		},
	}
}

func printSnapshot(settings *conf.Settings) error {
	engine := timedata.NewEngine()
	result := engine.Configure(timedata.LocationFromConf(
		settings.Location.Latitude,
		settings.Location.Longitude,
		settings.Location.Timezone,
		settings.Location.Hemisphere,
	))
	if !result.OK() {
		for _, notice := range result.Notices() {
			fmt.Fprintln(os.Stderr, notice)
		}
		if err := result.Err(); err != nil {
			return fmt.Errorf("location not configured: %w", err)
		}
		return fmt.Errorf("location not configured")
	}

	snap, err := engine.Snapshot(time.Now())
	if err != nil {
		return fmt.Errorf("failed to compute snapshot: %w", err)
	}

	fields := reporter.ClockFields(snap.Clock)
	maps.Copy(fields, reporter.SolarFields(snap.Solar))

	out, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
